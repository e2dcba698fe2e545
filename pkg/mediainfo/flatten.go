package mediainfo

import (
	"strings"

	"thirdcoast.systems/fileprops/pkg/rows"
)

// GroupLabel heads the rows contributed by a report.
const GroupLabel = "Media Info"

// Flatten converts a report into display rows: a group header, then for each
// typed track a sub-group at depth 0 followed by its attributes.
//
// Scalars and sections inside a mapping visited at depth D are emitted at
// D+1 (sections then visit their own children at D+1), while decoded binary
// leaves stay at D.
func Flatten(report *Report) []rows.Row {
	if report == nil || len(report.Tracks) == 0 {
		return nil
	}

	out := []rows.Row{rows.Group(GroupLabel)}
	for _, track := range report.Tracks {
		if track.Type == "" {
			continue
		}
		out = append(out, rows.SubGroup(track.Type, 0))
		out = appendEntries(out, track.Attributes, 0)
	}
	return out
}

func appendEntries(out []rows.Row, entries []Entry, depth int) []rows.Row {
	for _, e := range entries {
		label := rows.Humanize(e.Key)

		switch e.Node.Kind {
		case KindBinary:
			if len(e.Node.Data) == 0 {
				continue
			}
			out = append(out, rows.Property(label, decodedText(e.Node.Data), depth))
		case KindSection:
			if len(e.Node.Entries) == 0 {
				continue
			}
			out = append(out, rows.SubGroup(label, depth+1))
			out = appendEntries(out, e.Node.Entries, depth+1)
		case KindScalar:
			if strings.TrimSpace(e.Node.Text) == "" {
				continue
			}
			out = append(out, rows.Property(label, e.Node.Text, depth+1))
		}
	}
	return out
}

func decodedText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
