// Package rows defines the display rows produced by property aggregation.
package rows

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the three row variants.
type Kind string

const (
	KindProperty Kind = "property"
	KindGroup    Kind = "group"
	KindSubGroup Kind = "subgroup"
)

// Hint tells a renderer how a property value may be decorated.
type Hint int

const (
	HintNone Hint = iota
	// HintCopy offers a copy-to-clipboard action for the value.
	HintCopy
	// HintPath marks a filesystem path; renderers may insert break
	// opportunities after separators. Implies HintCopy.
	HintPath
	// HintFileLink renders the value as a link to the file. Implies HintCopy.
	HintFileLink
)

// Row is one display line. Slices of Row are ordered: index order is
// display order.
type Row struct {
	Kind   Kind
	Label  string
	Value  string
	Indent int
	Hint   Hint
}

// Property returns a leaf row at the given depth.
func Property(label, value string, indent int) Row {
	if indent < 0 {
		indent = 0
	}
	return Row{Kind: KindProperty, Label: label, Value: value, Indent: indent}
}

// Group returns a top-level section header.
func Group(label string) Row {
	return Row{Kind: KindGroup, Label: label}
}

// SubGroup returns a named section header nested inside a group.
func SubGroup(label string, indent int) Row {
	if indent < 0 {
		indent = 0
	}
	return Row{Kind: KindSubGroup, Label: label, Indent: indent}
}

// WithHint returns a copy of r carrying h.
func (r Row) WithHint(h Hint) Row {
	r.Hint = h
	return r
}

// Copyable reports whether a renderer should offer a copy action.
func (r Row) Copyable() bool {
	return r.Kind == KindProperty && r.Hint != HintNone
}

func (r Row) String() string {
	switch r.Kind {
	case KindGroup:
		return fmt.Sprintf("Group(%q)", r.Label)
	case KindSubGroup:
		return fmt.Sprintf("SubGroup(%q, %d)", r.Label, r.Indent)
	default:
		return fmt.Sprintf("Property(%q, %q, %d)", r.Label, r.Value, r.Indent)
	}
}

type rowJSON struct {
	Kind   Kind    `json:"kind"`
	Label  string  `json:"label"`
	Value  *string `json:"value,omitempty"`
	Indent *int    `json:"indent,omitempty"`
}

// MarshalJSON emits only the fields meaningful for the row's kind.
func (r Row) MarshalJSON() ([]byte, error) {
	out := rowJSON{Kind: r.Kind, Label: r.Label}
	switch r.Kind {
	case KindProperty:
		v, i := r.Value, r.Indent
		out.Value, out.Indent = &v, &i
	case KindSubGroup:
		i := r.Indent
		out.Indent = &i
	}
	return json.Marshal(out)
}

// Humanize turns a source-provided key into a label.
func Humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
