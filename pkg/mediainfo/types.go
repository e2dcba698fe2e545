// Package mediainfo runs the mediainfo tool in XML mode and flattens its
// per-track attribute tree into display rows.
package mediainfo

import "errors"

// ErrMalformedMetadata is wrapped by every error caused by output whose shape
// cannot be read as a mediainfo report.
var ErrMalformedMetadata = errors.New("mediainfo: malformed metadata")

// NodeKind discriminates the Node variants.
type NodeKind int

const (
	// KindScalar is a plain text leaf.
	KindScalar NodeKind = iota
	// KindBinary is a leaf whose payload was base64 encoded in the report
	// and has already been decoded.
	KindBinary
	// KindSection is a nested attribute mapping.
	KindSection
)

func (k NodeKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindBinary:
		return "binary"
	case KindSection:
		return "section"
	default:
		return "unknown"
	}
}

// Node is one attribute value. Exactly one of Text, Data or Entries is
// meaningful, selected by Kind.
type Node struct {
	Kind    NodeKind
	Text    string
	Data    []byte
	Entries []Entry
}

// Entry is a named child of a section. Entries keep document order.
type Entry struct {
	Key  string
	Node Node
}

// Scalar returns a text leaf.
func Scalar(text string) Node { return Node{Kind: KindScalar, Text: text} }

// Binary returns a decoded binary leaf.
func Binary(data []byte) Node { return Node{Kind: KindBinary, Data: data} }

// Section returns a nested mapping.
func Section(entries ...Entry) Node { return Node{Kind: KindSection, Entries: entries} }

// Track is one stream reported by mediainfo (General, Video, Audio, ...).
type Track struct {
	// Type comes from the track's type attribute and may be empty when the
	// report omits it.
	Type       string
	Attributes []Entry
}

// Report is a parsed mediainfo document for a single file.
type Report struct {
	// Ref is the file reference the tool echoed back, if any.
	Ref    string
	Tracks []Track
}
