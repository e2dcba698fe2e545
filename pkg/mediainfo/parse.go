package mediainfo

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	binaryEncodingAttr = "dt"
	binaryEncodingB64  = "binary.base64"
)

// element is the generic tree decoded from the XML token stream before it
// is resolved into Nodes.
type element struct {
	name     string
	attrs    []xml.Attr
	text     strings.Builder
	children []*element
}

func (e *element) attr(local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (e *element) child(names ...string) *element {
	for _, c := range e.children {
		for _, n := range names {
			if c.name == n {
				return c
			}
		}
	}
	return nil
}

// Parse reads mediainfo XML output. The root must contain a media container
// ("media", or "File" in reports from older mediainfo releases) holding
// track elements.
func Parse(data []byte) (*Report, error) {
	root, err := decodeTree(data)
	if err != nil {
		return nil, err
	}

	media := root.child("media", "File")
	if media == nil {
		return nil, fmt.Errorf("%w: no media container under <%s>", ErrMalformedMetadata, root.name)
	}

	report := &Report{}
	report.Ref, _ = media.attr("ref")

	for _, el := range media.children {
		if el.name != "track" {
			continue
		}
		trackType, _ := el.attr("type")
		report.Tracks = append(report.Tracks, Track{
			Type:       strings.TrimSpace(trackType),
			Attributes: resolveEntries(el.children),
		})
	}

	return report, nil
}

func decodeTree(data []byte) (*element, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedMetadata)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedMetadata)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedMetadata)
	}
	return root, nil
}

// resolveEntries converts child elements into ordered entries. A repeated
// element name keeps only its first occurrence.
func resolveEntries(children []*element) []Entry {
	var entries []Entry
	seen := make(map[string]struct{}, len(children))

	for _, c := range children {
		if _, dup := seen[c.name]; dup {
			continue
		}
		seen[c.name] = struct{}{}

		node, ok := resolveNode(c)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: c.name, Node: node})
	}
	return entries
}

// resolveNode classifies an element. It reports false for a binary payload
// that does not decode, so the caller can skip it.
func resolveNode(el *element) (Node, bool) {
	if enc, ok := el.attr(binaryEncodingAttr); ok && enc == binaryEncodingB64 {
		data, err := decodeBase64(el.text.String())
		if err != nil {
			return Node{}, false
		}
		return Binary(data), true
	}

	if len(el.children) > 0 {
		return Section(resolveEntries(el.children)...), true
	}

	// Text-only elements stay scalars even when they carry attributes.
	return Scalar(el.text.String()), true
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
