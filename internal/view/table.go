// Package view renders property rows as HTML.
package view

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"thirdcoast.systems/fileprops/pkg/rows"
)

// TableID is the element id of the rendered table; live updates replace the
// element with this id.
const TableID = "properties"

// Table renders seq as a two-column property table.
func Table(seq []rows.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table id="` + TableID + `">`)
		b.WriteString(`<thead><tr class="column-header-row">`)
		b.WriteString(`<th class="column-header-cell">Property</th>`)
		b.WriteString(`<th class="column-header-cell">Value</th>`)
		b.WriteString(`</tr></thead><tbody>`)
		for _, r := range seq {
			writeRow(&b, r)
		}
		b.WriteString(`</tbody></table>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeRow(b *strings.Builder, r rows.Row) {
	switch r.Kind {
	case rows.KindGroup:
		b.WriteString(`<tr class="group-row"><th colspan="2" class="group-cell">`)
		b.WriteString(templ.EscapeString(r.Label))
		b.WriteString(`</th></tr>`)
	case rows.KindSubGroup:
		fmt.Fprintf(b, `<tr class="sub-group-row"><td colspan="2" class="indent-%d sub-group-cell" style="--indent: %d">`, r.Indent, r.Indent)
		b.WriteString(templ.EscapeString(r.Label))
		b.WriteString(`</td></tr>`)
	default:
		fmt.Fprintf(b, `<tr class="property-row"><td class="indent-%d key-cell" style="--indent: %d">`, r.Indent, r.Indent)
		b.WriteString(templ.EscapeString(r.Label))
		b.WriteString(`</td><td class="value-cell">`)
		b.WriteString(valueHTML(r))
		if r.Copyable() {
			b.WriteString(copyButton(r.Value))
		}
		b.WriteString(`</td></tr>`)
	}
}

func valueHTML(r rows.Row) string {
	switch r.Hint {
	case rows.HintPath:
		return breakablePath(r.Value)
	case rows.HintFileLink:
		return `<a href="` + templ.EscapeString(fileURL(r.Value)) + `">` + breakablePath(r.Value) + `</a>`
	default:
		return templ.EscapeString(r.Value)
	}
}

// breakablePath escapes p and adds a line-break opportunity after every
// path separator.
func breakablePath(p string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(p); i++ {
		if p[i] == '/' || p[i] == '\\' {
			b.WriteString(templ.EscapeString(p[start : i+1]))
			b.WriteString("<wbr>")
			start = i + 1
		}
	}
	b.WriteString(templ.EscapeString(p[start:]))
	return b.String()
}

func fileURL(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "file://" + p
}

func copyButton(text string) string {
	arg, _ := json.Marshal(text)
	return `<button class="copy-button" title="Copy" onclick="copyTextToClipboard(` +
		templ.EscapeString(string(arg)) + `)">&#x2398;</button>`
}

// ErrorTable renders a table holding a single message in place of the
// property rows.
func ErrorTable(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<table id="`+TableID+`"><tbody><tr class="error-row"><td class="error-cell">`+
			templ.EscapeString(msg)+`</td></tr></tbody></table>`)
		return err
	})
}
