package view

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"thirdcoast.systems/fileprops/pkg/rows"
	"thirdcoast.systems/fileprops/static"
)

// datastarScript is the client bundle that applies streamed table patches.
const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

const clipboardScript = `function copyTextToClipboard(text) {
	if (navigator.clipboard) {
		navigator.clipboard.writeText(text);
		return;
	}
	const area = document.createElement("textarea");
	area.value = text;
	document.body.appendChild(area);
	area.select();
	try {
		document.execCommand("copy");
	} finally {
		area.remove();
	}
}`

// PageData is the input of Page.
type PageData struct {
	Path  string
	Style string
	Rows  []rows.Row
	// StreamURL, when set, is subscribed to for live table updates.
	StreamURL string
}

// Page renders a complete HTML document around Table.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		b.WriteString(`<title>Properties of ` + templ.EscapeString(filepath.Base(d.Path)) + `</title>`)
		// Style sheets are trusted configuration, written as-is apart from
		// closing tags.
		b.WriteString(`<style>` + strings.ReplaceAll(d.Style, "</style", `<\/style`) + `</style>`)
		b.WriteString(`<script>` + clipboardScript + `</script>`)
		if d.StreamURL != "" {
			b.WriteString(`<script type="module" src="` + datastarScript + `"></script>`)
		}
		b.WriteString(`</head><body>`)
		if d.StreamURL != "" {
			b.WriteString(`<div data-init="@get('` + templ.EscapeString(d.StreamURL) + `')"></div>`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := Table(d.Rows).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// StreamURL returns the live-update endpoint for path.
func StreamURL(path string) string {
	return "/api/properties/stream?path=" + url.QueryEscape(path)
}

// LoadStyle returns the stylesheet at stylePath, or the embedded default
// when stylePath is empty or unreadable. It reads from disk on every call.
func LoadStyle(stylePath string) string {
	if strings.TrimSpace(stylePath) != "" {
		b, err := os.ReadFile(stylePath)
		if err == nil {
			return string(b)
		}
		slog.Warn("failed to read output style, using default", "path", stylePath, "error", err)
	}

	b, err := fs.ReadFile(static.FS, static.DefaultStylePath)
	if err != nil {
		slog.Error("embedded default style missing", "error", err)
		return ""
	}
	return string(b)
}
