// Package static embeds the assets served alongside the property view.
package static

import "embed"

//go:embed styles
var FS embed.FS

// DefaultStylePath is the embedded stylesheet used when no custom style is
// configured.
const DefaultStylePath = "styles/default.css"
