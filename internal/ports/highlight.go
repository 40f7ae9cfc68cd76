package ports

import "io"

// Highlight themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Highlighter renders source text with syntax colouring.
type Highlighter interface {
	// HTML returns a self-contained <pre> fragment with inline styles.
	HTML(code, language, theme string) (string, error)

	// Terminal writes code with ANSI colours to w.
	Terminal(w io.Writer, code, language string) error
}
