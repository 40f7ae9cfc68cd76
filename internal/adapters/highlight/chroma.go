// Package highlight colours generated snippets with chroma.
package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/jsamuelsen/logodir/internal/ports"
)

var _ ports.Highlighter = (*Chroma)(nil)

// Style names per theme.
const (
	DarkStyle  = "github-dark"
	LightStyle = "github"
)

// Chroma implements ports.Highlighter.
type Chroma struct {
	html     *html.Formatter
	terminal chroma.Formatter
}

// New creates a Chroma highlighter.
func New() *Chroma {
	return &Chroma{
		html: html.New(
			html.WithClasses(false),
			html.TabWidth(2),
			html.PreventSurroundingPre(false),
		),
		terminal: formatters.Get("terminal256"),
	}
}

// HTML implements ports.Highlighter. Unknown languages are rendered as
// plain text; an unknown theme falls back to dark.
func (c *Chroma) HTML(code, language, theme string) (string, error) {
	var sb strings.Builder
	if err := c.format(&sb, c.html, code, language, styleFor(theme)); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Terminal implements ports.Highlighter.
func (c *Chroma) Terminal(w io.Writer, code, language string) error {
	return c.format(w, c.terminal, code, language, styleFor(ports.ThemeDark))
}

func (c *Chroma) format(w io.Writer, f chroma.Formatter, code, language string, style *chroma.Style) error {
	iterator, err := lexerFor(language).Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", language, err)
	}

	if err := f.Format(w, style, iterator); err != nil {
		return fmt.Errorf("formatting %s: %w", language, err)
	}

	return nil
}

func lexerFor(language string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return chroma.Coalesce(lexer)
}

func styleFor(theme string) *chroma.Style {
	name := DarkStyle
	if theme == ports.ThemeLight {
		name = LightStyle
	}

	style := styles.Get(name)
	if style == nil {
		return styles.Fallback
	}

	return style
}

// ParseTheme validates a theme name; empty means dark.
func ParseTheme(raw string) (string, bool) {
	switch raw {
	case "", ports.ThemeDark:
		return ports.ThemeDark, true
	case ports.ThemeLight:
		return ports.ThemeLight, true
	default:
		return "", false
	}
}
