package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Outputter is implemented by every command result.
type Outputter interface {
	// ToJSON returns the value marshalled for --format json.
	ToJSON() any
	// ToText writes the human-readable form.
	ToText(w io.Writer, s Styles) error
}

// Write renders o to w in format.
func Write(w io.Writer, o Outputter, format string, s Styles) error {
	if format != FormatJSON {
		return o.ToText(w, s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(o.ToJSON()); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	return nil
}

// Styles is the palette used for text output.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

var (
	brand   = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6B7280")
	danger  = lipgloss.Color("#E53935")
	heading = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#F2F2F2"}
)

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(brand),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(heading),
		Cell:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().Foreground(brand),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(danger),
	}
}

// PlainStyles returns styles without color or emphasis.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{Title: plain, Header: plain, Cell: plain, Muted: plain, Success: plain, Failure: plain}
}

// Table renders rows in aligned columns.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render lays the table out with one space of padding on each side of a
// cell. An empty table renders nothing.
func (t *Table) Render(s Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder

	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			// Width includes padding.
			sb.WriteString(style.Padding(0, 1).Width(widths[i] + 2).Render(cell))
		}

		sb.WriteString("\n")
	}

	writeRow(t.Headers, s.Header)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	writeRow(rule, s.Muted)

	for _, row := range t.Rows {
		writeRow(row, s.Cell)
	}

	return sb.String()
}
