package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var todayColor = lipgloss.Color("#EF4444")

// Styles holds the lipgloss styles applied to week lines.
type Styles struct {
	Gutter     lipgloss.Style
	OutOfMonth lipgloss.Style
	Today      lipgloss.Style
}

// NewStyles builds styles bound to r, so color support follows r's output.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Gutter:     r.NewStyle().Faint(true),
		OutOfMonth: r.NewStyle().Faint(true).Italic(true),
		Today:      r.NewStyle().Bold(true).Foreground(todayColor),
	}
}

// PlainStyles renders every cell unstyled.
func PlainStyles() Styles {
	return NewStyles(NewRenderer(io.Discard, true))
}

// NewRenderer returns a lipgloss renderer for w. With noColor set all
// styling is dropped regardless of what w supports.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
