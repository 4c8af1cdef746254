package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calc555/internal/domain"
	"calc555/internal/format"
)

// Palette holds the styles used by Styled.
type Palette struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Warn  lipgloss.Style
}

// NewPalette returns the calculator colours bound to r.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Title: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Label: r.NewStyle().Foreground(lipgloss.Color("7")),
		Value: r.NewStyle().Foreground(lipgloss.Color("3")),
		Warn:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Segment styles one segment.
func (p Palette) Segment(s format.Segment) string {
	switch s.Kind {
	case format.Value:
		return p.Value.Render(s.Text)
	case format.Warn:
		return p.Warn.Render(s.Text)
	default:
		return p.Label.Render(s.Text)
	}
}

// Line styles a whole line.
func (p Palette) Line(l format.Line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(p.Segment(s))
	}
	return b.String()
}

// Styled writes results with lipgloss highlighting. Colours are dropped when
// the writer is not a terminal.
type Styled struct {
	Formatter format.Formatter
}

// Render writes an indented title block followed by the styled lines.
func (s Styled) Render(w io.Writer, result domain.Result) error {
	r := lipgloss.NewRenderer(w)
	p := NewPalette(r)

	head := p.Title.Render(fmt.Sprintf("%s\n%s", title, underline(title)))
	if _, err := fmt.Fprintln(w, r.NewStyle().MarginLeft(4).Render(head)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range format.ResultLines(result, s.Formatter) {
		if _, err := fmt.Fprintln(w, p.Line(line)); err != nil {
			return err
		}
	}
	return nil
}

var _ domain.Renderer = Styled{}
