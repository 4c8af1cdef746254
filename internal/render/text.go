package render

import (
	"fmt"
	"io"

	"calc555/internal/domain"
	"calc555/internal/format"
)

const title = "Calculated Values"

// Text writes results as plain text.
type Text struct {
	Formatter format.Formatter
	NoTitle   bool
}

// Render writes the title block, the result lines and any warnings.
func (t Text) Render(w io.Writer, result domain.Result) error {
	if !t.NoTitle {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, underline(title)); err != nil {
			return err
		}
	}
	for _, line := range format.ResultLines(result, t.Formatter) {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func underline(s string) string {
	b := make([]byte, len([]rune(s)))
	for i := range b {
		b[i] = '='
	}
	return string(b)
}

var _ domain.Renderer = Text{}
