package interfaces

import (
	"io"

	domaintypes "calc555/internal/domain/types"
)

// Renderer turns a calculation result into something a person can read or
// look at. Renderers only consume values; they never calculate.
type Renderer interface {
	Render(w io.Writer, result domaintypes.Result) error
}
