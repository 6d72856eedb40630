package mock

import (
	"io"

	"github.com/fwojciec/deflist"
)

// Compile-time interface verification.
var _ deflist.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of deflist.Renderer.
type Renderer struct {
	RenderFn func(src []byte, w io.Writer) error
}

func (r *Renderer) Render(src []byte, w io.Writer) error {
	return r.RenderFn(src, w)
}
