package mock

import (
	"context"

	"github.com/fwojciec/deflist"
)

// Compile-time interface verification.
var _ deflist.Editor = (*Editor)(nil)

// Editor is a mock implementation of deflist.Editor.
type Editor struct {
	EditFn func(ctx context.Context, text string) (string, error)
}

func (e *Editor) Edit(ctx context.Context, text string) (string, error) {
	return e.EditFn(ctx, text)
}
