package mock

import "github.com/fwojciec/deflist"

// Compile-time interface verification.
var _ deflist.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of deflist.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
