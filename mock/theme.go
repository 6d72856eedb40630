package mock

import "github.com/fwojciec/deflist"

// Compile-time interface verification.
var _ deflist.Theme = (*Theme)(nil)

// Theme is a mock implementation of deflist.Theme.
type Theme struct {
	StylesFn func() deflist.Styles
}

func (t *Theme) Styles() deflist.Styles {
	return t.StylesFn()
}
