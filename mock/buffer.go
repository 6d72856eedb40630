package mock

import "github.com/fwojciec/deflist"

// Compile-time interface verification.
var _ deflist.Buffer = (*Buffer)(nil)

// Buffer is a mock implementation of deflist.Buffer.
type Buffer struct {
	LineCountFn func() int
	LineFn      func(i int) deflist.Line
}

func (b *Buffer) LineCount() int {
	return b.LineCountFn()
}

func (b *Buffer) Line(i int) deflist.Line {
	return b.LineFn(i)
}
