package deflist

import "strings"

// Compile-time interface verification.
var _ Buffer = (*Document)(nil)

// Document is a Buffer over an in-memory string, splitting on "\n".
// Offsets are byte offsets into the original text; a line's End excludes
// its trailing newline.
type Document struct {
	text  string
	lines []Line
}

// NewDocument builds a Document from text.
func NewDocument(text string) *Document {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	offset := 0
	for i, p := range parts {
		lines[i] = Line{Start: offset, End: offset + len(p), Text: p}
		offset += len(p) + 1
	}
	return &Document{text: text, lines: lines}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at index i, or the zero Line when out of range.
func (d *Document) Line(i int) Line {
	if i < 0 || i >= len(d.lines) {
		return Line{}
	}
	return d.lines[i]
}
