// Package deflist provides domain types for recognizing Markdown definition
// lists: a term line followed by one or more marker-prefixed (":" or "~")
// definition lines.
package deflist

import (
	"context"
	"io"
)

// Role is the classification assigned to a single document line.
type Role int

// Line roles.
const (
	RoleOther Role = iota
	RoleTerm
	RoleDefinition
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleTerm:
		return "term"
	case RoleDefinition:
		return "definition"
	default:
		return "other"
	}
}

// LineRole is the full classification of one line.
// Indent and Marker are meaningful only when Role is RoleDefinition.
// QuotePrefix is the byte length of the block-quote prefix stripped before
// classification, for any role.
type LineRole struct {
	Role        Role
	Indent      int  // 0..2 leading spaces before the marker
	Marker      byte // ':' or '~'
	QuotePrefix int  // bytes of leading "> " prefix stripped from the line
}

// Line is one line of a document as exposed by a Buffer.
// Start and End are byte offsets into the document; End excludes the
// trailing newline. A zero Line represents an out-of-range lookup.
type Line struct {
	Start int
	End   int
	Text  string
}

// Buffer provides read access to the lines of a document.
// Implementations are owned by the host; the core only reads.
type Buffer interface {
	// LineCount returns the number of lines in the document.
	LineCount() int
	// Line returns the line at index i (0-based). Out-of-range indices
	// return the zero Line rather than failing; boundary lines always
	// need neighbor lookups.
	Line(i int) Line
}

// Range is a cursor or selection range of document byte offsets.
// A caret is represented as From == To.
type Range struct {
	From int
	To   int
}

// Overlaps reports whether the range touches the span [from, to].
// The test is inclusive on both ends so a caret sitting directly before
// or after a marker still counts as touching it.
func (r Range) Overlaps(from, to int) bool {
	return r.From <= to && r.To >= from
}

// DirectiveKind identifies the styling/visibility effect of a Directive.
type DirectiveKind int

// Directive kinds.
const (
	// LineTerm marks a whole visual row as a definition term.
	LineTerm DirectiveKind = iota
	// LineDefinition marks a whole visual row as a definition body line.
	LineDefinition
	// MarkerVisible spans a definition marker the cursor is touching.
	MarkerVisible
	// MarkerHidden spans a definition marker that should render invisible.
	MarkerHidden
	// MarginReserve spans one character after a hidden marker so the body
	// text does not shift left when the marker collapses.
	MarginReserve
	// DefinitionBody spans the body text following a definition marker.
	DefinitionBody
)

// String returns a human-readable name for the kind.
func (k DirectiveKind) String() string {
	switch k {
	case LineTerm:
		return "line-term"
	case LineDefinition:
		return "line-definition"
	case MarkerVisible:
		return "marker-visible"
	case MarkerHidden:
		return "marker-hidden"
	case MarginReserve:
		return "margin-reserve"
	case DefinitionBody:
		return "definition-body"
	}
	return "unknown"
}

// Directive is a position-tagged styling/visibility instruction for the
// live-editing surface. From and To are byte offsets into the document.
// Line-level kinds are zero-width and anchored at the line start.
type Directive struct {
	From     int
	To       int
	Kind     DirectiveKind
	Indented bool // LineDefinition only: marker preceded by 1-2 spaces
}

// Editor presents an interactive editing surface for a Markdown document.
type Editor interface {
	// Edit displays text for editing and blocks until the user exits,
	// returning the (possibly modified) document text.
	Edit(ctx context.Context, text string) (string, error)
}

// Renderer converts Markdown source into rendered output with recognized
// term/definition runs restructured into definition lists.
type Renderer interface {
	Render(src []byte, w io.Writer) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
