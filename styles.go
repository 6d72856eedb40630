package deflist

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the live-editing
// surface.
type Styles struct {
	Term           ColorPair // Style for term (dt) rows
	Definition     ColorPair // Style for definition (dd) rows
	Marker         ColorPair // Style for a visible ':' / '~' marker
	MarginReserve  ColorPair // Style for the blank cell left by a hidden marker
	DefinitionBody ColorPair // Style for definition body text
	CodeBlock      ColorPair // Fallback style for fenced code lines
	LineNumber     ColorPair // Style for line numbers in the gutter
	StatusBar      ColorPair // Style for the editor status line
}

// Theme provides styles for rendering the editing surface.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
