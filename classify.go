package deflist

import (
	"regexp"
	"strings"
)

// Definition marker: up to two leading spaces, ':' or '~', one mandatory space.
var markerPattern = regexp.MustCompile(`^( {0,2})([:~]) `)

// Block-quote prefix, possibly repeated for nested quotes.
var quotePrefix = regexp.MustCompile(`^(\s*>\s*)+`)

// Line shapes that can never introduce a term.
var notATermPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^#+\s`),                   // heading
	regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s`),   // ordered/unordered list item
	regexp.MustCompile(`^!\[`),                    // image
	regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})`), // horizontal rule
	regexp.MustCompile(`^\[\^`),                   // footnote definition
	regexp.MustCompile(`^\|`),                     // table row
	regexp.MustCompile(`^\$\$`),                   // math block delimiter
	regexp.MustCompile(`^\^`),                     // block link reference
}

var headingOrListItem = regexp.MustCompile(`^#+\s|^\s*(?:[-*+]|\d+\.)\s`)

// ParseMarker reports whether s opens with a definition marker and, if so,
// the marker's indent (0..2) and character (':' or '~').
func ParseMarker(s string) (indent int, marker byte, ok bool) {
	m := markerPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	return len(m[1]), m[2][0], true
}

// StripQuote removes any leading block-quote prefix from s and returns the
// remainder together with the byte length of the removed prefix.
func StripQuote(s string) (stripped string, prefixLen int) {
	loc := quotePrefix.FindStringIndex(s)
	if loc == nil {
		return s, 0
	}
	return s[loc[1]:], loc[1]
}

// IsFootnoteBackref reports whether s carries footnote-backreference
// markup as it appears in rendered fragments: either an inline footnote
// reference or the return arrow emitted after a footnote body.
func IsFootnoteBackref(s string) bool {
	return strings.Contains(s, "↩") || strings.HasPrefix(strings.TrimSpace(s), "[^")
}

// isCodeFence reports whether the line toggles a fenced code region.
func isCodeFence(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "```")
}

// notATerm reports whether the quote-stripped line is excluded from
// Term/Definition consideration by its own shape.
func notATerm(s string) bool {
	for _, p := range notATermPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return IsFootnoteBackref(s)
}

// scanState is the fold accumulator threaded through one classification
// pass. It never escapes a single ClassifyLines call.
type scanState struct {
	inCodeBlock bool
	lastWasTerm bool
	lastWasDef  bool
}

func (st *scanState) closeRun() {
	st.lastWasTerm = false
	st.lastWasDef = false
}

// ClassifyLines labels every line as a term, a definition, or other, in a
// single deterministic left-to-right pass. Lines inside fenced code regions
// are always RoleOther. A definition only chains from an open run (a
// preceding term or definition); a marker-shaped line with no open run is
// RoleOther. A term requires the following line to be marker-shaped and the
// preceding line to be neither a heading nor a list item.
func ClassifyLines(lines []string) []LineRole {
	roles := make([]LineRole, len(lines))
	var st scanState

	for i, raw := range lines {
		if isCodeFence(raw) {
			st.inCodeBlock = !st.inCodeBlock
			st.closeRun()
			continue
		}
		if st.inCodeBlock {
			st.closeRun()
			continue
		}

		stripped, prefixLen := StripQuote(raw)
		roles[i].QuotePrefix = prefixLen

		if strings.TrimSpace(stripped) == "" {
			// A blank line unconditionally resets any open run.
			st.closeRun()
			continue
		}

		indent, marker, isMarker := ParseMarker(stripped)

		// Continuation beats re-interpretation: a marker line chaining
		// from an open run is a definition even if it could also start
		// a new term.
		if isMarker && (st.lastWasTerm || st.lastWasDef) {
			roles[i].Role = RoleDefinition
			roles[i].Indent = indent
			roles[i].Marker = marker
			st.lastWasTerm = false
			st.lastWasDef = true
			continue
		}

		if isTermLine(stripped, neighbor(lines, i-1), neighbor(lines, i+1)) {
			roles[i].Role = RoleTerm
			st.lastWasTerm = true
			st.lastWasDef = false
			continue
		}

		st.closeRun()
	}

	return roles
}

// isTermLine applies the term rule to a quote-stripped line given its raw
// neighbors.
func isTermLine(stripped, prev, next string) bool {
	if notATerm(stripped) {
		return false
	}
	nextStripped, _ := StripQuote(next)
	if _, _, ok := ParseMarker(nextStripped); !ok {
		return false
	}
	prevStripped, _ := StripQuote(prev)
	return !headingOrListItem.MatchString(prevStripped)
}

// neighbor returns lines[i], or an empty string when i is out of range.
// Boundary lines always need previous/next lookups.
func neighbor(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}
