package bubbletea

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/deflist"
)

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// segment is a run of styled text within one rendered line.
type segment struct {
	text  string
	style lipgloss.Style
}

// renderConfig holds all rendering parameters for renderLines.
type renderConfig struct {
	doc        *deflist.Document
	directives []deflist.Directive
	styles     deflist.Styles
	renderer   *lipgloss.Renderer
	tokenizer  deflist.Tokenizer
	live       bool
	cursorRow  int
	cursorCol  int // byte offset within the cursor row
	showCursor bool
}

// lineStyles caches the lipgloss styles derived from the theme for one
// render pass.
type lineStyles struct {
	term       lipgloss.Style
	definition lipgloss.Style
	marker     lipgloss.Style
	margin     lipgloss.Style
	body       lipgloss.Style
	code       lipgloss.Style
	gutter     lipgloss.Style
	plain      lipgloss.Style
}

func newLineStyles(styles deflist.Styles, renderer *lipgloss.Renderer) lineStyles {
	return lineStyles{
		term:       styleFromColorPair(styles.Term, renderer).Bold(true),
		definition: styleFromColorPair(styles.Definition, renderer),
		marker:     styleFromColorPair(styles.Marker, renderer),
		margin:     styleFromColorPair(styles.MarginReserve, renderer),
		body:       styleFromColorPair(styles.DefinitionBody, renderer),
		code:       styleFromColorPair(styles.CodeBlock, renderer),
		gutter:     styleFromColorPair(styles.LineNumber, renderer),
		plain:      renderer.NewStyle(),
	}
}

// styleFromColorPair creates a lipgloss style from a color pair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp deflist.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

func tokenStyle(ts deflist.Style, renderer *lipgloss.Renderer, fallback lipgloss.Style) lipgloss.Style {
	if ts.Foreground == "" && !ts.Bold {
		return fallback
	}
	style := renderer.NewStyle()
	if ts.Foreground != "" {
		style = style.Foreground(lipgloss.Color(ts.Foreground))
	}
	if ts.Bold {
		style = style.Bold(true)
	}
	return style
}

// fenceInfo captures the fenced-code structure of the document for one
// render pass: which rows are fence delimiters and the syntax tokens of
// each interior row.
type fenceInfo struct {
	delim  map[int]bool
	inside map[int]bool
	tokens map[int][]deflist.Token
}

func scanFences(doc *deflist.Document, tokenizer deflist.Tokenizer) fenceInfo {
	info := fenceInfo{
		delim:  make(map[int]bool),
		inside: make(map[int]bool),
		tokens: make(map[int][]deflist.Token),
	}

	inFence := false
	language := ""
	var content []string
	var contentRows []int

	flush := func() {
		if tokenizer == nil || len(content) == 0 {
			return
		}
		lines := tokenizer.TokenizeLines(language, strings.Join(content, "\n"))
		for j, row := range contentRows {
			if j < len(lines) {
				info.tokens[row] = lines[j]
			}
		}
	}

	for i := 0; i < doc.LineCount(); i++ {
		text := doc.Line(i).Text
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, "```") {
			info.delim[i] = true
			if inFence {
				flush()
				content, contentRows = nil, nil
			} else {
				language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			}
			inFence = !inFence
			continue
		}
		if inFence {
			info.inside[i] = true
			content = append(content, text)
			contentRows = append(contentRows, i)
		}
	}
	flush()
	return info
}

// renderLines renders every document line to a styled string, applying the
// annotation directives and fenced-code highlighting. Output is aligned
// with document rows; scrolling is the caller's concern.
func renderLines(cfg renderConfig) []string {
	doc := cfg.doc
	if cfg.renderer == nil {
		cfg.renderer = lipgloss.DefaultRenderer()
	}
	st := newLineStyles(cfg.styles, cfg.renderer)

	var fences fenceInfo
	if cfg.live {
		fences = scanFences(doc, cfg.tokenizer)
	}

	perLine := groupByLine(doc, cfg.directives)

	gutterWidth := len(fmt.Sprint(doc.LineCount()))
	if gutterWidth < minGutterWidth {
		gutterWidth = minGutterWidth
	}

	out := make([]string, doc.LineCount())
	for i := 0; i < doc.LineCount(); i++ {
		line := doc.Line(i)

		var segs []segment
		switch {
		case cfg.live && (fences.delim[i] || fences.inside[i]):
			segs = codeSegments(line, fences.tokens[i], st, cfg.renderer)
		default:
			segs = lineSegments(line, perLine[i], st)
		}

		if cfg.showCursor && i == cfg.cursorRow {
			segs = overlayCursor(segs, cfg.cursorCol, st.plain)
		}

		var sb strings.Builder
		sb.WriteString(st.gutter.Render(fmt.Sprintf("%*d ", gutterWidth, i+1)))
		for _, s := range segs {
			sb.WriteString(s.style.Render(s.text))
		}
		out[i] = sb.String()
	}
	return out
}

// groupByLine buckets directives by the row containing their start offset.
func groupByLine(doc *deflist.Document, directives []deflist.Directive) map[int][]deflist.Directive {
	byLine := make(map[int][]deflist.Directive)
	row := 0
	for _, d := range directives {
		for row < doc.LineCount()-1 && d.From > doc.Line(row).End {
			row++
		}
		byLine[row] = append(byLine[row], d)
	}
	return byLine
}

// lineSegments converts one line plus its directives into styled segments.
// Hidden markers render as spaces in the margin style so the body text
// keeps its column. The quote/indent prefix of a definition row takes the
// definition row style; indented rows use it for the body too, marking the
// continuation visually.
func lineSegments(line deflist.Line, dirs []deflist.Directive, st lineStyles) []segment {
	if len(dirs) == 0 {
		return []segment{{text: line.Text, style: st.plain}}
	}

	for _, d := range dirs {
		if d.Kind == deflist.LineTerm {
			return []segment{{text: line.Text, style: st.term}}
		}
	}

	var markerFrom, markerTo int
	var markerVisible, isDefinition, indented bool
	for _, d := range dirs {
		switch d.Kind {
		case deflist.LineDefinition:
			isDefinition = true
			indented = d.Indented
		case deflist.MarkerVisible:
			markerFrom, markerTo, markerVisible = d.From, d.To, true
		case deflist.MarkerHidden:
			markerFrom, markerTo = d.From, d.To
		}
	}
	if !isDefinition {
		return []segment{{text: line.Text, style: st.plain}}
	}

	rel := func(off int) int { return off - line.Start }

	var segs []segment
	if prefix := line.Text[:rel(markerFrom)]; prefix != "" {
		segs = append(segs, segment{text: prefix, style: st.definition})
	}
	markerText := line.Text[rel(markerFrom):rel(markerTo)]
	if markerVisible {
		segs = append(segs, segment{text: markerText, style: st.marker})
	} else {
		segs = append(segs, segment{text: strings.Repeat(" ", len(markerText)), style: st.margin})
	}
	bodyStyle := st.body
	if indented {
		bodyStyle = st.definition
	}
	if body := line.Text[rel(markerTo):]; body != "" {
		segs = append(segs, segment{text: body, style: bodyStyle})
	}
	return segs
}

// codeSegments renders a fenced-code row from its syntax tokens, falling
// back to the block style when no tokens are available.
func codeSegments(line deflist.Line, tokens []deflist.Token, st lineStyles, renderer *lipgloss.Renderer) []segment {
	if len(tokens) == 0 {
		return []segment{{text: line.Text, style: st.code}}
	}
	segs := make([]segment, 0, len(tokens))
	for _, tok := range tokens {
		segs = append(segs, segment{text: tok.Text, style: tokenStyle(tok.Style, renderer, st.code)})
	}
	return segs
}

// overlayCursor reverses the video of the single cell at byte offset col,
// splitting whatever segment contains it. A cursor past the end of the
// line renders as a reversed trailing space.
func overlayCursor(segs []segment, col int, plain lipgloss.Style) []segment {
	pos := 0
	for i, s := range segs {
		if col >= pos+len(s.text) {
			pos += len(s.text)
			continue
		}
		at := col - pos
		_, size := utf8.DecodeRuneInString(s.text[at:])
		var out []segment
		out = append(out, segs[:i]...)
		if at > 0 {
			out = append(out, segment{text: s.text[:at], style: s.style})
		}
		out = append(out, segment{text: s.text[at : at+size], style: s.style.Reverse(true)})
		if at+size < len(s.text) {
			out = append(out, segment{text: s.text[at+size:], style: s.style})
		}
		out = append(out, segs[i+1:]...)
		return out
	}
	return append(segs, segment{text: " ", style: plain.Reverse(true)})
}
