// Package goldmark restructures recognized term/definition runs into
// definition list nodes using the goldmark Markdown library.
package goldmark

import (
	"io"

	goldmarklib "github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/fwojciec/deflist"
)

// DefinitionLists is a goldmark extension that pairs term lines with their
// marker-prefixed definition lines inside paragraphs and splices definition
// list nodes in their place. Non-participating lines stay where they are.
var DefinitionLists goldmarklib.Extender = &definitionLists{}

type definitionLists struct{}

// Extend registers the restructuring transformer and the stock definition
// list HTML renderer.
func (e *definitionLists) Extend(m goldmarklib.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(extension.NewDefinitionListHTMLRenderer(), 500),
	))
}

type transformer struct{}

// Transform rewrites qualifying paragraphs in place. Paragraphs inside
// block quotes or list items never participate.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	var paragraphs []*ast.Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if p, ok := n.(*ast.Paragraph); ok {
			if !disqualifiedAncestor(p) {
				paragraphs = append(paragraphs, p)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, p := range paragraphs {
		restructure(p, reader.Source())
	}
}

func disqualifiedAncestor(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.(type) {
		case *ast.Blockquote, *ast.ListItem:
			return true
		}
	}
	return false
}

// planItem is either one passthrough line or one term/definition run.
type planItem struct {
	run  bool
	term int   // run: index of the term line
	defs []int // run: indices of the definition lines
	line int   // passthrough: index of the line
}

// restructure replaces p with a mix of definition lists and passthrough
// paragraphs. A paragraph producing zero runs is left completely unmodified.
func restructure(p *ast.Paragraph, source []byte) {
	lines := p.Lines()
	n := lines.Len()
	if n < 2 {
		return
	}

	texts := make([]string, n)
	for i := 0; i < n; i++ {
		seg := lines.At(i)
		texts[i] = trimEOL(string(seg.Value(source)))
	}
	roles := deflist.ClassifyLines(texts)

	plan, runs := buildPlan(texts, roles)
	if runs == 0 {
		return
	}

	groups := splitInlineLines(p)
	if len(groups) != n {
		// Inline structure does not line up with the source lines;
		// leave the paragraph alone.
		return
	}

	parent := p.Parent()
	var firstInserted ast.Node
	for _, item := range plan {
		var node ast.Node
		if item.run {
			node = buildList(item, roles, lines, groups)
		} else {
			node = buildPassthrough(item, groups)
		}
		parent.InsertBefore(parent, p, node)
		if firstInserted == nil {
			firstInserted = node
		}
	}
	// Merge adjacent passthrough paragraphs back together so runs are the
	// only structural change.
	mergePassthrough(parent, firstInserted, p)
	parent.RemoveChild(parent, p)
}

// buildPlan walks the classified lines and decides, per line, whether it
// joins a run or passes through. A definition whose body carries footnote
// backreference markup invalidates the pairing in progress: a pending
// unpaired term is flushed back as plain content.
func buildPlan(texts []string, roles []deflist.LineRole) (plan []planItem, runs int) {
	i := 0
	for i < len(roles) {
		if roles[i].Role != deflist.RoleTerm {
			plan = append(plan, planItem{line: i})
			i++
			continue
		}

		term := i
		var defs []int
		poisoned := false
		j := i + 1
		for j < len(roles) && roles[j].Role == deflist.RoleDefinition {
			body := texts[j][roles[j].QuotePrefix+roles[j].Indent+2:]
			if deflist.IsFootnoteBackref(body) {
				poisoned = true
				break
			}
			defs = append(defs, j)
			j++
		}

		if len(defs) == 0 {
			// Unpaired term: plain content, never an empty list.
			plan = append(plan, planItem{line: term})
			i++
			continue
		}
		plan = append(plan, planItem{run: true, term: term, defs: defs})
		runs++
		i = j
		if poisoned {
			// The backreference line and any definitions chained after
			// it stay plain.
			for i < len(roles) && roles[i].Role == deflist.RoleDefinition {
				plan = append(plan, planItem{line: i})
				i++
			}
		}
	}
	return plan, runs
}

// splitInlineLines groups the paragraph's inline children into logical
// lines, breaking after any text node that carries a line-break flag.
func splitInlineLines(p *ast.Paragraph) [][]ast.Node {
	var groups [][]ast.Node
	var current []ast.Node
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		current = append(current, c)
		if t, ok := c.(*ast.Text); ok && (t.SoftLineBreak() || t.HardLineBreak()) {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// buildList assembles one definition list node from a run.
func buildList(item planItem, roles []deflist.LineRole, lines *text.Segments, groups [][]ast.Node) ast.Node {
	list := east.NewDefinitionList(0, nil)

	dt := east.NewDefinitionTerm()
	adoptLine(dt, groups[item.term])
	list.AppendChild(list, dt)

	for _, di := range item.defs {
		dd := east.NewDefinitionDescription()
		dd.IsTight = true
		group := trimMarker(groups[di], lines.At(di), roles[di])
		adoptLine(dd, group)
		list.AppendChild(list, dd)
	}
	return list
}

// adoptLine moves one logical line's inline nodes under block, clearing the
// trailing line-break flag now that the line ends its block.
func adoptLine(block ast.Node, group []ast.Node) {
	for _, n := range group {
		block.AppendChild(block, n)
	}
	if len(group) == 0 {
		return
	}
	if t, ok := group[len(group)-1].(*ast.Text); ok {
		t.SetSoftLineBreak(false)
		t.SetHardLineBreak(false)
	}
}

// trimMarker drops the indent, marker and mandatory space from the front of
// a definition line's inline nodes.
func trimMarker(group []ast.Node, lineSeg text.Segment, role deflist.LineRole) []ast.Node {
	if len(group) == 0 {
		return group
	}
	bodyStart := lineSeg.Start + role.QuotePrefix + role.Indent + 2
	t, ok := group[0].(*ast.Text)
	if !ok || t.Segment.Start >= bodyStart {
		return group
	}
	if t.Segment.Stop <= bodyStart {
		return group[1:]
	}
	t.Segment = t.Segment.WithStart(bodyStart)
	return group
}

// buildPassthrough wraps one non-participating line in a paragraph, keeping
// whatever line-break flag the line carried so merging can preserve it. The
// new paragraph has no source lines, so a second restructuring pass leaves
// it untouched.
func buildPassthrough(item planItem, groups [][]ast.Node) ast.Node {
	para := ast.NewParagraph()
	for _, n := range groups[item.line] {
		para.AppendChild(para, n)
	}
	return para
}

// mergePassthrough joins adjacent single-line passthrough paragraphs in
// the window [start, stop) into one paragraph. Interior lines keep the soft
// or hard break they originally carried; only the final line of each
// surviving paragraph has its break flag cleared. Only nodes inserted by
// the current restructuring live in that window.
func mergePassthrough(parent, start, stop ast.Node) {
	c := start
	for c != nil && c != stop {
		next := c.NextSibling()
		p, ok := c.(*ast.Paragraph)
		if !ok || next == stop || next == nil {
			c = next
			continue
		}
		q, ok := next.(*ast.Paragraph)
		if !ok {
			c = next
			continue
		}
		for q.FirstChild() != nil {
			n := q.FirstChild()
			q.RemoveChild(q, n)
			p.AppendChild(p, n)
		}
		parent.RemoveChild(parent, q)
		// Stay on c: it may merge with the next sibling too.
	}
	for c := start; c != nil && c != stop; c = c.NextSibling() {
		p, ok := c.(*ast.Paragraph)
		if !ok {
			continue
		}
		if last, ok := p.LastChild().(*ast.Text); ok {
			last.SetSoftLineBreak(false)
			last.SetHardLineBreak(false)
		}
	}
}

func trimEOL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// Compile-time interface verification.
var _ deflist.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML with definition list restructuring
// applied.
type Renderer struct {
	md goldmarklib.Markdown
}

// NewRenderer creates a Renderer with the DefinitionLists extension
// installed.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmarklib.New(goldmarklib.WithExtensions(DefinitionLists)),
	}
}

// Render writes the HTML rendering of src to w.
func (r *Renderer) Render(src []byte, w io.Writer) error {
	return r.md.Convert(src, w)
}
