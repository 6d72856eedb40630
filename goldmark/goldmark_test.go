package goldmark_test

import (
	"bytes"
	"strings"
	"testing"

	goldmarklib "github.com/yuin/goldmark"

	"github.com/fwojciec/deflist"
	"github.com/fwojciec/deflist/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Renderer implements deflist.Renderer.
var _ deflist.Renderer = (*goldmark.Renderer)(nil)

func render(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, goldmark.NewRenderer().Render([]byte(src), &buf))
	return buf.String()
}

func TestRenderer_SingleDefinition(t *testing.T) {
	t.Parallel()

	got := render(t, "Term A\n: definition one\n")

	assert.Contains(t, got, "<dl>")
	assert.Contains(t, got, "<dt>Term A</dt>")
	assert.Contains(t, got, "<dd>definition one</dd>")
}

func TestRenderer_MultipleDefinitions(t *testing.T) {
	t.Parallel()

	got := render(t, "Term A\n: def one\n: def two\n")

	assert.Contains(t, got, "<dt>Term A</dt>")
	first := strings.Index(got, "<dd>def one</dd>")
	second := strings.Index(got, "<dd>def two</dd>")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "definitions keep their order")
}

func TestRenderer_TildeMarker(t *testing.T) {
	t.Parallel()

	got := render(t, "Term A\n~ def one\n")

	assert.Contains(t, got, "<dt>Term A</dt>")
	assert.Contains(t, got, "<dd>def one</dd>")
}

func TestRenderer_HeadingDoesNotParticipate(t *testing.T) {
	t.Parallel()

	got := render(t, "# Heading\n\nplain\n: definition one\n\nother\n")

	// "plain" is a valid term here; the heading itself never is.
	assert.NotContains(t, got, "<dt>Heading</dt>")
}

func TestRenderer_ListItemDoesNotParticipate(t *testing.T) {
	t.Parallel()

	got := render(t, "- List item\n: def one\n")

	assert.NotContains(t, got, "<dl>")
}

func TestRenderer_BlockquoteDoesNotParticipate(t *testing.T) {
	t.Parallel()

	got := render(t, "> Term A\n> : def one\n")

	assert.NotContains(t, got, "<dl>")
}

func TestRenderer_CodeFenceDoesNotParticipate(t *testing.T) {
	t.Parallel()

	got := render(t, "```\nTerm A\n: def one\n```\n")

	assert.NotContains(t, got, "<dl>")
	assert.Contains(t, got, "<pre>")
}

func TestRenderer_PassthroughAroundRun(t *testing.T) {
	t.Parallel()

	got := render(t, "intro line\nTerm A\n: def one\n")

	assert.Contains(t, got, "intro line")
	assert.Contains(t, got, "<dt>Term A</dt>")
	assert.Contains(t, got, "<dd>def one</dd>")
	assert.NotContains(t, got, "<dt>intro line</dt>")
}

func TestRenderer_PassthroughKeepsHardBreak(t *testing.T) {
	t.Parallel()

	got := render(t, "alpha  \nbeta\nTerm A\n: def one\n")

	assert.Contains(t, got, "<br>", "trailing-space hard break survives restructuring")
	assert.Contains(t, got, "<dt>Term A</dt>")
	assert.Contains(t, got, "<dd>def one</dd>")
}

func TestRenderer_MultipleRunsInOneBlock(t *testing.T) {
	t.Parallel()

	got := render(t, "Term A\n: def a\nbetween\nTerm B\n~ def b\n")

	assert.Contains(t, got, "<dt>Term A</dt>")
	assert.Contains(t, got, "<dd>def a</dd>")
	assert.Contains(t, got, "<dt>Term B</dt>")
	assert.Contains(t, got, "<dd>def b</dd>")
	assert.Contains(t, got, "between")
	assert.NotContains(t, got, "<dt>between</dt>")
}

func TestRenderer_UnmodifiedWithoutRuns(t *testing.T) {
	t.Parallel()

	const src = "just\nsome prose\n\nanother paragraph\n"

	var plain bytes.Buffer
	require.NoError(t, goldmarklib.New().Convert([]byte(src), &plain))

	got := render(t, src)

	assert.Equal(t, plain.String(), got, "blocks with zero runs render byte-identically")
}

func TestRenderer_OrphanMarkerUnmodified(t *testing.T) {
	t.Parallel()

	const src = ": orphan definition\n"

	var plain bytes.Buffer
	require.NoError(t, goldmarklib.New().Convert([]byte(src), &plain))

	got := render(t, src)

	assert.Equal(t, plain.String(), got)
	assert.NotContains(t, got, "<dl>")
}

func TestRenderer_FootnoteBackrefInvalidatesPairing(t *testing.T) {
	t.Parallel()

	got := render(t, "Term A\n: body ↩\n")

	// The pending term is flushed back as plain content, never an empty list.
	assert.NotContains(t, got, "<dl>")
	assert.NotContains(t, got, "<dt>")
	assert.Contains(t, got, "Term A")
}

func TestRenderer_FootnoteBackrefStopsRun(t *testing.T) {
	t.Parallel()

	got := render(t, "Term A\n: good\n: bad ↩\n: after\n")

	assert.Contains(t, got, "<dd>good</dd>")
	assert.NotContains(t, got, "<dd>bad")
	assert.NotContains(t, got, "<dd>after</dd>")
}

func TestRenderer_InlineMarkupSurvives(t *testing.T) {
	t.Parallel()

	got := render(t, "*Term* A\n: def with `code`\n")

	assert.Contains(t, got, "<dt><em>Term</em> A</dt>")
	assert.Contains(t, got, "<code>code</code>")
}

func TestRenderer_Idempotent(t *testing.T) {
	t.Parallel()

	const src = "intro\nTerm A\n: def one\n: def two\ntail\n"

	// Registering the extension twice runs the transformer twice over the
	// same tree; the second pass must not restructure its own output.
	var twice bytes.Buffer
	md := goldmarklib.New(goldmarklib.WithExtensions(goldmark.DefinitionLists, goldmark.DefinitionLists))
	require.NoError(t, md.Convert([]byte(src), &twice))

	assert.Equal(t, render(t, src), twice.String())
}
