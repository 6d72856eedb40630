package deflist_test

import (
	"testing"

	"github.com/fwojciec/deflist"
	"github.com/fwojciec/deflist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caret(pos int) []deflist.Range {
	return []deflist.Range{{From: pos, To: pos}}
}

func TestBuildDirectives_NotLive(t *testing.T) {
	t.Parallel()

	doc := deflist.NewDocument("Term A\n: definition one")

	got := deflist.BuildDirectives(doc, caret(0), false)

	assert.Nil(t, got)
}

func TestBuildDirectives_TermAndDefinition(t *testing.T) {
	t.Parallel()

	// Offsets: "Term A" is [0,6), ": definition one" is [7,23).
	doc := deflist.NewDocument("Term A\n: definition one")

	got := deflist.BuildDirectives(doc, caret(0), true)

	require.Len(t, got, 5)

	assert.Equal(t, deflist.Directive{From: 0, To: 0, Kind: deflist.LineTerm}, got[0])
	assert.Equal(t, deflist.Directive{From: 7, To: 7, Kind: deflist.LineDefinition}, got[1])
	// Caret at 0 does not touch the marker span [7,9]: hidden + margin.
	assert.Equal(t, deflist.Directive{From: 7, To: 9, Kind: deflist.MarkerHidden}, got[2])
	assert.Equal(t, deflist.Directive{From: 9, To: 10, Kind: deflist.MarginReserve}, got[3])
	assert.Equal(t, deflist.Directive{From: 9, To: 23, Kind: deflist.DefinitionBody}, got[4])
}

func TestBuildDirectives_BodySpan(t *testing.T) {
	t.Parallel()

	doc := deflist.NewDocument("Term A\n: definition one")

	got := deflist.BuildDirectives(doc, caret(8), true)

	// Caret at 8 touches the marker span [7,9]: visible marker, no margin
	// reserve, body span after the marker.
	require.Len(t, got, 4)
	assert.Equal(t, deflist.Directive{From: 7, To: 9, Kind: deflist.MarkerVisible}, got[2])
	assert.Equal(t, deflist.Directive{From: 9, To: 23, Kind: deflist.DefinitionBody}, got[3])
}

func TestBuildDirectives_MarkerOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sel     []deflist.Range
		visible bool
	}{
		{"caret before line", caret(0), false},
		{"caret at marker start", caret(7), true},
		{"caret inside marker", caret(8), true},
		{"caret just past marker", caret(9), true},
		{"caret in body", caret(12), false},
		{"selection spanning marker", []deflist.Range{{From: 2, To: 20}}, true},
		{"second range touches", []deflist.Range{{From: 0, To: 1}, {From: 8, To: 8}}, true},
		{"empty selection", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := deflist.NewDocument("Term A\n: definition one")
			got := deflist.BuildDirectives(doc, tt.sel, true)

			var visible, hidden, margin int
			for _, d := range got {
				switch d.Kind {
				case deflist.MarkerVisible:
					visible++
				case deflist.MarkerHidden:
					hidden++
				case deflist.MarginReserve:
					margin++
				}
			}

			if tt.visible {
				assert.Equal(t, 1, visible)
				assert.Zero(t, hidden)
				assert.Zero(t, margin)
			} else {
				assert.Zero(t, visible)
				assert.Equal(t, 1, hidden)
				assert.Equal(t, 1, margin, "hidden marker reserves exactly one character")
			}
		})
	}
}

func TestBuildDirectives_OverlapExample(t *testing.T) {
	t.Parallel()

	// A caret at 5 touches the span [3,6]: 3 <= 5 && 6 >= 5.
	r := deflist.Range{From: 5, To: 5}

	assert.True(t, r.Overlaps(3, 6))
}

func TestBuildDirectives_IndentedVariant(t *testing.T) {
	t.Parallel()

	doc := deflist.NewDocument("Term A\n: flat\n  ~ indented")

	got := deflist.BuildDirectives(doc, nil, true)

	var defs []deflist.Directive
	for _, d := range got {
		if d.Kind == deflist.LineDefinition {
			defs = append(defs, d)
		}
	}
	require.Len(t, defs, 2)
	assert.False(t, defs[0].Indented)
	assert.True(t, defs[1].Indented)
}

func TestBuildDirectives_QuotePrefixShiftsMarker(t *testing.T) {
	t.Parallel()

	// "> Term" is [0,6), "> : def" is [7,14); the marker sits after the
	// two byte quote prefix, at [9,11].
	doc := deflist.NewDocument("> Term\n> : def")

	got := deflist.BuildDirectives(doc, nil, true)

	var hidden *deflist.Directive
	for i, d := range got {
		if d.Kind == deflist.MarkerHidden {
			hidden = &got[i]
			break
		}
	}
	require.NotNil(t, hidden)
	assert.Equal(t, 9, hidden.From)
	assert.Equal(t, 11, hidden.To)
}

func TestBuildDirectives_Deterministic(t *testing.T) {
	t.Parallel()

	doc := deflist.NewDocument("Term A\n: one\n: two\n\nplain\n")
	sel := []deflist.Range{{From: 3, To: 11}}

	first := deflist.BuildDirectives(doc, sel, true)
	second := deflist.BuildDirectives(doc, sel, true)

	assert.Equal(t, first, second)
}

func TestBuildDirectives_BufferInterface(t *testing.T) {
	t.Parallel()

	// The pass only depends on the Buffer interface, not on Document.
	lines := []deflist.Line{
		{Start: 0, End: 6, Text: "Term A"},
		{Start: 7, End: 23, Text: ": definition one"},
	}
	buf := &mock.Buffer{
		LineCountFn: func() int { return len(lines) },
		LineFn: func(i int) deflist.Line {
			if i < 0 || i >= len(lines) {
				return deflist.Line{}
			}
			return lines[i]
		},
	}

	got := deflist.BuildDirectives(buf, caret(0), true)
	want := deflist.BuildDirectives(deflist.NewDocument("Term A\n: definition one"), caret(0), true)

	assert.Equal(t, want, got)
}

func TestBuildDirectives_PlainDocument(t *testing.T) {
	t.Parallel()

	doc := deflist.NewDocument("just\nsome\nprose")

	got := deflist.BuildDirectives(doc, caret(2), true)

	assert.Empty(t, got)
}
