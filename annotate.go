package deflist

// markerWidth is the byte width of a definition marker and its mandatory
// trailing space.
const markerWidth = 2

// BuildDirectives produces the styling/visibility directives for one
// annotation pass over doc with the given selection. The result is ordered
// by document position and rebuilt from scratch on every call; nothing is
// retained between passes.
//
// When live is false (the host surface is not in the live-editing visual
// mode) the pass is skipped entirely and the result is nil.
func BuildDirectives(doc Buffer, selection []Range, live bool) []Directive {
	if !live || doc == nil {
		return nil
	}

	n := doc.LineCount()
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = doc.Line(i).Text
	}
	roles := ClassifyLines(lines)

	var out []Directive
	for i, role := range roles {
		line := doc.Line(i)
		switch role.Role {
		case RoleTerm:
			out = append(out, Directive{
				From: line.Start,
				To:   line.Start,
				Kind: LineTerm,
			})

		case RoleDefinition:
			out = append(out, Directive{
				From:     line.Start,
				To:       line.Start,
				Kind:     LineDefinition,
				Indented: role.Indent > 0,
			})

			markerFrom := line.Start + role.QuotePrefix + role.Indent
			markerTo := markerFrom + markerWidth
			if selectionTouches(selection, markerFrom, markerTo) {
				out = append(out, Directive{From: markerFrom, To: markerTo, Kind: MarkerVisible})
			} else {
				out = append(out, Directive{From: markerFrom, To: markerTo, Kind: MarkerHidden})
				out = append(out, Directive{From: markerTo, To: markerTo + 1, Kind: MarginReserve})
			}

			if markerTo < line.End {
				out = append(out, Directive{From: markerTo, To: line.End, Kind: DefinitionBody})
			}
		}
	}
	return out
}

func selectionTouches(selection []Range, from, to int) bool {
	for _, r := range selection {
		if r.Overlaps(from, to) {
			return true
		}
	}
	return false
}
