// Package lipgloss provides theme implementations using the Lipgloss styling
// library.
package lipgloss

import "github.com/fwojciec/deflist"

// Compile-time interface verification.
var _ deflist.Theme = (*Theme)(nil)

// Theme implements deflist.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles deflist.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() deflist.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: deflist.Styles{
			Term: deflist.ColorPair{
				Foreground: "#f9e2af", // Yellow, stands in for the bold dt row
			},
			Definition: deflist.ColorPair{
				Foreground: "#cdd6f4", // Body text
			},
			Marker: deflist.ColorPair{
				Foreground: "#89b4fa", // Blue, only shown near the cursor
			},
			MarginReserve: deflist.ColorPair{
				Foreground: "#313244", // Matches the background; keeps the gutter
			},
			DefinitionBody: deflist.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			CodeBlock: deflist.ColorPair{
				Foreground: "#9399b2",
				Background: "#181825",
			},
			LineNumber: deflist.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			StatusBar: deflist.ColorPair{
				Foreground: "#11111b",
				Background: "#89b4fa",
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: deflist.Styles{
			Term: deflist.ColorPair{
				Foreground: "#df8e1d",
			},
			Definition: deflist.ColorPair{
				Foreground: "#4c4f69",
			},
			Marker: deflist.ColorPair{
				Foreground: "#1e66f5",
			},
			MarginReserve: deflist.ColorPair{
				Foreground: "#e6e9ef",
			},
			DefinitionBody: deflist.ColorPair{
				Foreground: "#40a02b",
			},
			CodeBlock: deflist.ColorPair{
				Foreground: "#5c5f77",
				Background: "#e6e9ef",
			},
			LineNumber: deflist.ColorPair{
				Foreground: "#9ca0b0",
			},
			StatusBar: deflist.ColorPair{
				Foreground: "#eff1f5",
				Background: "#1e66f5",
			},
		},
	}
}
