package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/deflist"
	"github.com/fwojciec/deflist/lipgloss"
	"github.com/stretchr/testify/assert"
)

// Compile-time check that Theme implements deflist.Theme.
var _ deflist.Theme = (*lipgloss.Theme)(nil)

func TestDefaultThemeIsDark(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.DefaultTheme().Styles())
}

func TestThemesPopulateAllStyles(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := theme.Styles()
			pairs := []deflist.ColorPair{
				s.Term, s.Definition, s.Marker, s.MarginReserve,
				s.DefinitionBody, s.CodeBlock, s.LineNumber, s.StatusBar,
			}
			for i, p := range pairs {
				assert.NotEmpty(t, p.Foreground, "pair %d has no foreground", i)
			}
		})
	}
}

func TestThemesDiffer(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, lipgloss.DarkTheme().Styles(), lipgloss.LightTheme().Styles())
}
