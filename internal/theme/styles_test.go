package theme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_StaticFallback(t *testing.T) {
	store := NewVarStore()

	assert.Equal(t, "262 83% 58%", Resolve(store, ModeLight, "--primary"))
	assert.Equal(t, "263 70% 50%", Resolve(store, ModeDark, "--primary"))

	store.Set("--primary", "10 10% 10%")
	assert.Equal(t, "10 10% 10%", Resolve(store, ModeDark, "--primary"))
	assert.Equal(t, "", Resolve(store, ModeDark, "--nope"))
}

func TestStaticSheetsCoverPalette(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		for _, key := range palette.VarNames() {
			_, ok := StaticValue(mode, key)
			assert.True(t, ok, "%s missing %s", mode, key)
		}
	}
}

func TestStaticSheetsHaveNoUnknownKeys(t *testing.T) {
	known := map[string]bool{
		VarBackground:      true,
		VarForeground:      true,
		VarMutedForeground: true,
		VarDestructive:     true,
		VarSuccess:         true,
		VarWarning:         true,
	}
	for _, key := range palette.VarNames() {
		known[key] = true
	}

	for name, sheet := range map[string]map[string]string{"light": lightSheet, "dark": darkSheet} {
		assert.Len(t, sheet, len(known), name)
		for key := range sheet {
			assert.True(t, known[key], "%s has unknown key %s", name, key)
		}
	}
}

func TestTermColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff0000"), TermColor("0 100% 50%"))
	assert.Equal(t, lipgloss.NoColor{}, TermColor("garbage"))
}

func TestNewStyles_FollowsCustomPalette(t *testing.T) {
	store := NewVarStore()
	c := NewController(store, Options{Logger: zerolog.Nop()})

	light := NewStyles(store, c.PreviousMode())
	require.NoError(t, c.SelectMode(ModeCustom))
	custom := NewStyles(store, c.PreviousMode())

	assert.NotEqual(t, light.Primary, custom.Primary)
	assert.Equal(t, TermColor("239 84% 57%"), custom.Primary)
	assert.Equal(t, ModeLight, custom.Base())

	require.NoError(t, c.Reset())
	assert.Equal(t, light.Primary, NewStyles(store, c.PreviousMode()).Primary)
}

func TestStylesRender(t *testing.T) {
	s := NewStyles(NewVarStore(), ModeDark)

	assert.Contains(t, s.CategoryBadge(palette.Wisdom, "wisdom"), "wisdom")
	assert.Contains(t, s.RenderKeyValue("Mode", "dark"), "dark")
	assert.Contains(t, s.RenderTab("Theme", true), "Theme")
	assert.Contains(t, s.StatusBarText("a", "b"), "│")
	assert.Contains(t, PreviewButton("#ffffff", "Primary"), "Primary")
	assert.Contains(t, PreviewOutline("#000000", "Outline"), "Outline")
}

func TestCSS(t *testing.T) {
	store := NewVarStore()
	store.Set("--radius", "0.5rem")
	c := NewController(store, Options{Logger: zerolog.Nop(), Mode: ModeCustom})
	require.Equal(t, ModeCustom, c.CurrentMode())

	css := CSS(store)
	lines := strings.Split(strings.TrimSpace(css), "\n")

	require.Len(t, lines, len(palette.VarNames())+3)
	assert.Equal(t, ":root {", lines[0])
	assert.Equal(t, "  --primary: 239 84% 57%;", lines[1])
	assert.Equal(t, "  --radius: 0.5rem;", lines[len(lines)-2])
	assert.Equal(t, "}", lines[len(lines)-1])
}

func TestCSS_ConcurrentWrites(t *testing.T) {
	store := NewVarStore()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			key := fmt.Sprintf("--extra-%d", i%10)
			store.Set(key, "1px")
			store.Remove(key)
		}
	}()

	for i := 0; i < 200; i++ {
		for _, line := range strings.Split(CSS(store), "\n") {
			assert.NotContains(t, line, ": ;")
		}
	}
	<-done
}
