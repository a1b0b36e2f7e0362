package theme

import (
	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

// Keys for surfaces that only the static stylesheets define
const (
	VarBackground      = "--background"
	VarForeground      = "--foreground"
	VarMutedForeground = "--muted-foreground"
	VarDestructive     = "--destructive"
	VarSuccess         = "--success"
	VarWarning         = "--warning"
)

// Static stylesheets for light and dark mode. Custom mode overlays the
// derived palette on top of whichever of these was last active.
var (
	lightSheet = map[string]string{
		VarBackground:      "0 0% 100%",
		VarForeground:      "224 71% 4%",
		VarMutedForeground: "220 9% 46%",
		VarDestructive:     "0 84% 60%",
		VarSuccess:         "142 71% 45%",
		VarWarning:         "38 92% 50%",

		palette.Primary.VarName():           "262 83% 58%",
		palette.PrimaryForeground.VarName(): "210 20% 98%",
		palette.Secondary.VarName():         "220 14% 96%",
		palette.Accent.VarName():            "220 14% 90%",
		palette.Border.VarName():            "220 13% 91%",
		palette.Ring.VarName():              "262 83% 58%",

		palette.Motivational.VarName(): "25 95% 53%",
		palette.Life.VarName():         "142 71% 45%",
		palette.Wisdom.VarName():       "262 83% 58%",
		palette.Success.VarName():      "48 96% 53%",
		palette.Happiness.VarName():    "330 81% 60%",
		palette.Inspiration.VarName():  "199 89% 48%",
	}

	darkSheet = map[string]string{
		VarBackground:      "224 71% 4%",
		VarForeground:      "210 20% 98%",
		VarMutedForeground: "217 11% 65%",
		VarDestructive:     "0 63% 31%",
		VarSuccess:         "142 69% 58%",
		VarWarning:         "48 96% 53%",

		palette.Primary.VarName():           "263 70% 50%",
		palette.PrimaryForeground.VarName(): "210 20% 98%",
		palette.Secondary.VarName():         "215 28% 17%",
		palette.Accent.VarName():            "215 28% 22%",
		palette.Border.VarName():            "215 28% 17%",
		palette.Ring.VarName():              "263 70% 50%",

		palette.Motivational.VarName(): "25 95% 60%",
		palette.Life.VarName():         "142 69% 58%",
		palette.Wisdom.VarName():       "263 70% 65%",
		palette.Success.VarName():      "48 96% 60%",
		palette.Happiness.VarName():    "330 81% 70%",
		palette.Inspiration.VarName():  "199 89% 60%",
	}
)

// StaticValue returns the stylesheet value of key for a static mode
func StaticValue(mode Mode, key string) (string, bool) {
	sheet := lightSheet
	if mode == ModeDark {
		sheet = darkSheet
	}
	v, ok := sheet[key]
	return v, ok
}

// Resolve returns the effective value of key: the store overlay if set,
// otherwise the static stylesheet of base.
func Resolve(store *VarStore, base Mode, key string) string {
	if store != nil {
		if v, ok := store.Get(key); ok {
			return v
		}
	}
	v, _ := StaticValue(base, key)
	return v
}

// TermColor converts an "H S% L%" variable value to a lipgloss color.
// Unparseable values render as the terminal default.
func TermColor(value string) lipgloss.TerminalColor {
	hsl, err := color.ParseHSL(value)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hsl.Hex())
}

// RoleColor resolves a palette role to a lipgloss color
func RoleColor(store *VarStore, base Mode, r palette.Role) lipgloss.TerminalColor {
	return TermColor(Resolve(store, base, r.VarName()))
}

// CategoryColor resolves a category to a lipgloss color
func CategoryColor(store *VarStore, base Mode, c palette.Category) lipgloss.TerminalColor {
	return TermColor(Resolve(store, base, c.VarName()))
}
