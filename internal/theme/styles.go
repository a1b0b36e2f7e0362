package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles every view renders with. It is rebuilt
// from the VarStore whenever the theme changes.
type Styles struct {
	store *VarStore
	base  Mode

	Primary    lipgloss.TerminalColor
	PrimaryFg  lipgloss.TerminalColor
	Secondary  lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	ErrorColor lipgloss.TerminalColor
	OKColor    lipgloss.TerminalColor
	WarnColor  lipgloss.TerminalColor

	// Text Styles

	Title     lipgloss.Style
	Section   lipgloss.Style
	Help      lipgloss.Style
	MutedText lipgloss.Style
	Value     lipgloss.Style
	Text      lipgloss.Style

	// Status Styles

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Container Styles

	Box         lipgloss.Style
	Card        lipgloss.Style
	Highlight   lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	StatusBar   lipgloss.Style

	// Badge is the base for category badges
	Badge lipgloss.Style
}

// NewStyles builds styles for the current variables. base is the static
// mode custom variables are overlaid on.
func NewStyles(store *VarStore, base Mode) Styles {
	if !base.IsStatic() {
		base = ModeLight
	}

	s := Styles{
		store:      store,
		base:       base,
		Primary:    RoleColor(store, base, palette.Primary),
		PrimaryFg:  RoleColor(store, base, palette.PrimaryForeground),
		Secondary:  RoleColor(store, base, palette.Secondary),
		Accent:     RoleColor(store, base, palette.Accent),
		Border:     RoleColor(store, base, palette.Border),
		Foreground: TermColor(Resolve(store, base, VarForeground)),
		Muted:      TermColor(Resolve(store, base, VarMutedForeground)),
		ErrorColor: TermColor(Resolve(store, base, VarDestructive)),
		OKColor:    TermColor(Resolve(store, base, VarSuccess)),
		WarnColor:  TermColor(Resolve(store, base, VarWarning)),
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(s.Primary).MarginBottom(1)
	s.Section = lipgloss.NewStyle().Bold(true).Foreground(s.Primary).MarginTop(1)
	s.Help = lipgloss.NewStyle().Foreground(s.Muted).MarginTop(1)
	s.MutedText = lipgloss.NewStyle().Foreground(s.Muted)
	s.Value = lipgloss.NewStyle().Foreground(s.Accent)
	s.Text = lipgloss.NewStyle().Foreground(s.Foreground)

	s.Success = lipgloss.NewStyle().Foreground(s.OKColor).Bold(true)
	s.Error = lipgloss.NewStyle().Foreground(s.ErrorColor).Bold(true)
	s.Warning = lipgloss.NewStyle().Foreground(s.WarnColor)

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(1, 2)
	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 1)
	s.Highlight = lipgloss.NewStyle().
		Background(s.Primary).
		Foreground(s.PrimaryFg).
		Bold(true)
	s.ActiveTab = s.Highlight.Padding(0, 2)
	s.InactiveTab = lipgloss.NewStyle().Foreground(s.Muted).Padding(0, 2)
	s.StatusBar = lipgloss.NewStyle().
		Foreground(s.PrimaryFg).
		Background(s.Primary).
		Padding(0, 1)

	s.Badge = lipgloss.NewStyle().Padding(0, 1)

	return s
}

// Base returns the static mode the styles were built on
func (s Styles) Base() Mode {
	return s.base
}

// CategoryBadge renders name as an outlined badge in the category color
func (s Styles) CategoryBadge(c palette.Category, name string) string {
	return s.Badge.
		Foreground(CategoryColor(s.store, s.base, c)).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(CategoryColor(s.store, s.base, c)).
		Render(name)
}

// RenderKeyValue renders a key-value pair with consistent styling
func (s Styles) RenderKeyValue(key, value string) string {
	return s.MutedText.Render(key+": ") + s.Value.Render(value)
}

// RenderTab renders a tab with appropriate styling based on active state
func (s Styles) RenderTab(label string, isActive bool) string {
	if isActive {
		return s.ActiveTab.Render(label)
	}
	return s.InactiveTab.Render(label)
}

// RenderSection renders a section with a title and content
func (s Styles) RenderSection(title, content string) string {
	return s.Section.Render(title) + "\n" + content
}

// StatusBarText joins items into the status bar
func (s Styles) StatusBarText(items ...string) string {
	return s.StatusBar.Render(strings.Join(items, " │ "))
}

// PreviewButton renders a filled button in hex with contrasting text,
// the way a freshly picked color will look before it is applied.
func PreviewButton(hex, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(color.ContrastText(hex))).
		Padding(0, 2).
		Render(label)
}

// PreviewOutline renders an outlined button in hex
func PreviewOutline(hex, label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hex)).
		Padding(0, 1).
		Render(label)
}

// CSS renders the store as a :root block for web stylesheets. Palette keys
// come first in publish order, anything else follows sorted. Every line
// comes from one snapshot.
func CSS(store *VarStore) string {
	vars := store.Snapshot()
	var b strings.Builder
	b.WriteString(":root {\n")

	seen := make(map[string]bool, len(vars))
	for _, key := range palette.VarNames() {
		if v, ok := vars[key]; ok {
			fmt.Fprintf(&b, "  %s: %s;\n", key, v)
			seen[key] = true
		}
	}
	rest := make([]string, 0, len(vars))
	for key := range vars {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(&b, "  %s: %s;\n", key, vars[key])
	}

	b.WriteString("}\n")
	return b.String()
}
