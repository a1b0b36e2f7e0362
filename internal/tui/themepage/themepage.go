// Package themepage is the view for picking the theme mode and custom color
package themepage

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/notify"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChangedMsg is sent after the theme state changed. Preview marks colors
// shown while typing that the user has not applied yet.
type ChangedMsg struct {
	Preference theme.Preference
	Preview    bool
}

// Model represents the theme view model
type Model struct {
	width  int
	height int

	ctrl   *theme.Controller
	styles theme.Styles

	input   textinput.Model
	editing bool
}

// NewModel creates a new theme view model
func NewModel(ctrl *theme.Controller, styles theme.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = theme.DefaultCustomColor
	ti.CharLimit = 7
	ti.Width = 10
	ti.Prompt = "Color: "
	ti.SetValue(ctrl.CurrentCustomColor())

	m := Model{
		ctrl:  ctrl,
		input: ti,
	}
	m.SetStyles(styles)
	return m
}

// SetStyles swaps in styles rebuilt after a theme change
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.input.PromptStyle = s.Value.Bold(true)
	m.input.TextStyle = s.Text
	m.input.PlaceholderStyle = s.MutedText.Italic(true)
	m.input.Cursor.Style = s.Value
}

// Editing reports whether the color input has focus
func (m Model) Editing() bool {
	return m.editing
}

// Init initializes the theme model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the theme view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleInput(msg)
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles keyboard input while the color input is blurred
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		return m, m.selectMode(theme.ModeLight)

	case "d":
		return m, m.selectMode(theme.ModeDark)

	case "c":
		return m, m.selectMode(theme.ModeCustom)

	case "r":
		prev := m.ctrl.PreviousMode()
		if err := m.ctrl.Reset(); err != nil {
			return m, notify.Cmd(notify.FromError("Reset Failed", err))
		}
		return m, tea.Batch(m.changed(), notify.Cmd(notify.Info("Theme reset!", "Restored to "+prev.Title()+" theme")))

	case "e", "/":
		m.editing = true
		cmd := m.input.Focus()
		return m, cmd
	}

	return m, nil
}

// handleInput handles keyboard input while editing the color
func (m Model) handleInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.input.SetValue(m.ctrl.CurrentCustomColor())
		return m, nil

	case tea.KeyEnter:
		return m.apply()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Live preview once a full color has been typed
	value := strings.TrimSpace(m.input.Value())
	if m.ctrl.CurrentMode() == theme.ModeCustom && color.ValidHex(value) &&
		!strings.EqualFold(value, m.ctrl.CurrentCustomColor()) {
		if err := m.ctrl.SetCustomColor(value); err == nil {
			return m, tea.Batch(cmd, m.previewed())
		}
	}

	return m, cmd
}

// apply stores the typed color and switches to the custom theme
func (m Model) apply() (Model, tea.Cmd) {
	if err := m.ctrl.SetCustomColor(strings.TrimSpace(m.input.Value())); err != nil {
		return m, notify.Cmd(notify.FromError("Invalid Color", err))
	}
	if m.ctrl.CurrentMode() != theme.ModeCustom {
		if err := m.ctrl.SelectMode(theme.ModeCustom); err != nil {
			return m, notify.Cmd(notify.FromError("Theme Error", err))
		}
	}

	m.editing = false
	m.input.Blur()
	m.input.SetValue(m.ctrl.CurrentCustomColor())

	return m, tea.Batch(m.changed(), notify.Cmd(notify.Info("Custom theme applied!", "Your personalized theme has been activated")))
}

func (m Model) selectMode(mode theme.Mode) tea.Cmd {
	if err := m.ctrl.SelectMode(mode); err != nil {
		return notify.Cmd(notify.FromError("Theme Error", err))
	}
	return m.changed()
}

func (m Model) changed() tea.Cmd {
	pref := m.ctrl.Preference()
	return func() tea.Msg {
		return ChangedMsg{Preference: pref}
	}
}

func (m Model) previewed() tea.Cmd {
	pref := m.ctrl.Preference()
	return func() tea.Msg {
		return ChangedMsg{Preference: pref, Preview: true}
	}
}

// View renders the theme view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Choose Theme"))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Personalize your QuickQuotes experience"))
	b.WriteString("\n")

	b.WriteString(m.renderModes())
	b.WriteString("\n")
	b.WriteString(m.renderColor())
	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderModes renders the mode selector
func (m Model) renderModes() string {
	current := m.ctrl.CurrentMode()
	tabs := []string{
		m.styles.RenderTab("l Light", current == theme.ModeLight),
		m.styles.RenderTab("d Dark", current == theme.ModeDark),
		m.styles.RenderTab("c Custom", current == theme.ModeCustom),
	}

	return m.styles.RenderSection("Theme Options", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderColor renders the color input and the derived values
func (m Model) renderColor() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	hex := m.previewHex()
	if base, err := color.HexToHSL(hex); err == nil {
		b.WriteString(m.styles.RenderKeyValue("HSL", base.String()))
		b.WriteString("\n")
	}
	if p, ok := m.ctrl.Palette(); ok {
		for _, r := range palette.AllRoles() {
			b.WriteString(m.styles.RenderKeyValue(fmt.Sprintf("%-20s", r.VarName()), p.Role(r).String()))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.styles.MutedText.Render("Select custom to apply this color"))
		b.WriteString("\n")
	}

	return m.styles.RenderSection("Custom Color", b.String())
}

// renderPreview renders sample components in the picked color
func (m Model) renderPreview() string {
	hex := m.previewHex()

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		theme.PreviewButton(hex, "Primary Button"),
		"  ",
		theme.PreviewOutline(hex, "Outline Button"),
	)

	badges := make([]string, 0, palette.CategoryCount)
	for _, c := range palette.AllCategories() {
		badges = append(badges, m.styles.CategoryBadge(c, c.Title()))
	}

	return m.styles.RenderSection("Preview", buttons+"\n"+lipgloss.JoinHorizontal(lipgloss.Top, badges...))
}

// previewHex returns the typed color when valid, else the stored one
func (m Model) previewHex() string {
	if v := strings.TrimSpace(m.input.Value()); color.ValidHex(v) {
		return strings.ToLower(v)
	}
	return m.ctrl.CurrentCustomColor()
}

// renderFooter renders the footer with controls
func (m Model) renderFooter() string {
	controls := []string{
		"l/d/c: mode",
		"e: edit color",
		"r: reset",
	}
	if m.editing {
		controls = []string{
			"Enter: apply",
			"Esc: cancel",
		}
	}

	return m.styles.Help.Render(strings.Join(controls, " • "))
}
