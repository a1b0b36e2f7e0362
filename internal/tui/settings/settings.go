package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/Justice-Caban/QuickQuotes/internal/config"
	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/notify"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// labelWidth aligns the settings values
const labelWidth = 20

// Model represents the settings view model
type Model struct {
	width  int
	height int

	config  *config.Config
	ctrl    *theme.Controller
	storage *storage.Storage
	styles  theme.Styles

	// Library stats
	counts     map[palette.Category]int
	statsError error
	loadedAt   time.Time
}

// NewModel creates a new settings model
func NewModel(cfg *config.Config, ctrl *theme.Controller, st *storage.Storage, styles theme.Styles) Model {
	return Model{
		config:  cfg,
		ctrl:    ctrl,
		storage: st,
		styles:  styles,
	}
}

// SetStyles swaps in styles rebuilt after a theme change
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// Config returns the currently loaded configuration
func (m Model) Config() *config.Config {
	return m.config
}

// Init initializes the settings model
func (m Model) Init() tea.Cmd {
	return m.loadStats
}

// Update handles messages for the settings view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			// Reload configuration
			return m, reloadConfig

		case "s", "S":
			// Refresh stats
			return m, m.loadStats
		}

	case configReloadedMsg:
		if msg.err != nil {
			return m, notify.Cmd(notify.FromError("Config Error", msg.err))
		}
		m.config = msg.config
		return m, notify.Cmd(notify.Info("Configuration reloaded", config.GetConfigPath()))

	case statsLoadedMsg:
		m.counts = msg.counts
		m.statsError = msg.err
		m.loadedAt = time.Now()
		return m, nil
	}

	return m, nil
}

// View renders the settings view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("⚙️  Settings"))
	b.WriteString("\n")

	b.WriteString(m.renderAppearance())
	b.WriteString("\n")
	b.WriteString(m.renderLibrary())
	b.WriteString("\n")
	b.WriteString(m.renderPaths())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderAppearance renders the active theme state
func (m Model) renderAppearance() string {
	var b strings.Builder

	if m.ctrl != nil {
		pref := m.ctrl.Preference()
		b.WriteString(m.renderConfigLine("Theme", pref.Mode.Title()))
		b.WriteString(m.renderConfigLine("Custom Color", pref.CustomColor+"  "+theme.PreviewButton(pref.CustomColor, "  ")))
		b.WriteString(m.renderConfigLine("Reset Target", pref.PreviousMode.Title()))
	}

	if m.config != nil {
		b.WriteString(m.renderConfigLine("Startup Theme", m.config.ThemeMode().Title()))
		b.WriteString(m.renderConfigLine("Favorites Only", fmt.Sprintf("%t", m.config.Preferences.ShowFavoritesOnly)))
	} else {
		b.WriteString(m.styles.MutedText.Render("No configuration loaded"))
		b.WriteString("\n")
	}

	return m.styles.RenderSection("Appearance", b.String())
}

// renderLibrary renders quote counts per category
func (m Model) renderLibrary() string {
	var b strings.Builder

	switch {
	case m.statsError != nil:
		b.WriteString(m.styles.Error.Render("✗ Failed to load stats"))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("Error: %v", m.statsError)))
		b.WriteString("\n")

	case m.counts == nil:
		b.WriteString(m.styles.MutedText.Render("Loading stats..."))
		b.WriteString("\n")

	default:
		total := 0
		for _, c := range palette.AllCategories() {
			n := m.counts[c]
			total += n
			b.WriteString(m.renderConfigLine(m.styles.CategoryBadge(c, c.Title()), fmt.Sprintf("%d", n)))
		}
		b.WriteString(m.renderConfigLine("Total", fmt.Sprintf("%d", total)))
	}

	return m.styles.RenderSection("Library", b.String())
}

// renderPaths renders file locations
func (m Model) renderPaths() string {
	var b strings.Builder

	b.WriteString(m.renderConfigLine("Config Path", config.GetConfigPath()))
	if m.config != nil {
		b.WriteString(m.renderConfigLine("Database", m.config.Paths.Database))
		b.WriteString(m.renderConfigLine("Log File", m.config.Paths.Log))
		b.WriteString(m.renderConfigLine("Log Level", m.config.Logging.Level))
		b.WriteString(m.renderConfigLine("User", m.config.User.ID))
	}

	return m.styles.RenderSection("Application", b.String())
}

// renderConfigLine renders a configuration line
func (m Model) renderConfigLine(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.styles.Value.Width(labelWidth).Render(label+":"),
		m.styles.Text.Render(value),
	) + "\n"
}

// renderFooter renders the footer with controls
func (m Model) renderFooter() string {
	controls := []string{
		"r: reload config",
		"s: refresh stats",
	}

	if !m.loadedAt.IsZero() {
		controls = append(controls, "stats "+formatRelativeTime(m.loadedAt))
	}

	return m.styles.Help.Render(strings.Join(controls, " • "))
}

// formatRelativeTime formats a time relative to now
func formatRelativeTime(t time.Time) string {
	duration := time.Since(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		minutes := int(duration.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
}

// Messages

type configReloadedMsg struct {
	config *config.Config
	err    error
}

type statsLoadedMsg struct {
	counts map[palette.Category]int
	err    error
}

// Commands

func reloadConfig() tea.Msg {
	cfg, err := config.Load()
	return configReloadedMsg{config: cfg, err: err}
}

func (m Model) loadStats() tea.Msg {
	if m.storage == nil {
		return statsLoadedMsg{err: fmt.Errorf("storage is not available")}
	}

	counts, err := m.storage.Quotes.CountByCategory()
	return statsLoadedMsg{counts: counts, err: err}
}
