package tui

import (
	"fmt"

	"github.com/Justice-Caban/QuickQuotes/internal/config"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/gallery"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/notify"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/settings"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/themepage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// ViewType represents the current active view
type ViewType string

const (
	ViewGallery   ViewType = "gallery"
	ViewFavorites ViewType = "favorites"
	ViewTheme     ViewType = "theme"
	ViewSettings  ViewType = "settings"
)

// viewOrder maps the number keys to views
var viewOrder = []ViewType{ViewGallery, ViewFavorites, ViewTheme, ViewSettings}

// Options are the dependencies of the application model
type Options struct {
	Config     *config.Config
	Storage    *storage.Storage
	Controller *theme.Controller
	UserID     string
	Logger     zerolog.Logger

	// SaveTheme persists applied theme changes. Live previews are skipped.
	SaveTheme func(theme.Preference)
}

// AppModel is the root model for the entire TUI application
type AppModel struct {
	currentView ViewType
	ready       bool
	width       int
	height      int

	// Dependencies
	config  *config.Config
	storage *storage.Storage
	ctrl    *theme.Controller
	logger  zerolog.Logger
	save    func(theme.Preference)

	// Theme
	styles      theme.Styles
	changes     chan struct{}
	unsubscribe func()

	notifications notify.List

	// View models
	galleryModel   gallery.Model
	favoritesModel gallery.Model
	themeModel     themepage.Model
	settingsModel  settings.Model
}

// themeChangedMsg is sent when the style variable store changed
type themeChangedMsg struct{}

// NewAppModel creates a new application model
func NewAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = theme.NewController(theme.NewVarStore(), theme.Options{Logger: opts.Logger})
	}

	userID := opts.UserID
	if userID == "" {
		userID = cfg.User.ID
	}

	m := AppModel{
		currentView: ViewGallery,
		config:      cfg,
		storage:     opts.Storage,
		ctrl:        ctrl,
		logger:      opts.Logger,
		save:        opts.SaveTheme,
		changes:     make(chan struct{}, 1),
	}

	// Coalesce store notifications into a single pending signal
	changes := m.changes
	logger := opts.Logger
	m.unsubscribe = ctrl.Store().Subscribe(func(c theme.Change) {
		logger.Debug().Str("key", c.Key).Str("value", c.New).Bool("removed", c.Removed).Msg("style variable changed")
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	m.styles = theme.NewStyles(ctrl.Store(), baseMode(ctrl))
	m.galleryModel = gallery.NewModel(opts.Storage, userID, gallery.ModeAll, m.styles)
	m.favoritesModel = gallery.NewModel(opts.Storage, userID, gallery.ModeFavorites, m.styles)
	m.themeModel = themepage.NewModel(ctrl, m.styles)
	m.settingsModel = settings.NewModel(cfg, ctrl, opts.Storage, m.styles)

	if cfg.Preferences.ShowFavoritesOnly {
		m.currentView = ViewFavorites
	}

	return m
}

// baseMode is the static stylesheet custom variables are layered on
func baseMode(ctrl *theme.Controller) theme.Mode {
	if mode := ctrl.CurrentMode(); mode.IsStatic() {
		return mode
	}
	return ctrl.PreviousMode()
}

// Close stops listening for theme changes
func (m AppModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.galleryModel.Init(),
		m.favoritesModel.Init(),
		m.settingsModel.Init(),
		waitForThemeChange(m.changes),
	)
}

// Update handles all messages and routes them appropriately
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case themeChangedMsg:
		m.applyStyles()
		return m, waitForThemeChange(m.changes)

	case themepage.ChangedMsg:
		// Light and dark switch stylesheets without touching the store
		m.applyStyles()
		if !msg.Preview && m.save != nil {
			m.save(msg.Preference)
		}
		return m, nil

	case notify.Msg:
		n := msg.Notification
		if n.Severity >= notify.SeverityWarning {
			m.logger.Warn().Str("title", n.Title).Str("message", n.Message).Msg("notification")
		}
		m.notifications.Add(n)
		return m, nil

	case tea.KeyMsg:
		// Text inputs get every key
		if m.textEntryActive() {
			return m.routeToActive(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.notifications.Dismiss() {
				return m, nil
			}

		case "1", "2", "3", "4":
			return m.switchView(viewOrder[msg.String()[0]-'1'])
		}

		return m.routeToActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header and status bar take four lines
		size := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-4, 1)}
		m.galleryModel, _ = m.galleryModel.Update(size)
		m.favoritesModel, _ = m.favoritesModel.Update(size)
		m.themeModel, _ = m.themeModel.Update(size)
		m.settingsModel, _ = m.settingsModel.Update(size)
		return m, nil
	}

	// Everything else goes to every view; each ignores what it does not own
	var cmds [4]tea.Cmd
	m.galleryModel, cmds[0] = m.galleryModel.Update(msg)
	m.favoritesModel, cmds[1] = m.favoritesModel.Update(msg)
	m.themeModel, cmds[2] = m.themeModel.Update(msg)
	m.settingsModel, cmds[3] = m.settingsModel.Update(msg)

	return m, tea.Batch(cmds[:]...)
}

// textEntryActive reports whether the active view has a focused text input
func (m AppModel) textEntryActive() bool {
	switch m.currentView {
	case ViewGallery:
		return m.galleryModel.Searching()
	case ViewFavorites:
		return m.favoritesModel.Searching()
	case ViewTheme:
		return m.themeModel.Editing()
	}
	return false
}

// switchView activates view and refreshes its data
func (m AppModel) switchView(view ViewType) (tea.Model, tea.Cmd) {
	m.currentView = view
	m.logger.Debug().Str("view", string(view)).Msg("switched view")

	var cmd tea.Cmd
	switch view {
	case ViewGallery:
		m.galleryModel, cmd = m.galleryModel.Refresh()
	case ViewFavorites:
		m.favoritesModel, cmd = m.favoritesModel.Refresh()
	case ViewSettings:
		cmd = m.settingsModel.Init()
	}

	return m, cmd
}

// routeToActive sends msg to the active view only
func (m AppModel) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewGallery:
		m.galleryModel, cmd = m.galleryModel.Update(msg)
	case ViewFavorites:
		m.favoritesModel, cmd = m.favoritesModel.Update(msg)
	case ViewTheme:
		m.themeModel, cmd = m.themeModel.Update(msg)
	case ViewSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}

	return m, cmd
}

// applyStyles rebuilds the styles from the store and hands them to every view
func (m *AppModel) applyStyles() {
	m.styles = theme.NewStyles(m.ctrl.Store(), baseMode(m.ctrl))
	m.galleryModel.SetStyles(m.styles)
	m.favoritesModel.SetStyles(m.styles)
	m.themeModel.SetStyles(m.styles)
	m.settingsModel.SetStyles(m.styles)
}

// View renders the current view
func (m AppModel) View() string {
	if !m.ready {
		return "Initializing QuickQuotes..."
	}

	var content string

	switch m.currentView {
	case ViewGallery:
		content = m.galleryModel.View()
	case ViewFavorites:
		content = m.favoritesModel.View()
	case ViewTheme:
		content = m.themeModel.View()
	case ViewSettings:
		content = m.settingsModel.View()
	}

	if m.notifications.HasErrors() {
		content = lipgloss.JoinVertical(lipgloss.Left, m.notifications.Render(m.width, m.styles), content)
	}

	header := m.renderHeader()
	statusBar := m.renderStatusBar()

	mainContent := lipgloss.NewStyle().
		Width(m.width).
		Height(max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 0)).
		MaxHeight(max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 0)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, mainContent, statusBar)
}

// renderHeader renders the navigation tabs
func (m AppModel) renderHeader() string {
	labels := map[ViewType]string{
		ViewGallery:   "Gallery",
		ViewFavorites: "Favorites",
		ViewTheme:     "Theme",
		ViewSettings:  "Settings",
	}

	tabs := []string{m.styles.Title.MarginBottom(0).Render("✦ QuickQuotes ")}
	for i, v := range viewOrder {
		tabs = append(tabs, m.styles.RenderTab(fmt.Sprintf("%d %s", i+1, labels[v]), v == m.currentView))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

// renderStatusBar renders the bottom status bar
func (m AppModel) renderStatusBar() string {
	viewName := fmt.Sprintf("View: %s", m.currentView)
	themeName := fmt.Sprintf("Theme: %s", m.ctrl.CurrentMode().Title())
	help := "q: quit"
	if m.notifications.HasErrors() {
		help = "Esc: dismiss • q: quit"
	}

	return m.styles.StatusBarText(viewName, themeName, help)
}

// waitForThemeChange blocks until the store signals a change
func waitForThemeChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return themeChangedMsg{}
	}
}
