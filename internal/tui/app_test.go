package tui

import (
	"path/filepath"
	"testing"

	"github.com/Justice-Caban/QuickQuotes/internal/config"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/notify"
	"github.com/Justice-Caban/QuickQuotes/internal/tui/themepage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (AppModel, *theme.Controller) {
	t.Helper()
	st, err := storage.NewStorage(filepath.Join(t.TempDir(), "quickquotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctrl := theme.NewController(theme.NewVarStore(), theme.Options{})
	m := NewAppModel(Options{Config: config.DefaultConfig(), Storage: st, Controller: ctrl})
	t.Cleanup(m.Close)

	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50}), ctrl
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_SwitchViews(t *testing.T) {
	m, _ := newTestApp(t)
	assert.Equal(t, ViewGallery, m.currentView)

	for i, want := range viewOrder {
		m = update(t, m, key(string(rune('1'+i))))
		assert.Equal(t, want, m.currentView)
	}

	assert.Contains(t, m.View(), "Settings")
}

func TestApp_Quit(t *testing.T) {
	m, _ := newTestApp(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_ThemeChangeRebuildsStyles(t *testing.T) {
	m, ctrl := newTestApp(t)
	m = update(t, m, key("3"))
	m = update(t, m, key("c"))
	require.Equal(t, theme.ModeCustom, ctrl.CurrentMode())

	// The store subscription queued a signal
	msg := waitForThemeChange(m.changes)()
	require.IsType(t, themeChangedMsg{}, msg)
	m = update(t, m, msg)

	primary, ok := ctrl.Store().Get("--primary")
	require.True(t, ok)
	assert.Equal(t, theme.TermColor(primary), m.styles.Primary)
	assert.Contains(t, m.View(), "Theme: Custom")

	// Dark changes the base stylesheet
	m = update(t, m, key("d"))
	m = update(t, m, themeChangedMsg{})
	assert.Equal(t, theme.ModeDark, m.styles.Base())
}

func TestApp_TextEntryCapturesKeys(t *testing.T) {
	m, ctrl := newTestApp(t)
	m = update(t, m, key("3"))
	m = update(t, m, key("e"))
	require.True(t, m.textEntryActive())

	m = update(t, m, key("q"))
	assert.True(t, m.textEntryActive())
	m = update(t, m, key("2"))
	assert.Equal(t, ViewTheme, m.currentView)
	assert.Equal(t, theme.DefaultCustomColor, ctrl.CurrentCustomColor())
}

func TestApp_Notifications(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, notify.Msg{Notification: notify.Info("Copied", "quote")})
	assert.Equal(t, 1, m.notifications.Count())
	assert.Contains(t, m.View(), "Esc: dismiss")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0, m.notifications.Count())
}

func TestApp_StartsOnFavorites(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Preferences.ShowFavoritesOnly = true

	m := NewAppModel(Options{Config: cfg})
	defer m.Close()
	assert.Equal(t, ViewFavorites, m.currentView)
}

func TestApp_SavesOnlyAppliedThemes(t *testing.T) {
	ctrl := theme.NewController(theme.NewVarStore(), theme.Options{})
	var saved []theme.Preference
	m := NewAppModel(Options{
		Config:     config.DefaultConfig(),
		Controller: ctrl,
		SaveTheme:  func(p theme.Preference) { saved = append(saved, p) },
	})
	defer m.Close()

	preview := theme.Preference{Mode: theme.ModeCustom, CustomColor: "#ff0000", PreviousMode: theme.ModeLight}
	m = update(t, m, themepage.ChangedMsg{Preference: preview, Preview: true})
	assert.Empty(t, saved)

	applied := theme.Preference{Mode: theme.ModeDark, CustomColor: "#ff0000", PreviousMode: theme.ModeDark}
	update(t, m, themepage.ChangedMsg{Preference: applied})
	assert.Equal(t, []theme.Preference{applied}, saved)
}
