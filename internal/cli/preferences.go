package cli

import (
	"github.com/Justice-Caban/QuickQuotes/internal/config"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
)

// loadPreference returns the saved theme. The database holds the live
// value; the config file seeds it on first run.
func (a *app) loadPreference(st *storage.Storage) theme.Preference {
	pref := theme.Preference{
		Mode:         a.cfg.ThemeMode(),
		CustomColor:  a.cfg.Preferences.CustomColor,
		PreviousMode: a.cfg.PreviousThemeMode(),
	}
	if st == nil {
		return pref
	}

	saved, ok, err := st.Preferences.LoadTheme()
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to load saved theme, using config")
		return pref
	}
	if !ok {
		return pref
	}
	return saved
}

// newController builds a theme controller seeded from the saved theme
func (a *app) newController(st *storage.Storage) *theme.Controller {
	pref := a.loadPreference(st)

	return theme.NewController(theme.NewVarStore(), theme.Options{
		Mode:         pref.Mode,
		CustomColor:  pref.CustomColor,
		PreviousMode: pref.PreviousMode,
		Logger:       a.logger,
	})
}

// saveTheme saves p to the database and mirrors it into the config file
func (a *app) saveTheme(st *storage.Storage, p theme.Preference) {
	if st != nil {
		if err := st.Preferences.SaveTheme(p); err != nil {
			a.logger.Error().Err(err).Msg("failed to save theme")
		}
	}

	before := a.cfg.Preferences
	a.cfg.ApplyTheme(p)
	if a.cfg.Preferences == before {
		return
	}
	if err := config.Save(a.cfg); err != nil {
		a.logger.Error().Err(err).Msg("failed to save config")
	}
}
