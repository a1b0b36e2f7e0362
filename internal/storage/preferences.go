package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Justice-Caban/QuickQuotes/internal/theme"
)

// Preference keys
const (
	PrefThemeMode     = "theme.mode"
	PrefCustomColor   = "theme.custom_color"
	PrefPreviousTheme = "theme.previous_mode"
)

// PreferenceManager stores key/value preferences
type PreferenceManager struct {
	db *DB
}

// NewPreferenceManager creates a new preference manager
func NewPreferenceManager(db *DB) *PreferenceManager {
	return &PreferenceManager{db: db}
}

// Get returns the value for key
func (pm *PreferenceManager) Get(key string) (string, bool, error) {
	var value string
	err := pm.db.conn.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts key
func (pm *PreferenceManager) Set(key, value string) error {
	return setPreference(pm.db.conn, key, value)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setPreference(e execer, key, value string) error {
	_, err := e.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

// LoadTheme returns the stored theme preference. ok is false when no mode
// has been saved yet.
func (pm *PreferenceManager) LoadTheme() (pref theme.Preference, ok bool, err error) {
	mode, ok, err := pm.Get(PrefThemeMode)
	if err != nil || !ok {
		return theme.Preference{}, false, err
	}

	pref.Mode = theme.Mode(mode)
	if pref.CustomColor, _, err = pm.Get(PrefCustomColor); err != nil {
		return theme.Preference{}, false, err
	}
	prev, _, err := pm.Get(PrefPreviousTheme)
	if err != nil {
		return theme.Preference{}, false, err
	}
	pref.PreviousMode = theme.Mode(prev)

	return pref, true, nil
}

// SaveTheme writes every field of p in one transaction
func (pm *PreferenceManager) SaveTheme(p theme.Preference) error {
	return pm.db.WithTransaction(func(tx *sql.Tx) error {
		if err := setPreference(tx, PrefThemeMode, string(p.Mode)); err != nil {
			return err
		}
		if err := setPreference(tx, PrefCustomColor, p.CustomColor); err != nil {
			return err
		}
		return setPreference(tx, PrefPreviousTheme, string(p.PreviousMode))
	})
}
