package storage

import (
	"fmt"
)

// Storage provides a unified interface to all storage managers
type Storage struct {
	db          *DB
	Preferences *PreferenceManager
	Quotes      *QuoteManager
	Favorites   *FavoriteManager
}

// NewStorage opens the database at path and creates every manager
func NewStorage(path string) (*Storage, error) {
	db, err := NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	return newStorage(db), nil
}

func newStorage(db *DB) *Storage {
	return &Storage{
		db:          db,
		Preferences: NewPreferenceManager(db),
		Quotes:      NewQuoteManager(db),
		Favorites:   NewFavoriteManager(db),
	}
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database for advanced operations
func (s *Storage) GetDB() *DB {
	return s.db
}

// ExportData exports all data for backup purposes
func (s *Storage) ExportData(userID string) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	quotes, err := s.Quotes.List(QuoteFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to export quotes: %w", err)
	}
	data["quotes"] = quotes

	favorites, err := s.Favorites.ListQuotes(userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to export favorites: %w", err)
	}
	data["favorites"] = favorites

	pref, ok, err := s.Preferences.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("failed to export preferences: %w", err)
	}
	if ok {
		data["theme"] = pref
	}

	return data, nil
}

// ClearAllData removes all quotes, favorites and preferences
func (s *Storage) ClearAllData() error {
	for _, table := range []string{"favorites", "quotes", "preferences"} {
		if _, err := s.db.conn.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
