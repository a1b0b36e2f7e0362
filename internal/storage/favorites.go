package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// FavoriteManager handles favorite join records
type FavoriteManager struct {
	db *DB
}

// NewFavoriteManager creates a new favorite manager
func NewFavoriteManager(db *DB) *FavoriteManager {
	return &FavoriteManager{db: db}
}

// IsFavorite reports whether userID has favorited quoteID
func (fm *FavoriteManager) IsFavorite(userID, quoteID string) (bool, error) {
	var count int
	err := fm.db.conn.QueryRow(`
		SELECT COUNT(*) FROM favorites WHERE user_id = ? AND quote_id = ?
	`, userID, quoteID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// Toggle adds or removes the favorite and returns the new state
func (fm *FavoriteManager) Toggle(userID, quoteID string) (bool, error) {
	var favorited bool

	err := fm.db.WithTransaction(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM quotes WHERE id = ?", quoteID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrQuoteNotFound
		}
		if err != nil {
			return err
		}

		result, err := tx.Exec("DELETE FROM favorites WHERE user_id = ? AND quote_id = ?", userID, quoteID)
		if err != nil {
			return fmt.Errorf("failed to remove favorite: %w", err)
		}
		if n, _ := result.RowsAffected(); n > 0 {
			favorited = false
			return nil
		}

		_, err = tx.Exec(`
			INSERT INTO favorites (quote_id, user_id, created_at) VALUES (?, ?, ?)
		`, quoteID, userID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		favorited = true
		return nil
	})

	return favorited, err
}

// IDs returns the set of quote IDs userID has favorited
func (fm *FavoriteManager) IDs(userID string) (map[string]bool, error) {
	rows, err := fm.db.conn.Query("SELECT quote_id FROM favorites WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}

	return ids, rows.Err()
}

// ListQuotes returns the user's favorited quotes matching search, most
// recently favorited first
func (fm *FavoriteManager) ListQuotes(userID, search string) ([]*Quote, error) {
	where, args := QuoteFilter{Search: search}.clauses("q.")
	if where == "" {
		where = " WHERE f.user_id = ?"
	} else {
		where += " AND f.user_id = ?"
	}
	args = append(args, userID)

	rows, err := fm.db.conn.Query(`
		SELECT q.id, q.content, q.author, q.category, q.user_id, q.created_at, q.updated_at
		FROM favorites f
		JOIN quotes q ON q.id = f.quote_id
	`+where+" ORDER BY f.created_at DESC, f.id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}
