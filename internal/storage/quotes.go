package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/google/uuid"
)

// MaxQuoteLength is the longest quote content accepted, in characters
const MaxQuoteLength = 500

var (
	ErrQuoteNotFound = errors.New("quote not found")
	ErrInvalidQuote  = errors.New("invalid quote")
)

// Quote is a single submitted quote
type Quote struct {
	ID        string           `json:"id"`
	Content   string           `json:"content"`
	Author    string           `json:"author"`
	Category  palette.Category `json:"category"`
	UserID    string           `json:"user_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Text renders the quote the way it is copied and shared
func (q *Quote) Text() string {
	return fmt.Sprintf("\"%s\" - %s", q.Content, q.Author)
}

// QuoteFilter narrows List results. Zero values match everything.
type QuoteFilter struct {
	Category      *palette.Category
	Search        string // case-insensitive substring of content or author
	UserID        string // only quotes owned by this user
	ExcludeUserID string // only quotes not owned by this user
	Limit         int
}

// QuoteManager handles quote records
type QuoteManager struct {
	db *DB
}

// NewQuoteManager creates a new quote manager
func NewQuoteManager(db *DB) *QuoteManager {
	return &QuoteManager{db: db}
}

// validateQuote trims and checks the user-editable fields
func validateQuote(q *Quote) error {
	q.Content = strings.TrimSpace(q.Content)
	q.Author = strings.TrimSpace(q.Author)

	if q.Content == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrInvalidQuote)
	}
	if utf8.RuneCountInString(q.Content) > MaxQuoteLength {
		return fmt.Errorf("%w: content exceeds %d characters", ErrInvalidQuote, MaxQuoteLength)
	}
	if q.Author == "" {
		return fmt.Errorf("%w: author cannot be empty", ErrInvalidQuote)
	}
	if !q.Category.Valid() {
		return fmt.Errorf("%w: unknown category", ErrInvalidQuote)
	}
	return nil
}

// Create validates and inserts q, assigning its ID and timestamps
func (qm *QuoteManager) Create(q *Quote) error {
	if err := validateQuote(q); err != nil {
		return err
	}
	if strings.TrimSpace(q.UserID) == "" {
		return fmt.Errorf("%w: user id cannot be empty", ErrInvalidQuote)
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.CreatedAt = now
	q.UpdatedAt = now

	_, err := qm.db.conn.Exec(`
		INSERT INTO quotes (id, content, author, category, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Content, q.Author, q.Category.String(), q.UserID, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	return nil
}

// Get retrieves a quote by ID
func (qm *QuoteManager) Get(id string) (*Quote, error) {
	row := qm.db.conn.QueryRow(`
		SELECT id, content, author, category, user_id, created_at, updated_at
		FROM quotes
		WHERE id = ?
	`, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return q, nil
}

// Update rewrites the content, author and category of an existing quote
func (qm *QuoteManager) Update(q *Quote) error {
	if err := validateQuote(q); err != nil {
		return err
	}

	q.UpdatedAt = time.Now().UTC()
	result, err := qm.db.conn.Exec(`
		UPDATE quotes
		SET content = ?, author = ?, category = ?, updated_at = ?
		WHERE id = ?
	`, q.Content, q.Author, q.Category.String(), q.UpdatedAt, q.ID)
	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrQuoteNotFound
	}

	return nil
}

// Delete removes a quote; its favorites cascade
func (qm *QuoteManager) Delete(id string) error {
	result, err := qm.db.conn.Exec("DELETE FROM quotes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrQuoteNotFound
	}

	return nil
}

// List returns quotes matching f, newest first
func (qm *QuoteManager) List(f QuoteFilter) ([]*Quote, error) {
	query := `
		SELECT id, content, author, category, user_id, created_at, updated_at
		FROM quotes
	`
	where, args := f.clauses("")
	query += where + " ORDER BY created_at DESC, rowid DESC"

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := qm.db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
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

// CountByCategory returns the number of quotes per category
func (qm *QuoteManager) CountByCategory() (map[palette.Category]int, error) {
	rows, err := qm.db.conn.Query("SELECT category, COUNT(*) FROM quotes GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}
	defer rows.Close()

	counts := make(map[palette.Category]int, palette.CategoryCount)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[palette.CategoryOrDefault(name)] += n
	}

	return counts, rows.Err()
}

// clauses builds the WHERE clause for f. prefix qualifies column names.
func (f QuoteFilter) clauses(prefix string) (string, []any) {
	var conds []string
	var args []any

	if f.Category != nil {
		conds = append(conds, prefix+"category = ?")
		args = append(args, f.Category.String())
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		conds = append(conds, fmt.Sprintf(`(LOWER(%[1]scontent) LIKE ? ESCAPE '\' OR LOWER(%[1]sauthor) LIKE ? ESCAPE '\')`, prefix))
		args = append(args, pattern, pattern)
	}
	if f.UserID != "" {
		conds = append(conds, prefix+"user_id = ?")
		args = append(args, f.UserID)
	}
	if f.ExcludeUserID != "" {
		conds = append(conds, prefix+"user_id != ?")
		args = append(args, f.ExcludeUserID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*Quote, error) {
	q := &Quote{}
	var category string
	err := row.Scan(&q.ID, &q.Content, &q.Author, &category, &q.UserID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	q.Category = palette.CategoryOrDefault(category)
	return q, nil
}
