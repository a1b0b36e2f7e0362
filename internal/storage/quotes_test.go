package storage

import (
	"strings"
	"testing"

	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuote(content, author string, c palette.Category, user string) *Quote {
	return &Quote{Content: content, Author: author, Category: c, UserID: user}
}

func seedQuotes(t *testing.T, qm *QuoteManager) []*Quote {
	t.Helper()
	quotes := []*Quote{
		newQuote("The only way to do great work is to love what you do.", "Steve Jobs", palette.Motivational, "alice"),
		newQuote("Life is what happens when you're busy making other plans.", "John Lennon", palette.Life, "bob"),
		newQuote("Knowing yourself is the beginning of all wisdom.", "Aristotle", palette.Wisdom, "alice"),
		newQuote("100% of the shots you don't take miss.", "Wayne Gretzky", palette.Success, "bob"),
	}
	for _, q := range quotes {
		require.NoError(t, qm.Create(q))
	}
	return quotes
}

func TestQuoteManager_CreateAndGet(t *testing.T) {
	qm := NewQuoteManager(NewTestDB(t))

	q := newQuote("  Stay hungry.  ", " Steve Jobs ", palette.Inspiration, "alice")
	require.NoError(t, qm.Create(q))

	assert.NotEmpty(t, q.ID)
	assert.False(t, q.CreatedAt.IsZero())
	assert.Equal(t, "Stay hungry.", q.Content)

	got, err := qm.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)
	assert.Equal(t, "Steve Jobs", got.Author)
	assert.Equal(t, palette.Inspiration, got.Category)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, `"Stay hungry." - Steve Jobs`, got.Text())
}

func TestQuoteManager_CreateValidation(t *testing.T) {
	qm := NewQuoteManager(NewTestDB(t))

	tests := []struct {
		name  string
		quote *Quote
	}{
		{"empty content", newQuote("  ", "a", palette.Life, "u")},
		{"empty author", newQuote("c", "", palette.Life, "u")},
		{"too long", newQuote(strings.Repeat("x", MaxQuoteLength+1), "a", palette.Life, "u")},
		{"bad category", newQuote("c", "a", palette.Category(42), "u")},
		{"no user", newQuote("c", "a", palette.Life, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, qm.Create(tt.quote), ErrInvalidQuote)
		})
	}

	// Exactly the limit is fine, counted in characters not bytes
	assert.NoError(t, qm.Create(newQuote(strings.Repeat("é", MaxQuoteLength), "a", palette.Life, "u")))
}

func TestQuoteManager_GetMissing(t *testing.T) {
	qm := NewQuoteManager(NewTestDB(t))
	_, err := qm.Get("nope")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestQuoteManager_UpdateAndDelete(t *testing.T) {
	qm := NewQuoteManager(NewTestDB(t))
	quotes := seedQuotes(t, qm)

	q := quotes[0]
	q.Content = "Updated content"
	q.Category = palette.Happiness
	require.NoError(t, qm.Update(q))

	got, err := qm.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated content", got.Content)
	assert.Equal(t, palette.Happiness, got.Category)

	require.NoError(t, qm.Delete(q.ID))
	assert.ErrorIs(t, qm.Delete(q.ID), ErrQuoteNotFound)
	assert.ErrorIs(t, qm.Update(q), ErrQuoteNotFound)
}

func TestQuoteManager_List(t *testing.T) {
	qm := NewQuoteManager(NewTestDB(t))
	quotes := seedQuotes(t, qm)

	all, err := qm.List(QuoteFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	// Newest first
	assert.Equal(t, quotes[3].ID, all[0].ID)
	assert.Equal(t, quotes[0].ID, all[3].ID)

	wisdom := palette.Wisdom
	tests := []struct {
		name   string
		filter QuoteFilter
		want   []string
	}{
		{"category", QuoteFilter{Category: &wisdom}, []string{quotes[2].ID}},
		{"search content", QuoteFilter{Search: "WISDOM"}, []string{quotes[2].ID}},
		{"search author", QuoteFilter{Search: "lennon"}, []string{quotes[1].ID}},
		{"search literal percent", QuoteFilter{Search: "100%"}, []string{quotes[3].ID}},
		{"search underscore is literal", QuoteFilter{Search: "_"}, nil},
		{"mine", QuoteFilter{UserID: "alice"}, []string{quotes[2].ID, quotes[0].ID}},
		{"others", QuoteFilter{ExcludeUserID: "alice"}, []string{quotes[3].ID, quotes[1].ID}},
		{"limit", QuoteFilter{Limit: 1}, []string{quotes[3].ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := qm.List(tt.filter)
			require.NoError(t, err)
			var ids []string
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQuoteManager_CountByCategory(t *testing.T) {
	db := NewTestDB(t)
	qm := NewQuoteManager(db)
	seedQuotes(t, qm)

	// A legacy record written with the old category name
	_, err := db.conn.Exec(`INSERT INTO quotes (id, content, author, category, user_id, created_at, updated_at)
		VALUES ('legacy', 'c', 'a', 'motivation', 'u', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	counts, err := qm.CountByCategory()
	require.NoError(t, err)
	assert.Equal(t, 2, counts[palette.Motivational])
	assert.Equal(t, 1, counts[palette.Life])
	assert.Equal(t, 0, counts[palette.Happiness])
}
