package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteManager_Toggle(t *testing.T) {
	db := NewTestDB(t)
	qm := NewQuoteManager(db)
	fm := NewFavoriteManager(db)
	quotes := seedQuotes(t, qm)

	on, err := fm.Toggle("alice", quotes[1].ID)
	require.NoError(t, err)
	assert.True(t, on)

	fav, err := fm.IsFavorite("alice", quotes[1].ID)
	require.NoError(t, err)
	assert.True(t, fav)

	// Favorites are per user
	fav, err = fm.IsFavorite("bob", quotes[1].ID)
	require.NoError(t, err)
	assert.False(t, fav)

	on, err = fm.Toggle("alice", quotes[1].ID)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = fm.Toggle("alice", "missing")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestFavoriteManager_ListAndIDs(t *testing.T) {
	db := NewTestDB(t)
	qm := NewQuoteManager(db)
	fm := NewFavoriteManager(db)
	quotes := seedQuotes(t, qm)

	for _, q := range []*Quote{quotes[0], quotes[2], quotes[3]} {
		_, err := fm.Toggle("alice", q.ID)
		require.NoError(t, err)
	}

	ids, err := fm.IDs("alice")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{quotes[0].ID: true, quotes[2].ID: true, quotes[3].ID: true}, ids)

	list, err := fm.ListQuotes("alice", "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, quotes[3].ID, list[0].ID)

	list, err = fm.ListQuotes("alice", "aristotle")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, quotes[2].ID, list[0].ID)

	// Deleting a quote cascades to its favorites
	require.NoError(t, qm.Delete(quotes[0].ID))
	ids, err = fm.IDs("alice")
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}
