package storage

import (
	"path/filepath"
	"testing"

	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceManager_GetSet(t *testing.T) {
	pm := NewPreferenceManager(NewTestDB(t))

	_, ok, err := pm.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, pm.Set("k", "one"))
	require.NoError(t, pm.Set("k", "two"))

	v, ok, err := pm.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestPreferenceManager_Theme(t *testing.T) {
	pm := NewPreferenceManager(NewTestDB(t))

	_, ok, err := pm.LoadTheme()
	require.NoError(t, err)
	assert.False(t, ok)

	want := theme.Preference{Mode: theme.ModeCustom, CustomColor: "#10b981", PreviousMode: theme.ModeDark}
	require.NoError(t, pm.SaveTheme(want))

	got, ok, err := pm.LoadTheme()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStorage_ExportAndClear(t *testing.T) {
	st, err := NewStorage(filepath.Join(t.TempDir(), "quickquotes.db"))
	require.NoError(t, err)
	defer st.Close()

	q := &Quote{Content: "c", Author: "a", Category: palette.Life, UserID: "u"}
	require.NoError(t, st.Quotes.Create(q))
	_, err = st.Favorites.Toggle("u", q.ID)
	require.NoError(t, err)
	require.NoError(t, st.Preferences.SaveTheme(theme.Preference{Mode: theme.ModeDark, CustomColor: "#000000", PreviousMode: theme.ModeDark}))

	data, err := st.ExportData("u")
	require.NoError(t, err)
	assert.Len(t, data["quotes"], 1)
	assert.Len(t, data["favorites"], 1)
	assert.Contains(t, data, "theme")

	require.NoError(t, st.ClearAllData())
	quotes, err := st.Quotes.List(QuoteFilter{})
	require.NoError(t, err)
	assert.Empty(t, quotes)
}
