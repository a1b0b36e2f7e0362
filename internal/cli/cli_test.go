package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/config"
	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv points config and data at a temp dir and returns the config dir
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	prev := config.GetConfigDir()
	t.Cleanup(func() { config.SetConfigDir(prev) })
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	return filepath.Join(dir, "config")
}

func run(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestThemeDerive(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, dir, "theme", "derive", "#6366f1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "base: 239 84% 67%", lines[0])
	assert.Equal(t, "--primary: 239 84% 57%", lines[1])
	assert.Contains(t, out, "--primary-foreground: 0 0% 98%\n")
	assert.Contains(t, out, "--category-inspiration: 179 74% 77%\n")
}

func TestThemeDerive_InvalidColor(t *testing.T) {
	dir := testEnv(t)

	_, err := run(t, dir, "theme", "derive", "6366f1")
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
}

func TestThemeCSS(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, dir, "theme", "css", "#6366f1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {\n  --primary: 239 84% 57%;\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))

	_, err = run(t, dir, "theme", "css", "#12345")
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
}

func TestThemeSetAndShow(t *testing.T) {
	dir := testEnv(t)

	out, err := run(t, dir, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Equal(t, "Theme set to Dark\n", out)

	out, err = run(t, dir, "theme", "set", "custom", "--color", "#10B981")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom color: #10b981")

	out, err = run(t, dir, "theme", "show")
	require.NoError(t, err)
	assert.Equal(t, "mode: custom\ncustom color: #10b981\nreset target: dark\n", out)

	// Mirrored into the config file
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Preferences.Theme)
	assert.Equal(t, "dark", cfg.Preferences.PreviousTheme)

	_, err = run(t, dir, "theme", "set", "sepia")
	assert.Error(t, err)

	_, err = run(t, dir, "theme", "set", "custom", "--color", "blue")
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
}

func TestQuoteAddAndList(t *testing.T) {
	dir := testEnv(t)

	_, err := run(t, dir, "quote", "add", "--author", "Seneca", "--category", "wisdom", "Luck is what happens when preparation meets opportunity.")
	require.NoError(t, err)
	_, err = run(t, dir, "quote", "add", "-a", "Unknown", "-c", "motivation", "Keep", "going.")
	require.NoError(t, err)

	out, err := run(t, dir, "quote", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CATEGORY")
	assert.Contains(t, lines[1], "Keep going.")
	assert.Contains(t, lines[1], "motivational")

	out, err = run(t, dir, "quote", "list", "--category", "wisdom")
	require.NoError(t, err)
	assert.Contains(t, out, "Seneca")
	assert.NotContains(t, out, "Keep going.")

	out, err = run(t, dir, "quote", "list", "--search", "SENECA")
	require.NoError(t, err)
	assert.Contains(t, out, "Seneca")

	_, err = run(t, dir, "quote", "add", "--author", "x", "--category", "business", "text")
	assert.Error(t, err)

	_, err = run(t, dir, "quote", "add", "--category", "life", "text")
	assert.Error(t, err)
}

func TestQuoteFavoriteDeleteAndExport(t *testing.T) {
	dir := testEnv(t)

	id, err := run(t, dir, "quote", "add", "--author", "Aristotle", "--category", "happiness", "Happiness depends upon ourselves.")
	require.NoError(t, err)
	id = strings.TrimSpace(id)

	out, err := run(t, dir, "quote", "fav", id[:8])
	require.NoError(t, err)
	assert.Equal(t, "Added to favorites\n", out)

	out, err = run(t, dir, "quote", "list", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "Aristotle")

	out, err = run(t, dir, "export")
	require.NoError(t, err)
	var data struct {
		Quotes []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"quotes"`
		Favorites []json.RawMessage `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	require.Len(t, data.Quotes, 1)
	assert.Equal(t, id, data.Quotes[0].ID)
	assert.Equal(t, "happiness", data.Quotes[0].Category)
	assert.Len(t, data.Favorites, 1)

	out, err = run(t, dir, "quote", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, id)

	_, err = run(t, dir, "quote", "delete", id)
	assert.Error(t, err)
}

func TestQuoteEdit(t *testing.T) {
	dir := testEnv(t)

	id, err := run(t, dir, "quote", "add", "--author", "Seneca", "Luck is preparation.")
	require.NoError(t, err)
	id = strings.TrimSpace(id)

	out, err := run(t, dir, "quote", "edit", id[:8], "--author", "Lucius Annaeus Seneca", "-c", "wisdom")
	require.NoError(t, err)
	assert.Equal(t, "Updated "+id+"\n", out)

	out, err = run(t, dir, "quote", "list", "--category", "wisdom")
	require.NoError(t, err)
	assert.Contains(t, out, "Lucius Annaeus Seneca")
	assert.Contains(t, out, "Luck is preparation.")

	_, err = run(t, dir, "quote", "edit", id, "--content", "Luck is what happens when preparation meets opportunity.")
	require.NoError(t, err)
	out, err = run(t, dir, "quote", "list", "--search", "opportunity")
	require.NoError(t, err)
	assert.Contains(t, out, shortID(id))

	_, err = run(t, dir, "quote", "edit", id)
	assert.ErrorContains(t, err, "nothing to change")

	_, err = run(t, dir, "quote", "edit", id, "--author", "  ")
	assert.ErrorIs(t, err, storage.ErrInvalidQuote)

	_, err = run(t, dir, "quote", "edit", id, "--category", "business")
	assert.Error(t, err)

	_, err = run(t, dir, "quote", "edit", "ffffffff", "--author", "Nobody")
	assert.ErrorIs(t, err, storage.ErrQuoteNotFound)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "12345678", shortID("12345678-aaaa"))
}
