package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	prev := GetConfigDir()
	SetConfigDir(filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Cleanup(func() { SetConfigDir(prev) })

	return dir
}

func TestLoad_CreatesDefault(t *testing.T) {
	dir := useTempDirs(t)

	require.False(t, Exists())
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, Exists())

	assert.Equal(t, "light", cfg.Preferences.Theme)
	assert.Equal(t, theme.DefaultCustomColor, cfg.Preferences.CustomColor)
	assert.Equal(t, filepath.Join(dir, "data", "quickquotes", "quickquotes.db"), cfg.Paths.Database)
	assert.Equal(t, filepath.Join(dir, "data", "quickquotes", "quickquotes.log"), cfg.Paths.Log)
	assert.DirExists(t, filepath.Join(dir, "data", "quickquotes"))
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	useTempDirs(t)

	cfg, err := Load()
	require.NoError(t, err)

	cfg.ApplyTheme(theme.Preference{Mode: theme.ModeCustom, CustomColor: "#10b981", PreviousMode: theme.ModeDark})
	cfg.Logging.Level = "debug"
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, theme.ModeCustom, loaded.ThemeMode())
	assert.Equal(t, theme.ModeDark, loaded.PreviousThemeMode())
	assert.Equal(t, "#10b981", loaded.Preferences.CustomColor)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	useTempDirs(t)

	require.NoError(t, os.MkdirAll(GetConfigDir(), 0755))
	content := "preferences:\n  theme: sepia\n  custom_color: \"#6366f1\"\n"
	require.NoError(t, os.WriteFile(GetConfigPath(), []byte(content), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "invalid theme mode")
}

func TestLoad_EnvOverride(t *testing.T) {
	useTempDirs(t)

	_, err := Load()
	require.NoError(t, err)

	t.Setenv("QUICKQUOTES_LOGGING_LEVEL", "warn")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "custom mode", mutate: func(c *Config) { c.Preferences.Theme = "custom" }},
		{name: "bad theme", mutate: func(c *Config) { c.Preferences.Theme = "system" }, wantErr: "invalid theme mode"},
		{name: "custom as previous", mutate: func(c *Config) { c.Preferences.PreviousTheme = "custom" }, wantErr: "invalid previous theme"},
		{name: "bad color", mutate: func(c *Config) { c.Preferences.CustomColor = "#fff" }, wantErr: "invalid custom color"},
		{name: "null byte path", mutate: func(c *Config) { c.Paths.Database = "a\x00b" }, wantErr: "invalid database path"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "invalid log level"},
		{name: "empty user", mutate: func(c *Config) { c.User.ID = " " }, wantErr: "user id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	assert.Error(t, Validate(nil))
}

func TestParseLogLevel(t *testing.T) {
	l, err := ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l)

	l, err = ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l)
}

func TestThemeModeFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preferences.Theme = "bogus"
	cfg.Preferences.PreviousTheme = "custom"

	assert.Equal(t, theme.ModeLight, cfg.ThemeMode())
	assert.Equal(t, theme.ModeLight, cfg.PreviousThemeMode())
}
