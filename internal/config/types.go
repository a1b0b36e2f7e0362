package config

import "github.com/Justice-Caban/QuickQuotes/internal/theme"

// Config represents the application configuration
type Config struct {
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
	Paths       PathsConfig       `mapstructure:"paths" yaml:"paths"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	User        UserConfig        `mapstructure:"user" yaml:"user"`
}

// PreferencesConfig represents user preferences
type PreferencesConfig struct {
	Theme             string `mapstructure:"theme" yaml:"theme"`                   // "light", "dark", "custom"
	CustomColor       string `mapstructure:"custom_color" yaml:"custom_color"`     // "#RRGGBB"
	PreviousTheme     string `mapstructure:"previous_theme" yaml:"previous_theme"` // restored by reset
	ShowFavoritesOnly bool   `mapstructure:"show_favorites_only" yaml:"show_favorites_only"`
}

// PathsConfig represents path configurations
type PathsConfig struct {
	Database string `mapstructure:"database" yaml:"database"`
	Log      string `mapstructure:"log" yaml:"log"`
}

// LoggingConfig controls the zerolog level
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// UserConfig identifies the local user for quote ownership and favorites
type UserConfig struct {
	ID   string `mapstructure:"id" yaml:"id"`
	Name string `mapstructure:"name" yaml:"name"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Preferences: PreferencesConfig{
			Theme:             string(theme.ModeLight),
			CustomColor:       theme.DefaultCustomColor,
			PreviousTheme:     string(theme.ModeLight),
			ShowFavoritesOnly: false,
		},
		Paths: PathsConfig{
			Database: "", // Will be set to default location
			Log:      "", // Will be set to default location
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		User: UserConfig{
			ID:   "local",
			Name: "",
		},
	}
}

// ThemeMode returns the configured mode, falling back to light
func (c *Config) ThemeMode() theme.Mode {
	m, err := theme.ParseMode(c.Preferences.Theme)
	if err != nil {
		return theme.ModeLight
	}
	return m
}

// PreviousThemeMode returns the configured reset target
func (c *Config) PreviousThemeMode() theme.Mode {
	m, err := theme.ParseMode(c.Preferences.PreviousTheme)
	if err != nil || !m.IsStatic() {
		return theme.ModeLight
	}
	return m
}

// ApplyTheme copies a controller preference into the config
func (c *Config) ApplyTheme(p theme.Preference) {
	c.Preferences.Theme = string(p.Mode)
	c.Preferences.CustomColor = p.CustomColor
	c.Preferences.PreviousTheme = string(p.PreviousMode)
}
