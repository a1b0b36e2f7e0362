package config

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/rs/zerolog"
)

// Validate validates the configuration
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate preferences
	if err := validatePreferences(&config.Preferences); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	// Validate paths
	if err := validatePaths(&config.Paths); err != nil {
		return fmt.Errorf("invalid paths: %w", err)
	}

	// Validate logging
	if err := validateLogging(&config.Logging); err != nil {
		return fmt.Errorf("invalid logging: %w", err)
	}

	if strings.TrimSpace(config.User.ID) == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	return nil
}

// validatePreferences validates preferences configuration
func validatePreferences(prefs *PreferencesConfig) error {
	if prefs == nil {
		return fmt.Errorf("preferences is nil")
	}

	// Validate theme
	if _, err := theme.ParseMode(prefs.Theme); err != nil {
		return err
	}

	// Previous theme must be a static mode
	if prefs.PreviousTheme != "" {
		m, err := theme.ParseMode(prefs.PreviousTheme)
		if err != nil || !m.IsStatic() {
			return fmt.Errorf("invalid previous theme: %s (must be 'light' or 'dark')", prefs.PreviousTheme)
		}
	}

	// Validate custom color
	if _, err := color.ParseHex(prefs.CustomColor); err != nil {
		return fmt.Errorf("invalid custom color: %w", err)
	}

	return nil
}

// validatePaths validates path configuration
func validatePaths(paths *PathsConfig) error {
	if paths == nil {
		return fmt.Errorf("paths is nil")
	}

	// Paths can be empty (will be set to defaults)
	// Just ensure they are valid if set
	if paths.Database != "" {
		if !isValidPath(paths.Database) {
			return fmt.Errorf("invalid database path: %s", paths.Database)
		}
	}

	if paths.Log != "" {
		if !isValidPath(paths.Log) {
			return fmt.Errorf("invalid log path: %s", paths.Log)
		}
	}

	return nil
}

// validateLogging validates the log level
func validateLogging(logging *LoggingConfig) error {
	if logging == nil {
		return fmt.Errorf("logging is nil")
	}

	if _, err := ParseLogLevel(logging.Level); err != nil {
		return err
	}

	return nil
}

// ParseLogLevel maps a config level name to a zerolog level
func ParseLogLevel(level string) (zerolog.Level, error) {
	validLevels := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
	}

	l, ok := validLevels[strings.ToLower(level)]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s (must be 'debug', 'info', 'warn', or 'error')", level)
	}
	return l, nil
}

// isValidPath checks if a path string is valid
func isValidPath(path string) bool {
	// Basic validation - just check it's not empty and doesn't contain null bytes
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	return true
}
