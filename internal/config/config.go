package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = "quickquotes"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "QUICKQUOTES"
)

var (
	configDir  string
	configPath string
)

func init() {
	// Get user config directory
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		homeDir, _ := os.UserHomeDir()
		userConfigDir = filepath.Join(homeDir, ".config")
	}

	SetConfigDir(filepath.Join(userConfigDir, configDirName))
}

// SetConfigDir points Load and Save at dir
func SetConfigDir(dir string) {
	configDir = dir
	configPath = filepath.Join(configDir, configFileName+"."+configFileType)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// Set environment variable prefix
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("preferences.theme", defaults.Preferences.Theme)
	v.SetDefault("preferences.custom_color", defaults.Preferences.CustomColor)
	v.SetDefault("preferences.previous_theme", defaults.Preferences.PreviousTheme)
	v.SetDefault("preferences.show_favorites_only", defaults.Preferences.ShowFavoritesOnly)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("user.id", defaults.User.ID)

	return v
}

// Load loads the configuration from the config file
func Load() (*Config, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()

	// Try to read the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, create default config
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal config
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set default paths if not specified
	if err := setDefaultPaths(config); err != nil {
		return nil, fmt.Errorf("failed to set default paths: %w", err)
	}

	// Validate configuration
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the config file
func Save(config *Config) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Validate before saving
	if err := Validate(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configFileType)
	v.Set("preferences", config.Preferences)
	v.Set("paths", config.Paths)
	v.Set("logging", config.Logging)
	v.Set("user", config.User)

	// Write config file
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// createDefaultConfig creates and saves a default configuration
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()

	// Set default paths
	if err := setDefaultPaths(config); err != nil {
		return nil, fmt.Errorf("failed to set default paths: %w", err)
	}

	// Save the default config
	if err := Save(config); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}

	return config, nil
}

// setDefaultPaths sets default paths if not already set
func setDefaultPaths(config *Config) error {
	// Get data directory
	dataDir, err := getDataDir()
	if err != nil {
		return err
	}

	// Set default database path
	if config.Paths.Database == "" {
		config.Paths.Database = filepath.Join(dataDir, "quickquotes.db")
	}

	// Set default log path
	if config.Paths.Log == "" {
		config.Paths.Log = filepath.Join(dataDir, "quickquotes.log")
	}

	// Create directories if they don't exist
	dirs := []string{
		filepath.Dir(config.Paths.Database),
		filepath.Dir(config.Paths.Log),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// getDataDir returns the data directory for the application
func getDataDir() (string, error) {
	// On Linux, use XDG_DATA_HOME or ~/.local/share
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataHome, configDirName), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return configPath
}

// GetConfigDir returns the config directory
func GetConfigDir() string {
	return configDir
}

// Exists checks if the config file exists
func Exists() bool {
	_, err := os.Stat(configPath)
	return err == nil
}
