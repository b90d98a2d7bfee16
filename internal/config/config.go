package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// ServerConfig holds settings for the web server
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// HTMXSrc points at a local htmx.js to serve instead of the CDN copy
	HTMXSrc string `yaml:"htmx_src"`
}

// DatabaseConfig holds settings for the SQLite database
type DatabaseConfig struct {
	// Path to the database file. Empty means the default location
	// under the user's home directory.
	Path string `yaml:"path"`
}

// loadThemeFile loads and merges theme from LISTA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LISTA_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnvOverrides lets environment variables win over the config file,
// which keeps one-off runs and tests away from the user's real data.
func applyEnvOverrides(config *Config) {
	if dbPath := os.Getenv("LISTA_DB_PATH"); dbPath != "" {
		config.Database.Path = dbPath
	}
	if portStr := os.Getenv("LISTA_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Server.Port = port
		}
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := defaultConfig()
		loadThemeFile(config)
		applyEnvOverrides(config)
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		config := defaultConfig()
		loadThemeFile(config)
		applyEnvOverrides(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from LISTA_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	applyEnvOverrides(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lista", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lista", "config.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		Server:      DefaultServerConfig(),
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// DefaultServerConfig returns the default web server settings
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host: "127.0.0.1",
		Port: 8422,
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultServerConfig().Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig().Port
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
