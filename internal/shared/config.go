package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Portal   PortalConfig   `toml:"portal"`
	Database DatabaseConfig `toml:"database"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
	UI       UIConfig       `toml:"ui"`
}

// PortalConfig contains settings for the Tadka portal REST backend.
type PortalConfig struct {
	BaseURL string `toml:"base_url"`
	// Token is an optional bearer token for authenticated portal endpoints.
	Token string `toml:"token"`
	// RateLimit caps outbound requests per second to the portal.
	RateLimit float64 `toml:"rate_limit"`
	// Sections lists the section slugs the client browses.
	Sections []string `toml:"sections"`
}

// DatabaseConfig contains database connection settings for the section cache.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// CacheConfig controls how long cached sections stay fresh.
type CacheConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// ServerConfig contains HTTP server settings for the local section server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// UIConfig contains rail presentation defaults.
type UIConfig struct {
	// ThumbnailQuality selects the YouTube thumbnail variant (mqdefault or hqdefault).
	ThumbnailQuality string `toml:"thumbnail_quality"`
	// DisplayLimit caps visible items per rail tab (0 = unlimited).
	DisplayLimit int `toml:"display_limit"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
