/*
Package config manages the TOML config for assetserve services.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vshtohryn/assetserve/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Session SessionConfig `toml:"session"`
	Server  ServerConfig  `toml:"server"`
}

// EngineConfig has matcher-related options.
type EngineConfig struct {
	// SuggestLimit caps the ranked candidate list.
	SuggestLimit int `toml:"suggest_limit"`
	// MinQuery / MaxQuery bound accepted query lengths at the IPC surface.
	MinQuery int `toml:"min_query"`
	MaxQuery int `toml:"max_query"`
	// CatalogPath points at an optional catalog overlay file.
	CatalogPath string `toml:"catalog_path"`
}

// SessionConfig holds suggestion-session options.
type SessionConfig struct {
	// DebounceMs is the keystroke debounce delay in milliseconds.
	DebounceMs int `toml:"debounce_ms"`
}

// ServerConfig holds IPC server options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			SuggestLimit: 8,
			MinQuery:     1,
			MaxQuery:     60,
		},
		Session: SessionConfig{
			DebounceMs: 160,
		},
		Server: ServerConfig{
			MaxLimit: 32,
		},
	}
}

// Init loads config from file or creates a default file if missing.
// Any failure degrades to built-in defaults with a warning; config is
// never a reason the engine refuses to start.
func Init(configPath string) *Config {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig()
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := utils.SaveTOMLFile(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return cfg
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}
	return cfg
}

// Load reads a TOML config file over the defaults, so absent keys keep
// their default values.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Engine.SuggestLimit < 1 {
		return fmt.Errorf("engine.suggest_limit must be positive, got %d", c.Engine.SuggestLimit)
	}
	if c.Engine.MinQuery < 1 || c.Engine.MaxQuery < c.Engine.MinQuery {
		return fmt.Errorf("engine query bounds invalid: min=%d max=%d", c.Engine.MinQuery, c.Engine.MaxQuery)
	}
	if c.Session.DebounceMs < 0 {
		return fmt.Errorf("session.debounce_ms must not be negative, got %d", c.Session.DebounceMs)
	}
	if c.Server.MaxLimit < 1 {
		return fmt.Errorf("server.max_limit must be positive, got %d", c.Server.MaxLimit)
	}
	return nil
}

// Save writes the config into a TOML file.
func Save(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
