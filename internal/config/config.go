package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pelletier/go-toml/v2"

	"parkview/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	HistoryFile string     `toml:"history_file"`
	DateLayouts []string   `toml:"date_layouts,omitempty"`
	Sort        SortConfig `toml:"sort"`
	UISettings  UISettings `toml:"ui"`
}

// SortConfig is the sort applied when a history is first shown
type SortConfig struct {
	Column     string `toml:"column"`
	Descending bool   `toml:"descending"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AscendingGlyph  string `toml:"ascending_glyph"`
	DescendingGlyph string `toml:"descending_glyph"`
	CurrencySymbol  string `toml:"currency_symbol"`
	Mouse           bool   `toml:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the default location of the config file
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "parkview", "config.toml")
}

// NewConfigService creates a new config service reading path, or the
// default location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file
// does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", cs.filePath).Debug("config: no file, using defaults")
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			HistoryFile: cfg.HistoryFile,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills values an edited file may have blanked
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.UISettings.AscendingGlyph == "" {
		c.UISettings.AscendingGlyph = def.UISettings.AscendingGlyph
	}
	if c.UISettings.DescendingGlyph == "" {
		c.UISettings.DescendingGlyph = def.UISettings.DescendingGlyph
	}
	if c.UISettings.CurrencySymbol == "" {
		c.UISettings.CurrencySymbol = def.UISettings.CurrencySymbol
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		HistoryFile: "parking_history.json",
		UISettings: UISettings{
			AscendingGlyph:  "▼",
			DescendingGlyph: "▲",
			CurrencySymbol:  "$",
			Mouse:           true,
		},
	}
}
