package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"dexsearch/internal/eventbus"
)

// DefaultSourceURL is the record collection the search widget was built against
const DefaultSourceURL = "https://gist.githubusercontent.com/bar0191/fae6084225b608f25e98b733864a102b/raw/dea83ea9cf4a8a6022bfc89a8ae8df5ab05b6dcc/pokemon.json"

// DefaultResultLimit is how many matches the widget shows
const DefaultResultLimit = 4

// Type match modes
const (
	TypeMatchAny    = "any"    // any single type may prefix-match
	TypeMatchJoined = "joined" // the comma-joined type list must prefix-match
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Source  SourceSettings `toml:"source"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
}

// SourceSettings describes where records come from
type SourceSettings struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"` // Go duration; "0" disables it
}

// SearchSettings controls the filter/sort/slice pipeline and fetch handling
type SearchSettings struct {
	Limit         int    `toml:"limit"`
	SortByMaxCP   bool   `toml:"sort_by_max_cp"`
	TypeMatch     string `toml:"type_match"`
	DiscardStale  bool   `toml:"discard_stale"`
	SurfaceErrors bool   `toml:"surface_errors"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowImages  bool   `toml:"show_images"`
	Placeholder string `toml:"placeholder"`
}

// RequestTimeout parses Source.Timeout. Zero means no timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.Source.Timeout)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid source.timeout %q: %w", c.Source.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid source.timeout %q: must not be negative", c.Source.Timeout)
	}
	return d, nil
}

// Validate checks values that would otherwise fail later at search time
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.URL) == "" {
		return errors.New("source.url must not be empty")
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	switch c.Search.TypeMatch {
	case TypeMatchAny, TypeMatchJoined:
	default:
		return fmt.Errorf("invalid search.type_match %q: want %q or %q", c.Search.TypeMatch, TypeMatchAny, TypeMatchJoined)
	}
	return nil
}

// normalize fills zero values a partial config file leaves behind
func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Source.URL == "" {
		c.Source.URL = DefaultSourceURL
	}
	if c.Search.Limit <= 0 {
		c.Search.Limit = DefaultResultLimit
	}
	if c.Search.TypeMatch == "" {
		c.Search.TypeMatch = TypeMatchAny
	}
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

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "dexsearch", "config.toml")
}

// NewConfigService creates a config service reading the per-user file
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      cs.filePath,
			SourceURL: cfg.Source.URL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so booleans missing from the file keep their default
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source: SourceSettings{
			URL:     DefaultSourceURL,
			Timeout: "10s",
		},
		Search: SearchSettings{
			Limit:         DefaultResultLimit,
			TypeMatch:     TypeMatchAny,
			DiscardStale:  true,
			SurfaceErrors: true,
		},
		UI: UISettings{
			ShowImages:  true,
			Placeholder: "Pokemon or type",
		},
	}
}
