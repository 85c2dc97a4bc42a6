package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// Mode values.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// Search values.
const (
	SearchInternal = "internal"
	SearchExternal = "external"
)

// Matcher values.
const (
	MatcherSubstring = "substring"
	MatcherFuzzy     = "fuzzy"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents ~/.combobox/config.yaml.
type Config struct {
	Mode              string   `yaml:"mode"`
	Search            string   `yaml:"search"`
	Matcher           string   `yaml:"matcher"`
	DebounceMS        int      `yaml:"debounce_ms"`
	Clearable         bool     `yaml:"clearable"`
	MaxDisplayedItems int      `yaml:"max_displayed_items"`
	DefaultExpanded   bool     `yaml:"default_expanded,omitempty"`
	PageSize          int      `yaml:"page_size"`
	LatencyMS         int      `yaml:"latency_ms,omitempty"`
	Data              string   `yaml:"data,omitempty"`
	DefaultValue      []string `yaml:"default_value,omitempty"`
	Breakpoint        int      `yaml:"breakpoint"`
	LogFile           string   `yaml:"log_file,omitempty"`
}

// Default returns a config with default values.
func Default() Config {
	return Config{
		Mode:              ModeSingle,
		Search:            SearchInternal,
		Matcher:           MatcherSubstring,
		Clearable:         true,
		MaxDisplayedItems: 3,
		PageSize:          8,
		Breakpoint:        60,
	}
}

// Parse parses config.yaml bytes into a Config. Omitted keys keep their
// defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks enumerated values and numeric ranges.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSingle, ModeMulti:
	default:
		return fmt.Errorf("%w: mode %q (want single or multi)", ErrInvalid, c.Mode)
	}
	switch c.Search {
	case SearchInternal, SearchExternal:
	default:
		return fmt.Errorf("%w: search %q (want internal or external)", ErrInvalid, c.Search)
	}
	switch c.Matcher {
	case MatcherSubstring, MatcherFuzzy:
	default:
		return fmt.Errorf("%w: matcher %q (want substring or fuzzy)", ErrInvalid, c.Matcher)
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("%w: debounce_ms must not be negative", ErrInvalid)
	}
	if c.LatencyMS < 0 {
		return fmt.Errorf("%w: latency_ms must not be negative", ErrInvalid)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive", ErrInvalid)
	}
	if c.MaxDisplayedItems < 0 {
		return fmt.Errorf("%w: max_displayed_items must not be negative", ErrInvalid)
	}
	if c.Breakpoint < 0 {
		return fmt.Errorf("%w: breakpoint must not be negative", ErrInvalid)
	}
	return nil
}

// Multi reports whether the config asks for multi-select.
func (c Config) Multi() bool {
	return c.Mode == ModeMulti
}

// External reports whether search is delegated to the data source.
func (c Config) External() bool {
	return c.Search == SearchExternal
}

// Debounce returns the debounce delay.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Latency returns the simulated data source latency.
func (c Config) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}
