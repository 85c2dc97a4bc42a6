package main

import (
	"github.com/ruminaider/combobox/internal/catalog"
	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/ruminaider/combobox/internal/config"
	"github.com/ruminaider/combobox/internal/paths"
	"github.com/spf13/pflag"
)

// Flags shared by demo and list. They override config.yaml only when set.
var (
	flagData    string
	flagMatcher string
)

func addDataFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagData, "data", "", "options file (YAML); defaults to the built-in framework list")
	fs.StringVar(&flagMatcher, "matcher", config.MatcherSubstring, "internal matcher: substring or fuzzy")
}

// loadSettings reads config.yaml, applies any flags the user set and loads
// the dataset the config points at.
func loadSettings(fs *pflag.FlagSet, configPath string) (config.Config, []combobox.Option, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if fs.Changed("data") {
		cfg.Data = flagData
	}
	if fs.Changed("matcher") {
		cfg.Matcher = flagMatcher
	}
	applyDemoFlags(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	if cfg.Data == "" {
		return cfg, catalog.Builtin(), nil
	}
	data, err := catalog.LoadFile(paths.Expand(cfg.Data))
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, data, nil
}
