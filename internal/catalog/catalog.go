// Package catalog supplies option data to a combobox: YAML datasets and a
// paged, searchable source that behaves like a remote API.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/combobox/internal/combobox"
	"go.yaml.in/yaml/v3"
)

var (
	ErrEmptyID     = errors.New("option has an empty id")
	ErrDuplicateID = errors.New("duplicate option id")
)

// Dataset is the on-disk layout of an options file.
type Dataset struct {
	Options []combobox.Option `yaml:"options"`
}

// Parse parses dataset YAML bytes and validates the option ids.
func Parse(data []byte) ([]combobox.Option, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if err := Validate(ds.Options); err != nil {
		return nil, err
	}
	return ds.Options, nil
}

// LoadFile reads and parses a dataset file.
func LoadFile(path string) ([]combobox.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Marshal serializes options as a dataset.
func Marshal(opts []combobox.Option) ([]byte, error) {
	return yaml.Marshal(Dataset{Options: opts})
}

// Validate checks that every option has a unique, non-empty id. Missing
// labels default to the id.
func Validate(opts []combobox.Option) error {
	seen := make(map[string]bool, len(opts))
	for i := range opts {
		id := opts[i].ID
		if id == "" {
			return fmt.Errorf("option %d: %w", i, ErrEmptyID)
		}
		if seen[id] {
			return fmt.Errorf("option %q: %w", id, ErrDuplicateID)
		}
		seen[id] = true
		if opts[i].Label == "" {
			opts[i].Label = id
		}
	}
	return nil
}

// Builtin returns the dataset used when no file is configured.
func Builtin() []combobox.Option {
	return []combobox.Option{
		{ID: "nextjs", Label: "Next.js", Group: "React"},
		{ID: "remix", Label: "Remix", Group: "React"},
		{ID: "gatsby", Label: "Gatsby", Group: "React", Disabled: true},
		{ID: "astro", Label: "Astro"},
		{ID: "sveltekit", Label: "SvelteKit", Group: "Svelte"},
		{ID: "nuxt", Label: "Nuxt", Group: "Vue"},
		{ID: "vitepress", Label: "VitePress", Group: "Vue"},
		{ID: "solidstart", Label: "SolidStart"},
		{ID: "qwik", Label: "Qwik City"},
		{ID: "angular", Label: "Angular"},
		{ID: "ember", Label: "Ember.js"},
		{ID: "hugo", Label: "Hugo", Group: "Static"},
		{ID: "jekyll", Label: "Jekyll", Group: "Static"},
		{ID: "eleventy", Label: "Eleventy", Group: "Static"},
		{ID: "docusaurus", Label: "Docusaurus", Group: "React"},
		{ID: "redwood", Label: "RedwoodJS", Group: "React"},
		{ID: "blitz", Label: "Blitz.js", Group: "React"},
		{ID: "fresh", Label: "Fresh"},
		{ID: "analog", Label: "Analog"},
		{ID: "hono", Label: "Hono"},
	}
}
