package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/syncdict/objpath"
	"github.com/viant/syncdict/persist"
	"github.com/viant/syncdict/synced"
)

const (
	// DefaultPairsField is the document field holding mirror rows.
	DefaultPairsField = "pairs"
	// DefaultComparerField is the document field holding the comparer name.
	DefaultComparerField = "comparer"
)

// Config controls how documents are decoded and synced map nodes recognised.
type Config struct {
	// Format forces a codec; empty selects one from the document extension.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// Marker is the host array-element marker collapsed in paths.
	Marker string `yaml:"marker,omitempty" json:"marker,omitempty"`
	// Comparer is used for nodes that carry no comparer name.
	Comparer      string `yaml:"comparer,omitempty" json:"comparer,omitempty"`
	Color         *bool  `yaml:"color,omitempty" json:"color,omitempty"`
	PairsField    string `yaml:"pairsField,omitempty" json:"pairsField,omitempty"`
	ComparerField string `yaml:"comparerField,omitempty" json:"comparerField,omitempty"`
}

// Default returns a config with defaults applied.
func Default() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return &cfg, nil
}

// Init fills unset fields.
func (c *Config) Init() {
	if c.Marker == "" {
		c.Marker = objpath.DefaultMarker
	}
	if c.Comparer == "" {
		c.Comparer = synced.DeepComparerName
	}
	if c.PairsField == "" {
		c.PairsField = DefaultPairsField
	}
	if c.ComparerField == "" {
		c.ComparerField = DefaultComparerField
	}
}

// Validate checks the format and fallback comparer.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := persist.CodecFor(c.Format); err != nil {
			return err
		}
	}
	if _, ok := synced.LookupComparer[any](c.Comparer); !ok {
		return fmt.Errorf("unknown comparer %q", c.Comparer)
	}
	if c.PairsField == c.ComparerField {
		return fmt.Errorf("pairsField and comparerField must differ, both are %q", c.PairsField)
	}
	return nil
}

// ColorEnabled reports the configured color preference, or fallback when
// the config leaves it unset.
func (c *Config) ColorEnabled(fallback bool) bool {
	if c.Color == nil {
		return fallback
	}
	return *c.Color
}
