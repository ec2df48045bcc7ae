package app

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Domain: Configuration
// This file loads the optional YAML settings file that relaxes lexer
// options.

// Config is the on-disk settings file read via --config.
type Config struct {
	RestrictStringEscapes *bool `yaml:"restrictStringEscapes"`
}

// LoadConfig reads and parses path. An empty path is not an error —
// callers use the lexer's compiled-in default in that case; a path to a
// file that cannot be read is.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EffectiveRestrictStringEscapes reports the setting to use: the
// config value if present, else the lexer's own default.
func (c *Config) EffectiveRestrictStringEscapes(lexerDefault bool) bool {
	if c == nil || c.RestrictStringEscapes == nil {
		return lexerDefault
	}
	return *c.RestrictStringEscapes
}
