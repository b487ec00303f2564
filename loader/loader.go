// Package loader reads prompt specification files in YAML or JSON and turns
// them into configured builders. The parse format is chosen by file
// extension: .yaml and .yml parse as YAML, everything else as JSON.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quill-labs/promptforge"
)

// Load reads a prompt specification file and returns a configured builder.
func Load(path string) (*promptforge.Builder, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return promptforge.FromConfig(cfg), nil
}

// LoadConfig reads a prompt specification file into a Config without
// constructing a builder.
func LoadConfig(path string) (promptforge.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path from caller
	if err != nil {
		return promptforge.Config{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses specification bytes. The path is used only to choose
// the parse format.
func ParseConfig(data []byte, path string) (promptforge.Config, error) {
	var cfg promptforge.Config

	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return promptforge.Config{}, fmt.Errorf("parsing YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return promptforge.Config{}, fmt.Errorf("parsing JSON: %w", err)
		}
	}

	if err := validateConfig(cfg); err != nil {
		return promptforge.Config{}, err
	}
	return cfg, nil
}

// validateConfig rejects values the file format can express but the builder
// cannot represent. Content-level problems are left to promptforge.Validate.
func validateConfig(cfg promptforge.Config) error {
	if cfg.Format != "" && !cfg.Format.Valid() {
		return fmt.Errorf("invalid format %q (must be verbose, compact, or condensed)", cfg.Format)
	}
	for _, c := range cfg.Constraints {
		switch c.Type {
		case promptforge.ConstraintMust, promptforge.ConstraintMustNot,
			promptforge.ConstraintShould, promptforge.ConstraintShouldNot:
		default:
			return fmt.Errorf("invalid constraint type %q (must be must, must_not, should, or should_not)", c.Type)
		}
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
