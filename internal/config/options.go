package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/uishell/internal/settings"
)

// LoadOptions reads a structured option file (TOML or YAML by file
// extension) and applies each top-level key to the settings registry.
// Unknown settings are reported in the returned error; known settings
// are still applied.
func LoadOptions(path string, reg *settings.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	values := make(map[string]any)
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return &UnsupportedFormatError{Path: path}
	}

	var failed []string
	for name, value := range values {
		if err := applyValue(reg, name, value); err != nil {
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("config: %s: could not apply %v", filepath.Base(path), failed)
	}
	return nil
}

// applyValue coerces decoded scalar types to the registered setting
// type. TOML decodes integers as int64 and YAML may produce either.
func applyValue(reg *settings.Registry, name string, value any) error {
	switch v := value.(type) {
	case int64:
		return reg.Set(name, int(v))
	case bool, int, float64, string:
		return reg.Set(name, v)
	default:
		return fmt.Errorf("config: %s: unsupported value type %T", name, value)
	}
}
