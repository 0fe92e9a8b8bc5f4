package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// applyConfigFile sets every flag still at its default from the YAML
// mapping in path. Keys are flag names.
func applyConfigFile(flags *pflag.FlagSet, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	for key, val := range values {
		f := flags.Lookup(key)
		if f == nil || key == "config" {
			return fmt.Errorf("config %s: unknown key %q", path, key)
		}
		if f.Changed {
			continue
		}
		text, err := configValue(val)
		if err != nil {
			return fmt.Errorf("config %s: key %q: %w", path, key, err)
		}
		if err := flags.Set(key, text); err != nil {
			return fmt.Errorf("config %s: key %q: %w", path, key, err)
		}
	}
	return nil
}

// configValue renders a scalar YAML value as flag text. A null value is
// empty; sequences and mappings have no flag form.
func configValue(val any) (string, error) {
	switch v := val.(type) {
	case nil:
		return "", nil
	case []any, map[string]any:
		return "", fmt.Errorf("want a scalar, got %T", v)
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
