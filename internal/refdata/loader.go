package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a complete reference table from a YAML file and validates it.
// A deployment that ships its own dataset replaces the built-in tables
// entirely; there is no per-leaf merging.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference data %s: %w", path, err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse reference data %s: %w", path, err)
	}

	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("reference data validation failed: %w", err)
	}

	return &tables, nil
}

// LoadOrDefault loads tables from path when it is non-empty, otherwise
// returns the validated built-in dataset.
func LoadOrDefault(path string) (*Tables, error) {
	if path != "" {
		return Load(path)
	}
	tables := Default()
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("built-in reference data is invalid: %w", err)
	}
	return tables, nil
}
