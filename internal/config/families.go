package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/ddrozdov/nparcade/internal/puzzle"
)

// LoadFamilies reads per-family generation overrides from the JSON file
// named by PUZZLE_CONFIG_FILE. The variable being unset means no
// overrides; a file that names a family only has to list the fields it
// changes.
func LoadFamilies() (map[puzzle.Kind]puzzle.Config, error) {
	path, ok := os.LookupEnv("PUZZLE_CONFIG_FILE")
	if !ok {
		return map[puzzle.Kind]puzzle.Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read puzzle config: %w", err)
	}
	return ParseFamilies(data)
}

// ParseFamilies decodes {"<kind slug>": {<partial Config>}} on top of
// each family's defaults. Unknown kinds and unknown fields are errors,
// not silent drops.
func ParseFamilies(data []byte) (map[puzzle.Kind]puzzle.Config, error) {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed puzzle config: %w", err)
	}

	families := make(map[puzzle.Kind]puzzle.Config, len(raw))
	for slug, fields := range raw {
		kind, err := puzzle.ParseKind(slug)
		if err != nil {
			return nil, fmt.Errorf("puzzle config: %w", err)
		}
		cfg := puzzle.DefaultConfig(kind)
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:     "json",
			Result:      &cfg,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(fields); err != nil {
			return nil, fmt.Errorf("puzzle config for %s: %w", slug, err)
		}
		families[kind] = cfg
	}
	return families, nil
}

// FamilyConfig picks the override for a kind, falling back to defaults.
func FamilyConfig(families map[puzzle.Kind]puzzle.Config, kind puzzle.Kind) puzzle.Config {
	if cfg, ok := families[kind]; ok {
		return cfg
	}
	return puzzle.DefaultConfig(kind)
}
