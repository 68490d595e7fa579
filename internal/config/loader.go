package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// LocalPath is the config file picked up from the working directory when no
// explicit path is given.
const LocalPath = "abacwrsed.yaml"

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded defaults.yaml is invalid: %v", err))
	}
	return cfg
}

// Load loads the game configuration.
// Search order: customPath -> ./abacwrsed.yaml -> embedded default.
// Files are applied on top of the defaults, so they only need the keys
// they change.
func Load(customPath string) (Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		if _, err := os.Stat(LocalPath); err != nil {
			return cfg, nil
		}
		path = LocalPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}
