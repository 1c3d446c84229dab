package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is the source reported when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.mathbreak/config.yaml -> ./configs/mathbreak.yaml -> embedded default.
// A file found along the way is overlaid on the embedded defaults, so it only
// needs to name the values it changes. The second return value names the
// source that was used.
func Load(customPath string) (Config, string, error) {
	base := Embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files here are skipped.
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "mathbreak.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := overlay(base, data)
		if err != nil || cfg.Validate() != nil {
			continue
		}
		return cfg, path, nil
	}

	return base, SourceEmbedded, nil
}

// Embedded returns the embedded default configuration, falling back to the
// hardcoded defaults if the embedded file cannot be parsed.
func Embedded() Config {
	cfg, err := overlay(DefaultConfig(), defaultYAML)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Parse decodes YAML on top of the embedded defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg, err := overlay(Embedded(), data)
	if err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// overlay decodes data into a copy of base. Keys absent from data keep the
// base value.
func overlay(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathbreak", filename)
}
