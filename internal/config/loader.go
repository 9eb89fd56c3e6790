package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration for a variant.
// Search order: customPath -> ~/.clipper/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Only an explicit customPath can produce an error; the other sources fall
// through silently when missing or unparseable.
func Load(variant, customPath string) (GameConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(variant, customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(variant, userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(variant, filepath.Join("configs", filename)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return LoadDefault(variant), nil
}

// LoadDefault parses the embedded YAML for a variant, falling back to the
// hard-coded defaults.
func LoadDefault(variant string) GameConfig {
	cfg := DefaultConfig(variant)
	data := GetDefaultYAML(variant)
	if data == nil {
		return cfg
	}

	var parsed GameConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil || parsed.Validate() != nil {
		return cfg
	}
	return parsed
}

// loadFile reads a YAML file over the variant's defaults so partial files
// only override the keys they set.
func loadFile(variant, path string) (GameConfig, error) {
	cfg := LoadDefault(variant)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clipper", "configs", filename)
}
