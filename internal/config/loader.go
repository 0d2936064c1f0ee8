package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "chemdash.yaml"

// LoadChemDash loads the Chemistry Dash configuration.
// Search order: customPath -> ~/.chemdash/configs/chemdash.yaml -> ./configs/chemdash.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadChemDash(customPath string) (ChemDashConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChemDashConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ChemDashConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseChemDash(defaultChemDashYAML)
	if err != nil {
		return DefaultChemDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseChemDash decodes and validates a configuration document.
func ParseChemDash(data []byte) (ChemDashConfig, error) {
	cfg, err := parse(data)
	if err != nil {
		return ChemDashConfig{}, err
	}
	return cfg, cfg.Validate()
}

func parse(data []byte) (ChemDashConfig, error) {
	cfg := DefaultChemDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChemDashConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chemdash", "configs", filename)
}
