package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its default.
func LoadMemory(customPath string) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("memory.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultMemoryConfig()
		}
	}

	if data, err := os.ReadFile("configs/memory.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultMemoryConfig()
	}

	if err := yaml.Unmarshal(defaultMemoryYAML, &cfg); err != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks values the game cannot run with.
func (c MemoryConfig) Validate() error {
	if c.Grid.MaxRows < 2 || c.Grid.MaxCols < 2 {
		return fmt.Errorf("config: max grid must be at least 2x2, got %dx%d", c.Grid.MaxRows, c.Grid.MaxCols)
	}
	if c.Scoring.MatchAward < 0 {
		return fmt.Errorf("config: match_award must not be negative, got %d", c.Scoring.MatchAward)
	}
	if c.Timing.ShowDuration < 0 || c.Timing.ResolveDelay < 0 || c.Timing.FlipDuration < 0 || c.Timing.LoadReveal < 0 {
		return fmt.Errorf("config: durations must not be negative")
	}
	switch c.Persistence.ReloadReveal {
	case RevealOnLoad, RevealNever:
	default:
		return fmt.Errorf("config: unknown reload_reveal %q", c.Persistence.ReloadReveal)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}
