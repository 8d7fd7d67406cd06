package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Grid: GridConfig{
			Rows:    4,
			Cols:    4,
			MaxRows: 8,
			MaxCols: 8,
		},
		Timing: TimingConfig{
			ShowDuration: 2 * time.Second,
			ResolveDelay: 750 * time.Millisecond,
			FlipDuration: 500 * time.Millisecond, // two quarter turns of 250ms
			LoadReveal:   time.Second,
		},
		Scoring: ScoringConfig{
			MatchAward: 10,
		},
		Persistence: PersistenceConfig{
			SavePath:     "~/.memory/saveData.json",
			ReloadReveal: RevealOnLoad,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMemoryYAML
}
