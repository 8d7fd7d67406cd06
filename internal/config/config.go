// Package config provides YAML-based game configuration loading and
// difficulty presets for the memory game.
package config

import "time"

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Timing      TimingConfig      `yaml:"timing"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// GridConfig defines the default grid and the limits offered to the player.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	MaxRows int `yaml:"max_rows"`
	MaxCols int `yaml:"max_cols"`
}

// TimingConfig defines the delays of the session state machine.
type TimingConfig struct {
	ShowDuration time.Duration `yaml:"show_duration"` // All cards face up before play starts
	ResolveDelay time.Duration `yaml:"resolve_delay"` // Pause before a pair is cleared or flipped back
	FlipDuration time.Duration `yaml:"flip_duration"` // A card mid-flip ignores clicks
	LoadReveal   time.Duration `yaml:"load_reveal"`   // Reveal window after loading a save
}

// ScoringConfig defines how matches are scored.
type ScoringConfig struct {
	MatchAward int `yaml:"match_award"` // Points per match, multiplied by combo
}

// PersistenceConfig defines where progress is saved and how it is restored.
type PersistenceConfig struct {
	SavePath     string       `yaml:"save_path"`
	ReloadReveal RevealPolicy `yaml:"reload_reveal"`
}

// RevealPolicy decides whether a loaded game shows its cards before play resumes.
type RevealPolicy string

const (
	RevealOnLoad RevealPolicy = "reveal"
	RevealNever  RevealPolicy = "none"
)

// DifficultyPreset represents a named grid size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
