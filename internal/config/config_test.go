package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML MemoryConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultMemoryConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded default = %+v", fromYAML, DefaultMemoryConfig())
	}
}

func TestLoadMemoryCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	content := "timing:\n  resolve_delay: 1.5s\nscoring:\n  match_award: 25\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMemory(path)
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}

	if cfg.Timing.ResolveDelay != 1500*time.Millisecond {
		t.Errorf("ResolveDelay = %v, expected 1.5s", cfg.Timing.ResolveDelay)
	}
	if cfg.Scoring.MatchAward != 25 {
		t.Errorf("MatchAward = %d, expected 25", cfg.Scoring.MatchAward)
	}
	if cfg.Grid.Rows != 4 || cfg.Grid.Cols != 4 {
		t.Errorf("Grid = %dx%d, expected defaults 4x4", cfg.Grid.Rows, cfg.Grid.Cols)
	}
}

func TestLoadMemoryMissingCustomPath(t *testing.T) {
	if _, err := LoadMemory(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadMemoryRejectsUnknownRevealPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	if err := os.WriteFile(path, []byte("persistence:\n  reload_reveal: sometimes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMemory(path); err == nil {
		t.Error("expected validation error for unknown reload_reveal")
	}
}

func TestGridForPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		rows, cols int
		ok         bool
	}{
		{DifficultyEasy, 2, 4, true},
		{DifficultyNormal, 4, 4, true},
		{DifficultyHard, 6, 6, true},
		{"", 0, 0, false},
	}

	for _, tc := range tests {
		rows, cols, ok := GridForPreset(tc.preset)
		if rows != tc.rows || cols != tc.cols || ok != tc.ok {
			t.Errorf("GridForPreset(%q) = %d, %d, %v; expected %d, %d, %v",
				tc.preset, rows, cols, ok, tc.rows, tc.cols, tc.ok)
		}
		if (rows*cols)%2 != 0 {
			t.Errorf("preset %q has an odd number of cards", tc.preset)
		}
	}
}

func TestApplyMemoryPresetRaisesLimits(t *testing.T) {
	cfg := DefaultMemoryConfig()
	cfg.Grid.MaxRows = 4
	cfg.Grid.MaxCols = 4

	ApplyMemoryPreset(&cfg, DifficultyHard)

	if cfg.Grid.Rows != 6 || cfg.Grid.Cols != 6 {
		t.Errorf("Grid = %dx%d, expected 6x6", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Grid.MaxRows < 6 || cfg.Grid.MaxCols < 6 {
		t.Errorf("limits %dx%d should allow the preset", cfg.Grid.MaxRows, cfg.Grid.MaxCols)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("extreme") != "" {
		t.Error("ParsePreset of unknown value should be empty")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.json")
	if err != nil || got != "/tmp/x.json" {
		t.Errorf("ExpandHome of absolute path = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.memory/saveData.json")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".memory", "saveData.json") {
		t.Errorf("ExpandHome() = %q", got)
	}
}
