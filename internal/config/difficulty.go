package config

// GridForPreset returns the rows and columns of a difficulty preset.
// Unknown presets return ok == false.
func GridForPreset(preset DifficultyPreset) (rows, cols int, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 2, 4, true
	case DifficultyNormal:
		return 4, 4, true
	case DifficultyHard:
		return 6, 6, true
	default:
		return 0, 0, false
	}
}

// ParsePreset converts a CLI string into a preset. Empty or unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyMemoryPreset modifies the config's default grid based on a difficulty preset.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	rows, cols, ok := GridForPreset(preset)
	if !ok {
		return
	}
	cfg.Grid.Rows = rows
	cfg.Grid.Cols = cols
	if cfg.Grid.MaxRows < rows {
		cfg.Grid.MaxRows = rows
	}
	if cfg.Grid.MaxCols < cols {
		cfg.Grid.MaxCols = cols
	}
}
