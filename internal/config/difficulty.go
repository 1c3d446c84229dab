package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// PresetNames returns the presets as a comma separated list for help and
// error messages.
func PresetNames() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want one of %s)", s, PresetNames())
	}
}

// ApplyPreset modifies the config based on a difficulty preset. Normal leaves
// the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		cfg.Gameplay.AnswerTime += 5
		cfg.Gameplay.MaxOperand = max(1, cfg.Gameplay.MaxOperand/2)
	case DifficultyHard:
		cfg.Gameplay.Lives = max(1, cfg.Gameplay.Lives-2)
		cfg.Gameplay.AnswerTime = max(cfg.Gameplay.MinAnswerTime, cfg.Gameplay.AnswerTime-5)
		cfg.Gameplay.MaxOperand += cfg.Gameplay.MaxOperand / 2
	}
}
