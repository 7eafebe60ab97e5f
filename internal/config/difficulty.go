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

// presetScaling holds the multipliers a preset applies to a config.
type presetScaling struct {
	speed    float64 // scroll speed
	interval float64 // spawn interval
	gap      float64 // obstacle gap
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {speed: 0.8, interval: 1.25, gap: 1.15},
	DifficultyNormal: {speed: 1, interval: 1, gap: 1},
	DifficultyHard:   {speed: 1.25, interval: 0.8, gap: 0.9},
}

// Presets returns the preset names in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a name to a preset. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// ApplyFlappyPreset scales speed, spawn interval and gap for a preset.
// The values are fixed for the whole run.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	s, ok := presets[preset]
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	cfg.Scroll.Speed *= s.speed
	cfg.Obstacles.SpawnInterval *= s.interval
	cfg.Obstacles.Gap *= s.gap
	return nil
}
