// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Snake SnakeBody   `yaml:"snake"`
	Speed SpeedConfig `yaml:"speed"`
}

// GridConfig defines the board dimensions in cells.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SnakeBody defines the snake's starting shape.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
}

// SpeedConfig defines the tick interval and its progression.
type SpeedConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"` // Tick interval at score 0
	SpeedUpEvery   int     `yaml:"speed_up_every"`   // Points between speed-up steps
	SpeedUpFactor  float64 `yaml:"speed_up_factor"`  // Interval multiplier per step
	MinIntervalMs  float64 `yaml:"min_interval_ms"`  // Interval floor
	MultiplierCap  float64 `yaml:"multiplier_cap"`   // Display cap for the speed multiplier
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySnakePreset adjusts the config for a difficulty preset. Easy and hard
// scale the base interval; fixed disables speed progression entirely.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMs *= 1.25
	case DifficultyHard:
		cfg.Speed.BaseIntervalMs *= 0.75
	case DifficultyFixed:
		cfg.Speed.SpeedUpEvery = 0
	}
}

// ValidPreset reports whether the preset name is recognized (empty is valid
// and means normal).
func ValidPreset(preset string) bool {
	switch DifficultyPreset(preset) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	default:
		return false
	}
}
