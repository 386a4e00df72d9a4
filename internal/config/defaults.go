package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default game configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Columns: 32,
			Rows:    20,
		},
		Snake: SnakeBody{
			InitialLength: 4,
		},
		Speed: SpeedConfig{
			BaseIntervalMs: 150,
			SpeedUpEvery:   5,
			SpeedUpFactor:  0.92,
			MinIntervalMs:  45,
			MultiplierCap:  3.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
