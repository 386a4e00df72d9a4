package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeDefault(t *testing.T) {
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake(\"\") failed: %v", err)
	}

	if cfg.Grid.Columns <= 0 || cfg.Grid.Rows <= 0 {
		t.Errorf("Default grid invalid: %+v", cfg.Grid)
	}
	if cfg.Speed.BaseIntervalMs <= cfg.Speed.MinIntervalMs {
		t.Errorf("Base interval %v should exceed the %v floor",
			cfg.Speed.BaseIntervalMs, cfg.Speed.MinIntervalMs)
	}
	if cfg.Speed.SpeedUpFactor <= 0 || cfg.Speed.SpeedUpFactor >= 1 {
		t.Errorf("Speed-up factor %v should shrink the interval", cfg.Speed.SpeedUpFactor)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	custom := `
grid:
  columns: 16
  rows: 12
snake:
  initial_length: 3
speed:
  base_interval_ms: 200
  speed_up_every: 3
  speed_up_factor: 0.9
  min_interval_ms: 60
  multiplier_cap: 2.5
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(custom) failed: %v", err)
	}

	if cfg.Grid.Columns != 16 || cfg.Grid.Rows != 12 {
		t.Errorf("Grid = %+v, expected 16x12", cfg.Grid)
	}
	if cfg.Speed.BaseIntervalMs != 200 {
		t.Errorf("BaseIntervalMs = %v, expected 200", cfg.Speed.BaseIntervalMs)
	}
}

func TestLoadSnakeMissingCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing custom config path")
	}
}

func TestLoadSnakeMalformedCustomPathErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset           DifficultyPreset
		expectedInterval float64
		expectedEvery    int
	}{
		{DifficultyEasy, 150 * 1.25, 5},
		{DifficultyNormal, 150, 5},
		{DifficultyHard, 150 * 0.75, 5},
		{DifficultyFixed, 150, 0},
		{"", 150, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)

			if cfg.Speed.BaseIntervalMs != tc.expectedInterval {
				t.Errorf("BaseIntervalMs = %v, expected %v", cfg.Speed.BaseIntervalMs, tc.expectedInterval)
			}
			if cfg.Speed.SpeedUpEvery != tc.expectedEvery {
				t.Errorf("SpeedUpEvery = %d, expected %d", cfg.Speed.SpeedUpEvery, tc.expectedEvery)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []string{"", "easy", "normal", "hard", "fixed"} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, expected true", p)
		}
	}
	for _, p := range []string{"extreme", "EASY", "medium"} {
		if ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = true, expected false", p)
		}
	}
}
