package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no path should not fail: %v", err)
	}
	want := DefaultGameConfig()
	if cfg.Grid != want.Grid {
		t.Errorf("embedded grid %+v != hardcoded %+v", cfg.Grid, want.Grid)
	}
	if cfg.Speed != want.Speed {
		t.Errorf("embedded speed %+v != hardcoded %+v", cfg.Speed, want.Speed)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("embedded scoring %+v != hardcoded %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Snake != want.Snake {
		t.Errorf("embedded snake %+v != hardcoded %+v", cfg.Snake, want.Snake)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte(`
grid:
  cols: 32
  rows: 20
speed:
  initial_interval_ms: 150
  min_interval_ms: 60
  step_ms: 5
scoring:
  per_food: 25
food:
  growth_step: 0.2
  spawn_retries: 32
snake:
  start_length: 4
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.Cols != 32 || cfg.Grid.Rows != 20 {
		t.Errorf("grid = %+v, expected 32x20", cfg.Grid)
	}
	if cfg.Scoring.PerFood != 25 {
		t.Errorf("per_food = %d, expected 25", cfg.Scoring.PerFood)
	}
}

func TestLoadPartialFileInheritsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte(`
grid:
  cols: 30
  rows: 20
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.Cols != 30 || cfg.Grid.Rows != 20 {
		t.Errorf("grid = %+v, expected 30x20", cfg.Grid)
	}

	want := DefaultGameConfig()
	if cfg.Speed != want.Speed {
		t.Errorf("speed = %+v, expected defaults %+v", cfg.Speed, want.Speed)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected defaults %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Food != want.Food {
		t.Errorf("food = %+v, expected defaults %+v", cfg.Food, want.Food)
	}
	if cfg.Snake != want.Snake {
		t.Errorf("snake = %+v, expected defaults %+v", cfg.Snake, want.Snake)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"tiny grid", func(c *GameConfig) { c.Grid.Cols = 2 }},
		{"zero interval", func(c *GameConfig) { c.Speed.InitialIntervalMs = 0 }},
		{"floor above initial", func(c *GameConfig) { c.Speed.MinIntervalMs = c.Speed.InitialIntervalMs + 1 }},
		{"negative step", func(c *GameConfig) { c.Speed.StepMs = -1 }},
		{"zero score", func(c *GameConfig) { c.Scoring.PerFood = 0 }},
		{"zero growth step", func(c *GameConfig) { c.Food.GrowthStep = 0 }},
		{"growth step above 1", func(c *GameConfig) { c.Food.GrowthStep = 1.5 }},
		{"zero retries", func(c *GameConfig) { c.Food.SpawnRetries = 0 }},
		{"short snake", func(c *GameConfig) { c.Snake.StartLength = 1 }},
		{"snake longer than half grid", func(c *GameConfig) { c.Snake.StartLength = c.Grid.Cols }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}
