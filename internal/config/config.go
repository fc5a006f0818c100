// Package config provides YAML-based game configuration loading for the
// slither arcade.
package config

import "fmt"

// GameConfig contains all tunable parameters for the snake game.
type GameConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Food    FoodConfig    `yaml:"food"`
	Snake   SnakeConfig   `yaml:"snake"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SpeedConfig defines the tick-interval progression.
// The interval shrinks by StepMs on every food eaten, never below MinMs.
type SpeedConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	StepMs            int `yaml:"step_ms"`
}

// ScoringConfig defines score progression.
type ScoringConfig struct {
	PerFood int `yaml:"per_food"`
}

// FoodConfig defines food spawn and animation parameters.
type FoodConfig struct {
	// GrowthStep is the per-tick increment of the spawn-in animation
	// scalar, which runs from 0 (just spawned) to 1 (full size).
	GrowthStep float64 `yaml:"growth_step"`
	// SpawnRetries bounds the rejection-sampling loop when placing food.
	SpawnRetries int `yaml:"spawn_retries"`
}

// SnakeConfig defines the snake's spawn parameters.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.Grid.Cols < 5 || c.Grid.Rows < 5 {
		return fmt.Errorf("config: grid must be at least 5x5, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Speed.InitialIntervalMs <= 0 {
		return fmt.Errorf("config: initial_interval_ms must be positive, got %d", c.Speed.InitialIntervalMs)
	}
	if c.Speed.MinIntervalMs <= 0 || c.Speed.MinIntervalMs > c.Speed.InitialIntervalMs {
		return fmt.Errorf("config: min_interval_ms must be in (0, %d], got %d", c.Speed.InitialIntervalMs, c.Speed.MinIntervalMs)
	}
	if c.Speed.StepMs < 0 {
		return fmt.Errorf("config: step_ms must be non-negative, got %d", c.Speed.StepMs)
	}
	if c.Scoring.PerFood <= 0 {
		return fmt.Errorf("config: per_food must be positive, got %d", c.Scoring.PerFood)
	}
	if c.Food.GrowthStep <= 0 || c.Food.GrowthStep > 1 {
		return fmt.Errorf("config: growth_step must be in (0, 1], got %f", c.Food.GrowthStep)
	}
	if c.Food.SpawnRetries <= 0 {
		return fmt.Errorf("config: spawn_retries must be positive, got %d", c.Food.SpawnRetries)
	}
	if c.Snake.StartLength < 2 {
		return fmt.Errorf("config: start_length must be at least 2, got %d", c.Snake.StartLength)
	}
	if c.Snake.StartLength >= c.Grid.Cols/2 {
		return fmt.Errorf("config: start_length %d does not fit a %d-column grid", c.Snake.StartLength, c.Grid.Cols)
	}
	return nil
}
