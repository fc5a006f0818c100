package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default snake configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Cols: 24,
			Rows: 18,
		},
		Speed: SpeedConfig{
			InitialIntervalMs: 200,
			MinIntervalMs:     60,
			StepMs:            2,
		},
		Scoring: ScoringConfig{
			PerFood: 10,
		},
		Food: FoodConfig{
			GrowthStep:   0.1,
			SpawnRetries: 64,
		},
		Snake: SnakeConfig{
			StartLength: 3,
		},
	}
}
