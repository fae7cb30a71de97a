package config

import (
	_ "embed"
)

//go:embed defaults/candydash.yaml
var defaultYAML []byte

// Default returns the built-in configuration used when no YAML is readable.
func Default() Config {
	return Config{
		Board: BoardConfig{
			TargetRatio:       0.02,
			FruitScale:        1.25,
			PlayerScale:       2.0,
			BorderScale:       0.5,
			EffectScale:       1.0,
			MarginFactor:      4,
			PlacementAttempts: 1000,
			CellWidth:         10,
			CellHeight:        20,
		},
		Pieces: PiecesConfig{
			DotCount:   5,
			FruitCount: 1,
			DotPoints:  1,
			Step:       10,
		},
		Rates: Rates{
			SizeEnlarger:   10,
			EnemySpawnRate: 2,
			FruitSeconds:   10,
		},
		Timers: TimersConfig{
			GameMinutes: 3,
		},
		Difficulty: DifficultyConfig{
			Percentile:  15,
			Default:     DifficultyEasy,
			AllowChange: false,
		},
	}
}
