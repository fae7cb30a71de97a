// Package config provides YAML-based game configuration loading and
// difficulty profiles for candy-dash.
package config

import "fmt"

// Config contains all tunable parameters of the game.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Rates      Rates            `yaml:"rates"`
	Timers     TimersConfig     `yaml:"timers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines piece sizes relative to the board and placement limits.
type BoardConfig struct {
	TargetRatio       float64 `yaml:"target_ratio"`       // Base piece size as a fraction of the longer board side
	FruitScale        float64 `yaml:"fruit_scale"`        // Fruit size relative to the base size
	PlayerScale       float64 `yaml:"player_scale"`       // Player size relative to the base size
	BorderScale       float64 `yaml:"border_scale"`       // Border tile size relative to the base size
	EffectScale       float64 `yaml:"effect_scale"`       // Explosion marker size relative to the base size
	MarginFactor      float64 `yaml:"margin_factor"`      // Placement margin in multiples of the piece size
	PlacementAttempts int     `yaml:"placement_attempts"` // Samples tried before a placement gives up
	CellWidth         float64 `yaml:"cell_width"`         // Board units per terminal column
	CellHeight        float64 `yaml:"cell_height"`        // Board units per terminal row
}

// PiecesConfig defines piece counts and movement.
type PiecesConfig struct {
	DotCount   int     `yaml:"dot_count"`
	FruitCount int     `yaml:"fruit_count"`
	DotPoints  int     `yaml:"dot_points"`
	Step       float64 `yaml:"step"` // Units moved per directional command
}

// Rates are the three parameters scaled by difficulty.
type Rates struct {
	SizeEnlarger   float64 `yaml:"size_enlarger"`    // Player growth per dot point
	EnemySpawnRate int     `yaml:"enemy_spawn_rate"` // Replacement dots needed before an enemy spawns
	FruitSeconds   int     `yaml:"fruit_seconds"`    // Fruit lifetime before it moves
}

// TimersConfig defines session timers.
type TimersConfig struct {
	GameMinutes float64 `yaml:"game_minutes"` // Level 3 time limit
}

// DifficultyConfig defines how difficulty tiers are derived and offered.
type DifficultyConfig struct {
	Percentile  int        `yaml:"percentile"`   // Scaling step in percent
	Default     Difficulty `yaml:"default"`      // Tier used when none is chosen
	AllowChange bool       `yaml:"allow_change"` // Re-offer difficulty between levels
}

// InvalidConfigurationError reports a mode, difficulty or parameter value
// the engine refuses to run with.
type InvalidConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %v: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) error {
	return &InvalidConfigurationError{Field: field, Value: value, Reason: reason}
}

// Validate checks that every parameter is usable.
func (c Config) Validate() error {
	switch {
	case c.Board.TargetRatio <= 0:
		return invalid("board.target_ratio", c.Board.TargetRatio, "must be positive")
	case c.Board.FruitScale <= 0:
		return invalid("board.fruit_scale", c.Board.FruitScale, "must be positive")
	case c.Board.PlayerScale <= 0:
		return invalid("board.player_scale", c.Board.PlayerScale, "must be positive")
	case c.Board.BorderScale <= 0:
		return invalid("board.border_scale", c.Board.BorderScale, "must be positive")
	case c.Board.EffectScale <= 0:
		return invalid("board.effect_scale", c.Board.EffectScale, "must be positive")
	case c.Board.MarginFactor < 0:
		return invalid("board.margin_factor", c.Board.MarginFactor, "must not be negative")
	case c.Board.PlacementAttempts <= 0:
		return invalid("board.placement_attempts", c.Board.PlacementAttempts, "must be positive")
	case c.Board.CellWidth <= 0 || c.Board.CellHeight <= 0:
		return invalid("board.cell_width/cell_height", fmt.Sprintf("%vx%v", c.Board.CellWidth, c.Board.CellHeight), "must be positive")
	case c.Pieces.DotCount <= 0:
		return invalid("pieces.dot_count", c.Pieces.DotCount, "must be positive")
	case c.Pieces.FruitCount < 0:
		return invalid("pieces.fruit_count", c.Pieces.FruitCount, "must not be negative")
	case c.Pieces.DotPoints <= 0:
		return invalid("pieces.dot_points", c.Pieces.DotPoints, "must be positive")
	case c.Pieces.Step <= 0:
		return invalid("pieces.step", c.Pieces.Step, "must be positive")
	case c.Rates.SizeEnlarger < 0:
		return invalid("rates.size_enlarger", c.Rates.SizeEnlarger, "must not be negative")
	case c.Rates.EnemySpawnRate < 0:
		return invalid("rates.enemy_spawn_rate", c.Rates.EnemySpawnRate, "must not be negative")
	case c.Rates.FruitSeconds < 1:
		return invalid("rates.fruit_seconds", c.Rates.FruitSeconds, "must be at least 1")
	case c.Timers.GameMinutes <= 0:
		return invalid("timers.game_minutes", c.Timers.GameMinutes, "must be positive")
	case c.Difficulty.Percentile < 0 || c.Difficulty.Percentile > 100:
		return invalid("difficulty.percentile", c.Difficulty.Percentile, "must be within 0..100")
	}
	if _, err := ParseDifficulty(string(c.Difficulty.Default)); err != nil {
		return err
	}
	return nil
}
