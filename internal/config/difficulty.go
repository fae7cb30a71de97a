package config

import (
	"math"
	"strings"
)

// Difficulty represents a named difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts a user-supplied name to a Difficulty.
// An empty name selects Easy.
func ParseDifficulty(name string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(name))) {
	case "", DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium, "normal":
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", invalid("difficulty", name, "expected easy, medium or hard")
}

// Title returns the display name of the tier.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Profile derives the live rates for a tier from the fixed base rates.
// It never reads previously derived values, so switching tiers any number
// of times always lands on the same numbers.
//
// Medium raises the growth rate by percentile percent (rounded up) and lowers
// the enemy threshold and fruit lifetime by percentile/10. Hard doubles those
// deltas. Easy returns base unchanged.
func Profile(d Difficulty, base Rates, percentile int) (Rates, error) {
	var factor int
	switch d {
	case DifficultyEasy:
		return base, nil
	case DifficultyMedium:
		factor = 1
	case DifficultyHard:
		factor = 2
	default:
		return Rates{}, invalid("difficulty", string(d), "expected easy, medium or hard")
	}

	step := percentile / 10
	growth := base.SizeEnlarger * float64(factor*percentile) / 100

	return Rates{
		SizeEnlarger:   math.Ceil(base.SizeEnlarger + growth),
		EnemySpawnRate: max(0, base.EnemySpawnRate-factor*step),
		FruitSeconds:   max(1, base.FruitSeconds-factor*step),
	}, nil
}
