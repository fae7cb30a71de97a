package config

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		wantErr  bool
	}{
		{"", DifficultyEasy, false},
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDifficulty(tc.input)
			if tc.wantErr {
				var cfgErr *InvalidConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected InvalidConfigurationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestProfileDefaults(t *testing.T) {
	base := Default().Rates

	tests := []struct {
		difficulty Difficulty
		expected   Rates
	}{
		{DifficultyEasy, Rates{SizeEnlarger: 10, EnemySpawnRate: 2, FruitSeconds: 10}},
		{DifficultyMedium, Rates{SizeEnlarger: 12, EnemySpawnRate: 1, FruitSeconds: 9}},
		{DifficultyHard, Rates{SizeEnlarger: 13, EnemySpawnRate: 0, FruitSeconds: 8}},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			got, err := Profile(tc.difficulty, base, 15)
			if err != nil {
				t.Fatalf("Profile: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Profile(%s) = %+v, expected %+v", tc.difficulty, got, tc.expected)
			}
		})
	}
}

func TestProfileIsPure(t *testing.T) {
	base := Default().Rates
	first, _ := Profile(DifficultyMedium, base, 15)

	// Cycling through tiers must not drift.
	for i := 0; i < 5; i++ {
		for _, d := range Difficulties {
			if _, err := Profile(d, base, 15); err != nil {
				t.Fatal(err)
			}
		}
	}
	again, _ := Profile(DifficultyMedium, base, 15)
	if first != again {
		t.Errorf("Profile drifted: %+v then %+v", first, again)
	}
	if base != Default().Rates {
		t.Errorf("base rates mutated: %+v", base)
	}
}

func TestProfileClamps(t *testing.T) {
	base := Rates{SizeEnlarger: 10, EnemySpawnRate: 1, FruitSeconds: 2}

	got, err := Profile(DifficultyHard, base, 50)
	if err != nil {
		t.Fatal(err)
	}
	if got.EnemySpawnRate != 0 {
		t.Errorf("EnemySpawnRate = %d, expected clamp to 0", got.EnemySpawnRate)
	}
	if got.FruitSeconds != 1 {
		t.Errorf("FruitSeconds = %d, expected clamp to 1", got.FruitSeconds)
	}
	if got.SizeEnlarger != 20 {
		t.Errorf("SizeEnlarger = %v, expected 20", got.SizeEnlarger)
	}
}

func TestProfileUnknown(t *testing.T) {
	if _, err := Profile("extreme", Default().Rates, 15); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
