package game

import (
	"strings"
	"time"

	"github.com/vovakirdan/candy-dash/internal/config"
)

// InvalidConfigurationError reports an unknown mode or difficulty or an
// unusable parameter.
type InvalidConfigurationError = config.InvalidConfigurationError

// Mode selects which mechanics are active in a session.
type Mode string

const (
	ModePractice Mode = "practice"
	ModeLevel1   Mode = "level1"
	ModeLevel2   Mode = "level2"
	ModeLevel3   Mode = "level3"
)

// Modes lists the modes in play order.
var Modes = []Mode{ModePractice, ModeLevel1, ModeLevel2, ModeLevel3}

// ParseMode converts a user-supplied name to a Mode.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(n)
	switch n {
	case "practice", "p", "0":
		return ModePractice, nil
	case "level1", "l1", "1":
		return ModeLevel1, nil
	case "level2", "l2", "2":
		return ModeLevel2, nil
	case "level3", "l3", "3":
		return ModeLevel3, nil
	}
	return "", &InvalidConfigurationError{Field: "mode", Value: name, Reason: "expected practice, level1, level2 or level3"}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModePractice, ModeLevel1, ModeLevel2, ModeLevel3:
		return true
	}
	return false
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModePractice:
		return "Practice"
	case ModeLevel1:
		return "Level 1"
	case ModeLevel2:
		return "Level 2"
	case ModeLevel3:
		return "Level 3"
	default:
		return "Unknown"
	}
}

// Description returns the short guide shown before a level starts.
func (m Mode) Description() string {
	switch m {
	case ModePractice:
		return "Learn the controls. A handful of candies and nothing else; no points are counted. Eat them all to finish."
	case ModeLevel1:
		return "Every candy is worth a point and a new one appears for each you eat. Enemies lurk on the board and more show up as you feast. Touch one and it is over."
	case ModeLevel2:
		return "As Level 1, but each candy makes you bigger. Eat fruit to shrink back. Fruit moves somewhere else if you leave it too long."
	case ModeLevel3:
		return "As Level 2, against the clock. Score as much as you can before time runs out."
	default:
		return ""
	}
}

// Next returns the mode that follows m, or "" after Level 3.
func (m Mode) Next() Mode {
	switch m {
	case ModePractice:
		return ModeLevel1
	case ModeLevel1:
		return ModeLevel2
	case ModeLevel2:
		return ModeLevel3
	default:
		return ""
	}
}

// ModeConfig is the immutable parameter set of one session.
type ModeConfig struct {
	Mode       Mode
	Difficulty config.Difficulty
	Rates      config.Rates // Derived from the base rates for Difficulty

	DotCount   int
	EnemyCount int
	FruitCount int
	DotPoints  int
	Step       float64

	Scoring   bool // Dots add to the score
	Enemies   bool
	Fruit     bool
	Enlarger  bool // Dots grow the player
	LimitDots bool // Eaten dots are not replaced
	GameTimer bool

	FruitInterval time.Duration
	GameDuration  time.Duration
}

// NewModeConfig builds the parameters for mode at the given difficulty.
func NewModeConfig(mode Mode, diff config.Difficulty, settings config.Config) (ModeConfig, error) {
	if !mode.Valid() {
		return ModeConfig{}, &InvalidConfigurationError{Field: "mode", Value: string(mode), Reason: "unknown mode"}
	}
	if err := settings.Validate(); err != nil {
		return ModeConfig{}, err
	}
	rates, err := config.Profile(diff, settings.Rates, settings.Difficulty.Percentile)
	if err != nil {
		return ModeConfig{}, err
	}

	mc := ModeConfig{
		Mode:          mode,
		Difficulty:    diff,
		Rates:         rates,
		DotCount:      settings.Pieces.DotCount,
		DotPoints:     settings.Pieces.DotPoints,
		Step:          settings.Pieces.Step,
		FruitInterval: time.Duration(rates.FruitSeconds) * time.Second,
		GameDuration:  time.Duration(settings.Timers.GameMinutes * float64(time.Minute)),
	}

	switch mode {
	case ModePractice:
		mc.LimitDots = true
	case ModeLevel1:
		mc.Scoring = true
		mc.Enemies = true
	case ModeLevel2:
		mc.Scoring = true
		mc.Enemies = true
		mc.Fruit = true
		mc.Enlarger = true
	case ModeLevel3:
		mc.Scoring = true
		mc.Enemies = true
		mc.Fruit = true
		mc.Enlarger = true
		mc.GameTimer = true
	}
	if mc.Enemies {
		mc.EnemyCount = mc.DotCount / 2
	}
	if mc.Fruit {
		mc.FruitCount = settings.Pieces.FruitCount
	}
	return mc, nil
}

// ChoiceAction is what a next-step choice does.
type ChoiceAction string

const (
	ActionAdvance ChoiceAction = "advance"
	ActionReplay  ChoiceAction = "replay"
	ActionQuit    ChoiceAction = "quit"
)

// Choice is one option offered after a session ends.
type Choice struct {
	Label  string
	Action ChoiceAction
	Mode   Mode // Mode to start; empty for quit
	// OfferDifficulty asks the front end to let the player pick a new
	// difficulty before starting Mode.
	OfferDifficulty bool
}

// NextChoices returns the options offered after a session in mode ends.
func NextChoices(mode Mode, allowDifficultyChange bool) []Choice {
	var choices []Choice
	offer := allowDifficultyChange && mode != ModePractice

	if next := mode.Next(); next != "" {
		choices = append(choices, Choice{
			Label:           "Continue to " + next.Title(),
			Action:          ActionAdvance,
			Mode:            next,
			OfferDifficulty: offer,
		})
	}

	label := "Replay " + mode.Title()
	if mode == ModePractice {
		label = "Practice again"
	}
	choices = append(choices,
		Choice{Label: label, Action: ActionReplay, Mode: mode, OfferDifficulty: offer},
		Choice{Label: "Quit", Action: ActionQuit},
	)
	return choices
}

// DifficultyChoice is one option when difficulty is re-offered.
type DifficultyChoice struct {
	Label      string
	Difficulty config.Difficulty
}

// DifficultyChoices lists the re-offer options: keep the current tier,
// or move one tier down or up where possible.
func DifficultyChoices(current config.Difficulty) []DifficultyChoice {
	choices := []DifficultyChoice{{Label: "Stay on " + current.Title(), Difficulty: current}}
	idx := -1
	for i, d := range config.Difficulties {
		if d == current {
			idx = i
		}
	}
	if idx > 0 {
		lower := config.Difficulties[idx-1]
		choices = append(choices, DifficultyChoice{Label: "Lower to " + lower.Title(), Difficulty: lower})
	}
	if idx >= 0 && idx < len(config.Difficulties)-1 {
		higher := config.Difficulties[idx+1]
		choices = append(choices, DifficultyChoice{Label: "Raise to " + higher.Title(), Difficulty: higher})
	}
	return choices
}
