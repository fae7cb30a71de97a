package game

import (
	"time"

	"github.com/vovakirdan/candy-dash/internal/config"
)

// Phase is the session state.
type Phase string

const (
	PhaseSelecting Phase = "selecting"
	PhaseRunning   Phase = "running"
	PhaseEnded     Phase = "ended"
)

// EndReason says why a session ended.
type EndReason string

const (
	EndNone    EndReason = ""
	EndCleared EndReason = "cleared" // Practice: every dot eaten
	EndCaught  EndReason = "caught"  // Touched an enemy
	EndTimeUp  EndReason = "time_up" // Level 3 clock ran out
)

// Message returns the line shown in the end-of-session summary.
func (r EndReason) Message() string {
	switch r {
	case EndCleared:
		return "All candies collected. Nicely done!"
	case EndCaught:
		return "Boom! An enemy got you."
	case EndTimeUp:
		return "Time is up!"
	default:
		return ""
	}
}

// RunResult reports a finished session.
type RunResult struct {
	Mode       Mode
	Difficulty config.Difficulty
	Score      int
	RunBest    int // Best score across sessions of this engine
	Reason     EndReason
	DotsEaten  int
	FruitEaten int
	Duration   time.Duration
	EndedAt    time.Time
}
