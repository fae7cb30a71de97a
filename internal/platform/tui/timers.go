package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaTimers implements game.Timers with Bubble Tea tick commands.
// The engine calls it synchronously from Update, so scheduled ticks are
// queued and handed to Bubble Tea by Drain. Every tick carries the
// generation it was scheduled under; Stop bumps the generation so ticks
// already in flight are recognised as stale and dropped.
type teaTimers struct {
	gen     int
	fruit   time.Duration // Repeat interval; 0 when the fruit timer is off
	pending []tea.Cmd
}

func newTeaTimers() *teaTimers {
	return &teaTimers{}
}

// StartFruit schedules a repeating fruit tick.
func (t *teaTimers) StartFruit(interval time.Duration) {
	t.fruit = interval
	t.pending = append(t.pending, fruitTickCmd(t.gen, interval))
}

// StartGame schedules a single game tick after d.
func (t *teaTimers) StartGame(d time.Duration) {
	t.pending = append(t.pending, gameTickCmd(t.gen, d))
}

// Stop invalidates every tick scheduled so far.
func (t *teaTimers) Stop() {
	t.gen++
	t.fruit = 0
	t.pending = nil
}

// Current reports whether a tick from generation gen is still live.
func (t *teaTimers) Current(gen int) bool {
	return gen == t.gen
}

// Rearm schedules the next fruit tick after one was delivered.
func (t *teaTimers) Rearm() {
	if t.fruit > 0 {
		t.pending = append(t.pending, fruitTickCmd(t.gen, t.fruit))
	}
}

// Drain returns the queued commands as one batch and clears the queue.
func (t *teaTimers) Drain() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := t.pending
	t.pending = nil
	return tea.Batch(cmds...)
}
