// Package tui provides the Bubble Tea front end for candy-dash.
// It handles the terminal UI loop, input mapping, timers and the
// menu/summary flow around a game.Engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// hudRefresh is how often the Level 3 clock on the HUD is redrawn.
const hudRefresh = 250 * time.Millisecond

// fruitTickMsg asks the engine to move the fruit.
// gen identifies the timer set that scheduled it.
type fruitTickMsg struct{ gen int }

// gameTickMsg ends a timed session.
type gameTickMsg struct{ gen int }

// clockMsg redraws the HUD countdown for the session of generation gen.
type clockMsg struct{ gen int }

func fruitTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return fruitTickMsg{gen: gen}
	})
}

func gameTickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return gameTickMsg{gen: gen}
	})
}

func clockCmd(gen int) tea.Cmd {
	return tea.Tick(hudRefresh, func(time.Time) tea.Msg {
		return clockMsg{gen: gen}
	})
}
