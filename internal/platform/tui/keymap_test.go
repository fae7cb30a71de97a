package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-dash/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want game.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, game.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, game.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, game.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, game.DirRight},
		{"w", runeKey('w'), game.DirUp},
		{"a", runeKey('a'), game.DirLeft},
		{"s", runeKey('s'), game.DirDown},
		{"d", runeKey('d'), game.DirRight},
		{"k", runeKey('k'), game.DirUp},
		{"h", runeKey('h'), game.DirLeft},
		{"j", runeKey('j'), game.DirDown},
		{"l", runeKey('l'), game.DirRight},
		{"enter does not steer", tea.KeyMsg{Type: tea.KeyEnter}, game.DirNone},
		{"x does not steer", runeKey('x'), game.DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Direction(tc.msg); got != tc.want {
				t.Errorf("Direction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapMenuAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{"q", runeKey('q'), MenuActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{"unbound", runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MenuAction(tc.msg); got != tc.want {
				t.Errorf("MenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
