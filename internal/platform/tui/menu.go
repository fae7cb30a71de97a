package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/game"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one selectable line of a menu.
type MenuItem struct {
	Title  string
	Detail string // Shown under the list while the item is highlighted
}

// menuList is a vertical list with a cursor.
type menuList struct {
	items  []MenuItem
	cursor int
}

// Move applies an up or down action, stopping at the ends.
func (l *menuList) Move(a MenuAction) {
	switch a {
	case MenuActionUp:
		if l.cursor > 0 {
			l.cursor--
		}
	case MenuActionDown:
		if l.cursor < len(l.items)-1 {
			l.cursor++
		}
	}
}

// Cursor returns the highlighted index.
func (l menuList) Cursor() int {
	return l.cursor
}

// View renders the list centered in width, followed by the detail line
// of the highlighted item.
func (l menuList) View(width int) string {
	var b strings.Builder
	for i, item := range l.items {
		line := "  " + item.Title
		if i == l.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}
	if l.cursor < len(l.items) && l.items[l.cursor].Detail != "" {
		b.WriteString("\n")
		for _, line := range wrapDetail(l.items[l.cursor].Detail, width) {
			b.WriteString(centerText(line, width))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// modeMenu lists the game modes with the cursor on current.
func modeMenu(current game.Mode) menuList {
	l := menuList{}
	for i, m := range game.Modes {
		l.items = append(l.items, MenuItem{Title: m.Title(), Detail: m.Description()})
		if m == current {
			l.cursor = i
		}
	}
	return l
}

// allDifficulties offers every tier, for the first pick of a run.
func allDifficulties() []game.DifficultyChoice {
	out := make([]game.DifficultyChoice, 0, len(config.Difficulties))
	for _, d := range config.Difficulties {
		out = append(out, game.DifficultyChoice{Label: d.Title(), Difficulty: d})
	}
	return out
}

// difficultyMenu lists difficulty choices with the cursor on current.
func difficultyMenu(choices []game.DifficultyChoice, current config.Difficulty) menuList {
	l := menuList{}
	for i, c := range choices {
		l.items = append(l.items, MenuItem{Title: c.Label})
		if c.Difficulty == current {
			l.cursor = i
		}
	}
	return l
}

// choiceMenu lists the next-step choices after a session.
func choiceMenu(choices []game.Choice) menuList {
	l := menuList{}
	for _, c := range choices {
		item := MenuItem{Title: c.Label}
		if c.Mode != "" {
			item.Detail = c.Mode.Description()
		}
		l.items = append(l.items, item)
	}
	return l
}

// wrapDetail styles a description and wraps it to fit width.
func wrapDetail(text string, width int) []string {
	w := max(20, min(width-4, 64))
	return strings.Split(detailStyle.Width(w).Render(text), "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
