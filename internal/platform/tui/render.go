package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candy-dash/internal/core"
	"github.com/vovakirdan/candy-dash/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// glyph is how one piece kind looks on screen.
type glyph struct {
	r     rune
	color core.Color
}

var glyphs = map[game.Kind]glyph{
	game.KindBorder: {'█', core.ColorGray},
	game.KindDot:    {'•', core.ColorMagenta},
	game.KindFruit:  {'◆', core.ColorBrightGreen},
	game.KindEnemy:  {'X', core.ColorBrightRed},
	game.KindEffect: {'✸', core.ColorOrange},
	game.KindPlayer: {'@', core.ColorBrightYellow},
}

// playerGlyph picks an arrow for the player's facing angle.
func playerGlyph(facing float64) rune {
	switch facing {
	case -90:
		return '^'
	case 90:
		return 'v'
	case -180:
		return '<'
	case 0:
		return '>'
	}
	return '@'
}

// cellSpan converts a board interval [pos, pos+size) to cells [c0, c1).
// Every piece covers at least one cell.
func cellSpan(pos, size, unit float64) (c0, c1 int) {
	c0 = int(math.Floor(pos / unit))
	c1 = int(math.Ceil((pos + size) / unit))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// DrawBoard rasterises sprites into s. cellW and cellH are the board units
// covered by one terminal column and row.
func DrawBoard(s *core.Screen, sprites []game.Piece, cellW, cellH float64) {
	s.Clear()
	for _, p := range sprites {
		g, ok := glyphs[p.Kind]
		if !ok {
			continue
		}
		x0, x1 := cellSpan(p.X, p.Size, cellW)
		y0, y1 := cellSpan(p.Y, p.Size, cellH)
		s.FillRect(x0, y0, x1, y1, g.r, g.color)
		if p.Kind == game.KindPlayer {
			cx, cy := (x0+x1-1)/2, (y0+y1-1)/2
			s.SetColored(cx, cy, playerGlyph(p.Facing), core.ColorYellow)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
