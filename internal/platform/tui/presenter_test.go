package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/candy-dash/internal/core"
	"github.com/vovakirdan/candy-dash/internal/game"
)

func TestSpriteTableLifecycle(t *testing.T) {
	st := newSpriteTable()

	h1 := st.CreatePiece(game.Piece{Kind: game.KindDot, X: 10, Y: 10, Size: 5})
	h2 := st.CreatePiece(game.Piece{Kind: game.KindPlayer, X: 50, Y: 50, Size: 10})
	if h1 == h2 {
		t.Fatal("handles should be unique")
	}
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", st.Len())
	}

	st.UpdatePiece(h2, game.Piece{Kind: game.KindPlayer, X: 60, Y: 50, Size: 10})
	for _, p := range st.Sprites() {
		if p.Kind == game.KindPlayer && p.X != 60 {
			t.Errorf("player X = %v after update, expected 60", p.X)
		}
	}

	st.UpdatePiece(999, game.Piece{Kind: game.KindEnemy})
	if st.Len() != 2 {
		t.Error("updating an unknown handle should not add a sprite")
	}

	st.RemovePiece(h1)
	if st.Len() != 1 {
		t.Errorf("Len() = %d after remove, expected 1", st.Len())
	}
}

func TestSpriteTablePaintOrder(t *testing.T) {
	st := newSpriteTable()
	st.CreatePiece(game.Piece{Kind: game.KindPlayer})
	st.CreatePiece(game.Piece{Kind: game.KindEnemy})
	st.CreatePiece(game.Piece{Kind: game.KindBorder})
	st.CreatePiece(game.Piece{Kind: game.KindDot, Hidden: true})
	st.CreatePiece(game.Piece{Kind: game.KindDot})

	got := st.Sprites()
	want := []game.Kind{game.KindBorder, game.KindDot, game.KindEnemy, game.KindPlayer}
	if len(got) != len(want) {
		t.Fatalf("Sprites() returned %d pieces, expected %d (hidden excluded)", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("sprite %d kind = %v, expected %v", i, got[i].Kind, k)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	s := core.NewScreen(10, 5)
	sprites := []game.Piece{
		{Kind: game.KindDot, X: 0, Y: 0, Size: 10},
		{Kind: game.KindPlayer, X: 30, Y: 20, Size: 20, Facing: -180},
	}

	DrawBoard(s, sprites, 10, 20)

	if c := s.GetCell(0, 0); c.Rune != '•' || c.Color != core.ColorMagenta {
		t.Errorf("dot cell = %+v, expected magenta '•'", c)
	}
	if r := s.GetCell(3, 1).Rune; r != '<' {
		t.Errorf("player should face left at its first cell, got %q\n%s", r, plainText(s))
	}
	if s.GetCell(4, 1).Rune != '@' {
		t.Errorf("player body missing at (4, 1)\n%s", plainText(s))
	}
	if s.GetCell(5, 1).Rune != ' ' || s.GetCell(3, 2).Rune != ' ' {
		t.Errorf("player drawn outside its span\n%s", plainText(s))
	}
}

func TestCellSpanCoversAtLeastOneCell(t *testing.T) {
	c0, c1 := cellSpan(12, 1, 10)
	if c0 != 1 || c1 != 2 {
		t.Errorf("cellSpan(12, 1, 10) = [%d, %d), expected [1, 2)", c0, c1)
	}
	c0, c1 = cellSpan(20, 0, 10)
	if c1-c0 != 1 {
		t.Errorf("zero-size piece should still cover one cell, got [%d, %d)", c0, c1)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetColored(0, 0, '•', core.ColorMagenta)
	s.FillRect(1, 1, 4, 2, 'a', core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "•") || !strings.Contains(out, "aaa") {
		t.Errorf("RenderScreen lost content: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("RenderScreen produced %d lines, expected 2", len(lines))
	}
}

// plainText dumps the screen runes for failure messages.
func plainText(s *core.Screen) string {
	var b strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		for x, w := 0, s.Width(); x < w; x++ {
			b.WriteRune(s.GetCell(x, y).Rune)
		}
		b.WriteRune('\n')
	}
	return b.String()
}
