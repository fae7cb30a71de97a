package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", c.Rune, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(100, 0, 'A', ColorRed)
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if c := s.GetCell(100, 0); c.Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(0, 0, 10, 10, 'X', ColorGreen)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected plain space at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 5, 5, '#', ColorYellow)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorYellow {
				t.Errorf("FillRect: expected yellow '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}

	// Clipped at the edges
	s.FillRect(8, 8, 12, 12, '*', ColorRed)
	if s.GetCell(9, 9).Rune != '*' {
		t.Error("FillRect should draw the visible part of a clipped rect")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(0, 0, 5, 1, 'H', ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	for x := 0; x < 5; x++ {
		if c := s.GetCell(x, 0); c.Rune != 'H' || c.Color != ColorCyan {
			t.Errorf("Content should be preserved at (%d, 0), got %+v", x, c)
		}
	}

	s.Resize(15, 8)
	if c := s.GetCell(4, 0); c.Rune != 'H' {
		t.Errorf("Content should be preserved after enlarging, got %+v", c)
	}
	if c := s.GetCell(12, 6); c.Rune != ' ' {
		t.Errorf("New area should be blank, got %+v", c)
	}
}
