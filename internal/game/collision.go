package game

import "github.com/vovakirdan/candy-dash/internal/core"

// Collides reports whether two pieces overlap. Touching edges do not count.
func Collides(a, b Piece) bool {
	return a.Rect().Intersects(b.Rect())
}

// SpotTaken reports whether r overlaps any piece in exclude.
func SpotTaken(r core.Rect, exclude []Piece) bool {
	for _, p := range exclude {
		if r.Intersects(p.Rect()) {
			return true
		}
	}
	return false
}
