// Package game implements the candy-dash simulation: piece placement,
// collision and scoring rules, mode and difficulty parameters, and the
// timer-driven spawn lifecycle. Drawing and input are left to a Presenter.
package game

import (
	"sort"

	"github.com/vovakirdan/candy-dash/internal/core"
)

// Kind tags what a piece is.
type Kind int

const (
	KindPlayer Kind = iota
	KindDot
	KindFruit
	KindEnemy
	KindBorder
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindDot:
		return "dot"
	case KindFruit:
		return "fruit"
	case KindEnemy:
		return "enemy"
	case KindBorder:
		return "border"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// PieceID identifies a piece for the lifetime of an Engine.
type PieceID uint64

// Handle is the presentation's reference to a piece's visual.
// The engine stores it and hands it back; it never interprets it.
type Handle uint64

// Piece is a positioned, sized square on the board.
type Piece struct {
	ID     PieceID
	Kind   Kind
	X, Y   float64 // Top-left corner in board units
	Size   float64
	Points int
	Facing float64 // Degrees, render only
	Hidden bool
	Handle Handle
}

// Rect returns the piece's bounding square.
func (p Piece) Rect() core.Rect {
	return core.Square(p.X, p.Y, p.Size)
}

// SamePosition reports whether two pieces sit at the same spot.
func (p Piece) SamePosition(o Piece) bool {
	return p.X == o.X && p.Y == o.Y
}

// Before orders pieces top to bottom, then left to right.
func (p Piece) Before(o Piece) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// SortByPosition orders pieces in place by (top, left).
func SortByPosition(pieces []Piece) {
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].Before(pieces[j])
	})
}

// store is the single owner of one category of pieces.
type store struct {
	pieces map[PieceID]*Piece
}

func newStore() store {
	return store{pieces: make(map[PieceID]*Piece)}
}

func (s *store) add(p *Piece) {
	s.pieces[p.ID] = p
}

func (s *store) get(id PieceID) *Piece {
	return s.pieces[id]
}

func (s *store) remove(id PieceID) (*Piece, bool) {
	p, ok := s.pieces[id]
	if ok {
		delete(s.pieces, id)
	}
	return p, ok
}

func (s *store) len() int {
	return len(s.pieces)
}

// snapshot copies the pieces in creation order. Callers iterate the copy
// while mutating the store.
func (s *store) snapshot() []Piece {
	out := make([]Piece, 0, len(s.pieces))
	for _, p := range s.pieces {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// first returns the oldest piece, or nil when empty.
func (s *store) first() *Piece {
	var best *Piece
	for _, p := range s.pieces {
		if best == nil || p.ID < best.ID {
			best = p
		}
	}
	return best
}
