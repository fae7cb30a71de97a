package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/core"
)

// BoardFullError is returned when no free spot is found for a piece.
// Attempts is zero when the board leaves no sampling range at all.
type BoardFullError struct {
	Kind     Kind
	Size     float64
	Attempts int
}

func (e *BoardFullError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("board too small: no room for %s of size %.1f", e.Kind, e.Size)
	}
	return fmt.Sprintf("board full: no free spot for %s of size %.1f after %d attempts", e.Kind, e.Size, e.Attempts)
}

// Sizes are the piece side lengths derived from the board dimensions.
type Sizes struct {
	Target float64 // Dots and enemies
	Fruit  float64
	Player float64
	Border float64
	Effect float64
}

// ComputeSizes derives piece sizes from the longer board side.
func ComputeSizes(width, height float64, bc config.BoardConfig) Sizes {
	target := math.Max(width, height) * bc.TargetRatio
	return Sizes{
		Target: target,
		Fruit:  target * bc.FruitScale,
		Player: target * bc.PlayerScale,
		Border: target * bc.BorderScale,
		Effect: target * bc.EffectScale,
	}
}

// Board is the play surface and allocates random non-overlapping spots.
type Board struct {
	Width  float64
	Height float64

	rng          *rand.Rand
	attempts     int
	marginFactor float64
}

// NewBoard creates a board. attempts bounds every PlaceUnique call and
// marginFactor sets the edge margin in multiples of the piece size.
func NewBoard(width, height float64, rng *rand.Rand, attempts int, marginFactor float64) *Board {
	return &Board{
		Width:        width,
		Height:       height,
		rng:          rng,
		attempts:     max(1, attempts),
		marginFactor: marginFactor,
	}
}

// InBounds reports whether the piece lies fully on the board.
func (b *Board) InBounds(p Piece) bool {
	return core.Rect{W: b.Width, H: b.Height}.Contains(p.Rect())
}

// PlaceUnique samples whole-unit positions in [margin, dim-margin-size) until
// one does not overlap any piece in exclude. Only the given set is checked.
func (b *Board) PlaceUnique(kind Kind, size float64, exclude []Piece) (x, y float64, err error) {
	margin := size * b.marginFactor
	loX, hiX := int(margin), int(b.Width-(margin+size))
	loY, hiY := int(margin), int(b.Height-(margin+size))
	if hiX <= loX || hiY <= loY {
		return 0, 0, &BoardFullError{Kind: kind, Size: size}
	}

	for i, n := 0, b.attempts; i < n; i++ {
		x = float64(loX + b.rng.Intn(hiX-loX))
		y = float64(loY + b.rng.Intn(hiY-loY))
		if !SpotTaken(core.Square(x, y, size), exclude) {
			return x, y, nil
		}
	}
	return 0, 0, &BoardFullError{Kind: kind, Size: size, Attempts: b.attempts}
}

// BorderSpots lays square tiles of the given size edge to edge along all four
// sides: left and right columns first, then top and bottom rows.
func (b *Board) BorderSpots(size float64) []core.Rect {
	var spots []core.Rect
	for _, y := range edgeStops(b.Height, size) {
		spots = append(spots, core.Square(0, y, size), core.Square(b.Width-size, y, size))
	}
	for _, x := range edgeStops(b.Width, size) {
		spots = append(spots, core.Square(x, 0, size), core.Square(x, b.Height-size, size))
	}
	return spots
}

// edgeStops returns tile offsets covering [0, dim) with the last tile flush
// against the far edge.
func edgeStops(dim, size float64) []float64 {
	if size <= 0 || dim < size {
		return nil
	}
	var stops []float64
	for v := 0.0; v < dim-size; v += size {
		stops = append(stops, v)
	}
	return append(stops, dim-size)
}
