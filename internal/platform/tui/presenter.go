package tui

import (
	"sort"

	"github.com/vovakirdan/candy-dash/internal/game"
)

// drawOrder controls which kinds are painted over others.
var drawOrder = map[game.Kind]int{
	game.KindBorder: 0,
	game.KindDot:    1,
	game.KindFruit:  2,
	game.KindEnemy:  3,
	game.KindEffect: 4,
	game.KindPlayer: 5,
}

// spriteTable is the game.Presenter of the terminal front end.
// It mirrors every live piece under the handle it issued; the view
// draws from it rather than querying the engine.
type spriteTable struct {
	next    game.Handle
	sprites map[game.Handle]game.Piece
}

func newSpriteTable() *spriteTable {
	return &spriteTable{sprites: make(map[game.Handle]game.Piece)}
}

// CreatePiece registers a sprite and returns its handle.
func (t *spriteTable) CreatePiece(p game.Piece) game.Handle {
	t.next++
	p.Handle = t.next
	t.sprites[t.next] = p
	return t.next
}

// UpdatePiece replaces the sprite for h. Unknown handles are ignored.
func (t *spriteTable) UpdatePiece(h game.Handle, p game.Piece) {
	if _, ok := t.sprites[h]; !ok {
		return
	}
	p.Handle = h
	t.sprites[h] = p
}

// RemovePiece drops the sprite for h.
func (t *spriteTable) RemovePiece(h game.Handle) {
	delete(t.sprites, h)
}

// Len returns the number of live sprites.
func (t *spriteTable) Len() int {
	return len(t.sprites)
}

// Sprites returns the visible sprites in paint order.
func (t *spriteTable) Sprites() []game.Piece {
	out := make([]game.Piece, 0, len(t.sprites))
	for _, p := range t.sprites {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if oi, oj := drawOrder[out[i].Kind], drawOrder[out[j].Kind]; oi != oj {
			return oi < oj
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}
