package game

// Direction is a directional move command.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Move shifts p one step in dir and turns it to face that way.
// It returns false for an unrecognised direction and leaves p untouched.
func Move(p *Piece, dir Direction, step float64) bool {
	switch dir {
	case DirUp:
		p.Y -= step
		p.Facing = -90
	case DirDown:
		p.Y += step
		p.Facing = 90
	case DirLeft:
		p.X -= step
		p.Facing = -180
	case DirRight:
		p.X += step
		p.Facing = 0
	default:
		return false
	}
	return true
}

// NudgeFromBorder pushes p one step back onto the board if it overlaps any
// border tile. The breached edge is found by comparing p against 0 and
// dim-size, checking left, right, top, bottom in that order. At most one
// nudge is applied, so a fast or large piece may stay partly outside.
func NudgeFromBorder(p *Piece, borders []Piece, width, height, step float64) bool {
	for _, tile := range borders {
		if !Collides(*p, tile) {
			continue
		}
		switch {
		case p.X <= 0:
			p.X += step
		case p.X >= width-p.Size:
			p.X -= step
		case p.Y <= 0:
			p.Y += step
		case p.Y >= height-p.Size:
			p.Y -= step
		default:
			return false
		}
		return true
	}
	return false
}
