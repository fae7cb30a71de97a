// Package core provides fundamental types and utilities for the candy-dash engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are board units, not terminal cells.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Square creates a rectangle with equal sides.
func Square(x, y, size float64) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that only touch do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right() &&
		r.Bottom() > other.Y && r.Y < other.Bottom()
}

// Contains returns true if other lies fully inside this rectangle.
// Shared edges count as inside.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}
