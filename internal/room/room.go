// Package room models the rectangular room volume all placements live in.
package room

// Room is the bounding volume of a layout, in centimeters.
// Width runs along X, Length along Y, Height along Z. The room does not
// validate placements against itself; that is the collision package's job.
type Room struct {
	Width  float64
	Length float64
	Height float64
}

// New creates a room with the given dimensions.
func New(width, length, height float64) *Room {
	return &Room{
		Width:  width,
		Length: length,
		Height: height,
	}
}

// IsPointInBounds reports whether the point lies inside the room volume,
// inclusive on all six faces.
func (r *Room) IsPointInBounds(x, y, z float64) bool {
	return x >= 0 && x <= r.Width &&
		y >= 0 && y <= r.Length &&
		z >= 0 && z <= r.Height
}

// SetDimensions replaces the room dimensions. Range validation and
// re-validation of existing placements are caller concerns.
func (r *Room) SetDimensions(width, length, height float64) {
	r.Width = width
	r.Length = length
	r.Height = height
}
