package entity

import (
	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/room"
)

// Window lives embedded in a wall plane rather than in free 3D space. Its
// placement is one-dimensional: an offset along the wall run plus a vertical
// offset above the floor.
type Window struct {
	ID   string
	Wall Wall

	// Position is the offset of the window's near edge along the wall run.
	Position float64

	Width  float64
	Height float64

	// HeightFromFloor is the vertical offset of the sill.
	HeightFromFloor float64

	Visible bool
}

// NewWindow creates a visible window on the given wall.
func NewWindow(wall Wall, position, width, height, heightFromFloor float64) *Window {
	return &Window{
		Wall:            wall,
		Position:        position,
		Width:           width,
		Height:          height,
		HeightFromFloor: heightFromFloor,
		Visible:         true,
	}
}

// Bounds returns the window's room-space rectangle in the top view: a
// zero-thickness segment lying on its wall line. The inclusive overlap
// semantics of geometry.RectanglesOverlap make these segments directly
// usable for same-wall overlap tests.
func (w *Window) Bounds(r *room.Room) geometry.Rect {
	switch w.Wall {
	case WallFront:
		return geometry.Rect{X: w.Position, Y: 0, Width: w.Width}
	case WallBack:
		return geometry.Rect{X: w.Position, Y: r.Length, Width: w.Width}
	case WallLeft:
		return geometry.Rect{X: 0, Y: w.Position, Height: w.Width}
	case WallRight:
		return geometry.Rect{X: r.Width, Y: w.Position, Height: w.Width}
	default:
		return geometry.Rect{}
	}
}

// IsValidPlacement reports whether the window fits its wall: the offset plus
// width must stay within the wall run, and the pane must stay between floor
// and ceiling.
func (w *Window) IsValidPlacement(r *room.Room) bool {
	if w.Position < 0 || w.Position+w.Width > w.Wall.Run(r) {
		return false
	}
	return w.HeightFromFloor >= 0 && w.HeightFromFloor+w.Height <= r.Height
}

// ContainsPoint reports whether a wall-plane point, given as an offset along
// the run and a height above the floor, falls on the pane. Inclusive on all
// edges; used for side-view hit-testing.
func (w *Window) ContainsPoint(wallPos, wallHeight float64) bool {
	return wallPos >= w.Position && wallPos <= w.Position+w.Width &&
		wallHeight >= w.HeightFromFloor && wallHeight <= w.HeightFromFloor+w.Height
}
