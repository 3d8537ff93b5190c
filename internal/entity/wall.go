// Package entity provides the placeable entities: free-standing objects and
// the wall-mounted windows and doors.
package entity

import "github.com/hfriedrich/roomplan/internal/room"

// Wall identifies one of the four room walls.
type Wall string

const (
	// WallFront is the Y = 0 plane; offsets along it run in X.
	WallFront Wall = "front"
	// WallBack is the Y = length plane; offsets run in X.
	WallBack Wall = "back"
	// WallLeft is the X = 0 plane; offsets run in Y.
	WallLeft Wall = "left"
	// WallRight is the X = width plane; offsets run in Y.
	WallRight Wall = "right"
)

// Valid reports whether w names one of the four walls.
func (w Wall) Valid() bool {
	switch w {
	case WallFront, WallBack, WallLeft, WallRight:
		return true
	default:
		return false
	}
}

// Run returns the length of the wall's horizontal run in the given room:
// front and back walls run along the room width, left and right along the
// room length.
func (w Wall) Run(r *room.Room) float64 {
	switch w {
	case WallFront, WallBack:
		return r.Width
	default:
		return r.Length
	}
}
