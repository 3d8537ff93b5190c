// Package viewport converts between room space and canvas space for the
// four orthographic views. Renderers and input handlers must share one
// Viewport instance per view, or click targets drift away from the drawn
// shapes.
package viewport

import (
	"math"

	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/room"
)

// View selects one of the four orthographic projections.
type View int

const (
	// ViewTop projects the X-Y floor plan.
	ViewTop View = iota
	// ViewFront projects the X-Z plane, seen from Y = 0.
	ViewFront
	// ViewLeft projects the Y-Z plane, seen from X = 0.
	ViewLeft
	// ViewRight projects the Y-Z plane mirrored, seen from X = width.
	ViewRight
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewTop:
		return "top"
	case ViewFront:
		return "front"
	case ViewLeft:
		return "left"
	case ViewRight:
		return "right"
	default:
		return "unknown"
	}
}

// Next cycles to the following view in display order.
func (v View) Next() View {
	return (v + 1) % 4
}

// fitMargin leaves ~4% of the drawable area free around the room.
const fitMargin = 0.96

// Viewport holds the uniform affine room→canvas transform:
// canvas = padding + room * scale.
type Viewport struct {
	Scale    float64
	PaddingX float64
	PaddingY float64
}

// New computes the transform that fits the room's floor plan into the
// drawable area with a small margin. The scale is uniform: the tighter of
// the two axes wins.
func New(canvasWidth, canvasHeight, paddingX, paddingY float64, r *room.Room) *Viewport {
	drawableW := canvasWidth - 2*paddingX
	drawableH := canvasHeight - 2*paddingY
	scale := math.Min(drawableW/r.Width, drawableH/r.Length) * fitMargin
	return &Viewport{
		Scale:    scale,
		PaddingX: paddingX,
		PaddingY: paddingY,
	}
}

// ToCanvas converts a room-space coordinate pair to canvas space.
func (v *Viewport) ToCanvas(x, y float64) (float64, float64) {
	return v.PaddingX + x*v.Scale, v.PaddingY + y*v.Scale
}

// ToRoom converts a canvas-space point back to room space. Exact inverse of
// ToCanvas up to floating-point rounding.
func (v *Viewport) ToRoom(cx, cy float64) (float64, float64) {
	return (cx - v.PaddingX) / v.Scale, (cy - v.PaddingY) / v.Scale
}

// ProjectRect converts a room-space rectangle to canvas space.
func (v *Viewport) ProjectRect(r geometry.Rect) geometry.Rect {
	cx, cy := v.ToCanvas(r.X, r.Y)
	return geometry.Rect{X: cx, Y: cy, Width: r.Width * v.Scale, Height: r.Height * v.Scale}
}

// ViewRect returns the room-space rectangle an object occupies in the given
// view's projection plane. The side views feed different room axes through
// the same transform; the RIGHT view mirrors Y (x' = length - y - depth) so
// the scene reads correctly when looked at from the right wall. Hit-testing
// must use this same function, or RIGHT-view clicks select the wrong object.
func ViewRect(o *entity.Object, r *room.Room, view View) geometry.Rect {
	w, l := o.FootprintSize()
	switch view {
	case ViewTop:
		return geometry.Rect{X: o.Position.X, Y: o.Position.Y, Width: w, Height: l}
	case ViewFront:
		return geometry.Rect{X: o.Position.X, Y: o.Position.Z, Width: w, Height: o.Dimensions.Height}
	case ViewLeft:
		return geometry.Rect{X: o.Position.Y, Y: o.Position.Z, Width: l, Height: o.Dimensions.Height}
	case ViewRight:
		return geometry.Rect{X: r.Length - o.Position.Y - l, Y: o.Position.Z, Width: l, Height: o.Dimensions.Height}
	default:
		return geometry.Rect{}
	}
}

// RoomRect returns the room's own outline in the given view's projection
// plane: the floor plan for TOP, the facing wall for the side views.
func RoomRect(r *room.Room, view View) geometry.Rect {
	switch view {
	case ViewTop:
		return geometry.Rect{Width: r.Width, Height: r.Length}
	case ViewFront:
		return geometry.Rect{Width: r.Width, Height: r.Height}
	default:
		return geometry.Rect{Width: r.Length, Height: r.Height}
	}
}

// ProjectObject returns the canvas-space rectangle for an object in the
// given view.
func (v *Viewport) ProjectObject(o *entity.Object, r *room.Room, view View) geometry.Rect {
	return v.ProjectRect(ViewRect(o, r, view))
}

// OpeningViewRect returns the room-space rectangle a wall opening occupies
// in the given view, and whether the opening is visible there at all. In the
// top view every opening shows as a zero-thickness segment on its wall line;
// in a side view only the openings on the two walls parallel to the
// projection plane show, as offset × height rectangles. The RIGHT view
// mirrors the run offset the same way it mirrors object positions.
func OpeningViewRect(wall entity.Wall, position, width, base, height float64, r *room.Room, view View) (geometry.Rect, bool) {
	switch view {
	case ViewTop:
		switch wall {
		case entity.WallFront:
			return geometry.Rect{X: position, Y: 0, Width: width}, true
		case entity.WallBack:
			return geometry.Rect{X: position, Y: r.Length, Width: width}, true
		case entity.WallLeft:
			return geometry.Rect{X: 0, Y: position, Height: width}, true
		case entity.WallRight:
			return geometry.Rect{X: r.Width, Y: position, Height: width}, true
		}
	case ViewFront:
		if wall == entity.WallFront || wall == entity.WallBack {
			return geometry.Rect{X: position, Y: base, Width: width, Height: height}, true
		}
	case ViewLeft:
		if wall == entity.WallLeft || wall == entity.WallRight {
			return geometry.Rect{X: position, Y: base, Width: width, Height: height}, true
		}
	case ViewRight:
		if wall == entity.WallLeft || wall == entity.WallRight {
			return geometry.Rect{X: r.Length - position - width, Y: base, Width: width, Height: height}, true
		}
	}
	return geometry.Rect{}, false
}

// ProjectWindow returns the canvas-space rectangle for a window in the given
// view, or false when the window is not visible in that view.
func (v *Viewport) ProjectWindow(w *entity.Window, r *room.Room, view View) (geometry.Rect, bool) {
	rect, ok := OpeningViewRect(w.Wall, w.Position, w.Width, w.HeightFromFloor, w.Height, r, view)
	if !ok {
		return geometry.Rect{}, false
	}
	return v.ProjectRect(rect), true
}

// ProjectDoor returns the canvas-space rectangle for a door in the given
// view, or false when the door is not visible in that view. Doors start at
// the floor.
func (v *Viewport) ProjectDoor(d *entity.Door, r *room.Room, view View) (geometry.Rect, bool) {
	rect, ok := OpeningViewRect(d.Wall, d.Position, d.Width, 0, d.Height, r, view)
	if !ok {
		return geometry.Rect{}, false
	}
	return v.ProjectRect(rect), true
}
