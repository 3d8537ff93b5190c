// Package geometry provides the axis-aligned primitives shared by the
// collision, entity, and viewport packages. All coordinates are in
// centimeters of room space unless the caller says otherwise.
package geometry

import "math"

// Rect is an axis-aligned rectangle. X, Y is the minimum corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the far edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// RectanglesOverlap reports whether the two closed rectangles intersect.
// Touching edges count as overlap: non-overlap requires strict separation.
func RectanglesOverlap(a, b Rect) bool {
	if a.Right() < b.X || b.Right() < a.X {
		return false
	}
	if a.Bottom() < b.Y || b.Bottom() < a.Y {
		return false
	}
	return true
}

// PointInRect reports whether the point lies inside the rectangle,
// inclusive on all four boundaries.
func PointInRect(px, py float64, r Rect) bool {
	return px >= r.X && px <= r.Right() && py >= r.Y && py <= r.Bottom()
}

// RotatedBounds returns the axis-aligned bounds of a footprint whose
// rotation has already been absorbed into width and height. Rotation is
// discrete (four cardinal states), so callers swap width and length for the
// 90° and 270° states before calling; no trigonometry happens here.
func RotatedBounds(x, y, width, height float64, rotation int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RotatePoint rotates (px, py) around (cx, cy) by angle radians,
// counter-clockwise in standard math orientation.
func RotatePoint(px, py, cx, cy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx := px - cx
	dy := py - cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// PointOnCircle returns the point at the given angle on a circle, by
// rotating the angle-zero rim point around the center.
func PointOnCircle(cx, cy, radius, angle float64) (float64, float64) {
	return RotatePoint(cx+radius, cy, cx, cy, angle)
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
