package entity

import (
	"github.com/hfriedrich/roomplan/internal/geometry"
)

// Dimensions holds an object's extents in centimeters.
type Dimensions struct {
	Width  float64 // X extent at rotation 0
	Length float64 // Y extent at rotation 0
	Height float64 // Z extent
}

// Position is a point in room space.
type Position struct {
	X, Y, Z float64
}

// Object is a free-standing placeable, such as a piece of furniture.
type Object struct {
	ID         string
	Name       string
	Dimensions Dimensions
	Position   Position

	// Rotation is one of 0, 90, 180, 270 degrees. Rotation by 90 or 270
	// swaps the effective width/length footprint; there is no
	// arbitrary-angle rotation.
	Rotation int

	// Color is a hex color code, e.g. "#8B4513".
	Color string

	// CollisionEnabled opts the object into pairwise collision checks.
	// Objects with collision disabled are the only legal stacking bases.
	CollisionEnabled bool

	Visible bool

	// CreationOrder is the sequence number issued by the plan at insertion.
	// It is never changed afterwards, except by an explicit reorder that
	// reassigns the whole sequence. Stacking depends on it: an object may
	// only rest on objects created strictly before it.
	CreationOrder int
}

// NewObject creates an object with the given name and dimensions, visible
// and collision-enabled by default. The id and creation order are assigned
// by the plan at insertion.
func NewObject(name string, dims Dimensions) *Object {
	return &Object{
		Name:             name,
		Dimensions:       dims,
		Rotation:         0,
		Color:            "#8B8B8B",
		CollisionEnabled: true,
		Visible:          true,
	}
}

// FootprintSize returns the effective XY extents after the discrete
// rotation: 90 and 270 swap width and length.
func (o *Object) FootprintSize() (width, length float64) {
	if o.Rotation == 90 || o.Rotation == 270 {
		return o.Dimensions.Length, o.Dimensions.Width
	}
	return o.Dimensions.Width, o.Dimensions.Length
}

// Bounds returns the object's axis-aligned XY footprint with the rotation
// absorbed into the extents.
func (o *Object) Bounds() geometry.Rect {
	w, l := o.FootprintSize()
	return geometry.RotatedBounds(o.Position.X, o.Position.Y, w, l, o.Rotation)
}

// Top returns the Z coordinate of the object's upper face.
func (o *Object) Top() float64 {
	return o.Position.Z + o.Dimensions.Height
}

// Rotate advances the rotation by 90 degrees.
func (o *Object) Rotate() {
	o.Rotation = (o.Rotation + 90) % 360
}

// Snapshot captures the mutable placement fields so a tentative edit can be
// rolled back verbatim on rejection. Every interactive mutation path (drag,
// resize, rotate, edit) must take one before touching the object.
type Snapshot struct {
	Position   Position
	Dimensions Dimensions
	Rotation   int
}

// Snapshot returns a value copy of the fields a tentative edit may change.
func (o *Object) Snapshot() Snapshot {
	return Snapshot{
		Position:   o.Position,
		Dimensions: o.Dimensions,
		Rotation:   o.Rotation,
	}
}

// Restore puts the snapshotted fields back. Used after a failed validation
// so the object never stays in a rejected configuration.
func (o *Object) Restore(s Snapshot) {
	o.Position = s.Position
	o.Dimensions = s.Dimensions
	o.Rotation = s.Rotation
}
