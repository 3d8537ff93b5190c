package entity

import (
	"math"

	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/room"
)

// SwingDirection says which side of the wall a door opens toward.
type SwingDirection string

const (
	SwingInward  SwingDirection = "inward"
	SwingOutward SwingDirection = "outward"
)

// HingePosition says which end of the door segment carries the hinge:
// left is the end at the lower wall offset, right the end at the higher one.
type HingePosition string

const (
	HingeLeft  HingePosition = "left"
	HingeRight HingePosition = "right"
)

// Door is a wall opening that always starts at the floor. Inward doors carry
// a quarter-circle swing arc in the top view; outward doors have none.
type Door struct {
	ID   string
	Wall Wall

	// Position is the offset of the door's near edge along the wall run.
	Position float64

	Width  float64
	Height float64

	SwingDirection SwingDirection
	HingePosition  HingePosition

	Visible bool

	// IsBlocked is a derived flag: the plan's blocking pass sets it when an
	// object's footprint intersects the swing arc, once per mutation. The
	// core collision routines never compute or read it.
	IsBlocked bool
}

// NewDoor creates a visible door on the given wall.
func NewDoor(wall Wall, position, width, height float64, swing SwingDirection, hinge HingePosition) *Door {
	return &Door{
		Wall:           wall,
		Position:       position,
		Width:          width,
		Height:         height,
		SwingDirection: swing,
		HingePosition:  hinge,
		Visible:        true,
	}
}

// Bounds returns the door's room-space rectangle in the top view: a
// zero-thickness segment on its wall line, same convention as Window.
func (d *Door) Bounds(r *room.Room) geometry.Rect {
	switch d.Wall {
	case WallFront:
		return geometry.Rect{X: d.Position, Y: 0, Width: d.Width}
	case WallBack:
		return geometry.Rect{X: d.Position, Y: r.Length, Width: d.Width}
	case WallLeft:
		return geometry.Rect{X: 0, Y: d.Position, Height: d.Width}
	case WallRight:
		return geometry.Rect{X: r.Width, Y: d.Position, Height: d.Width}
	default:
		return geometry.Rect{}
	}
}

// IsValidPlacement reports whether the door fits its wall. Doors start at
// the floor, so only the leaf height is checked against the ceiling.
func (d *Door) IsValidPlacement(r *room.Room) bool {
	if d.Position < 0 || d.Position+d.Width > d.Wall.Run(r) {
		return false
	}
	return d.Height <= r.Height
}

// ContainsPoint reports whether a wall-plane point falls on the door leaf.
func (d *Door) ContainsPoint(wallPos, wallHeight float64) bool {
	return wallPos >= d.Position && wallPos <= d.Position+d.Width &&
		wallHeight >= 0 && wallHeight <= d.Height
}

// SwingArc is a door's quarter-circle clearance zone in the top view.
// Angles are standard math orientation, drawn from the fixed set
// {0, π/2, π, 3π/2}; when EndAngle < StartAngle the sweep wraps through 0.
type SwingArc struct {
	CenterX, CenterY float64
	Radius           float64
	StartAngle       float64
	EndAngle         float64
}

// SwingArc returns the door's clearance arc, or false for outward doors,
// which have no arc. The radius equals the door width; the center sits on
// the hinge end of the door segment. Each of the eight wall/hinge
// combinations sweeps the quadrant between the closed leaf direction and the
// fully open, into-the-room direction.
func (d *Door) SwingArc(r *room.Room) (SwingArc, bool) {
	if d.SwingDirection != SwingInward {
		return SwingArc{}, false
	}

	arc := SwingArc{Radius: d.Width}
	const (
		east  = 0
		north = math.Pi / 2
		west  = math.Pi
		south = 3 * math.Pi / 2
	)

	switch d.Wall {
	case WallFront:
		arc.CenterY = 0
		if d.HingePosition == HingeLeft {
			arc.CenterX = d.Position
			arc.StartAngle, arc.EndAngle = east, north
		} else {
			arc.CenterX = d.Position + d.Width
			arc.StartAngle, arc.EndAngle = north, west
		}
	case WallBack:
		arc.CenterY = r.Length
		if d.HingePosition == HingeLeft {
			arc.CenterX = d.Position
			arc.StartAngle, arc.EndAngle = south, east // wraps through 0
		} else {
			arc.CenterX = d.Position + d.Width
			arc.StartAngle, arc.EndAngle = west, south
		}
	case WallLeft:
		arc.CenterX = 0
		if d.HingePosition == HingeLeft {
			arc.CenterY = d.Position
			arc.StartAngle, arc.EndAngle = east, north
		} else {
			arc.CenterY = d.Position + d.Width
			arc.StartAngle, arc.EndAngle = south, east // wraps through 0
		}
	case WallRight:
		arc.CenterX = r.Width
		if d.HingePosition == HingeLeft {
			arc.CenterY = d.Position
			arc.StartAngle, arc.EndAngle = north, west
		} else {
			arc.CenterY = d.Position + d.Width
			arc.StartAngle, arc.EndAngle = west, south
		}
	default:
		return SwingArc{}, false
	}

	return arc, true
}

// IsPointInSwingArc reports whether the room-space point lies inside the
// door's clearance arc. Always false for outward doors.
func (d *Door) IsPointInSwingArc(x, y float64, r *room.Room) bool {
	arc, ok := d.SwingArc(r)
	if !ok {
		return false
	}
	return arc.ContainsPoint(x, y)
}

// ContainsPoint reports whether the point lies inside the arc region: within
// the radius of the center and with its angle, normalized to [0, 2π), inside
// the swept quadrant. The wrap-around case (EndAngle < StartAngle) is an OR
// instead of an AND range test.
func (a SwingArc) ContainsPoint(x, y float64) bool {
	if geometry.Distance(x, y, a.CenterX, a.CenterY) > a.Radius {
		return false
	}
	angle := math.Atan2(y-a.CenterY, x-a.CenterX)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if a.EndAngle < a.StartAngle {
		return angle >= a.StartAngle || angle <= a.EndAngle
	}
	return angle >= a.StartAngle && angle <= a.EndAngle
}

// IntersectsRect reports whether an axis-aligned footprint touches the arc
// region. The test probes the rectangle's corners, its point nearest the arc
// center, and the arc's own extreme points (center, sweep endpoints, and the
// mid-sweep point). That covers every configuration that matters for
// furniture-sized rectangles against quarter circles.
func (a SwingArc) IntersectsRect(rect geometry.Rect) bool {
	// Rectangle point closest to the arc center.
	cx := math.Min(math.Max(a.CenterX, rect.X), rect.Right())
	cy := math.Min(math.Max(a.CenterY, rect.Y), rect.Bottom())
	if a.ContainsPoint(cx, cy) {
		return true
	}

	corners := [4][2]float64{
		{rect.X, rect.Y},
		{rect.Right(), rect.Y},
		{rect.X, rect.Bottom()},
		{rect.Right(), rect.Bottom()},
	}
	for _, c := range corners {
		if a.ContainsPoint(c[0], c[1]) {
			return true
		}
	}

	// Arc extreme points: center, the two sweep endpoints, and mid-sweep.
	sweepEnd := a.EndAngle
	if sweepEnd < a.StartAngle {
		sweepEnd += 2 * math.Pi
	}
	midAngle := (a.StartAngle + sweepEnd) / 2
	if geometry.PointInRect(a.CenterX, a.CenterY, rect) {
		return true
	}
	for _, angle := range []float64{a.StartAngle, midAngle, sweepEnd} {
		px, py := geometry.PointOnCircle(a.CenterX, a.CenterY, a.Radius, angle)
		if geometry.PointInRect(px, py, rect) {
			return true
		}
	}
	return false
}
