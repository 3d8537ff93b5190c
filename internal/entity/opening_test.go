package entity

import (
	"math"
	"testing"

	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/room"
)

func testRoom() *room.Room {
	return room.New(400, 500, 250)
}

func TestWallRun(t *testing.T) {
	r := testRoom()
	if WallFront.Run(r) != 400 || WallBack.Run(r) != 400 {
		t.Error("front/back walls should run along the room width")
	}
	if WallLeft.Run(r) != 500 || WallRight.Run(r) != 500 {
		t.Error("left/right walls should run along the room length")
	}
}

func TestWindowBoundsPerWall(t *testing.T) {
	r := testRoom()

	cases := []struct {
		wall Wall
		want geometry.Rect
	}{
		{WallFront, geometry.Rect{X: 50, Y: 0, Width: 100}},
		{WallBack, geometry.Rect{X: 50, Y: 500, Width: 100}},
		{WallLeft, geometry.Rect{X: 0, Y: 50, Height: 100}},
		{WallRight, geometry.Rect{X: 400, Y: 50, Height: 100}},
	}
	for _, tc := range cases {
		w := NewWindow(tc.wall, 50, 100, 120, 90)
		if got := w.Bounds(r); got != tc.want {
			t.Errorf("%s wall: Bounds() = %+v, want %+v", tc.wall, got, tc.want)
		}
	}
}

func TestWindowIsValidPlacement(t *testing.T) {
	r := testRoom()

	cases := []struct {
		name   string
		window *Window
		want   bool
	}{
		{"fits", NewWindow(WallFront, 50, 100, 120, 90), true},
		{"exactly fills the run", NewWindow(WallFront, 0, 400, 120, 90), true},
		{"past the run end", NewWindow(WallFront, 350, 100, 120, 90), false},
		{"negative offset", NewWindow(WallFront, -1, 100, 120, 90), false},
		{"through the ceiling", NewWindow(WallFront, 50, 100, 200, 100), false},
		{"reaches the ceiling exactly", NewWindow(WallFront, 50, 100, 160, 90), true},
		{"left wall uses the longer run", NewWindow(WallLeft, 420, 80, 120, 90), true},
	}
	for _, tc := range cases {
		if got := tc.window.IsValidPlacement(r); got != tc.want {
			t.Errorf("%s: IsValidPlacement = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWindowContainsPoint(t *testing.T) {
	w := NewWindow(WallFront, 50, 100, 120, 90)

	if !w.ContainsPoint(50, 90) || !w.ContainsPoint(150, 210) || !w.ContainsPoint(100, 150) {
		t.Error("points on the pane (including edges) should be contained")
	}
	if w.ContainsPoint(49, 150) || w.ContainsPoint(100, 89) || w.ContainsPoint(100, 211) {
		t.Error("points off the pane should not be contained")
	}
}

func TestDoorIsValidPlacement(t *testing.T) {
	r := testRoom()

	door := NewDoor(WallFront, 100, 90, 200, SwingInward, HingeLeft)
	if !door.IsValidPlacement(r) {
		t.Error("door within the wall run should be valid")
	}

	tall := NewDoor(WallFront, 100, 90, 260, SwingInward, HingeLeft)
	if tall.IsValidPlacement(r) {
		t.Error("door taller than the room should be invalid")
	}

	past := NewDoor(WallFront, 350, 90, 200, SwingInward, HingeLeft)
	if past.IsValidPlacement(r) {
		t.Error("door past the run end should be invalid")
	}
}

func TestSwingArcScenario(t *testing.T) {
	// Door on the front wall, width 90, left hinge, inward: arc centered at
	// the door offset on the wall line, sweeping the first quadrant.
	r := testRoom()
	door := NewDoor(WallFront, 100, 90, 200, SwingInward, HingeLeft)

	arc, ok := door.SwingArc(r)
	if !ok {
		t.Fatal("inward door should have a swing arc")
	}
	if arc.CenterX != 100 || arc.CenterY != 0 {
		t.Errorf("arc center = (%v, %v), want (100, 0)", arc.CenterX, arc.CenterY)
	}
	if arc.Radius != 90 {
		t.Errorf("arc radius = %v, want the door width 90", arc.Radius)
	}
	if arc.StartAngle != 0 || arc.EndAngle != math.Pi/2 {
		t.Errorf("arc sweep = [%v, %v], want [0, pi/2]", arc.StartAngle, arc.EndAngle)
	}

	// Distance 50 at angle pi/4 is inside the sweep.
	px, py := geometry.PointOnCircle(100, 0, 50, math.Pi/4)
	if !door.IsPointInSwingArc(px, py, r) {
		t.Errorf("point at distance 50, angle pi/4 should be inside the arc")
	}

	// Same distance at angle 3pi/4 is outside the sweep.
	px, py = geometry.PointOnCircle(100, 0, 50, 3*math.Pi/4)
	if door.IsPointInSwingArc(px, py, r) {
		t.Errorf("point at angle 3pi/4 should be outside the arc")
	}

	// Beyond the radius is outside regardless of angle.
	px, py = geometry.PointOnCircle(100, 0, 91, math.Pi/4)
	if door.IsPointInSwingArc(px, py, r) {
		t.Errorf("point beyond the radius should be outside the arc")
	}
}

func TestSwingArcAllCombinations(t *testing.T) {
	r := testRoom()
	const (
		east  = 0.0
		north = math.Pi / 2
		west  = math.Pi
		south = 3 * math.Pi / 2
	)

	cases := []struct {
		wall             Wall
		hinge            HingePosition
		cx, cy           float64
		start, end       float64
		wrapsThroughZero bool
	}{
		{WallFront, HingeLeft, 100, 0, east, north, false},
		{WallFront, HingeRight, 190, 0, north, west, false},
		{WallBack, HingeLeft, 100, 500, south, east, true},
		{WallBack, HingeRight, 190, 500, west, south, false},
		{WallLeft, HingeLeft, 0, 100, east, north, false},
		{WallLeft, HingeRight, 0, 190, south, east, true},
		{WallRight, HingeLeft, 400, 100, north, west, false},
		{WallRight, HingeRight, 400, 190, west, south, false},
	}

	for _, tc := range cases {
		door := NewDoor(tc.wall, 100, 90, 200, SwingInward, tc.hinge)
		arc, ok := door.SwingArc(r)
		if !ok {
			t.Fatalf("%s/%s: expected an arc", tc.wall, tc.hinge)
		}
		if arc.CenterX != tc.cx || arc.CenterY != tc.cy {
			t.Errorf("%s/%s: center = (%v, %v), want (%v, %v)", tc.wall, tc.hinge, arc.CenterX, arc.CenterY, tc.cx, tc.cy)
		}
		if arc.StartAngle != tc.start || arc.EndAngle != tc.end {
			t.Errorf("%s/%s: sweep = [%v, %v], want [%v, %v]", tc.wall, tc.hinge, arc.StartAngle, arc.EndAngle, tc.start, tc.end)
		}
		if tc.wrapsThroughZero != (arc.EndAngle < arc.StartAngle) {
			t.Errorf("%s/%s: wrap-around = %v, want %v", tc.wall, tc.hinge, arc.EndAngle < arc.StartAngle, tc.wrapsThroughZero)
		}

		// The mid-sweep point must always test inside its own arc.
		sweepEnd := arc.EndAngle
		if sweepEnd < arc.StartAngle {
			sweepEnd += 2 * math.Pi
		}
		mid := (arc.StartAngle + sweepEnd) / 2
		px, py := geometry.PointOnCircle(arc.CenterX, arc.CenterY, arc.Radius/2, mid)
		if !arc.ContainsPoint(px, py) {
			t.Errorf("%s/%s: mid-sweep point (%v, %v) not inside its own arc", tc.wall, tc.hinge, px, py)
		}
	}
}

func TestSwingArcWrapAround(t *testing.T) {
	// Back wall, left hinge sweeps from 3pi/2 through 0: the angle-range
	// test must use the OR form.
	r := testRoom()
	door := NewDoor(WallBack, 100, 90, 200, SwingInward, HingeLeft)
	arc, _ := door.SwingArc(r)

	px, py := geometry.PointOnCircle(arc.CenterX, arc.CenterY, 50, 7*math.Pi/4)
	if !arc.ContainsPoint(px, py) {
		t.Error("point at angle 7pi/4 should be inside the wrapped sweep")
	}

	px, py = geometry.PointOnCircle(arc.CenterX, arc.CenterY, 50, math.Pi)
	if arc.ContainsPoint(px, py) {
		t.Error("point at angle pi should be outside the wrapped sweep")
	}
}

func TestOutwardDoorHasNoArc(t *testing.T) {
	r := testRoom()
	door := NewDoor(WallFront, 100, 90, 200, SwingOutward, HingeLeft)

	if _, ok := door.SwingArc(r); ok {
		t.Error("outward doors have no swing arc")
	}
	if door.IsPointInSwingArc(110, 10, r) {
		t.Error("no point is inside an outward door's arc")
	}
}

func TestSwingArcIntersectsRect(t *testing.T) {
	r := testRoom()
	door := NewDoor(WallFront, 100, 90, 200, SwingInward, HingeLeft)
	arc, _ := door.SwingArc(r)

	if !arc.IntersectsRect(geometry.Rect{X: 120, Y: 10, Width: 50, Height: 50}) {
		t.Error("footprint inside the clearance zone should intersect")
	}
	if !arc.IntersectsRect(geometry.Rect{X: 50, Y: 0, Width: 300, Height: 400}) {
		t.Error("footprint fully covering the arc should intersect")
	}
	if arc.IntersectsRect(geometry.Rect{X: 250, Y: 250, Width: 50, Height: 50}) {
		t.Error("footprint far from the arc should not intersect")
	}
	if arc.IntersectsRect(geometry.Rect{X: 100, Y: 100, Width: 50, Height: 50}) {
		// Closest point to the center (100, 100) is at distance > 90.
		t.Error("footprint outside the radius should not intersect")
	}
}
