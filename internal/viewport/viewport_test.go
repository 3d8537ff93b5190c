package viewport

import (
	"math"
	"testing"

	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/room"
)

func testRoom() *room.Room {
	return room.New(400, 500, 250)
}

func TestScaleFitsRoomWithMargin(t *testing.T) {
	r := testRoom()
	vp := New(1000, 800, 20, 20, r)

	// The tighter axis is Y: (800-40)/500 = 1.52, scaled by the margin.
	want := (800.0 - 40) / 500 * 0.96
	if math.Abs(vp.Scale-want) > 1e-9 {
		t.Errorf("Scale = %v, want %v", vp.Scale, want)
	}

	// The projected room must fit inside the drawable area.
	rect := vp.ProjectRect(RoomRect(r, ViewTop))
	if rect.Right() > 1000-20 || rect.Bottom() > 800-20 {
		t.Errorf("projected room %+v exceeds the drawable area", rect)
	}
}

func TestRoundTrip(t *testing.T) {
	r := testRoom()
	vp := New(1000, 800, 20, 20, r)

	points := [][2]float64{{0, 0}, {400, 500}, {123.4, 77}, {399.99, 0.01}}
	for _, p := range points {
		cx, cy := vp.ToCanvas(p[0], p[1])
		x, y := vp.ToRoom(cx, cy)
		if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
			t.Errorf("round trip of (%v, %v) = (%v, %v)", p[0], p[1], x, y)
		}
	}
}

func TestViewRectPerView(t *testing.T) {
	r := testRoom()
	o := entity.NewObject("Desk", entity.Dimensions{Width: 140, Length: 70, Height: 75})
	o.Position = entity.Position{X: 30, Y: 100, Z: 40}

	cases := []struct {
		view View
		want geometry.Rect
	}{
		{ViewTop, geometry.Rect{X: 30, Y: 100, Width: 140, Height: 70}},
		{ViewFront, geometry.Rect{X: 30, Y: 40, Width: 140, Height: 75}},
		{ViewLeft, geometry.Rect{X: 100, Y: 40, Width: 70, Height: 75}},
		// RIGHT mirrors Y: x' = 500 - 100 - 70.
		{ViewRight, geometry.Rect{X: 330, Y: 40, Width: 70, Height: 75}},
	}
	for _, tc := range cases {
		if got := ViewRect(o, r, tc.view); got != tc.want {
			t.Errorf("%s: ViewRect = %+v, want %+v", tc.view, got, tc.want)
		}
	}
}

func TestViewRectUsesRotatedFootprint(t *testing.T) {
	r := testRoom()
	o := entity.NewObject("Desk", entity.Dimensions{Width: 140, Length: 70, Height: 75})
	o.Position = entity.Position{X: 30, Y: 100}
	o.Rotation = 90

	got := ViewRect(o, r, ViewTop)
	want := geometry.Rect{X: 30, Y: 100, Width: 70, Height: 140}
	if got != want {
		t.Errorf("rotated ViewRect = %+v, want %+v", got, want)
	}
}

func TestRightViewHitTestParity(t *testing.T) {
	// A click on the center of the drawn rectangle must map back inside the
	// same view rectangle: rendering and hit-testing share one transform.
	r := testRoom()
	vp := New(1000, 800, 20, 20, r)
	o := entity.NewObject("Sofa", entity.Dimensions{Width: 220, Length: 95, Height: 85})
	o.Position = entity.Position{X: 10, Y: 240, Z: 0}

	drawn := vp.ProjectObject(o, r, ViewRight)
	clickX := drawn.X + drawn.Width/2
	clickY := drawn.Y + drawn.Height/2

	px, py := vp.ToRoom(clickX, clickY)
	if !geometry.PointInRect(px, py, ViewRect(o, r, ViewRight)) {
		t.Errorf("click at the drawn center missed the hit-test rectangle")
	}
}

func TestOpeningViewRect(t *testing.T) {
	r := testRoom()

	// Window on the left wall, offset 120, width 100, sill at 90, height 80.
	rect, ok := OpeningViewRect(entity.WallLeft, 120, 100, 90, 80, r, ViewLeft)
	if !ok {
		t.Fatal("left-wall opening should be visible in the LEFT view")
	}
	want := geometry.Rect{X: 120, Y: 90, Width: 100, Height: 80}
	if rect != want {
		t.Errorf("LEFT view rect = %+v, want %+v", rect, want)
	}

	// The RIGHT view mirrors the run offset.
	rect, ok = OpeningViewRect(entity.WallLeft, 120, 100, 90, 80, r, ViewRight)
	if !ok {
		t.Fatal("left-wall opening should be visible in the RIGHT view")
	}
	if rect.X != 500-120-100 {
		t.Errorf("RIGHT view mirrored offset = %v, want %v", rect.X, 500-120-100)
	}

	// Not visible in the FRONT view.
	if _, ok := OpeningViewRect(entity.WallLeft, 120, 100, 90, 80, r, ViewFront); ok {
		t.Error("left-wall opening should not be visible in the FRONT view")
	}

	// Top view shows a zero-thickness segment on the wall line.
	rect, ok = OpeningViewRect(entity.WallBack, 50, 100, 0, 200, r, ViewTop)
	if !ok || rect.Y != 500 || rect.Width != 100 || rect.Height != 0 {
		t.Errorf("TOP view rect = %+v ok=%v, want a segment on y=500", rect, ok)
	}
}

func TestViewCycle(t *testing.T) {
	order := []View{ViewTop, ViewFront, ViewLeft, ViewRight, ViewTop}
	v := ViewTop
	for _, want := range order[1:] {
		v = v.Next()
		if v != want {
			t.Fatalf("Next() = %v, want %v", v, want)
		}
	}
}
