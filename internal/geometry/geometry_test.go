package geometry

import (
	"math"
	"testing"
)

func TestRectanglesOverlapSymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, true},
		{"touching right edge", Rect{0, 0, 100, 100}, Rect{100, 0, 50, 50}, true},
		{"touching corner", Rect{0, 0, 100, 100}, Rect{100, 100, 50, 50}, true},
		{"separated in x", Rect{0, 0, 100, 100}, Rect{101, 0, 50, 50}, false},
		{"separated in y", Rect{0, 0, 100, 100}, Rect{0, 101, 50, 50}, false},
		{"contained", Rect{0, 0, 100, 100}, Rect{25, 25, 50, 50}, true},
	}

	for _, tc := range cases {
		if got := RectanglesOverlap(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: RectanglesOverlap(a,b) = %v, want %v", tc.name, got, tc.want)
		}
		if got := RectanglesOverlap(tc.b, tc.a); got != tc.want {
			t.Errorf("%s: RectanglesOverlap(b,a) = %v, want %v (symmetry)", tc.name, got, tc.want)
		}
	}
}

func TestPointInRectInclusiveBoundaries(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	inside := [][2]float64{
		{10, 20}, {40, 20}, {10, 60}, {40, 60}, // corners
		{10, 40}, {40, 40}, {25, 20}, {25, 60}, // edges
		{25, 40}, // interior
	}
	for _, p := range inside {
		if !PointInRect(p[0], p[1], r) {
			t.Errorf("PointInRect(%v, %v) = false, want true", p[0], p[1])
		}
	}

	outside := [][2]float64{{9.99, 40}, {40.01, 40}, {25, 19.99}, {25, 60.01}}
	for _, p := range outside {
		if PointInRect(p[0], p[1], r) {
			t.Errorf("PointInRect(%v, %v) = true, want false", p[0], p[1])
		}
	}
}

func TestRotatedBoundsPreSwapConvention(t *testing.T) {
	// Callers absorb discrete rotation into the extents before calling, so
	// the bounds come back unchanged for every rotation state.
	for _, rotation := range []int{0, 90, 180, 270} {
		got := RotatedBounds(5, 6, 70, 80, rotation)
		want := Rect{X: 5, Y: 6, Width: 70, Height: 80}
		if got != want {
			t.Errorf("RotatedBounds(rotation=%d) = %+v, want %+v", rotation, got, want)
		}
	}
}

func TestRotatePoint(t *testing.T) {
	x, y := RotatePoint(10, 0, 0, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("quarter turn of (10,0) = (%v, %v), want (0, 10)", x, y)
	}

	x, y = RotatePoint(5, 5, 5, 5, math.Pi)
	if math.Abs(x-5) > 1e-9 || math.Abs(y-5) > 1e-9 {
		t.Errorf("rotating a point around itself moved it to (%v, %v)", x, y)
	}
}

func TestPointOnCircle(t *testing.T) {
	x, y := PointOnCircle(100, 0, 90, math.Pi/2)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-90) > 1e-9 {
		t.Errorf("PointOnCircle at pi/2 = (%v, %v), want (100, 90)", x, y)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", d)
	}
}
