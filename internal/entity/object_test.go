package entity

import "testing"

func TestFootprintSizeSwapsAtQuarterTurns(t *testing.T) {
	o := NewObject("Desk", Dimensions{Width: 140, Length: 70, Height: 75})

	cases := []struct {
		rotation     int
		width, depth float64
	}{
		{0, 140, 70},
		{90, 70, 140},
		{180, 140, 70},
		{270, 70, 140},
	}
	for _, tc := range cases {
		o.Rotation = tc.rotation
		w, l := o.FootprintSize()
		if w != tc.width || l != tc.depth {
			t.Errorf("rotation %d: footprint = %v x %v, want %v x %v", tc.rotation, w, l, tc.width, tc.depth)
		}
	}
}

func TestBoundsReflectRotatedFootprint(t *testing.T) {
	o := NewObject("Desk", Dimensions{Width: 140, Length: 70, Height: 75})
	o.Position = Position{X: 10, Y: 20}
	o.Rotation = 90

	b := o.Bounds()
	if b.X != 10 || b.Y != 20 || b.Width != 70 || b.Height != 140 {
		t.Errorf("rotated bounds = %+v, want {10 20 70 140}", b)
	}
}

func TestRotateCyclesThroughCardinalStates(t *testing.T) {
	o := NewObject("Chair", Dimensions{Width: 45, Length: 45, Height: 90})
	want := []int{90, 180, 270, 0}
	for _, expected := range want {
		o.Rotate()
		if o.Rotation != expected {
			t.Fatalf("rotation = %d, want %d", o.Rotation, expected)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	o := NewObject("Sofa", Dimensions{Width: 220, Length: 95, Height: 85})
	o.Position = Position{X: 50, Y: 60, Z: 0}

	snap := o.Snapshot()

	// Tentative edit that a validator then rejects.
	o.Position.X = 999
	o.Rotate()
	o.Dimensions.Width = 1

	o.Restore(snap)

	if o.Position.X != 50 || o.Rotation != 0 || o.Dimensions.Width != 220 {
		t.Errorf("restore left object at %+v rotation=%d dims=%+v", o.Position, o.Rotation, o.Dimensions)
	}
}

func TestTop(t *testing.T) {
	o := NewObject("Box", Dimensions{Width: 10, Length: 10, Height: 50})
	o.Position.Z = 30
	if o.Top() != 80 {
		t.Errorf("Top() = %v, want 80", o.Top())
	}
}
