// Package collision implements placement validation: room boundary checks,
// pairwise footprint collision, the creation-order stacking rules, and the
// nearest-fit position search.
package collision

import (
	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/room"
)

// Reason explains why a placement was rejected.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonOutsideRoom     Reason = "outside_room"
	ReasonObjectCollision Reason = "object_collision"
	ReasonWindowOverlap   Reason = "window_overlap"
	ReasonDoorOverlap     Reason = "door_overlap"
)

// Result is a structured accept/reject verdict. Validation never panics or
// returns an error in normal operation; a rejected placement is an expected,
// recoverable outcome.
type Result struct {
	CanPlace bool
	Reason   Reason
}

func accept() Result {
	return Result{CanPlace: true, Reason: ReasonNone}
}

func reject(reason Reason) Result {
	return Result{CanPlace: false, Reason: reason}
}

// CheckBoundaryCollision reports whether the object's rotation-adjusted AABB
// extends outside the room on any axis. The Z check is the stacking ceiling:
// position.Z plus the object height must stay under the room height.
func CheckBoundaryCollision(o *entity.Object, r *room.Room) bool {
	b := o.Bounds()
	if b.X < 0 || b.Y < 0 || b.Right() > r.Width || b.Bottom() > r.Length {
		return true
	}
	return o.Position.Z < 0 || o.Position.Z+o.Dimensions.Height > r.Height
}

// CheckObjectCollision reports whether two objects are in true collision.
// Collision is opt-out per object: if either has it disabled the pair never
// collides. The test compares XY footprints only; Z separation never
// prevents a collision between two solid objects, because vertical placement
// belongs entirely to the stacking resolver.
func CheckObjectCollision(a, b *entity.Object) bool {
	if !a.CollisionEnabled || !b.CollisionEnabled {
		return false
	}
	return geometry.RectanglesOverlap(a.Bounds(), b.Bounds())
}

// CanPlace validates a candidate object placement: the room boundary first,
// then, only for collision-enabled objects, pairwise collision against every
// other object. The first colliding pair is enough to reject.
func CanPlace(o *entity.Object, all []*entity.Object, r *room.Room) Result {
	if CheckBoundaryCollision(o, r) {
		return reject(ReasonOutsideRoom)
	}
	if o.CollisionEnabled {
		for _, other := range all {
			if other.ID == o.ID {
				continue
			}
			if CheckObjectCollision(o, other) {
				return reject(ReasonObjectCollision)
			}
		}
	}
	return accept()
}

// CalculateStackingZ returns the resting height for an object: the highest
// top face among stacking bases whose footprint overlaps the object's, or 0
// for the floor. Footprint overlap here is purely geometric — the placed
// object's own collision flag is ignored — but only objects with collision
// disabled qualify as bases. Pure function; nothing is mutated.
func CalculateStackingZ(o *entity.Object, all []*entity.Object, r *room.Room) float64 {
	bounds := o.Bounds()
	z := 0.0
	for _, other := range all {
		if other.ID == o.ID {
			continue
		}
		if other.CollisionEnabled {
			continue
		}
		if !geometry.RectanglesOverlap(bounds, other.Bounds()) {
			continue
		}
		if top := other.Top(); top > z {
			z = top
		}
	}
	return z
}

// FindOverlappingObjects returns every other object whose footprint
// geometrically overlaps the given one, regardless of collision flags.
func FindOverlappingObjects(o *entity.Object, all []*entity.Object) []*entity.Object {
	bounds := o.Bounds()
	var overlapping []*entity.Object
	for _, other := range all {
		if other.ID == o.ID {
			continue
		}
		if geometry.RectanglesOverlap(bounds, other.Bounds()) {
			overlapping = append(overlapping, other)
		}
	}
	return overlapping
}

// GetCollidingObjects returns every other object in true collision with the
// given one, collision flags respected.
func GetCollidingObjects(o *entity.Object, all []*entity.Object) []*entity.Object {
	var colliding []*entity.Object
	for _, other := range all {
		if other.ID == o.ID {
			continue
		}
		if CheckObjectCollision(o, other) {
			colliding = append(colliding, other)
		}
	}
	return colliding
}

const (
	// searchStep is the ring spacing of the nearest-fit search, in cm.
	searchStep = 10.0
	// searchMaxRings bounds the search radius at searchMaxRings*searchStep.
	searchMaxRings = 20
)

// searchDirections are the compass offsets tried within each ring, in fixed
// order: +X, -X, +Y, -Y, then the four diagonals.
var searchDirections = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// FindValidPosition tries the desired position first, then walks the eight
// compass directions at growing radii until a placement is accepted. The
// object is only moved tentatively; its position is restored before
// returning. Returns false if every candidate within range is rejected.
func FindValidPosition(o *entity.Object, desiredX, desiredY float64, all []*entity.Object, r *room.Room) (x, y float64, found bool) {
	snap := o.Snapshot()
	defer o.Restore(snap)

	o.Position.X, o.Position.Y = desiredX, desiredY
	if CanPlace(o, all, r).CanPlace {
		return desiredX, desiredY, true
	}

	for ring := 1; ring <= searchMaxRings; ring++ {
		radius := float64(ring) * searchStep
		for _, dir := range searchDirections {
			cx := desiredX + dir[0]*radius
			cy := desiredY + dir[1]*radius
			o.Position.X, o.Position.Y = cx, cy
			if CanPlace(o, all, r).CanPlace {
				return cx, cy, true
			}
		}
	}
	return 0, 0, false
}

// CanPlaceWindow validates a window against its wall and the other openings
// on that wall. Openings on the same wall may not overlap along the run;
// touching edges count as overlapping, matching the rectangle semantics.
func CanPlaceWindow(w *entity.Window, windows []*entity.Window, doors []*entity.Door, r *room.Room) Result {
	if !w.IsValidPlacement(r) {
		return reject(ReasonOutsideRoom)
	}
	for _, other := range windows {
		if other.ID == w.ID {
			continue
		}
		if other.Wall == w.Wall && runsOverlap(w.Position, w.Width, other.Position, other.Width) {
			return reject(ReasonWindowOverlap)
		}
	}
	for _, d := range doors {
		if d.Wall == w.Wall && runsOverlap(w.Position, w.Width, d.Position, d.Width) {
			return reject(ReasonWindowOverlap)
		}
	}
	return accept()
}

// CanPlaceDoor validates a door against its wall and the other openings on
// that wall.
func CanPlaceDoor(d *entity.Door, doors []*entity.Door, windows []*entity.Window, r *room.Room) Result {
	if !d.IsValidPlacement(r) {
		return reject(ReasonOutsideRoom)
	}
	for _, other := range doors {
		if other.ID == d.ID {
			continue
		}
		if other.Wall == d.Wall && runsOverlap(d.Position, d.Width, other.Position, other.Width) {
			return reject(ReasonDoorOverlap)
		}
	}
	for _, w := range windows {
		if w.Wall == d.Wall && runsOverlap(d.Position, d.Width, w.Position, w.Width) {
			return reject(ReasonDoorOverlap)
		}
	}
	return accept()
}

// runsOverlap is the inclusive 1D interval overlap test along a wall run.
func runsOverlap(aPos, aWidth, bPos, bWidth float64) bool {
	return aPos <= bPos+bWidth && bPos <= aPos+aWidth
}
