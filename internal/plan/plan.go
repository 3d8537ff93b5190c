// Package plan owns the entity collections and drives the placement rules.
// It is the mutating collaborator the collision package validates for: every
// interactive edit runs as mutate-tentatively → validate → roll back on
// rejection, inside a single synchronous callback turn, so entities never
// stay in a rejected configuration and no locking is needed.
package plan

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hfriedrich/roomplan/internal/collision"
	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/room"
	"github.com/hfriedrich/roomplan/internal/telemetry"
)

// Plan is a single-room layout: the room volume plus every placed object,
// window, and door. Collections are flat maps keyed by id; listing order is
// derived, not stored.
type Plan struct {
	Room *room.Room

	objects map[string]*entity.Object
	windows map[string]*entity.Window
	doors   map[string]*entity.Door

	// nextOrder is the monotonically increasing creation-order counter.
	// Issued once per insertion; only Reorder reassigns the sequence.
	nextOrder int
}

// New creates an empty plan for the given room.
func New(r *room.Room) *Plan {
	return &Plan{
		Room:    r,
		objects: make(map[string]*entity.Object),
		windows: make(map[string]*entity.Window),
		doors:   make(map[string]*entity.Door),
	}
}

// Objects returns all objects sorted by creation order. This is the stable
// iteration order every consumer sees.
func (p *Plan) Objects() []*entity.Object {
	objects := make([]*entity.Object, 0, len(p.objects))
	for _, o := range p.objects {
		objects = append(objects, o)
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].CreationOrder < objects[j].CreationOrder
	})
	return objects
}

// Windows returns all windows in a stable order.
func (p *Plan) Windows() []*entity.Window {
	windows := make([]*entity.Window, 0, len(p.windows))
	for _, w := range p.windows {
		windows = append(windows, w)
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].ID < windows[j].ID })
	return windows
}

// Doors returns all doors in a stable order.
func (p *Plan) Doors() []*entity.Door {
	doors := make([]*entity.Door, 0, len(p.doors))
	for _, d := range p.doors {
		doors = append(doors, d)
	}
	sort.Slice(doors, func(i, j int) bool { return doors[i].ID < doors[j].ID })
	return doors
}

// GetObject returns the object with the given id, or false if absent.
func (p *Plan) GetObject(id string) (*entity.Object, bool) {
	o, ok := p.objects[id]
	return o, ok
}

// GetWindow returns the window with the given id, or false if absent.
func (p *Plan) GetWindow(id string) (*entity.Window, bool) {
	w, ok := p.windows[id]
	return w, ok
}

// GetDoor returns the door with the given id, or false if absent.
func (p *Plan) GetDoor(id string) (*entity.Door, bool) {
	d, ok := p.doors[id]
	return d, ok
}

// PlaceObject validates and inserts an object, assigning a fresh id when
// none is set and the next creation-order number. On rejection nothing is
// mutated and the object is not inserted.
func (p *Plan) PlaceObject(ctx context.Context, o *entity.Object) collision.Result {
	tracer := telemetry.Tracer("plan")
	ctx, span := tracer.Start(ctx, "plan.place_object")
	defer span.End()

	res := collision.CanPlace(o, p.Objects(), p.Room)
	span.SetAttributes(
		attribute.String("object.name", o.Name),
		attribute.Bool("accepted", res.CanPlace),
		attribute.String("reason", string(res.Reason)),
	)
	if !res.CanPlace {
		return res
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreationOrder = p.nextOrder
	p.nextOrder++
	p.objects[o.ID] = o

	collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
	if collision.CheckBoundaryCollision(o, p.Room) {
		// Stacking pushed the object through the ceiling: roll back the
		// insertion entirely.
		delete(p.objects, o.ID)
		collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
		span.SetAttributes(attribute.Bool("rolled_back", true))
		return collision.Result{Reason: collision.ReasonOutsideRoom}
	}

	p.refreshDoorBlocking()
	return res
}

// RemoveObject deletes an object and recomputes the stack. Removing an
// unknown id is a silent no-op.
func (p *Plan) RemoveObject(ctx context.Context, id string) {
	if _, ok := p.objects[id]; !ok {
		return
	}
	delete(p.objects, id)
	collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
	p.refreshDoorBlocking()
}

// DuplicateObject inserts a copy of an existing object with a fresh id and
// creation order, placed at the nearest accepted position to a small offset
// from the original. Returns the new object on success.
func (p *Plan) DuplicateObject(ctx context.Context, id string) (*entity.Object, collision.Result) {
	src, ok := p.objects[id]
	if !ok {
		return nil, collision.Result{Reason: collision.ReasonObjectCollision}
	}

	dup := *src
	dup.ID = uuid.NewString()

	x, y, found := collision.FindValidPosition(&dup, src.Position.X+20, src.Position.Y+20, p.Objects(), p.Room)
	if !found {
		return nil, collision.Result{Reason: collision.ReasonObjectCollision}
	}
	dup.Position.X, dup.Position.Y = x, y

	res := p.PlaceObject(ctx, &dup)
	if !res.CanPlace {
		return nil, res
	}
	return &dup, res
}

// MoveObject tentatively moves an object to the given XY position,
// validating and rolling back on rejection.
func (p *Plan) MoveObject(ctx context.Context, id string, x, y float64) collision.Result {
	o, ok := p.objects[id]
	if !ok {
		return collision.Result{CanPlace: true}
	}
	return p.applyObjectEdit(ctx, o, func() {
		o.Position.X = x
		o.Position.Y = y
	})
}

// RotateObject advances an object's rotation by 90 degrees, rolling back if
// the swapped footprint no longer fits.
func (p *Plan) RotateObject(ctx context.Context, id string) collision.Result {
	o, ok := p.objects[id]
	if !ok {
		return collision.Result{CanPlace: true}
	}
	return p.applyObjectEdit(ctx, o, o.Rotate)
}

// ResizeObject tentatively replaces an object's dimensions.
func (p *Plan) ResizeObject(ctx context.Context, id string, dims entity.Dimensions) collision.Result {
	o, ok := p.objects[id]
	if !ok {
		return collision.Result{CanPlace: true}
	}
	return p.applyObjectEdit(ctx, o, func() {
		o.Dimensions = dims
	})
}

// SetObjectCollision toggles an object's collision flag. Enabling collision
// while the footprint overlaps a solid object is rejected and rolled back;
// either way the stack is recomputed, since the set of stacking bases
// changed.
func (p *Plan) SetObjectCollision(ctx context.Context, id string, enabled bool) collision.Result {
	o, ok := p.objects[id]
	if !ok {
		return collision.Result{CanPlace: true}
	}

	was := o.CollisionEnabled
	o.CollisionEnabled = enabled
	res := collision.CanPlace(o, p.Objects(), p.Room)
	if !res.CanPlace {
		o.CollisionEnabled = was
		return res
	}

	collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
	if p.anyObjectOutOfBounds() {
		o.CollisionEnabled = was
		collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
		return collision.Result{Reason: collision.ReasonOutsideRoom}
	}
	p.refreshDoorBlocking()
	return res
}

// applyObjectEdit is the shared tentative-edit path: snapshot, mutate,
// validate, recompute the stack, and roll everything back if the edit or the
// recomputed stacking breaks a constraint.
func (p *Plan) applyObjectEdit(ctx context.Context, o *entity.Object, mutate func()) collision.Result {
	snap := o.Snapshot()
	mutate()

	res := collision.CanPlace(o, p.Objects(), p.Room)
	if !res.CanPlace {
		o.Restore(snap)
		return res
	}

	collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
	if p.anyObjectOutOfBounds() {
		o.Restore(snap)
		collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
		return collision.Result{Reason: collision.ReasonOutsideRoom}
	}

	p.refreshDoorBlocking()
	return res
}

// anyObjectOutOfBounds reports whether any object violates the room
// boundary, which after a stacking recompute means a stack grew past the
// ceiling.
func (p *Plan) anyObjectOutOfBounds() bool {
	for _, o := range p.objects {
		if collision.CheckBoundaryCollision(o, p.Room) {
			return true
		}
	}
	return false
}

// Reorder reassigns the entire creation-order sequence to match the given
// id order. The ids must be exactly the current objects; partial patches are
// not allowed, so the sequence can never end up with duplicates or holes.
func (p *Plan) Reorder(ctx context.Context, ids []string) error {
	if len(ids) != len(p.objects) {
		return errors.New("reorder must list every object exactly once")
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := p.objects[id]; !ok {
			return errors.New("reorder references unknown object " + id)
		}
		if seen[id] {
			return errors.New("reorder lists object " + id + " twice")
		}
		seen[id] = true
	}

	for i, id := range ids {
		p.objects[id].CreationOrder = i
	}
	p.nextOrder = len(ids)

	collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
	p.refreshDoorBlocking()
	return nil
}

// SetRoomDimensions resizes the room, rolling back if any existing placement
// no longer fits.
func (p *Plan) SetRoomDimensions(ctx context.Context, width, length, height float64) collision.Result {
	oldW, oldL, oldH := p.Room.Width, p.Room.Length, p.Room.Height
	p.Room.SetDimensions(width, length, height)

	valid := !p.anyObjectOutOfBounds()
	if valid {
		for _, w := range p.windows {
			if !w.IsValidPlacement(p.Room) {
				valid = false
				break
			}
		}
	}
	if valid {
		for _, d := range p.doors {
			if !d.IsValidPlacement(p.Room) {
				valid = false
				break
			}
		}
	}
	if !valid {
		p.Room.SetDimensions(oldW, oldL, oldH)
		return collision.Result{Reason: collision.ReasonOutsideRoom}
	}

	collision.RecalculateAllZPositions(ctx, p.Objects(), p.Room)
	p.refreshDoorBlocking()
	return collision.Result{CanPlace: true}
}
