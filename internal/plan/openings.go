package plan

import (
	"github.com/google/uuid"

	"github.com/hfriedrich/roomplan/internal/collision"
	"github.com/hfriedrich/roomplan/internal/entity"
)

// PlaceWindow validates and inserts a window, assigning a fresh id when none
// is set.
func (p *Plan) PlaceWindow(w *entity.Window) collision.Result {
	res := collision.CanPlaceWindow(w, p.Windows(), p.Doors(), p.Room)
	if !res.CanPlace {
		return res
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	p.windows[w.ID] = w
	return res
}

// RemoveWindow deletes a window. Unknown ids are a silent no-op.
func (p *Plan) RemoveWindow(id string) {
	delete(p.windows, id)
}

// MoveWindow tentatively slides a window along its wall, rolling back on
// rejection.
func (p *Plan) MoveWindow(id string, position float64) collision.Result {
	w, ok := p.windows[id]
	if !ok {
		return collision.Result{CanPlace: true}
	}
	was := w.Position
	w.Position = position
	res := collision.CanPlaceWindow(w, p.Windows(), p.Doors(), p.Room)
	if !res.CanPlace {
		w.Position = was
	}
	return res
}

// PlaceDoor validates and inserts a door, assigning a fresh id when none is
// set, then refreshes the blocked flags.
func (p *Plan) PlaceDoor(d *entity.Door) collision.Result {
	res := collision.CanPlaceDoor(d, p.Doors(), p.Windows(), p.Room)
	if !res.CanPlace {
		return res
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	p.doors[d.ID] = d
	p.refreshDoorBlocking()
	return res
}

// RemoveDoor deletes a door. Unknown ids are a silent no-op.
func (p *Plan) RemoveDoor(id string) {
	delete(p.doors, id)
}

// MoveDoor tentatively slides a door along its wall, rolling back on
// rejection.
func (p *Plan) MoveDoor(id string, position float64) collision.Result {
	d, ok := p.doors[id]
	if !ok {
		return collision.Result{CanPlace: true}
	}
	was := d.Position
	d.Position = position
	res := collision.CanPlaceDoor(d, p.Doors(), p.Windows(), p.Room)
	if !res.CanPlace {
		d.Position = was
		return res
	}
	p.refreshDoorBlocking()
	return res
}

// refreshDoorBlocking recomputes every door's derived IsBlocked flag: an
// inward door is blocked while any object's footprint intersects its swing
// arc. This runs once per structural mutation; the collision core itself
// never touches the flag.
func (p *Plan) refreshDoorBlocking() {
	objects := p.Objects()
	for _, d := range p.doors {
		d.IsBlocked = false
		arc, ok := d.SwingArc(p.Room)
		if !ok {
			continue
		}
		for _, o := range objects {
			if arc.IntersectsRect(o.Bounds()) {
				d.IsBlocked = true
				break
			}
		}
	}
}
