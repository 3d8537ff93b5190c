// Package editor provides the interactive layout-editing loop and input
// handling.
package editor

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hfriedrich/roomplan/internal/catalog"
	"github.com/hfriedrich/roomplan/internal/collision"
	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/plan"
	"github.com/hfriedrich/roomplan/internal/room"
	"github.com/hfriedrich/roomplan/internal/telemetry"
	"github.com/hfriedrich/roomplan/internal/ui"
	"github.com/hfriedrich/roomplan/internal/viewport"
)

// canvasPadding is the fixed inset, in cells, between the terminal edge and
// the drawable area.
const canvasPadding = 2

// Editor holds the interactive session state: the plan being edited, the
// active view, and the current selection.
type Editor struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	plan     *plan.Plan
	presets  *catalog.Registry
	cfg      Config

	view     viewport.View
	selected string // id of the selected object, or ""
	status   string
	running  bool
}

// New creates a new editor session with an empty plan.
func New(cfg Config) (*Editor, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	presets, err := catalog.LoadRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Editor{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		plan:     plan.New(room.New(cfg.RoomWidth, cfg.RoomLength, cfg.RoomHeight)),
		presets:  presets,
		cfg:      cfg,
		view:     viewport.ViewTop,
		status:   "1-9 place preset · w window · o door · tab view · q quit",
		running:  true,
	}, nil
}

// Run executes the main editor loop.
func (e *Editor) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("editor")

	ctx, initSpan := tracer.Start(ctx, "editor.init")
	initSpan.SetAttributes(
		attribute.Float64("room.width", e.plan.Room.Width),
		attribute.Float64("room.length", e.plan.Room.Length),
		attribute.Float64("room.height", e.plan.Room.Height),
		attribute.Int("catalog.presets", e.presets.Count()),
	)
	initSpan.End()

	for e.running {
		e.renderer.Render(e.plan, e.currentViewport(), e.view, e.selected, e.status)
		e.handleInput(ctx)
	}

	e.screen.Close()
	return nil
}

// Close cleans up editor resources.
func (e *Editor) Close() {
	if e.screen != nil {
		e.screen.Close()
	}
}

// currentViewport builds the transform for the current terminal size. The
// same instance is handed to the renderer and used for hit-testing within
// one loop turn.
func (e *Editor) currentViewport() *viewport.Viewport {
	width, height := e.screen.Size()
	return viewport.New(float64(width), float64(height-1), canvasPadding, canvasPadding, e.plan.Room)
}

// handleInput processes a single input event.
func (e *Editor) handleInput(ctx context.Context) {
	ev := e.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		e.handleMouseEvent(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (e *Editor) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		e.running = false

	case tcell.KeyEscape:
		// Escape discards the current selection; a pending entity that was
		// never inserted needs no further cleanup.
		e.selected = ""
		e.status = "selection cleared"

	case tcell.KeyTab:
		e.view = e.view.Next()
		e.status = "view: " + e.view.String()

	case tcell.KeyUp:
		e.moveSelected(ctx, 0, -e.cfg.MoveStep)
	case tcell.KeyDown:
		e.moveSelected(ctx, 0, e.cfg.MoveStep)
	case tcell.KeyLeft:
		e.moveSelected(ctx, -e.cfg.MoveStep, 0)
	case tcell.KeyRight:
		e.moveSelected(ctx, e.cfg.MoveStep, 0)

	case tcell.KeyDelete, tcell.KeyBackspace2:
		if e.selected != "" {
			e.plan.RemoveObject(ctx, e.selected)
			e.selected = ""
			e.status = "object removed"
		}

	case tcell.KeyRune:
		e.handleRune(ctx, ev.Rune())
	}
}

// handleRune processes character keys.
func (e *Editor) handleRune(ctx context.Context, r rune) {
	switch r {
	case 'q', 'Q':
		e.running = false

	case 'r', 'R':
		if e.selected != "" {
			res := e.plan.RotateObject(ctx, e.selected)
			e.reportResult("rotated", res)
		}

	case 'd', 'D':
		if e.selected != "" {
			dup, res := e.plan.DuplicateObject(ctx, e.selected)
			if res.CanPlace {
				e.selected = dup.ID
			}
			e.reportResult("duplicated", res)
		}

	case 'c', 'C':
		if o, ok := e.plan.GetObject(e.selected); ok {
			res := e.plan.SetObjectCollision(ctx, o.ID, !o.CollisionEnabled)
			e.reportResult("collision toggled", res)
		}

	case 'x', 'X':
		if e.selected != "" {
			e.plan.RemoveObject(ctx, e.selected)
			e.selected = ""
			e.status = "object removed"
		}

	case 'n', 'N':
		e.selectNext()

	case 'w', 'W':
		e.placeWindow()

	case 'o', 'O':
		e.placeDoor()

	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		e.placePreset(ctx, int(r-'1'))
	}
}

// handleMouseEvent selects the topmost object under a click, using the same
// projection the renderer draws with.
func (e *Editor) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	cx, cy := ev.Position()
	vp := e.currentViewport()
	px, py := vp.ToRoom(float64(cx), float64(cy))

	objects := e.plan.Objects()
	// Later-created objects draw on top, so hit-test back to front.
	for i := len(objects) - 1; i >= 0; i-- {
		o := objects[i]
		if !o.Visible {
			continue
		}
		if geometry.PointInRect(px, py, viewport.ViewRect(o, e.plan.Room, e.view)) {
			e.selected = o.ID
			e.status = "selected " + o.Name
			return
		}
	}
	e.selected = ""
	e.status = ""
}

// moveSelected drags the selected object by one step, reporting rejections.
func (e *Editor) moveSelected(ctx context.Context, dx, dy float64) {
	o, ok := e.plan.GetObject(e.selected)
	if !ok {
		return
	}
	res := e.plan.MoveObject(ctx, o.ID, o.Position.X+dx, o.Position.Y+dy)
	e.reportResult("moved", res)
}

// placePreset inserts the nth catalog preset near the room center, falling
// back to the nearest accepted position.
func (e *Editor) placePreset(ctx context.Context, index int) {
	presets := e.presets.All()
	if index < 0 || index >= len(presets) {
		return
	}
	o := presets[index].NewObject()

	w, l := o.FootprintSize()
	desiredX := (e.plan.Room.Width - w) / 2
	desiredY := (e.plan.Room.Length - l) / 2

	x, y, found := collision.FindValidPosition(o, desiredX, desiredY, e.plan.Objects(), e.plan.Room)
	if !found {
		e.status = "no room for " + o.Name
		return
	}
	o.Position.X, o.Position.Y = x, y

	res := e.plan.PlaceObject(ctx, o)
	if res.CanPlace {
		e.selected = o.ID
	}
	e.reportResult("placed "+o.Name, res)
}

// placeWindow adds a window to the wall facing the current view, at the
// first accepted offset along the run.
func (e *Editor) placeWindow() {
	wall := e.activeWall()
	run := wall.Run(e.plan.Room)
	for offset := 0.0; offset+100 <= run; offset += 10 {
		w := entity.NewWindow(wall, offset, 100, 120, 90)
		if res := e.plan.PlaceWindow(w); res.CanPlace {
			e.status = fmt.Sprintf("window on %s wall at %.0f cm", wall, offset)
			return
		}
	}
	e.status = "no space for a window on the " + string(wall) + " wall"
}

// placeDoor adds an inward, left-hinged door to the wall facing the current
// view, at the first accepted offset along the run.
func (e *Editor) placeDoor() {
	wall := e.activeWall()
	run := wall.Run(e.plan.Room)
	for offset := 0.0; offset+90 <= run; offset += 10 {
		d := entity.NewDoor(wall, offset, 90, 200, entity.SwingInward, entity.HingeLeft)
		if res := e.plan.PlaceDoor(d); res.CanPlace {
			e.status = fmt.Sprintf("door on %s wall at %.0f cm", wall, offset)
			return
		}
	}
	e.status = "no space for a door on the " + string(wall) + " wall"
}

// activeWall maps the current view to the wall it faces; the top view
// defaults to the front wall.
func (e *Editor) activeWall() entity.Wall {
	switch e.view {
	case viewport.ViewLeft:
		return entity.WallLeft
	case viewport.ViewRight:
		return entity.WallRight
	default:
		return entity.WallFront
	}
}

// selectNext cycles the selection through the objects in creation order.
func (e *Editor) selectNext() {
	objects := e.plan.Objects()
	if len(objects) == 0 {
		return
	}
	next := objects[0]
	for i, o := range objects {
		if o.ID == e.selected && i+1 < len(objects) {
			next = objects[i+1]
			break
		}
	}
	e.selected = next.ID
	e.status = "selected " + next.Name
}

// reportResult updates the status line from a validation verdict.
func (e *Editor) reportResult(action string, res collision.Result) {
	if res.CanPlace {
		e.status = action
		return
	}
	switch res.Reason {
	case collision.ReasonOutsideRoom:
		e.status = "blocked: outside room"
	case collision.ReasonObjectCollision:
		e.status = "blocked: collides with another object"
	default:
		e.status = "blocked: " + string(res.Reason)
	}
}
