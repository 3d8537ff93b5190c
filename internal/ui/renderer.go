package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/hfriedrich/roomplan/internal/catalog"
	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/geometry"
	"github.com/hfriedrich/roomplan/internal/plan"
	"github.com/hfriedrich/roomplan/internal/viewport"
)

// Renderer draws a plan to the screen in one of the four orthographic views.
// It consumes the same viewport transform the input handler uses for
// hit-testing, so drawn shapes and click targets always agree.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the room outline, all visible entities, door swing arcs, and
// the status line for the given view.
func (r *Renderer) Render(p *plan.Plan, vp *viewport.Viewport, view viewport.View, selectedID, status string) {
	r.screen.Clear()

	r.drawRoomOutline(p, vp, view)

	for _, o := range p.Objects() {
		if !o.Visible {
			continue
		}
		r.drawObject(o, p, vp, view, o.ID == selectedID)
	}

	for _, w := range p.Windows() {
		if !w.Visible {
			continue
		}
		if rect, ok := vp.ProjectWindow(w, p.Room, view); ok {
			r.fillRect(rect, '=', tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue))
		}
	}

	for _, d := range p.Doors() {
		if !d.Visible {
			continue
		}
		if rect, ok := vp.ProjectDoor(d, p.Room, view); ok {
			style := tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
			if d.IsBlocked {
				style = tcell.StyleDefault.Foreground(tcell.ColorRed)
			}
			r.fillRect(rect, '+', style)
		}
		if view == viewport.ViewTop {
			r.drawSwingArc(d, p, vp)
		}
	}

	_, height := r.screen.Size()
	r.renderStatus(fmt.Sprintf("[%s] %s", view, status), height-1)

	r.screen.Show()
}

// drawRoomOutline draws the projected room rectangle as a box border.
func (r *Renderer) drawRoomOutline(p *plan.Plan, vp *viewport.Viewport, view viewport.View) {
	rect := vp.ProjectRect(viewport.RoomRect(p.Room, view))
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	x0, y0 := int(math.Round(rect.X)), int(math.Round(rect.Y))
	x1, y1 := int(math.Round(rect.Right())), int(math.Round(rect.Bottom()))

	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, '─', style)
		r.screen.SetContent(x, y1, '─', style)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, '│', style)
		r.screen.SetContent(x1, y, '│', style)
	}
	r.screen.SetContent(x0, y0, '┌', style)
	r.screen.SetContent(x1, y0, '┐', style)
	r.screen.SetContent(x0, y1, '└', style)
	r.screen.SetContent(x1, y1, '┘', style)
}

// drawObject fills the object's projected rectangle with its catalog color
// and stamps the first rune of its name in the corner.
func (r *Renderer) drawObject(o *entity.Object, p *plan.Plan, vp *viewport.Viewport, view viewport.View, selected bool) {
	rect := vp.ProjectObject(o, p.Room, view)

	color, err := catalog.ParseHexColor(o.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	style := tcell.StyleDefault.Foreground(color)
	fill := '░'
	if o.CollisionEnabled {
		fill = '▒'
	}
	if selected {
		style = style.Bold(true).Reverse(true)
	}

	r.fillRect(rect, fill, style)

	if len(o.Name) > 0 {
		r.screen.SetContent(int(math.Round(rect.X)), int(math.Round(rect.Y)), rune(o.Name[0]), style)
	}
}

// drawSwingArc samples the door's clearance arc and plots it point by point.
func (r *Renderer) drawSwingArc(d *entity.Door, p *plan.Plan, vp *viewport.Viewport) {
	arc, ok := d.SwingArc(p.Room)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
	if d.IsBlocked {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	sweepEnd := arc.EndAngle
	if sweepEnd < arc.StartAngle {
		sweepEnd += 2 * math.Pi
	}
	const samples = 16
	for i := 0; i <= samples; i++ {
		angle := arc.StartAngle + (sweepEnd-arc.StartAngle)*float64(i)/samples
		px, py := geometry.PointOnCircle(arc.CenterX, arc.CenterY, arc.Radius, angle)
		cx, cy := vp.ToCanvas(px, py)
		r.screen.SetContent(int(math.Round(cx)), int(math.Round(cy)), '·', style)
	}
}

// fillRect fills a canvas-space rectangle, always covering at least one cell
// so zero-thickness wall segments stay visible.
func (r *Renderer) fillRect(rect geometry.Rect, fill rune, style tcell.Style) {
	x0, y0 := int(math.Round(rect.X)), int(math.Round(rect.Y))
	x1, y1 := int(math.Round(rect.Right())), int(math.Round(rect.Bottom()))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, fill, style)
		}
	}
}

// renderStatus displays a message at the given row.
func (r *Renderer) renderStatus(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
