// Package compose renders every slot of the grid into its own rectangle of
// one shared drawing surface.
package compose

import (
	"github.com/philipparndt/meshcompare/internal/layout"
	"github.com/philipparndt/meshcompare/internal/scene"
)

// Surface is a drawing target that supports per-slot viewports and
// scissoring. Rectangles use bottom-up Y as in layout.Rect.
type Surface interface {
	SetViewport(r layout.Rect)
	SetScissor(r layout.Rect)
	RenderScene(s *scene.Scene, c *scene.Camera)
	PlaceLabel(text string, p layout.Point)
}

// Compositor draws the registry's slots with the grid's geometry.
type Compositor struct {
	grid     layout.Grid
	registry *scene.Registry
}

// New creates a compositor for registry
func New(grid layout.Grid, registry *scene.Registry) *Compositor {
	return &Compositor{grid: grid, registry: registry}
}

// Layout computes the slot rectangles for a surface of the given width
func (c *Compositor) Layout(width float64) []layout.Rect {
	rects := make([]layout.Rect, c.registry.Len())
	for i, slot := range c.registry.Slots() {
		rects[i] = c.grid.SlotRect(slot.Row, slot.Col, width)
	}
	return rects
}

// Render draws every slot once. Each camera gets the aspect ratio of its
// rectangle before drawing; the surface keeps only the last viewport and
// scissor set, so a slot never draws outside its own rectangle. Rendering
// twice at the same width produces the same output.
func (c *Compositor) Render(surface Surface, width float64) []layout.Rect {
	rects := c.Layout(width)
	aspect := float32(c.grid.Aspect(width))

	for i, slot := range c.registry.Slots() {
		rect := rects[i]

		slot.Camera.Aspect = aspect
		slot.Camera.UpdateProjectionMatrix()

		surface.SetViewport(rect)
		surface.SetScissor(rect)
		surface.RenderScene(slot.Scene, slot.Camera)
		surface.PlaceLabel(slot.Label, c.grid.LabelPosition(rect))
	}
	return rects
}
