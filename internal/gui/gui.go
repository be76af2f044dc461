// Package gui is the fyne frontend. Slots are drawn by the software
// rasterizer into a single raster; headings, sliders and slot labels are
// fyne widgets laid over it.
package gui

import (
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/meshcompare/internal/compare"
	"github.com/philipparndt/meshcompare/internal/compose"
	"github.com/philipparndt/meshcompare/internal/scene"
	"github.com/philipparndt/meshcompare/version"
)

const frameInterval = time.Second / 30

// GUI holds the widgets of the window
type GUI struct {
	viewer  *compare.Viewer
	surface *compose.SoftwareSurface
	raster  *canvas.Raster
	input   *inputArea

	headings []*widget.Label
	sliders  []*widget.Slider
	labels   []*widget.Label

	width int
}

// Run opens the window and blocks until it is closed. Loading must already
// have been started on v.
func Run(v *compare.Viewer, width int) error {
	a := app.New()
	w := a.NewWindow(fmt.Sprintf("Mesh Compare %s", version.Version))

	g := newGUI(v, width)
	w.SetContent(g.content())
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyHome {
			v.ResetView()
		}
	})
	w.Resize(fyne.NewSize(float32(width), float32(v.Grid.TotalHeight())))

	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fyne.Do(g.frame)
			}
		}
	}()

	w.ShowAndRun()
	return nil
}

func newGUI(v *compare.Viewer, width int) *GUI {
	g := &GUI{
		viewer:  v,
		surface: compose.NewSoftwareSurface(v.Grid, width),
		width:   width,
	}
	g.raster = canvas.NewRaster(func(w, h int) image.Image {
		return g.surface.Image()
	})
	g.input = newInputArea(g.raster, v)

	for row := 0; row < v.Rows(); row++ {
		heading := widget.NewLabel(v.Heading(row))
		heading.TextStyle = fyne.TextStyle{Bold: true}
		g.headings = append(g.headings, heading)

		slider := widget.NewSlider(scene.ClipMin, scene.ClipMax)
		slider.Step = scene.ClipStep
		slider.Value = v.Clip.Value(row)
		row := row
		slider.OnChanged = func(value float64) {
			v.SetClip(row, value)
		}
		g.sliders = append(g.sliders, slider)
	}
	for _, slot := range v.Registry.Slots() {
		g.labels = append(g.labels, widget.NewLabel(slot.Label))
	}
	return g
}

func (g *GUI) content() fyne.CanvasObject {
	objects := []fyne.CanvasObject{g.input}
	for _, h := range g.headings {
		objects = append(objects, h)
	}
	for _, s := range g.sliders {
		objects = append(objects, s)
	}
	for _, l := range g.labels {
		objects = append(objects, l)
	}
	return container.New(&gridLayout{gui: g}, objects...)
}

// frame runs on the UI goroutine
func (g *GUI) frame() {
	if !g.viewer.Update() || g.width <= 0 {
		return
	}
	g.surface.Resize(g.width)
	g.surface.Begin()
	g.viewer.Render(g.surface, float64(g.width))
	g.raster.Refresh()
}

// gridLayout places the raster and the overlay widgets using the grid
// metrics, tracking the window width.
type gridLayout struct {
	gui *GUI
}

func (l *gridLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	g := l.gui
	grid := g.viewer.Grid

	if width := int(size.Width); width != g.width {
		g.width = width
		g.viewer.Invalidate()
	}

	g.input.Move(fyne.NewPos(0, 0))
	g.input.Resize(fyne.NewSize(size.Width, float32(grid.TotalHeight())))

	for row, h := range g.headings {
		p := grid.HeadingPosition(row)
		h.Move(fyne.NewPos(float32(p.X), float32(p.Y)-8))
		h.Resize(h.MinSize())

		s := g.sliders[row]
		s.Move(fyne.NewPos(float32(p.X)+100, float32(p.Y)-6))
		s.Resize(fyne.NewSize(260, s.MinSize().Height))
	}

	for i, slot := range g.viewer.Registry.Slots() {
		rect := grid.SlotRect(slot.Row, slot.Col, float64(size.Width))
		at := grid.LabelPosition(rect)
		label := g.labels[i]
		label.Move(fyne.NewPos(float32(at.X), float32(at.Y)-8))
		label.Resize(label.MinSize())
	}
}

func (l *gridLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	grid := l.gui.viewer.Grid
	return fyne.NewSize(float32(grid.Columns*200), float32(grid.TotalHeight()))
}

var _ fyne.Layout = (*gridLayout)(nil)
