package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/meshcompare/internal/compare"
)

// wheelStep converts fyne scroll distances to wheel notches
const wheelStep = 10

// inputArea shows the raster and turns pointer input into orbit control
// movements: drag rotates, shift, right or middle drag pans, the wheel zooms.
type inputArea struct {
	widget.BaseWidget
	raster  *canvas.Raster
	viewer  *compare.Viewer
	panning bool
}

func newInputArea(raster *canvas.Raster, v *compare.Viewer) *inputArea {
	a := &inputArea{raster: raster, viewer: v}
	a.ExtendBaseWidget(a)
	return a
}

func (a *inputArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.raster)
}

func (a *inputArea) MouseDown(ev *desktop.MouseEvent) {
	a.panning = ev.Button != desktop.MouseButtonPrimary || ev.Modifier&fyne.KeyModifierShift != 0
}

func (a *inputArea) MouseUp(*desktop.MouseEvent) {}

func (a *inputArea) Dragged(ev *fyne.DragEvent) {
	height := a.Size().Height
	if a.panning {
		a.viewer.Controls.Pan(ev.Dragged.DX, ev.Dragged.DY, height)
	} else {
		a.viewer.Controls.Rotate(ev.Dragged.DX, ev.Dragged.DY, height)
	}
}

func (a *inputArea) DragEnd() {
	a.panning = false
}

func (a *inputArea) Scrolled(ev *fyne.ScrollEvent) {
	a.viewer.Controls.Zoom(ev.Scrolled.DY / wheelStep)
}

var (
	_ fyne.Draggable    = (*inputArea)(nil)
	_ fyne.Scrollable   = (*inputArea)(nil)
	_ desktop.Mouseable = (*inputArea)(nil)
)
