package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ColumnLabels names the columns: the original mesh left, the repaired right.
var ColumnLabels = []string{"Original", "Repaired"}

// Initial camera parameters for every slot.
var (
	DefaultCameraPosition = mgl32.Vec3{0, 3, 3}
)

const (
	DefaultFov  = 45
	DefaultNear = 0.1
	DefaultFar  = 1000
)

// Slot is one grid cell: the scene and camera of a single mesh.
type Slot struct {
	Index  int
	Row    int
	Col    int
	Label  string
	Scene  *Scene
	Camera *Camera
}

// Registry holds every slot of the grid. All scenes and cameras are
// created up front so loading never has to touch the layout.
type Registry struct {
	rows    int
	columns int
	slots   []*Slot
}

// NewRegistry creates rows x columns slots; the scenes of row r are clipped
// by clip.Plane(r).
func NewRegistry(rows, columns int, clip *ClipController) (*Registry, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("grid needs at least one row and column, got %dx%d", rows, columns)
	}
	if clip.Rows() != rows {
		return nil, fmt.Errorf("clip controller has %d planes for %d rows", clip.Rows(), rows)
	}

	r := &Registry{rows: rows, columns: columns, slots: make([]*Slot, 0, rows*columns)}
	for i := 0; i < rows*columns; i++ {
		row, col := i/columns, i%columns
		camera := NewPerspectiveCamera(DefaultFov, 1, DefaultNear, DefaultFar)
		camera.Position = DefaultCameraPosition
		camera.UpdateMatrixWorld()

		r.slots = append(r.slots, &Slot{
			Index:  i,
			Row:    row,
			Col:    col,
			Label:  ColumnLabels[col%len(ColumnLabels)],
			Scene:  NewScene(clip.Plane(row)),
			Camera: camera,
		})
	}
	return r, nil
}

// Rows returns the number of rows
func (r *Registry) Rows() int { return r.rows }

// Columns returns the number of columns
func (r *Registry) Columns() int { return r.columns }

// Len returns the number of slots
func (r *Registry) Len() int { return len(r.slots) }

// Slots returns all slots in index order
func (r *Registry) Slots() []*Slot { return r.slots }

// Slot returns the slot at (row, col)
func (r *Registry) Slot(row, col int) *Slot {
	return r.slots[row*r.columns+col]
}

// Master is the camera driven by user input; all others follow it.
func (r *Registry) Master() *Camera {
	return r.slots[0].Camera
}

// Cameras returns every camera in slot order
func (r *Registry) Cameras() []*Camera {
	cameras := make([]*Camera, len(r.slots))
	for i, s := range r.slots {
		cameras[i] = s.Camera
	}
	return cameras
}
