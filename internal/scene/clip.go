package scene

import (
	"math"

	"github.com/philipparndt/meshcompare/pkg/geometry"
)

// Slider range of a row's clipping offset.
const (
	ClipMin  = -5.0
	ClipMax  = 5.0
	ClipStep = 0.1
)

// ClipNormal is the fixed normal of every row plane; geometry with
// x > constant is cut away.
var ClipNormal = geometry.NewVector3(-1, 0, 0)

// ClipController owns one plane per row. Both slot scenes of a row hold the
// same *geometry.Plane, so changing the constant here affects both.
type ClipController struct {
	planes []*geometry.Plane
}

// NewClipController creates rows planes at offset 0
func NewClipController(rows int) *ClipController {
	planes := make([]*geometry.Plane, rows)
	for i := range planes {
		planes[i] = geometry.NewPlane(ClipNormal, 0)
	}
	return &ClipController{planes: planes}
}

// Rows returns the number of planes
func (c *ClipController) Rows() int {
	return len(c.planes)
}

// Plane returns the shared plane of row
func (c *ClipController) Plane(row int) *geometry.Plane {
	return c.planes[row]
}

// Value returns the current offset of row
func (c *ClipController) Value(row int) float64 {
	return c.planes[row].Constant
}

// Set moves row's plane to value, snapped to the slider step and clamped to
// the slider range. Other rows are untouched. It reports whether the
// constant changed.
func (c *ClipController) Set(row int, value float64) bool {
	if row < 0 || row >= len(c.planes) || math.IsNaN(value) {
		return false
	}
	value = SnapClip(value)
	if c.planes[row].Constant == value {
		return false
	}
	c.planes[row].Constant = value
	return true
}

// SnapClip rounds value to the slider step inside [ClipMin, ClipMax]
func SnapClip(value float64) float64 {
	value = math.Max(ClipMin, math.Min(ClipMax, value))
	steps := math.Round(value / ClipStep)
	return steps / math.Round(1/ClipStep)
}
