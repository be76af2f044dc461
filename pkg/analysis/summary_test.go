package analysis

import (
	"testing"

	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/philipparndt/meshcompare/pkg/mesh"
	"github.com/stretchr/testify/assert"
)

func square(name string, size float64) *mesh.Model {
	m := mesh.NewModel(name)
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(size, 0, 0)
	c := geometry.NewVector3(size, size, 0)
	d := geometry.NewVector3(0, size, 0)
	m.AddTriangle(geometry.NewTriangle(a, b, c))
	m.AddTriangle(geometry.NewTriangle(a, c, d))
	return m
}

func TestSummarize(t *testing.T) {
	s := Summarize(square("sq", 2))

	assert.Equal(t, "sq", s.Name)
	assert.Equal(t, 2, s.FaceCount)
	assert.Equal(t, 6, s.EdgeCount)
	assert.Equal(t, 0, s.DegenerateFace)
	assert.InDelta(t, 4.0, s.SurfaceArea, 1e-9)
	assert.Equal(t, geometry.NewVector3(2, 2, 0), s.Dimensions)
	assert.InDelta(t, 2.0, s.MinEdgeLength, 1e-9)
	assert.InDelta(t, 2.8284, s.MaxEdgeLength, 1e-4)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(mesh.NewModel("empty"))
	assert.Equal(t, 0, s.EdgeCount)
	assert.Equal(t, 0.0, s.MinEdgeLength)
}

func TestComparison(t *testing.T) {
	c := Comparison{
		Original:     Summarize(square("a", 1)),
		Repaired:     Summarize(square("b", 2)),
		Intersecting: 1,
	}

	assert.Equal(t, 0, c.FaceDelta())
	assert.InDelta(t, 3.0, c.AreaChange(), 1e-9)
	assert.InDelta(t, 0.7071, c.CenterShift(), 1e-4)
	assert.Equal(t, 0.5, c.IntersectingRatio())
}
