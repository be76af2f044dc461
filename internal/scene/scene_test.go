package scene

import (
	"testing"

	"github.com/philipparndt/meshcompare/internal/highlight"
	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/philipparndt/meshcompare/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *mesh.Model {
	m := mesh.NewModel("quad")
	a := geometry.NewVector3(-1, -1, 0)
	b := geometry.NewVector3(1, -1, 0)
	c := geometry.NewVector3(1, 1, 0)
	d := geometry.NewVector3(-1, 1, 0)
	m.AddTriangle(geometry.NewTriangle(a, b, c))
	m.AddTriangle(geometry.NewTriangle(a, c, d))
	return m
}

func TestNewMeshChecksColorLength(t *testing.T) {
	_, err := NewMesh(quad(), make([]float32, 9))
	assert.Error(t, err)

	m, err := NewMesh(quad(), highlight.Plain(2))
	require.NoError(t, err)
	assert.Len(t, m.Normals, 2)
	// the shared diagonal is only drawn once
	assert.Len(t, m.Edges, 5)
}

func TestVisibleFacesClips(t *testing.T) {
	m, err := NewMesh(quad(), highlight.Colorize(2, highlight.NewSet(1)))
	require.NoError(t, err)

	var all int
	m.VisibleFaces(nil, func(int, geometry.Triangle) { all++ })
	assert.Equal(t, 2, all)

	var area float64
	m.VisibleFaces(geometry.NewPlane(geometry.NewVector3(-1, 0, 0), 0), func(_ int, tri geometry.Triangle) {
		area += tri.Area()
		for _, v := range tri.Vertices() {
			assert.LessOrEqual(t, v.X, 1e-9)
		}
	})
	assert.InDelta(t, 2.0, area, 1e-9)

	assert.Equal(t, highlight.Red, m.FaceColor(1))
	assert.Equal(t, highlight.White, m.FaceColor(0))
}

func TestVisibleEdgesClips(t *testing.T) {
	m, err := NewMesh(quad(), highlight.Plain(2))
	require.NoError(t, err)

	var count int
	m.VisibleEdges(geometry.NewPlane(geometry.NewVector3(-1, 0, 0), -2), func(a, b geometry.Vector3) { count++ })
	assert.Equal(t, 0, count)
}

func TestShadeIsDoubleSided(t *testing.T) {
	l := DefaultLighting()
	n := geometry.NewVector3(0, 1, 0)
	assert.Equal(t, l.Shade(highlight.Red, n), l.Shade(highlight.Red, n.Mul(-1)))
	assert.Equal(t, uint8(0), l.Shade(highlight.Red, n).G)
	assert.Equal(t, uint8(255), l.Shade(highlight.White, n).R)
}

func TestSceneReplace(t *testing.T) {
	s := NewScene(nil)
	assert.True(t, s.Empty())
	m, err := NewMesh(quad(), highlight.Plain(2))
	require.NoError(t, err)
	s.Replace(m)
	s.Replace(m)
	assert.Len(t, s.Meshes(), 1)
	assert.False(t, s.Empty())
}
