package mesh

import (
	"strings"
	"testing"

	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOBJTriangle(t *testing.T) {
	objData := `
# Simple triangle
o tri
v 0 0 0
v 1 0 0
v 0.5 1 0
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(objData), "")
	require.NoError(t, err)

	assert.Equal(t, "tri", m.Name)
	assert.Len(t, m.Vertices, 3)
	assert.Equal(t, [][3]int{{0, 1, 2}}, m.Faces)
}

func TestParseOBJQuadFan(t *testing.T) {
	objData := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0.5 2 0
f 1 2 3 4
f 4 3 5
`
	m, err := ParseOBJ(strings.NewReader(objData), "quad")
	require.NoError(t, err)

	// quad becomes (1,2,3) + (1,3,4), then the triangle follows
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 2, 3}, {3, 2, 4}}, m.Faces)
}

func TestParseOBJSlashAndNegativeIndices(t *testing.T) {
	objData := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2//1 3/1
f -3 -2 -1
`
	m, err := ParseOBJ(strings.NewReader(objData), "mixed")
	require.NoError(t, err)
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 1, 2}}, m.Faces)
}

func TestParseOBJErrors(t *testing.T) {
	cases := map[string]string{
		"short vertex":    "v 1 2\n",
		"bad coordinate":  "v 1 x 2\n",
		"index too large": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"zero index":      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"two corners":     "v 0 0 0\nv 1 0 0\nf 1 2\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(data), "bad")
			assert.Error(t, err)
		})
	}
}

func TestToNonIndexedKeepsFaceOrder(t *testing.T) {
	m := NewIndexed("shared")
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(1, 0, 0))
	c := m.AddVertex(geometry.NewVector3(0, 1, 0))
	d := m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddFace(a, b, c)
	m.AddFace(c, b, d)

	model, err := m.ToNonIndexed()
	require.NoError(t, err)

	require.Equal(t, 2, model.FaceCount())
	assert.Equal(t, geometry.NewTriangle(m.Vertices[c], m.Vertices[b], m.Vertices[d]), model.Triangles[1])
	assert.InDelta(t, 1.0, model.SurfaceArea(), 1e-12)
}

func TestToNonIndexedRejectsBadIndex(t *testing.T) {
	m := NewIndexed("broken")
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddFace(0, 0, 3)

	_, err := m.ToNonIndexed()
	assert.Error(t, err)
}
