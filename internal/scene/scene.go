// Package scene holds the per-slot scenes and cameras of the comparison
// grid, the per-row clipping planes and the camera synchronization.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/meshcompare/internal/highlight"
	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/philipparndt/meshcompare/pkg/mesh"
)

// Lighting is an ambient term plus one white directional light.
type Lighting struct {
	Ambient     float64
	Directional float64
	Direction   geometry.Vector3 // unit vector pointing towards the light
}

// DefaultLighting matches a soft ambient light and a key light above and
// in front of the models.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:     0.6,
		Directional: 0.8,
		Direction:   geometry.NewVector3(5, 10, 5).Normalize(),
	}
}

// Shade lights a base color for a face with the given normal. Faces are
// double sided, so the light reaches either side.
func (l Lighting) Shade(base [3]float32, normal geometry.Vector3) color.RGBA {
	intensity := l.Ambient + l.Directional*math.Abs(normal.Dot(l.Direction))
	channel := func(c float32) uint8 {
		return uint8(math.Min(255, math.Round(float64(c)*intensity*255)))
	}
	return color.RGBA{R: channel(base[0]), G: channel(base[1]), B: channel(base[2]), A: 255}
}

// Mesh is a non-indexed model with one color per vertex.
type Mesh struct {
	Model     *mesh.Model
	Colors    []float32
	Normals   []geometry.Vector3
	Edges     [][2]geometry.Vector3
	Wireframe bool
}

// NewMesh wraps a model with its color buffer, precomputing face normals
// and the unique edges of the wireframe overlay.
func NewMesh(model *mesh.Model, colors []float32) (*Mesh, error) {
	m := &Mesh{Model: model, Wireframe: true}
	if err := m.SetColors(colors); err != nil {
		return nil, err
	}
	m.Normals = model.FaceNormals()
	m.Edges = uniqueEdges(model)
	return m, nil
}

// SetColors replaces the color buffer; it must hold 9 floats per face.
func (m *Mesh) SetColors(colors []float32) error {
	want := m.Model.FaceCount() * highlight.VertexPerFace * highlight.Channels
	if len(colors) != want {
		return fmt.Errorf("color buffer has %d values, want %d for %d faces", len(colors), want, m.Model.FaceCount())
	}
	m.Colors = colors
	return nil
}

// FaceColor returns the color of the first vertex of face i
func (m *Mesh) FaceColor(i int) [3]float32 {
	return highlight.FaceColor(m.Colors, i)
}

// VisibleFaces calls fn for every part of a face that survives clip.
// A nil clip keeps everything.
func (m *Mesh) VisibleFaces(clip *geometry.Plane, fn func(face int, tri geometry.Triangle)) {
	for i, tri := range m.Model.Triangles {
		if clip == nil {
			fn(i, tri)
			continue
		}
		for _, part := range clip.ClipTriangle(tri) {
			fn(i, part)
		}
	}
}

// VisibleEdges calls fn for every wireframe edge segment that survives clip.
func (m *Mesh) VisibleEdges(clip *geometry.Plane, fn func(a, b geometry.Vector3)) {
	for _, edge := range m.Edges {
		if clip == nil {
			fn(edge[0], edge[1])
			continue
		}
		if a, b, ok := clip.ClipSegment(edge[0], edge[1]); ok {
			fn(a, b)
		}
	}
}

func uniqueEdges(model *mesh.Model) [][2]geometry.Vector3 {
	seen := make(map[[2]geometry.Vector3]bool)
	edges := make([][2]geometry.Vector3, 0, model.FaceCount()*3/2)
	for _, tri := range model.Triangles {
		v := tri.Vertices()
		for i := 0; i < 3; i++ {
			a, b := v[i], v[(i+1)%3]
			if seen[[2]geometry.Vector3{a, b}] || seen[[2]geometry.Vector3{b, a}] {
				continue
			}
			seen[[2]geometry.Vector3{a, b}] = true
			edges = append(edges, [2]geometry.Vector3{a, b})
		}
	}
	return edges
}

// Scene is what one slot renders: a background, lights, meshes and the
// clipping plane of its row.
type Scene struct {
	Background color.RGBA
	Lighting   Lighting
	Clip       *geometry.Plane

	meshes []*Mesh
}

// NewScene creates an empty white scene clipped by clip
func NewScene(clip *geometry.Plane) *Scene {
	return &Scene{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Lighting:   DefaultLighting(),
		Clip:       clip,
	}
}

// Replace drops all meshes and installs m
func (s *Scene) Replace(m *Mesh) {
	s.meshes = []*Mesh{m}
}

// Meshes returns the meshes in insertion order
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Empty reports whether nothing has been loaded into the scene yet
func (s *Scene) Empty() bool {
	return len(s.meshes) == 0
}
