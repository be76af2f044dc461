package mesh

import (
	"fmt"

	"github.com/philipparndt/meshcompare/pkg/geometry"
)

// Indexed is triangle geometry whose faces reference shared vertices
type Indexed struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    [][3]int
}

// NewIndexed creates an empty indexed mesh
func NewIndexed(name string) *Indexed {
	return &Indexed{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([][3]int, 0),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Indexed) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle referencing three vertex indices
func (m *Indexed) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, [3]int{a, b, c})
}

// ToNonIndexed flattens the mesh so every face owns its three vertices.
// Face i of the result is face i of the indexed mesh.
func (m *Indexed) ToNonIndexed() (*Model, error) {
	model := NewModel(m.Name)
	model.Triangles = make([]geometry.Triangle, 0, len(m.Faces))

	for i, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
		model.AddTriangle(geometry.NewTriangle(
			m.Vertices[face[0]],
			m.Vertices[face[1]],
			m.Vertices[face[2]],
		))
	}

	return model, nil
}

// Model is non-indexed triangle geometry: face i is Triangles[i]
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// FaceCount returns the number of triangles in the model
func (m *Model) FaceCount() int {
	return len(m.Triangles)
}

// FaceNormals computes one unit normal per face. Non-indexed geometry has no
// shared vertices, so vertex normals equal the face normal.
func (m *Model) FaceNormals() []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(m.Triangles))
	for i, tri := range m.Triangles {
		normals[i] = tri.Normal()
	}
	return normals
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
