// Package analysis summarizes meshes and compares an original mesh with
// its repaired counterpart.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/philipparndt/meshcompare/pkg/mesh"
)

// Summary contains measurements of one mesh
type Summary struct {
	Name           string
	FaceCount      int
	EdgeCount      int
	DegenerateFace int
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	SurfaceArea    float64
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
}

// Summarize measures model. Edges are counted per face side, shared sides
// twice.
func Summarize(model *mesh.Model) Summary {
	s := Summary{
		Name:        model.Name,
		FaceCount:   model.FaceCount(),
		BoundingBox: model.BoundingBox(),
		SurfaceArea: model.SurfaceArea(),
	}
	s.Dimensions = s.BoundingBox.Size()

	minLength := math.MaxFloat64
	totalLength := 0.0
	for _, triangle := range model.Triangles {
		if triangle.Degenerate() {
			s.DegenerateFace++
		}
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			s.MaxEdgeLength = math.Max(s.MaxEdgeLength, length)
			s.EdgeCount++
		}
	}

	if s.EdgeCount > 0 {
		s.MinEdgeLength = minLength
		s.AvgEdgeLength = totalLength / float64(s.EdgeCount)
	}
	return s
}

// Comparison relates an original mesh to its repaired version
type Comparison struct {
	Original     Summary
	Repaired     Summary
	Intersecting int // faces of the original flagged as self-intersecting
}

// FaceDelta is how many faces the repair added (negative when removed)
func (c Comparison) FaceDelta() int {
	return c.Repaired.FaceCount - c.Original.FaceCount
}

// AreaChange is the relative change of surface area, 0 for an empty original
func (c Comparison) AreaChange() float64 {
	if c.Original.SurfaceArea == 0 {
		return 0
	}
	return (c.Repaired.SurfaceArea - c.Original.SurfaceArea) / c.Original.SurfaceArea
}

// CenterShift is the distance between the bounding box centers
func (c Comparison) CenterShift() float64 {
	return c.Original.BoundingBox.Center().Distance(c.Repaired.BoundingBox.Center())
}

// IntersectingRatio is the share of original faces that intersect
func (c Comparison) IntersectingRatio() float64 {
	if c.Original.FaceCount == 0 {
		return 0
	}
	return float64(c.Intersecting) / float64(c.Original.FaceCount)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
