package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumArea(tris []Triangle) float64 {
	total := 0.0
	for _, tri := range tris {
		total += tri.Area()
	}
	return total
}

func TestPlaneDistance(t *testing.T) {
	p := NewPlane(NewVector3(-1, 0, 0), 2)

	assert.InDelta(t, 2.0, p.DistanceToPoint(NewVector3(0, 5, 5)), 1e-12)
	assert.InDelta(t, -1.0, p.DistanceToPoint(NewVector3(3, 0, 0)), 1e-12)
	assert.True(t, p.Keeps(NewVector3(2, 0, 0)), "points on the plane stay visible")
	assert.False(t, p.Keeps(NewVector3(2.01, 0, 0)))
}

func TestNewPlaneNormalizes(t *testing.T) {
	p := NewPlane(NewVector3(-3, 0, 0), 0)
	assert.Equal(t, NewVector3(-1, 0, 0), p.Normal)
}

func TestClipTriangleFullyVisible(t *testing.T) {
	p := NewPlane(NewVector3(-1, 0, 0), 5)
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))

	clipped := p.ClipTriangle(tri)
	require.Len(t, clipped, 1)
	assert.Equal(t, tri, clipped[0])
}

func TestClipTriangleFullyHidden(t *testing.T) {
	p := NewPlane(NewVector3(-1, 0, 0), -5)
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))

	assert.Empty(t, p.ClipTriangle(tri))
}

func TestClipTriangleOneInside(t *testing.T) {
	// keeps x <= 1
	p := NewPlane(NewVector3(-1, 0, 0), 1)
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(2, 0, 0), NewVector3(0, 2, 0).Add(NewVector3(2, 0, 0)))

	clipped := p.ClipTriangle(tri)
	require.Len(t, clipped, 1)
	for _, v := range clipped[0].Vertices() {
		assert.LessOrEqual(t, v.X, 1.0+1e-12)
	}
	// similar triangle scaled by 1/2 keeps a quarter of the area
	assert.InDelta(t, tri.Area()/4, clipped[0].Area(), 1e-9)
}

func TestClipTriangleTwoInside(t *testing.T) {
	// keeps x <= 1
	p := NewPlane(NewVector3(-1, 0, 0), 1)
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(2, 0, 0), NewVector3(0, 2, 0))

	clipped := p.ClipTriangle(tri)
	require.Len(t, clipped, 2)
	for _, c := range clipped {
		for _, v := range c.Vertices() {
			assert.LessOrEqual(t, v.X, 1.0+1e-12)
		}
		// winding stays the same as the input (normal +Z)
		assert.InDelta(t, 1.0, c.Normal().Z, 1e-9)
	}
	// removed corner is a right triangle with legs 1 and 1
	assert.InDelta(t, tri.Area()-0.5, sumArea(clipped), 1e-9)
}

func TestClipSegment(t *testing.T) {
	p := NewPlane(NewVector3(-1, 0, 0), 0)

	a, b, ok := p.ClipSegment(NewVector3(-1, 0, 0), NewVector3(1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, NewVector3(-1, 0, 0), a)
	assert.InDelta(t, 0.0, b.X, 1e-12)

	_, _, ok = p.ClipSegment(NewVector3(1, 0, 0), NewVector3(2, 0, 0))
	assert.False(t, ok)

	a, b, ok = p.ClipSegment(NewVector3(-2, 1, 0), NewVector3(-1, 1, 0))
	require.True(t, ok)
	assert.Equal(t, NewVector3(-2, 1, 0), a)
	assert.Equal(t, NewVector3(-1, 1, 0), b)
	assert.False(t, math.IsNaN(b.X))
}
