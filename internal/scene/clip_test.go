package scene

import (
	"testing"

	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestClipControllerDefaults(t *testing.T) {
	c := NewClipController(3)
	for row := 0; row < 3; row++ {
		assert.Equal(t, 0.0, c.Value(row))
		assert.Equal(t, geometry.NewVector3(-1, 0, 0), c.Plane(row).Normal)
	}
}

func TestClipSetOnlyTouchesRow(t *testing.T) {
	c := NewClipController(2)

	assert.True(t, c.Set(0, 1.5))
	assert.Equal(t, 1.5, c.Value(0))
	assert.Equal(t, 0.0, c.Value(1))

	assert.False(t, c.Set(0, 1.5), "same value is no change")
	assert.False(t, c.Set(5, 1), "unknown row")
}

func TestClipSetClampsAndSnaps(t *testing.T) {
	c := NewClipController(1)

	c.Set(0, 7)
	assert.Equal(t, 5.0, c.Value(0))
	c.Set(0, -12)
	assert.Equal(t, -5.0, c.Value(0))
	c.Set(0, 0.26)
	assert.InDelta(t, 0.3, c.Value(0), 1e-9)
}

func TestClipPlaneHidesPositiveX(t *testing.T) {
	c := NewClipController(1)
	plane := c.Plane(0)

	assert.True(t, plane.Keeps(geometry.NewVector3(-0.5, 0, 0)))
	assert.False(t, plane.Keeps(geometry.NewVector3(0.5, 0, 0)))

	c.Set(0, 1)
	assert.True(t, plane.Keeps(geometry.NewVector3(0.5, 0, 0)))
}
