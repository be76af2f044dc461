package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// covers the whole viewport with the identity transform
func fullScreen(z float64) geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewVector3(-1, -1, z),
		geometry.NewVector3(3, -1, z),
		geometry.NewVector3(-1, 3, z),
	)
}

func count(img *image.RGBA, r image.Rectangle, col color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestClearOnlyTouchesScissor(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Clear(blue)

	left := image.Rect(0, 0, 20, 20)
	c.SetScissor(left)
	c.Clear(white)

	assert.Equal(t, 400, count(c.Image(), left, white))
	assert.Equal(t, 400, count(c.Image(), image.Rect(20, 0, 40, 20), blue))
}

func TestFillTriangleStaysInScissor(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Clear(white)

	right := image.Rect(20, 0, 40, 20)
	c.SetViewport(right)
	c.SetScissor(right)
	c.Clear(white)
	c.FillTriangle(fullScreen(0), red)

	assert.Equal(t, 400, count(c.Image(), right, red))
	assert.Equal(t, 0, count(c.Image(), image.Rect(0, 0, 20, 20), red))
}

func TestViewportLargerThanScissor(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Clear(white)
	c.SetViewport(c.Bounds())
	c.SetScissor(image.Rect(0, 0, 10, 10))
	c.FillTriangle(fullScreen(0), red)

	assert.Equal(t, 100, count(c.Image(), c.Bounds(), red))
}

func TestDepthTest(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(white)

	c.FillTriangle(fullScreen(0.5), red)
	c.FillTriangle(fullScreen(0.8), blue) // behind
	assert.Equal(t, 100, count(c.Image(), c.Bounds(), red))

	c.FillTriangle(fullScreen(-0.5), blue)
	assert.Equal(t, 100, count(c.Image(), c.Bounds(), blue))
}

func TestProjectFlipsY(t *testing.T) {
	c := NewCanvas(100, 50)
	c.SetViewport(image.Rect(0, 0, 100, 50))

	x, y, _, ok := c.Project(geometry.NewVector3(-1, 1, 0))
	assert.True(t, ok)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	x, y, _, _ = c.Project(geometry.NewVector3(1, -1, 0))
	assert.InDelta(t, 100, x, 1e-6)
	assert.InDelta(t, 50, y, 1e-6)
}

func TestProjectBehindCamera(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetTransform(mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100))

	_, _, _, ok := c.Project(geometry.NewVector3(0, 0, 5))
	assert.False(t, ok)
	_, _, _, ok = c.Project(geometry.NewVector3(0, 0, -5))
	assert.True(t, ok)
}

func TestLineDrawsOverFace(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.FillTriangle(fullScreen(0), red)
	c.DrawLine(geometry.NewVector3(-0.9, 0, 0), geometry.NewVector3(0.9, 0, 0), black)

	assert.Greater(t, count(c.Image(), c.Bounds(), black), 10)
}

func TestDrawTextClipped(t *testing.T) {
	c := NewCanvas(60, 20)
	c.Clear(white)
	c.SetScissor(image.Rect(0, 0, 30, 20))
	c.DrawText(2, 2, "Original", black)

	assert.Greater(t, count(c.Image(), image.Rect(0, 0, 30, 20), black), 0)
	assert.Equal(t, 0, count(c.Image(), image.Rect(30, 0, 60, 20), black))
}

func TestTrueTypeFace(t *testing.T) {
	face, err := LoadFace(goregular.TTF, 20)
	require.NoError(t, err)

	c := NewCanvas(200, 40)
	c.Clear(white)
	c.SetFace(face)
	c.DrawText(2, 2, "Repaired", black)

	// wider than the 7px bitmap font would draw it
	assert.Greater(t, countNot(c.Image(), image.Rect(60, 0, 200, 40), white), 0)

	_, err = LoadFace([]byte("not a font"), 12)
	assert.Error(t, err)
}

func countNot(img *image.RGBA, r image.Rectangle, col color.RGBA) int {
	return r.Dx()*r.Dy() - count(img, r, col)
}
