// Package viewer is a small software rasterizer: it projects triangles and
// lines through a camera matrix into a viewport of a shared RGBA image,
// honoring a scissor rectangle and a depth buffer.
package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/meshcompare/pkg/geometry"
	"golang.org/x/image/font"
)

// lineDepthBias pulls lines in front of the faces they outline.
const lineDepthBias = 2.5e-4

// Canvas is an RGBA image with a depth buffer. Coordinates are top-down
// pixels, as in image.Image.
type Canvas struct {
	img       *image.RGBA
	depth     []float64
	viewport  image.Rectangle
	scissor   image.Rectangle
	transform mgl32.Mat4
	face      font.Face
}

// NewCanvas creates a width x height canvas whose viewport and scissor
// cover the whole image.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the image; its content is lost.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.depth = make([]float64, width*height)
	c.viewport = c.img.Bounds()
	c.scissor = c.img.Bounds()
	c.transform = mgl32.Ident4()
}

// Image returns the backing image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the image bounds
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// SetViewport maps normalized device coordinates onto r
func (c *Canvas) SetViewport(r image.Rectangle) {
	c.viewport = r
}

// SetScissor restricts every write to r
func (c *Canvas) SetScissor(r image.Rectangle) {
	c.scissor = r.Intersect(c.img.Bounds())
}

// ResetScissor allows writes to the whole image again
func (c *Canvas) ResetScissor() {
	c.scissor = c.img.Bounds()
}

// Scissor returns the active scissor rectangle
func (c *Canvas) Scissor() image.Rectangle {
	return c.scissor
}

// SetTransform sets the world to clip space matrix
func (c *Canvas) SetTransform(m mgl32.Mat4) {
	c.transform = m
}

// Clear fills the scissor rectangle with col and resets its depth
func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.scissor, image.NewUniform(col), image.Point{}, draw.Src)
	width := c.img.Bounds().Dx()
	for y := c.scissor.Min.Y; y < c.scissor.Max.Y; y++ {
		row := c.depth[y*width : (y+1)*width]
		for x := c.scissor.Min.X; x < c.scissor.Max.X; x++ {
			row[x] = math.Inf(1)
		}
	}
}

// Project maps a world point to pixel coordinates and NDC depth. ok is false
// for points behind the camera.
func (c *Canvas) Project(p geometry.Vector3) (x, y, z float64, ok bool) {
	clip := c.transform.Mul4x1(mgl32.Vec4{float32(p.X), float32(p.Y), float32(p.Z), 1})
	w := float64(clip.W())
	if w <= 1e-6 {
		return 0, 0, 0, false
	}
	nx, ny, nz := float64(clip.X())/w, float64(clip.Y())/w, float64(clip.Z())/w

	vp := c.viewport
	x = float64(vp.Min.X) + (nx+1)/2*float64(vp.Dx())
	y = float64(vp.Min.Y) + (1-ny)/2*float64(vp.Dy())
	return x, y, nz, true
}

// FillTriangle rasterizes tri with depth testing. Triangles with a vertex
// behind the camera are skipped.
func (c *Canvas) FillTriangle(tri geometry.Triangle, col color.RGBA) {
	var pts [3][3]float64
	for i, v := range tri.Vertices() {
		x, y, z, ok := c.Project(v)
		if !ok {
			return
		}
		pts[i] = [3]float64{x, y, z}
	}
	c.fillTriangleWithDepth(pts, col)
}

// DrawLine draws the segment a-b with depth testing, slightly in front of
// coplanar faces.
func (c *Canvas) DrawLine(a, b geometry.Vector3, col color.RGBA) {
	x1, y1, z1, ok1 := c.Project(a)
	x2, y2, z2, ok2 := c.Project(b)
	if !ok1 || !ok2 {
		return
	}
	c.drawLine(int(math.Round(x1)), int(math.Round(y1)), z1-lineDepthBias,
		int(math.Round(x2)), int(math.Round(y2)), z2-lineDepthBias, col)
}

// plot writes one pixel if it is inside the scissor and passes the depth test
func (c *Canvas) plot(x, y int, z float64, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.scissor) {
		return
	}
	if z < -1 || z > 1 {
		return
	}
	idx := y*c.img.Bounds().Dx() + x
	if z < c.depth[idx] {
		c.depth[idx] = z
		c.img.SetRGBA(x, y, col)
	}
}
