package compose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/philipparndt/meshcompare/internal/layout"
	"github.com/philipparndt/meshcompare/internal/scene"
	"github.com/philipparndt/meshcompare/pkg/geometry"
	"github.com/philipparndt/meshcompare/pkg/viewer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelSize   = 14
	headingSize = 16
)

var (
	wireColor  = color.RGBA{A: 255}
	labelColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	pageColor  = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 255}
)

type placedText struct {
	text string
	at   layout.Point
}

// SoftwareSurface renders into a viewer.Canvas. Labels are collected during
// a pass and drawn on top by Finish.
type SoftwareSurface struct {
	canvas  *viewer.Canvas
	grid    layout.Grid
	labels  []placedText
	label   font.Face
	heading font.Face
}

// NewSoftwareSurface creates a surface of the given width and the grid's
// total height.
func NewSoftwareSurface(grid layout.Grid, width int) *SoftwareSurface {
	s := &SoftwareSurface{
		canvas: viewer.NewCanvas(width, int(grid.TotalHeight())),
		grid:   grid,
	}
	// nil faces fall back to the canvas bitmap font
	s.label, _ = viewer.LoadFace(goregular.TTF, labelSize)
	s.heading, _ = viewer.LoadFace(gobold.TTF, headingSize)
	return s
}

// Resize changes the width; the height always follows the grid
func (s *SoftwareSurface) Resize(width int) {
	if width == s.Width() {
		return
	}
	s.canvas.Resize(width, int(s.grid.TotalHeight()))
}

// Width of the surface in pixels
func (s *SoftwareSurface) Width() int {
	return s.canvas.Bounds().Dx()
}

// Image returns the composed frame
func (s *SoftwareSurface) Image() *image.RGBA {
	return s.canvas.Image()
}

// Begin clears the whole page and forgets the labels of the previous pass
func (s *SoftwareSurface) Begin() {
	s.labels = s.labels[:0]
	s.canvas.ResetScissor()
	s.canvas.Clear(pageColor)
}

// toImage converts a bottom-up layout rectangle to top-down pixels
func (s *SoftwareSurface) toImage(r layout.Rect) image.Rectangle {
	x, w := layout.Span(r.X, r.Width)
	y, h := layout.Span(s.grid.TotalHeight()-r.Y-r.Height, r.Height)
	return image.Rect(x, y, x+w, y+h)
}

func (s *SoftwareSurface) SetViewport(r layout.Rect) {
	s.canvas.SetViewport(s.toImage(r))
}

func (s *SoftwareSurface) SetScissor(r layout.Rect) {
	s.canvas.SetScissor(s.toImage(r))
}

// RenderScene clears the scissor rectangle to the scene background, then
// draws the visible part of every mesh with its wireframe.
func (s *SoftwareSurface) RenderScene(sc *scene.Scene, c *scene.Camera) {
	s.canvas.SetTransform(c.ViewProjection())
	s.canvas.Clear(sc.Background)

	for _, m := range sc.Meshes() {
		m.VisibleFaces(sc.Clip, func(face int, tri geometry.Triangle) {
			s.canvas.FillTriangle(tri, sc.Lighting.Shade(m.FaceColor(face), m.Normals[face]))
		})
		if m.Wireframe {
			m.VisibleEdges(sc.Clip, func(a, b geometry.Vector3) {
				s.canvas.DrawLine(a, b, wireColor)
			})
		}
	}
}

func (s *SoftwareSurface) PlaceLabel(text string, p layout.Point) {
	s.labels = append(s.labels, placedText{text: text, at: p})
}

// Finish draws the collected labels and one heading per row with its clip
// offset. clip may be nil to omit the offsets.
func (s *SoftwareSurface) Finish(clip *scene.ClipController) {
	s.canvas.ResetScissor()
	defer s.canvas.SetFace(nil)

	s.canvas.SetFace(s.label)
	for _, l := range s.labels {
		s.canvas.DrawText(int(l.at.X), int(l.at.Y), l.text, labelColor)
	}
	s.canvas.SetFace(s.heading)
	for row := 0; row < s.grid.Rows; row++ {
		p := s.grid.HeadingPosition(row)
		heading := fmt.Sprintf("Case %d", row+1)
		if clip != nil {
			heading = fmt.Sprintf("%s   clip x = %.1f", heading, clip.Value(row))
		}
		s.canvas.DrawText(int(p.X), int(p.Y), heading, wireColor)
	}
}
