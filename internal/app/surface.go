package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/meshcompare/internal/layout"
	"github.com/philipparndt/meshcompare/internal/scene"
	"github.com/philipparndt/meshcompare/pkg/geometry"
)

var (
	pageColor  = rl.NewColor(244, 244, 244, 255)
	wireColor  = rl.Black
	labelColor = rl.NewColor(51, 51, 51, 255)
)

// wireOffset pulls wireframe lines towards the camera by this fraction of
// the camera distance so they win the depth test against their faces.
const wireOffset = 0.002

type label struct {
	text string
	at   layout.Point
}

// surface draws slots straight into the window with GL viewports and
// scissor rectangles.
type surface struct {
	grid         layout.Grid
	screenHeight int
	viewport     layout.Rect
	scissor      layout.Rect
	labels       []label
}

func newSurface(grid layout.Grid) *surface {
	return &surface{grid: grid}
}

func (s *surface) begin(screenHeight int) {
	s.screenHeight = screenHeight
	s.labels = s.labels[:0]
}

// end restores the full-window viewport for the 2D overlay
func (s *surface) end() {
	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))
}

func (s *surface) SetViewport(r layout.Rect) {
	s.viewport = r
}

func (s *surface) SetScissor(r layout.Rect) {
	s.scissor = r
}

func (s *surface) PlaceLabel(text string, p layout.Point) {
	s.labels = append(s.labels, label{text: text, at: p})
}

// pixels rounds r to whole pixels. The y origin is the window's lower edge
// when bottomUp is set, else its upper edge; the window may be taller than
// the grid.
func (s *surface) pixels(r layout.Rect, bottomUp bool) (x, y, w, h int32) {
	px, pw := layout.Span(r.X, r.Width)
	start := r.Top
	if bottomUp {
		start = r.Y + float64(s.screenHeight) - s.grid.TotalHeight()
	}
	py, ph := layout.Span(start, r.Height)
	return int32(px), int32(py), int32(pw), int32(ph)
}

// RenderScene clears the scissor rectangle to the scene background and
// draws the clipped meshes with the slot camera's own projection.
func (s *surface) RenderScene(sc *scene.Scene, c *scene.Camera) {
	rl.BeginScissorMode(s.pixels(s.scissor, false))
	rl.ClearBackground(rl.NewColor(sc.Background.R, sc.Background.G, sc.Background.B, sc.Background.A))

	rl.BeginMode3D(rl.Camera3D{
		Position:   toRL(c.Position),
		Target:     toRL(c.Position.Add(c.Forward())),
		Up:         toRL(c.Up()),
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	})
	rl.Viewport(s.pixels(s.viewport, true))
	rl.SetMatrixProjection(toMatrix(c.ProjectionMatrix()))
	rl.SetMatrixModelview(toMatrix(c.ViewMatrix()))
	rl.DisableBackfaceCulling()

	for _, m := range sc.Meshes() {
		drawMesh(sc, m)
		if m.Wireframe {
			drawWireframe(sc, m, c)
		}
	}

	rl.EnableBackfaceCulling()
	rl.EndMode3D()
	rl.EndScissorMode()
}

// drawMesh draws the faces that survive the row's clip plane, each shaded
// with its vertex color
func drawMesh(sc *scene.Scene, m *scene.Mesh) {
	m.VisibleFaces(sc.Clip, func(face int, tri geometry.Triangle) {
		shade := sc.Lighting.Shade(m.FaceColor(face), m.Normals[face])
		color := rl.NewColor(shade.R, shade.G, shade.B, shade.A)
		rl.DrawTriangle3D(vec(tri.V1), vec(tri.V2), vec(tri.V3), color)
	})
}

func drawWireframe(sc *scene.Scene, m *scene.Mesh, c *scene.Camera) {
	eye := geometry.FromVec3(c.Position)
	pull := func(p geometry.Vector3) rl.Vector3 {
		return vec(p.Lerp(eye, wireOffset))
	}
	m.VisibleEdges(sc.Clip, func(a, b geometry.Vector3) {
		rl.DrawLine3D(pull(a), pull(b), wireColor)
	})
}

func vec(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout, where
// field Mi holds element i in column-major order.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
