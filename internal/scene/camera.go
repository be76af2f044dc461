package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
)

// Camera is a perspective camera. Position and Quaternion are its transform;
// Fov, Aspect, Near and Far feed the projection matrix, which is only
// recomputed by UpdateProjectionMatrix.
type Camera struct {
	Position   mgl32.Vec3
	Quaternion mgl32.Quat
	Fov        float32 // vertical field of view in degrees
	Aspect     float32
	Near       float32
	Far        float32

	projection  mgl32.Mat4
	matrixWorld mgl32.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		Quaternion: mgl32.QuatIdent(),
		Fov:        fov,
		Aspect:     aspect,
		Near:       near,
		Far:        far,
	}
	c.UpdateProjectionMatrix()
	c.UpdateMatrixWorld()
	return c
}

// UpdateProjectionMatrix recomputes the projection from Fov/Aspect/Near/Far
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the projection computed by the last UpdateProjectionMatrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// UpdateMatrixWorld recomputes the world transform from Position and Quaternion
func (c *Camera) UpdateMatrixWorld() {
	p := c.Position
	c.matrixWorld = mgl32.Translate3D(p[0], p[1], p[2]).Mul4(c.Quaternion.Normalize().Mat4())
}

// MatrixWorld returns the transform computed by the last UpdateMatrixWorld
func (c *Camera) MatrixWorld() mgl32.Mat4 {
	return c.matrixWorld
}

// ViewMatrix is the inverse of the world transform
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.matrixWorld.Inv()
}

// ViewProjection maps world space to clip space
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.ViewMatrix())
}

// Forward is the viewing direction in world space
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Quaternion.Rotate(localForward)
}

// Up is the camera's up direction in world space
func (c *Camera) Up() mgl32.Vec3 {
	return c.Quaternion.Rotate(worldUp)
}

// LookAt orients the camera towards target keeping +Y as world up
func (c *Camera) LookAt(target mgl32.Vec3) {
	back := c.Position.Sub(target)
	if back.Len() == 0 {
		back = mgl32.Vec3{0, 0, 1}
	}
	back = back.Normalize()

	right := worldUp.Cross(back)
	if right.Len() < 1e-6 {
		// looking straight up or down
		back[2] += 1e-4
		back = back.Normalize()
		right = worldUp.Cross(back)
	}
	right = right.Normalize()
	up := back.Cross(right)

	rotation := mgl32.Mat4{
		right[0], right[1], right[2], 0,
		up[0], up[1], up[2], 0,
		back[0], back[1], back[2], 0,
		0, 0, 0, 1,
	}
	c.Quaternion = mgl32.Mat4ToQuat(rotation).Normalize()
}

// CopyTransform takes over position and orientation of src. Projection
// parameters stay untouched.
func (c *Camera) CopyTransform(src *Camera) {
	c.Position = src.Position
	c.Quaternion = src.Quaternion
}

// Distance returns the distance between the camera and a point
func (c *Camera) Distance(point mgl32.Vec3) float32 {
	return c.Position.Sub(point).Len()
}

// halfHeightAt is half the visible frustum height at distance d
func (c *Camera) halfHeightAt(d float32) float32 {
	return d * float32(math.Tan(float64(mgl32.DegToRad(c.Fov))/2))
}
