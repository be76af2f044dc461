package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const controlsEpsilon = 1e-6

// OrbitControls orbits, pans and zooms a camera around a target point.
// Input methods only accumulate deltas; Update applies them, so with
// damping enabled the motion eases out over the following frames.
type OrbitControls struct {
	Target        mgl32.Vec3
	EnableDamping bool
	DampingFactor float32
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32

	camera     *Camera
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  mgl32.Vec3

	lastPosition   mgl32.Vec3
	lastQuaternion mgl32.Quat

	savedTarget   mgl32.Vec3
	savedPosition mgl32.Vec3
}

// NewOrbitControls attaches controls to camera, looking at the origin
func NewOrbitControls(camera *Camera) *OrbitControls {
	c := &OrbitControls{
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   float32(math.Inf(1)),
		camera:        camera,
		scale:         1,
	}
	c.SaveState()
	c.Update()
	return c
}

// Camera returns the controlled camera
func (c *OrbitControls) Camera() *Camera {
	return c.camera
}

// Rotate orbits by a pointer movement of (dx, dy) pixels on an element of
// the given height. A drag across the full height turns a full circle.
func (c *OrbitControls) Rotate(dx, dy, height float32) {
	if height <= 0 {
		return
	}
	c.deltaTheta -= 2 * math.Pi * dx / height * c.RotateSpeed
	c.deltaPhi -= 2 * math.Pi * dy / height * c.RotateSpeed
}

// Pan moves the target in the view plane so the scene follows the pointer
func (c *OrbitControls) Pan(dx, dy, height float32) {
	if height <= 0 {
		return
	}
	distance := c.camera.Distance(c.Target)
	scale := 2 * c.camera.halfHeightAt(distance) / height * c.PanSpeed

	right := c.camera.Quaternion.Rotate(mgl32.Vec3{1, 0, 0})
	up := c.camera.Up()
	c.panOffset = c.panOffset.Add(right.Mul(-dx * scale)).Add(up.Mul(dy * scale))
}

// Zoom dollies towards the target for positive wheel steps, away for negative
func (c *OrbitControls) Zoom(wheel float32) {
	c.scale *= float32(math.Pow(0.95, float64(wheel*c.ZoomSpeed)))
}

// SaveState remembers the current target and camera position for Reset
func (c *OrbitControls) SaveState() {
	c.savedTarget = c.Target
	c.savedPosition = c.camera.Position
}

// Reset restores the state recorded by SaveState
func (c *OrbitControls) Reset() {
	c.Target = c.savedTarget
	c.camera.Position = c.savedPosition
	c.deltaTheta, c.deltaPhi = 0, 0
	c.panOffset = mgl32.Vec3{}
	c.scale = 1
	c.Update()
}

// Update applies pending input to the camera, advancing damping by one
// step. It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	offset := c.camera.Position.Sub(c.Target)

	radius := offset.Len()
	theta := float32(math.Atan2(float64(offset[0]), float64(offset[2])))
	phi := float32(0)
	if radius > 0 {
		phi = float32(math.Acos(float64(mgl32.Clamp(offset[1]/radius, -1, 1))))
	}

	if c.EnableDamping {
		theta += c.deltaTheta * c.DampingFactor
		phi += c.deltaPhi * c.DampingFactor
	} else {
		theta += c.deltaTheta
		phi += c.deltaPhi
	}
	phi = mgl32.Clamp(phi, controlsEpsilon, math.Pi-controlsEpsilon)

	radius = mgl32.Clamp(radius*c.scale, c.MinDistance, c.MaxDistance)

	if c.EnableDamping {
		c.Target = c.Target.Add(c.panOffset.Mul(c.DampingFactor))
	} else {
		c.Target = c.Target.Add(c.panOffset)
	}

	sinPhi := float32(math.Sin(float64(phi)))
	offset = mgl32.Vec3{
		radius * sinPhi * float32(math.Sin(float64(theta))),
		radius * float32(math.Cos(float64(phi))),
		radius * sinPhi * float32(math.Cos(float64(theta))),
	}
	c.camera.Position = c.Target.Add(offset)
	c.camera.LookAt(c.Target)

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
		c.panOffset = mgl32.Vec3{}
	}
	c.scale = 1

	moved := c.camera.Position.Sub(c.lastPosition).LenSqr() > controlsEpsilon ||
		8*(1-c.camera.Quaternion.Dot(c.lastQuaternion)) > controlsEpsilon
	if moved {
		c.lastPosition = c.camera.Position
		c.lastQuaternion = c.camera.Quaternion
	}
	return moved
}
