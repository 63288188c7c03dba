// Package facade is the thin renderer-facing layer: it is the only package
// that is allowed to depend on every core package (grid, voxel, world,
// csg, mesher, network, clipmap) at once, and nothing in those packages
// depends back on it. Per-operation the façade stays a one- or few-line
// wrapper around a core package; the only state it owns is the clipmap
// residency index and the mesh-update scheduler's FIFO and generation
// counter.
package facade

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera tunables, adapted from the teacher's pkg/render/constants.go.
const (
	DefaultYaw   float32 = -90.0
	DefaultPitch float32 = 0.0
	DefaultFOV   float32 = 45.0
	MinFOV       float32 = 1.0
	MaxFOV       float32 = 45.0
	MaxPitch     float32 = 89.0
	MinPitch     float32 = -89.0
)

// Camera is a pure position/orientation/projection value type: the
// renderer drives it and feeds its Position() into
// clipmap.Index.UpdateCamera every frame. Adapted from the teacher's
// pkg/render/camera.go, keeping its yaw/pitch/front-vector math and
// mgl32.Mat4 view/projection computation but dropping every glfw
// key-polling and mouse-delta method — window/input plumbing is out of
// this module's scope.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	yaw   float32
	pitch float32
	fov   float32

	width, height int
	projection    mgl32.Mat4
}

// NewCamera creates a camera at position with the teacher's default
// orientation and field of view.
func NewCamera(position mgl32.Vec3, width, height int) *Camera {
	c := &Camera{
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0},
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,
		fov:      DefaultFOV,
		width:    width,
		height:   height,
	}
	c.updateVectors()
	c.updateProjection()
	return c
}

func (c *Camera) updateVectors() {
	yawRad := mgl32.DegToRad(c.yaw)
	pitchRad := mgl32.DegToRad(c.pitch)
	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjection() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, 0.1, 1000.0)
}

// SetViewport updates the width/height used for the projection matrix.
func (c *Camera) SetViewport(width, height int) {
	c.width, c.height = width, height
	c.updateProjection()
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera to pos.
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current yaw and pitch in degrees.
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets yaw/pitch directly, clamping pitch to avoid gimbal
// lock, matching the teacher's SetRotation.
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampF32(pitch, MinPitch, MaxPitch)
	c.updateVectors()
}

// Rotate applies a yaw/pitch delta, the renderer-agnostic equivalent of
// the teacher's mouse-delta handler with the glfw mouse position plumbing
// removed.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.SetRotation(c.yaw+deltaYaw, c.pitch+deltaPitch)
}

// Zoom adjusts field of view by delta, clamped to [MinFOV, MaxFOV],
// the pure-math core of the teacher's HandleMouseScroll.
func (c *Camera) Zoom(delta float32) {
	c.fov = clampF32(c.fov-delta, MinFOV, MaxFOV)
	c.updateProjection()
}

// LookAt points the camera at target, recomputing yaw/pitch from the
// direction vector.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position).Normalize()
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))
	c.updateVectors()
}

// ViewMatrix returns the current view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// FrontVector, RightVector, UpVector expose the camera's basis.
func (c *Camera) FrontVector() mgl32.Vec3 { return c.front }
func (c *Camera) RightVector() mgl32.Vec3 { return c.right }
func (c *Camera) UpVector() mgl32.Vec3    { return c.up }

func clampF32(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
