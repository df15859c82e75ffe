package scene

import (
	"math"

	"github.com/lmarchetti/raytracer/types"
)

const (
	cameraMoveSpeed   = 5.0
	cameraRotateSpeed = 0.5
	cameraShiftFactor = 4.0
	minFOV            = float32(1)
	maxFOV            = float32(179)
)

// MouseButtons records which mouse buttons are currently held, driving the
// pan/dolly/rotate behavior of HandleMouse.
type MouseButtons struct {
	Left  bool
	Right bool
}

// Camera is a free-flying pinhole camera. Orientation is stored as Euler
// pitch/yaw rather than a quaternion; Update derives the camera-to-world
// basis used to generate primary rays.
type Camera struct {
	Position types.Vector3
	Pitch    float32 // radians, clamped by HandleMouse to just inside ±π/2
	Yaw      float32 // radians
	FOV      float32 // degrees, clamped to [1,179]

	Forward types.Vector3
	Right   types.Vector3
	Up      types.Vector3

	CameraToWorld types.Mat4
}

// NewCamera builds a camera at the origin looking down -Z with the given
// vertical FOV in degrees.
func NewCamera(fov float32) *Camera {
	c := &Camera{
		Position: types.Vector3{},
		FOV:      fov,
	}
	c.Update()
	return c
}

// Update recomputes Forward/Right/Up and the camera-to-world basis from the
// current position/pitch/yaw. Call after any change to those fields.
func (c *Camera) Update() {
	rot := types.RotationYawPitch(c.Pitch, c.Yaw)
	c.Forward = rot.TransformVector(types.XYZ(0, 0, -1)).Normalize()
	c.Up = rot.TransformVector(types.XYZ(0, 1, 0)).Normalize()
	c.Right = c.Forward.Cross(c.Up).Normalize()
	c.CameraToWorld = types.Basis4(c.Right, c.Up, c.Forward, c.Position)
}

// HandleKeys applies WASD translation (scaled by dt and cameraMoveSpeed,
// x4 while shift is held) and arrow-key FOV adjustment.
func (c *Camera) HandleKeys(forward, strafe, vertical float32, shiftHeld bool, fovDelta float32, dt float32) {
	speed := float32(cameraMoveSpeed) * dt
	if shiftHeld {
		speed *= cameraShiftFactor
	}

	c.Position = c.Position.
		Add(c.Forward.Mul(forward * speed)).
		Add(c.Right.Mul(strafe * speed)).
		Add(c.Up.Mul(vertical * speed))

	if fovDelta != 0 {
		c.FOV += fovDelta * cameraMoveSpeed * dt
		if c.FOV < minFOV {
			c.FOV = minFOV
		}
		if c.FOV > maxFOV {
			c.FOV = maxFOV
		}
	}

	c.Update()
}

// HandleMouse applies a mouse drag of (dx,dy) pixels depending on which
// buttons are held: both buttons pans, left-only dollies forward/back and
// yaws, right-only yaws and pitches.
func (c *Camera) HandleMouse(buttons MouseButtons, dx, dy float32, dt float32) {
	rotate := cameraRotateSpeed * dt

	switch {
	case buttons.Left && buttons.Right:
		pan := float32(cameraMoveSpeed) * dt
		c.Position = c.Position.Add(c.Right.Mul(-dx * pan)).Add(c.Up.Mul(dy * pan))
	case buttons.Left:
		dolly := float32(cameraMoveSpeed) * dt
		c.Position = c.Position.Add(c.Forward.Mul(-dy * dolly))
		c.Yaw += dx * rotate
	case buttons.Right:
		c.Yaw += dx * rotate
		c.Pitch -= dy * rotate
		c.Pitch = clampPitch(c.Pitch)
	default:
		return
	}

	c.Update()
}

func clampPitch(p float32) float32 {
	const limit = float32(math.Pi/2 - 0.01)
	if p > limit {
		return limit
	}
	if p < -limit {
		return -limit
	}
	return p
}
