// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/robot-walk/pkg/math"
)

// Fixed is a stationary perspective camera. It keeps no movement state; the
// view and projection are derived from its constants on every call.
type Fixed struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FOV  float32 // vertical, radians
	Near float32
	Far  float32

	// ReverseDepth maps near to depth 1 and far to 0.
	ReverseDepth bool
}

// NewFixed creates a camera at eye looking at target with +Y up.
// fovDegrees is the vertical field of view.
func NewFixed(eye, target math.Vec3, fovDegrees, near, far float32) *Fixed {
	return &Fixed{
		Eye:    eye,
		Target: target,
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:    fovDegrees * gomath.Pi / 180,
		Near:   near,
		Far:    far,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Fixed) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the projection for the given width/height ratio.
// A non-positive aspect is treated as square.
func (c *Fixed) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	proj := math.Perspective(c.FOV, aspect, c.Near, c.Far)
	if c.ReverseDepth {
		proj = math.ReverseDepth(proj)
	}
	return proj
}
