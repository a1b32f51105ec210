package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/robot-walk/pkg/math"
)

// maxViewUpDot bounds |dir . up| for the camera; closer to 1 and the view
// basis collapses.
const maxViewUpDot = 0.999

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	switch c.Scene.Mesh {
	case "cube", "shape":
	default:
		err = multierr.Append(err, fmt.Errorf("scene: unknown mesh %q (want cube or shape)", c.Scene.Mesh))
	}
	if c.Scene.SwingAmplitude < 0 {
		err = multierr.Append(err, fmt.Errorf("scene: swing_amplitude %v must not be negative", c.Scene.SwingAmplitude))
	}

	cam := c.Scene.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera: fov %v must be in (0, 180)", cam.FOV))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near (%v) < far (%v)", cam.Near, cam.Far))
	}
	if cam.Eye == cam.Target {
		err = multierr.Append(err, fmt.Errorf("camera: eye and target are the same point"))
	} else {
		dir := math.Vec3From(cam.Target).Sub(math.Vec3From(cam.Eye)).Normalize()
		if d := dir.Dot(math.Vec3{Y: 1}); d > maxViewUpDot || d < -maxViewUpDot {
			err = multierr.Append(err, fmt.Errorf("camera: view from %v to %v is parallel to the up axis", cam.Eye, cam.Target))
		}
	}

	return err
}
