package scene

import (
	"github.com/Faultbox/robot-walk/internal/engine/input"
)

var _ input.Handler = (*Scene)(nil)

func (s *Scene) OnKey(key input.Key, action input.Action, mods input.Modifier) {}

func (s *Scene) OnMouseMove(x, y float64) {}

func (s *Scene) OnMouseButton(button input.MouseButton, action input.Action, mods input.Modifier) {}

func (s *Scene) OnMouseScroll(xoffset, yoffset float64) {}

// OnFramebufferResize updates the viewport and the projection aspect.
// Degenerate sizes (minimised windows) are ignored.
func (s *Scene) OnFramebufferResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
	s.dev.Viewport(width, height)
}
