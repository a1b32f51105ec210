package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/robot-walk/internal/engine/input"
)

// PollEvents drains the SDL queue and returns the translated events. The
// slice is reused by the next call.
func (w *Window) PollEvents() []input.Event {
	w.events = w.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				// Report pixels, not window points.
				width, height := w.DrawableSize()
				w.events = append(w.events, input.Event{
					Type:   input.EventFramebufferResize,
					Width:  width,
					Height: height,
				})
			}

		case *sdl.KeyboardEvent:
			action := input.Release
			if e.Type == sdl.KEYDOWN {
				action = input.Press
				if e.Repeat != 0 {
					action = input.Repeat
				}
			}
			w.events = append(w.events, input.Event{
				Type:   input.EventKey,
				Key:    input.Key(e.Keysym.Scancode),
				Action: action,
				Mods:   translateMods(e.Keysym.Mod),
			})

		case *sdl.MouseMotionEvent:
			w.events = append(w.events, input.Event{
				Type: input.EventMouseMove,
				X:    float64(e.X),
				Y:    float64(e.Y),
			})

		case *sdl.MouseButtonEvent:
			action := input.Release
			if e.Type == sdl.MOUSEBUTTONDOWN {
				action = input.Press
			}
			w.events = append(w.events, input.Event{
				Type:   input.EventMouseButton,
				Button: input.MouseButton(e.Button),
				Action: action,
				Mods:   translateMods(uint16(sdl.GetModState())),
				X:      float64(e.X),
				Y:      float64(e.Y),
			})

		case *sdl.MouseWheelEvent:
			w.events = append(w.events, input.Event{
				Type: input.EventMouseScroll,
				X:    float64(e.X),
				Y:    float64(e.Y),
			})
		}
	}

	return w.events
}

func translateMods(m uint16) input.Modifier {
	var mods input.Modifier
	if m&sdl.KMOD_SHIFT != 0 {
		mods |= input.ModShift
	}
	if m&sdl.KMOD_CTRL != 0 {
		mods |= input.ModControl
	}
	if m&sdl.KMOD_ALT != 0 {
		mods |= input.ModAlt
	}
	if m&sdl.KMOD_GUI != 0 {
		mods |= input.ModSuper
	}
	return mods
}
