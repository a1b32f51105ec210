// Package anim provides the clock and oscillators that drive procedural
// animation.
package anim

import "math"

// Clock accumulates frame time. The zero value starts at t=0.
type Clock struct {
	elapsed float64
}

// Advance adds dt seconds. Negative steps are ignored.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Elapsed returns the accumulated time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// Swing returns sin(t*frequency + phase) * amplitude, so the result never
// exceeds |amplitude|.
func Swing(t float64, amplitude, frequency, phase float32) float32 {
	return float32(math.Sin(t*float64(frequency)+float64(phase))) * amplitude
}
