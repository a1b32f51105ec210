package anim

import (
	"math"
	"testing"
)

func TestClock(t *testing.T) {
	var c Clock
	if c.Elapsed() != 0 {
		t.Fatalf("zero clock elapsed = %v", c.Elapsed())
	}

	c.Advance(0.5)
	c.Advance(0)
	c.Advance(-3)
	c.Advance(0.25)
	if c.Elapsed() != 0.75 {
		t.Errorf("Elapsed() = %v, want 0.75", c.Elapsed())
	}

	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() after Reset = %v, want 0", c.Elapsed())
	}
}

func TestSwingBounded(t *testing.T) {
	amplitudes := []float32{0, 0.1, 0.6, 1.2, 3}
	for _, amp := range amplitudes {
		for i := 0; i < 2000; i++ {
			tm := float64(i) * 0.037
			got := Swing(tm, amp, 3, 0.5)
			if float32(math.Abs(float64(got))) > amp {
				t.Fatalf("|Swing(%v, %v)| = %v exceeds amplitude", tm, amp, got)
			}
		}
	}
}

func TestSwingValues(t *testing.T) {
	tests := []struct {
		name  string
		t     float64
		amp   float32
		freq  float32
		phase float32
		want  float32
	}{
		{"rest at zero", 0, 0.6, 3, 0, 0},
		{"peak", math.Pi / 2, 0.6, 1, 0, 0.6},
		{"opposite phase", math.Pi / 2, 0.6, 1, math.Pi, -0.6},
		{"zero amplitude", 1.3, 0, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Swing(tt.t, tt.amp, tt.freq, tt.phase)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Swing() = %v, want %v", got, tt.want)
			}
		})
	}
}
