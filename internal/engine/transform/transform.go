// Package transform composes scale, rotation and translation into a single
// model matrix, with support for rotating about an arbitrary pivot.
package transform

import (
	"github.com/Faultbox/robot-walk/pkg/math"
)

// Transform holds scale, Euler rotation and translation plus the matrix
// they produce. The matrix is recomputed on every mutation.
//
// Matrix() always equals base * T * R * S, where base is the identity
// unless SetMatrix or RotateAroundPoint folded something into it.
type Transform struct {
	scale       math.Vec3
	rotation    math.Vec3 // radians, X applied first
	translation math.Vec3

	base   math.Mat4
	matrix math.Mat4
}

// New returns an identity transform.
func New() *Transform {
	t := &Transform{}
	t.reset(math.Identity())
	return t
}

// Scale multiplies the current scale component-wise by v.
func (t *Transform) Scale(v math.Vec3) {
	t.scale = t.scale.Mul(v)
	t.update()
}

// Translate adds v to the current translation.
func (t *Transform) Translate(v math.Vec3) {
	t.translation = t.translation.Add(v)
	t.update()
}

// Rotate adds the Euler angles (radians) to the current rotation.
func (t *Transform) Rotate(angles math.Vec3) {
	t.rotation = t.rotation.Add(angles)
	t.update()
}

// RotateAroundPoint rotates the whole transform about pivot instead of the
// origin: M' = T(pivot) * R(angles) * T(-pivot) * M.
func (t *Transform) RotateAroundPoint(pivot, angles math.Vec3) {
	around := math.TranslateVec(pivot).
		Mul(math.RotateEuler(angles)).
		Mul(math.TranslateVec(pivot.Negate()))
	t.reset(around.Mul(t.matrix))
}

// SetMatrix replaces the matrix. Later Scale/Rotate/Translate calls compose
// on top of m.
func (t *Transform) SetMatrix(m math.Mat4) {
	t.reset(m)
}

// Matrix returns the composed matrix.
func (t *Transform) Matrix() math.Mat4 {
	return t.matrix
}

// Components returns the scale, rotation and translation applied since the
// last SetMatrix or RotateAroundPoint.
func (t *Transform) Components() (scale, rotation, translation math.Vec3) {
	return t.scale, t.rotation, t.translation
}

func (t *Transform) reset(base math.Mat4) {
	t.scale = math.One
	t.rotation = math.Vec3{}
	t.translation = math.Vec3{}
	t.base = base
	t.matrix = base
}

func (t *Transform) update() {
	t.matrix = t.base.
		Mul(math.TranslateVec(t.translation)).
		Mul(math.RotateEuler(t.rotation)).
		Mul(math.ScaleVec(t.scale))
}
