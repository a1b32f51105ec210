// Package robot describes the jointed figure and computes its per-frame
// pose. Every body part is a scaled copy of the same mesh.
package robot

import (
	gomath "math"

	"github.com/Faultbox/robot-walk/internal/engine/anim"
	"github.com/Faultbox/robot-walk/internal/engine/transform"
	"github.com/Faultbox/robot-walk/pkg/math"
)

// NoParent marks a part attached directly to the robot root.
const NoParent = -1

// Part is one rigid body part. Offset and Joint are in root space with the
// figure at rest; children chain onto their parent's joint rotation but not
// its size.
type Part struct {
	Name   string
	Parent int // index into Figure.Parts, or NoParent

	Size   math.Vec3 // scale applied to the unit mesh
	Offset math.Vec3 // centre of the part at rest
	Joint  math.Vec3 // pivot the part swings about

	// Swing is the rotation axis scaled by the joint's response; the angle
	// applied is Swing * sin(t*freq + Phase) * amplitude.
	Swing math.Vec3
	Phase float32
}

// Motion holds the animation parameters shared by every joint.
type Motion struct {
	Amplitude float32 // radians
	Frequency float32 // radians per second
	SpinSpeed float32 // radians per second of root rotation about Y
}

// Figure is an ordered list of parts. Draw order is list order; parents
// must precede their children.
type Figure struct {
	Parts  []Part
	Motion Motion

	joints []math.Mat4 // scratch for Pose, one per part
}

// New returns the nine-part walking robot: body, neck, head, upper legs,
// upper arms and lower arms chained onto the upper arms.
func New(m Motion) *Figure {
	const pi = float32(gomath.Pi)
	legSwing := math.Vec3{X: 1}
	armSwing := math.Vec3{X: 1}
	elbowBend := math.Vec3{X: 0.5}

	return &Figure{
		Motion: m,
		Parts: []Part{
			{Name: "body", Parent: NoParent, Size: math.Vec3{X: 1, Y: 1.5, Z: 0.5}},
			{Name: "neck", Parent: NoParent, Size: math.Vec3{X: 0.25, Y: 0.2, Z: 0.25}, Offset: math.Vec3{Y: 0.85}},
			{
				Name: "head", Parent: NoParent,
				Size: math.Vec3{X: 0.6, Y: 0.6, Z: 0.6}, Offset: math.Vec3{Y: 1.25}, Joint: math.Vec3{Y: 0.95},
				Swing: math.Vec3{Y: 0.3}, Phase: pi / 2,
			},
			{
				Name: "left_upper_leg", Parent: NoParent,
				Size: math.Vec3{X: 0.35, Y: 1.0, Z: 0.35}, Offset: math.Vec3{X: -0.3, Y: -1.25}, Joint: math.Vec3{X: -0.3, Y: -0.75},
				Swing: legSwing,
			},
			{
				Name: "right_upper_leg", Parent: NoParent,
				Size: math.Vec3{X: 0.35, Y: 1.0, Z: 0.35}, Offset: math.Vec3{X: 0.3, Y: -1.25}, Joint: math.Vec3{X: 0.3, Y: -0.75},
				Swing: legSwing, Phase: pi,
			},
			{
				Name: "left_upper_arm", Parent: NoParent,
				Size: math.Vec3{X: 0.3, Y: 0.7, Z: 0.3}, Offset: math.Vec3{X: -0.7, Y: 0.35}, Joint: math.Vec3{X: -0.7, Y: 0.7},
				Swing: armSwing, Phase: pi,
			},
			{
				Name: "right_upper_arm", Parent: NoParent,
				Size: math.Vec3{X: 0.3, Y: 0.7, Z: 0.3}, Offset: math.Vec3{X: 0.7, Y: 0.35}, Joint: math.Vec3{X: 0.7, Y: 0.7},
				Swing: armSwing,
			},
			{
				Name: "left_lower_arm", Parent: 5,
				Size: math.Vec3{X: 0.25, Y: 0.6, Z: 0.25}, Offset: math.Vec3{X: -0.7, Y: -0.3}, Joint: math.Vec3{X: -0.7},
				Swing: elbowBend, Phase: pi,
			},
			{
				Name: "right_lower_arm", Parent: 6,
				Size: math.Vec3{X: 0.25, Y: 0.6, Z: 0.25}, Offset: math.Vec3{X: 0.7, Y: -0.3}, Joint: math.Vec3{X: 0.7},
				Swing: elbowBend,
			},
		},
	}
}

// Root returns the whole-figure transform at time t: a spin about Y.
func (f *Figure) Root(t float64) math.Mat4 {
	root := transform.New()
	root.Rotate(math.Vec3{Y: float32(gomath.Mod(t*float64(f.Motion.SpinSpeed), 2*gomath.Pi))})
	return root.Matrix()
}

// SwingAngles returns the Euler angles of part i's joint at time t.
func (f *Figure) SwingAngles(i int, t float64) math.Vec3 {
	p := &f.Parts[i]
	a := anim.Swing(t, f.Motion.Amplitude, f.Motion.Frequency, p.Phase)
	return p.Swing.Scale(a)
}

// Pose computes the model matrix of every part at time t into dst, reusing
// its capacity, and returns it. Part i's matrix is
// root * joint(parent chain) * joint(i) * T(offset) * S(size).
// Pose is not safe for concurrent use on the same Figure.
func (f *Figure) Pose(t float64, root math.Mat4, dst []math.Mat4) []math.Mat4 {
	dst = dst[:0]
	if cap(f.joints) < len(f.Parts) {
		f.joints = make([]math.Mat4, len(f.Parts))
	}
	joints := f.joints[:len(f.Parts)]

	for i := range f.Parts {
		p := &f.Parts[i]

		joint := transform.New()
		joint.RotateAroundPoint(p.Joint, f.SwingAngles(i, t))
		if p.Parent != NoParent {
			joint.SetMatrix(joints[p.Parent].Mul(joint.Matrix()))
		}
		joints[i] = joint.Matrix()

		local := transform.New()
		local.Scale(p.Size)
		local.Translate(p.Offset)

		model := transform.New()
		model.SetMatrix(root.Mul(joints[i]).Mul(local.Matrix()))
		dst = append(dst, model.Matrix())
	}
	return dst
}
