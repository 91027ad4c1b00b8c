package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is an affine coordinate transform: three basis columns X, Y, Z and an
// origin O. Rigid frames keep the basis orthonormal; instance frames may also
// carry scale, which the non rigid inverse handles.
type Frame struct {
	X, Y, Z, O Vec3
}

// IdentityFrame returns the identity transform.
func IdentityFrame() Frame {
	return Frame{X: Vec3{1, 0, 0}, Y: Vec3{0, 1, 0}, Z: Vec3{0, 0, 1}}
}

// TranslationFrame returns a pure translation by o.
func TranslationFrame(o Vec3) Frame {
	f := IdentityFrame()
	f.O = o
	return f
}

// ScalingFrame returns a transform scaling each axis by s.
func ScalingFrame(s Vec3) Frame {
	return Frame{X: Vec3{s[0], 0, 0}, Y: Vec3{0, s[1], 0}, Z: Vec3{0, 0, s[2]}}
}

// RotationFrame returns a rotation of angle radians about axis.
func RotationFrame(axis Vec3, angle float32) Frame {
	m := mgl32.HomogRotate3D(angle, mgl32.Vec3(axis).Normalize())
	return Frame{
		X: Vec3(m.Col(0).Vec3()),
		Y: Vec3(m.Col(1).Vec3()),
		Z: Vec3(m.Col(2).Vec3()),
	}
}

// LookAtFrame returns a frame at eye with -z toward center and +y near up.
func LookAtFrame(eye, center, up Vec3) Frame {
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Frame{X: x, Y: y, Z: z, O: eye}
}

// Mul composes two frames: the result applies b first, then a.
func (a Frame) Mul(b Frame) Frame {
	return Frame{
		X: a.TransformVector(b.X),
		Y: a.TransformVector(b.Y),
		Z: a.TransformVector(b.Z),
		O: a.TransformPoint(b.O),
	}
}

// TransformPoint applies the full affine transform to p.
func (f Frame) TransformPoint(p Vec3) Vec3 {
	return f.X.Mul(p[0]).Add(f.Y.Mul(p[1])).Add(f.Z.Mul(p[2])).Add(f.O)
}

// TransformVector applies only the linear part of the transform to v.
func (f Frame) TransformVector(v Vec3) Vec3 {
	return f.X.Mul(v[0]).Add(f.Y.Mul(v[1])).Add(f.Z.Mul(v[2]))
}

// TransformDirection applies the linear part and renormalizes.
func (f Frame) TransformDirection(v Vec3) Vec3 {
	return f.TransformVector(v).Normalize()
}

// TransformRay transforms origin and direction, keeping the parametric range.
// The direction is not renormalized, so ray parameters stay comparable across
// frames.
func (f Frame) TransformRay(r Ray) Ray {
	return Ray{
		Origin:    f.TransformPoint(r.Origin),
		Direction: f.TransformVector(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
	}
}

// TransformBBox transforms the eight corners of b and rebounds them.
func (f Frame) TransformBBox(b BBox3) BBox3 {
	corners := [8]Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
	out := InvalidBBox3()
	for _, c := range corners {
		out = out.MergePoint(f.TransformPoint(c))
	}
	return out
}

// Inverse returns the inverse transform. With nonRigid set the linear part is
// inverted as a general 3x3 matrix; otherwise its transpose is used, which is
// only correct for orthonormal bases.
func (f Frame) Inverse(nonRigid bool) Frame {
	var inv Frame
	if nonRigid {
		m := mgl32.Mat3FromCols(mgl32.Vec3(f.X), mgl32.Vec3(f.Y), mgl32.Vec3(f.Z)).Inv()
		inv = Frame{
			X: Vec3{m.At(0, 0), m.At(1, 0), m.At(2, 0)},
			Y: Vec3{m.At(0, 1), m.At(1, 1), m.At(2, 1)},
			Z: Vec3{m.At(0, 2), m.At(1, 2), m.At(2, 2)},
		}
	} else {
		inv = Frame{
			X: Vec3{f.X[0], f.Y[0], f.Z[0]},
			Y: Vec3{f.X[1], f.Y[1], f.Z[1]},
			Z: Vec3{f.X[2], f.Y[2], f.Z[2]},
		}
	}
	inv.O = inv.TransformVector(f.O).Neg()
	return inv
}
