// Package math provides the float32 vector, transform and sampling math
// shared by the scene, bvh and trace packages.
package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec2 is a 2 component float32 vector.
type Vec2 f32.Vec2

// Vec3 is a 3 component float32 vector.
type Vec3 f32.Vec3

// Vec4 is a 4 component float32 vector.
type Vec4 f32.Vec4

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

// Mul returns a scaled by s.
func (a Vec2) Mul(s float32) Vec2 {
	return Vec2{a[0] * s, a[1] * s}
}

// Lerp interpolates between a and b by t.
func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul returns a scaled by s.
func (a Vec3) Mul(s float32) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// Div returns a scaled by 1/s.
func (a Vec3) Div(s float32) Vec3 {
	return Vec3{a[0] / s, a[1] / s, a[2] / s}
}

// MulVec returns the componentwise product of a and b.
func (a Vec3) MulVec(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Neg returns -a.
func (a Vec3) Neg() Vec3 {
	return Vec3{-a[0], -a[1], -a[2]}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product of a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Len returns the Euclidean length of a.
func (a Vec3) Len() float32 {
	return math32.Sqrt(a.Dot(a))
}

// LenSq returns the squared length of a.
func (a Vec3) LenSq() float32 {
	return a.Dot(a)
}

// Normalize returns a scaled to unit length. The zero vector is returned
// unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

// Lerp interpolates between a and b by t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Clamp limits every component of a to [lo, hi].
func (a Vec3) Clamp(lo, hi float32) Vec3 {
	return Vec3{Clamp(a[0], lo, hi), Clamp(a[1], lo, hi), Clamp(a[2], lo, hi)}
}

// MinComponent returns the smallest component of a.
func (a Vec3) MinComponent() float32 {
	return math32.Min(a[0], math32.Min(a[1], a[2]))
}

// MaxComponent returns the largest component of a.
func (a Vec3) MaxComponent() float32 {
	return math32.Max(a[0], math32.Max(a[1], a[2]))
}

// IsFinite reports whether every component is a finite number.
func (a Vec3) IsFinite() bool {
	for _, c := range a {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vec4 extends a with a fourth component.
func (a Vec3) Vec4(w float32) Vec4 {
	return Vec4{a[0], a[1], a[2], w}
}

// MinVec3 returns the componentwise minimum of a and b.
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

// MaxVec3 returns the componentwise maximum of a and b.
func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

// Add returns the vector sum a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Mul returns a scaled by s.
func (a Vec4) Mul(s float32) Vec4 {
	return Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// Div returns a scaled by 1/s.
func (a Vec4) Div(s float32) Vec4 {
	return Vec4{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// MulVec returns the componentwise product of a and b.
func (a Vec4) MulVec(b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// XYZ returns the first three components.
func (a Vec4) XYZ() Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
