package math

import "github.com/chewxy/math32"

// RayEps is the default minimum ray parameter. It keeps secondary rays from
// re-intersecting the surface they were spawned on.
const RayEps = 1e-4

// Ray is a parametric ray restricted to the interval [TMin, TMax].
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float32
	TMax      float32
}

// NewRay returns a ray over the default parametric range.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: RayEps, TMax: math32.MaxFloat32}
}

// At returns the point at parameter t.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
