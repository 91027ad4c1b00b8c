package math

import "github.com/chewxy/math32"

// BasisFromZ builds an orthonormal basis whose Z column is v, using the
// branchless construction from Duff et al., "Building an Orthonormal Basis,
// Revisited".
func BasisFromZ(v Vec3) Frame {
	z := v.Normalize()
	sign := math32.Copysign(1, z[2])
	a := -1 / (sign + z[2])
	b := z[0] * z[1] * a
	x := Vec3{1 + sign*z[0]*z[0]*a, sign * b, -sign * z[0]}
	y := Vec3{b, sign + z[1]*z[1]*a, -z[1]}
	return Frame{X: x, Y: y, Z: z}
}

// SampleHemisphere draws a uniform direction on the hemisphere around normal
// from two uniform random numbers. The matching pdf is 1/(2 pi).
func SampleHemisphere(normal Vec3, ruv Vec2) Vec3 {
	z := ruv[1]
	r := math32.Sqrt(Clamp(1-z*z, 0, 1))
	phi := 2 * math32.Pi * ruv[0]
	local := Vec3{r * math32.Cos(phi), r * math32.Sin(phi), z}
	return BasisFromZ(normal).TransformDirection(local)
}
