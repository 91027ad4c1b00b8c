package math

import "github.com/chewxy/math32"

// FresnelSchlick is the Schlick approximation of the Fresnel reflectance for
// a surface with the given normal-incidence reflectivity.
func FresnelSchlick(specular, normal, outgoing Vec3) Vec3 {
	if specular == (Vec3{}) {
		return Vec3{}
	}
	cosine := normal.Dot(outgoing)
	fade := math32.Pow(Clamp(1-math32.Abs(cosine), 0, 1), 5)
	return specular.Add(Vec3{1, 1, 1}.Sub(specular).Mul(fade))
}

// MicrofacetDistribution is the GGX normal distribution of halfway vectors
// for the given linearized roughness.
func MicrofacetDistribution(roughness float32, normal, halfway Vec3) float32 {
	cosine := normal.Dot(halfway)
	if cosine <= 0 {
		return 0
	}
	r2 := roughness * roughness
	c2 := cosine * cosine
	d := c2*r2 + 1 - c2
	return r2 / (math32.Pi * d * d)
}

func microfacetShadowing1(roughness float32, normal, halfway, direction Vec3) float32 {
	cosine := normal.Dot(direction)
	cosineH := halfway.Dot(direction)
	if cosine*cosineH <= 0 {
		return 0
	}
	r2 := roughness * roughness
	c2 := cosine * cosine
	return 2 * math32.Abs(cosine) / (math32.Abs(cosine) + math32.Sqrt(c2-r2*c2+r2))
}

// MicrofacetShadowing is the GGX shadowing-masking term, the product of the
// single-direction terms for the outgoing and incoming directions.
func MicrofacetShadowing(roughness float32, normal, halfway, outgoing, incoming Vec3) float32 {
	return microfacetShadowing1(roughness, normal, halfway, outgoing) *
		microfacetShadowing1(roughness, normal, halfway, incoming)
}

// ReflectivityToEta maps normal-incidence reflectivity to the index of
// refraction that produces it.
func ReflectivityToEta(reflectivity Vec3) Vec3 {
	r := reflectivity.Clamp(0, 0.99)
	var eta Vec3
	for c := 0; c < 3; c++ {
		s := math32.Sqrt(r[c])
		eta[c] = (1 + s) / (1 - s)
	}
	return eta
}

// Reflect mirrors direction w about normal n. Both w and the result point
// away from the surface.
func Reflect(w, n Vec3) Vec3 {
	return n.Mul(2 * n.Dot(w)).Sub(w)
}

// Refract bends w through a surface with relative index of refraction invEta,
// falling back to reflection on total internal reflection.
func Refract(w, n Vec3, invEta float32) Vec3 {
	cosine := n.Dot(w)
	k := 1 + invEta*invEta*(cosine*cosine-1)
	if k < 0 {
		return Reflect(w, n)
	}
	return w.Mul(-invEta).Add(n.Mul(invEta*cosine - math32.Sqrt(k)))
}

// Orthonormalize projects a onto the plane perpendicular to b and normalizes
// the result.
func Orthonormalize(a, b Vec3) Vec3 {
	return a.Sub(b.Mul(a.Dot(b))).Normalize()
}
