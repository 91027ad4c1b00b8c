package math

import "github.com/chewxy/math32"

// IntersectBBox tests a ray against a box with the slab method. invDir must
// be the componentwise reciprocal of the ray direction; the caller computes
// it once per traversal. The test is conservative: the far slab is widened by
// one ulp-scale factor so grazing rays are not culled.
func IntersectBBox(ray Ray, invDir Vec3, b BBox3) bool {
	itMin := b.Min.Sub(ray.Origin).MulVec(invDir)
	itMax := b.Max.Sub(ray.Origin).MulVec(invDir)
	tMin := MinVec3(itMin, itMax)
	tMax := MaxVec3(itMin, itMax)
	t0 := math32.Max(tMin.MaxComponent(), ray.TMin)
	t1 := math32.Min(tMax.MinComponent(), ray.TMax)
	t1 *= 1.00000024
	return t0 <= t1
}

// IntersectPoint tests a ray against a point primitive treated as a sphere of
// the given radius. On a hit it returns the parametric uv (always zero for
// points) and the ray parameter.
func IntersectPoint(ray Ray, p Vec3, r float32) (Vec2, float32, bool) {
	w := p.Sub(ray.Origin)
	t := w.Dot(ray.Direction) / ray.Direction.LenSq()
	if t < ray.TMin || t > ray.TMax {
		return Vec2{}, 0, false
	}
	prp := p.Sub(ray.At(t))
	if prp.LenSq() > r*r {
		return Vec2{}, 0, false
	}
	return Vec2{}, t, true
}

// IntersectLine tests a ray against a segment treated as a capsule with
// linearly interpolated radius. The returned uv holds the segment parameter
// and the normalized distance from the segment axis.
func IntersectLine(ray Ray, p0, p1 Vec3, r0, r1 float32) (Vec2, float32, bool) {
	u := ray.Direction
	v := p1.Sub(p0)
	w := ray.Origin.Sub(p0)

	a := u.LenSq()
	b := u.Dot(v)
	c := v.LenSq()
	d := u.Dot(w)
	e := v.Dot(w)
	det := a*c - b*b
	if det == 0 {
		// ray parallel to the segment
		return Vec2{}, 0, false
	}

	t := (b*e - c*d) / det
	s := (a*e - b*d) / det
	if t < ray.TMin || t > ray.TMax {
		return Vec2{}, 0, false
	}
	s = Clamp(s, 0, 1)

	pr := ray.At(t)
	pl := p0.Add(v.Mul(s))
	prl := pr.Sub(pl)
	d2 := prl.LenSq()
	r := r0*(1-s) + r1*s
	if d2 > r*r {
		return Vec2{}, 0, false
	}
	return Vec2{s, math32.Sqrt(d2) / r}, t, true
}

// IntersectTriangle tests a ray against a triangle with the Moller-Trumbore
// algorithm. The returned uv are the barycentric coordinates of the second
// and third vertices.
func IntersectTriangle(ray Ray, p0, p1, p2 Vec3) (Vec2, float32, bool) {
	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det == 0 {
		return Vec2{}, 0, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(p0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Vec2{}, 0, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Vec2{}, 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t < ray.TMin || t > ray.TMax {
		return Vec2{}, 0, false
	}
	return Vec2{u, v}, t, true
}
