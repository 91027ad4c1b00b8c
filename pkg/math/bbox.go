package math

import "github.com/chewxy/math32"

// BBox3 is an axis aligned bounding box.
type BBox3 struct {
	Min, Max Vec3
}

// InvalidBBox3 returns the empty box: merging anything into it yields that
// thing's bounds.
func InvalidBBox3() BBox3 {
	return BBox3{
		Min: Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// Merge returns the union of b and o.
func (b BBox3) Merge(o BBox3) BBox3 {
	return BBox3{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

// MergePoint grows b to contain p.
func (b BBox3) MergePoint(p Vec3) BBox3 {
	return BBox3{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// Center returns the box midpoint.
func (b BBox3) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extents.
func (b BBox3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether o lies entirely inside b.
func (b BBox3) Contains(o BBox3) bool {
	for c := 0; c < 3; c++ {
		if o.Min[c] < b.Min[c] || o.Max[c] > b.Max[c] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside b.
func (b BBox3) ContainsPoint(p Vec3) bool {
	for c := 0; c < 3; c++ {
		if p[c] < b.Min[c] || p[c] > b.Max[c] {
			return false
		}
	}
	return true
}

// PointBounds returns the bounds of a point inflated by its radius.
func PointBounds(p Vec3, r float32) BBox3 {
	rr := Vec3{r, r, r}
	return BBox3{Min: p.Sub(rr), Max: p.Add(rr)}
}

// LineBounds returns the bounds of a segment inflated by its endpoint radii.
func LineBounds(p0, p1 Vec3, r0, r1 float32) BBox3 {
	rr0 := Vec3{r0, r0, r0}
	rr1 := Vec3{r1, r1, r1}
	return BBox3{
		Min: MinVec3(p0.Sub(rr0), p1.Sub(rr1)),
		Max: MaxVec3(p0.Add(rr0), p1.Add(rr1)),
	}
}

// TriangleBounds returns the bounds of a triangle.
func TriangleBounds(p0, p1, p2 Vec3) BBox3 {
	return BBox3{
		Min: MinVec3(p0, MinVec3(p1, p2)),
		Max: MaxVec3(p0, MaxVec3(p1, p2)),
	}
}
