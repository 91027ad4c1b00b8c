package scene

import (
	"github.com/radiant-render/radiant/pkg/bvh"
	"github.com/radiant-render/radiant/pkg/math"
)

// Shape holds one kind of primitive plus the vertex attribute buffers the
// primitives index into. Exactly one of Points, Lines and Triangles may be
// populated. The shape's tree must be rebuilt after any buffer changes;
// querying through a stale tree is undefined.
type Shape struct {
	Points    []int32
	Lines     [][2]int32
	Triangles [][3]int32

	Positions []math.Vec3
	Normals   []math.Vec3
	Texcoords []math.Vec2
	Radius    []float32

	BVH *bvh.Tree
}

// BuildBVH rebuilds the shape's tree over the populated primitive buffer.
// Point and line bounds are inflated by their per-vertex radius.
func (sh *Shape) BuildBVH() {
	var prims []bvh.Primitive
	switch {
	case len(sh.Points) > 0:
		prims = make([]bvh.Primitive, len(sh.Points))
		for i, p := range sh.Points {
			box := math.PointBounds(sh.Positions[p], sh.Radius[p])
			prims[i] = bvh.Primitive{BBox: box, Center: box.Center(), Index: int32(i)}
		}
	case len(sh.Lines) > 0:
		prims = make([]bvh.Primitive, len(sh.Lines))
		for i, l := range sh.Lines {
			box := math.LineBounds(sh.Positions[l[0]], sh.Positions[l[1]], sh.Radius[l[0]], sh.Radius[l[1]])
			prims[i] = bvh.Primitive{BBox: box, Center: box.Center(), Index: int32(i)}
		}
	case len(sh.Triangles) > 0:
		prims = make([]bvh.Primitive, len(sh.Triangles))
		for i, t := range sh.Triangles {
			box := math.TriangleBounds(sh.Positions[t[0]], sh.Positions[t[1]], sh.Positions[t[2]])
			prims[i] = bvh.Primitive{BBox: box, Center: box.Center(), Index: int32(i)}
		}
	}
	sh.BVH = bvh.Build(prims)
}

// Intersect returns the nearest primitive hit by ray in the shape's local
// space. Points intersect as spheres and lines as round capped cones.
func (sh *Shape) Intersect(ray math.Ray, findAny bool) Intersection {
	isec := Intersection{Instance: -1, Element: -1}
	if sh.BVH.Empty() {
		return isec
	}

	var test func(prim int32) bool
	switch {
	case len(sh.Points) > 0:
		test = func(prim int32) bool {
			p := sh.Points[prim]
			uv, dist, hit := math.IntersectPoint(ray, sh.Positions[p], sh.Radius[p])
			if !hit {
				return false
			}
			isec = Intersection{Hit: true, Instance: -1, Element: int(prim), UV: uv, Distance: dist}
			ray.TMax = dist
			return true
		}
	case len(sh.Lines) > 0:
		test = func(prim int32) bool {
			l := sh.Lines[prim]
			uv, dist, hit := math.IntersectLine(ray, sh.Positions[l[0]], sh.Positions[l[1]], sh.Radius[l[0]], sh.Radius[l[1]])
			if !hit {
				return false
			}
			isec = Intersection{Hit: true, Instance: -1, Element: int(prim), UV: uv, Distance: dist}
			ray.TMax = dist
			return true
		}
	case len(sh.Triangles) > 0:
		test = func(prim int32) bool {
			t := sh.Triangles[prim]
			uv, dist, hit := math.IntersectTriangle(ray, sh.Positions[t[0]], sh.Positions[t[1]], sh.Positions[t[2]])
			if !hit {
				return false
			}
			isec = Intersection{Hit: true, Instance: -1, Element: int(prim), UV: uv, Distance: dist}
			ray.TMax = dist
			return true
		}
	default:
		return isec
	}

	sh.BVH.Intersect(&ray, findAny, test)
	return isec
}

// EvalPosition interpolates the position of the point at uv on a primitive.
func (sh *Shape) EvalPosition(element int, uv math.Vec2) math.Vec3 {
	switch {
	case len(sh.Triangles) > 0:
		t := sh.Triangles[element]
		return interpTriangle3(sh.Positions[t[0]], sh.Positions[t[1]], sh.Positions[t[2]], uv)
	case len(sh.Lines) > 0:
		l := sh.Lines[element]
		return sh.Positions[l[0]].Lerp(sh.Positions[l[1]], uv[0])
	case len(sh.Points) > 0:
		return sh.Positions[sh.Points[element]]
	default:
		return math.Vec3{}
	}
}

// EvalNormal interpolates the shading normal at uv on a primitive, falling
// back to the analytic element normal when no normal buffer exists.
func (sh *Shape) EvalNormal(element int, uv math.Vec2) math.Vec3 {
	if len(sh.Normals) == 0 {
		return sh.EvalElementNormal(element)
	}
	switch {
	case len(sh.Triangles) > 0:
		t := sh.Triangles[element]
		return interpTriangle3(sh.Normals[t[0]], sh.Normals[t[1]], sh.Normals[t[2]], uv).Normalize()
	case len(sh.Lines) > 0:
		l := sh.Lines[element]
		return sh.Normals[l[0]].Lerp(sh.Normals[l[1]], uv[0]).Normalize()
	case len(sh.Points) > 0:
		return sh.Normals[sh.Points[element]].Normalize()
	default:
		return math.Vec3{}
	}
}

// EvalElementNormal computes the geometric normal of a primitive: the face
// normal for triangles, the tangent for lines and a fixed up vector for
// points.
func (sh *Shape) EvalElementNormal(element int) math.Vec3 {
	switch {
	case len(sh.Triangles) > 0:
		t := sh.Triangles[element]
		p0, p1, p2 := sh.Positions[t[0]], sh.Positions[t[1]], sh.Positions[t[2]]
		return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	case len(sh.Lines) > 0:
		l := sh.Lines[element]
		return sh.Positions[l[1]].Sub(sh.Positions[l[0]]).Normalize()
	case len(sh.Points) > 0:
		return math.Vec3{0, 0, 1}
	default:
		return math.Vec3{}
	}
}

// EvalTexcoord interpolates the texture coordinate at uv on a primitive.
// Without a texcoord buffer the parametric coordinate is passed through.
func (sh *Shape) EvalTexcoord(element int, uv math.Vec2) math.Vec2 {
	if len(sh.Texcoords) == 0 {
		return uv
	}
	switch {
	case len(sh.Triangles) > 0:
		t := sh.Triangles[element]
		return interpTriangle2(sh.Texcoords[t[0]], sh.Texcoords[t[1]], sh.Texcoords[t[2]], uv)
	case len(sh.Lines) > 0:
		l := sh.Lines[element]
		return sh.Texcoords[l[0]].Lerp(sh.Texcoords[l[1]], uv[0])
	case len(sh.Points) > 0:
		return sh.Texcoords[sh.Points[element]]
	default:
		return math.Vec2{}
	}
}

func interpTriangle3(p0, p1, p2 math.Vec3, uv math.Vec2) math.Vec3 {
	return p0.Mul(1 - uv[0] - uv[1]).Add(p1.Mul(uv[0])).Add(p2.Mul(uv[1]))
}

func interpTriangle2(p0, p1, p2 math.Vec2, uv math.Vec2) math.Vec2 {
	return p0.Mul(1 - uv[0] - uv[1]).Add(p1.Mul(uv[0])).Add(p2.Mul(uv[1]))
}
