package bvh

import "github.com/radiant-render/radiant/pkg/math"

// traversalStack bounds the node stack used while walking a tree. The
// builder splits every oversized range, so depth stays far below this for
// any practical primitive count.
const traversalStack = 128

// Intersect walks the tree along ray and calls test for every primitive in
// every leaf the ray touches. test reports whether its primitive was hit and
// is expected to shrink ray.TMax on strictly closer hits so farther nodes
// are culled. With findAny set, traversal returns at the first hit instead
// of searching for the nearest one.
func (t *Tree) Intersect(ray *math.Ray, findAny bool, test func(prim int32) bool) bool {
	if len(t.Nodes) == 0 {
		return false
	}

	var stack [traversalStack]int32
	cur := 0
	stack[cur] = 0
	cur++

	hit := false

	invDir := math.Vec3{1 / ray.Direction[0], 1 / ray.Direction[1], 1 / ray.Direction[2]}
	isNeg := [3]bool{invDir[0] < 0, invDir[1] < 0, invDir[2] < 0}

	for cur > 0 {
		cur--
		node := &t.Nodes[stack[cur]]

		if !math.IntersectBBox(*ray, invDir, node.BBox) {
			continue
		}

		if node.Internal {
			// visit the child nearer along the split axis first
			if isNeg[node.Axis] {
				stack[cur] = node.Start
				stack[cur+1] = node.Start + 1
			} else {
				stack[cur] = node.Start + 1
				stack[cur+1] = node.Start
			}
			cur += 2
		} else {
			for i := node.Start; i < node.Start+int32(node.Num); i++ {
				if test(t.Primitives[i]) {
					hit = true
				}
			}
		}

		if findAny && hit {
			return true
		}
	}

	return hit
}
