// Package bvh implements the bounding volume hierarchy used to accelerate
// ray queries against primitive sets. Trees are built by midpoint splits
// over primitive centers and store their nodes in a flat array.
package bvh

import "github.com/radiant-render/radiant/pkg/math"

// MaxLeafPrims is the largest number of primitives a leaf node may span.
const MaxLeafPrims = 4

// Node is one element of the flat node array. Internal nodes reference
// their two children through Start; leaves reference a contiguous span of
// the reordered primitive array through Start and Num.
type Node struct {
	BBox     math.BBox3
	Start    int32
	Num      int16
	Axis     int8
	Internal bool
}

// Primitive describes one input to Build: the primitive's bounding box, the
// center used for split decisions, and the index the caller wants reported
// back during traversal.
type Primitive struct {
	BBox   math.BBox3
	Center math.Vec3
	Index  int32
}

// Tree is a built hierarchy. Primitives holds the caller's indices in the
// order leaves reference them.
type Tree struct {
	Nodes      []Node
	Primitives []int32
}

// Empty reports whether the tree spans no primitives. An empty tree has no
// nodes at all and must not be walked.
func (t *Tree) Empty() bool {
	return t == nil || len(t.Nodes) == 0
}

type workItem struct {
	node  int32
	start int32
	end   int32
}

// Build constructs a tree over prims, reordering prims in place. Ranges are
// split at the midpoint of the largest center extent until they fit in a
// leaf. The work list is processed in queue order so the node array grows
// level by level.
func Build(prims []Primitive) *Tree {
	tree := &Tree{}
	if len(prims) == 0 {
		return tree
	}

	tree.Nodes = make([]Node, 1, 2*len(prims))

	queue := make([]workItem, 0, len(prims))
	queue = append(queue, workItem{node: 0, start: 0, end: int32(len(prims))})

	for qi := 0; qi < len(queue); qi++ {
		item := queue[qi]

		node := Node{BBox: math.InvalidBBox3()}
		for i := item.start; i < item.end; i++ {
			node.BBox = node.BBox.Merge(prims[i].BBox)
		}

		if item.end-item.start > MaxLeafPrims {
			mid, axis := splitMiddle(prims, item.start, item.end)
			node.Internal = true
			node.Axis = axis
			node.Num = 2
			node.Start = int32(len(tree.Nodes))
			tree.Nodes = append(tree.Nodes, Node{}, Node{})
			queue = append(queue,
				workItem{node: node.Start, start: item.start, end: mid},
				workItem{node: node.Start + 1, start: mid, end: item.end})
		} else {
			node.Start = item.start
			node.Num = int16(item.end - item.start)
		}
		tree.Nodes[item.node] = node
	}

	tree.Primitives = make([]int32, len(prims))
	for i, p := range prims {
		tree.Primitives[i] = p.Index
	}
	return tree
}

// splitMiddle partitions prims[start:end] around the center midpoint of the
// axis with the largest center extent, returning the partition point and the
// axis. When the centers coincide, or the partition leaves one side empty,
// it falls back to splitting the range in half.
func splitMiddle(prims []Primitive, start, end int32) (int32, int8) {
	cbox := math.InvalidBBox3()
	for i := start; i < end; i++ {
		cbox = cbox.MergePoint(prims[i].Center)
	}
	csize := cbox.Size()
	if csize == (math.Vec3{}) {
		return (start + end) / 2, 0
	}

	axis := int8(0)
	if csize[0] >= csize[1] && csize[0] >= csize[2] {
		axis = 0
	}
	if csize[1] >= csize[0] && csize[1] >= csize[2] {
		axis = 1
	}
	if csize[2] >= csize[0] && csize[2] >= csize[1] {
		axis = 2
	}

	split := cbox.Center()[axis]
	mid := start
	for i := start; i < end; i++ {
		if prims[i].Center[axis] < split {
			prims[mid], prims[i] = prims[i], prims[mid]
			mid++
		}
	}

	if mid == start || mid == end {
		return (start + end) / 2, axis
	}
	return mid, axis
}

// Stats summarizes the shape of a built tree.
type Stats struct {
	Nodes      int
	Leaves     int
	MaxDepth   int
	Primitives int
}

// CollectStats walks the tree and reports node, leaf and depth counts.
func (t *Tree) CollectStats() Stats {
	stats := Stats{Primitives: len(t.Primitives)}
	if t.Empty() {
		return stats
	}

	type visit struct {
		node  int32
		depth int
	}
	stack := []visit{{0, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		stats.Nodes++
		if v.depth > stats.MaxDepth {
			stats.MaxDepth = v.depth
		}

		node := &t.Nodes[v.node]
		if node.Internal {
			stack = append(stack,
				visit{node.Start, v.depth + 1},
				visit{node.Start + 1, v.depth + 1})
		} else {
			stats.Leaves++
		}
	}
	return stats
}
