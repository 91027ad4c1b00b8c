// Package scene holds the renderable world: cameras, shapes, materials,
// textures, instances and environments, plus the two-level BVH used to
// intersect rays against it. Scenes are assembled through the Add helpers
// and direct field assignment; nothing is validated at build time.
package scene

import (
	"time"

	"github.com/radiant-render/radiant/pkg/bvh"
	"github.com/radiant-render/radiant/pkg/log"
	"github.com/radiant-render/radiant/pkg/math"
)

var logger = log.New("scene")

// Scene owns every renderable resource. Instances reference shapes and
// materials by index into the scene's collections, so shapes and materials
// can be shared freely between instances.
type Scene struct {
	Cameras      []*Camera
	Shapes       []*Shape
	Materials    []*Material
	Textures     []*Texture
	Instances    []*Instance
	Environments []*Environment

	BVH *bvh.Tree // instance-level tree, built by BuildBVH
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddCamera appends a camera with a default 35mm-style setup and returns it
// for further configuration.
func (s *Scene) AddCamera() *Camera {
	camera := &Camera{
		Frame: math.IdentityFrame(),
		Lens:  0.050,
		Film:  math.Vec2{0.036, 0.024},
		Focus: 10000,
	}
	s.Cameras = append(s.Cameras, camera)
	return camera
}

// AddShape appends an empty shape. The caller fills exactly one primitive
// buffer plus the attribute buffers it references.
func (s *Scene) AddShape() *Shape {
	shape := &Shape{}
	s.Shapes = append(s.Shapes, shape)
	return shape
}

// AddMaterial appends a material with neutral defaults: fully opaque, glass
// index of refraction, black base color.
func (s *Scene) AddMaterial() *Material {
	material := &Material{
		IOR:     1.5,
		TrDepth: 0.01,
		Opacity: 1,
	}
	s.Materials = append(s.Materials, material)
	return material
}

// AddTexture appends an empty texture. Use SetLDR or SetHDR to fill it.
func (s *Scene) AddTexture() *Texture {
	texture := &Texture{}
	s.Textures = append(s.Textures, texture)
	return texture
}

// AddInstance appends an instance at the world origin. Shape and Material
// start out invalid and must be pointed at scene collection entries.
func (s *Scene) AddInstance() *Instance {
	instance := &Instance{
		Frame:    math.IdentityFrame(),
		Shape:    -1,
		Material: -1,
	}
	s.Instances = append(s.Instances, instance)
	return instance
}

// AddEnvironment appends an environment with no emission.
func (s *Scene) AddEnvironment() *Environment {
	environment := &Environment{
		Frame: math.IdentityFrame(),
	}
	s.Environments = append(s.Environments, environment)
	return environment
}

// Instance places one shape with one material somewhere in the world. Shape
// and Material index into the scene's collections.
type Instance struct {
	Frame    math.Frame
	Shape    int
	Material int
}

// Intersection describes the nearest surface hit found by a ray query.
// Instance is -1 when the query ran against a bare shape.
type Intersection struct {
	Hit      bool
	Instance int
	Element  int
	UV       math.Vec2
	Distance float32
}

// Intersect returns the nearest surface hit by ray. The instance tree
// provides candidates; each candidate transforms the ray into its local
// space and delegates to its shape's tree. nonRigid selects full affine
// frame inversion for scenes whose instance frames carry non-uniform scale.
func (s *Scene) Intersect(ray math.Ray, findAny, nonRigid bool) Intersection {
	isec := Intersection{Instance: -1, Element: -1}
	if s.BVH == nil {
		return isec
	}

	s.BVH.Intersect(&ray, findAny, func(prim int32) bool {
		inst := s.Instances[prim]
		local := inst.Frame.Inverse(nonRigid).TransformRay(ray)
		sub := s.Shapes[inst.Shape].Intersect(local, findAny)
		if !sub.Hit {
			return false
		}
		isec = sub
		isec.Instance = int(prim)
		ray.TMax = sub.Distance
		return true
	})
	return isec
}

// IntersectInstance intersects ray against a single instance, bypassing the
// scene-level tree.
func (s *Scene) IntersectInstance(ray math.Ray, instance int, findAny, nonRigid bool) Intersection {
	inst := s.Instances[instance]
	local := inst.Frame.Inverse(nonRigid).TransformRay(ray)
	isec := s.Shapes[inst.Shape].Intersect(local, findAny)
	if isec.Hit {
		isec.Instance = instance
	}
	return isec
}

// ProgressFunc reports a build stage together with a current/total pair.
type ProgressFunc func(stage string, current, total int)

// BuildBVH builds one tree per shape, then the scene tree over instance
// world bounds. It must run again after any shape's buffers change and
// before the next ray query. progress may be nil.
func (s *Scene) BuildBVH(progress ProgressFunc) {
	start := time.Now()
	total := len(s.Shapes) + 1

	for i, shape := range s.Shapes {
		if progress != nil {
			progress("build shape bvh", i, total)
		}
		shape.BuildBVH()
	}

	if progress != nil {
		progress("build scene bvh", len(s.Shapes), total)
	}
	prims := make([]bvh.Primitive, len(s.Instances))
	for i, inst := range s.Instances {
		box := math.InvalidBBox3()
		if shapeBVH := s.Shapes[inst.Shape].BVH; !shapeBVH.Empty() {
			box = inst.Frame.TransformBBox(shapeBVH.Nodes[0].BBox)
		}
		prims[i] = bvh.Primitive{BBox: box, Center: box.Center(), Index: int32(i)}
	}
	s.BVH = bvh.Build(prims)

	if progress != nil {
		progress("build bvh", total, total)
	}
	logger.Debugf("built trees for %d shapes and %d instances in %s",
		len(s.Shapes), len(s.Instances), time.Since(start))
}

// Bounds returns the world bounds of every instanced shape, computed from
// raw positions so it works before any tree is built. Cameras and
// environments contribute nothing.
func (s *Scene) Bounds() math.BBox3 {
	shapeBounds := make([]math.BBox3, len(s.Shapes))
	for i, shape := range s.Shapes {
		box := math.InvalidBBox3()
		for _, p := range shape.Positions {
			box = box.MergePoint(p)
		}
		shapeBounds[i] = box
	}

	bounds := math.InvalidBBox3()
	for _, inst := range s.Instances {
		box := shapeBounds[inst.Shape]
		if box.Min[0] > box.Max[0] {
			continue
		}
		bounds = bounds.Merge(inst.Frame.TransformBBox(box))
	}
	return bounds
}
