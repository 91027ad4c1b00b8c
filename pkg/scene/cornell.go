package scene

import (
	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

// CornellBox returns the classic box test scene: five diffuse walls, two
// rotated blocks placed through instance frames, and an area light in the
// ceiling. The room spans [-1,1] on x and z with a height of 2.
func CornellBox() *Scene {
	scn := New()

	camera := scn.AddCamera()
	camera.Frame = math.TranslationFrame(math.Vec3{0, 1, 3.9})
	camera.SetLens(0.035, 1, 0.024)
	camera.SetFocus(0, 3.9)

	white := math.Vec3{0.725, 0.71, 0.68}
	red := math.Vec3{0.63, 0.065, 0.05}
	green := math.Vec3{0.14, 0.45, 0.091}

	addQuad(scn, [4]math.Vec3{{-1, 0, 1}, {1, 0, 1}, {1, 0, -1}, {-1, 0, -1}}, white, math.Vec3{})   // floor
	addQuad(scn, [4]math.Vec3{{-1, 2, 1}, {-1, 2, -1}, {1, 2, -1}, {1, 2, 1}}, white, math.Vec3{})   // ceiling
	addQuad(scn, [4]math.Vec3{{-1, 0, -1}, {1, 0, -1}, {1, 2, -1}, {-1, 2, -1}}, white, math.Vec3{}) // back wall
	addQuad(scn, [4]math.Vec3{{1, 0, -1}, {1, 0, 1}, {1, 2, 1}, {1, 2, -1}}, green, math.Vec3{})     // right wall
	addQuad(scn, [4]math.Vec3{{-1, 0, 1}, {-1, 0, -1}, {-1, 2, -1}, {-1, 2, 1}}, red, math.Vec3{})   // left wall

	shortShape := addBoxShape(scn, math.Vec3{0.6, 0.6, 0.6})
	tallShape := addBoxShape(scn, math.Vec3{0.6, 1.2, 0.6})
	blockMaterial := scn.AddMaterial()
	blockMaterial.Color = white

	short := scn.AddInstance()
	short.Frame = math.TranslationFrame(math.Vec3{0.33, 0.3, 0.37}).
		Mul(math.RotationFrame(math.Vec3{0, 1, 0}, -17*math32.Pi/180))
	short.Shape = shortShape
	short.Material = len(scn.Materials) - 1

	tall := scn.AddInstance()
	tall.Frame = math.TranslationFrame(math.Vec3{-0.33, 0.6, -0.29}).
		Mul(math.RotationFrame(math.Vec3{0, 1, 0}, 17*math32.Pi/180))
	tall.Shape = tallShape
	tall.Material = len(scn.Materials) - 1

	light := [4]math.Vec3{{-0.25, 1.99, 0.25}, {-0.25, 1.99, -0.25}, {0.25, 1.99, -0.25}, {0.25, 1.99, 0.25}}
	addQuad(scn, light, math.Vec3{}, math.Vec3{17, 12, 4})

	return scn
}

// addQuad appends a one-quad shape with its own material and instance.
func addQuad(scn *Scene, corners [4]math.Vec3, color, emission math.Vec3) {
	shape := scn.AddShape()
	appendQuad(shape, corners)
	material := scn.AddMaterial()
	material.Color = color
	material.Emission = emission
	inst := scn.AddInstance()
	inst.Shape = len(scn.Shapes) - 1
	inst.Material = len(scn.Materials) - 1
}

// appendQuad splits a quad into two triangles sharing the corner 0 to
// corner 2 diagonal.
func appendQuad(shape *Shape, corners [4]math.Vec3) {
	base := int32(len(shape.Positions))
	shape.Positions = append(shape.Positions, corners[0], corners[1], corners[2], corners[3])
	shape.Texcoords = append(shape.Texcoords, math.Vec2{0, 0}, math.Vec2{1, 0}, math.Vec2{1, 1}, math.Vec2{0, 1})
	shape.Triangles = append(shape.Triangles,
		[3]int32{base, base + 1, base + 2},
		[3]int32{base + 2, base + 3, base},
	)
}

// addBoxShape appends an axis-aligned box of the given size centered at the
// origin, one quad per face with outward winding.
func addBoxShape(scn *Scene, size math.Vec3) int {
	h := size.Mul(0.5)
	shape := scn.AddShape()
	faces := [6][4]math.Vec3{
		{{-h[0], -h[1], h[2]}, {h[0], -h[1], h[2]}, {h[0], h[1], h[2]}, {-h[0], h[1], h[2]}},     // front
		{{h[0], -h[1], -h[2]}, {-h[0], -h[1], -h[2]}, {-h[0], h[1], -h[2]}, {h[0], h[1], -h[2]}}, // back
		{{h[0], -h[1], h[2]}, {h[0], -h[1], -h[2]}, {h[0], h[1], -h[2]}, {h[0], h[1], h[2]}},     // right
		{{-h[0], -h[1], -h[2]}, {-h[0], -h[1], h[2]}, {-h[0], h[1], h[2]}, {-h[0], h[1], -h[2]}}, // left
		{{-h[0], h[1], h[2]}, {h[0], h[1], h[2]}, {h[0], h[1], -h[2]}, {-h[0], h[1], -h[2]}},     // top
		{{-h[0], -h[1], -h[2]}, {h[0], -h[1], -h[2]}, {h[0], -h[1], h[2]}, {-h[0], -h[1], h[2]}}, // bottom
	}
	for _, face := range faces {
		appendQuad(shape, face)
	}
	return len(scn.Shapes) - 1
}
