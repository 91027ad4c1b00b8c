package scene

import (
	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

// MaterialShowcase returns a scene with one sphere per material model lined
// up over a checkered ground, plus a grass tuft of line primitives and a
// scatter of point primitives. A constant environment and an overhead quad
// provide the light.
func MaterialShowcase() *Scene {
	scn := New()

	camera := scn.AddCamera()
	eye := math.Vec3{0, 0.9, 3.2}
	center := math.Vec3{0, 0.2, 0}
	camera.Frame = math.LookAtFrame(eye, center, math.Vec3{0, 1, 0})
	camera.SetLens(0.035, 1.5, 0.036)
	camera.SetFocus(0, eye.Sub(center).Len())

	addCheckerGround(scn)

	sphere := addSphereShape(scn, 0.2, 32)
	materials := []Material{
		{Color: math.Vec3{0.7, 0.5, 0.5}},
		{Color: math.Vec3{0.5, 0.5, 0.7}, Specular: 1, Roughness: 0.2},
		{Color: math.Vec3{0.66, 0.45, 0.34}, Metallic: 1, Roughness: 0.2},
		{Color: math.Vec3{0.7, 0.7, 0.7}, Metallic: 1},
		{Color: math.Vec3{1, 1, 1}, Transmission: 1},
		{Color: math.Vec3{0.9, 0.9, 1}, Transmission: 1, Thin: true},
	}
	for i, m := range materials {
		material := scn.AddMaterial()
		material.Color = m.Color
		material.Specular = m.Specular
		material.Roughness = m.Roughness
		material.Metallic = m.Metallic
		material.Transmission = m.Transmission
		material.Thin = m.Thin
		inst := scn.AddInstance()
		inst.Frame = math.TranslationFrame(math.Vec3{-1.25 + 0.5*float32(i), 0.2, 0})
		inst.Shape = sphere
		inst.Material = len(scn.Materials) - 1
	}

	addGrassTuft(scn, math.Vec3{-1, 0, 0.7})
	addPebbles(scn, math.Vec3{0.9, 0, 0.6})

	light := scn.AddMaterial()
	light.Emission = math.Vec3{8, 8, 8}
	lightShape := scn.AddShape()
	appendQuad(lightShape, [4]math.Vec3{{-0.4, 1.8, 0.4}, {-0.4, 1.8, -0.4}, {0.4, 1.8, -0.4}, {0.4, 1.8, 0.4}})
	lightInst := scn.AddInstance()
	lightInst.Shape = len(scn.Shapes) - 1
	lightInst.Material = len(scn.Materials) - 1

	env := scn.AddEnvironment()
	env.Emission = math.Vec3{0.3, 0.35, 0.45}

	return scn
}

// addCheckerGround appends a textured ground quad spanning [-3,3] on x and z
// with tiled texture coordinates.
func addCheckerGround(scn *Scene) {
	tex := scn.AddTexture()
	tex.SetLDR(checkerTexture(256, 32, 204, 128))

	shape := scn.AddShape()
	shape.Positions = []math.Vec3{{-3, 0, 3}, {3, 0, 3}, {3, 0, -3}, {-3, 0, -3}}
	shape.Texcoords = []math.Vec2{{0, 0}, {6, 0}, {6, 6}, {0, 6}}
	shape.Triangles = [][3]int32{{0, 1, 2}, {2, 3, 0}}

	material := scn.AddMaterial()
	material.Color = math.Vec3{1, 1, 1}
	material.ColorTex = tex

	inst := scn.AddInstance()
	inst.Shape = len(scn.Shapes) - 1
	inst.Material = len(scn.Materials) - 1
}

// checkerTexture builds an RGBA checkerboard of the given size, alternating
// the two grey levels every cell pixels.
func checkerTexture(size, cell int, even, odd byte) (int, int, []byte) {
	pixels := make([]byte, 4*size*size)
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			grey := even
			if (i/cell+j/cell)%2 == 1 {
				grey = odd
			}
			idx := 4 * (j*size + i)
			pixels[idx+0] = grey
			pixels[idx+1] = grey
			pixels[idx+2] = grey
			pixels[idx+3] = 255
		}
	}
	return size, size, pixels
}

// addSphereShape appends a UV sphere with smooth normals and
// equirectangular texture coordinates, tessellated into steps meridians and
// steps/2 parallels.
func addSphereShape(scn *Scene, radius float32, steps int) int {
	sx, sy := steps, steps/2
	shape := scn.AddShape()
	for j := 0; j <= sy; j++ {
		v := float32(j) / float32(sy)
		for i := 0; i <= sx; i++ {
			u := float32(i) / float32(sx)
			phi, theta := 2*math32.Pi*u, math32.Pi*v
			normal := math.Vec3{
				math32.Cos(phi) * math32.Sin(theta),
				math32.Sin(phi) * math32.Sin(theta),
				math32.Cos(theta),
			}
			shape.Positions = append(shape.Positions, normal.Mul(radius))
			shape.Normals = append(shape.Normals, normal)
			shape.Texcoords = append(shape.Texcoords, math.Vec2{u, v})
		}
	}
	for j := 0; j < sy; j++ {
		for i := 0; i < sx; i++ {
			c00 := int32(j*(sx+1) + i)
			c10, c01 := c00+1, c00+int32(sx)+1
			c11 := c01 + 1
			shape.Triangles = append(shape.Triangles,
				[3]int32{c00, c01, c11},
				[3]int32{c11, c10, c00},
			)
		}
	}
	return len(scn.Shapes) - 1
}

// addGrassTuft appends a clump of tapered line strands rooted around base.
func addGrassTuft(scn *Scene, base math.Vec3) {
	const strands = 40
	const segments = 4

	rng := math.NewRNG(187291)
	shape := scn.AddShape()
	for s := 0; s < strands; s++ {
		ruv := rng.Float2()
		r := 0.15 * math32.Sqrt(ruv[0])
		angle := 2 * math32.Pi * ruv[1]
		root := base.Add(math.Vec3{r * math32.Cos(angle), 0, r * math32.Sin(angle)})
		height := 0.22 + 0.12*rng.Float()
		lean := math.Vec3{0.3 * (rng.Float() - 0.5), 1, 0.3 * (rng.Float() - 0.5)}.Normalize()

		first := int32(len(shape.Positions))
		for k := 0; k <= segments; k++ {
			t := float32(k) / segments
			bend := math.Vec3{0.08 * t * t, 0, 0}
			shape.Positions = append(shape.Positions, root.Add(lean.Mul(height*t)).Add(bend))
			shape.Radius = append(shape.Radius, 0.004*(1-t)+0.001*t)
		}
		for k := int32(0); k < segments; k++ {
			shape.Lines = append(shape.Lines, [2]int32{first + k, first + k + 1})
		}
	}

	material := scn.AddMaterial()
	material.Color = math.Vec3{0.1, 0.4, 0.15}
	inst := scn.AddInstance()
	inst.Shape = len(scn.Shapes) - 1
	inst.Material = len(scn.Materials) - 1
}

// addPebbles appends a scatter of point primitives around base.
func addPebbles(scn *Scene, base math.Vec3) {
	const count = 12

	rng := math.NewRNG(401881)
	shape := scn.AddShape()
	for p := 0; p < count; p++ {
		ruv := rng.Float2()
		radius := 0.015 + 0.02*rng.Float()
		offset := math.Vec3{0.5 * (ruv[0] - 0.5), 0, 0.5 * (ruv[1] - 0.5)}
		shape.Points = append(shape.Points, int32(p))
		shape.Positions = append(shape.Positions, base.Add(offset).Add(math.Vec3{0, radius, 0}))
		shape.Radius = append(shape.Radius, radius)
	}

	material := scn.AddMaterial()
	material.Color = math.Vec3{0.9, 0.9, 0.9}
	inst := scn.AddInstance()
	inst.Shape = len(scn.Shapes) - 1
	inst.Material = len(scn.Materials) - 1
}
