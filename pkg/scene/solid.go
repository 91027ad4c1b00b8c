package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/radiant-render/radiant/pkg/math"
)

// solidMeshCells controls the marching cubes resolution for SolidShowcase.
const solidMeshCells = 96

// SolidShowcase returns a scene with a modeled solid, a rounded block with
// two cylindrical bores, meshed by marching cubes and lit by a gradient sky.
// The mesh is a triangle soup without normals, so shading uses face normals.
func SolidShowcase() (*Scene, error) {
	body, err := sdf.Box3D(v3.Vec{X: 1, Y: 0.6, Z: 0.6}, 0.05)
	if err != nil {
		return nil, fmt.Errorf("failed to model block: %w", err)
	}
	vertical, err := sdf.Cylinder3D(1, 0.18, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to model vertical bore: %w", err)
	}
	vertical = sdf.Transform3D(vertical, sdf.RotateX(float64(math32.Pi)/2))
	horizontal, err := sdf.Cylinder3D(1, 0.12, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to model horizontal bore: %w", err)
	}
	horizontal = sdf.Transform3D(horizontal, sdf.Translate3d(v3.Vec{X: 0.28}))

	solid := sdf.Difference3D(sdf.Difference3D(body, vertical), horizontal)
	triangles := render.ToTriangles(solid, render.NewMarchingCubesUniform(solidMeshCells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("marching cubes produced an empty mesh")
	}

	scn := New()

	camera := scn.AddCamera()
	eye := math.Vec3{1.6, 1.1, 2.2}
	center := math.Vec3{0, 0.25, 0}
	camera.Frame = math.LookAtFrame(eye, center, math.Vec3{0, 1, 0})
	camera.SetLens(0.05, 1.5, 0.036)
	camera.SetFocus(0, eye.Sub(center).Len())

	shape := scn.AddShape()
	shape.Positions = make([]math.Vec3, 0, len(triangles)*3)
	shape.Triangles = make([][3]int32, 0, len(triangles))
	for _, tri := range triangles {
		base := int32(len(shape.Positions))
		for j := 0; j < 3; j++ {
			shape.Positions = append(shape.Positions,
				math.Vec3{float32(tri[j].X), float32(tri[j].Y), float32(tri[j].Z)})
		}
		shape.Triangles = append(shape.Triangles, [3]int32{base, base + 1, base + 2})
	}

	material := scn.AddMaterial()
	material.Color = math.Vec3{0.6, 0.62, 0.67}
	material.Metallic = 1
	material.Roughness = 0.3

	inst := scn.AddInstance()
	inst.Frame = math.TranslationFrame(math.Vec3{0, 0.3, 0}).
		Mul(math.RotationFrame(math.Vec3{0, 1, 0}, 25*math32.Pi/180))
	inst.Shape = len(scn.Shapes) - 1
	inst.Material = len(scn.Materials) - 1

	addQuad(scn, [4]math.Vec3{{-3, 0, 3}, {3, 0, 3}, {3, 0, -3}, {-3, 0, -3}},
		math.Vec3{0.55, 0.55, 0.55}, math.Vec3{})

	sky := scn.AddTexture()
	sky.SetHDR(gradientSky(256, 128))

	env := scn.AddEnvironment()
	env.Emission = math.Vec3{1, 1, 1}
	env.EmissionTex = sky

	return scn, nil
}

// gradientSky builds an equirectangular sky: a zenith to horizon gradient
// over a dark ground, with a bright sun blob for directional light.
func gradientSky(width, height int) (int, int, []math.Vec4) {
	zenith := math.Vec3{0.35, 0.5, 0.9}
	horizon := math.Vec3{0.75, 0.8, 0.9}
	ground := math.Vec3{0.2, 0.18, 0.15}

	pixels := make([]math.Vec4, width*height)
	for j := 0; j < height; j++ {
		v := (float32(j) + 0.5) / float32(height)
		for i := 0; i < width; i++ {
			u := (float32(i) + 0.5) / float32(width)
			color := ground
			if v < 0.5 {
				color = zenith.Lerp(horizon, 2*v)
			}
			du, dv := u-0.25, v-0.2
			sun := 20 * math32.Exp(-(du*du+dv*dv)/0.004)
			color = color.Add(math.Vec3{sun, sun * 0.9, sun * 0.7})
			pixels[j*width+i] = color.Vec4(1)
		}
	}
	return width, height, pixels
}
