package trace

import (
	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

// shadeEyelight lights every surface from the camera, which makes geometry
// readable without any scene lights.
func shadeEyelight(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		return math.Vec4{}
	}

	inst := scn.Instances[isec.Instance]
	shape := scn.Shapes[inst.Shape]
	material := scn.Materials[inst.Material]

	normal := inst.Frame.TransformDirection(shape.EvalNormal(isec.Element, isec.UV))
	outgoing := ray.Direction.Neg()
	return material.Color.Mul(normal.Dot(outgoing)).Vec4(1)
}

// shadeNormal visualizes world space shading normals remapped to [0, 1].
func shadeNormal(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		return math.Vec4{}
	}

	inst := scn.Instances[isec.Instance]
	shape := scn.Shapes[inst.Shape]

	normal := inst.Frame.TransformDirection(shape.EvalNormal(isec.Element, isec.UV))
	return normal.Mul(0.5).Add(math.Vec3{0.5, 0.5, 0.5}).Vec4(1)
}

// shadeTexcoord visualizes texture coordinates wrapped into [0, 1).
func shadeTexcoord(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		return math.Vec4{}
	}

	inst := scn.Instances[isec.Instance]
	shape := scn.Shapes[inst.Shape]

	texcoord := shape.EvalTexcoord(isec.Element, isec.UV)
	return math.Vec4{wrapUnit(texcoord[0]), wrapUnit(texcoord[1]), 0, 1}
}

// wrapUnit maps v into [0, 1), keeping negative inputs on the same cycle.
func wrapUnit(v float32) float32 {
	w := math32.Mod(v, 1)
	if w < 0 {
		w++
	}
	return w
}

// shadeColor visualizes the base material color without any lighting.
func shadeColor(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		return math.Vec4{}
	}

	inst := scn.Instances[isec.Instance]
	material := scn.Materials[inst.Material]
	return material.Color.Vec4(1)
}

// shadeToon quantizes camera facing intensity into flat bands, then boosts
// saturation and contrast for a cel shaded look.
func shadeToon(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		return math.Vec4{}
	}

	inst := scn.Instances[isec.Instance]
	shape := scn.Shapes[inst.Shape]
	material := scn.Materials[inst.Material]

	normal := inst.Frame.TransformDirection(shape.EvalNormal(isec.Element, isec.UV))
	texcoord := shape.EvalTexcoord(isec.Element, isec.UV)
	outgoing := ray.Direction.Neg()

	color := material.Color.MulVec(material.ColorTex.Eval(texcoord, false, false, false).XYZ())

	intensity := outgoing.Dot(normal)
	if intensity < 0 {
		intensity = 0
	}
	switch {
	case intensity > 0.98:
		color = color.MulVec(math.Vec3{0.8, 0.8, 0.8})
	case intensity > 0.75:
		color = color.MulVec(math.Vec3{0.7, 0.7, 0.7})
	case intensity > 0.5:
		color = color.MulVec(math.Vec3{0.6, 0.5, 0.5})
	}

	color = math.Saturate(color, 0.75, math.Vec3{1.0 / 3, 1.0 / 3, 1.0 / 3})
	for c := range color {
		color[c] *= math.Gain(color[c], 0.4)
	}
	return color.Vec4(1)
}

// shadeFrosted is a matte path tracer that swaps the base color for the
// material's color texture inside a frost band keyed on the world normal
// height. Thin materials frost all over.
func shadeFrosted(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		return scn.EvalEnvironment(ray.Direction).Vec4(1)
	}

	inst := scn.Instances[isec.Instance]
	shape := scn.Shapes[inst.Shape]
	material := scn.Materials[inst.Material]

	position := inst.Frame.TransformPoint(shape.EvalPosition(isec.Element, isec.UV))
	normal := inst.Frame.TransformDirection(shape.EvalNormal(isec.Element, isec.UV))
	texcoord := shape.EvalTexcoord(isec.Element, isec.UV)

	radiance := material.Emission
	if bounce >= params.Bounces {
		return radiance.Vec4(1)
	}

	bottom := float32(0.2)
	frost := math32.Max(0, (bottom+1)*(normal[1]-bottom))
	color := material.Color.Vec4(1)
	if material.Thin || (frost >= 0.30 && frost <= 1) {
		color = material.ColorTex.Eval(texcoord, false, false, false)
	}

	incoming := math.SampleHemisphere(normal, rng.Float2())
	radiance = radiance.Add(color.XYZ().Mul(2 * math32.Pi).Div(math32.Pi).
		MulVec(shadeFrosted(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ().
			Mul(normal.Dot(incoming))))
	return radiance.Vec4(1)
}
