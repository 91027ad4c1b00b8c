package trace

import (
	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

// shadeRaytrace estimates radiance with one stochastic path per call. Each
// hit adds the surface emission and recurses along a single direction drawn
// from the material lobe: refractive or thin transmission gated by Fresnel,
// mirror or microfacet metal, Fresnel-layered plastic, or diffuse.
func shadeRaytrace(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4 {
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

	// orient the normal toward the ray: points always face it, lines bend
	// around their tangent, triangles flip on backface hits
	outgoing := ray.Direction.Neg()
	switch {
	case len(shape.Points) > 0:
		normal = outgoing
	case len(shape.Lines) > 0:
		normal = math.Orthonormalize(outgoing, normal)
	case len(shape.Triangles) > 0:
		if outgoing.Dot(normal) < 0 {
			normal = normal.Neg()
		}
	}

	opacity := material.Opacity * material.OpacityTex.Eval(texcoord, false, false, false)[0]
	if rng.Float() > opacity {
		if bounce >= params.Bounces {
			return math.Vec4{0, 0, 0, 1}
		}
		return shadeRaytrace(scn, math.NewRay(position, ray.Direction), bounce+1, rng, params)
	}

	radiance := material.Emission
	if bounce >= params.Bounces {
		return radiance.Vec4(1)
	}

	color := material.Color.Vec4(1).MulVec(material.ColorTex.Eval(texcoord, false, false, false))
	transmission := material.Transmission * material.TransmissionTex.Eval(texcoord, false, false, false)[0]
	roughness := material.Roughness * material.RoughnessTex.Eval(texcoord, false, false, false)[0]
	metallic := material.Metallic * material.MetallicTex.Eval(texcoord, false, false, false)[0]
	specular := material.Specular * material.SpecularTex.Eval(texcoord, false, false, false)[0]

	dielectric := math.Vec3{0.04, 0.04, 0.04}

	switch {
	case transmission > 0 && !material.Thin:
		// refractive glass
		if rng.Float() < math.FresnelSchlick(dielectric, normal, outgoing)[0] {
			incoming := math.Reflect(outgoing, normal)
			radiance = radiance.Add(
				shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ())
		} else {
			eta := math.ReflectivityToEta(color.XYZ())[0]
			incoming := math.Refract(outgoing, normal, 1/eta)
			radiance = radiance.Add(color.XYZ().MulVec(
				shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ()))
		}

	case transmission > 0:
		// thin sheet: reflect or pass straight through
		if rng.Float() < math.FresnelSchlick(dielectric, normal, outgoing)[0] {
			incoming := math.Reflect(outgoing, normal)
			radiance = radiance.Add(
				shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ())
		} else {
			radiance = radiance.Add(color.XYZ().MulVec(
				shadeRaytrace(scn, math.NewRay(position, ray.Direction), bounce+1, rng, params).XYZ()))
		}

	case metallic > 0 && roughness == 0:
		// polished metal, deterministic mirror direction
		incoming := math.Reflect(outgoing, normal)
		radiance = radiance.Add(math.FresnelSchlick(color.XYZ(), normal, outgoing).MulVec(
			shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ()))

	case metallic > 0:
		// rough metal, microfacet lobe over a uniform hemisphere sample
		roughness *= roughness
		incoming := math.SampleHemisphere(normal, rng.Float2())
		halfway := outgoing.Add(incoming).Normalize()
		weight := 2 * math32.Pi *
			math.MicrofacetDistribution(roughness, normal, halfway) *
			math.MicrofacetShadowing(roughness, normal, halfway, outgoing, incoming) /
			(4 * normal.Dot(outgoing) * normal.Dot(incoming))
		radiance = radiance.Add(math.FresnelSchlick(color.XYZ(), halfway, outgoing).Mul(weight).
			MulVec(shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ().
				Mul(normal.Dot(incoming))))

	case specular > 0:
		// plastic: diffuse base under a Fresnel weighted specular layer
		roughness *= roughness
		incoming := math.SampleHemisphere(normal, rng.Float2())
		halfway := outgoing.Add(incoming).Normalize()
		fresnel := math.FresnelSchlick(dielectric, halfway, outgoing)[0]
		lobe := fresnel *
			math.MicrofacetDistribution(roughness, normal, halfway) *
			math.MicrofacetShadowing(roughness, normal, halfway, outgoing, incoming) /
			(4 * normal.Dot(outgoing) * normal.Dot(incoming))
		brdf := color.XYZ().Div(math32.Pi).Mul(1 - fresnel).Add(math.Vec3{lobe, lobe, lobe})
		radiance = radiance.Add(brdf.Mul(2 * math32.Pi).
			MulVec(shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ()).
			Mul(normal.Dot(incoming)))

	default:
		// matte
		incoming := math.SampleHemisphere(normal, rng.Float2())
		radiance = radiance.Add(color.XYZ().Mul(2 * math32.Pi).Div(math32.Pi).
			MulVec(shadeRaytrace(scn, math.NewRay(position, incoming), bounce+1, rng, params).XYZ().
				Mul(normal.Dot(incoming))))
	}

	return radiance.Vec4(1)
}
