package scene

import "github.com/radiant-render/radiant/pkg/math"

// Material describes how a surface emits and scatters light. Scalar
// parameters are modulated by the matching texture where one is set; nil
// textures act as white.
type Material struct {
	Emission     math.Vec3
	Color        math.Vec3
	Specular     float32
	Roughness    float32
	Metallic     float32
	Transmission float32
	Scattering   math.Vec3
	Anisotropy   float32
	TrDepth      float32
	IOR          float32
	Opacity      float32
	Thin         bool

	EmissionTex     *Texture
	ColorTex        *Texture
	SpecularTex     *Texture
	RoughnessTex    *Texture
	MetallicTex     *Texture
	TransmissionTex *Texture
	ScatteringTex   *Texture
	OpacityTex      *Texture
}
