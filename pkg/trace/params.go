// Package trace renders a scene into a progressively refined image by
// shooting jittered camera rays and accumulating per-pixel radiance means.
package trace

import "fmt"

// Shader selects the shading algorithm run for every camera ray.
type Shader int

const (
	// ShaderRaytrace is the stochastic path tracer with the full material set.
	ShaderRaytrace Shader = iota
	// ShaderEyelight shades with a light attached to the camera.
	ShaderEyelight
	// ShaderNormal visualizes world space shading normals.
	ShaderNormal
	// ShaderTexcoord visualizes texture coordinates in the red green channels.
	ShaderTexcoord
	// ShaderColor visualizes the base material color.
	ShaderColor
	// ShaderToon shades with banded cartoon lighting.
	ShaderToon
	// ShaderFrosted is a diffuse tracer that whitens upward facing surfaces.
	ShaderFrosted
)

// String returns the parseable name of the shader.
func (s Shader) String() string {
	switch s {
	case ShaderRaytrace:
		return "raytrace"
	case ShaderEyelight:
		return "eyelight"
	case ShaderNormal:
		return "normal"
	case ShaderTexcoord:
		return "texcoord"
	case ShaderColor:
		return "color"
	case ShaderToon:
		return "toon"
	case ShaderFrosted:
		return "frosted"
	default:
		return "unknown"
	}
}

// ParseShader maps a shader name to its constant.
func ParseShader(name string) (Shader, error) {
	switch name {
	case "raytrace":
		return ShaderRaytrace, nil
	case "eyelight":
		return ShaderEyelight, nil
	case "normal":
		return ShaderNormal, nil
	case "texcoord":
		return ShaderTexcoord, nil
	case "color":
		return ShaderColor, nil
	case "toon":
		return ShaderToon, nil
	case "frosted":
		return ShaderFrosted, nil
	}
	return 0, fmt.Errorf("unknown shader %q", name)
}

// Params configures a render. Zero values are not useful; start from
// DefaultParams.
type Params struct {
	Resolution int
	Samples    int
	Bounces    int
	Shader     Shader
	Seed       uint64
	Clamp      float32
	NoParallel bool
	Workers    int
}

// DefaultParams returns the standard render settings.
func DefaultParams() Params {
	return Params{
		Resolution: 720,
		Samples:    256,
		Bounces:    8,
		Shader:     ShaderRaytrace,
		Seed:       961748941,
		Clamp:      100,
	}
}
