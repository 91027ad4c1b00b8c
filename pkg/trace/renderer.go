package trace

import (
	"fmt"
	"runtime"

	"github.com/radiant-render/radiant/pkg/log"
	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

var logger = log.New("trace")

// shadeFunc computes the radiance carried by one camera ray.
type shadeFunc func(scn *scene.Scene, ray math.Ray, bounce int, rng *math.RNG, params Params) math.Vec4

// Renderer drives progressive rendering of one camera view of one scene.
// It is safe for concurrent sweeps over disjoint rows; the per-pixel state
// lives in State, not here.
type Renderer struct {
	scene  *scene.Scene
	camera *scene.Camera
	params Params
	shade  shadeFunc
}

// New returns a renderer with the shader selection resolved up front. An
// unrecognized shader is a configuration error. A non-positive worker count
// defaults to the number of CPUs.
func New(scn *scene.Scene, camera *scene.Camera, params Params) (*Renderer, error) {
	var shade shadeFunc
	switch params.Shader {
	case ShaderRaytrace:
		shade = shadeRaytrace
	case ShaderEyelight:
		shade = shadeEyelight
	case ShaderNormal:
		shade = shadeNormal
	case ShaderTexcoord:
		shade = shadeTexcoord
	case ShaderColor:
		shade = shadeColor
	case ShaderToon:
		shade = shadeToon
	case ShaderFrosted:
		shade = shadeFrosted
	default:
		return nil, fmt.Errorf("unknown shader %d", int(params.Shader))
	}
	if params.Workers <= 0 {
		params.Workers = runtime.NumCPU()
	}
	return &Renderer{scene: scn, camera: camera, params: params, shade: shade}, nil
}

// Params returns the settings the renderer was built with, including the
// resolved worker count.
func (r *Renderer) Params() Params {
	return r.params
}
