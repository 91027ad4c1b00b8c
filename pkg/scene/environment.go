package scene

import (
	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

// Environment is an infinitely distant emitter sampled by rays that leave
// the scene. The emission texture is an equirectangular latitude-longitude
// map oriented by the environment frame.
type Environment struct {
	Frame       math.Frame
	Emission    math.Vec3
	EmissionTex *Texture
}

// EvalEnvironment accumulates the emission of every environment along a
// world-space direction.
func (s *Scene) EvalEnvironment(direction math.Vec3) math.Vec3 {
	var emission math.Vec3
	for _, env := range s.Environments {
		wl := env.Frame.Inverse(false).TransformDirection(direction)
		texcoord := math.Vec2{
			math32.Atan2(wl[2], wl[0]) / (2 * math32.Pi),
			math32.Acos(math.Clamp(wl[1], -1, 1)) / math32.Pi,
		}
		if texcoord[0] < 0 {
			texcoord[0]++
		}
		emission = emission.Add(env.Emission.MulVec(env.EmissionTex.Eval(texcoord, false, false, false).XYZ()))
	}
	return emission
}
