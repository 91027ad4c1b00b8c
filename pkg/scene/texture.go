package scene

import (
	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

// Texture is a 2D image with exactly one of the two pixel buffers populated.
// LDR stores gamma-encoded RGBA bytes, HDR stores linear float pixels.
type Texture struct {
	Width  int
	Height int
	HDR    []math.Vec4
	LDR    []byte
}

// SetLDR stores gamma-encoded RGBA bytes, releasing any float buffer.
// pixels holds 4 bytes per texel in row-major order.
func (tex *Texture) SetLDR(width, height int, pixels []byte) {
	tex.Width, tex.Height = width, height
	tex.LDR = pixels
	tex.HDR = nil
}

// SetHDR stores linear float pixels, releasing any byte buffer.
func (tex *Texture) SetHDR(width, height int, pixels []math.Vec4) {
	tex.Width, tex.Height = width, height
	tex.HDR = pixels
	tex.LDR = nil
}

// Eval samples the texture at uv. A nil texture evaluates to opaque white.
// asLinear skips gamma decoding of byte texels, noInterp selects the nearest
// texel instead of bilinear filtering, and clampEdge clips coordinates to
// the texture border instead of tiling.
func (tex *Texture) Eval(uv math.Vec2, asLinear, noInterp, clampEdge bool) math.Vec4 {
	if tex == nil {
		return math.Vec4{1, 1, 1, 1}
	}

	width, height := float32(tex.Width), float32(tex.Height)
	var s, t float32
	if clampEdge {
		s = math.Clamp(uv[0], 0, 1) * width
		t = math.Clamp(uv[1], 0, 1) * height
	} else {
		s = math32.Mod(uv[0], 1) * width
		if s < 0 {
			s += width
		}
		t = math32.Mod(uv[1], 1) * height
		if t < 0 {
			t += height
		}
	}

	i := clampInt(int(s), 0, tex.Width-1)
	j := clampInt(int(t), 0, tex.Height-1)
	ii, jj := (i+1)%tex.Width, (j+1)%tex.Height
	u, v := s-float32(i), t-float32(j)

	if noInterp {
		return tex.lookup(i, j, asLinear)
	}

	return tex.lookup(i, j, asLinear).Mul((1 - u) * (1 - v)).
		Add(tex.lookup(i, jj, asLinear).Mul((1 - u) * v)).
		Add(tex.lookup(ii, j, asLinear).Mul(u * (1 - v))).
		Add(tex.lookup(ii, jj, asLinear).Mul(u * v))
}

// lookup fetches the texel at (i, j), decoding byte texels from sRGB unless
// asLinear is set.
func (tex *Texture) lookup(i, j int, asLinear bool) math.Vec4 {
	idx := j*tex.Width + i
	if len(tex.HDR) > 0 {
		return tex.HDR[idx]
	}
	color := math.Vec4{
		math.ByteToFloat(tex.LDR[4*idx+0]),
		math.ByteToFloat(tex.LDR[4*idx+1]),
		math.ByteToFloat(tex.LDR[4*idx+2]),
		math.ByteToFloat(tex.LDR[4*idx+3]),
	}
	if asLinear {
		return color
	}
	return math.SRGBToRGBA(color)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
