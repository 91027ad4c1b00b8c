package math

import "github.com/chewxy/math32"

// SRGBToRGB decodes one sRGB encoded channel to linear.
func SRGBToRGB(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// RGBToSRGB encodes one linear channel to sRGB.
func RGBToSRGB(rgb float32) float32 {
	if rgb <= 0.0031308 {
		return rgb * 12.92
	}
	return 1.055*math32.Pow(rgb, 1/2.4) - 0.055
}

// SRGBToRGBA decodes the color channels of c, leaving alpha linear.
func SRGBToRGBA(c Vec4) Vec4 {
	return Vec4{SRGBToRGB(c[0]), SRGBToRGB(c[1]), SRGBToRGB(c[2]), c[3]}
}

// RGBToSRGBA encodes the color channels of c, leaving alpha linear.
func RGBToSRGBA(c Vec4) Vec4 {
	return Vec4{RGBToSRGB(c[0]), RGBToSRGB(c[1]), RGBToSRGB(c[2]), c[3]}
}

// ByteToFloat converts an 8 bit channel to [0, 1].
func ByteToFloat(b uint8) float32 {
	return float32(b) / 255
}

// FloatToByte converts a [0, 1] channel to 8 bits.
func FloatToByte(f float32) uint8 {
	v := int(f * 256)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Bias remaps a in [0, 1] by the bias amount.
func Bias(a, bias float32) float32 {
	return a / ((1/bias-2)*(1-a) + 1)
}

// Gain applies a bias-based gain curve to a in [0, 1].
func Gain(a, gain float32) float32 {
	if a < 0.5 {
		return Bias(a*2, gain) / 2
	}
	return Bias(a*2-1, 1-gain)/2 + 0.5
}

// Saturate scales the distance of rgb from its weighted grey level, clamping
// the result to non-negative values.
func Saturate(rgb Vec3, saturation float32, weights Vec3) Vec3 {
	grey := weights.Dot(rgb)
	g := Vec3{grey, grey, grey}
	return MaxVec3(Vec3{}, g.Add(rgb.Sub(g).Mul(saturation*2)))
}
