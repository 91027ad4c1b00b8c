// Package loaders reads external assets into a scene: Wavefront OBJ models
// with their material libraries, and PNG, JPEG or Radiance HDR images as
// textures.
package loaders

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe" // Radiance HDR decoder

	"github.com/radiant-render/radiant/pkg/log"
	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

var logger = log.New("loaders")

// LoadTexture reads the image file at path into a new texture owned by scn.
// Radiance HDR images keep their linear float pixels; everything else is
// stored as 8 bit sRGB data and decoded when sampled.
func LoadTexture(scn *scene.Scene, path string) (*scene.Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	tex := scn.AddTexture()
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if hdrImg, ok := img.(hdr.Image); ok {
		pixels := make([]math.Vec4, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := hdrImg.HDRAt(x+bounds.Min.X, y+bounds.Min.Y).HDRRGBA()
				pixels[y*width+x] = math.Vec4{float32(r), float32(g), float32(b), 1}
			}
		}
		tex.SetHDR(width, height, pixels)
		return tex, nil
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	tex.SetLDR(width, height, rgba.Pix)
	return tex, nil
}
