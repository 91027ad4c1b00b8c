package trace

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

// rngStreamSeed seeds the generator that deals one stream id per pixel.
const rngStreamSeed = 1301081

// State holds the per-pixel buffers of a progressive render. Render always
// contains the current mean and can be read between sweeps.
type State struct {
	Width        int
	Height       int
	Accumulation []math.Vec4
	Samples      []int
	RNGs         []math.RNG
	Render       []math.Vec4
}

// NewState allocates buffers sized from the camera film aspect at the
// requested resolution and deals every pixel its own random stream. The
// same seed always produces the same streams, so renders are repeatable.
func NewState(camera *scene.Camera, params Params) *State {
	var width, height int
	if camera.Film[0] > camera.Film[1] {
		width = params.Resolution
		height = roundToInt(float32(params.Resolution) * camera.Film[1] / camera.Film[0])
	} else {
		width = roundToInt(float32(params.Resolution) * camera.Film[0] / camera.Film[1])
		height = params.Resolution
	}

	st := &State{
		Width:        width,
		Height:       height,
		Accumulation: make([]math.Vec4, width*height),
		Samples:      make([]int, width*height),
		RNGs:         make([]math.RNG, width*height),
		Render:       make([]math.Vec4, width*height),
	}
	initRNG := math.NewRNG(rngStreamSeed)
	for i := range st.RNGs {
		st.RNGs[i] = math.NewRNGStream(params.Seed, uint64(initRNG.Int(1<<31)/2+1))
	}
	return st
}

func roundToInt(x float32) int {
	return int(math32.Floor(x + 0.5))
}

// index maps pixel coordinates to the buffer offset.
func (st *State) index(i, j int) int {
	return j*st.Width + i
}

// TotalSamples returns the samples completed for every pixel.
func (st *State) TotalSamples() int {
	if len(st.Samples) == 0 {
		return 0
	}
	total := st.Samples[0]
	for _, s := range st.Samples[1:] {
		if s < total {
			total = s
		}
	}
	return total
}

// Image converts the current mean to an 8 bit sRGB image.
func (st *State) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, st.Width, st.Height))
	for j := 0; j < st.Height; j++ {
		for i := 0; i < st.Width; i++ {
			c := math.RGBToSRGBA(st.Render[st.index(i, j)])
			img.SetRGBA(i, j, color.RGBA{
				R: math.FloatToByte(c[0]),
				G: math.FloatToByte(c[1]),
				B: math.FloatToByte(c[2]),
				A: math.FloatToByte(c[3]),
			})
		}
	}
	return img
}
