package trace

import (
	"testing"

	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

func TestNewStateDimensions(t *testing.T) {
	tests := []struct {
		name   string
		aspect float32
		width  int
		height int
	}{
		{"landscape", 1.5, 120, 80},
		{"square", 1, 120, 120},
		{"portrait", 0.5, 60, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := &scene.Camera{}
			camera.SetLens(0.05, tt.aspect, 0.036)
			params := DefaultParams()
			params.Resolution = 120

			st := NewState(camera, params)
			if st.Width != tt.width || st.Height != tt.height {
				t.Errorf("state is %dx%d, expected %dx%d", st.Width, st.Height, tt.width, tt.height)
			}
			size := tt.width * tt.height
			if len(st.Accumulation) != size || len(st.Samples) != size ||
				len(st.RNGs) != size || len(st.Render) != size {
				t.Error("buffer sizes do not match the pixel count")
			}
		})
	}
}

func TestNewStateStreams(t *testing.T) {
	camera := &scene.Camera{}
	camera.SetLens(0.05, 1.5, 0.036)
	params := DefaultParams()
	params.Resolution = 24

	first := NewState(camera, params)
	second := NewState(camera, params)
	for i := range first.RNGs {
		if first.RNGs[i] != second.RNGs[i] {
			t.Fatalf("stream %d differs between identically seeded states", i)
		}
	}

	if first.RNGs[0] == first.RNGs[1] {
		t.Error("neighboring pixels share a random stream")
	}

	params.Seed = 12345
	reseeded := NewState(camera, params)
	if reseeded.RNGs[0] == first.RNGs[0] {
		t.Error("different seeds produced the same stream")
	}
}

func TestStateTotalSamples(t *testing.T) {
	st := &State{Width: 2, Height: 1, Samples: []int{3, 5}}
	if got := st.TotalSamples(); got != 3 {
		t.Errorf("TotalSamples() = %d, expected the slowest pixel count 3", got)
	}

	empty := &State{}
	if got := empty.TotalSamples(); got != 0 {
		t.Errorf("TotalSamples() = %d on an empty state, expected 0", got)
	}
}

func TestStateImage(t *testing.T) {
	st := &State{
		Width:  2,
		Height: 1,
		Render: []math.Vec4{{1, 0, 0.5, 1}, {0, 0, 0, 0.5}},
	}

	img := st.Image()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("image is %dx%d, expected 2x1", b.Dx(), b.Dy())
	}

	first := img.RGBAAt(0, 0)
	if first.R != 255 || first.G != 0 || first.A != 255 {
		t.Errorf("first pixel = %v, expected saturated red with opaque alpha", first)
	}
	if first.B != 188 {
		t.Errorf("first pixel blue = %d, expected 188 after sRGB encoding", first.B)
	}

	second := img.RGBAAt(1, 0)
	if second.R != 0 || second.G != 0 || second.B != 0 || second.A != 128 {
		t.Errorf("second pixel = %v, expected black at half alpha", second)
	}
}
