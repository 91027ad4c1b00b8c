package trace

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

// RenderSample renders one jittered sample for pixel (i, j) and folds it
// into the pixel mean. Non-finite components are dropped and over-bright
// results are scaled down to the clamp, preserving the channel ratios.
func (r *Renderer) RenderSample(st *State, i, j int) {
	idx := st.index(i, j)
	rng := &st.RNGs[idx]

	puv := rng.Float2()
	uv := math.Vec2{
		(float32(i) + puv[0]) / float32(st.Width),
		(float32(j) + puv[1]) / float32(st.Height),
	}
	shaded := r.shade(r.scene, r.camera.Ray(uv), 0, rng, r.params)

	for c := range shaded {
		if math32.IsNaN(shaded[c]) || math32.IsInf(shaded[c], 0) {
			shaded[c] = 0
		}
	}
	if m := shaded.XYZ().MaxComponent(); m > r.params.Clamp {
		scale := r.params.Clamp / m
		shaded = math.Vec4{shaded[0] * scale, shaded[1] * scale, shaded[2] * scale, shaded[3]}
	}

	st.Accumulation[idx] = st.Accumulation[idx].Add(shaded)
	st.Samples[idx]++
	st.Render[idx] = st.Accumulation[idx].Div(float32(st.Samples[idx]))
}

// RenderPass sweeps one sample over every pixel. Rows are handed out to
// workers unless sequential rendering is forced; either schedule produces
// the same image because each pixel owns its random stream.
func (r *Renderer) RenderPass(st *State) {
	if r.params.NoParallel || r.params.Workers <= 1 {
		for j := 0; j < st.Height; j++ {
			for i := 0; i < st.Width; i++ {
				r.RenderSample(st, i, j)
			}
		}
		return
	}

	workers := r.params.Workers
	if workers > st.Height {
		workers = st.Height
	}
	var row atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				j := int(row.Add(1)) - 1
				if j >= st.Height {
					return
				}
				for i := 0; i < st.Width; i++ {
					r.RenderSample(st, i, j)
				}
			}
		}()
	}
	wg.Wait()
}

// ProgressFunc reports completed sweeps.
type ProgressFunc func(pass, total int)

// Render runs the configured number of sweeps over st. progress may be nil.
func (r *Renderer) Render(st *State, progress ProgressFunc) {
	start := time.Now()
	for pass := 0; pass < r.params.Samples; pass++ {
		r.RenderPass(st)
		if progress != nil {
			progress(pass+1, r.params.Samples)
		}
	}
	logger.Debugf("rendered %d passes at %dx%d in %s",
		r.params.Samples, st.Width, st.Height, time.Since(start))
}
