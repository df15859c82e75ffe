package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/lmarchetti/raytracer/log"
	"github.com/lmarchetti/raytracer/scene"
)

var dispatchLogger = log.New("renderer")

// cpuRenderer dispatches one task per pixel over [0, width*height) across a
// pool of worker goroutines. The scene is read-only for the duration of a
// frame, so workers never need to coordinate beyond claiming disjoint pixel
// indices.
type cpuRenderer struct {
	opts Options
	fb   *Framebuffer
}

// New builds a Renderer that walks pixels with a worker-pool dispatcher.
func New(opts Options) (Renderer, error) {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrEmptyFrame
	}
	return &cpuRenderer{
		opts: opts,
		fb:   NewFramebuffer(opts.FrameW, opts.FrameH),
	}, nil
}

func (r *cpuRenderer) Framebuffer() *Framebuffer {
	return r.fb
}

func (r *cpuRenderer) Close() {}

// RenderFrame dispatches every pixel index to the worker pool and blocks
// until the whole frame is done; there is no mid-frame cancellation.
func (r *cpuRenderer) RenderFrame(s *scene.Scene) (FrameStats, error) {
	if s == nil {
		return FrameStats{}, ErrSceneNotDefined
	}
	if s.Camera == nil {
		return FrameStats{}, ErrCameraNotDefined
	}

	numWorkers := int(r.opts.NumWorkers)
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	total := int(r.opts.FrameW) * int(r.opts.FrameH)
	indices := make(chan int, numWorkers)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range indices {
				px := uint32(idx) % r.opts.FrameW
				py := uint32(idx) / r.opts.FrameW
				r.fb.Set(px, py, renderPixel(s, r.opts, px, py))
			}
		}()
	}

	for i := 0; i < total; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	elapsed := time.Since(start)
	dispatchLogger.Debugf("rendered %dx%d frame with %d workers in %s", r.opts.FrameW, r.opts.FrameH, numWorkers, elapsed)

	return FrameStats{
		Width:      r.opts.FrameW,
		Height:     r.opts.FrameH,
		NumWorkers: uint32(numWorkers),
		RaysShaded: uint64(total),
		RenderTime: elapsed,
	}, nil
}
