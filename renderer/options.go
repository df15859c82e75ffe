package renderer

import "github.com/lmarchetti/raytracer/scene"

// Options configures a render pass. Zero-value Options is not usable;
// callers should start from DefaultOptions.
type Options struct {
	// Frame dimensions in pixels.
	FrameW uint32
	FrameH uint32

	// Number of worker goroutines used to dispatch pixels. Zero means
	// "use runtime.NumCPU()".
	NumWorkers uint32

	// Which lighting mode calculateFinalColor uses to compose a hit.
	LightingMode scene.LightingMode

	// Whether shadow rays are cast at all; disabling this matches every
	// light unconditionally, skipping the occlusion test entirely.
	ShadowsEnabled bool
}

// DefaultOptions returns a usable set of options for the given frame size.
func DefaultOptions(width, height uint32) Options {
	return Options{
		FrameW:         width,
		FrameH:         height,
		LightingMode:   scene.LightingCombined,
		ShadowsEnabled: true,
	}
}
