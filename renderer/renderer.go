package renderer

import "github.com/lmarchetti/raytracer/scene"

// Renderer renders successive frames of a scene into a Framebuffer.
type Renderer interface {
	// RenderFrame renders one frame synchronously and returns its stats.
	RenderFrame(s *scene.Scene) (FrameStats, error)

	// Framebuffer returns the buffer the most recent frame was written
	// into.
	Framebuffer() *Framebuffer

	// Close releases any resources the renderer holds.
	Close()
}
