package renderer

import "github.com/lmarchetti/raytracer/types"

// Framebuffer is a flat RGBA8 pixel buffer, row-major, origin at the
// top-left. Pixels are disjoint per index, so concurrent workers can write
// to distinct indices without synchronization.
type Framebuffer struct {
	Width, Height uint32
	Pixels        []byte // 4 bytes per pixel: R,G,B,A
}

// NewFramebuffer allocates a buffer of the given dimensions with alpha
// preset to opaque.
func NewFramebuffer(width, height uint32) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]byte, int(width)*int(height)*4),
	}
	for i := 3; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i] = 0xff
	}
	return fb
}

// Set writes a tone-mapped color into pixel (x,y). color is expected to
// already be in [0,1] per channel (see types.ColorRGB.MaxToOne/Clamp01).
func (fb *Framebuffer) Set(x, y uint32, c types.ColorRGB) {
	i := (y*fb.Width + x) * 4
	fb.Pixels[i+0] = toByte(c.R())
	fb.Pixels[i+1] = toByte(c.G())
	fb.Pixels[i+2] = toByte(c.B())
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}
