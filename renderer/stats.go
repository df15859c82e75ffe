package renderer

import "time"

// FrameStats summarizes one completed RenderFrame call.
type FrameStats struct {
	Width, Height uint32
	NumWorkers    uint32
	RaysShaded    uint64
	RenderTime    time.Duration
}

// PixelsPerSecond is a convenience derived stat for reporting.
func (s FrameStats) PixelsPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Width*s.Height) / s.RenderTime.Seconds()
}
