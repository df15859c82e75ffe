package types

// ColorRGB is a 3-component linear color, stored the same way Vector3 is so
// channel access by index (0=r, 1=g, 2=b) works the same way axis access
// does on a vector.
type ColorRGB [3]float32

var (
	Black = ColorRGB{0, 0, 0}
	White = ColorRGB{1, 1, 1}
)

func RGB(r, g, b float32) ColorRGB {
	return ColorRGB{r, g, b}
}

func (c ColorRGB) R() float32 { return c[0] }
func (c ColorRGB) G() float32 { return c[1] }
func (c ColorRGB) B() float32 { return c[2] }

func (c ColorRGB) Add(o ColorRGB) ColorRGB {
	return ColorRGB{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

func (c ColorRGB) Sub(o ColorRGB) ColorRGB {
	return ColorRGB{c[0] - o[0], c[1] - o[1], c[2] - o[2]}
}

// MulColor multiplies component-wise.
func (c ColorRGB) MulColor(o ColorRGB) ColorRGB {
	return ColorRGB{c[0] * o[0], c[1] * o[1], c[2] * o[2]}
}

func (c ColorRGB) Mul(s float32) ColorRGB {
	return ColorRGB{c[0] * s, c[1] * s, c[2] * s}
}

func (c ColorRGB) Lerp(o ColorRGB, t float32) ColorRGB {
	return c.Mul(1 - t).Add(o.Mul(t))
}

// MaxComponent returns the largest of the three channels.
func (c ColorRGB) MaxComponent() float32 {
	m := c[0]
	if c[1] > m {
		m = c[1]
	}
	if c[2] > m {
		m = c[2]
	}
	return m
}

// MaxToOne divides every channel by the largest channel whenever any
// channel exceeds 1, which keeps hue (the ratio between channels) intact
// while clamping the brightest channel to exactly 1.
func (c ColorRGB) MaxToOne() ColorRGB {
	m := c.MaxComponent()
	if m > 1 {
		return c.Mul(1 / m)
	}
	return c
}

// Clamp01 clamps each channel into [0,1] independently.
func (c ColorRGB) Clamp01() ColorRGB {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return ColorRGB{clamp(c[0]), clamp(c[1]), clamp(c[2])}
}
