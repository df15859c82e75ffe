package scene

import "github.com/lmarchetti/raytracer/types"

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func vecAlmostEqual(a, b types.Vector3, eps float32) bool {
	return almostEqual(a[0], b[0], eps) && almostEqual(a[1], b[1], eps) && almostEqual(a[2], b[2], eps)
}
