package types

import "math"

// Mat4 is a 4x4 matrix stored row-major as a flat 16-element array, so it
// can be passed around without pointer indirection.
type Mat4 [16]float32

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Basis4 builds a camera-to-world matrix from an orthonormal basis
// (right, up, forward) and a translation (the camera origin), with the
// basis vectors stored as columns and the origin in the translation column
// per spec: camera_to_world = (right, up, forward, origin).
func Basis4(right, up, forward, origin Vector3) Mat4 {
	return Mat4{
		right[0], up[0], forward[0], origin[0],
		right[1], up[1], forward[1], origin[1],
		right[2], up[2], forward[2], origin[2],
		0, 0, 0, 1,
	}
}

// RotationYawPitch builds a rotation matrix for the given pitch (around X)
// and yaw (around Y), matching the source's Matrix::CreateRotation(pitch,
// yaw, 0) convention: pitch is applied first, then yaw.
func RotationYawPitch(pitch, yaw float32) Mat4 {
	sp, cp := float32(math.Sin(float64(pitch))), float32(math.Cos(float64(pitch)))
	sy, cy := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))

	rx := Mat4{
		1, 0, 0, 0,
		0, cp, -sp, 0,
		0, sp, cp, 0,
		0, 0, 0, 1,
	}
	ry := Mat4{
		cy, 0, sy, 0,
		0, 1, 0, 0,
		-sy, 0, cy, 0,
		0, 0, 0, 1,
	}
	return ry.Mul4(rx)
}

// Mul4 returns m * o.
func (m Mat4) Mul4(o Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// TransformPoint applies rotation, scale and translation.
func (m Mat4) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// TransformVector applies rotation and scale, omitting translation.
func (m Mat4) TransformVector(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// TransformNormal transforms a normal by the matrix and renormalizes.
// This assumes uniform scale (see DESIGN.md open question on non-uniform
// scale: a correct port would use the inverse-transpose here instead).
func (m Mat4) TransformNormal(v Vector3) Vector3 {
	return m.TransformVector(v).Normalize()
}

// Translation4 builds a pure translation matrix.
func Translation4(t Vector3) Mat4 {
	m := Ident4()
	m[3], m[7], m[11] = t[0], t[1], t[2]
	return m
}

// Scale4 builds a pure (possibly non-uniform) scale matrix.
func Scale4(s Vector3) Mat4 {
	m := Ident4()
	m[0], m[5], m[10] = s[0], s[1], s[2]
	return m
}

// RotationY4 builds a rotation matrix around the Y axis.
func RotationY4(yaw float32) Mat4 {
	s, c := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}
