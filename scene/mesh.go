package scene

import "github.com/lmarchetti/raytracer/types"

// TriangleMesh owns an immutable authored geometry (positions/indices/
// normals) plus a per-instance rigid transform. Its transformed arrays and
// BVH are rebuilt whenever the transform changes; the BVH topology itself is
// built once and only refit afterwards.
type TriangleMesh struct {
	// Authored, immutable arrays.
	Positions []types.Vector3
	Indices   []int // triples of position indices, one triple per triangle
	Normals   []types.Vector3

	CullMode      CullMode
	MaterialIndex int

	// Per-instance rigid transform.
	Translation types.Vector3
	Rotation    float32 // yaw, radians, around Y only
	Scale       types.Vector3

	// Derived, recomputed by UpdateTransforms.
	TransformedPositions []types.Vector3
	TransformedNormals   []types.Vector3

	bvhNodes  []BVHNode
	rootIndex int
	nodesUsed int
}

// NewTriangleMesh builds a mesh from authored arrays with an identity
// transform, then builds its BVH. positions/indices/normals must satisfy
// len(indices) == 3*len(normals).
func NewTriangleMesh(positions []types.Vector3, indices []int, normals []types.Vector3, cull CullMode, materialIndex int) *TriangleMesh {
	m := &TriangleMesh{
		Positions:     positions,
		Indices:       indices,
		Normals:       normals,
		CullMode:      cull,
		MaterialIndex: materialIndex,
		Scale:         types.XYZ(1, 1, 1),
	}
	m.UpdateTransforms()
	return m
}

// TriangleCount returns the number of triangles in the mesh.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Normals)
}

// transformMatrix composes rotation, translation and scale the way the
// source does: rotation * translation * scale.
func (m *TriangleMesh) transformMatrix() types.Mat4 {
	rot := types.RotationY4(m.Rotation)
	trans := types.Translation4(m.Translation)
	scale := types.Scale4(m.Scale)
	return rot.Mul4(trans).Mul4(scale)
}

// UpdateTransforms recomputes TransformedPositions/TransformedNormals from
// the current rigid transform and refits the BVH (or builds it the first
// time). Call this whenever Translation, Rotation or Scale changes.
func (m *TriangleMesh) UpdateTransforms() {
	xform := m.transformMatrix()

	if m.TransformedPositions == nil {
		m.TransformedPositions = make([]types.Vector3, len(m.Positions))
	}
	if m.TransformedNormals == nil {
		m.TransformedNormals = make([]types.Vector3, len(m.Normals))
	}

	for i, p := range m.Positions {
		m.TransformedPositions[i] = xform.TransformPoint(p)
	}
	for i, n := range m.Normals {
		m.TransformedNormals[i] = xform.TransformNormal(n)
	}

	if m.bvhNodes == nil {
		m.buildBVH()
	} else {
		m.refitBVH()
	}
}

// TriangleVertices returns the transformed vertices of triangle i.
func (m *TriangleMesh) TriangleVertices(i int) (v0, v1, v2 types.Vector3) {
	base := i * 3
	return m.TransformedPositions[m.Indices[base]],
		m.TransformedPositions[m.Indices[base+1]],
		m.TransformedPositions[m.Indices[base+2]]
}

// centroid returns the centroid of triangle i in transformed space.
func (m *TriangleMesh) centroid(i int) types.Vector3 {
	v0, v1, v2 := m.TriangleVertices(i)
	return v0.Add(v1).Add(v2).Mul(1.0 / 3.0)
}

// swapTriangle swaps all per-triangle state for triangles a and b together:
// their index triples, and their entries in both the authored and
// transformed normals arrays. The authored positions array is never
// permuted -- triangles are addressed through Indices.
func (m *TriangleMesh) swapTriangle(a, b int) {
	if a == b {
		return
	}
	ai, bi := a*3, b*3
	m.Indices[ai], m.Indices[bi] = m.Indices[bi], m.Indices[ai]
	m.Indices[ai+1], m.Indices[bi+1] = m.Indices[bi+1], m.Indices[ai+1]
	m.Indices[ai+2], m.Indices[bi+2] = m.Indices[bi+2], m.Indices[ai+2]

	m.Normals[a], m.Normals[b] = m.Normals[b], m.Normals[a]
	m.TransformedNormals[a], m.TransformedNormals[b] = m.TransformedNormals[b], m.TransformedNormals[a]
}
