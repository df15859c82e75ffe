package scene

import (
	"math"

	"github.com/lmarchetti/raytracer/log"
	"github.com/lmarchetti/raytracer/types"
)

var bvhLogger = log.New("bvh")

// BVHNode is a 32-byte (when packed) flat BVH node. PrimCount > 0 marks a
// leaf covering triangles [LeftFirst, LeftFirst+PrimCount) of the mesh's
// triangle list; PrimCount == 0 marks an internal node whose children live
// at bvhNodes[LeftFirst] and bvhNodes[LeftFirst+1].
type BVHNode struct {
	Min, Max  types.Vector3
	LeftFirst int
	PrimCount int
}

func (n BVHNode) IsLeaf() bool {
	return n.PrimCount > 0
}

// halfSurfaceArea is the SAH scoring proxy used throughout this module: the
// sum xy+yz+zx rather than the true surface area 2*(xy+yz+zx). The constant
// factor of two cancels out of every cost comparison, so it is left out.
func halfSurfaceArea(min, max types.Vector3) float32 {
	e := max.Sub(min)
	return e[0]*e[1] + e[1]*e[2] + e[2]*e[0]
}

// buildBVH allocates 2*triangleCount-1 node slots, seeds a root leaf
// covering every triangle, and recursively subdivides it.
func (m *TriangleMesh) buildBVH() {
	n := m.TriangleCount()
	if n == 0 {
		m.bvhNodes = nil
		m.rootIndex = 0
		m.nodesUsed = 0
		return
	}

	m.bvhNodes = make([]BVHNode, 2*n-1)
	m.rootIndex = 0
	m.nodesUsed = 1
	m.bvhNodes[0] = BVHNode{LeftFirst: 0, PrimCount: n}
	m.updateLeafAABB(0)

	m.subdivide(0)
	bvhLogger.Debugf("bvh build: %d triangles, %d nodes used", n, m.nodesUsed)
}

// updateLeafAABB recomputes a leaf's bounding box from the current
// transformed positions of the triangles it covers.
func (m *TriangleMesh) updateLeafAABB(nodeIdx int) {
	node := &m.bvhNodes[nodeIdx]
	min := types.XYZ(posInf, posInf, posInf)
	max := types.XYZ(negInf, negInf, negInf)

	start := node.LeftFirst
	end := start + node.PrimCount
	for i := start; i < end; i++ {
		v0, v1, v2 := m.TriangleVertices(i)
		min = types.MinVec3(min, types.MinVec3(v0, types.MinVec3(v1, v2)))
		max = types.MaxVec3(max, types.MaxVec3(v0, types.MaxVec3(v1, v2)))
	}
	node.Min, node.Max = min, max
}

const (
	posInf = float32(math.MaxFloat32)
	negInf = -float32(math.MaxFloat32)
)

// subdivide implements the SAH split search: candidates are every
// triangle centroid in the node, on every axis; the
// best (axis,pos) minimizing |L|*area(L) + |R|*area(R) is selected, ties
// broken by earliest encountered. If no split improves on the parent's leaf
// cost, or the partition is degenerate, the node stays a leaf.
func (m *TriangleMesh) subdivide(nodeIdx int) {
	node := &m.bvhNodes[nodeIdx]
	if node.PrimCount <= 2 {
		return
	}

	bestAxis := -1
	var bestPos float32
	bestCost := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		for i := 0; i < node.PrimCount; i++ {
			candidate := m.centroid(node.LeftFirst + i).Axis(axis)
			cost := m.evaluateSAH(node, axis, candidate)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestPos = candidate
			}
		}
	}

	if bestAxis == -1 {
		return
	}

	parentArea := halfSurfaceArea(node.Min, node.Max)
	parentCost := float32(node.PrimCount) * parentArea
	if bestCost >= parentCost {
		return
	}

	leftCount := m.partition(node.LeftFirst, node.PrimCount, bestAxis, bestPos)
	if leftCount == 0 || leftCount == node.PrimCount {
		return
	}

	leftFirst := node.LeftFirst
	primCount := node.PrimCount

	leftChildIdx := m.nodesUsed
	m.nodesUsed += 2

	m.bvhNodes[leftChildIdx] = BVHNode{LeftFirst: leftFirst, PrimCount: leftCount}
	m.bvhNodes[leftChildIdx+1] = BVHNode{LeftFirst: leftFirst + leftCount, PrimCount: primCount - leftCount}

	m.bvhNodes[nodeIdx].PrimCount = 0
	m.bvhNodes[nodeIdx].LeftFirst = leftChildIdx

	m.updateLeafAABB(leftChildIdx)
	m.updateLeafAABB(leftChildIdx + 1)

	m.subdivide(leftChildIdx)
	m.subdivide(leftChildIdx + 1)
}

// evaluateSAH scores splitting a node's triangles at pos along axis.
func (m *TriangleMesh) evaluateSAH(node *BVHNode, axis int, pos float32) float32 {
	leftMin, leftMax := types.XYZ(posInf, posInf, posInf), types.XYZ(negInf, negInf, negInf)
	rightMin, rightMax := types.XYZ(posInf, posInf, posInf), types.XYZ(negInf, negInf, negInf)
	leftCount, rightCount := 0, 0

	for i := 0; i < node.PrimCount; i++ {
		idx := node.LeftFirst + i
		v0, v1, v2 := m.TriangleVertices(idx)
		tmin := types.MinVec3(v0, types.MinVec3(v1, v2))
		tmax := types.MaxVec3(v0, types.MaxVec3(v1, v2))

		if m.centroid(idx).Axis(axis) < pos {
			leftCount++
			leftMin, leftMax = types.MinVec3(leftMin, tmin), types.MaxVec3(leftMax, tmax)
		} else {
			rightCount++
			rightMin, rightMax = types.MinVec3(rightMin, tmin), types.MaxVec3(rightMax, tmax)
		}
	}

	if leftCount == 0 || rightCount == 0 {
		return float32(math.Inf(1))
	}

	return float32(leftCount)*halfSurfaceArea(leftMin, leftMax) + float32(rightCount)*halfSurfaceArea(rightMin, rightMax)
}

// partition performs an in-place Hoare-style sweep, swapping whole
// triangles (via swapTriangle) rather than scalars, and returns the
// resulting left-partition count.
func (m *TriangleMesh) partition(leftFirst, primCount, axis int, splitPos float32) int {
	left := leftFirst
	right := leftFirst + primCount - 1

	for left <= right {
		if m.centroid(left).Axis(axis) < splitPos {
			left++
		} else {
			m.swapTriangle(left, right)
			right--
		}
	}

	return left - leftFirst
}

// refitBVH recomputes every node's AABB bottom-up without changing
// topology, visiting nodes from the highest-allocated index down to the
// root so that every internal node's children have already been
// refreshed by the time it unions them.
func (m *TriangleMesh) refitBVH() {
	for i := m.nodesUsed - 1; i >= 0; i-- {
		node := &m.bvhNodes[i]
		if node.IsLeaf() {
			m.updateLeafAABB(i)
			continue
		}
		left := m.bvhNodes[node.LeftFirst]
		right := m.bvhNodes[node.LeftFirst+1]
		node.Min = types.MinVec3(left.Min, right.Min)
		node.Max = types.MaxVec3(left.Max, right.Max)
	}
}

// ClosestHit walks the BVH looking for the nearest triangle the ray hits
// closer than hit.T, honoring the mesh's cull mode, and updates hit in
// place. It returns whether any triangle was hit.
func (m *TriangleMesh) ClosestHit(ray types.Ray, hit *types.HitRecord) bool {
	if m.bvhNodes == nil {
		return false
	}
	return m.traverse(ray, QueryPrimary, hit)
}

// AnyHit is the shadow-ray counterpart of ClosestHit: it stops at the first
// triangle found along the ray within [ray.TMin, ray.TMax], applying the
// mirrored cull test from intersectTriangle's QueryShadow case.
func (m *TriangleMesh) AnyHit(ray types.Ray) bool {
	if m.bvhNodes == nil {
		return false
	}
	return m.traverseAny(ray, m.rootIndex)
}

// traverse performs a closest-hit BVH walk using an explicit stack of node
// indices. Children are visited in a fixed order (right child first), not
// sorted by distance along the ray.
func (m *TriangleMesh) traverse(ray types.Ray, query QueryKind, hit *types.HitRecord) bool {
	stack := make([]int, 0, 64)
	stack = append(stack, m.rootIndex)
	found := false

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := m.bvhNodes[idx]
		if _, ok := intersectAABB(ray, node.Min, node.Max); !ok {
			continue
		}

		if node.IsLeaf() {
			for i := node.LeftFirst; i < node.LeftFirst+node.PrimCount; i++ {
				v0, v1, v2 := m.TriangleVertices(i)
				n := m.TransformedNormals[i]
				if intersectTriangle(ray, v0, v1, v2, n, m.CullMode, query, hit) {
					hit.MaterialIndex = m.MaterialIndex
					found = true
					ray.TMax = hit.T
				}
			}
			continue
		}

		stack = append(stack, node.LeftFirst, node.LeftFirst+1)
	}

	return found
}

// traverseAny is the any-hit variant used by AnyHit: it returns true as
// soon as a single triangle blocks the ray, never narrowing ray.TMax.
func (m *TriangleMesh) traverseAny(ray types.Ray, rootIdx int) bool {
	stack := make([]int, 0, 64)
	stack = append(stack, rootIdx)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := m.bvhNodes[idx]
		if _, ok := intersectAABB(ray, node.Min, node.Max); !ok {
			continue
		}

		if node.IsLeaf() {
			for i := node.LeftFirst; i < node.LeftFirst+node.PrimCount; i++ {
				v0, v1, v2 := m.TriangleVertices(i)
				n := m.TransformedNormals[i]
				probe := types.NewHitRecord()
				if intersectTriangle(ray, v0, v1, v2, n, m.CullMode, QueryShadow, &probe) {
					return true
				}
			}
			continue
		}

		stack = append(stack, node.LeftFirst, node.LeftFirst+1)
	}

	return false
}
