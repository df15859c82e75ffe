package types

import "math"

// HitRecord carries the result of an intersection query. DidHit == true
// implies T is finite and Normal is unit-length.
type HitRecord struct {
	T             float32
	Origin        Vector3
	Normal        Vector3
	MaterialIndex int
	DidHit        bool
}

// NewHitRecord returns a record initialized to "no hit yet" (T = +Inf).
func NewHitRecord() HitRecord {
	return HitRecord{T: float32(math.Inf(1))}
}
