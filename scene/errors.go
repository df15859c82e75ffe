package scene

import "errors"

var (
	// ErrNoMaterial is returned by AddSphere/AddPlane/AddMesh when the
	// primitive's MaterialIndex is negative, i.e. no material was assigned.
	ErrNoMaterial = errors.New("scene: no material assigned to primitive")
	// ErrUnknownMaterial is returned when a primitive's MaterialIndex
	// doesn't reference a material already added to the scene.
	ErrUnknownMaterial = errors.New("scene: primitive references unknown material; add the material before the primitive that references it")
	// ErrPrimitiveAlreadyAdded is returned by AddMesh when the same
	// *TriangleMesh is added twice.
	ErrPrimitiveAlreadyAdded = errors.New("scene: primitive already added")
)
