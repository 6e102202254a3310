package solar

import "errors"

// Registry errors.
var (
	// ErrNoBodies indicates an empty body table.
	ErrNoBodies = errors.New("solar: no bodies configured")

	// ErrSunDistance indicates index 0 is not a stationary sun.
	ErrSunDistance = errors.New("solar: body 0 must have distance 0 and speed 0")

	// ErrMeshCount indicates the mesh list does not match the body table.
	ErrMeshCount = errors.New("solar: mesh count does not match body count")

	// ErrBodyIndex indicates a body index outside the registry.
	ErrBodyIndex = errors.New("solar: body index out of range")

	// ErrSunIndex indicates an attempt to control the sun.
	ErrSunIndex = errors.New("solar: the sun has no speed control")

	// ErrUnknownBody indicates a lookup by a name nothing in the registry carries.
	ErrUnknownBody = errors.New("solar: unknown body")
)
