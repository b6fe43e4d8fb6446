package vec

import "errors"

var (
	// ErrAngle3D is returned when reading or assigning the angle of a
	// vector with a nonzero Z component.
	ErrAngle3D = errors.New("vec: angle undefined for a 3D vector")

	// ErrNegativeMagnitudeSq is returned when assigning a negative
	// squared magnitude.
	ErrNegativeMagnitudeSq = errors.New("vec: squared magnitude cannot be negative")
)
