package collision

import "errors"

// Precondition errors. A resolver returning one of these returns the zero Result.
var (
	// Mass errors

	ErrNonPositiveMass = errors.New("total mass must be positive")
	ErrInvalidMass     = errors.New("body mass must be positive")

	// Velocity errors

	ErrZeroVelocity = errors.New("heading angle undefined for zero-length velocity")

	// Center errors

	ErrCoincidentCenters = errors.New("body centers coincide")
	ErrCentersShareAxis  = errors.New("body centers share an axis coordinate")

	// Arithmetic errors

	ErrNonFinite     = errors.New("non-finite value")
	ErrUnknownMethod = errors.New("unknown collision method")
)
