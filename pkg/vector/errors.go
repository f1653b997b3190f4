package vector

import "errors"

var (
	// ErrZeroComponent is returned by componentwise division when a divisor component is zero.
	ErrZeroComponent = errors.New("division by zero vector component")
	// ErrZeroLength is returned by operations that divide by the vector magnitude.
	ErrZeroLength = errors.New("vector length cannot be null")
)
