package array

import "errors"

// Sentinel errors shared by every package of the engine. Operations wrap them
// with context ("add: %w: ...") so callers match with errors.Is.
var (
	// ErrShape reports a rank or shape mismatch in broadcast, reshape or copy.
	ErrShape = errors.New("ndarray: shape mismatch")

	// ErrIndex reports an axis or element index outside its valid range,
	// or an illegal slice step of zero.
	ErrIndex = errors.New("ndarray: index out of range")

	// ErrUnsupportedKind reports an operation that is not defined for an
	// element kind, e.g. bitwise ops on floating kinds.
	ErrUnsupportedKind = errors.New("ndarray: operation not supported for kind")

	// ErrOverflow reports integer power overflow.
	ErrOverflow = errors.New("ndarray: integer overflow")

	// ErrDivideByZero reports integer division or modulo by zero.
	ErrDivideByZero = errors.New("ndarray: integer division by zero")

	// ErrValue reports an argument with an invalid value (FFT length that is not
	// a power of two, unknown correlation mode, empty reduction without identity).
	ErrValue = errors.New("ndarray: invalid value")
)
