package dynamo

import "errors"

// Domain errors for scene construction and GPU resource handling.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidBody indicates a body with non-positive mass or radius.
	ErrInvalidBody = errors.New("dynamo: body mass and radius must be positive")

	// ErrInvalidGrid indicates a grid with non-positive extent or resolution.
	ErrInvalidGrid = errors.New("dynamo: grid extent must be positive and resolution at least 1")

	// ErrInvalidOrbit indicates an orbit with non-positive semi-axes.
	ErrInvalidOrbit = errors.New("dynamo: orbit semi-axes must be positive")

	// ErrInvalidConfig indicates an out-of-range configuration value.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration value")

	// ErrCapacityExceeded indicates an upload larger than the allocated device buffer.
	ErrCapacityExceeded = errors.New("dynamo: upload exceeds buffer capacity")

	// ErrShaderCompile indicates a shader stage failed to compile.
	ErrShaderCompile = errors.New("dynamo: shader compilation failed")

	// ErrShaderLink indicates a shader program failed to link.
	ErrShaderLink = errors.New("dynamo: shader program link failed")
)

// FieldError reports an invalid configuration value.
type FieldError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Wrapped.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
