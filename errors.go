package gridviz

import "errors"

// Sentinel errors for grid construction and transformation.
var (
	// ErrInvalidConfig is returned when grid bounds or step size are
	// degenerate: step <= 0, min >= max, or non-finite values.
	ErrInvalidConfig = errors.New("gridviz: invalid grid configuration")

	// ErrInvalidMatrix is returned when a transformation matrix contains
	// non-finite entries (NaN or Inf).
	ErrInvalidMatrix = errors.New("gridviz: invalid transformation matrix")
)
