package solver

import "errors"

// Domain errors for solver configuration and stepping.
var (
	// ErrUnknownAccuracy indicates an accuracy preset outside the known set.
	ErrUnknownAccuracy = errors.New("solver: unknown accuracy preset")

	// ErrCFLRange indicates a CFL number outside (0, 1].
	ErrCFLRange = errors.New("solver: CFL number must be in (0, 1]")

	// ErrShapeMismatch indicates a value field or active set whose length
	// differs from the grid's node count.
	ErrShapeMismatch = errors.New("solver: field shape does not match grid")

	// ErrDimensionMismatch indicates dynamics defined over a different
	// spatial dimension than the grid.
	ErrDimensionMismatch = errors.New("solver: dynamics dimension does not match grid")

	// ErrNotFinite indicates a NaN or Inf value after a step when the
	// finiteness check is enabled.
	ErrNotFinite = errors.New("solver: value field is not finite")

	// ErrNonMonotonicTimes indicates a solve time sequence that is not
	// strictly monotonic.
	ErrNonMonotonicTimes = errors.New("solver: times must be strictly monotonic")
)
