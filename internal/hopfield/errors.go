package hopfield

import "errors"

// Configuration errors. All of these are raised eagerly at construction
// time; relaxation itself has no error path.
var (
	// ErrInvalidDimension indicates a non-positive network or generator dimension.
	ErrInvalidDimension = errors.New("hopfield: dimension must be a positive integer")

	// ErrUnspecifiedDomain indicates a builder was given no concrete domain.
	ErrUnspecifiedDomain = errors.New("hopfield: domain must be explicitly set to a valid network domain")

	// ErrInvalidBounds indicates sampling bounds with lower >= upper.
	ErrInvalidBounds = errors.New("hopfield: lower bound must be strictly smaller than upper bound")

	// ErrInvalidIterations indicates a non-positive relaxation iteration cap.
	ErrInvalidIterations = errors.New("hopfield: maximum relaxation iterations must be positive")

	// ErrInvalidTolerance indicates a negative unstable-unit tolerance.
	ErrInvalidTolerance = errors.New("hopfield: maximum unstable units must be non-negative")
)
