package floatquant

import "errors"

var (
	// ErrInvalidPrecision is returned when precision is outside [0, 23].
	ErrInvalidPrecision = errors.New("precision must be in [0, 23]")

	// ErrInvalidRange is returned when the configured bounds do not satisfy
	// min <= 0 < epsilon < max.
	ErrInvalidRange = errors.New("range must satisfy min <= 0 < epsilon < max")
)
