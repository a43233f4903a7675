package dataset

import "errors"

// Every failure of the builder is a usage error: nothing is retried and no
// partial dataset is returned. Match with errors.Is; messages carry context
// via fmt.Errorf("...: %w", ErrX).
var (
	// ErrShapeUnsupported is returned when the combination of dimensionality,
	// precision and error presence has no dataset implementation.
	ErrShapeUnsupported = errors.New("dataset: unsupported dataset shape")

	// ErrCapacityConflict is returned when an explicit dimension count is not
	// larger than the highest dimension index referenced by supplied data.
	ErrCapacityConflict = errors.New("dataset: supplied data exceeds requested dimension count")

	// ErrInvalidArgument is returned for malformed arguments such as a negative
	// axis index or a ragged nested array.
	ErrInvalidArgument = errors.New("dataset: invalid argument")

	// ErrBuilderConsumed is returned by Build once the builder has already
	// produced a dataset.
	ErrBuilderConsumed = errors.New("dataset: builder already built a dataset")
)
