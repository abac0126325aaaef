package vanity

import "errors"

var (
	// ErrEmptyTarget is returned when the search target is empty.
	ErrEmptyTarget = errors.New("target pattern cannot be empty")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("worker count must be positive")

	// ErrInvalidBatch is returned when batch size or check interval are not positive.
	ErrInvalidBatch = errors.New("batch size and check interval must be positive")

	// ErrNilGenerator is returned when no candidate generator was supplied.
	ErrNilGenerator = errors.New("candidate generator must not be nil")

	// ErrWorkersExhausted is returned when every worker stopped because its
	// generator failed. The search result is cancelled in that case.
	ErrWorkersExhausted = errors.New("all workers stopped on generation failures")
)
