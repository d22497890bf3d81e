package simulation

import "errors"

var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("worker count must be positive")

	// ErrInvalidBlockSize is returned when the block size is not positive.
	ErrInvalidBlockSize = errors.New("block size must be positive")

	// ErrUnknownStrategy is returned when a strategy name does not resolve.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNoStrategies is returned when an engine has nothing to run.
	ErrNoStrategies = errors.New("no strategies to run")
)
