package sim

import "errors"

var (
	// ErrInvalidArgument reports a grid dimension below 1, a site outside
	// [1, n]×[1, n], or an unusable driver setting.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptySample reports a statistics run with no trials.
	ErrEmptySample = errors.New("empty sample: at least one trial is required")
)
