package descriptive

import "errors"

// Sentinel errors returned (wrapped with context) by every backend.
// Callers classify failures with errors.Is.
var (
	// ErrEmptyInput indicates a statistic that requires at least one
	// observation was given an empty sample.
	ErrEmptyInput = errors.New("empty input")

	// ErrInsufficientData indicates the degrees-of-freedom adjustment left a
	// non-positive divisor (n - ddof <= 0).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrLengthMismatch indicates a paired statistic was given sequences of
	// unequal length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidParameter indicates an out-of-range parameter, such as a
	// quantile outside [0, 1] or a negative ddof.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrZeroVariance indicates a correlation request where one series has
	// exactly zero variance, leaving the coefficient undefined.
	ErrZeroVariance = errors.New("zero variance")
)
