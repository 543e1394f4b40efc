package decnum

import (
	"errors"
)

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// ErrInvalidDigit is returned when a supplied digit lies outside [0, 9].
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidState is returned when a negative sign is requested for a
	// digit sequence that normalises to zero. Negative zero is not
	// representable.
	ErrInvalidState = errors.New("negative zero")

	// ErrOverflow is returned when an Int does not fit in the requested
	// native integer type.
	ErrOverflow = errors.New("overflow")
)

var (
	zeroDigits = []uint8{0}
	oneDigits  = []uint8{1}

	zeroInt Int
	oneInt  = Int{sign: Positive, digits: oneDigits}

	MaxInt64 = IntFrom64(maxInt64)
	MinInt64 = IntFrom64(minInt64)
)
