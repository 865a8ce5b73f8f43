package codec

import "errors"

// Sentinel errors for the adaptive invoker.
var (
	// ErrPrimitiveContract is returned when a primitive reports a count
	// outside [0, capacity+1], which violates the fixed-capacity convention
	// and could otherwise mask a buffer overrun. Callers can use
	// errors.Is(err, codec.ErrPrimitiveContract).
	ErrPrimitiveContract = errors.New("primitive count violates fixed-capacity contract")
	// ErrCapacityLimit is returned when growth would exceed a maximum
	// capacity configured with WithMaxCapacity. It is never returned by
	// default; growth is unbounded unless a limit is set.
	ErrCapacityLimit = errors.New("buffer capacity limit exceeded")
)
