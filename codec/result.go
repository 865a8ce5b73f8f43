package codec

import "fmt"

// result is the tagged outcome of a single primitive attempt. The raw
// count-or-capacity-plus-one integer convention is confined to
// resultFromCount; nothing beyond this adapter interprets the bare number.
type result struct {
	count        int
	insufficient bool
}

// resultFromCount adapts a primitive's raw return value to a tagged result.
//
// A count in [0, capacity] is a success whose data occupies the first count
// bytes of the destination. A count of exactly capacity+1 is the
// insufficiency sentinel. Anything else is out of contract and reported as
// ErrPrimitiveContract rather than silently accepted.
func resultFromCount(count, capacity int) (result, error) {
	switch {
	case count < 0 || count > capacity+1:
		return result{}, fmt.Errorf("%w: count %d with capacity %d", ErrPrimitiveContract, count, capacity)
	case count == capacity+1:
		return result{insufficient: true}, nil
	default:
		return result{count: count}, nil
	}
}
