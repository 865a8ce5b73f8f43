package codec

import (
	"fmt"

	"github.com/smazio/smazio/internal/pool"
)

// DefaultInitialCapacity is the first attempt's buffer capacity: one
// virtual-memory page. Nearly all short-string inputs fit in a single
// attempt at this size, so the common case pays no reallocation.
const DefaultInitialCapacity = 4096

// Invoker drives a fixed-capacity primitive to completion by growing the
// destination buffer on each insufficiency report.
//
// The growth policy is geometric: capacity starts at the initial size and is
// multiplied by the growth factor on every retry, bounding retries to
// O(log(final/initial)) and worst-case over-allocation to under one growth
// factor times the true required size.
//
// The zero value is not usable; construct with NewInvoker.
type Invoker struct {
	initialCap int
	growth     int
	maxCap     int
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithInitialCapacity sets the first attempt's buffer capacity.
// Values below 1 are ignored.
func WithInitialCapacity(n int) Option {
	return func(inv *Invoker) {
		if n > 0 {
			inv.initialCap = n
		}
	}
}

// WithGrowthFactor sets the multiplier applied to the capacity on each
// retry. The default is 2. Values below 2 are ignored, since the capacity
// must strictly increase.
func WithGrowthFactor(factor int) Option {
	return func(inv *Invoker) {
		if factor >= 2 {
			inv.growth = factor
		}
	}
}

// WithMaxCapacity bounds buffer growth. Once the capacity reaches n and the
// primitive still reports insufficiency, Invoke fails with ErrCapacityLimit
// instead of growing further. A value of 0 (the default) means unbounded.
func WithMaxCapacity(n int) Option {
	return func(inv *Invoker) {
		if n >= 0 {
			inv.maxCap = n
		}
	}
}

// NewInvoker creates an Invoker with the default page-sized initial
// capacity and doubling growth, then applies the given options.
func NewInvoker(opts ...Option) Invoker {
	inv := Invoker{
		initialCap: DefaultInitialCapacity,
		growth:     2,
	}
	for _, opt := range opts {
		opt(&inv)
	}

	return inv
}

// Invoke calls the primitive with a working buffer of the initial capacity,
// growing and retrying until the primitive reports success, then copies
// exactly the reported count into a fresh caller-owned slice.
//
// The working buffer is obtained from an internal pool, grown in place
// across retries, and returned to the pool on every exit path. No bytes
// beyond the reported count are ever read, so pooled buffers leak nothing
// between invocations.
//
// A zero count yields a nil output. Primitive errors and contract
// violations (see ErrPrimitiveContract) are surfaced immediately and never
// retried.
func (inv Invoker) Invoke(p Primitive, input []byte) ([]byte, error) {
	capacity := inv.initialCap
	if inv.maxCap > 0 && capacity > inv.maxCap {
		capacity = inv.maxCap
	}

	wb := pool.GetWorkBuffer()
	defer pool.PutWorkBuffer(wb)

	for {
		dst := wb.Ensure(capacity)

		count, err := p(input, dst)
		if err != nil {
			return nil, err
		}

		res, err := resultFromCount(count, capacity)
		if err != nil {
			return nil, err
		}

		if res.insufficient {
			if inv.maxCap > 0 && capacity >= inv.maxCap {
				return nil, fmt.Errorf("%w: %d bytes insufficient with limit %d", ErrCapacityLimit, capacity, inv.maxCap)
			}

			capacity *= inv.growth
			if inv.maxCap > 0 && capacity > inv.maxCap {
				capacity = inv.maxCap
			}

			continue
		}

		if res.count == 0 {
			return nil, nil
		}

		out := make([]byte, res.count)
		copy(out, dst[:res.count])

		return out, nil
	}
}
