package pool

import "sync"

const (
	// WorkBufferDefaultSize is the capacity of work buffers created by the
	// default pool. It matches the invoker's initial attempt capacity so the
	// common single-attempt case never reallocates.
	WorkBufferDefaultSize = 4096
	// WorkBufferMaxThreshold is the largest work buffer the default pool
	// retains. Buffers grown past this by pathological inputs are discarded
	// on Put to avoid pinning memory.
	WorkBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// WorkBuffer is an exclusively-owned growable byte region used as the
// destination of fixed-capacity transform attempts. Its contents are
// per-attempt scratch: growth reallocates without copying.
type WorkBuffer struct {
	b []byte
}

// NewWorkBuffer creates a WorkBuffer with the specified capacity.
func NewWorkBuffer(size int) *WorkBuffer {
	return &WorkBuffer{
		b: make([]byte, size),
	}
}

// Ensure returns a view of exactly n bytes, reallocating the underlying
// region if its capacity is insufficient. The returned slice is valid until
// the next call to Ensure.
func (wb *WorkBuffer) Ensure(n int) []byte {
	if cap(wb.b) < n {
		wb.b = make([]byte, n)
	}
	wb.b = wb.b[:cap(wb.b)]

	return wb.b[:n]
}

// Cap returns the capacity of the underlying region.
func (wb *WorkBuffer) Cap() int {
	return cap(wb.b)
}

// WorkBufferPool is a pool of WorkBuffers to minimize allocations across
// invocations.
//
// It uses sync.Pool internally. A maximum size threshold avoids retaining
// overly large buffers that could lead to memory bloat.
type WorkBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewWorkBufferPool creates a pool handing out buffers of the specified
// default size, discarding returned buffers larger than maxThreshold.
func NewWorkBufferPool(defaultSize int, maxThreshold int) *WorkBufferPool {
	return &WorkBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewWorkBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a WorkBuffer from the pool.
func (p *WorkBufferPool) Get() *WorkBuffer {
	wb, _ := p.pool.Get().(*WorkBuffer)
	return wb
}

// Put returns a WorkBuffer to the pool for reuse.
func (p *WorkBufferPool) Put(wb *WorkBuffer) {
	if wb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(wb.b) > p.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	p.pool.Put(wb)
}

var defaultPool = NewWorkBufferPool(WorkBufferDefaultSize, WorkBufferMaxThreshold)

// GetWorkBuffer retrieves a WorkBuffer from the default pool.
func GetWorkBuffer() *WorkBuffer {
	return defaultPool.Get()
}

// PutWorkBuffer returns a WorkBuffer to the default pool.
func PutWorkBuffer(wb *WorkBuffer) {
	defaultPool.Put(wb)
}
