package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkBufferEnsure(t *testing.T) {
	wb := NewWorkBuffer(64)
	require.Equal(t, 64, wb.Cap())

	view := wb.Ensure(16)
	require.Len(t, view, 16)
	require.Equal(t, 64, wb.Cap())

	view = wb.Ensure(128)
	require.Len(t, view, 128)
	require.GreaterOrEqual(t, wb.Cap(), 128)
}

func TestWorkBufferEnsureReusesCapacity(t *testing.T) {
	wb := NewWorkBuffer(256)

	first := wb.Ensure(64)
	first[0] = 'a'

	// Shrinking the view must not reallocate.
	second := wb.Ensure(32)
	require.Equal(t, byte('a'), second[0])
	require.Equal(t, 256, wb.Cap())
}

func TestWorkBufferPool(t *testing.T) {
	p := NewWorkBufferPool(64, 1024)

	wb := p.Get()
	require.NotNil(t, wb)
	require.Equal(t, 64, wb.Cap())

	p.Put(wb)
	p.Put(nil) // nil is a no-op

	// Oversized buffers are discarded rather than retained.
	big := NewWorkBuffer(4096)
	p.Put(big)

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 1024)
}

func TestDefaultPool(t *testing.T) {
	wb := GetWorkBuffer()
	require.NotNil(t, wb)
	require.GreaterOrEqual(t, wb.Cap(), WorkBufferDefaultSize)
	PutWorkBuffer(wb)
}
