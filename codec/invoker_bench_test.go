package codec

import (
	"bytes"
	"testing"
)

func benchPrimitive(outputLen int) Primitive {
	return func(_, dst []byte) (int, error) {
		if outputLen > len(dst) {
			return len(dst) + 1, nil
		}
		for i := range outputLen {
			dst[i] = 'b'
		}

		return outputLen, nil
	}
}

func BenchmarkInvokeSingleAttempt(b *testing.B) {
	inv := NewInvoker()
	p := benchPrimitive(512)
	input := bytes.Repeat([]byte("x"), 512)

	b.ResetTimer()
	for b.Loop() {
		_, _ = inv.Invoke(p, input)
	}
}

func BenchmarkInvokeOneGrowth(b *testing.B) {
	inv := NewInvoker()
	p := benchPrimitive(5000)
	input := bytes.Repeat([]byte("x"), 512)

	b.ResetTimer()
	for b.Loop() {
		_, _ = inv.Invoke(p, input)
	}
}
