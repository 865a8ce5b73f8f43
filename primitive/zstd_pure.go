//go:build !cgo

package primitive

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation
// overhead.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // Disable CRC for performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// zstdDecoderPool pools zstd decoders for reuse. The klauspost/compress/zstd
// library is explicitly designed for decoder reuse after warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

func zstdCompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	out := encoder.EncodeAll(src, nil)
	if len(out) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, out), nil
}

func zstdDecompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	out, err := decoder.DecodeAll(src, nil)
	if err != nil {
		return 0, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, out), nil
}
