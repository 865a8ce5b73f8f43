package primitive

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/smazio/smazio/codec"
)

// LZ4 block payloads carry a one-byte marker: CompressBlock reports
// incompressible input with a zero count, and such input is stored raw so
// round-trips hold for all byte sequences.
const (
	lz4BlockRaw  = 0x0
	lz4BlockLZ4  = 0x1
	lz4HeaderLen = 1
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// NewLZ4Codec creates an LZ4 block codec.
//
// The decode side is a genuinely fixed-buffer primitive: lz4.UncompressBlock
// writes into the supplied destination and its short-buffer error maps
// directly to the insufficiency sentinel.
//
// Returns:
//   - *codec.Adaptive: New LZ4 codec instance
func NewLZ4Codec(opts ...codec.Option) *codec.Adaptive {
	return codec.NewAdaptive(lz4Compress, lz4Decompress, opts...)
}

func lz4Compress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	// CompressBlockBound is >= len(src), so the raw fallback below always
	// fits once this check passes.
	if lz4.CompressBlockBound(len(src))+lz4HeaderLen > len(dst) {
		return len(dst) + 1, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst[lz4HeaderLen:])
	if err != nil {
		return 0, fmt.Errorf("lz4 compression failed: %w", err)
	}

	if n == 0 || n >= len(src) {
		dst[0] = lz4BlockRaw
		return copy(dst[lz4HeaderLen:], src) + lz4HeaderLen, nil
	}

	dst[0] = lz4BlockLZ4

	return n + lz4HeaderLen, nil
}

func lz4Decompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	payload := src[lz4HeaderLen:]

	switch src[0] {
	case lz4BlockRaw:
		if len(payload) > len(dst) {
			return len(dst) + 1, nil
		}

		return copy(dst, payload), nil
	case lz4BlockLZ4:
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				return len(dst) + 1, nil
			}

			return 0, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return n, nil
	default:
		return 0, fmt.Errorf("lz4 decompression failed: invalid block marker 0x%02x", src[0])
	}
}
