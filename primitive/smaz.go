package primitive

import (
	"fmt"

	smaz "github.com/cespare/go-smaz"

	"github.com/smazio/smazio/codec"
)

// NewSmazCodec creates the SMAZ short-string codec.
//
// The SMAZ table and algorithm live in the external go-smaz library; this
// adapter only imposes the fixed-capacity convention on it. SMAZ expands
// rather than shrinks binary or non-English input (verbatim escapes), so
// compressed output larger than the input is normal for such data.
//
// Returns:
//   - *codec.Adaptive: New SMAZ codec instance
func NewSmazCodec(opts ...codec.Option) *codec.Adaptive {
	return codec.NewAdaptive(smazCompress, smazDecompress, opts...)
}

func smazCompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out := smaz.Compress(src)
	if len(out) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, out), nil
}

func smazDecompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out, err := smaz.Decompress(src)
	if err != nil {
		return 0, fmt.Errorf("smaz decompression failed: %w", err)
	}
	if len(out) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, out), nil
}
