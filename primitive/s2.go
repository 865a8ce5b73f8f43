package primitive

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/smazio/smazio/codec"
)

// NewS2Codec creates an S2 codec.
//
// The S2 format stores the decoded length up front, so the decode primitive
// reports insufficiency from s2.DecodedLen without running the transform.
//
// Returns:
//   - *codec.Adaptive: New S2 codec instance
func NewS2Codec(opts ...codec.Option) *codec.Adaptive {
	return codec.NewAdaptive(s2Compress, s2Decompress, opts...)
}

func s2Compress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 {
		return 0, fmt.Errorf("s2 compression failed: input of %d bytes too large", len(src))
	}

	if bound <= len(dst) {
		return len(s2.Encode(dst, src)), nil
	}

	// Destination is under the worst-case bound; encode off to the side and
	// report insufficiency only if the actual output does not fit.
	enc := s2.Encode(nil, src)
	if len(enc) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, enc), nil
}

func s2Decompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return 0, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > len(dst) {
		return len(dst) + 1, nil
	}

	out, err := s2.Decode(dst, src)
	if err != nil {
		return 0, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return len(out), nil
}
