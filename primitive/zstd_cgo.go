//go:build cgo

package primitive

import (
	"fmt"

	"github.com/valyala/gozstd"
)

func zstdCompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out := gozstd.CompressLevel(nil, src, 3)
	if len(out) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, out), nil
}

func zstdDecompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out, err := gozstd.Decompress(nil, src)
	if err != nil {
		return 0, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) > len(dst) {
		return len(dst) + 1, nil
	}

	return copy(dst, out), nil
}
