package primitive

import "github.com/smazio/smazio/codec"

// NewZstdCodec creates a Zstandard codec.
//
// The underlying implementation is selected at build time: cgo builds use
// the libzstd bindings (valyala/gozstd), pure-Go builds use
// klauspost/compress/zstd with pooled encoders and decoders.
//
// Returns:
//   - *codec.Adaptive: New Zstd codec instance
func NewZstdCodec(opts ...codec.Option) *codec.Adaptive {
	return codec.NewAdaptive(zstdCompress, zstdDecompress, opts...)
}
