// Package smazio provides short-string compression with adaptive output
// buffering.
//
// The package wraps fixed-capacity codec primitives (functions that write
// into a destination of declared capacity and signal "too small" with a
// capacity+1 sentinel) in a grow-and-retry protocol: start at one page,
// double on each insufficiency, copy out exactly the reported count. The
// default codec is SMAZ, which is tuned for short English text; LZ4, S2,
// Zstd, and a pass-through codec are also built in.
//
// # Basic Usage
//
//	compressed, err := smazio.Compress([]byte("this is a small string"))
//	if err != nil {
//	    return err
//	}
//
//	original, err := smazio.Decompress(compressed)
//	if err != nil {
//	    return err
//	}
//
// Selecting a different built-in codec:
//
//	c, err := smazio.NewCodec(format.CompressionLZ4)
//	if err != nil {
//	    return err
//	}
//	compressed, err := c.Compress(payload)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// primitive packages. For custom primitives or sizing policies, use the
// codec package directly.
package smazio

import (
	"github.com/smazio/smazio/codec"
	"github.com/smazio/smazio/format"
	"github.com/smazio/smazio/primitive"
)

// defaultCodec serves the top-level functions. It is stateless, so a single
// shared instance is safe for concurrent use.
var defaultCodec = primitive.NewSmazCodec()

// Compress compresses data with the default SMAZ codec.
func Compress(data []byte) ([]byte, error) {
	return defaultCodec.Compress(data)
}

// Decompress restores data previously compressed with Compress.
func Decompress(data []byte) ([]byte, error) {
	return defaultCodec.Decompress(data)
}

// CompressString compresses a string with the default SMAZ codec.
func CompressString(s string) ([]byte, error) {
	return defaultCodec.Compress([]byte(s))
}

// DecompressString restores a string previously compressed with
// CompressString.
func DecompressString(data []byte) (string, error) {
	out, err := defaultCodec.Decompress(data)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// NewCodec returns the built-in codec for the given compression type.
func NewCodec(compressionType format.CompressionType) (codec.Codec, error) {
	return primitive.GetCodec(compressionType)
}
