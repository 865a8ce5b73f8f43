package primitive

import (
	"fmt"

	"github.com/smazio/smazio/codec"
	"github.com/smazio/smazio/format"
)

// CreateCodec is a factory function that creates a Codec based on the
// specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Smaz, LZ4, S2, or Zstd)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - codec.Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (codec.Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionSmaz:
		return NewSmazCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

// builtinCodecs is the stateless registry of shared built-in codecs. Each
// entry is a pure primitive pair; sharing instances is safe because codecs
// hold no per-call state.
var builtinCodecs = map[format.CompressionType]codec.Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionSmaz: NewSmazCodec(),
	format.CompressionLZ4:  NewLZ4Codec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionZstd: NewZstdCodec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (codec.Codec, error) {
	if c, ok := builtinCodecs[compressionType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// GetCodecByName retrieves a built-in Codec by its registered name, e.g.
// "smaz" or "lz4".
func GetCodecByName(name string) (codec.Codec, error) {
	compressionType, err := format.ParseCompression(name)
	if err != nil {
		return nil, err
	}

	return GetCodec(compressionType)
}
