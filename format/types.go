package format

import "fmt"

// CompressionType identifies a built-in codec.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents the pass-through codec.
	CompressionSmaz CompressionType = 0x2 // CompressionSmaz represents the SMAZ short-string codec.
	CompressionLZ4  CompressionType = 0x3 // CompressionLZ4 represents LZ4 block compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionZstd CompressionType = 0x5 // CompressionZstd represents Zstandard compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionSmaz:
		return "Smaz"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// ParseCompression resolves a codec name to its CompressionType.
// It accepts the canonical names returned by String plus their
// lowercase forms.
func ParseCompression(name string) (CompressionType, error) {
	switch name {
	case "None", "none":
		return CompressionNone, nil
	case "Smaz", "smaz":
		return CompressionSmaz, nil
	case "LZ4", "lz4":
		return CompressionLZ4, nil
	case "S2", "s2":
		return CompressionS2, nil
	case "Zstd", "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", name)
	}
}
