package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smazio/smazio/format"
)

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionSmaz,
		format.CompressionLZ4,
		format.CompressionS2,
		format.CompressionZstd,
	} {
		c, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, c)
	}
}

func TestGetCodecUnsupported(t *testing.T) {
	c, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
	require.Nil(t, c)
}

func TestGetCodecShared(t *testing.T) {
	a, err := GetCodec(format.CompressionSmaz)
	require.NoError(t, err)
	b, err := GetCodec(format.CompressionSmaz)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestCreateCodec(t *testing.T) {
	c, err := CreateCodec(format.CompressionLZ4, "payload")
	require.NoError(t, err)
	require.NotNil(t, c)

	c, err = CreateCodec(format.CompressionType(0xFF), "payload")
	require.Error(t, err)
	require.Nil(t, c)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodecByName(t *testing.T) {
	for _, name := range []string{"none", "smaz", "lz4", "s2", "zstd", "Smaz", "Zstd"} {
		c, err := GetCodecByName(name)
		require.NoError(t, err, "name %q", name)
		require.NotNil(t, c)
	}

	c, err := GetCodecByName("brotli")
	require.Error(t, err)
	require.Nil(t, c)
}
