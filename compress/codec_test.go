package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krymelte/trm/format"
)

var sampleJSON = []byte(`{
  "name": "Stage01",
  "entries": ["a", "b", "c", "a", "b", "c", "a", "b", "c"]
}
`)

func TestCodec_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(sampleJSON)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, sampleJSON, decompressed)
		})
	}
}

func TestDetect(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(sampleJSON)
			require.NoError(t, err)
			require.Equal(t, ct, Detect(compressed))
		})
	}
}

func TestDetect_PlainData(t *testing.T) {
	require.Equal(t, format.CompressionNone, Detect(sampleJSON))
	require.Equal(t, format.CompressionNone, Detect(nil))
	require.Equal(t, format.CompressionNone, Detect([]byte{0x1f}))
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()

	out, err := codec.Compress(sampleJSON)
	require.NoError(t, err)
	require.True(t, bytes.Equal(sampleJSON, out))

	out, err = codec.Decompress(sampleJSON)
	require.NoError(t, err)
	require.True(t, bytes.Equal(sampleJSON, out))
}

func TestCodec_EmptyInput(t *testing.T) {
	codec := NewZstdCompressor()

	out, err := codec.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, out)

	out, err = codec.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestDecompress_WrongAlgorithm(t *testing.T) {
	gz := NewGzipCompressor()

	_, err := gz.Decompress([]byte("definitely not a gzip stream"))
	require.Error(t, err)
}
