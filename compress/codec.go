// Package compress provides the optional compression codecs applied to
// JSON artifacts on the way to and from disk. The TRM wire formats
// themselves are never compressed; these codecs only wrap the JSON side of
// a conversion.
package compress

import (
	"bytes"
	"fmt"

	"github.com/Krymelte/trm/format"
)

// Compressor compresses a complete in-memory artifact.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is newly allocated and owned by the caller; the
	// input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// result, or an error when the data is corrupted or uses a different
	// algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// GetCodec retrieves the built-in Codec for a compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
	}
}

// Frame magics of the supported formats. All four codecs write framed
// output precisely so inputs can be recognized without side-band
// information.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	magicS2   = []byte{0xff, 0x06, 0x00, 0x00}
)

// Detect inspects a buffer's leading bytes and reports which supported
// compression framing it carries, or CompressionNone for anything else.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return format.CompressionGzip
	case bytes.HasPrefix(data, magicZstd):
		return format.CompressionZstd
	case bytes.HasPrefix(data, magicLZ4):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, magicS2):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}
