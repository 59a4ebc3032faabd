package format

type (
	// Kind identifies which TRM variant a buffer or document represents.
	Kind uint8

	// CompressionType identifies the compression applied to a JSON artifact.
	CompressionType uint8
)

const (
	KindBinary Kind = 0x1 // KindBinary represents the fixed-record binary variant.
	KindText   Kind = 0x2 // KindText represents the legacy line-oriented text variant.
	KindRaw    Kind = 0x3 // KindRaw represents the opaque base64 fallback.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame compression.
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "Binary"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a user-supplied name to a CompressionType.
// Returns CompressionNone and false for unrecognized names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "gzip":
		return CompressionGzip, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return CompressionNone, false
	}
}
