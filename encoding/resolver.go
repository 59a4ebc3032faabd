// Package encoding provides the character set handling for TRM content:
// a UTF-8 decoder with a Windows-1252 fallback, and extraction of printable
// substrings from binary buffers.
package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset identifies which character encoding decoded a byte buffer.
type Charset uint8

const (
	// CharsetUTF8 indicates the buffer was valid UTF-8.
	CharsetUTF8 Charset = 0x1
	// CharsetWindows1252 indicates the fallback single-byte decode was used.
	CharsetWindows1252 Charset = 0x2
)

func (c Charset) String() string {
	switch c {
	case CharsetUTF8:
		return "UTF-8"
	case CharsetWindows1252:
		return "Windows-1252"
	default:
		return "Unknown"
	}
}

// DecodeString decodes a byte buffer into a string, reporting which charset
// was used. Strict UTF-8 is tried first; on any invalid sequence the buffer
// is re-decoded as Windows-1252, which treats every byte value as valid, so
// decoding never fails.
//
// The charset is a per-call result, not package state: interleaved calls
// with mixed-encoding inputs never interfere.
//
// Parameters:
//   - data: Byte buffer to decode
//
// Returns:
//   - string: Decoded text
//   - Charset: CharsetUTF8 or CharsetWindows1252
func DecodeString(data []byte) (string, Charset) {
	if utf8.Valid(data) {
		return string(data), CharsetUTF8
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		// Windows-1252 maps all 256 byte values; the decoder cannot fail.
		// Fall back to a byte-preserving Latin-1 expansion just in case.
		runes := make([]rune, len(data))
		for i, b := range data {
			runes[i] = rune(b)
		}

		return string(runes), CharsetWindows1252
	}

	return string(decoded), CharsetWindows1252
}

// EncodeString encodes a string as UTF-8 bytes.
//
// Output is always UTF-8 regardless of the charset the content was decoded
// with. Re-encoding a legacy single-byte file therefore changes the byte
// representation of non-ASCII characters; this is a documented lossy edge
// of the text variant, not of the binary or raw paths.
func EncodeString(s string) []byte {
	return []byte(s)
}
