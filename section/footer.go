package section

import (
	"math"

	"github.com/Krymelte/trm/endian"
	"github.com/Krymelte/trm/errs"
)

// Footer is the fixed block of 8 float32 values that terminates a binary
// TRM file, immediately after the last record.
type Footer [FooterFloatCount]float32

// ParseFooter parses the footer from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the footer (must be exactly 32 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - Footer: Parsed footer values
//   - error: ErrInvalidFooterSize if data is not exactly 32 bytes
func ParseFooter(data []byte, engine endian.EndianEngine) (Footer, error) {
	if len(data) != FooterSize {
		return Footer{}, errs.ErrInvalidFooterSize
	}

	var f Footer
	for i := range f {
		f[i] = math.Float32frombits(engine.Uint32(data[i*4 : i*4+4]))
	}

	return f, nil
}

// Bytes serializes the footer using the specified endian engine.
func (f Footer) Bytes(engine endian.EndianEngine) []byte {
	var b [FooterSize]byte
	for i, v := range f {
		engine.PutUint32(b[i*4:i*4+4], math.Float32bits(v))
	}

	return b[:]
}

// WriteToSlice serializes the footer into a pre-allocated slice and returns
// the next write position.
func (f Footer) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	for i, v := range f {
		engine.PutUint32(data[offset+i*4:offset+i*4+4], math.Float32bits(v))
	}

	return offset + FooterSize
}
