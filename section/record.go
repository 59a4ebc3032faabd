package section

import (
	"bytes"
	"math"

	"github.com/Krymelte/trm/encoding"
	"github.com/Krymelte/trm/endian"
	"github.com/Krymelte/trm/errs"
)

// RecordBytes is the full image of one entry record. Using a fixed-size
// array type rather than a slice makes the record length a compile-time
// property: a serializer starting from a RecordBytes cannot produce output
// of the wrong size.
type RecordBytes [RecordSize]byte

// Record is one decoded entry of the binary TRM variant.
//
// The named fields mirror the record's known layout; Raw holds the complete
// original record image. Serialization starts from Raw and overwrites the
// named fields, so the reserved bytes at 0x48-0x53 and the tail from 0x60
// survive a decode/encode round trip untouched even when the named fields
// are edited.
type Record struct {
	// Name is the NUL-terminated name at offset 0x00, at most 31 bytes
	// when encoded, decoded through the charset resolver.
	Name string

	// Header block fields, u32 little-endian at offset 0x20 in this order.
	Difficulty uint32
	TimeFlag   uint32
	StageIndex uint32
	Group      uint32
	Flags      uint32
	Value      uint32
	Count      uint32
	PassValue  uint32
	RateU32    uint32
	ZeroUnused uint32

	// Position holds the x, y, z float32 components at offset 0x54.
	Position [PositionFloatCount]float32

	// Raw is the preserved record image the named fields were decoded from.
	// A zero Raw (for newly added entries) serializes to a zero-filled
	// record with the named fields written over it.
	Raw RecordBytes
}

// Rate returns the bit-for-bit float32 reinterpretation of RateU32.
//
// This is not a numeric conversion: the u32 holds an IEEE-754 bit pattern
// and must round trip exactly.
func (r *Record) Rate() float32 {
	return math.Float32frombits(r.RateU32)
}

// SetRate re-derives RateU32 from the float's bit pattern.
func (r *Record) SetRate(rate float32) {
	r.RateU32 = math.Float32bits(rate)
}

// ParseRecord parses one entry record from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the record (must be exactly 6692 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - Record: Parsed record with the full image preserved in Raw
//   - error: ErrInvalidRecordSize if data is not exactly 6692 bytes
func ParseRecord(data []byte, engine endian.EndianEngine) (Record, error) {
	if len(data) != RecordSize {
		return Record{}, errs.ErrInvalidRecordSize
	}

	var r Record
	copy(r.Raw[:], data)

	name := data[:NameSize]
	if nul := bytes.IndexByte(name, 0); nul != -1 {
		name = name[:nul]
	}
	r.Name, _ = encoding.DecodeString(name)

	h := data[HeaderFieldOffset:]
	r.Difficulty = engine.Uint32(h[0:4])
	r.TimeFlag = engine.Uint32(h[4:8])
	r.StageIndex = engine.Uint32(h[8:12])
	r.Group = engine.Uint32(h[12:16])
	r.Flags = engine.Uint32(h[16:20])
	r.Value = engine.Uint32(h[20:24])
	r.Count = engine.Uint32(h[24:28])
	r.PassValue = engine.Uint32(h[28:32])
	r.RateU32 = engine.Uint32(h[32:36])
	r.ZeroUnused = engine.Uint32(h[36:40])

	p := data[PositionOffset:]
	for i := range r.Position {
		r.Position[i] = math.Float32frombits(engine.Uint32(p[i*4 : i*4+4]))
	}

	return r, nil
}

// Bytes serializes the record using the specified endian engine.
//
// The output starts from the preserved Raw image; the name field is cleared
// and rewritten NUL-padded, then the header block and position floats are
// written at their fixed offsets. Everything else in Raw passes through
// verbatim.
//
// Parameters:
//   - engine: Endian engine for byte order
//
// Returns:
//   - []byte: 6692-byte record
//   - error: ErrNameTooLong if the encoded name does not leave room for
//     the NUL terminator
func (r *Record) Bytes(engine endian.EndianEngine) ([]byte, error) {
	nameBytes := encoding.EncodeString(r.Name)
	if len(nameBytes) >= NameSize {
		return nil, errs.ErrNameTooLong
	}

	b := r.Raw // array copy, Raw itself stays untouched
	for i := range b[:NameSize] {
		b[i] = 0
	}
	copy(b[:NameSize], nameBytes)

	h := b[HeaderFieldOffset:]
	engine.PutUint32(h[0:4], r.Difficulty)
	engine.PutUint32(h[4:8], r.TimeFlag)
	engine.PutUint32(h[8:12], r.StageIndex)
	engine.PutUint32(h[12:16], r.Group)
	engine.PutUint32(h[16:20], r.Flags)
	engine.PutUint32(h[20:24], r.Value)
	engine.PutUint32(h[24:28], r.Count)
	engine.PutUint32(h[28:32], r.PassValue)
	engine.PutUint32(h[32:36], r.RateU32)
	engine.PutUint32(h[36:40], r.ZeroUnused)

	p := b[PositionOffset:]
	for i, v := range r.Position {
		engine.PutUint32(p[i*4:i*4+4], math.Float32bits(v))
	}

	return b[:], nil
}

// WriteToSlice serializes the record into a pre-allocated slice and returns
// the next write position.
//
// Parameters:
//   - data: Destination slice (must have RecordSize bytes free at offset)
//   - offset: Starting position in data
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + RecordSize)
//   - error: ErrNameTooLong if the encoded name does not fit
func (r *Record) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) (int, error) {
	b, err := r.Bytes(engine)
	if err != nil {
		return offset, err
	}

	copy(data[offset:offset+RecordSize], b)

	return offset + RecordSize, nil
}
