package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krymelte/trm/endian"
	"github.com/Krymelte/trm/errs"
)

// buildRecordData constructs a record image with known header values, a
// known position and a 0xAA-filled tail.
func buildRecordData(t *testing.T, name string) []byte {
	t.Helper()

	engine := endian.GetLittleEndianEngine()
	data := make([]byte, RecordSize)
	copy(data, name)

	values := []uint32{
		0,   // difficulty
		0,   // time_flag
		1,   // stage_index
		2,   // group
		1,   // flags
		700, // value
		5,   // count
		100, // pass_value
		math.Float32bits(0.05), // rate_u32
		0,                      // zero_unused
	}
	for i, v := range values {
		engine.PutUint32(data[HeaderFieldOffset+i*4:], v)
	}

	engine.PutUint32(data[PositionOffset:], math.Float32bits(1.0))
	engine.PutUint32(data[PositionOffset+4:], math.Float32bits(2.0))
	engine.PutUint32(data[PositionOffset+8:], math.Float32bits(3.0))

	for i := TailOffset; i < RecordSize; i++ {
		data[i] = 0xAA
	}

	return data
}

func TestParseRecord(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := buildRecordData(t, "Easy/S01/SABO")

	r, err := ParseRecord(data, engine)
	require.NoError(t, err)

	require.Equal(t, "Easy/S01/SABO", r.Name)
	require.Equal(t, uint32(0), r.Difficulty)
	require.Equal(t, uint32(1), r.StageIndex)
	require.Equal(t, uint32(2), r.Group)
	require.Equal(t, uint32(700), r.Value)
	require.Equal(t, uint32(5), r.Count)
	require.Equal(t, uint32(100), r.PassValue)
	require.Equal(t, uint32(0), r.ZeroUnused)
	require.InDelta(t, 0.05, r.Rate(), 1e-6)
	require.Equal(t, [PositionFloatCount]float32{1.0, 2.0, 3.0}, r.Position)
	require.Equal(t, data, r.Raw[:])
}

func TestParseRecord_InvalidSize(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := ParseRecord(make([]byte, RecordSize-1), engine)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	_, err = ParseRecord(make([]byte, RecordSize+1), engine)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)
}

func TestRecord_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := buildRecordData(t, "Easy/S01/SABO")

	r, err := ParseRecord(data, engine)
	require.NoError(t, err)

	out, err := r.Bytes(engine)
	require.NoError(t, err)
	require.Equal(t, data, out)
	require.Len(t, out, RecordSize)
}

func TestRecord_EditPreservesUnknownBytes(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := buildRecordData(t, "Easy/S01/SABO")

	r, err := ParseRecord(data, engine)
	require.NoError(t, err)

	r.Count = 999
	r.SetRate(0.1)
	r.Position[2] = 9.5

	out, err := r.Bytes(engine)
	require.NoError(t, err)
	require.Len(t, out, RecordSize)

	// Tail and the reserved gap before the position block are untouched.
	require.Equal(t, data[TailOffset:], out[TailOffset:])
	require.Equal(t, data[HeaderFieldOffset+HeaderFieldCount*4:PositionOffset],
		out[HeaderFieldOffset+HeaderFieldCount*4:PositionOffset])

	reparsed, err := ParseRecord(out, engine)
	require.NoError(t, err)
	require.Equal(t, uint32(999), reparsed.Count)
	require.InDelta(t, 0.1, reparsed.Rate(), 1e-6)
	require.Equal(t, float32(9.5), reparsed.Position[2])
}

func TestRecord_NonUTF8NameReencodesAsUTF8(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := buildRecordData(t, "Caf\xe9")

	r, err := ParseRecord(data, engine)
	require.NoError(t, err)
	// The bare 0xE9 is invalid UTF-8 and decodes via the fallback charset.
	require.Equal(t, "Café", r.Name)

	out, err := r.Bytes(engine)
	require.NoError(t, err)

	// The name field is rewritten in UTF-8, so its bytes change: the
	// single 0xE9 becomes the two-byte sequence 0xC3 0xA9. Everything
	// outside the name field still round trips exactly.
	require.Equal(t, []byte("Caf\xc3\xa9\x00"), out[:6])
	require.NotEqual(t, data[:NameSize], out[:NameSize])
	require.Equal(t, data[NameSize:], out[NameSize:])
}

func TestRecord_RateBitFidelity(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := buildRecordData(t, "rate")

	// A NaN payload must survive untouched when rate is not edited.
	const nanBits = uint32(0x7FC00001)
	engine.PutUint32(data[HeaderFieldOffset+8*4:], nanBits)

	r, err := ParseRecord(data, engine)
	require.NoError(t, err)
	require.Equal(t, nanBits, r.RateU32)

	out, err := r.Bytes(engine)
	require.NoError(t, err)
	require.Equal(t, nanBits, engine.Uint32(out[HeaderFieldOffset+8*4:]))
}

func TestRecord_SetRate(t *testing.T) {
	var r Record
	r.SetRate(0.05)
	require.Equal(t, math.Float32bits(0.05), r.RateU32)
	require.Equal(t, float32(0.05), r.Rate())
}

func TestRecord_NameTooLong(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	r := Record{Name: "0123456789012345678901234567890X"} // 32 bytes, no room for NUL
	_, err := r.Bytes(engine)
	require.ErrorIs(t, err, errs.ErrNameTooLong)

	r.Name = "0123456789012345678901234567890" // 31 bytes fits
	out, err := r.Bytes(engine)
	require.NoError(t, err)
	require.Equal(t, byte(0), out[NameSize-1])
}

func TestRecord_WriteToSlice(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := buildRecordData(t, "slice")

	r, err := ParseRecord(data, engine)
	require.NoError(t, err)

	dst := make([]byte, 8+RecordSize)
	next, err := r.WriteToSlice(dst, 8, engine)
	require.NoError(t, err)
	require.Equal(t, 8+RecordSize, next)
	require.Equal(t, data, dst[8:])
}

func TestExpectedFileSize(t *testing.T) {
	require.Equal(t, uint64(36), ExpectedFileSize(0))
	require.Equal(t, uint64(4+6692+32), ExpectedFileSize(1))

	// A hostile entry count must not wrap the arithmetic.
	require.Equal(t, uint64(4)+uint64(math.MaxUint32)*RecordSize+32,
		ExpectedFileSize(math.MaxUint32))
}
