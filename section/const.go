// Package section implements the wire-level layout of the binary TRM
// variant: the fixed 6692-byte entry record and the 8-float footer.
//
// All multi-byte fields are little-endian and read or written through an
// explicit endian engine. Every byte of a record that is not covered by a
// named field is preserved verbatim in the record image, so serializing an
// unedited record reproduces it bit for bit.
package section

// Binary TRM file layout:
//
//	offset 0x00  entry_count  u32
//	offset 0x04  entry_count × 6692-byte records
//	then         footer: 8 × float32 (32 bytes)
//
// Record layout (offsets within one record):
//
//	0x00  name          char[32], NUL-padded
//	0x20  header block  10 × u32 (see HeaderFieldCount)
//	0x48  reserved      12 bytes, preserved opaquely
//	0x54  position      3 × float32
//	0x60  tail          opaque bytes through 0x1A23, preserved verbatim
const (
	// EntryArrayOffset is the byte offset of the first record, right after
	// the u32 entry count.
	EntryArrayOffset = 4

	// RecordSize is the fixed size of one entry record in bytes.
	RecordSize = 6692

	// NameSize is the size of the NUL-padded name field at record offset 0.
	NameSize = 32

	// HeaderFieldOffset is the record offset of the u32 header block.
	HeaderFieldOffset = 0x20

	// HeaderFieldCount is the number of u32 fields in the header block.
	HeaderFieldCount = 10

	// PositionOffset is the record offset of the 3-float position block.
	PositionOffset = 0x54

	// PositionFloatCount is the number of float32 position components.
	PositionFloatCount = 3

	// TailOffset is the record offset of the opaque tail that follows the
	// position block.
	TailOffset = 0x60

	// FooterFloatCount is the number of float32 values in the file footer.
	FooterFloatCount = 8

	// FooterSize is the byte size of the file footer.
	FooterSize = FooterFloatCount * 4
)

// ExpectedFileSize returns the exact byte length a well-formed binary TRM
// file with entryCount records must have. The arithmetic runs in uint64 so
// a hostile entry count cannot wrap around.
func ExpectedFileSize(entryCount uint32) uint64 {
	return EntryArrayOffset + uint64(entryCount)*RecordSize + FooterSize
}
