package codec

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/endian"
	"github.com/Krymelte/trm/errs"
	"github.com/Krymelte/trm/internal/pool"
	"github.com/Krymelte/trm/section"
)

// MatchesBinaryLayout reports whether a buffer structurally matches the
// fixed-record binary layout: it is large enough to hold an entry count and
// footer, and its total length equals exactly
// 4 + entry_count*6692 + 32.
//
// This is the dispatcher's precondition for the binary stage. A buffer that
// satisfies it is always decoded as binary, even when its bytes also happen
// to be valid text.
func MatchesBinaryLayout(data []byte, engine endian.EndianEngine) bool {
	if len(data) < section.EntryArrayOffset+section.FooterSize {
		return false
	}

	entryCount := engine.Uint32(data[0:4])

	return uint64(len(data)) == section.ExpectedFileSize(entryCount)
}

// DecodeBinary decodes a buffer as the fixed-record binary variant.
//
// Callers that want the fallthrough behavior should gate on
// MatchesBinaryLayout first; this function reports a structural mismatch as
// ErrTruncatedBinary for explicit binary-mode use.
//
// Parameters:
//   - data: Complete file contents
//   - engine: Endian engine for byte order
//
// Returns:
//   - *document.BinaryDocument: Decoded document, one entry per record
//   - error: ErrTruncatedBinary when the length arithmetic does not hold
func DecodeBinary(data []byte, engine endian.EndianEngine) (*document.BinaryDocument, error) {
	if !MatchesBinaryLayout(data, engine) {
		return nil, errs.ErrTruncatedBinary
	}

	entryCount := engine.Uint32(data[0:4])
	doc := &document.BinaryDocument{
		EntryCount: entryCount,
		Entries:    make([]document.Entry, 0, entryCount),
	}

	offset := section.EntryArrayOffset
	for i := uint32(0); i < entryCount; i++ {
		record, err := section.ParseRecord(data[offset:offset+section.RecordSize], engine)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		doc.Entries = append(doc.Entries, entryFromRecord(&record))
		offset += section.RecordSize
	}

	footer, err := section.ParseFooter(data[offset:offset+section.FooterSize], engine)
	if err != nil {
		return nil, err
	}

	doc.Footer.Floats = make([]float64, section.FooterFloatCount)
	for i, v := range footer {
		doc.Footer.Floats[i] = float64(v)
	}

	return doc, nil
}

// EncodeBinary serializes a binary document back to the wire layout.
//
// Each entry starts from its preserved record image (zero-filled when the
// entry is new) and the named fields are written over it, so unedited bytes
// round trip exactly.
//
// Parameters:
//   - doc: Binary document to serialize
//   - engine: Endian engine for byte order
//
// Returns:
//   - []byte: Complete file contents, 4 + n*6692 + 32 bytes
//   - error: ErrEntryCountMismatch, ErrInvalidFooterCount, ErrNameTooLong,
//     ErrInvalidBase64 or ErrInvalidRecordSize per entry
func EncodeBinary(doc *document.BinaryDocument, engine endian.EndianEngine) ([]byte, error) {
	if int(doc.EntryCount) != len(doc.Entries) {
		return nil, errs.ErrEntryCountMismatch
	}

	footer, ok := footerFromDocument(doc.Footer)
	if !ok {
		return nil, errs.ErrInvalidFooterCount
	}

	total := int(section.ExpectedFileSize(doc.EntryCount))

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)
	buf.ExtendTo(total)

	out := buf.Bytes()
	engine.PutUint32(out[0:4], doc.EntryCount)

	offset := section.EntryArrayOffset
	for i := range doc.Entries {
		record, err := recordFromEntry(&doc.Entries[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		offset, err = record.WriteToSlice(out, offset, engine)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	footer.WriteToSlice(out, offset, engine)

	result := make([]byte, total)
	copy(result, out)

	return result, nil
}

// footerFromDocument converts the document footer to wire floats,
// zero-filling when the document carries none. Reports false when a
// non-empty float list has the wrong length.
func footerFromDocument(f document.Footer) (section.Footer, bool) {
	var out section.Footer
	if len(f.Floats) == 0 {
		return out, true
	}
	if len(f.Floats) != section.FooterFloatCount {
		return out, false
	}

	for i, v := range f.Floats {
		out[i] = float32(v)
	}

	return out, true
}

// entryFromRecord converts a wire record into its editable document form.
func entryFromRecord(r *section.Record) document.Entry {
	entry := document.Entry{
		Name:           r.Name,
		Difficulty:     r.Difficulty,
		TimeFlag:       r.TimeFlag,
		StageIndex:     r.StageIndex,
		Group:          r.Group,
		Flags:          r.Flags,
		Value:          r.Value,
		Count:          r.Count,
		PassValue:      r.PassValue,
		RateU32:        r.RateU32,
		ZeroUnused:     r.ZeroUnused,
		RawEntryBase64: base64.StdEncoding.EncodeToString(r.Raw[:]),
		Position: document.Position{
			X: float64(r.Position[0]),
			Y: float64(r.Position[1]),
			Z: float64(r.Position[2]),
		},
	}

	// JSON cannot carry NaN or infinities; those rate bit patterns travel
	// through rate_u32 alone.
	rate := float64(r.Rate())
	if !math.IsNaN(rate) && !math.IsInf(rate, 0) {
		entry.Rate = &rate
	}

	return entry
}

// recordFromEntry converts an editable entry back into a wire record,
// restoring the preserved image and applying the rate precedence rule.
func recordFromEntry(e *document.Entry) (section.Record, error) {
	r := section.Record{
		Name:       e.Name,
		Difficulty: e.Difficulty,
		TimeFlag:   e.TimeFlag,
		StageIndex: e.StageIndex,
		Group:      e.Group,
		Flags:      e.Flags,
		Value:      e.Value,
		Count:      e.Count,
		PassValue:  e.PassValue,
		RateU32:    e.RateU32,
		ZeroUnused: e.ZeroUnused,
		Position: [section.PositionFloatCount]float32{
			float32(e.Position.X),
			float32(e.Position.Y),
			float32(e.Position.Z),
		},
	}

	if e.Rate != nil {
		// Editing rate always wins over the stored bits.
		r.SetRate(float32(*e.Rate))
	}

	if e.RawEntryBase64 != "" {
		image, err := base64.StdEncoding.DecodeString(e.RawEntryBase64)
		if err != nil {
			return section.Record{}, fmt.Errorf("raw_entry_base64: %w", errs.ErrInvalidBase64)
		}
		if len(image) != section.RecordSize {
			return section.Record{}, fmt.Errorf("raw_entry_base64 must decode to %d bytes: %w",
				section.RecordSize, errs.ErrInvalidRecordSize)
		}
		copy(r.Raw[:], image)
	}

	return r, nil
}
