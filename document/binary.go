package document

import (
	"encoding/json"

	"github.com/Krymelte/trm/format"
)

// BinaryDocument is the editable form of a fixed-record binary TRM file.
type BinaryDocument struct {
	EntryCount uint32  `json:"entry_count"`
	Entries    []Entry `json:"entries"`
	Footer     Footer  `json:"footer"`
}

// Entry is the editable form of one 6692-byte record.
//
// RawEntryBase64 carries the complete original record image; the named
// fields are merged into it on encode, so unknown bytes survive edits. A
// newly added entry may leave it empty, in which case the image starts
// zero-filled.
type Entry struct {
	Name       string `json:"name"`
	Difficulty uint32 `json:"difficulty"`
	TimeFlag   uint32 `json:"time_flag"`
	StageIndex uint32 `json:"stage_index"`
	Group      uint32 `json:"group"`
	Flags      uint32 `json:"flags"`
	Value      uint32 `json:"value"`
	Count      uint32 `json:"count"`
	PassValue  uint32 `json:"pass_value"`

	// Rate is the float view of the rate_u32 header field, exposed for
	// editing. When present it takes precedence on encode: the wire value
	// is re-derived from the float's bit pattern. When absent (nil, or a
	// non-finite value that JSON cannot carry), RateU32 is written directly.
	Rate    *float64 `json:"rate,omitempty"`
	RateU32 uint32   `json:"rate_u32"`

	ZeroUnused uint32   `json:"zero_unused"`
	Position   Position `json:"position"`

	RawEntryBase64 string `json:"raw_entry_base64,omitempty"`
}

// Position holds the 3-float position block of a record.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Footer holds the 8 footer floats. An absent or empty Floats slice encodes
// as all zeros.
type Footer struct {
	Floats []float64 `json:"floats"`
}

// Kind reports format.KindBinary.
func (d *BinaryDocument) Kind() format.Kind {
	return format.KindBinary
}

// UnmarshalJSON fills the document from JSON, defaulting entry_count to the
// number of entries when the field is absent. A present entry_count is kept
// as-is; the encoder rejects a mismatch rather than silently fixing it.
func (d *BinaryDocument) UnmarshalJSON(data []byte) error {
	type alias BinaryDocument
	aux := struct {
		EntryCount *uint32 `json:"entry_count"`
		*alias
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.EntryCount != nil {
		d.EntryCount = *aux.EntryCount
	} else {
		d.EntryCount = uint32(len(d.Entries)) //nolint:gosec
	}

	return nil
}
