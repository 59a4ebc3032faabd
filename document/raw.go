package document

import "github.com/Krymelte/trm/format"

// RawDocument wraps an unparseable byte buffer. RawBase64 is the complete
// original content; PrintablePreview is a diagnostic extraction of readable
// substrings and never participates in reconstruction.
type RawDocument struct {
	RawBase64        string   `json:"__raw_binary_base64"`
	PrintablePreview []string `json:"__printable_preview,omitempty"`
}

// Kind reports format.KindRaw.
func (d *RawDocument) Kind() format.Kind {
	return format.KindRaw
}
