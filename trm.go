// Package trm converts between the TRM game-configuration format and an
// editable JSON representation, preserving every byte it does not
// understand.
//
// Three TRM variants are recognized, tried in order:
//
//   - Fixed-record binary: a u32 entry count, 6692-byte records with a
//     NUL-padded name, ten u32 header fields and a float position block,
//     and an 8-float footer. Unknown record bytes round trip verbatim.
//   - Legacy text: line-oriented "key = value" with '#' comments.
//   - Raw fallback: anything else, wrapped as base64 with a printable
//     preview for diagnostics.
//
// # Basic Usage
//
// Converting a TRM file to JSON and back:
//
//	import "github.com/Krymelte/trm"
//
//	jsonData, err := trm.ToJSON(trmBytes)
//	// ... edit jsonData ...
//	trmBytes, err = trm.FromJSON(jsonData)
//
// For access to the document model between the two steps, use Decode and
// Encode with the document package directly.
//
// All functions are pure over their inputs and safe for unsynchronized
// concurrent use; converting many files in parallel needs no coordination.
package trm

import (
	"github.com/Krymelte/trm/codec"
	"github.com/Krymelte/trm/document"
)

// Decode converts raw TRM file contents into a document, trying the binary
// layout, then the legacy text format, then the raw fallback. It always
// yields a document for any input.
//
// Options:
//   - codec.WithNULStripRetry(): strip NUL bytes and retry the structured
//     stages once before falling back to raw (destructive, opt-in)
//   - codec.WithPreviewMinRun(n): minimum printable run length for the raw
//     preview
func Decode(data []byte, opts ...codec.Option) (document.Document, error) {
	return codec.Decode(data, opts...)
}

// Encode converts a document back into TRM file contents, dispatching on
// the document variant.
func Encode(doc document.Document) ([]byte, error) {
	return codec.Encode(doc)
}

// ToJSON converts raw TRM file contents into a JSON artifact (two-space
// indent, trailing newline).
func ToJSON(data []byte, opts ...codec.Option) ([]byte, error) {
	doc, err := codec.Decode(data, opts...)
	if err != nil {
		return nil, err
	}

	return document.Marshal(doc)
}

// FromJSON converts a JSON artifact back into TRM file contents. The JSON
// shape selects the variant: __raw_binary_base64 for raw, an entries array
// for binary, any other flat object for the text mapping.
func FromJSON(jsonData []byte) ([]byte, error) {
	doc, err := document.Unmarshal(jsonData)
	if err != nil {
		return nil, err
	}

	return codec.Encode(doc)
}
