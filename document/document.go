// Package document defines the in-memory representation of a converted TRM
// file: a tagged union with exactly one variant active per file, plus the
// JSON marshalling rules for each variant.
//
// Documents are transient. A conversion call constructs one fresh, hands it
// to the caller, and nothing persists between calls.
package document

import "github.com/Krymelte/trm/format"

// Document is one decoded TRM file. Exactly one of the three concrete
// variants implements it for any given file: BinaryDocument for the
// fixed-record layout, KeyValueDocument for the legacy text format, and
// RawDocument for the opaque fallback.
type Document interface {
	// Kind reports which TRM variant this document represents.
	Kind() format.Kind
}

var (
	_ Document = (*BinaryDocument)(nil)
	_ Document = (*KeyValueDocument)(nil)
	_ Document = (*RawDocument)(nil)
)
