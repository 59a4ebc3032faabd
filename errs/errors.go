// Package errs defines the sentinel errors shared by the trm packages.
//
// Decode-direction structural mismatches for the binary layout are not
// errors at all; the dispatcher treats them as fallthrough conditions. The
// sentinels here cover encode-direction and explicit-mode failures, so
// callers can classify them with errors.Is.
package errs

import "errors"

var (
	// ErrMalformedLine indicates a legacy text data line without a '='.
	ErrMalformedLine = errors.New("text line is missing '='")

	// ErrBinaryContent indicates NUL bytes in a buffer handed to the legacy
	// text parser. The dispatcher uses it to fall through to the raw stage.
	ErrBinaryContent = errors.New("content contains NUL bytes, not legacy text")

	// ErrTruncatedBinary indicates a buffer whose length does not satisfy
	// 4 + entry_count*6692 + 32 when binary decoding was requested explicitly.
	ErrTruncatedBinary = errors.New("binary TRM length does not match entry count")

	// ErrInvalidBase64 indicates undecodable base64 in a raw document or a
	// raw_entry_base64 field.
	ErrInvalidBase64 = errors.New("invalid base64 payload")

	// ErrUnsupportedShape indicates a JSON document matching none of the
	// three known TRM shapes.
	ErrUnsupportedShape = errors.New("document matches no known TRM shape")

	// ErrInvalidRecordSize indicates a record image that is not exactly
	// section.RecordSize bytes.
	ErrInvalidRecordSize = errors.New("invalid record size")

	// ErrInvalidFooterSize indicates a footer block that is not exactly
	// section.FooterSize bytes.
	ErrInvalidFooterSize = errors.New("invalid footer size")

	// ErrInvalidFooterCount indicates a footer float list without exactly
	// section.FooterFloatCount values.
	ErrInvalidFooterCount = errors.New("footer must contain exactly 8 float values")

	// ErrNameTooLong indicates an entry name that does not fit in the
	// 32-byte NUL-terminated name field.
	ErrNameTooLong = errors.New("entry name must be shorter than 32 bytes")

	// ErrEntryCountMismatch indicates entry_count disagreeing with the
	// number of entries supplied on encode.
	ErrEntryCountMismatch = errors.New("entry_count does not match number of entries")
)
