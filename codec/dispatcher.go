// Package codec implements the TRM conversion stages and the dispatcher
// that chains them: binary layout first, legacy text second, opaque raw
// wrapping last.
//
// Each stage is a pure function over an in-memory buffer or document. The
// decode chain is an ordered list of attempts, not layered error handling:
// a structural mismatch at one stage is the expected, common signal to try
// the next, and the chain always terminates in a document.
package codec

import (
	"errors"
	"fmt"

	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/endian"
	"github.com/Krymelte/trm/errs"
)

// Decode converts raw TRM file contents into a document.
//
// Stages, in order:
//  1. Binary: the buffer satisfies the fixed-record length arithmetic.
//     Binary always takes precedence; a matching buffer is never offered
//     to the text parser even when its bytes are valid text.
//  2. Text: the buffer decodes (UTF-8 or fallback charset) and every
//     non-blank, non-comment line matches "key = value".
//  3. With WithNULStripRetry: strip NUL bytes and run stages 1-2 once more.
//  4. Raw: wrap the buffer verbatim with a printable preview.
//
// The returned error is reserved for internal inconsistencies; structural
// mismatches fall through, so callers always receive a document.
func Decode(data []byte, opts ...Option) (document.Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	engine := endian.GetLittleEndianEngine()

	doc, err := tryStructured(data, engine)
	if doc != nil {
		return doc, nil
	}
	if !IsFallthrough(err) {
		return nil, err
	}

	if cfg.nulStripRetry {
		if stripped := StripNUL(data); len(stripped) != len(data) {
			doc, err = tryStructured(stripped, engine)
			if doc != nil {
				return doc, nil
			}
			if !IsFallthrough(err) {
				return nil, err
			}
			data = stripped
		}
	}

	return WrapRaw(data, cfg.previewMinRun), nil
}

// tryStructured runs the binary and text stages over one buffer. A nil
// document pairs with the last stage's error; the caller classifies it with
// IsFallthrough.
func tryStructured(data []byte, engine endian.EndianEngine) (document.Document, error) {
	if MatchesBinaryLayout(data, engine) {
		doc, err := DecodeBinary(data, engine)
		if err == nil {
			return doc, nil
		}
		if !IsFallthrough(err) {
			return nil, err
		}
		// A matching length with a fallthrough-class parse error cannot
		// happen with the fixed layout, but try the text stage rather
		// than guess.
	}

	doc, err := DecodeKeyValue(data)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Encode converts a document back into TRM file contents, dispatching on
// the document variant.
//
// Returns:
//   - []byte: Binary layout bytes, UTF-8 text, or the unwrapped raw buffer
//   - error: Variant-specific encode errors, or ErrUnsupportedShape for an
//     unknown document type
func Encode(doc document.Document) ([]byte, error) {
	switch d := doc.(type) {
	case *document.BinaryDocument:
		return EncodeBinary(d, endian.GetLittleEndianEngine())
	case *document.KeyValueDocument:
		return EncodeKeyValue(d), nil
	case *document.RawDocument:
		return UnwrapRaw(d)
	default:
		return nil, fmt.Errorf("%T: %w", doc, errs.ErrUnsupportedShape)
	}
}

// IsFallthrough reports whether an error from an individual decode stage is
// one the dispatcher treats as "try the next stage" rather than a failure.
func IsFallthrough(err error) bool {
	return errors.Is(err, errs.ErrTruncatedBinary) ||
		errors.Is(err, errs.ErrBinaryContent) ||
		errors.Is(err, errs.ErrMalformedLine)
}
