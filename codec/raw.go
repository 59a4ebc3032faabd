package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/encoding"
	"github.com/Krymelte/trm/errs"
)

// WrapRaw wraps an unparseable buffer as a raw document: the full contents
// base64-encoded, plus a printable-substring preview when the buffer
// contains any qualifying runs. The preview is diagnostic only.
//
// Parameters:
//   - data: Buffer to wrap
//   - previewMinRun: Minimum printable run length; < 1 uses the default
func WrapRaw(data []byte, previewMinRun int) *document.RawDocument {
	return &document.RawDocument{
		RawBase64:        base64.StdEncoding.EncodeToString(data),
		PrintablePreview: encoding.ExtractPrintable(data, previewMinRun),
	}
}

// UnwrapRaw reverses WrapRaw from the base64 payload alone. The printable
// preview, if present, is ignored entirely; it must never influence
// reconstruction.
//
// Returns:
//   - []byte: The original buffer, verbatim
//   - error: ErrInvalidBase64 when the payload does not decode
func UnwrapRaw(doc *document.RawDocument) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(doc.RawBase64)
	if err != nil {
		return nil, fmt.Errorf("__raw_binary_base64: %w", errs.ErrInvalidBase64)
	}

	return data, nil
}

// StripNUL returns a copy of data with every NUL byte removed. This is a
// destructive transformation offered only as an opt-in last resort before
// giving up on structured parsing; it never runs by default.
func StripNUL(data []byte) []byte {
	if bytes.IndexByte(data, 0) == -1 {
		return data
	}

	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b != 0 {
			out = append(out, b)
		}
	}

	return out
}
