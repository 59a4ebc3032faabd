package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/encoding"
	"github.com/Krymelte/trm/errs"
)

// DecodeKeyValue parses a buffer as the legacy line-oriented text variant.
//
// Blank lines and lines whose first non-space character is '#' are skipped.
// Every remaining line must contain '='; it is split on the first '=' and
// both sides are trimmed. Duplicate keys follow the last-wins policy of
// document.KeyValueDocument.
//
// Parameters:
//   - data: Complete file contents
//
// Returns:
//   - *document.KeyValueDocument: Parsed mapping in line order
//   - error: ErrBinaryContent when the buffer holds NUL bytes,
//     ErrMalformedLine (wrapped with the 1-based line number) for a data
//     line without '='
func DecodeKeyValue(data []byte) (*document.KeyValueDocument, error) {
	if bytes.IndexByte(data, 0) != -1 {
		return nil, errs.ErrBinaryContent
	}

	text, _ := encoding.DecodeString(data)

	doc := &document.KeyValueDocument{}
	for lineNo, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, fmt.Errorf("line %d %q: %w", lineNo+1, rawLine, errs.ErrMalformedLine)
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		doc.Set(key, value)
	}

	return doc, nil
}

// EncodeKeyValue serializes a key/value document as UTF-8 text: one
// "key = value" line per pair in insertion order, with a trailing newline
// when the document is non-empty. Comments from the source are not
// re-emitted; that loss is inherent to the text round trip.
func EncodeKeyValue(doc *document.KeyValueDocument) []byte {
	if doc.Len() == 0 {
		return []byte{}
	}

	var sb strings.Builder
	for _, p := range doc.Pairs() {
		sb.WriteString(p.Key)
		sb.WriteString(" = ")
		sb.WriteString(p.Value)
		sb.WriteByte('\n')
	}

	return encoding.EncodeString(sb.String())
}
