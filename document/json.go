package document

import (
	"encoding/json"
	"fmt"

	"github.com/Krymelte/trm/errs"
)

// Marshal serializes a document as a UTF-8 JSON artifact: two-space indent,
// trailing newline, key order as defined by the document variant.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s document: %w", doc.Kind(), err)
	}

	return append(data, '\n'), nil
}

// Unmarshal parses a JSON artifact into the document variant its shape
// selects: __raw_binary_base64 selects the raw fallback, an entries array
// selects the binary variant, any other flat object is the legacy text
// mapping.
//
// Returns:
//   - Document: One of *RawDocument, *BinaryDocument, *KeyValueDocument
//   - error: JSON syntax errors, or ErrUnsupportedShape for a non-object
//     root or a text mapping with non-scalar values
func Unmarshal(data []byte) (Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("JSON root must be an object: %w", errs.ErrUnsupportedShape)
	}

	if _, ok := probe["__raw_binary_base64"]; ok {
		doc := &RawDocument{}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, err
		}

		return doc, nil
	}

	if _, ok := probe["entries"]; ok {
		doc := &BinaryDocument{}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, err
		}

		return doc, nil
	}

	doc := &KeyValueDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}

	return doc, nil
}
