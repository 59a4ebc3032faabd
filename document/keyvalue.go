package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Krymelte/trm/errs"
	"github.com/Krymelte/trm/format"
)

// KeyValueDocument is the editable form of a legacy text TRM file: an
// ordered mapping from string key to string value.
//
// Keys are unique. Setting an existing key replaces its value in place, so
// a duplicate key in the source keeps its first position with its last
// value.
type KeyValueDocument struct {
	pairs []KeyValuePair
	index map[string]int
}

// KeyValuePair is one key/value entry in insertion order.
type KeyValuePair struct {
	Key   string
	Value string
}

// Kind reports format.KindText.
func (d *KeyValueDocument) Kind() format.Kind {
	return format.KindText
}

// Set stores a value for a key. The last value for a duplicate key wins;
// the key keeps the position of its first occurrence.
func (d *KeyValueDocument) Set(key, value string) {
	if i, ok := d.index[key]; ok {
		d.pairs[i].Value = value

		return
	}

	if d.index == nil {
		d.index = make(map[string]int)
	}
	d.index[key] = len(d.pairs)
	d.pairs = append(d.pairs, KeyValuePair{Key: key, Value: value})
}

// Get returns the value for a key and whether it is present.
func (d *KeyValueDocument) Get(key string) (string, bool) {
	i, ok := d.index[key]
	if !ok {
		return "", false
	}

	return d.pairs[i].Value, true
}

// Len returns the number of pairs.
func (d *KeyValueDocument) Len() int {
	return len(d.pairs)
}

// Pairs returns the pairs in insertion order. The slice is shared with the
// document and must not be mutated.
func (d *KeyValueDocument) Pairs() []KeyValuePair {
	return d.pairs
}

// MarshalJSON emits a flat JSON object preserving insertion order, which
// encoding/json's map marshalling would not.
func (d *KeyValueDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range d.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON fills the document from a flat JSON object, preserving key
// order. Scalar values are coerced to their literal text (numbers keep
// their exact source representation, booleans become "true"/"false", null
// becomes the empty string); nested objects or arrays do not fit the text
// variant and are rejected.
func (d *KeyValueDocument) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("key/value document root must be an object: %w", errs.ErrUnsupportedShape)
	}

	d.pairs = nil
	d.index = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v: %w", keyTok, errs.ErrUnsupportedShape)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			if v {
				value = "true"
			} else {
				value = "false"
			}
		case nil:
			value = ""
		default:
			return fmt.Errorf("value for key %q is not a scalar: %w", key, errs.ErrUnsupportedShape)
		}

		d.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}
