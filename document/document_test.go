package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krymelte/trm/errs"
	"github.com/Krymelte/trm/format"
)

func TestKeyValueDocument_SetAndGet(t *testing.T) {
	doc := &KeyValueDocument{}
	doc.Set("name", "Example")
	doc.Set("value", "42")

	v, ok := doc.Get("name")
	require.True(t, ok)
	require.Equal(t, "Example", v)

	_, ok = doc.Get("missing")
	require.False(t, ok)
	require.Equal(t, 2, doc.Len())
}

func TestKeyValueDocument_DuplicateKeyLastWinsFirstPosition(t *testing.T) {
	doc := &KeyValueDocument{}
	doc.Set("a", "1")
	doc.Set("b", "2")
	doc.Set("a", "3")

	require.Equal(t, 2, doc.Len())
	require.Equal(t, []KeyValuePair{{"a", "3"}, {"b", "2"}}, doc.Pairs())
}

func TestKeyValueDocument_MarshalPreservesOrder(t *testing.T) {
	doc := &KeyValueDocument{}
	doc.Set("zebra", "1")
	doc.Set("alpha", "2")
	doc.Set("mid", "3")

	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"zebra":"1","alpha":"2","mid":"3"}`, string(out))
}

func TestKeyValueDocument_UnmarshalCoercesScalars(t *testing.T) {
	doc := &KeyValueDocument{}
	err := doc.UnmarshalJSON([]byte(`{"a":"text","b":42,"c":0.05,"d":true,"e":null}`))
	require.NoError(t, err)

	require.Equal(t, []KeyValuePair{
		{"a", "text"},
		{"b", "42"},
		{"c", "0.05"},
		{"d", "true"},
		{"e", ""},
	}, doc.Pairs())
}

func TestKeyValueDocument_UnmarshalRejectsNested(t *testing.T) {
	doc := &KeyValueDocument{}
	err := doc.UnmarshalJSON([]byte(`{"a":{"nested":1}}`))
	require.ErrorIs(t, err, errs.ErrUnsupportedShape)

	err = doc.UnmarshalJSON([]byte(`{"a":[1,2]}`))
	require.ErrorIs(t, err, errs.ErrUnsupportedShape)
}

func TestUnmarshal_ShapeDispatch(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"__raw_binary_base64":"QUJD"}`))
	require.NoError(t, err)
	require.Equal(t, format.KindRaw, doc.Kind())

	doc, err = Unmarshal([]byte(`{"entry_count":0,"entries":[],"footer":{"floats":[]}}`))
	require.NoError(t, err)
	require.Equal(t, format.KindBinary, doc.Kind())

	doc, err = Unmarshal([]byte(`{"name":"Example","value":"42"}`))
	require.NoError(t, err)
	require.Equal(t, format.KindText, doc.Kind())
}

func TestUnmarshal_RawShapeWinsOverEntries(t *testing.T) {
	// A document carrying both markers is raw; the raw marker is the most
	// specific shape.
	doc, err := Unmarshal([]byte(`{"__raw_binary_base64":"QUJD","entries":[]}`))
	require.NoError(t, err)
	require.Equal(t, format.KindRaw, doc.Kind())
}

func TestUnmarshal_NonObjectRoot(t *testing.T) {
	_, err := Unmarshal([]byte(`[1,2,3]`))
	require.ErrorIs(t, err, errs.ErrUnsupportedShape)

	_, err = Unmarshal([]byte(`"scalar"`))
	require.ErrorIs(t, err, errs.ErrUnsupportedShape)
}

func TestBinaryDocument_EntryCountDefaults(t *testing.T) {
	doc := &BinaryDocument{}
	err := doc.UnmarshalJSON([]byte(`{"entries":[{"name":"a"},{"name":"b"}]}`))
	require.NoError(t, err)
	require.Equal(t, uint32(2), doc.EntryCount)

	// A present entry_count is kept even when it disagrees; the encoder
	// rejects the mismatch instead of papering over it.
	doc = &BinaryDocument{}
	err = doc.UnmarshalJSON([]byte(`{"entry_count":5,"entries":[{"name":"a"}]}`))
	require.NoError(t, err)
	require.Equal(t, uint32(5), doc.EntryCount)
}

func TestMarshal_TrailingNewline(t *testing.T) {
	doc := &RawDocument{RawBase64: "QUJD"}
	out, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, byte('\n'), out[len(out)-1])
	require.Contains(t, string(out), "__raw_binary_base64")
}

func TestDocumentKinds(t *testing.T) {
	require.Equal(t, format.KindBinary, (&BinaryDocument{}).Kind())
	require.Equal(t, format.KindText, (&KeyValueDocument{}).Kind())
	require.Equal(t, format.KindRaw, (&RawDocument{}).Kind())
}
