package codec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krymelte/trm/document"
	"github.com/Krymelte/trm/errs"
)

func TestRaw_RoundTrip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x00, 'S', 't', 'a', 'g', 'e', 0x03, 0x04}

	doc := WrapRaw(data, 4)
	require.Equal(t, base64.StdEncoding.EncodeToString(data), doc.RawBase64)
	require.Equal(t, []string{"Stage"}, doc.PrintablePreview)

	out, err := UnwrapRaw(doc)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestWrapRaw_Latin1Printable(t *testing.T) {
	// Bytes in the Latin-1 printable range (0xA0 and up) extend a run;
	// they read as text after the Windows-1252 fallback decode.
	data := []byte{0x00, 'S', 't', 'a', 'g', 'e', 0xBE, 0xEF, 0x00}

	doc := WrapRaw(data, 4)
	require.Equal(t, []string{"Stage¾ï"}, doc.PrintablePreview)
}

func TestUnwrapRaw_IgnoresPreview(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	doc := WrapRaw(data, 4)

	// Tampering with the preview must not affect reconstruction.
	doc.PrintablePreview = []string{"bogus", "content"}

	out, err := UnwrapRaw(doc)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestUnwrapRaw_InvalidBase64(t *testing.T) {
	_, err := UnwrapRaw(&document.RawDocument{RawBase64: "!!! not base64 !!!"})
	require.ErrorIs(t, err, errs.ErrInvalidBase64)
}

func TestWrapRaw_EmptyBuffer(t *testing.T) {
	doc := WrapRaw(nil, 4)
	require.Empty(t, doc.RawBase64)
	require.Nil(t, doc.PrintablePreview)

	out, err := UnwrapRaw(doc)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestStripNUL(t *testing.T) {
	require.Equal(t, []byte("AB"), StripNUL([]byte{0x00, 'A', 0x00, 'B', 0x00}))

	// No NULs returns the input unchanged.
	clean := []byte("clean")
	require.Equal(t, clean, StripNUL(clean))
}
