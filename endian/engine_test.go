package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	data := []byte{0x01, 0x02, 0x03, 0x04}
	require.Equal(t, uint32(0x04030201), engine.Uint32(data))

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x04030201)
	require.Equal(t, data, buf)

	appended := engine.AppendUint32(nil, 0x04030201)
	require.Equal(t, data, appended)
}
