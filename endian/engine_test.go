package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint32(nil, 0x11223344)
	require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, buf)
	require.Equal(t, uint32(0x11223344), engine.Uint32(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint16(nil, 0xBEEF)
	require.Equal(t, []byte{0xBE, 0xEF}, buf)
	require.Equal(t, uint16(0xBEEF), engine.Uint16(buf))
}
