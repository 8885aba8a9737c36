package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
)

var testEngine = endian.GetLittleEndianEngine()

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Content:            format.ContentARE,
		Version:            Version,
		StructOffset:       HeaderSize,
		StructCount:        3,
		FieldOffset:        92,
		FieldCount:         7,
		LabelOffset:        176,
		LabelCount:         5,
		FieldDataOffset:    256,
		FieldDataLength:    40,
		FieldIndicesOffset: 296,
		FieldIndicesLength: 28,
		ListIndicesOffset:  324,
		ListIndicesLength:  12,
	}

	data := h.Bytes(testEngine)
	require.Len(t, data, HeaderSize)
	require.Equal(t, "ARE V3.2", string(data[0:8]))

	parsed, err := ParseHeader(data, testEngine)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1), testEngine)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = ParseHeader(nil, testEngine)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
