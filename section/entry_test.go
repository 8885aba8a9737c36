package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
)

func TestStructEntryRoundTrip(t *testing.T) {
	e := StructEntry{ID: -1, Data: NoFields, FieldCount: 0}
	data := e.Bytes(testEngine)
	require.Len(t, data, StructEntrySize)

	var parsed StructEntry
	require.NoError(t, parsed.Parse(data, testEngine))
	require.Equal(t, e, parsed)

	e = StructEntry{ID: 7, Data: 24, FieldCount: 3}
	data = e.Bytes(testEngine)
	require.NoError(t, parsed.Parse(data, testEngine))
	require.Equal(t, e, parsed)
}

func TestStructEntryTruncated(t *testing.T) {
	var e StructEntry
	require.ErrorIs(t, e.Parse([]byte{1, 2, 3}, testEngine), errs.ErrTruncatedData)
}

func TestFieldEntryRoundTrip(t *testing.T) {
	e := FieldEntry{Type: format.FieldLocalizedString, LabelIndex: 4, Data: 128}
	data := e.Bytes(testEngine)
	require.Len(t, data, FieldEntrySize)

	var parsed FieldEntry
	require.NoError(t, parsed.Parse(data, testEngine))
	require.Equal(t, e, parsed)
}

func TestPadLabel(t *testing.T) {
	b, err := PadLabel("Tag")
	require.NoError(t, err)
	require.Len(t, b, LabelSize)
	require.Equal(t, "Tag", TrimLabel(b))

	// Exactly 16 bytes fills the entry with no NUL.
	full := "ABCDEFGHIJKLMNOP"
	b, err = PadLabel(full)
	require.NoError(t, err)
	require.Equal(t, full, TrimLabel(b))

	_, err = PadLabel("ABCDEFGHIJKLMNOPQ")
	require.ErrorIs(t, err, errs.ErrLabelTooLong)
}
