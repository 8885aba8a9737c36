package aurora

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurorakit/aurora/format"
	"github.com/aurorakit/aurora/gff"
)

func buildCreatureDoc(t *testing.T) *gff.Document {
	t.Helper()

	doc := gff.NewDocument(format.ContentUTC)
	require.NoError(t, doc.Root.SetResRef("TemplateResRef", "nw_kobold"))
	require.NoError(t, doc.Root.SetUInt8("Level", 3))
	require.NoError(t, doc.Root.SetLocalizedString("FirstName", gff.LocalizedString{
		StringRef:  gff.NoStringRef,
		Substrings: []gff.Substring{{ID: 0, Text: "Deekin"}},
	}))

	item := gff.NewStruct(0)
	require.NoError(t, item.SetResRef("InventoryRes", "nw_it_mring021"))
	require.NoError(t, doc.Root.SetList("ItemList", []*gff.Struct{item}))

	return doc
}

func TestEncodeDecodeGFF(t *testing.T) {
	doc := buildCreatureDoc(t)

	data, err := EncodeGFF(doc)
	require.NoError(t, err)

	decoded, err := DecodeGFF(data)
	require.NoError(t, err)
	require.True(t, doc.Equal(decoded))

	level, ok := decoded.Root.UInt8("Level")
	require.True(t, ok)
	require.Equal(t, uint8(3), level)
}

func TestDecodeGFFFrom(t *testing.T) {
	doc := buildCreatureDoc(t)
	data, err := EncodeGFF(doc)
	require.NoError(t, err)

	decoded, err := DecodeGFFFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.True(t, doc.Equal(decoded))
}

func TestDecodeGFFAt(t *testing.T) {
	doc := buildCreatureDoc(t)
	payload, err := EncodeGFF(doc)
	require.NoError(t, err)

	container := append(make([]byte, 128), payload...)
	decoded, err := DecodeGFFAt(bytes.NewReader(container), 128, int64(len(payload)))
	require.NoError(t, err)
	require.True(t, doc.Equal(decoded))
}

func TestDecodeGFFRejectsGarbage(t *testing.T) {
	_, err := DecodeGFF([]byte("not a gff file at all"))
	require.Error(t, err)
}

func TestResourceID(t *testing.T) {
	require.Equal(t, ResourceID("m13aa_area"), ResourceID("m13aa_area"))
	require.NotEqual(t, ResourceID("m13aa_area"), ResourceID("m13ab_area"))
}
