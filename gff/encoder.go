package gff

import (
	"fmt"
	"math"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
	"github.com/aurorakit/aurora/section"
	"github.com/aurorakit/aurora/stream"
)

// Encoder serializes Documents to GFF V3.2 bytes.
//
// Encoding is deterministic: the struct graph is visited in pre-order and
// labels get ids in first-seen order, so structurally equal documents
// produce identical bytes. Scratch buffers are per-call, so one Encoder may
// be used from multiple goroutines as long as each Document is not mutated
// during its own encode.
type Encoder struct {
	engine endian.EndianEngine
}

// NewEncoder creates an Encoder. GFF files are little-endian.
func NewEncoder() *Encoder {
	return &Encoder{engine: endian.GetLittleEndianEngine()}
}

// Encode serializes the document.
//
// Well-typed trees built through the accessor API cannot fail type dispatch;
// the remaining error cases are a nil or malformed document value.
func (e *Encoder) Encode(doc *Document) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("document must not be nil")
	}
	if !doc.Content.IsWellFormed() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidContentType, string(doc.Content))
	}

	b := newBuilder(e.engine)
	defer b.release()

	if _, err := b.buildStruct(doc.Root); err != nil {
		return nil, err
	}

	return b.assemble(doc.Content), nil
}

// builder holds one encode call's scratch state: the five growable section
// buffers plus the label dedup list. It never outlives the call.
type builder struct {
	engine endian.EndianEngine

	structs      *stream.Writer
	fields       *stream.Writer
	fieldData    *stream.Writer
	fieldIndices *stream.Writer
	listIndices  *stream.Writer

	labels     []string
	labelIndex map[string]uint32
}

func newBuilder(engine endian.EndianEngine) *builder {
	return &builder{
		engine:       engine,
		structs:      stream.NewWriter(engine),
		fields:       stream.NewWriter(engine),
		fieldData:    stream.NewWriter(engine),
		fieldIndices: stream.NewWriter(engine),
		listIndices:  stream.NewWriter(engine),
		labelIndex:   make(map[string]uint32),
	}
}

func (b *builder) release() {
	b.structs.Release()
	b.fields.Release()
	b.fieldData.Release()
	b.fieldIndices.Release()
	b.listIndices.Release()
}

// labelID resolves a label to its table index, inserting it on first sight.
// Identical label text anywhere in the tree shares one entry.
func (b *builder) labelID(label string) (uint32, error) {
	if id, ok := b.labelIndex[label]; ok {
		return id, nil
	}
	if len(label) > section.LabelSize {
		return 0, fmt.Errorf("%w: %q is %d bytes", errs.ErrLabelTooLong, label, len(label))
	}

	id := uint32(len(b.labels))
	b.labels = append(b.labels, label)
	b.labelIndex[label] = id

	return id, nil
}

// buildStruct appends the struct's 12-byte table entry and recursively builds
// its fields, returning the struct's table index.
func (b *builder) buildStruct(s *Struct) (uint32, error) {
	index := uint32(b.structs.Len() / section.StructEntrySize)
	fieldCount := s.Len()

	b.structs.PutInt32(s.ID())
	dataSlot := b.structs.ReserveUint32(1)
	b.structs.PutUint32(uint32(fieldCount))

	switch fieldCount {
	case 0:
		b.structs.SetUint32(dataSlot, section.NoFields)
	case 1:
		// The data word is the field's table index directly.
		fi, err := b.buildField(s.FieldAt(0))
		if err != nil {
			return 0, err
		}
		b.structs.SetUint32(dataSlot, fi)
	default:
		// The data word is a byte offset into the field-indices table;
		// reserve the slots up front and backfill as each field is built.
		idxOffset := b.fieldIndices.ReserveUint32(fieldCount)
		b.structs.SetUint32(dataSlot, uint32(idxOffset))
		for i := 0; i < fieldCount; i++ {
			fi, err := b.buildField(s.FieldAt(i))
			if err != nil {
				return 0, err
			}
			b.fieldIndices.SetUint32(idxOffset+4*i, fi)
		}
	}

	return index, nil
}

// buildField appends the field's 12-byte table entry and its payload,
// returning the field's table index.
func (b *builder) buildField(f *Field) (uint32, error) {
	labelID, err := b.labelID(f.label)
	if err != nil {
		return 0, err
	}

	index := uint32(b.fields.Len() / section.FieldEntrySize)
	b.fields.PutUint32(uint32(f.typ))
	b.fields.PutUint32(labelID)
	dataSlot := b.fields.ReserveUint32(1)

	switch f.typ {
	case format.FieldUInt8, format.FieldUInt16, format.FieldUInt32:
		// Zero-extended into the data word.
		b.fields.SetUint32(dataSlot, uint32(f.num))
	case format.FieldInt8:
		// Sign-extended into the data word.
		b.fields.SetUint32(dataSlot, uint32(int32(int8(f.num))))
	case format.FieldInt16:
		b.fields.SetUint32(dataSlot, uint32(int32(int16(f.num))))
	case format.FieldInt32:
		b.fields.SetUint32(dataSlot, uint32(f.num))
	case format.FieldSingle:
		b.fields.SetUint32(dataSlot, math.Float32bits(float32(f.flt)))
	case format.FieldStruct:
		si, err := b.buildStruct(f.sub)
		if err != nil {
			return 0, err
		}
		b.fields.SetUint32(dataSlot, si)
	case format.FieldList:
		offset, err := b.buildList(f.list)
		if err != nil {
			return 0, err
		}
		b.fields.SetUint32(dataSlot, offset)
	case format.FieldUInt64, format.FieldInt64, format.FieldDouble, format.FieldString,
		format.FieldResRef, format.FieldLocalizedString, format.FieldBinary,
		format.FieldVector3, format.FieldVector4:
		b.fields.SetUint32(dataSlot, uint32(b.fieldData.Len()))
		b.buildPayload(f)
	default:
		// Unreachable for trees built through the accessor API.
		return 0, fmt.Errorf("%w: type id %d for label %q", errs.ErrUnknownFieldType, uint32(f.typ), f.label)
	}

	return index, nil
}

// buildPayload appends a complex field's payload to the field-data blob.
func (b *builder) buildPayload(f *Field) {
	switch f.typ {
	case format.FieldUInt64, format.FieldInt64:
		b.fieldData.PutUint64(f.num)
	case format.FieldDouble:
		b.fieldData.PutFloat64(f.flt)
	case format.FieldString:
		b.fieldData.PutUint32(uint32(len(f.str)))
		b.fieldData.PutString(f.str)
	case format.FieldResRef:
		b.fieldData.PutUint8(uint8(len(f.str)))
		b.fieldData.PutString(f.str)
	case format.FieldLocalizedString:
		b.fieldData.PutInt32(f.loc.StringRef)
		b.fieldData.PutUint32(uint32(len(f.loc.Substrings)))
		for _, sub := range f.loc.Substrings {
			b.fieldData.PutUint32(sub.ID)
			b.fieldData.PutUint32(uint32(len(sub.Text)))
			b.fieldData.PutString(sub.Text)
		}
	case format.FieldBinary:
		b.fieldData.PutUint32(uint32(len(f.bin)))
		b.fieldData.PutBytes(f.bin)
	case format.FieldVector3:
		b.fieldData.PutFloat32(f.vec.X)
		b.fieldData.PutFloat32(f.vec.Y)
		b.fieldData.PutFloat32(f.vec.Z)
	case format.FieldVector4:
		b.fieldData.PutFloat32(f.vec.X)
		b.fieldData.PutFloat32(f.vec.Y)
		b.fieldData.PutFloat32(f.vec.Z)
		b.fieldData.PutFloat32(f.vec.W)
	}
}

// buildList appends a list-indices record (count + struct indices) and
// builds the element structs, returning the record's byte offset.
func (b *builder) buildList(elems []*Struct) (uint32, error) {
	offset := uint32(b.listIndices.Len())

	b.listIndices.PutUint32(uint32(len(elems)))
	slots := b.listIndices.ReserveUint32(len(elems))
	for i, elem := range elems {
		si, err := b.buildStruct(elem)
		if err != nil {
			return 0, err
		}
		b.listIndices.SetUint32(slots+4*i, si)
	}

	return offset, nil
}

// assemble concatenates the header and the six sections in fixed order with
// running-sum offsets.
func (b *builder) assemble(content format.ContentType) []byte {
	structLen := b.structs.Len()
	fieldLen := b.fields.Len()
	labelLen := len(b.labels) * section.LabelSize
	dataLen := b.fieldData.Len()
	fieldIdxLen := b.fieldIndices.Len()
	listIdxLen := b.listIndices.Len()

	header := section.Header{
		Content:            content,
		Version:            section.Version,
		StructOffset:       section.HeaderSize,
		StructCount:        uint32(structLen / section.StructEntrySize),
		FieldOffset:        uint32(section.HeaderSize + structLen),
		FieldCount:         uint32(fieldLen / section.FieldEntrySize),
		LabelOffset:        uint32(section.HeaderSize + structLen + fieldLen),
		LabelCount:         uint32(len(b.labels)),
		FieldDataOffset:    uint32(section.HeaderSize + structLen + fieldLen + labelLen),
		FieldDataLength:    uint32(dataLen),
		FieldIndicesOffset: uint32(section.HeaderSize + structLen + fieldLen + labelLen + dataLen),
		FieldIndicesLength: uint32(fieldIdxLen),
		ListIndicesOffset:  uint32(section.HeaderSize + structLen + fieldLen + labelLen + dataLen + fieldIdxLen),
		ListIndicesLength:  uint32(listIdxLen),
	}

	total := section.HeaderSize + structLen + fieldLen + labelLen + dataLen + fieldIdxLen + listIdxLen
	out := make([]byte, 0, total)
	out = append(out, header.Bytes(b.engine)...)
	out = append(out, b.structs.Bytes()...)
	out = append(out, b.fields.Bytes()...)
	for _, label := range b.labels {
		padded, _ := section.PadLabel(label) // length checked at insertion
		out = append(out, padded...)
	}
	out = append(out, b.fieldData.Bytes()...)
	out = append(out, b.fieldIndices.Bytes()...)
	out = append(out, b.listIndices.Bytes()...)

	return out
}
