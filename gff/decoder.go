package gff

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aurorakit/aurora/endian"
	"github.com/aurorakit/aurora/errs"
	"github.com/aurorakit/aurora/format"
	"github.com/aurorakit/aurora/internal/options"
	"github.com/aurorakit/aurora/section"
	"github.com/aurorakit/aurora/stream"
)

// DefaultMaxDepth is the default struct nesting limit. Real game resources
// nest a few dozen levels at most; the limit exists so a corrupted file
// encoding a struct-index cycle fails with ErrNestingTooDeep instead of
// recursing forever.
const DefaultMaxDepth = 1000

// Decoder reads one GFF resource from a seekable byte source and materializes
// it into a Document. The whole reachable graph is built eagerly; a failed
// decode never yields a partial Document.
//
// A Decoder is not safe for concurrent use, but distinct decoders over
// distinct sources are independent.
type Decoder struct {
	r        *stream.Reader
	maxDepth int
	known    map[format.ContentType]struct{}

	header section.Header
	labels []string
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithMaxDepth overrides the struct nesting limit (default DefaultMaxDepth).
func WithMaxDepth(depth int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		d.maxDepth = depth

		return nil
	})
}

// WithContentTypes adds content tags to the recognized set, for callers with
// tool-defined tags beyond format.KnownContentTypes.
func WithContentTypes(types ...format.ContentType) DecoderOption {
	return options.NoError(func(d *Decoder) {
		for _, c := range types {
			d.known[c] = struct{}{}
		}
	})
}

func newDecoder(r *stream.Reader, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		r:        r,
		maxDepth: DefaultMaxDepth,
		known:    make(map[format.ContentType]struct{}),
	}
	for _, c := range format.KnownContentTypes() {
		d.known[c] = struct{}{}
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// NewDecoder creates a Decoder reading from src. The resource is assumed to
// start at byte 0 of src. GFF files are little-endian.
func NewDecoder(src io.ReadSeeker, opts ...DecoderOption) (*Decoder, error) {
	return newDecoder(stream.NewReader(src, endian.GetLittleEndianEngine()), opts...)
}

// NewBytesDecoder creates a Decoder over an in-memory byte slice.
func NewBytesDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	return newDecoder(stream.NewBytesReader(data, endian.GetLittleEndianEngine()), opts...)
}

// NewDecoderAt creates a Decoder over the size bytes of src starting at
// offset, for resources embedded inside a larger container file. All header
// offsets are resolved relative to offset, and reads beyond the bound fail
// with errs.ErrTruncatedData.
func NewDecoderAt(src io.ReaderAt, offset, size int64, opts ...DecoderOption) (*Decoder, error) {
	return newDecoder(stream.NewSectionReader(src, offset, size, endian.GetLittleEndianEngine()), opts...)
}

// Decode reads the header, the label table, and then the whole struct graph
// starting at struct index 0.
//
// Errors are fatal and carry the originating condition: an unrecognized
// content tag or a version other than "V3.2" fails with
// errs.ErrInvalidContentType or errs.ErrInvalidVersion, reads past the
// source bounds with errs.ErrTruncatedData, and an unrecognized field type
// id with errs.ErrUnknownFieldType.
func (d *Decoder) Decode() (*Document, error) {
	if err := d.parseHeader(); err != nil {
		return nil, err
	}
	if err := d.loadLabels(); err != nil {
		return nil, err
	}

	root, err := d.loadStruct(0, 0)
	if err != nil {
		return nil, err
	}

	return &Document{Content: d.header.Content, Root: root}, nil
}

func (d *Decoder) parseHeader() error {
	if err := d.r.Seek(0); err != nil {
		return err
	}

	raw, err := d.r.Bytes(section.HeaderSize)
	if err != nil {
		return err
	}

	header, err := section.ParseHeader(raw, endian.GetLittleEndianEngine())
	if err != nil {
		return err
	}

	if _, ok := d.known[header.Content]; !ok {
		return fmt.Errorf("%w: %q", errs.ErrInvalidContentType, string(header.Content))
	}
	if header.Version != section.Version {
		return fmt.Errorf("%w: %q", errs.ErrInvalidVersion, header.Version)
	}

	d.header = header

	return nil
}

// loadLabels reads the entire label table up front; struct and field entries
// reference labels by index.
func (d *Decoder) loadLabels() error {
	if err := d.r.Seek(int64(d.header.LabelOffset)); err != nil {
		return err
	}

	d.labels = make([]string, d.header.LabelCount)
	for i := range d.labels {
		raw, err := d.r.Bytes(section.LabelSize)
		if err != nil {
			return err
		}
		d.labels[i] = section.TrimLabel(raw)
	}

	return nil
}

func (d *Decoder) loadStruct(index uint32, depth int) (*Struct, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: depth %d at struct index %d", errs.ErrNestingTooDeep, depth, index)
	}
	if index >= d.header.StructCount {
		return nil, fmt.Errorf("%w: struct index %d out of range (count %d)",
			errs.ErrTruncatedData, index, d.header.StructCount)
	}

	entry, err := d.readStructEntry(index)
	if err != nil {
		return nil, err
	}

	s := NewStruct(entry.ID)

	switch entry.FieldCount {
	case 0:
		// Data word is the NoFields sentinel; nothing to resolve.
	case 1:
		// Data word is the field's table index directly.
		if err := d.loadField(s, entry.Data, depth); err != nil {
			return nil, err
		}
	default:
		// Data word is a byte offset into the field-indices table holding
		// FieldCount consecutive field indices.
		if err := d.r.Seek(int64(d.header.FieldIndicesOffset + entry.Data)); err != nil {
			return nil, err
		}
		indices := make([]uint32, entry.FieldCount)
		for i := range indices {
			if indices[i], err = d.r.Uint32(); err != nil {
				return nil, err
			}
		}
		for _, fi := range indices {
			if err := d.loadField(s, fi, depth); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func (d *Decoder) readStructEntry(index uint32) (section.StructEntry, error) {
	if err := d.r.Seek(int64(d.header.StructOffset) + int64(index)*section.StructEntrySize); err != nil {
		return section.StructEntry{}, err
	}

	raw, err := d.r.Bytes(section.StructEntrySize)
	if err != nil {
		return section.StructEntry{}, err
	}

	var entry section.StructEntry
	if err := entry.Parse(raw, endian.GetLittleEndianEngine()); err != nil {
		return section.StructEntry{}, err
	}

	return entry, nil
}

func (d *Decoder) loadField(s *Struct, index uint32, depth int) error {
	if index >= d.header.FieldCount {
		return fmt.Errorf("%w: field index %d out of range (count %d)",
			errs.ErrTruncatedData, index, d.header.FieldCount)
	}

	if err := d.r.Seek(int64(d.header.FieldOffset) + int64(index)*section.FieldEntrySize); err != nil {
		return err
	}
	raw, err := d.r.Bytes(section.FieldEntrySize)
	if err != nil {
		return err
	}
	var entry section.FieldEntry
	if err := entry.Parse(raw, endian.GetLittleEndianEngine()); err != nil {
		return err
	}

	if entry.LabelIndex >= d.header.LabelCount {
		return fmt.Errorf("%w: label index %d out of range (count %d)",
			errs.ErrTruncatedData, entry.LabelIndex, d.header.LabelCount)
	}
	label := d.labels[entry.LabelIndex]

	switch entry.Type {
	case format.FieldUInt8, format.FieldInt8:
		// Simple integer scalars are packed into the data word itself,
		// sign/zero-extended; keep only the variant's own bits so that
		// decoded values compare equal to API-built ones.
		s.put(&Field{label: label, typ: entry.Type, num: uint64(entry.Data & 0xFF)})
		return nil
	case format.FieldUInt16, format.FieldInt16:
		s.put(&Field{label: label, typ: entry.Type, num: uint64(entry.Data & 0xFFFF)})
		return nil
	case format.FieldUInt32, format.FieldInt32:
		s.put(&Field{label: label, typ: entry.Type, num: uint64(entry.Data)})
		return nil
	case format.FieldSingle:
		s.put(&Field{label: label, typ: entry.Type, flt: float64(math.Float32frombits(entry.Data))})
		return nil
	case format.FieldStruct:
		child, err := d.loadStruct(entry.Data, depth+1)
		if err != nil {
			return err
		}
		s.put(&Field{label: label, typ: entry.Type, sub: child})

		return nil
	case format.FieldList:
		elems, err := d.loadList(entry.Data, depth)
		if err != nil {
			return err
		}
		s.put(&Field{label: label, typ: entry.Type, list: elems})

		return nil
	case format.FieldUInt64, format.FieldInt64, format.FieldDouble, format.FieldString,
		format.FieldResRef, format.FieldLocalizedString, format.FieldBinary,
		format.FieldVector3, format.FieldVector4:
		return d.loadComplexField(s, label, entry)
	default:
		return fmt.Errorf("%w: type id %d for label %q", errs.ErrUnknownFieldType, uint32(entry.Type), label)
	}
}

// loadComplexField reads a payload from the field-data blob; the entry's
// data word is a byte offset relative to the blob's start.
func (d *Decoder) loadComplexField(s *Struct, label string, entry section.FieldEntry) error {
	if err := d.r.Seek(int64(d.header.FieldDataOffset + entry.Data)); err != nil {
		return err
	}

	f := &Field{label: label, typ: entry.Type}

	switch entry.Type {
	case format.FieldUInt64, format.FieldInt64:
		v, err := d.r.Uint64()
		if err != nil {
			return err
		}
		f.num = v
	case format.FieldDouble:
		v, err := d.r.Float64()
		if err != nil {
			return err
		}
		f.flt = v
	case format.FieldString:
		v, err := d.readPrefixedString()
		if err != nil {
			return err
		}
		f.str = v
	case format.FieldResRef:
		n, err := d.r.Uint8()
		if err != nil {
			return err
		}
		v, err := d.r.String(int(n))
		if err != nil {
			return err
		}
		// Lenient read: some authoring tools pad ResRefs with whitespace.
		// The encoder never emits padding.
		f.str = strings.TrimSpace(v)
	case format.FieldLocalizedString:
		v, err := d.readLocalizedString()
		if err != nil {
			return err
		}
		f.loc = v
	case format.FieldBinary:
		n, err := d.r.Uint32()
		if err != nil {
			return err
		}
		v, err := d.r.Bytes(int(n))
		if err != nil {
			return err
		}
		f.bin = v
	case format.FieldVector3:
		for _, p := range []*float32{&f.vec.X, &f.vec.Y, &f.vec.Z} {
			v, err := d.r.Float32()
			if err != nil {
				return err
			}
			*p = v
		}
	case format.FieldVector4:
		for _, p := range []*float32{&f.vec.X, &f.vec.Y, &f.vec.Z, &f.vec.W} {
			v, err := d.r.Float32()
			if err != nil {
				return err
			}
			*p = v
		}
	}

	s.put(f)

	return nil
}

func (d *Decoder) readPrefixedString() (string, error) {
	n, err := d.r.Uint32()
	if err != nil {
		return "", err
	}

	return d.r.String(int(n))
}

func (d *Decoder) readLocalizedString() (LocalizedString, error) {
	loc := LocalizedString{}

	ref, err := d.r.Int32()
	if err != nil {
		return loc, err
	}
	loc.StringRef = ref

	count, err := d.r.Uint32()
	if err != nil {
		return loc, err
	}

	if count > 0 {
		loc.Substrings = make([]Substring, 0, count)
	}
	for i := uint32(0); i < count; i++ {
		id, err := d.r.Uint32()
		if err != nil {
			return loc, err
		}
		text, err := d.readPrefixedString()
		if err != nil {
			return loc, err
		}
		loc.Substrings = append(loc.Substrings, Substring{ID: id, Text: text})
	}

	return loc, nil
}

// loadList resolves a list-indices record: a count followed by that many
// struct indices. The offset is relative to the list-indices table.
func (d *Decoder) loadList(offset uint32, depth int) ([]*Struct, error) {
	if err := d.r.Seek(int64(d.header.ListIndicesOffset + offset)); err != nil {
		return nil, err
	}

	count, err := d.r.Uint32()
	if err != nil {
		return nil, err
	}

	indices := make([]uint32, count)
	for i := range indices {
		if indices[i], err = d.r.Uint32(); err != nil {
			return nil, err
		}
	}

	elems := make([]*Struct, 0, count)
	for _, si := range indices {
		elem, err := d.loadStruct(si, depth+1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	return elems, nil
}
