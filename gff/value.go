package gff

// Vector3 is a position value: three 32-bit floats.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is an orientation quaternion: four 32-bit floats.
type Vector4 struct {
	X, Y, Z, W float32
}

// Substring is one localized variant inside a LocalizedString. ID packs the
// language and gender the way the engine does (language*2 + gender); the
// codec carries it opaquely.
type Substring struct {
	ID   uint32
	Text string
}

// LocalizedString combines a talk-table string reference with zero or more
// inline localized substrings. StringRef is -1 when the value carries no
// talk-table reference; GFF stores only the integer, never the resolved text.
type LocalizedString struct {
	StringRef  int32
	Substrings []Substring
}

// NoStringRef is the StringRef value meaning "no talk-table reference".
const NoStringRef int32 = -1

// Equal reports whether two localized strings have the same stringref and
// the same substrings in the same order.
func (l LocalizedString) Equal(other LocalizedString) bool {
	if l.StringRef != other.StringRef || len(l.Substrings) != len(other.Substrings) {
		return false
	}
	for i, sub := range l.Substrings {
		if sub != other.Substrings[i] {
			return false
		}
	}

	return true
}
