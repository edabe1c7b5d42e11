package soft

// Kind tags the wrapper variant a Then function produced.
type Kind int

const (
	KindUnknown Kind = iota
	KindBigDecimal
	KindBool
	KindBoolSlice
	KindByte
	KindByteSlice
	KindRune
	KindRuneSlice
	KindType
	KindComparable
	KindIterable
	KindFloat64
	KindFloat64Slice
	KindFile
	KindReader
	KindFloat32
	KindFloat32Slice
	KindInt
	KindIntSlice
	KindList
	KindInt64
	KindInt64Slice
	KindObject
	KindObjectSlice
	KindMap
	KindInt16
	KindInt16Slice
	KindCharSequence
	KindString
	KindTime
	KindError
	KindURI
	KindURL
	KindPointer
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindBigDecimal:   "big_decimal",
	KindBool:         "bool",
	KindBoolSlice:    "bool_slice",
	KindByte:         "byte",
	KindByteSlice:    "byte_slice",
	KindRune:         "rune",
	KindRuneSlice:    "rune_slice",
	KindType:         "type",
	KindComparable:   "comparable",
	KindIterable:     "iterable",
	KindFloat64:      "float64",
	KindFloat64Slice: "float64_slice",
	KindFile:         "file",
	KindReader:       "reader",
	KindFloat32:      "float32",
	KindFloat32Slice: "float32_slice",
	KindInt:          "int",
	KindIntSlice:     "int_slice",
	KindList:         "list",
	KindInt64:        "int64",
	KindInt64Slice:   "int64_slice",
	KindObject:       "object",
	KindObjectSlice:  "object_slice",
	KindMap:          "map",
	KindInt16:        "int16",
	KindInt16Slice:   "int16_slice",
	KindCharSequence: "char_sequence",
	KindString:       "string",
	KindTime:         "time",
	KindError:        "error",
	KindURI:          "uri",
	KindURL:          "url",
	KindPointer:      "pointer",
}

// String returns the stable name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}
