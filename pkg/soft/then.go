package soft

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"math/big"
	"net/url"
	"reflect"
	"slices"
	"time"
)

// ThenBigFloat creates a DecimalAssert for an arbitrary-precision
// number.
func (s *SoftAssertions) ThenBigFloat(actual *big.Float) *DecimalAssert {
	return &DecimalAssert{base: s.proxy(KindBigDecimal, actual), actual: actual}
}

// ThenBool creates a BoolAssert.
func (s *SoftAssertions) ThenBool(actual bool) *BoolAssert {
	return &BoolAssert{base: s.proxy(KindBool, actual), actual: actual}
}

// ThenBools creates a SliceAssert for a bool slice.
func (s *SoftAssertions) ThenBools(actual []bool) *SliceAssert[bool] {
	return newSliceAssert(s, KindBoolSlice, actual)
}

// ThenByte creates a NumberAssert for a byte.
func (s *SoftAssertions) ThenByte(actual byte) *NumberAssert[byte] {
	return newNumberAssert(s, KindByte, actual)
}

// ThenBytes creates a SliceAssert for a byte slice.
func (s *SoftAssertions) ThenBytes(actual []byte) *SliceAssert[byte] {
	return newSliceAssert(s, KindByteSlice, actual)
}

// ThenRune creates a RuneAssert for a single character.
func (s *SoftAssertions) ThenRune(actual rune) *RuneAssert {
	return &RuneAssert{base: s.proxy(KindRune, actual), actual: actual}
}

// ThenRunes creates a SliceAssert for a rune slice.
func (s *SoftAssertions) ThenRunes(actual []rune) *SliceAssert[rune] {
	return newSliceAssert(s, KindRuneSlice, actual)
}

// ThenType creates a TypeAssert.
func (s *SoftAssertions) ThenType(actual reflect.Type) *TypeAssert {
	return &TypeAssert{base: s.proxy(KindType, actual), actual: actual}
}

// ThenComparable creates a ComparableAssert for any ordered value.
func ThenComparable[T cmp.Ordered](s *SoftAssertions, actual T) *ComparableAssert[T] {
	return &ComparableAssert[T]{base: s.proxy(KindComparable, actual), actual: actual}
}

// ThenSeq drains the sequence and creates a SliceAssert over its
// elements.
func ThenSeq[T any](s *SoftAssertions, actual iter.Seq[T]) *SliceAssert[T] {
	var values []T
	if actual != nil {
		values = slices.Collect(actual)
	}
	return newSliceAssert(s, KindIterable, values)
}

// ThenFloat64 creates a NumberAssert for a float64.
func (s *SoftAssertions) ThenFloat64(actual float64) *NumberAssert[float64] {
	return newNumberAssert(s, KindFloat64, actual)
}

// ThenFloat64s creates a SliceAssert for a float64 slice.
func (s *SoftAssertions) ThenFloat64s(actual []float64) *SliceAssert[float64] {
	return newSliceAssert(s, KindFloat64Slice, actual)
}

// ThenFile creates a FileAssert for the file at path.
func (s *SoftAssertions) ThenFile(path string) *FileAssert {
	return &FileAssert{base: s.proxy(KindFile, path), path: path}
}

// ThenReader creates a ReaderAssert. The reader is consumed by the
// first content check.
func (s *SoftAssertions) ThenReader(actual io.Reader) *ReaderAssert {
	return &ReaderAssert{base: s.proxy(KindReader, actual), reader: actual}
}

// ThenFloat32 creates a NumberAssert for a float32.
func (s *SoftAssertions) ThenFloat32(actual float32) *NumberAssert[float32] {
	return newNumberAssert(s, KindFloat32, actual)
}

// ThenFloat32s creates a SliceAssert for a float32 slice.
func (s *SoftAssertions) ThenFloat32s(actual []float32) *SliceAssert[float32] {
	return newSliceAssert(s, KindFloat32Slice, actual)
}

// ThenInt creates a NumberAssert for an int.
func (s *SoftAssertions) ThenInt(actual int) *NumberAssert[int] {
	return newNumberAssert(s, KindInt, actual)
}

// ThenInts creates a SliceAssert for an int slice.
func (s *SoftAssertions) ThenInts(actual []int) *SliceAssert[int] {
	return newSliceAssert(s, KindIntSlice, actual)
}

// ThenSlice creates a SliceAssert for a slice of any element type.
func ThenSlice[T any](s *SoftAssertions, actual []T) *SliceAssert[T] {
	return newSliceAssert(s, KindList, actual)
}

// ThenInt64 creates a NumberAssert for an int64.
func (s *SoftAssertions) ThenInt64(actual int64) *NumberAssert[int64] {
	return newNumberAssert(s, KindInt64, actual)
}

// ThenInt64s creates a SliceAssert for an int64 slice.
func (s *SoftAssertions) ThenInt64s(actual []int64) *SliceAssert[int64] {
	return newSliceAssert(s, KindInt64Slice, actual)
}

// ThenObject creates an ObjectAssert for a value of any type.
func ThenObject[T any](s *SoftAssertions, actual T) *ObjectAssert[T] {
	return &ObjectAssert[T]{base: s.proxy(KindObject, actual), actual: actual}
}

// ThenObjects creates a SliceAssert for a heterogeneous slice.
func (s *SoftAssertions) ThenObjects(actual []any) *SliceAssert[any] {
	return newSliceAssert(s, KindObjectSlice, actual)
}

// ThenMap creates a MapAssert.
func ThenMap[K comparable, V any](s *SoftAssertions, actual map[K]V) *MapAssert[K, V] {
	return &MapAssert[K, V]{base: s.proxy(KindMap, actual), actual: actual}
}

// ThenInt16 creates a NumberAssert for an int16.
func (s *SoftAssertions) ThenInt16(actual int16) *NumberAssert[int16] {
	return newNumberAssert(s, KindInt16, actual)
}

// ThenInt16s creates a SliceAssert for an int16 slice.
func (s *SoftAssertions) ThenInt16s(actual []int16) *SliceAssert[int16] {
	return newSliceAssert(s, KindInt16Slice, actual)
}

// ThenStringer creates a StringAssert over the String() form of
// actual. A nil Stringer is checked as the empty string.
func (s *SoftAssertions) ThenStringer(actual fmt.Stringer) *StringAssert {
	var str string
	if actual != nil && !isNilPointer(actual) {
		str = actual.String()
	}
	return &StringAssert{base: s.proxy(KindCharSequence, actual), actual: str}
}

// ThenString creates a StringAssert.
func (s *SoftAssertions) ThenString(actual string) *StringAssert {
	return &StringAssert{base: s.proxy(KindString, actual), actual: actual}
}

// ThenTime creates a TimeAssert.
func (s *SoftAssertions) ThenTime(actual time.Time) *TimeAssert {
	return &TimeAssert{base: s.proxy(KindTime, actual), actual: actual}
}

// ThenError creates an ErrorAssert.
func (s *SoftAssertions) ThenError(actual error) *ErrorAssert {
	return &ErrorAssert{base: s.proxy(KindError, actual), actual: actual}
}

// ThenThrownBy runs fn and asserts that it raised something: a
// returned error or a panic. The raised value becomes the actual
// value of the returned ErrorAssert. If fn succeeds, the failure
// "Expecting code to raise a throwable." is collected.
func (s *SoftAssertions) ThenThrownBy(fn func() error) *ErrorAssert {
	return s.ThenError(Catch(fn)).HasBeenThrown()
}

// ThenURI creates a URLAssert for a parsed URL.
func (s *SoftAssertions) ThenURI(actual *url.URL) *URLAssert {
	return &URLAssert{base: s.proxy(KindURI, actual), actual: actual}
}

// ThenURL parses raw and creates a URLAssert. An unparsable URL is
// collected as a failure and leaves the wrapper with a nil URL.
func (s *SoftAssertions) ThenURL(raw string) *URLAssert {
	u, err := url.Parse(raw)
	a := &URLAssert{base: s.proxy(KindURL, raw), actual: u}
	a.expect("Parse", err == nil, "invalid URL %q: %v", raw, err)
	return a
}

// ThenPtr creates a PointerAssert for a nullable value.
func ThenPtr[T any](s *SoftAssertions, actual *T) *PointerAssert[T] {
	return &PointerAssert[T]{base: s.proxy(KindPointer, actual), actual: actual}
}

func newNumberAssert[N Number](s *SoftAssertions, kind Kind, actual N) *NumberAssert[N] {
	return &NumberAssert[N]{base: s.proxy(kind, actual), actual: actual}
}

func newSliceAssert[T any](s *SoftAssertions, kind Kind, actual []T) *SliceAssert[T] {
	return &SliceAssert[T]{base: s.proxy(kind, actual), actual: actual}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
