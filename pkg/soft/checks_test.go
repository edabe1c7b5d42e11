package soft

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkCase runs fn against a fresh SoftAssertions and expects
// exactly the listed kind.check failures, in order.
type checkCase struct {
	name   string
	fn     func(s *SoftAssertions)
	failed []string
}

func runChecks(t *testing.T, tests []checkCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.fn(s)
			assert.Equal(t, tt.failed, checks(s))
		})
	}
}

func TestBoolAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenBool(true).IsTrue().IsEqualTo(true)
			s.ThenBool(false).IsFalse()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenBool(false).IsTrue().IsEqualTo(true).IsFalse()
		}, []string{"bool.IsTrue", "bool.IsEqualTo"}},
	})
}

func TestNumberAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenInt(5).
				IsEqualTo(5).IsNotEqualTo(4).IsNotZero().IsPositive().
				IsGreaterThan(4).IsGreaterThanOrEqualTo(5).
				IsLessThan(6).IsLessThanOrEqualTo(5).IsBetween(1, 10)
			s.ThenInt64(-3).IsNegative()
			s.ThenInt16(0).IsZero()
			s.ThenByte(255).IsBetween(0, 255)
			s.ThenFloat64(1.0).IsCloseTo(1.05, 0.1)
			s.ThenFloat32(2.5).IsGreaterThan(2)
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenInt(5).
				IsEqualTo(6).IsZero().IsNegative().
				IsGreaterThan(5).IsLessThan(5).IsBetween(6, 10)
			s.ThenFloat64(1.0).IsCloseTo(2, 0.5)
		}, []string{
			"int.IsEqualTo", "int.IsZero", "int.IsNegative",
			"int.IsGreaterThan", "int.IsLessThan", "int.IsBetween",
			"float64.IsCloseTo",
		}},
	})
}

func TestNumberAssert_Summary(t *testing.T) {
	s := New()
	s.ThenInt(5).IsEqualTo(6)

	require.Len(t, s.Failures(), 1)
	f := s.Failures()[0]
	assert.Contains(t, f.Summary, "Not equal")
	assert.Contains(t, f.Message, "expected: 6")
}

func TestComparableAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			ThenComparable(s, "b").
				IsEqualTo("b").IsNotEqualTo("a").
				IsGreaterThan("a").IsGreaterThanOrEqualTo("b").
				IsLessThan("c").IsLessThanOrEqualTo("b").
				IsBetween("a", "c")
			ThenComparable(s, celsius(20)).IsLessThan(21)
		}, nil},
		{"failing", func(s *SoftAssertions) {
			ThenComparable(s, 3).IsEqualTo(4).IsGreaterThan(3).IsBetween(4, 5)
		}, []string{"comparable.IsEqualTo", "comparable.IsGreaterThan", "comparable.IsBetween"}},
	})
}

func TestDecimalAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenBigFloat(big.NewFloat(1.5)).
				IsEqualTo(big.NewFloat(1.50)).
				IsEqualToString("1.500").
				IsPositive().
				IsGreaterThan(big.NewFloat(1)).
				IsLessThan(big.NewFloat(2))
			s.ThenBigFloat(new(big.Float)).IsZero()
			s.ThenBigFloat(big.NewFloat(-1)).IsNegative()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenBigFloat(big.NewFloat(1.5)).
				IsEqualTo(big.NewFloat(2)).
				IsEqualToString("not a number").
				IsZero()
			s.ThenBigFloat(nil).IsPositive()
		}, []string{
			"big_decimal.IsEqualTo", "big_decimal.IsEqualToString",
			"big_decimal.IsZero", "big_decimal.IsPositive",
		}},
	})
}

func TestRuneAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenRune('A').IsEqualTo('A').IsUpperCase().IsLetter()
			s.ThenRune('ß').IsLowerCase()
			s.ThenRune('7').IsDigit()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenRune('a').IsUpperCase().IsDigit()
		}, []string{"rune.IsUpperCase", "rune.IsDigit"}},
	})
}

func TestSliceAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenInts([]int{1, 2, 3}).
				IsNotEmpty().HasSize(3).
				Contains(3, 1).DoesNotContain(4).
				ContainsExactly(1, 2, 3).ContainsOnly(3, 2, 1).
				AllMatch(func(v int) bool { return v > 0 }, "positive")
			s.ThenBools(nil).IsNil().IsEmpty().ContainsExactly()
			ThenSlice(s, []point{{1, 2}}).Contains(point{1, 2})
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenInts([]int{1, 2, 3}).
				IsEmpty().HasSize(2).IsNil().
				Contains(4).DoesNotContain(2).
				ContainsExactly(3, 2, 1).ContainsOnly(1, 2).
				AllMatch(func(v int) bool { return v < 3 }, "below three")
		}, []string{
			"int_slice.IsEmpty", "int_slice.HasSize", "int_slice.IsNil",
			"int_slice.Contains", "int_slice.DoesNotContain",
			"int_slice.ContainsExactly", "int_slice.ContainsOnly",
			"int_slice.AllMatch",
		}},
	})
}

func TestSliceAssert_AllMatchMessage(t *testing.T) {
	s := New()
	s.ThenInts([]int{1, 5}).AllMatch(func(v int) bool { return v < 3 }, "below three")

	require.Len(t, s.Failures(), 1)
	assert.Equal(t, `element 1 (5) does not match "below three"`, s.Failures()[0].Summary)
}

func TestStringAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenString("Grüße").
				IsEqualTo("Grüße").IsEqualToIgnoringCase("GRÜßE").
				IsNotEmpty().HasLength(5).
				Contains("üß").DoesNotContain("x").
				StartsWith("Gr").EndsWith("ße").
				Matches(`^G\S+$`)
			s.ThenString("").IsEmpty().HasLength(0)
			s.ThenString("abc").Matches(regexp.MustCompile("b"))
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenString("hello").
				IsEqualTo("world").IsEqualToIgnoringCase("HELLO!").
				IsEmpty().HasLength(4).
				Contains("z").DoesNotContain("ell").
				StartsWith("e").EndsWith("l").
				Matches(`^\d+$`)
		}, []string{
			"string.IsEqualTo", "string.IsEqualToIgnoringCase",
			"string.IsEmpty", "string.HasLength",
			"string.Contains", "string.DoesNotContain",
			"string.StartsWith", "string.EndsWith", "string.Matches",
		}},
	})
}

func TestStringAssert_Stringer(t *testing.T) {
	s := New()
	s.ThenStringer(label("ready")).IsEqualTo("ready").StartsWith("x")

	assert.Equal(t, []string{"char_sequence.StartsWith"}, checks(s))
}

func TestTimeAssert(t *testing.T) {
	later := epoch.Add(time.Hour)
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenTime(epoch).
				IsEqualTo(epoch.In(time.FixedZone("X", 3600))).
				IsBefore(later).IsAfter(epoch.Add(-time.Second)).
				IsBetween(epoch, later).
				IsCloseTo(epoch.Add(time.Second), 2*time.Second).
				IsNotZero()
			s.ThenTime(time.Time{}).IsZero()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenTime(epoch).
				IsEqualTo(later).IsBefore(epoch).IsAfter(later).
				IsBetween(later, later.Add(time.Hour)).
				IsCloseTo(later, time.Minute).
				IsZero()
			s.ThenTime(time.Time{}).IsNotZero()
		}, []string{
			"time.IsEqualTo", "time.IsBefore", "time.IsAfter",
			"time.IsBetween", "time.IsCloseTo", "time.IsZero",
			"time.IsNotZero",
		}},
	})
}

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestErrorAssert(t *testing.T) {
	root := &codeError{code: 404}
	wrapped := fmt.Errorf("fetch user: %w", root)

	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			var target *codeError
			s.ThenError(wrapped).
				HasBeenThrown().
				HasMessage("fetch user: code 404").
				HasMessageContaining("user").
				Is(root).
				IsInstanceOf(&target).
				HasCause(root)
			s.ThenError(root).HasNoCause()
			s.ThenError(nil).IsNil()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			var target *fs.PathError
			s.ThenError(wrapped).
				IsNil().
				HasMessage("other").
				HasMessageContaining("nope").
				Is(io.EOF).
				IsInstanceOf(&target).
				HasNoCause().
				HasCause(io.EOF)
			s.ThenError(nil).HasBeenThrown()
		}, []string{
			"error.IsNil", "error.HasMessage", "error.HasMessageContaining",
			"error.Is", "error.IsInstanceOf", "error.HasNoCause",
			"error.HasCause", "error.HasBeenThrown",
		}},
	})
}

func TestErrorAssert_Cause(t *testing.T) {
	s := New()
	wrapped := fmt.Errorf("outer: %w", errors.New("inner"))

	s.ThenError(wrapped).As("load").Cause().HasMessage("inner").HasNoCause()
	s.ThenError(wrapped).Cause().HasMessage("outer")

	require.Len(t, s.Failures(), 1)
	assert.Equal(t, "HasMessage", s.Failures()[0].Check)
	assert.Empty(t, s.Failures()[0].Description)
}

func TestURLAssert(t *testing.T) {
	u, err := url.Parse("https://bob@example.com:8443/api/v1?q=go&q=rust#top")
	require.NoError(t, err)

	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenURI(u).
				HasScheme("https").HasHost("example.com").HasPort(8443).
				HasPath("/api/v1").HasQueryParam("q", "rust").
				HasFragment("top").HasUser("bob")
			s.ThenURL("http://example.com").HasNoQuery().HasUser("")
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenURI(u).
				HasScheme("http").HasHost("example.org").HasPort(443).
				HasPath("/").HasQueryParam("q", "java").HasQueryParam("x", "1").
				HasNoQuery().HasFragment("").HasUser("alice")
		}, []string{
			"uri.HasScheme", "uri.HasHost", "uri.HasPort",
			"uri.HasPath", "uri.HasQueryParam", "uri.HasQueryParam",
			"uri.HasNoQuery", "uri.HasFragment", "uri.HasUser",
		}},
		{"nil", func(s *SoftAssertions) {
			s.ThenURI(nil).HasScheme("https").HasQueryParam("q", "1")
		}, []string{"uri.HasScheme", "uri.HasQueryParam"}},
	})
}

type shape interface{ Area() float64 }

type square struct {
	Side float64
}

func (s square) Area() float64 { return s.Side * s.Side }

func TestTypeAssert(t *testing.T) {
	sq := reflect.TypeFor[square]()
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenType(sq).
				IsKind(reflect.Struct).
				IsNamed("soft.square").
				Implements(reflect.TypeFor[shape]()).
				IsAssignableTo(reflect.TypeFor[any]()).
				HasField("Side").
				HasMethod("Area")
			s.ThenType(reflect.TypeFor[*square]()).HasField("Side")
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenType(reflect.TypeFor[int]()).
				IsKind(reflect.String).
				IsNamed("string").
				Implements(reflect.TypeFor[shape]()).
				Implements(reflect.TypeFor[string]()).
				IsAssignableTo(reflect.TypeFor[string]()).
				HasField("Side").
				HasMethod("Area")
			s.ThenType(nil).IsKind(reflect.Int)
		}, []string{
			"type.IsKind", "type.IsNamed", "type.Implements", "type.Implements",
			"type.IsAssignableTo", "type.HasField", "type.HasMethod", "type.IsKind",
		}},
	})
}

type account struct {
	ID      int
	owner   string
	Updated time.Time
}

func TestObjectAssert(t *testing.T) {
	a := account{ID: 1, owner: "ann", Updated: epoch}
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			ThenObject(s, a).
				IsNotNil().
				IsEqualTo(account{ID: 1, owner: "ann", Updated: epoch}).
				IsNotEqualTo(account{ID: 2}).
				IsInstanceOf(account{}).
				Matches(func(v account) bool { return v.ID > 0 }, "has id")
			ThenObject(s, a).
				UsingOptions(cmpopts.IgnoreFields(account{}, "Updated")).
				IsEqualTo(account{ID: 1, owner: "ann"})
			ThenObject[any](s, nil).IsNil()
			ThenObject[error](s, nil).IsNil()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			ThenObject(s, a).
				IsNil().
				IsEqualTo(account{ID: 1, owner: "bob", Updated: epoch}).
				IsNotEqualTo(a).
				IsInstanceOf(&account{}).
				Matches(func(v account) bool { return v.ID > 1 }, "id above one")
			ThenObject[any](s, nil).IsNotNil()
		}, []string{
			"object.IsNil", "object.IsEqualTo", "object.IsNotEqualTo",
			"object.IsInstanceOf", "object.Matches", "object.IsNotNil",
		}},
	})
}

func TestObjectAssert_DiffInMessage(t *testing.T) {
	s := New()
	ThenObject(s, account{ID: 1, owner: "ann"}).IsEqualTo(account{ID: 1, owner: "bob"})

	require.Len(t, s.Failures(), 1)
	msg := s.Failures()[0].Message
	assert.Contains(t, msg, "-want +got")
	assert.Contains(t, msg, `"bob"`)
	assert.Contains(t, msg, `"ann"`)
}

func TestMapAssert(t *testing.T) {
	m := map[string]account{
		"a": {ID: 1, owner: "ann"},
		"b": {ID: 2, owner: "bob"},
	}
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			ThenMap(s, m).
				IsNotEmpty().HasSize(2).
				ContainsKey("a", "b").DoesNotContainKey("c").
				ContainsEntry("a", account{ID: 1, owner: "ann"}).
				ContainsValue(account{ID: 2, owner: "bob"})
			ThenMap(s, m).
				UsingOptions(cmpopts.IgnoreUnexported(account{})).
				ContainsEntry("a", account{ID: 1})
			ThenMap[string, int](s, nil).IsEmpty().HasSize(0)
		}, nil},
		{"failing", func(s *SoftAssertions) {
			ThenMap(s, m).
				IsEmpty().HasSize(3).
				ContainsKey("a", "z").DoesNotContainKey("b").
				ContainsEntry("a", account{ID: 9}).
				ContainsEntry("z", account{}).
				ContainsValue(account{ID: 3})
			ThenMap(s, map[int]bool{}).IsNotEmpty()
		}, []string{
			"map.IsEmpty", "map.HasSize", "map.ContainsKey",
			"map.DoesNotContainKey", "map.ContainsEntry", "map.ContainsEntry",
			"map.ContainsValue", "map.IsNotEmpty",
		}},
	})
}

func TestPointerAssert(t *testing.T) {
	n := 3
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			ThenPtr(s, &n).IsNotNil().PointsTo(3)
			ThenPtr[string](s, nil).IsNil()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			ThenPtr(s, &n).IsNil().PointsTo(4)
			ThenPtr[int](s, nil).IsNotNil().PointsTo(0)
		}, []string{"pointer.IsNil", "pointer.PointsTo", "pointer.IsNotNil", "pointer.PointsTo"}},
	})
}

func TestFileAssert(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))
	missing := filepath.Join(dir, "missing.json")

	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenFile(file).
				Exists().IsFile().HasContent("hello").
				HasExtension("txt").HasName("notes.txt")
			s.ThenFile(dir).Exists().IsDirectory()
			s.ThenFile(missing).DoesNotExist().HasExtension("json")
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenFile(file).
				DoesNotExist().IsDirectory().HasContent("bye").
				HasExtension("md").HasName("other.txt")
			s.ThenFile(dir).IsFile().DoesNotExist()
			s.ThenFile(missing).Exists().HasContent("")
		}, []string{
			"file.DoesNotExist", "file.IsDirectory", "file.HasContent",
			"file.HasExtension", "file.HasName",
			"file.IsFile", "file.DoesNotExist",
			"file.Exists", "file.HasContent",
		}},
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReaderAssert(t *testing.T) {
	runChecks(t, []checkCase{
		{"passing", func(s *SoftAssertions) {
			s.ThenReader(strings.NewReader("data")).
				HasContent("data").
				HasSameContentAs(strings.NewReader("data"))
			s.ThenReader(strings.NewReader("")).IsEmpty()
		}, nil},
		{"failing", func(s *SoftAssertions) {
			s.ThenReader(strings.NewReader("data")).
				HasContent("other").
				HasSameContentAs(strings.NewReader("else")).
				HasSameContentAs(nil).
				IsEmpty()
			s.ThenReader(nil).HasContent("")
			s.ThenReader(failingReader{}).IsEmpty()
		}, []string{
			"reader.HasContent", "reader.HasSameContentAs",
			"reader.HasSameContentAs", "reader.IsEmpty",
			"reader.HasContent", "reader.IsEmpty",
		}},
	})
}

func TestReaderAssert_TypedNil(t *testing.T) {
	tests := []struct {
		name   string
		reader io.Reader
	}{
		{"buffer", (*bytes.Buffer)(nil)},
		{"strings reader", (*strings.Reader)(nil)},
		{"file", (*os.File)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			assert.NotPanics(t, func() {
				s.ThenReader(tt.reader).HasContent("").IsEmpty()
			})
			assert.Equal(t, []string{"reader.HasContent", "reader.IsEmpty"}, checks(s))
			assert.Contains(t, s.Failures()[0].Message, "expected a reader but was nil")
		})
	}
}
