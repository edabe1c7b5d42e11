package soft

import (
	"strings"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// StringAssert checks a string or the String() form of a
// fmt.Stringer.
type StringAssert struct {
	base
	actual string
}

// As sets a description shown with any failure of this wrapper.
func (a *StringAssert) As(format string, args ...any) *StringAssert {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual equals expected.
func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	a.check("IsEqualTo", func(t assert.TestingT) bool {
		return assert.Equal(t, expected, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsEqualToIgnoringCase compares under Unicode case folding.
func (a *StringAssert) IsEqualToIgnoringCase(expected string) *StringAssert {
	a.expect("IsEqualToIgnoringCase", strings.EqualFold(a.actual, expected),
		"expected %q to be equal to %q ignoring case", a.actual, expected)
	return a
}

// IsEmpty checks that actual is "".
func (a *StringAssert) IsEmpty() *StringAssert {
	a.check("IsEmpty", func(t assert.TestingT) bool {
		return assert.Empty(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotEmpty checks that actual is not "".
func (a *StringAssert) IsNotEmpty() *StringAssert {
	a.check("IsNotEmpty", func(t assert.TestingT) bool {
		return assert.NotEmpty(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// HasLength counts characters, not bytes.
func (a *StringAssert) HasLength(n int) *StringAssert {
	got := utf8.RuneCountInString(a.actual)
	a.expect("HasLength", got == n,
		"expected %q to have length %d but was %d", a.actual, n, got)
	return a
}

// Contains checks that sub occurs in actual.
func (a *StringAssert) Contains(sub string) *StringAssert {
	a.check("Contains", func(t assert.TestingT) bool {
		return assert.Contains(t, a.actual, sub, a.msgAndArgs()...)
	})
	return a
}

// DoesNotContain checks that sub does not occur in actual.
func (a *StringAssert) DoesNotContain(sub string) *StringAssert {
	a.check("DoesNotContain", func(t assert.TestingT) bool {
		return assert.NotContains(t, a.actual, sub, a.msgAndArgs()...)
	})
	return a
}

// StartsWith checks the prefix of actual.
func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	a.expect("StartsWith", strings.HasPrefix(a.actual, prefix),
		"expected %q to start with %q", a.actual, prefix)
	return a
}

// EndsWith checks the suffix of actual.
func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	a.expect("EndsWith", strings.HasSuffix(a.actual, suffix),
		"expected %q to end with %q", a.actual, suffix)
	return a
}

// Matches checks the string against a regular expression given as
// a string or *regexp.Regexp.
func (a *StringAssert) Matches(pattern any) *StringAssert {
	a.check("Matches", func(t assert.TestingT) bool {
		return assert.Regexp(t, pattern, a.actual, a.msgAndArgs()...)
	})
	return a
}
