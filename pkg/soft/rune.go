package soft

import (
	"unicode"

	"github.com/stretchr/testify/assert"
)

// RuneAssert checks a single character.
type RuneAssert struct {
	base
	actual rune
}

// As sets a description shown with any failure of this wrapper.
func (a *RuneAssert) As(format string, args ...any) *RuneAssert {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual is the expected rune.
func (a *RuneAssert) IsEqualTo(expected rune) *RuneAssert {
	a.check("IsEqualTo", func(t assert.TestingT) bool {
		return assert.Equal(t, expected, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsUpperCase checks unicode.IsUpper.
func (a *RuneAssert) IsUpperCase() *RuneAssert {
	a.expect("IsUpperCase", unicode.IsUpper(a.actual), "expected %q to be upper case", a.actual)
	return a
}

// IsLowerCase checks unicode.IsLower.
func (a *RuneAssert) IsLowerCase() *RuneAssert {
	a.expect("IsLowerCase", unicode.IsLower(a.actual), "expected %q to be lower case", a.actual)
	return a
}

// IsLetter checks unicode.IsLetter.
func (a *RuneAssert) IsLetter() *RuneAssert {
	a.expect("IsLetter", unicode.IsLetter(a.actual), "expected %q to be a letter", a.actual)
	return a
}

// IsDigit checks unicode.IsDigit.
func (a *RuneAssert) IsDigit() *RuneAssert {
	a.expect("IsDigit", unicode.IsDigit(a.actual), "expected %q to be a digit", a.actual)
	return a
}
