package soft

import "github.com/stretchr/testify/assert"

// BoolAssert checks a bool.
type BoolAssert struct {
	base
	actual bool
}

// As sets a description shown with any failure of this wrapper.
func (a *BoolAssert) As(format string, args ...any) *BoolAssert {
	a.describe(format, args...)
	return a
}

// IsTrue checks that actual is true.
func (a *BoolAssert) IsTrue() *BoolAssert {
	a.check("IsTrue", func(t assert.TestingT) bool {
		return assert.True(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsFalse checks that actual is false.
func (a *BoolAssert) IsFalse() *BoolAssert {
	a.check("IsFalse", func(t assert.TestingT) bool {
		return assert.False(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsEqualTo checks that actual equals expected.
func (a *BoolAssert) IsEqualTo(expected bool) *BoolAssert {
	a.check("IsEqualTo", func(t assert.TestingT) bool {
		return assert.Equal(t, expected, a.actual, a.msgAndArgs()...)
	})
	return a
}
