package soft

import "github.com/stretchr/testify/assert"

// Number is the set of numeric types NumberAssert accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberAssert checks a number. One generic wrapper serves byte,
// int16, int, int64, float32 and float64; Kind tells them apart.
type NumberAssert[N Number] struct {
	base
	actual N
}

// As sets a description shown with any failure of this wrapper.
func (a *NumberAssert[N]) As(format string, args ...any) *NumberAssert[N] {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual equals expected.
func (a *NumberAssert[N]) IsEqualTo(expected N) *NumberAssert[N] {
	a.check("IsEqualTo", func(t assert.TestingT) bool {
		return assert.Equal(t, expected, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotEqualTo checks that actual differs from other.
func (a *NumberAssert[N]) IsNotEqualTo(other N) *NumberAssert[N] {
	a.check("IsNotEqualTo", func(t assert.TestingT) bool {
		return assert.NotEqual(t, other, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsZero checks that actual is zero.
func (a *NumberAssert[N]) IsZero() *NumberAssert[N] {
	a.check("IsZero", func(t assert.TestingT) bool {
		return assert.Zero(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotZero checks that actual is not zero.
func (a *NumberAssert[N]) IsNotZero() *NumberAssert[N] {
	a.check("IsNotZero", func(t assert.TestingT) bool {
		return assert.NotZero(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsPositive checks that actual is greater than zero.
func (a *NumberAssert[N]) IsPositive() *NumberAssert[N] {
	a.expect("IsPositive", a.actual > 0, "%v is not positive", a.actual)
	return a
}

// IsNegative checks that actual is less than zero.
func (a *NumberAssert[N]) IsNegative() *NumberAssert[N] {
	a.expect("IsNegative", a.actual < 0, "%v is not negative", a.actual)
	return a
}

// IsGreaterThan checks that actual > other.
func (a *NumberAssert[N]) IsGreaterThan(other N) *NumberAssert[N] {
	a.check("IsGreaterThan", func(t assert.TestingT) bool {
		return assert.Greater(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsGreaterThanOrEqualTo checks that actual >= other.
func (a *NumberAssert[N]) IsGreaterThanOrEqualTo(other N) *NumberAssert[N] {
	a.check("IsGreaterThanOrEqualTo", func(t assert.TestingT) bool {
		return assert.GreaterOrEqual(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsLessThan checks that actual < other.
func (a *NumberAssert[N]) IsLessThan(other N) *NumberAssert[N] {
	a.check("IsLessThan", func(t assert.TestingT) bool {
		return assert.Less(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsLessThanOrEqualTo checks that actual <= other.
func (a *NumberAssert[N]) IsLessThanOrEqualTo(other N) *NumberAssert[N] {
	a.check("IsLessThanOrEqualTo", func(t assert.TestingT) bool {
		return assert.LessOrEqual(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsBetween checks start <= actual <= end.
func (a *NumberAssert[N]) IsBetween(start, end N) *NumberAssert[N] {
	a.expect("IsBetween", start <= a.actual && a.actual <= end,
		"%v is not between %v and %v", a.actual, start, end)
	return a
}

// IsCloseTo checks |actual - expected| <= delta.
func (a *NumberAssert[N]) IsCloseTo(expected, delta N) *NumberAssert[N] {
	a.check("IsCloseTo", func(t assert.TestingT) bool {
		return assert.InDelta(t, expected, a.actual, float64(delta), a.msgAndArgs()...)
	})
	return a
}
