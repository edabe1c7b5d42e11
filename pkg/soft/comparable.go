package soft

import (
	"cmp"

	"github.com/stretchr/testify/assert"
)

// ComparableAssert checks any ordered value.
type ComparableAssert[T cmp.Ordered] struct {
	base
	actual T
}

// As sets a description shown with any failure of this wrapper.
func (a *ComparableAssert[T]) As(format string, args ...any) *ComparableAssert[T] {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual compares equal to expected.
func (a *ComparableAssert[T]) IsEqualTo(expected T) *ComparableAssert[T] {
	a.expect("IsEqualTo", cmp.Compare(a.actual, expected) == 0,
		"expected %v to be equal to %v", a.actual, expected)
	return a
}

// IsNotEqualTo checks that actual does not compare equal to other.
func (a *ComparableAssert[T]) IsNotEqualTo(other T) *ComparableAssert[T] {
	a.expect("IsNotEqualTo", cmp.Compare(a.actual, other) != 0,
		"expected %v not to be equal to %v", a.actual, other)
	return a
}

// IsLessThan checks that actual orders strictly before other.
func (a *ComparableAssert[T]) IsLessThan(other T) *ComparableAssert[T] {
	a.check("IsLessThan", func(t assert.TestingT) bool {
		return assert.Less(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsLessThanOrEqualTo checks that actual does not order after other.
func (a *ComparableAssert[T]) IsLessThanOrEqualTo(other T) *ComparableAssert[T] {
	a.check("IsLessThanOrEqualTo", func(t assert.TestingT) bool {
		return assert.LessOrEqual(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsGreaterThan checks that actual orders strictly after other.
func (a *ComparableAssert[T]) IsGreaterThan(other T) *ComparableAssert[T] {
	a.check("IsGreaterThan", func(t assert.TestingT) bool {
		return assert.Greater(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsGreaterThanOrEqualTo checks that actual does not order before other.
func (a *ComparableAssert[T]) IsGreaterThanOrEqualTo(other T) *ComparableAssert[T] {
	a.check("IsGreaterThanOrEqualTo", func(t assert.TestingT) bool {
		return assert.GreaterOrEqual(t, a.actual, other, a.msgAndArgs()...)
	})
	return a
}

// IsBetween checks start <= actual <= end.
func (a *ComparableAssert[T]) IsBetween(start, end T) *ComparableAssert[T] {
	a.expect("IsBetween",
		cmp.Compare(start, a.actual) <= 0 && cmp.Compare(a.actual, end) <= 0,
		"%v is not between %v and %v", a.actual, start, end)
	return a
}
