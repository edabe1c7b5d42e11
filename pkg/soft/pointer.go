package soft

import "github.com/stretchr/testify/assert"

// PointerAssert checks a nullable value.
type PointerAssert[T any] struct {
	base
	actual *T
}

// As sets a description shown with any failure of this wrapper.
func (a *PointerAssert[T]) As(format string, args ...any) *PointerAssert[T] {
	a.describe(format, args...)
	return a
}

// IsNil checks that the pointer is nil.
func (a *PointerAssert[T]) IsNil() *PointerAssert[T] {
	a.check("IsNil", func(t assert.TestingT) bool {
		return assert.Nil(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotNil checks that the pointer is not nil.
func (a *PointerAssert[T]) IsNotNil() *PointerAssert[T] {
	a.check("IsNotNil", func(t assert.TestingT) bool {
		return assert.NotNil(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// PointsTo checks that the pointer is non-nil and its target equals
// expected.
func (a *PointerAssert[T]) PointsTo(expected T) *PointerAssert[T] {
	if a.actual == nil {
		a.expect("PointsTo", false, "expected pointer to %v but was nil", expected)
		return a
	}
	a.check("PointsTo", func(t assert.TestingT) bool {
		return assert.Equal(t, expected, *a.actual, a.msgAndArgs()...)
	})
	return a
}
