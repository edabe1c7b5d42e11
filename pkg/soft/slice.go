package soft

import (
	"github.com/stretchr/testify/assert"
)

// SliceAssert checks a slice. It also serves arrays, lists and
// drained iterators; Kind records which entry point built it.
type SliceAssert[T any] struct {
	base
	actual []T
}

// As sets a description shown with any failure of this wrapper.
func (a *SliceAssert[T]) As(format string, args ...any) *SliceAssert[T] {
	a.describe(format, args...)
	return a
}

// IsNil checks that the slice is nil.
func (a *SliceAssert[T]) IsNil() *SliceAssert[T] {
	a.expect("IsNil", a.actual == nil, "expected nil slice, got %v", a.actual)
	return a
}

// IsEmpty checks that the slice has no elements.
func (a *SliceAssert[T]) IsEmpty() *SliceAssert[T] {
	a.check("IsEmpty", func(t assert.TestingT) bool {
		return assert.Empty(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotEmpty checks that the slice has at least one element.
func (a *SliceAssert[T]) IsNotEmpty() *SliceAssert[T] {
	a.check("IsNotEmpty", func(t assert.TestingT) bool {
		return assert.NotEmpty(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// HasSize checks the number of elements.
func (a *SliceAssert[T]) HasSize(n int) *SliceAssert[T] {
	a.check("HasSize", func(t assert.TestingT) bool {
		return assert.Len(t, a.actual, n, a.msgAndArgs()...)
	})
	return a
}

// Contains checks that every given value is present, in any order.
func (a *SliceAssert[T]) Contains(values ...T) *SliceAssert[T] {
	a.check("Contains", func(t assert.TestingT) bool {
		return assert.Subset(t, a.actual, values, a.msgAndArgs()...)
	})
	return a
}

// DoesNotContain checks that none of the given values is present.
func (a *SliceAssert[T]) DoesNotContain(values ...T) *SliceAssert[T] {
	var found []T
	for _, v := range values {
		if a.indexOf(v) >= 0 {
			found = append(found, v)
		}
	}
	a.expect("DoesNotContain", len(found) == 0,
		"%v should not contain %v", a.actual, found)
	return a
}

// ContainsExactly checks the elements and their order.
func (a *SliceAssert[T]) ContainsExactly(values ...T) *SliceAssert[T] {
	if len(values) == 0 && len(a.actual) == 0 {
		a.expect("ContainsExactly", true, "")
		return a
	}
	a.check("ContainsExactly", func(t assert.TestingT) bool {
		return assert.Equal(t, values, a.actual, a.msgAndArgs()...)
	})
	return a
}

// ContainsOnly checks the elements, ignoring order.
func (a *SliceAssert[T]) ContainsOnly(values ...T) *SliceAssert[T] {
	a.check("ContainsOnly", func(t assert.TestingT) bool {
		return assert.ElementsMatch(t, values, a.actual, a.msgAndArgs()...)
	})
	return a
}

// AllMatch checks pred against every element. desc names the
// condition in the failure message.
func (a *SliceAssert[T]) AllMatch(pred func(T) bool, desc string) *SliceAssert[T] {
	for i, v := range a.actual {
		if !pred(v) {
			a.expect("AllMatch", false,
				"element %d (%v) does not match %q", i, v, desc)
			return a
		}
	}
	a.expect("AllMatch", true, "")
	return a
}

func (a *SliceAssert[T]) indexOf(v T) int {
	for i, e := range a.actual {
		if assert.ObjectsAreEqual(v, e) {
			return i
		}
	}
	return -1
}
