package soft

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// exportAll lets go-cmp look into unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// ObjectAssert checks a value of any type. Equality uses go-cmp and
// failures carry its diff.
type ObjectAssert[T any] struct {
	base
	actual T
	opts   []cmp.Option
}

// As sets a description shown with any failure of this wrapper.
func (a *ObjectAssert[T]) As(format string, args ...any) *ObjectAssert[T] {
	a.describe(format, args...)
	return a
}

// UsingOptions adds go-cmp options, e.g. cmpopts.IgnoreFields, for
// IsEqualTo and IsNotEqualTo.
func (a *ObjectAssert[T]) UsingOptions(opts ...cmp.Option) *ObjectAssert[T] {
	a.opts = append(a.opts, opts...)
	return a
}

// IsNil checks that actual is nil.
func (a *ObjectAssert[T]) IsNil() *ObjectAssert[T] {
	a.check("IsNil", func(t assert.TestingT) bool {
		return assert.Nil(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotNil checks that actual is not nil.
func (a *ObjectAssert[T]) IsNotNil() *ObjectAssert[T] {
	a.check("IsNotNil", func(t assert.TestingT) bool {
		return assert.NotNil(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsEqualTo checks that actual is deeply equal to expected.
func (a *ObjectAssert[T]) IsEqualTo(expected T) *ObjectAssert[T] {
	opts := a.options()
	if cmp.Equal(expected, a.actual, opts...) {
		a.expect("IsEqualTo", true, "")
		return a
	}
	a.expect("IsEqualTo", false, "values differ (-want +got):\n%s",
		cmp.Diff(expected, a.actual, opts...))
	return a
}

// IsNotEqualTo checks that actual is not deeply equal to other.
func (a *ObjectAssert[T]) IsNotEqualTo(other T) *ObjectAssert[T] {
	a.expect("IsNotEqualTo", !cmp.Equal(other, a.actual, a.options()...),
		"expected value not to be equal to %v", other)
	return a
}

// IsInstanceOf checks that the dynamic type of actual matches the
// type of sample.
func (a *ObjectAssert[T]) IsInstanceOf(sample any) *ObjectAssert[T] {
	a.check("IsInstanceOf", func(t assert.TestingT) bool {
		return assert.IsType(t, sample, any(a.actual), a.msgAndArgs()...)
	})
	return a
}

// Matches checks pred against actual. desc names the condition in
// the failure message.
func (a *ObjectAssert[T]) Matches(pred func(T) bool, desc string) *ObjectAssert[T] {
	a.expect("Matches", pred(a.actual), "%v does not match %q", a.actual, desc)
	return a
}

func (a *ObjectAssert[T]) options() []cmp.Option {
	return append([]cmp.Option{exportAll}, a.opts...)
}
