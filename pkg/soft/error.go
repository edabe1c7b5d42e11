package soft

import (
	"errors"

	"github.com/stretchr/testify/assert"
)

// ErrorAssert checks an error, including one raised by the code
// passed to ThenThrownBy.
type ErrorAssert struct {
	base
	actual error
}

// As sets a description shown with any failure of this wrapper.
func (a *ErrorAssert) As(format string, args ...any) *ErrorAssert {
	a.describe(format, args...)
	return a
}

// HasBeenThrown checks that something was raised.
func (a *ErrorAssert) HasBeenThrown() *ErrorAssert {
	a.expect("HasBeenThrown", a.actual != nil, "Expecting code to raise a throwable.")
	return a
}

// IsNil checks that no error was raised.
func (a *ErrorAssert) IsNil() *ErrorAssert {
	a.check("IsNil", func(t assert.TestingT) bool {
		return assert.NoError(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// HasMessage checks that Error() equals msg.
func (a *ErrorAssert) HasMessage(msg string) *ErrorAssert {
	a.check("HasMessage", func(t assert.TestingT) bool {
		return assert.EqualError(t, a.actual, msg, a.msgAndArgs()...)
	})
	return a
}

// HasMessageContaining checks that Error() contains sub.
func (a *ErrorAssert) HasMessageContaining(sub string) *ErrorAssert {
	a.check("HasMessageContaining", func(t assert.TestingT) bool {
		return assert.ErrorContains(t, a.actual, sub, a.msgAndArgs()...)
	})
	return a
}

// Is checks errors.Is(actual, target).
func (a *ErrorAssert) Is(target error) *ErrorAssert {
	a.check("Is", func(t assert.TestingT) bool {
		return assert.ErrorIs(t, a.actual, target, a.msgAndArgs()...)
	})
	return a
}

// IsInstanceOf checks errors.As(actual, target). target must be a
// non-nil pointer to an error type.
func (a *ErrorAssert) IsInstanceOf(target any) *ErrorAssert {
	a.check("IsInstanceOf", func(t assert.TestingT) bool {
		return assert.ErrorAs(t, a.actual, target, a.msgAndArgs()...)
	})
	return a
}

// HasNoCause checks that actual does not wrap another error.
func (a *ErrorAssert) HasNoCause() *ErrorAssert {
	cause := errors.Unwrap(a.actual)
	a.expect("HasNoCause", cause == nil, "expected no cause, got %v", cause)
	return a
}

// HasCause checks that the direct cause of actual matches target
// with errors.Is.
func (a *ErrorAssert) HasCause(target error) *ErrorAssert {
	cause := errors.Unwrap(a.actual)
	a.expect("HasCause", cause != nil && errors.Is(cause, target),
		"expected cause %v, got %v", target, cause)
	return a
}

// Cause returns an ErrorAssert over the direct cause of actual.
func (a *ErrorAssert) Cause() *ErrorAssert {
	cause := errors.Unwrap(a.actual)
	c := &ErrorAssert{base: a.soft.proxy(KindError, cause), actual: cause}
	c.description = a.description
	return c
}
