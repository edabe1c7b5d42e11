package soft

import (
	"time"

	"github.com/stretchr/testify/assert"
)

// TimeAssert checks a point in time. Equality ignores location.
type TimeAssert struct {
	base
	actual time.Time
}

// As sets a description shown with any failure of this wrapper.
func (a *TimeAssert) As(format string, args ...any) *TimeAssert {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual is the same instant as expected.
func (a *TimeAssert) IsEqualTo(expected time.Time) *TimeAssert {
	a.expect("IsEqualTo", a.actual.Equal(expected),
		"expected %s to be equal to %s", formatTime(a.actual), formatTime(expected))
	return a
}

// IsBefore checks that actual is strictly before other.
func (a *TimeAssert) IsBefore(other time.Time) *TimeAssert {
	a.expect("IsBefore", a.actual.Before(other),
		"expected %s to be before %s", formatTime(a.actual), formatTime(other))
	return a
}

// IsAfter checks that actual is strictly after other.
func (a *TimeAssert) IsAfter(other time.Time) *TimeAssert {
	a.expect("IsAfter", a.actual.After(other),
		"expected %s to be after %s", formatTime(a.actual), formatTime(other))
	return a
}

// IsBetween checks start <= actual <= end.
func (a *TimeAssert) IsBetween(start, end time.Time) *TimeAssert {
	a.expect("IsBetween", !a.actual.Before(start) && !a.actual.After(end),
		"expected %s to be between %s and %s",
		formatTime(a.actual), formatTime(start), formatTime(end))
	return a
}

// IsCloseTo checks that actual is within delta of other.
func (a *TimeAssert) IsCloseTo(other time.Time, delta time.Duration) *TimeAssert {
	a.check("IsCloseTo", func(t assert.TestingT) bool {
		return assert.WithinDuration(t, other, a.actual, delta, a.msgAndArgs()...)
	})
	return a
}

// IsZero checks that actual is the zero time.
func (a *TimeAssert) IsZero() *TimeAssert {
	a.expect("IsZero", a.actual.IsZero(), "expected zero time, got %s", formatTime(a.actual))
	return a
}

// IsNotZero checks that actual is not the zero time.
func (a *TimeAssert) IsNotZero() *TimeAssert {
	a.expect("IsNotZero", !a.actual.IsZero(), "expected a non-zero time")
	return a
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
