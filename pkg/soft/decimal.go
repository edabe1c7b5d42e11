package soft

import (
	"math/big"
)

// DecimalAssert checks an arbitrary-precision number. Equality is
// numeric, so 1.0 and 1.00 are equal.
type DecimalAssert struct {
	base
	actual *big.Float
}

// As sets a description shown with any failure of this wrapper.
func (a *DecimalAssert) As(format string, args ...any) *DecimalAssert {
	a.describe(format, args...)
	return a
}

// IsEqualTo checks that actual has the same value as expected.
func (a *DecimalAssert) IsEqualTo(expected *big.Float) *DecimalAssert {
	a.compare("IsEqualTo", expected, func(c int) bool { return c == 0 }, "equal to")
	return a
}

// IsEqualToString parses expected and compares numerically.
func (a *DecimalAssert) IsEqualToString(expected string) *DecimalAssert {
	f, _, err := big.ParseFloat(expected, 10, 256, big.ToNearestEven)
	if err != nil {
		a.expect("IsEqualToString", false, "invalid decimal %q: %v", expected, err)
		return a
	}
	a.compare("IsEqualToString", f, func(c int) bool { return c == 0 }, "equal to")
	return a
}

// IsZero checks that actual is zero.
func (a *DecimalAssert) IsZero() *DecimalAssert {
	a.compare("IsZero", new(big.Float), func(c int) bool { return c == 0 }, "equal to")
	return a
}

// IsPositive checks that actual is greater than zero.
func (a *DecimalAssert) IsPositive() *DecimalAssert {
	a.compare("IsPositive", new(big.Float), func(c int) bool { return c > 0 }, "greater than")
	return a
}

// IsNegative checks that actual is less than zero.
func (a *DecimalAssert) IsNegative() *DecimalAssert {
	a.compare("IsNegative", new(big.Float), func(c int) bool { return c < 0 }, "less than")
	return a
}

// IsGreaterThan checks that actual is greater than other.
func (a *DecimalAssert) IsGreaterThan(other *big.Float) *DecimalAssert {
	a.compare("IsGreaterThan", other, func(c int) bool { return c > 0 }, "greater than")
	return a
}

// IsLessThan checks that actual is less than other.
func (a *DecimalAssert) IsLessThan(other *big.Float) *DecimalAssert {
	a.compare("IsLessThan", other, func(c int) bool { return c < 0 }, "less than")
	return a
}

func (a *DecimalAssert) compare(check string, other *big.Float, ok func(int) bool, relation string) {
	if a.actual == nil || other == nil {
		a.expect(check, false, "cannot compare nil decimals: actual %v, other %v", a.actual, other)
		return
	}
	a.expect(check, ok(a.actual.Cmp(other)),
		"expected %s to be %s %s", a.actual.Text('g', -1), relation, other.Text('g', -1))
}
