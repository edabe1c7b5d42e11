package soft

import (
	"reflect"
)

// TypeAssert checks a reflect.Type. Every check fails on a nil type.
type TypeAssert struct {
	base
	actual reflect.Type
}

// As sets a description shown with any failure of this wrapper.
func (a *TypeAssert) As(format string, args ...any) *TypeAssert {
	a.describe(format, args...)
	return a
}

// IsKind checks the reflect.Kind of the type.
func (a *TypeAssert) IsKind(kind reflect.Kind) *TypeAssert {
	if a.notNil("IsKind") {
		a.expect("IsKind", a.actual.Kind() == kind,
			"expected %s to be of kind %s but was %s", a.actual, kind, a.actual.Kind())
	}
	return a
}

// IsNamed compares against reflect.Type.String, e.g. "time.Time".
func (a *TypeAssert) IsNamed(name string) *TypeAssert {
	if a.notNil("IsNamed") {
		a.expect("IsNamed", a.actual.String() == name,
			"expected type %s but was %s", name, a.actual)
	}
	return a
}

// Implements checks that the type implements the interface type
// iface, e.g. reflect.TypeFor[error]().
func (a *TypeAssert) Implements(iface reflect.Type) *TypeAssert {
	if !a.notNil("Implements") {
		return a
	}
	if iface == nil || iface.Kind() != reflect.Interface {
		a.expect("Implements", false, "%v is not an interface type", iface)
		return a
	}
	a.expect("Implements", a.actual.Implements(iface),
		"expected %s to implement %s", a.actual, iface)
	return a
}

// IsAssignableTo checks that values of the type can be assigned to other.
func (a *TypeAssert) IsAssignableTo(other reflect.Type) *TypeAssert {
	if a.notNil("IsAssignableTo") {
		a.expect("IsAssignableTo", other != nil && a.actual.AssignableTo(other),
			"expected %s to be assignable to %v", a.actual, other)
	}
	return a
}

// HasField checks for a field on a struct or pointer-to-struct type.
func (a *TypeAssert) HasField(name string) *TypeAssert {
	if !a.notNil("HasField") {
		return a
	}
	t := a.actual
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	ok := false
	if t.Kind() == reflect.Struct {
		_, ok = t.FieldByName(name)
	}
	a.expect("HasField", ok, "expected %s to have field %q", a.actual, name)
	return a
}

// HasMethod checks the type's method set for name.
func (a *TypeAssert) HasMethod(name string) *TypeAssert {
	if !a.notNil("HasMethod") {
		return a
	}
	_, ok := a.actual.MethodByName(name)
	a.expect("HasMethod", ok, "expected %s to have method %q", a.actual, name)
	return a
}

func (a *TypeAssert) notNil(check string) bool {
	if a.actual != nil {
		return true
	}
	a.expect(check, false, "expected a type but was nil")
	return false
}
