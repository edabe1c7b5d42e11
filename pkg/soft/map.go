package soft

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// MapAssert checks a map. Values are compared with go-cmp, so
// structs with unexported fields compare by content.
type MapAssert[K comparable, V any] struct {
	base
	actual map[K]V
	opts   []cmp.Option
}

// As sets a description shown with any failure of this wrapper.
func (a *MapAssert[K, V]) As(format string, args ...any) *MapAssert[K, V] {
	a.describe(format, args...)
	return a
}

// UsingOptions adds go-cmp options for value comparisons.
func (a *MapAssert[K, V]) UsingOptions(opts ...cmp.Option) *MapAssert[K, V] {
	a.opts = append(a.opts, opts...)
	return a
}

// IsEmpty checks that the map has no entries.
func (a *MapAssert[K, V]) IsEmpty() *MapAssert[K, V] {
	a.check("IsEmpty", func(t assert.TestingT) bool {
		return assert.Empty(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// IsNotEmpty checks that the map has at least one entry.
func (a *MapAssert[K, V]) IsNotEmpty() *MapAssert[K, V] {
	a.check("IsNotEmpty", func(t assert.TestingT) bool {
		return assert.NotEmpty(t, a.actual, a.msgAndArgs()...)
	})
	return a
}

// HasSize checks the number of entries.
func (a *MapAssert[K, V]) HasSize(n int) *MapAssert[K, V] {
	a.check("HasSize", func(t assert.TestingT) bool {
		return assert.Len(t, a.actual, n, a.msgAndArgs()...)
	})
	return a
}

// ContainsKey checks that every key is present.
func (a *MapAssert[K, V]) ContainsKey(keys ...K) *MapAssert[K, V] {
	var missing []K
	for _, k := range keys {
		if _, ok := a.actual[k]; !ok {
			missing = append(missing, k)
		}
	}
	a.expect("ContainsKey", len(missing) == 0, "map is missing keys %v", missing)
	return a
}

// DoesNotContainKey checks that none of keys is present.
func (a *MapAssert[K, V]) DoesNotContainKey(keys ...K) *MapAssert[K, V] {
	var found []K
	for _, k := range keys {
		if _, ok := a.actual[k]; ok {
			found = append(found, k)
		}
	}
	a.expect("DoesNotContainKey", len(found) == 0, "map should not contain keys %v", found)
	return a
}

// ContainsEntry checks that key maps to value.
func (a *MapAssert[K, V]) ContainsEntry(key K, value V) *MapAssert[K, V] {
	got, ok := a.actual[key]
	if !ok {
		a.expect("ContainsEntry", false, "map is missing key %v", key)
		return a
	}
	opts := a.options()
	a.expect("ContainsEntry", cmp.Equal(value, got, opts...),
		"unexpected value for key %v (-want +got):\n%s", key, cmp.Diff(value, got, opts...))
	return a
}

// ContainsValue checks that some key maps to value.
func (a *MapAssert[K, V]) ContainsValue(value V) *MapAssert[K, V] {
	opts := a.options()
	found := false
	for _, v := range a.actual {
		if cmp.Equal(value, v, opts...) {
			found = true
			break
		}
	}
	a.expect("ContainsValue", found, "map does not contain value %v", value)
	return a
}

func (a *MapAssert[K, V]) options() []cmp.Option {
	return append([]cmp.Option{exportAll}, a.opts...)
}
