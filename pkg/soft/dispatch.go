package soft

import (
	"fmt"
	"io"
	"math/big"
	"net/url"
	"reflect"
	"sync"
	"time"
)

// Factory builds a wrapper for value, which is guaranteed to have
// the dynamic type the factory was registered for.
type Factory func(s *SoftAssertions, value any) Assert

// Registry maps dynamic types to wrapper factories. It mirrors the
// Then* functions for values only known at run time. It is safe
// for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]Factory
}

func newRegistry() *Registry {
	r := &Registry{factories: make(map[reflect.Type]Factory)}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	set := func(sample any, f Factory) {
		r.factories[reflect.TypeOf(sample)] = f
	}
	set((*big.Float)(nil), func(s *SoftAssertions, v any) Assert { return s.ThenBigFloat(v.(*big.Float)) })
	set(false, func(s *SoftAssertions, v any) Assert { return s.ThenBool(v.(bool)) })
	set([]bool(nil), func(s *SoftAssertions, v any) Assert { return s.ThenBools(v.([]bool)) })
	set(byte(0), func(s *SoftAssertions, v any) Assert { return s.ThenByte(v.(byte)) })
	set([]byte(nil), func(s *SoftAssertions, v any) Assert { return s.ThenBytes(v.([]byte)) })
	set(rune(0), func(s *SoftAssertions, v any) Assert { return s.ThenRune(v.(rune)) })
	set([]rune(nil), func(s *SoftAssertions, v any) Assert { return s.ThenRunes(v.([]rune)) })
	set(float64(0), func(s *SoftAssertions, v any) Assert { return s.ThenFloat64(v.(float64)) })
	set([]float64(nil), func(s *SoftAssertions, v any) Assert { return s.ThenFloat64s(v.([]float64)) })
	set(float32(0), func(s *SoftAssertions, v any) Assert { return s.ThenFloat32(v.(float32)) })
	set([]float32(nil), func(s *SoftAssertions, v any) Assert { return s.ThenFloat32s(v.([]float32)) })
	set(0, func(s *SoftAssertions, v any) Assert { return s.ThenInt(v.(int)) })
	set([]int(nil), func(s *SoftAssertions, v any) Assert { return s.ThenInts(v.([]int)) })
	set(int64(0), func(s *SoftAssertions, v any) Assert { return s.ThenInt64(v.(int64)) })
	set([]int64(nil), func(s *SoftAssertions, v any) Assert { return s.ThenInt64s(v.([]int64)) })
	set(int16(0), func(s *SoftAssertions, v any) Assert { return s.ThenInt16(v.(int16)) })
	set([]int16(nil), func(s *SoftAssertions, v any) Assert { return s.ThenInt16s(v.([]int16)) })
	set([]any(nil), func(s *SoftAssertions, v any) Assert { return s.ThenObjects(v.([]any)) })
	set([]string(nil), func(s *SoftAssertions, v any) Assert { return ThenSlice(s, v.([]string)) })
	set(map[string]any(nil), func(s *SoftAssertions, v any) Assert { return ThenMap(s, v.(map[string]any)) })
	set("", func(s *SoftAssertions, v any) Assert { return s.ThenString(v.(string)) })
	set(time.Time{}, func(s *SoftAssertions, v any) Assert { return s.ThenTime(v.(time.Time)) })
	set((*url.URL)(nil), func(s *SoftAssertions, v any) Assert { return s.ThenURI(v.(*url.URL)) })
}

// Register adds a factory for values of type t. Returns an error if
// t is nil or already registered.
func (r *Registry) Register(t reflect.Type, f Factory) error {
	if t == nil {
		return fmt.Errorf("register: nil type")
	}
	if f == nil {
		return fmt.Errorf("register %s: nil factory", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[t]; exists {
		return fmt.Errorf("type already registered: %s", t)
	}
	r.factories[t] = f
	return nil
}

// Lookup returns the factory registered for exactly t.
func (r *Registry) Lookup(t reflect.Type) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[t]
	return f, ok
}

// Has reports whether t has a registered factory.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.Lookup(t)
	return ok
}

// Then wraps value in the wrapper its dynamic type maps to. Exact
// registrations win; then errors, types, readers and Stringers are
// matched by interface, in that order. Anything else, including
// nil, gets an ObjectAssert.
func (s *SoftAssertions) Then(value any) Assert {
	if value == nil {
		return ThenObject[any](s, nil)
	}
	if f, ok := s.registry.Lookup(reflect.TypeOf(value)); ok {
		return f(s, value)
	}
	switch v := value.(type) {
	case error:
		return s.ThenError(v)
	case reflect.Type:
		return s.ThenType(v)
	case io.Reader:
		return s.ThenReader(v)
	case fmt.Stringer:
		return s.ThenStringer(v)
	}
	return ThenObject(s, value)
}
