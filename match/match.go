// Package match provides composable predicates over values.
//
// A [Matcher] reports whether a value satisfies a condition. Matchers may
// fail: a matcher that resolves a property or replays a recorded chain
// returns that error instead of guessing a result, and combinators pass it
// through unchanged.
//
//	adult := match.HasProperty[*Person]("age", match.Any(match.AtLeast(18)))
//	named := match.HasProperty[*Person]("firstName", match.Any(match.HasPrefix("M")))
//	ok, err := match.And(adult, named).Match(mario)
package match

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-lambda/property"
)

// Matcher is a predicate over T.
type Matcher[T any] interface {
	Match(T) (bool, error)
}

// Func adapts a plain predicate to a [Matcher].
type Func[T any] func(T) bool

// Match calls f(v).
func (f Func[T]) Match(v T) (bool, error) { return f(v), nil }

// FuncErr adapts a fallible predicate to a [Matcher].
type FuncErr[T any] func(T) (bool, error)

// Match calls f(v).
func (f FuncErr[T]) Match(v T) (bool, error) { return f(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Anything matches every value.
func Anything[T any]() Matcher[T] {
	return Func[T](func(T) bool { return true })
}

// And matches when every matcher matches. Evaluation stops at the first
// non-match or error. And() with no matchers matches everything.
func And[T any](ms ...Matcher[T]) Matcher[T] {
	return FuncErr[T](func(v T) (bool, error) {
		for _, m := range ms {
			ok, err := m.Match(v)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	})
}

// Or matches when any matcher matches. Evaluation stops at the first match
// or error. Or() with no matchers matches nothing.
func Or[T any](ms ...Matcher[T]) Matcher[T] {
	return FuncErr[T](func(v T) (bool, error) {
		for _, m := range ms {
			ok, err := m.Match(v)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	})
}

// Not inverts m. Errors are not inverted.
func Not[T any](m Matcher[T]) Matcher[T] {
	return FuncErr[T](func(v T) (bool, error) {
		ok, err := m.Match(v)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Values
// ─────────────────────────────────────────────────────────────────────────────

// allFields makes go-cmp compare unexported fields instead of panicking.
var allFields = gocmp.Exporter(func(reflect.Type) bool { return true })

// Equal matches values deeply equal to want, unexported fields included.
func Equal[T any](want T) Matcher[T] {
	return Func[T](func(v T) bool { return Equals(v, want) })
}

// Equals reports whether a and b are deeply equal, unexported fields
// included. Values with an Equal method are compared with it.
func Equals(a, b any) bool { return gocmp.Equal(a, b, allFields) }

// Nil matches nil values, including typed nil pointers held in interfaces.
func Nil[T any]() Matcher[T] {
	return Func[T](func(v T) bool {
		rv := reflect.ValueOf(any(v))
		if !rv.IsValid() {
			return true
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return rv.IsNil()
		}
		return false
	})
}

// GreaterThan matches values strictly greater than n.
func GreaterThan[T cmp.Ordered](n T) Matcher[T] {
	return Func[T](func(v T) bool { return cmp.Compare(v, n) > 0 })
}

// LessThan matches values strictly less than n.
func LessThan[T cmp.Ordered](n T) Matcher[T] {
	return Func[T](func(v T) bool { return cmp.Compare(v, n) < 0 })
}

// AtLeast matches values greater than or equal to n.
func AtLeast[T cmp.Ordered](n T) Matcher[T] {
	return Func[T](func(v T) bool { return cmp.Compare(v, n) >= 0 })
}

// AtMost matches values less than or equal to n.
func AtMost[T cmp.Ordered](n T) Matcher[T] {
	return Func[T](func(v T) bool { return cmp.Compare(v, n) <= 0 })
}

// HasPrefix matches strings starting with prefix.
func HasPrefix(prefix string) Matcher[string] {
	return Func[string](func(s string) bool { return strings.HasPrefix(s, prefix) })
}

// HasSuffix matches strings ending with suffix.
func HasSuffix(suffix string) Matcher[string] {
	return Func[string](func(s string) bool { return strings.HasSuffix(s, suffix) })
}

// Contains matches strings containing sub.
func Contains(sub string) Matcher[string] {
	return Func[string](func(s string) bool { return strings.Contains(s, sub) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Dynamic values
// ─────────────────────────────────────────────────────────────────────────────

// Any lifts a typed matcher to dynamic values. A value of another type
// fails with [ErrType]; untyped nil is offered as the zero T.
//
//	match.HasProperty[*Person]("age", match.Any(match.GreaterThan(30)))
func Any[T any](m Matcher[T]) Matcher[any] {
	return FuncErr[any](func(v any) (bool, error) {
		if v == nil {
			var zero T
			return m.Match(zero)
		}
		t, ok := v.(T)
		if !ok {
			return false, fmt.Errorf("%w: %T is not %s", ErrType, v, reflect.TypeFor[T]())
		}
		return m.Match(t)
	})
}

// HasProperty resolves path on each value with [property.Resolve] and
// matches the result against m. Resolution failures are returned as
// errors.
//
//	match.HasProperty[*Person]("firstName.length", match.Any(match.LessThan(5)))
func HasProperty[T any](path string, m Matcher[any]) Matcher[T] {
	property.Register[T]()
	p, err := property.Parse(path)
	return FuncErr[T](func(v T) (bool, error) {
		if err != nil {
			return false, err
		}
		val, err := p.Resolve(v)
		if err != nil {
			return false, err
		}
		return m.Match(val)
	})
}

// HasPropertyPath is [HasProperty] with a pre-parsed path, so a custom
// [property.Resolver] can be used.
func HasPropertyPath[T any](p property.Path, m Matcher[any]) Matcher[T] {
	property.Register[T]()
	return FuncErr[T](func(v T) (bool, error) {
		val, err := p.Resolve(v)
		if err != nil {
			return false, err
		}
		return m.Match(val)
	})
}
