package collections

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-lambda/lambda"
	"github.com/hasbyte1/go-lambda/match"
)

// ─────────────────────────────────────────────────────────────────────────────
// Selection
//
// Every function here is a pure function over the source slice: the result
// is a new slice holding the selected elements in source order, and the
// first matcher error aborts the whole operation.
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the elements of source matched by m.
//
//	adults, err := collections.Select(people,
//	    match.HasProperty[Person]("age", match.Any(match.AtLeast(18))))
func Select[T any](source []T, m match.Matcher[T]) ([]T, error) {
	out := make([]T, 0, len(source))
	for i, item := range source {
		ok, err := m.Match(item)
		if err != nil {
			return nil, fmt.Errorf("collections: select item %d: %w", i, err)
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// Filter is [Select] with the matcher first.
func Filter[T any](m match.Matcher[T], source []T) ([]T, error) {
	return Select(source, m)
}

// Having builds a matcher that applies x to a value and matches the result
// against m.
//
//	age, _ := lambda.Freeze[int](lambda.On[Person]().Call("Age"))
//	older, err := collections.Select(people, collections.Having(age, match.GreaterThan(30)))
func Having[T, R any](x lambda.Func[T, R], m match.Matcher[R]) match.Matcher[T] {
	return match.FuncErr[T](func(v T) (bool, error) {
		r, err := x.Apply(v)
		if err != nil {
			return false, err
		}
		return m.Match(r)
	})
}

// SelectFirst returns the first element matched by m, or
// [ErrNoMatchingItems].
func SelectFirst[T any](source []T, m match.Matcher[T]) (T, error) {
	var zero T
	for i, item := range source {
		ok, err := m.Match(item)
		if err != nil {
			return zero, fmt.Errorf("collections: select item %d: %w", i, err)
		}
		if ok {
			return item, nil
		}
	}
	return zero, ErrNoMatchingItems
}

// SelectUnique returns the only element matched by m. It fails with
// [ErrNotUnique] when a second match is found and with [ErrNoMatchingItems]
// when there is none.
func SelectUnique[T any](source []T, m match.Matcher[T]) (T, error) {
	var (
		zero  T
		found T
		seen  = -1
	)
	for i, item := range source {
		ok, err := m.Match(item)
		if err != nil {
			return zero, fmt.Errorf("collections: select item %d: %w", i, err)
		}
		if !ok {
			continue
		}
		if seen >= 0 {
			return zero, fmt.Errorf("%w: items %d and %d", ErrNotUnique, seen, i)
		}
		found, seen = item, i
	}
	if seen < 0 {
		return zero, ErrNoMatchingItems
	}
	return found, nil
}

// Exists reports whether any element is matched by m.
func Exists[T any](source []T, m match.Matcher[T]) (bool, error) {
	_, err := SelectFirst(source, m)
	switch {
	case err == nil:
		return true, nil
	case err == ErrNoMatchingItems:
		return false, nil
	}
	return false, err
}

// Count returns the number of elements matched by m.
func Count[T any](source []T, m match.Matcher[T]) (int, error) {
	n := 0
	for i, item := range source {
		ok, err := m.Match(item)
		if err != nil {
			return 0, fmt.Errorf("collections: select item %d: %w", i, err)
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Distinct
// ─────────────────────────────────────────────────────────────────────────────

// SelectDistinct returns source without duplicates, keeping the first
// occurrence of each value. Comparable values are compared with ==, others
// (slices, maps, structs holding them) deeply.
//
//	collections.SelectDistinct([]string{"a", "b", "a"}) // ["a", "b"]
func SelectDistinct[T any](source []T) []T {
	out := make([]T, 0, len(source))
	seen := make(map[any]struct{}, len(source))
	var deep []any
	for _, item := range source {
		v := any(item)
		if reflect.ValueOf(v).Comparable() {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		} else {
			if containsDeep(deep, v) {
				continue
			}
			deep = append(deep, v)
		}
		out = append(out, item)
	}
	return out
}

func containsDeep(items []any, v any) bool {
	for _, item := range items {
		if match.Equals(item, v) {
			return true
		}
	}
	return false
}

// SelectDistinctFunc returns source without elements that cmp reports as
// equal (cmp(a, b) == 0) to an earlier element.
//
//	byLength := func(a, b string) int { return len(a) - len(b) }
//	collections.SelectDistinctFunc([]string{"one", "two", "three"}, byLength) // ["one", "three"]
func SelectDistinctFunc[T any](source []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(source))
next:
	for _, item := range source {
		for _, kept := range out {
			if cmp(kept, item) == 0 {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}
