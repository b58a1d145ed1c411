package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-lambda/lambda"
	"github.com/hasbyte1/go-lambda/property"
)

// ─────────────────────────────────────────────────────────────────────────────
// Extraction
// ─────────────────────────────────────────────────────────────────────────────

// Collect applies x to every element and returns the results in source
// order. The first extraction error aborts the operation.
//
//	ages, err := collections.Collect(people, age) // []int{35, 29, 39, 29}
func Collect[T, R any](source []T, x lambda.Func[T, R]) ([]R, error) {
	out := make([]R, len(source))
	for i, item := range source {
		r, err := x.Apply(item)
		if err != nil {
			return nil, fmt.Errorf("collections: extract item %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// anyApplier is satisfied by *lambda.Extractor and *lambda.Numeric.
type anyApplier[T any] interface {
	ApplyAny(root T) (any, error)
}

// Extract applies a dynamically typed extractor to every element. x may be:
//
//   - a *lambda.Extractor, *lambda.Numeric or anything else with an
//     ApplyAny(T) (any, error) method
//   - a func(T) any or func(T) (any, error)
//   - a property path, as a string or a [property.Path]; T is registered
//     with [property.Register] so paths may use struct tag names
//
// Anything else fails with [ErrInvalidExtractor].
//
//	countries, err := collections.Extract(exposures, "countryName")
func Extract[T any](source []T, x any) ([]any, error) {
	fn, err := extractor[T](x)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(source))
	for i, item := range source {
		v, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("collections: extract item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func extractor[T any](x any) (func(T) (any, error), error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidExtractor)
	}
	if v := reflect.ValueOf(x); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("%w: nil %T", ErrInvalidExtractor, x)
	}
	switch x := x.(type) {
	case anyApplier[T]:
		return x.ApplyAny, nil
	case func(T) (any, error):
		return x, nil
	case func(T) any:
		return func(v T) (any, error) { return x(v), nil }, nil
	case string:
		property.Register[T]()
		p, err := property.Parse(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExtractor, err)
		}
		return func(v T) (any, error) { return p.Resolve(v) }, nil
	case property.Path:
		property.Register[T]()
		return func(v T) (any, error) { return x.Resolve(v) }, nil
	}
	return nil, fmt.Errorf("%w: %T cannot extract from %s", ErrInvalidExtractor, x, reflect.TypeFor[T]())
}

// Convert applies fn to every element.
//
//	names := collections.Convert(people, func(p Person) string { return p.FirstName })
func Convert[T, R any](source []T, fn func(T) R) []R {
	out := make([]R, len(source))
	for i, item := range source {
		out[i] = fn(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexing & grouping
// ─────────────────────────────────────────────────────────────────────────────

// Index maps the key extracted by x to its element. When several elements
// share a key, the last one wins.
//
//	byCountry, err := collections.Index(exposures, country)
func Index[T any, K comparable](source []T, x lambda.Func[T, K]) (map[K]T, error) {
	out := make(map[K]T, len(source))
	for i, item := range source {
		k, err := x.Apply(item)
		if err != nil {
			return nil, fmt.Errorf("collections: extract item %d: %w", i, err)
		}
		out[k] = item
	}
	return out, nil
}

// IndexBy is [Index] keyed by a property path or any extractor [Extract]
// accepts. Keys that cannot be map keys fail with [ErrInvalidExtractor].
//
//	byCountry, err := collections.IndexBy(exposures, "countryName")
func IndexBy[T any](source []T, x any) (map[any]T, error) {
	keys, err := keysOf(source, x)
	if err != nil {
		return nil, err
	}
	out := make(map[any]T, len(source))
	for i, item := range source {
		out[keys[i]] = item
	}
	return out, nil
}

// GroupBy groups elements by the key extracted by x, preserving source
// order within each group.
//
//	byAge, err := collections.GroupBy(people, age)
func GroupBy[T any, K comparable](source []T, x lambda.Func[T, K]) (map[K][]T, error) {
	groups := make(map[K][]T)
	for i, item := range source {
		k, err := x.Apply(item)
		if err != nil {
			return nil, fmt.Errorf("collections: extract item %d: %w", i, err)
		}
		groups[k] = append(groups[k], item)
	}
	return groups, nil
}

// GroupByPath is [GroupBy] keyed by a property path or any extractor
// [Extract] accepts.
func GroupByPath[T any](source []T, x any) (map[any][]T, error) {
	keys, err := keysOf(source, x)
	if err != nil {
		return nil, err
	}
	groups := make(map[any][]T)
	for i, item := range source {
		groups[keys[i]] = append(groups[keys[i]], item)
	}
	return groups, nil
}

func keysOf[T any](source []T, x any) ([]any, error) {
	keys, err := Extract(source, x)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		if k != nil && !reflect.ValueOf(k).Comparable() {
			return nil, fmt.Errorf("%w: item %d: key of type %T is not comparable", ErrInvalidExtractor, i, k)
		}
	}
	return keys, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of source sorted in ascending order of the key
// extracted by x. The sort is stable and x is applied once per element.
//
//	youngestFirst, err := collections.SortBy(people, age)
func SortBy[T any, K cmp.Ordered](source []T, x lambda.Func[T, K]) ([]T, error) {
	type keyed struct {
		key  K
		item T
	}
	ks := make([]keyed, len(source))
	for i, item := range source {
		k, err := x.Apply(item)
		if err != nil {
			return nil, fmt.Errorf("collections: extract item %d: %w", i, err)
		}
		ks[i] = keyed{key: k, item: item}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return cmp.Compare(a.key, b.key) })

	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out, nil
}

// SortFunc returns a copy of source sorted by cmp. The sort is stable.
func SortFunc[T any](source []T, cmp func(a, b T) int) []T {
	out := slices.Clone(source)
	slices.SortStableFunc(out, cmp)
	return out
}

// ForEach binds source for bulk application of a method to every element.
//
//	collections.ForEach(family).Do("SetLastName", "Fusco")
func ForEach[T any](source []T) *lambda.Bulk[T] { return lambda.ForEach(source) }
