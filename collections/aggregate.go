package collections

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-lambda/lambda"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the values x extracts, left to right. An empty source sums
// to zero.
//
//	age, _ := lambda.Freeze[int](lambda.On[Person]().Call("Age"))
//	total, err := collections.Sum(people, age) // 132
func Sum[T any, N lambda.Number](source []T, x lambda.Func[T, N]) (N, error) {
	var sum N
	for i, item := range source {
		n, err := x.Apply(item)
		if err != nil {
			return 0, fmt.Errorf("collections: extract item %d: %w", i, err)
		}
		sum += n
	}
	return sum, nil
}

// SumFrom records a numeric chain with rec, freezes it and sums it over
// source. Chains that do not end in a number fail with
// [lambda.ErrResultType]. Integer results accumulate exactly as int64 or
// uint64 and convert to float64 once, so only the returned total rounds
// past 2^53.
//
//	total, err := collections.SumFrom(people, func(p *lambda.Surrogate[Person]) *lambda.Surrogate[Person] {
//	    return p.Call("BestFriend").Call("Age")
//	})
func SumFrom[T any](source []T, rec lambda.Recording[T]) (float64, error) {
	x, err := lambda.FreezeNumeric(rec(lambda.On[T]()))
	if err != nil {
		return 0, err
	}
	switch x.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sum, err := Sum[T, int64](source, lambda.FuncOf[T, int64](func(item T) (int64, error) {
			v, err := numericValue(x, item)
			if err != nil {
				return 0, err
			}
			return v.Int(), nil
		}))
		return float64(sum), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sum, err := Sum[T, uint64](source, lambda.FuncOf[T, uint64](func(item T) (uint64, error) {
			v, err := numericValue(x, item)
			if err != nil {
				return 0, err
			}
			return v.Uint(), nil
		}))
		return float64(sum), err
	}
	return Sum[T, float64](source, x)
}

func numericValue[T any](x *lambda.Numeric[T], item T) (reflect.Value, error) {
	raw, err := x.ApplyAny(item)
	if err != nil {
		return reflect.Value{}, err
	}
	if raw == nil {
		return reflect.Value{}, fmt.Errorf("%w: %s produced no value", lambda.ErrResultType, x)
	}
	return reflect.ValueOf(raw), nil
}

// Min returns the smallest element, or [ErrEmptyCollection].
func Min[T cmp.Ordered](source []T) (T, error) {
	return MinFunc(source, cmp.Compare[T])
}

// Max returns the largest element, or [ErrEmptyCollection].
func Max[T cmp.Ordered](source []T) (T, error) {
	return MaxFunc(source, cmp.Compare[T])
}

// MinFunc returns the first element that no other element is smaller than
// according to cmp.
func MinFunc[T any](source []T, cmp func(a, b T) int) (T, error) {
	return best(source, func(a, b T) bool { return cmp(a, b) < 0 })
}

// MaxFunc returns the first element that no other element is larger than
// according to cmp.
func MaxFunc[T any](source []T, cmp func(a, b T) int) (T, error) {
	return best(source, func(a, b T) bool { return cmp(a, b) > 0 })
}

// MinBy returns the element with the smallest extracted key. Ties go to the
// earliest element.
//
//	youngest, err := collections.MinBy(people, age)
func MinBy[T any, K cmp.Ordered](source []T, x lambda.Func[T, K]) (T, error) {
	return bestBy(source, x, func(a, b K) bool { return a < b })
}

// MaxBy returns the element with the largest extracted key. Ties go to the
// earliest element.
func MaxBy[T any, K cmp.Ordered](source []T, x lambda.Func[T, K]) (T, error) {
	return bestBy(source, x, func(a, b K) bool { return a > b })
}

func best[T any](source []T, better func(a, b T) bool) (T, error) {
	var zero T
	if len(source) == 0 {
		return zero, ErrEmptyCollection
	}
	res := source[0]
	for _, item := range source[1:] {
		if better(item, res) {
			res = item
		}
	}
	return res, nil
}

func bestBy[T any, K cmp.Ordered](source []T, x lambda.Func[T, K], better func(a, b K) bool) (T, error) {
	var zero T
	if len(source) == 0 {
		return zero, ErrEmptyCollection
	}
	res := source[0]
	key, err := x.Apply(res)
	if err != nil {
		return zero, fmt.Errorf("collections: extract item 0: %w", err)
	}
	for i, item := range source[1:] {
		k, err := x.Apply(item)
		if err != nil {
			return zero, fmt.Errorf("collections: extract item %d: %w", i+1, err)
		}
		if better(k, key) {
			res, key = item, k
		}
	}
	return res, nil
}
