package collections

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-lambda/lambda"
)

// DefaultSeparator is used by [Join] and [JoinFrom] when no separator is
// given.
const DefaultSeparator = ", "

// Join renders every element of source with its default format and joins
// them with sep[0], or [DefaultSeparator].
//
// source may be any slice or array. nil and empty sequences render as "";
// any other value renders as itself, so Join(1) is "1". nil elements,
// typed nil pointers included, render as empty strings. Floats use Go's
// shortest form, so Join(1.0) is "1".
//
//	collections.Join([]string{"many", "strings"})       // "many, strings"
//	collections.Join([]int{1, 2, 3}, "; ")              // "1; 2; 3"
//	collections.Join(nil)                               // ""
func Join(source any, sep ...string) string {
	v := reflect.ValueOf(source)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return format(v)
	}

	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = format(v.Index(i))
	}
	return strings.Join(parts, separator(sep))
}

// JoinFrom records a chain with rec and joins the values it yields for each
// element of source. A nil rec joins the elements themselves.
//
//	countries, err := collections.JoinFrom(exposures, func(e *lambda.Surrogate[Exposure]) *lambda.Surrogate[Exposure] {
//	    return e.Call("CountryName")
//	}) // "france, brazil"
func JoinFrom[T any](source []T, rec lambda.Recording[T], sep ...string) (string, error) {
	if rec == nil {
		return Join(source, sep...), nil
	}
	x, err := lambda.Capture[any](rec)
	if err != nil {
		return "", err
	}
	values, err := Collect[T, any](source, x)
	if err != nil {
		return "", err
	}
	return Join(values, sep...), nil
}

// JoinFromPath is [JoinFrom] with any extractor [Extract] accepts, usually a
// property path.
//
//	countries, err := collections.JoinFromPath(exposures, "countryName", "; ")
func JoinFromPath[T any](source []T, x any, sep ...string) (string, error) {
	values, err := Extract(source, x)
	if err != nil {
		return "", err
	}
	return Join(values, sep...), nil
}

func separator(sep []string) string {
	if len(sep) > 0 {
		return sep[0]
	}
	return DefaultSeparator
}

// format renders v with %v, and nil values of any kind as "".
func format(v reflect.Value) string {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return ""
		}
	}
	if !v.CanInterface() {
		return fmt.Sprint(v)
	}
	return fmt.Sprint(v.Interface())
}
