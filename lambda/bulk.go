package lambda

import (
	"fmt"
	"reflect"
	"time"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// Bulk binds a surrogate to a concrete slice: each call made through it is
// replayed immediately, in order, on every element of the slice.
//
//	lambda.ForEach(family).Do("SetLastName", "Fusco")
//
// Elements are addressed in place, so pointer-receiver mutators also work on
// slices of values. The first failing element aborts the whole operation;
// mutations already applied to earlier elements are not rolled back.
// Bulk must not run concurrently with other iteration over the same slice.
type Bulk[T any] struct {
	source []T
	typ    reflect.Type
	err    error
}

// ForEach binds source for bulk application.
func ForEach[T any](source []T) *Bulk[T] {
	t := reflect.TypeFor[T]()
	b := &Bulk[T]{source: source, typ: t}
	if recordable(t) {
		member.Prime[T]()
	} else {
		b.err = fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return b
}

// Source returns the bound slice.
func (b *Bulk[T]) Source() []T { return b.source }

// Do invokes the method name with args on every element and returns the
// source slice, so calls can be followed by further operations on it.
// Any result the method declares is discarded.
func (b *Bulk[T]) Do(name string, args ...any) ([]T, error) {
	if _, err := b.apply(name, member.KindMethod, args, false); err != nil {
		return nil, err
	}
	return b.source, nil
}

// Values invokes the method name with args on every element and returns
// the per-element results in source order.
func (b *Bulk[T]) Values(name string, args ...any) ([]any, error) {
	return b.values(name, member.KindMethod, args)
}

// Field reads the struct field name from every element.
func (b *Bulk[T]) Field(name string) ([]any, error) {
	return b.values(name, member.KindField, nil)
}

func (b *Bulk[T]) values(name string, kind member.Kind, args []any) ([]any, error) {
	vs, err := b.apply(name, kind, args, true)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v.Interface()
	}
	return out, nil
}

// Results is [Bulk.Values] with typed results.
//
//	initials, err := lambda.Results[string](lambda.ForEach(words), "Slice", 0, 1)
func Results[R, T any](b *Bulk[T], name string, args ...any) ([]R, error) {
	vs, err := b.apply(name, member.KindMethod, args, true)
	if err != nil {
		return nil, err
	}
	out := make([]R, len(vs))
	for i, v := range vs {
		r, err := as[R](v)
		if err != nil {
			return nil, &ReplayError{Member: name, Element: i, Err: err}
		}
		out[i] = r
	}
	return out, nil
}

func (b *Bulk[T]) apply(name string, kind member.Kind, args []any, collect bool) ([]reflect.Value, error) {
	if b.err != nil {
		return nil, b.err
	}
	ref, bound, err := resolve(b.typ, name, kind, args)
	if err != nil {
		return nil, &RecordError{Member: name, Err: err}
	}
	if collect && ref.Void() {
		return nil, &RecordError{Member: name, Err: fmt.Errorf("%w: %s returns nothing", ErrResultType, ref)}
	}

	start := time.Now()
	emitBulkStart(b.typ, ref.String(), len(b.source))

	var out []reflect.Value
	if collect {
		out = make([]reflect.Value, 0, len(b.source))
	}
	sv := reflect.ValueOf(b.source)
	for i := 0; i < sv.Len(); i++ {
		v, err := ref.Invoke(sv.Index(i), bound)
		if err != nil {
			err = &ReplayError{Member: ref.String(), Element: i, Err: err}
			emitBulkComplete(b.typ, ref.String(), i, time.Since(start), err)
			return nil, err
		}
		if collect {
			out = append(out, v)
		}
	}
	emitBulkComplete(b.typ, ref.String(), len(b.source), time.Since(start), nil)
	return out, nil
}
