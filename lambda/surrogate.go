package lambda

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// Surrogate stands in for a value of type T while a [Chain] is recorded.
//
// Each [Surrogate.Call] or [Surrogate.Field] appends one step to the chain
// and returns a new Surrogate typed as the step's declared result, so
// nested accessors chain naturally:
//
//	s := lambda.On[*Person]().Call("BestFriend").Call("Age")
//
// A Surrogate is single-use: only the tip of a chain may record the next
// step. Errors are sticky on the chain and reported by [Surrogate.Err],
// [Freeze] and [FreezeNumeric]. A Surrogate must not be shared between
// goroutines while recording.
type Surrogate[T any] struct {
	chain *Chain
	depth int
	typ   reflect.Type
}

// On opens a new empty chain rooted at T and returns its surrogate.
// When T cannot be recorded the error is reported later by [Surrogate.Err]
// or [Freeze]; use [Record] to receive it immediately.
func On[T any]() *Surrogate[T] {
	t := reflect.TypeFor[T]()
	c := &Chain{root: t}
	if recordable(t) {
		member.Prime[T]()
	} else {
		c.err = fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return &Surrogate[T]{chain: c, typ: t}
}

// Record is [On] returning the unsupported-type error eagerly.
func Record[T any]() (*Surrogate[T], error) {
	s := On[T]()
	return s, s.chain.err
}

// recordable reports whether a surrogate can represent t: structs, pointers
// to structs, interfaces with methods, and any type with methods.
func recordable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return false
	case reflect.Struct:
		return true
	case reflect.Interface:
		return t.NumMethod() > 0
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return true
		}
	}
	return member.HasMethods(t)
}

// Call records an invocation of the exported method name with args.
// Arguments are bound to the method's parameter types immediately and are
// forwarded unchanged on every replay.
func (s *Surrogate[T]) Call(name string, args ...any) *Surrogate[T] {
	return s.record(name, member.KindMethod, args)
}

// Field records a read of the struct field name. Unexported fields are
// allowed.
func (s *Surrogate[T]) Field(name string) *Surrogate[T] {
	return s.record(name, member.KindField, nil)
}

func (s *Surrogate[T]) record(name string, kind member.Kind, args []any) *Surrogate[T] {
	c := s.chain
	if c.err != nil {
		return s
	}
	if c.frozen {
		// Frozen chains are shared with extractors and must stay untouched.
		failed := &Chain{root: c.root, err: &RecordError{Step: s.depth, Member: name, Err: ErrChainFrozen}}
		return &Surrogate[T]{chain: failed, depth: s.depth, typ: s.typ}
	}
	ref, bound, err := s.resolve(name, kind, args)
	if err != nil {
		c.err = &RecordError{Step: s.depth, Member: name, Err: err}
		return s
	}
	c.steps = append(c.steps, Step{ref: ref, args: bound})
	return &Surrogate[T]{chain: c, depth: s.depth + 1, typ: ref.Out}
}

func (s *Surrogate[T]) resolve(name string, kind member.Kind, args []any) (member.Ref, []reflect.Value, error) {
	c := s.chain
	switch {
	case s.depth != len(c.steps):
		return member.Ref{}, nil, fmt.Errorf("%w: chain already has %d steps", ErrBranchedChain, len(c.steps))
	case s.typ == nil:
		return member.Ref{}, nil, fmt.Errorf("%w: previous step returns nothing", ErrUnresolvedPath)
	}
	return resolve(s.typ, name, kind, args)
}

func resolve(t reflect.Type, name string, kind member.Kind, args []any) (member.Ref, []reflect.Value, error) {
	if kind == member.KindField {
		ref, err := member.Field(t, name)
		return ref, nil, err
	}
	ref, err := member.Method(t, name)
	if err != nil {
		return ref, nil, err
	}
	bound, err := member.Bind(ref, args)
	return ref, bound, err
}

// Err returns the first error met while recording, if any.
func (s *Surrogate[T]) Err() error { return s.chain.err }

// Chain returns the chain this surrogate records into.
func (s *Surrogate[T]) Chain() *Chain { return s.chain }

// Type returns the declared type at this point of the chain, or nil after
// a void step.
func (s *Surrogate[T]) Type() reflect.Type { return s.typ }
