package lambda

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// Func is the extractor contract consumed by the collections package:
// anything that can derive an R from a T.
type Func[T, R any] interface {
	Apply(root T) (R, error)
}

// FuncOf adapts a plain function to [Func].
type FuncOf[T, R any] func(T) (R, error)

// Apply calls f(root).
func (f FuncOf[T, R]) Apply(root T) (R, error) { return f(root) }

// F adapts an infallible function to [Func].
//
//	byName := lambda.F(func(p Person) string { return p.Name })
func F[T, R any](fn func(T) R) Func[T, R] {
	return FuncOf[T, R](func(root T) (R, error) { return fn(root), nil })
}

// Number is the set of numeric types an extractor may produce for
// arithmetic aggregation.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Recording records a chain on the surrogate it is given and returns the
// chain's tip.
type Recording[T any] func(*Surrogate[T]) *Surrogate[T]

// Extractor is a frozen chain replayable against any root of type T.
// It holds no mutable state and is safe for concurrent use.
type Extractor[T, R any] struct {
	chain *Chain
}

// Freeze closes the chain recorded by s and returns an extractor yielding R.
// The chain's declared result must be assignable to R.
//
//	age, err := lambda.Freeze[int](lambda.On[Person]().Call("Age"))
func Freeze[R, T any](s *Surrogate[T]) (*Extractor[T, R], error) {
	c, err := freeze(s)
	if err != nil {
		return nil, err
	}
	want := reflect.TypeFor[R]()
	out := c.Out()
	if out == nil {
		return nil, fmt.Errorf("%w: %s returns nothing", ErrResultType, c)
	}
	if !out.AssignableTo(want) {
		return nil, fmt.Errorf("%w: %s yields %s, not %s", ErrResultType, c, out, want)
	}
	emitChainFrozen(c)
	return &Extractor[T, R]{chain: c}, nil
}

// Capture records a chain with rec and freezes it in one call.
//
//	name, err := lambda.Capture[string](func(p *lambda.Surrogate[Person]) *lambda.Surrogate[Person] {
//	    return p.Call("Name")
//	})
func Capture[R, T any](rec Recording[T]) (*Extractor[T, R], error) {
	return Freeze[R](rec(On[T]()))
}

func freeze[T any](s *Surrogate[T]) (*Chain, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surrogate", ErrUnsupportedType)
	}
	c := s.chain
	if c.err != nil {
		return nil, c.err
	}
	if s.depth != len(c.steps) {
		return nil, fmt.Errorf("%w: freezing step %d of %d", ErrBranchedChain, s.depth, len(c.steps))
	}
	c.frozen = true
	return c, nil
}

// Apply replays the chain against root and returns the final value.
func (x *Extractor[T, R]) Apply(root T) (R, error) {
	var zero R
	v, err := x.chain.replay(reflect.ValueOf(&root).Elem())
	if err != nil {
		return zero, err
	}
	return as[R](v)
}

// ApplyAny is [Extractor.Apply] with an untyped result.
func (x *Extractor[T, R]) ApplyAny(root T) (any, error) {
	v, err := x.chain.replay(reflect.ValueOf(&root).Elem())
	if err != nil || !v.IsValid() {
		return nil, err
	}
	return v.Interface(), nil
}

// Chain returns the frozen chain.
func (x *Extractor[T, R]) Chain() *Chain { return x.chain }

// String renders the recorded chain.
func (x *Extractor[T, R]) String() string { return x.chain.String() }

func as[R any](v reflect.Value) (R, error) {
	var r R
	if !v.IsValid() {
		return r, nil
	}
	dst := reflect.ValueOf(&r).Elem()
	if !v.Type().AssignableTo(dst.Type()) {
		return r, fmt.Errorf("%w: got %s, want %s", ErrResultType, v.Type(), dst.Type())
	}
	dst.Set(v)
	return r, nil
}

// Numeric is the numeric variant of [Extractor]: a frozen chain whose final
// declared kind is an integer or float, delivered as float64. Collection
// operations accept it anywhere a number-producing function is required.
type Numeric[T any] struct {
	chain *Chain
	kind  reflect.Kind
}

// FreezeNumeric closes the chain recorded by s, requiring a numeric result.
func FreezeNumeric[T any](s *Surrogate[T]) (*Numeric[T], error) {
	c, err := freeze(s)
	if err != nil {
		return nil, err
	}
	out := c.Out()
	if out == nil || !member.Numeric(out.Kind()) {
		return nil, fmt.Errorf("%w: %s is not numeric", ErrResultType, c)
	}
	emitChainFrozen(c)
	return &Numeric[T]{chain: c, kind: out.Kind()}, nil
}

// Apply replays the chain against root and converts the result to float64.
func (n *Numeric[T]) Apply(root T) (float64, error) {
	v, err := n.chain.replay(reflect.ValueOf(&root).Elem())
	if err != nil {
		return 0, err
	}
	return toFloat(v)
}

// ApplyAny replays the chain and returns the result in its declared type.
func (n *Numeric[T]) ApplyAny(root T) (any, error) {
	v, err := n.chain.replay(reflect.ValueOf(&root).Elem())
	if err != nil || !v.IsValid() {
		return nil, err
	}
	return v.Interface(), nil
}

// Kind returns the declared numeric kind of the result.
func (n *Numeric[T]) Kind() reflect.Kind { return n.kind }

// Chain returns the frozen chain.
func (n *Numeric[T]) Chain() *Chain { return n.chain }

// String renders the recorded chain.
func (n *Numeric[T]) String() string { return n.chain.String() }

func toFloat(v reflect.Value) (float64, error) {
	if !v.IsValid() {
		return 0, fmt.Errorf("%w: no value", ErrResultType)
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, fmt.Errorf("%w: %s is not numeric", ErrResultType, v.Type())
}
