package member

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Bind converts caller arguments into values accepted by r. It runs once at
// record time; the returned values are forwarded verbatim on every replay.
func Bind(r Ref, args []any) ([]reflect.Value, error) {
	n := len(r.In)
	if r.Variadic {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s takes at least %d arguments, got %d", ErrUnresolvedPath, r, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrUnresolvedPath, r, n, len(args))
	}

	out := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := r.param(i)
		v, err := bindArg(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: %s argument %d: %v", ErrUnresolvedPath, r, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (r Ref) param(i int) reflect.Type {
	last := len(r.In) - 1
	if r.Variadic && i >= last {
		return r.In[last].Elem()
	}
	return r.In[i]
}

func bindArg(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		if nillable(pt.Kind()) {
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", pt)
	}
	av := reflect.ValueOf(a)
	if av.Type().AssignableTo(pt) {
		return av, nil
	}
	if numeric(av.Kind()) && numeric(pt.Kind()) {
		if cv, ok := convertExact(av, pt); ok {
			return cv, nil
		}
		return reflect.Value{}, fmt.Errorf("%v does not fit in %s", a, pt)
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", av.Type(), pt)
}

// convertExact converts a numeric value to pt only when nothing is lost:
// the result must convert back to the same value and keep its sign.
func convertExact(av reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	cv := av.Convert(pt)
	if floating(av.Kind()) && math.IsNaN(av.Float()) {
		return cv, floating(pt.Kind())
	}
	if negative(av) != negative(cv) {
		return reflect.Value{}, false
	}
	return cv, cv.Convert(av.Type()).Equal(av)
}

func floating(k reflect.Kind) bool { return k == reflect.Float32 || k == reflect.Float64 }

func negative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Numeric reports whether k is an integer or floating-point kind.
func Numeric(k reflect.Kind) bool { return numeric(k) }

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Invoke replays r against v with pre-bound args. It returns the member's
// result, or an invalid Value for void members.
func (r Ref) Invoke(v reflect.Value, args []reflect.Value) (reflect.Value, error) {
	if r.Kind == KindField {
		return r.field(v)
	}
	return r.call(v, args)
}

func (r Ref) call(v reflect.Value, args []reflect.Value) (result reflect.Value, err error) {
	recv, err := r.receiver(v)
	if err != nil {
		return reflect.Value{}, err
	}
	fn, err := r.method(recv)
	if err != nil {
		return reflect.Value{}, err
	}

	defer func() {
		if p := recover(); p != nil {
			result = reflect.Value{}
			err = fmt.Errorf("%w: %s: panic: %v", ErrInvocation, r, p)
		}
	}()

	outs := fn.Call(args)
	if r.Errors {
		if e := outs[len(outs)-1]; !e.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrInvocation, r, e.Interface().(error))
		}
	}
	if r.Out == nil {
		return reflect.Value{}, nil
	}
	return outs[0], nil
}

// receiver unwraps interfaces and rejects nil receivers.
func (r Ref) receiver(v reflect.Value) (reflect.Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, r.null()
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.Value{}, r.null()
	}
	return v, nil
}

func (r Ref) method(recv reflect.Value) (reflect.Value, error) {
	t := recv.Type()
	switch {
	case t == r.Owner && !r.Pointer:
		return recv.Method(r.Index[0]), nil
	case t == r.Owner:
		return addressable(recv).Method(r.Index[0]), nil
	case r.Pointer && t == reflect.PointerTo(r.Owner):
		return recv.Method(r.Index[0]), nil
	}

	// The dynamic type differs from the recorded owner (interface roots).
	if m := recv.MethodByName(r.Name); m.IsValid() {
		return m, nil
	}
	if recv.Kind() != reflect.Pointer {
		if m := addressable(recv).MethodByName(r.Name); m.IsValid() {
			return m, nil
		}
	}
	return reflect.Value{}, unresolved(t, r.Name)
}

func (r Ref) field(v reflect.Value) (reflect.Value, error) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}, r.null()
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, r.null()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, unresolved(v.Type(), r.Name)
	}

	index := r.Index
	if structOf(r.Owner) != v.Type() {
		ref, err := Field(v.Type(), r.Name)
		if err != nil {
			return reflect.Value{}, err
		}
		index = ref.Index
	}

	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}
	f, err := v.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrNullPath, r, err)
	}
	if !f.CanInterface() {
		f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}
	return f, nil
}

func (r Ref) null() error {
	return fmt.Errorf("%w: %s on nil %s", ErrNullPath, r.Name, typeName(r.Owner))
}

func structOf(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}
