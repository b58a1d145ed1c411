// Package member resolves fields and methods of Go types by name and replays
// them against concrete values.
//
// A [Ref] is resolved once against a static type and can then be invoked on
// any number of values. The per-type member tables backing [Method] and
// [Field] are built lazily on first use and cached for the lifetime of the
// process.
package member

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors shared by the lambda and property packages.
var (
	// ErrNullPath is returned when a member is invoked on a nil intermediate
	// value.
	ErrNullPath = errors.New("lambda: nil value in member path")

	// ErrUnresolvedPath is returned when a type has no member with the
	// requested name, or no member accepting the supplied arguments.
	ErrUnresolvedPath = errors.New("lambda: unresolved member")

	// ErrInvocation is returned when a replayed call panics or returns a
	// non-nil error.
	ErrInvocation = errors.New("lambda: invocation failed")
)

var errorType = reflect.TypeFor[error]()

// Kind distinguishes method members from field members.
type Kind uint8

const (
	// KindMethod is an exported method, possibly from the pointer method set.
	KindMethod Kind = iota + 1
	// KindField is a struct field, exported or not.
	KindField
)

// Ref identifies a single member of Owner.
type Ref struct {
	Owner reflect.Type
	Name  string
	Kind  Kind

	// Index is the field index path for fields, or a single-element method
	// index into the method set of Owner (or *Owner when Pointer is set).
	Index []int

	// Pointer reports that the method is only in the pointer method set.
	Pointer bool

	In       []reflect.Type
	Variadic bool

	// Out is the declared result type, nil for void members.
	Out reflect.Type

	// Errors reports that the method's last result is an error.
	Errors bool
}

// Arity returns the number of declared parameters.
func (r Ref) Arity() int { return len(r.In) }

// Void reports whether the member has no declared result.
func (r Ref) Void() bool { return r.Out == nil }

// String renders the member as Owner.Name for fields and Owner.Name/arity for
// methods.
func (r Ref) String() string {
	if r.Kind == KindField {
		return typeName(r.Owner) + "." + r.Name
	}
	return fmt.Sprintf("%s.%s/%d", typeName(r.Owner), r.Name, len(r.In))
}

// Method resolves the method name on t. Value types also expose the methods
// of their pointer method set.
func Method(t reflect.Type, name string) (Ref, error) {
	if r, ok := lookup(t).methods[name]; ok {
		return r, nil
	}
	return Ref{}, unresolved(t, name)
}

// Field resolves the struct field name on t, dereferencing a pointer type.
// Promoted and unexported fields are included, and so are the names given
// by a [Tag] or json tag on fields of primed types.
func Field(t reflect.Type, name string) (Ref, error) {
	if r, ok := FindField(t, name); ok {
		return r, nil
	}
	return Ref{}, unresolved(t, name)
}

// FindMethod is [Method] without the error, for callers probing several
// candidate names.
func FindMethod(t reflect.Type, name string) (Ref, bool) {
	r, ok := lookup(t).methods[name]
	return r, ok
}

// FindField is [Field] without the error.
func FindField(t reflect.Type, name string) (Ref, bool) {
	tb := lookup(t)
	if r, ok := tb.fields[name]; ok {
		return r, true
	}
	r, ok := tb.tagged[name]
	return r, ok
}

// HasMethods reports whether t exposes at least one recordable method.
func HasMethods(t reflect.Type) bool { return len(lookup(t).methods) > 0 }

// HasFields reports whether t (or the struct t points to) has fields.
func HasFields(t reflect.Type) bool { return len(lookup(t).fields) > 0 }

// Names returns the sorted member names known for t.
func Names(t reflect.Type) []string {
	names := lookup(t).names
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func unresolved(t reflect.Type, name string) error {
	if s := Suggest(t, name); s != "" {
		return fmt.Errorf("%w: %s has no member %q (did you mean %q?)", ErrUnresolvedPath, typeName(t), name, s)
	}
	return fmt.Errorf("%w: %s has no member %q", ErrUnresolvedPath, typeName(t), name)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// results classifies a method's outputs. Methods with more than one
// non-error result are not recordable.
func results(ft reflect.Type) (out reflect.Type, errs bool, ok bool) {
	switch ft.NumOut() {
	case 0:
		return nil, false, true
	case 1:
		if ft.Out(0) == errorType {
			return nil, true, true
		}
		return ft.Out(0), false, true
	case 2:
		if ft.Out(1) == errorType {
			return ft.Out(0), true, true
		}
	}
	return nil, false, false
}
