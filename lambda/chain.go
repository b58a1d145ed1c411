package lambda

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// Step is one recorded member access: the resolved member and the argument
// values captured when it was recorded.
type Step struct {
	ref  member.Ref
	args []reflect.Value
}

// Name returns the member name.
func (s Step) Name() string { return s.ref.Name }

// Member returns the resolved member reference, e.g. "*Person.SetName/1".
func (s Step) Member() string { return s.ref.String() }

// Field reports whether the step reads a struct field.
func (s Step) Field() bool { return s.ref.Kind == member.KindField }

// Out returns the declared result type, or nil for a void method.
func (s Step) Out() reflect.Type { return s.ref.Out }

// Args returns the captured arguments.
func (s Step) Args() []any {
	out := make([]any, len(s.args))
	for i, a := range s.args {
		out[i] = a.Interface()
	}
	return out
}

// Chain is the ordered, append-only list of steps recorded from a single
// [Surrogate]. It accepts new steps until it is frozen and is read-only
// afterwards, so a frozen chain may be replayed from several goroutines.
type Chain struct {
	root   reflect.Type
	steps  []Step
	frozen bool
	err    error
}

// Root returns the type the chain was recorded against.
func (c *Chain) Root() reflect.Type { return c.root }

// Len returns the number of recorded steps.
func (c *Chain) Len() int { return len(c.steps) }

// Frozen reports whether the chain has been frozen.
func (c *Chain) Frozen() bool { return c.frozen }

// Steps returns a copy of the recorded steps.
func (c *Chain) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// Out returns the declared type produced by the last step, or the root type
// for an empty chain.
func (c *Chain) Out() reflect.Type {
	if len(c.steps) == 0 {
		return c.root
	}
	return c.steps[len(c.steps)-1].ref.Out
}

// String renders the chain as Go-like source, e.g. "Person.BestFriend().Age()".
func (c *Chain) String() string {
	var b strings.Builder
	if c.root != nil {
		b.WriteString(c.root.String())
	}
	for _, s := range c.steps {
		b.WriteByte('.')
		b.WriteString(s.ref.Name)
		if s.ref.Kind == member.KindMethod {
			b.WriteString("(")
			for i, a := range s.args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(reflectString(a))
			}
			b.WriteString(")")
		}
	}
	return b.String()
}

func reflectString(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return `"` + v.String() + `"`
	}
	if !v.CanInterface() {
		return v.Type().String()
	}
	return fmt.Sprint(v.Interface())
}

// replay runs every step in order, feeding each result to the next step.
func (c *Chain) replay(root reflect.Value) (reflect.Value, error) {
	v := root
	for i, s := range c.steps {
		out, err := s.ref.Invoke(v, s.args)
		if err != nil {
			return reflect.Value{}, &ReplayError{Member: s.ref.String(), Step: i, Element: -1, Err: err}
		}
		v = out
	}
	return v, nil
}
