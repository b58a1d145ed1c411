package lambda

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// Sentinel errors returned while recording and replaying chains.
//
// Use [errors.Is] for comparisons:
//
//	_, err := ages.Apply(p)
//	if errors.Is(err, lambda.ErrNullPath) {
//	    // an intermediate accessor returned nil
//	}
var (
	// ErrUnsupportedType is returned by [Record] (and surfaced by [Freeze])
	// when no surrogate can stand in for the requested type: channels,
	// functions, empty interfaces and method-less unnamed values.
	ErrUnsupportedType = errors.New("lambda: type cannot be recorded")

	// ErrNullPath is returned when a replayed step meets a nil receiver.
	ErrNullPath = member.ErrNullPath

	// ErrUnresolvedPath is returned when a recorded name matches no field or
	// method of the declared type, or the arguments do not fit it.
	ErrUnresolvedPath = member.ErrUnresolvedPath

	// ErrInvocation is returned when a replayed method panics or returns a
	// non-nil error.
	ErrInvocation = member.ErrInvocation

	// ErrChainFrozen is returned when a step is recorded on a chain that has
	// already been frozen into an extractor.
	ErrChainFrozen = errors.New("lambda: chain is frozen")

	// ErrBranchedChain is returned when a step is recorded on a surrogate
	// that is no longer the tip of its chain.
	ErrBranchedChain = errors.New("lambda: surrogate is not the tip of its chain")

	// ErrResultType is returned when the recorded result type cannot be
	// delivered as the requested Go type, including void results.
	ErrResultType = errors.New("lambda: recorded result has the wrong type")
)

// RecordError describes a step that could not be recorded.
type RecordError struct {
	Step   int    // Zero-based position of the rejected step
	Member string // Requested member name
	Err    error  // Underlying sentinel error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("lambda: record step %d (%s): %v", e.Step, e.Member, e.Err)
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error { return e.Err }

// ReplayError describes a step that failed while being replayed against a
// concrete value.
type ReplayError struct {
	Member  string // Member reference, e.g. "*Person.Age/0"
	Step    int    // Zero-based step position in the chain
	Element int    // Element index for bulk operations, -1 otherwise
	Err     error  // Wraps ErrNullPath, ErrInvocation or ErrUnresolvedPath
}

func (e *ReplayError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("lambda: %s on element %d: %v", e.Member, e.Element, e.Err)
	}
	return fmt.Sprintf("lambda: step %d (%s): %v", e.Step, e.Member, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReplayError) Unwrap() error { return e.Err }
