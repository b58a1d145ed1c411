package property

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-lambda/internal/member"
)

// Sentinel errors returned by path resolution.
//
// ErrNullPath, ErrUnresolvedPath and ErrInvocation are the same values the
// lambda package exports, so one [errors.Is] check covers both packages.
var (
	// ErrUnresolvedPath is returned when a segment names nothing on its
	// receiver, or the receiver is nil.
	ErrUnresolvedPath = member.ErrUnresolvedPath

	// ErrNullPath is additionally wrapped when a segment's receiver is nil.
	ErrNullPath = member.ErrNullPath

	// ErrInvocation is returned when an accessor method panics or returns a
	// non-nil error.
	ErrInvocation = member.ErrInvocation

	// ErrInvalidPath is returned for an empty path or a path with an empty
	// segment.
	ErrInvalidPath = errors.New("property: invalid path")
)

// PathError reports the segment at which resolution failed.
type PathError struct {
	Path       string // Full path being resolved
	Segment    string // First segment that could not be resolved
	Suggestion string // Closest known member name, if any
	Err        error  // Underlying error
}

func (e *PathError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("property: %q: segment %q: %v (did you mean %q?)", e.Path, e.Segment, e.Err, e.Suggestion)
	}
	return fmt.Sprintf("property: %q: segment %q: %v", e.Path, e.Segment, e.Err)
}

// Unwrap returns the underlying error. A nil receiver unwraps to both
// [ErrUnresolvedPath] and [ErrNullPath].
func (e *PathError) Unwrap() []error {
	if errors.Is(e.Err, ErrNullPath) && !errors.Is(e.Err, ErrUnresolvedPath) {
		return []error{ErrUnresolvedPath, e.Err}
	}
	return []error{e.Err}
}
