package collections

import "github.com/hasbyte1/go-lambda/match"

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that consumers can substitute
// alternative implementations without depending on the concrete
// *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// First returns the first item matched by m, or ErrNoMatchingItems.
	First(m match.Matcher[T]) (T, error)

	// Select returns a new collection holding the items matched by m.
	Select(m match.Matcher[T]) (*Collection[T], error)
}

var _ Enumerable[int] = (*Collection[int])(nil)
