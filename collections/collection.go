package collections

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/hasbyte1/go-lambda/lambda"
	"github.com/hasbyte1/go-lambda/match"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. [Collection.ForEach] is the exception: it
// mutates the collection's own elements in place.
//
// # Creating a collection
//
//	c := collections.New(mario, luca, biagio)
//	c := collections.From(people)
//	c := collections.Empty[Person]()
//
// # Method chaining
//
//	older, err := collections.From(people).
//	    Select(collections.Having(age, match.GreaterThan(30)))
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// [Collect], [Extract], [Index], [GroupBy] and friends are package-level
// functions over [Collection.All].
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ForEach binds the collection's own items for bulk application:
//
//	c.ForEach().Do("SetLastName", "Fusco")
func (c *Collection[T]) ForEach() *lambda.Bulk[T] { return lambda.ForEach(c.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Select returns a new collection with the items matched by m.
func (c *Collection[T]) Select(m match.Matcher[T]) (*Collection[T], error) {
	out, err := Select(c.items, m)
	if err != nil {
		return nil, err
	}
	return &Collection[T]{items: out}, nil
}

// Reject returns a new collection without the items matched by m.
func (c *Collection[T]) Reject(m match.Matcher[T]) (*Collection[T], error) {
	return c.Select(match.Not(m))
}

// Partition splits the collection into the items matched by m and the rest.
func (c *Collection[T]) Partition(m match.Matcher[T]) (*Collection[T], *Collection[T], error) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, item := range c.items {
		ok, err := m.Match(item)
		if err != nil {
			return nil, nil, fmt.Errorf("collections: select item %d: %w", i, err)
		}
		if ok {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return &Collection[T]{items: pass}, &Collection[T]{items: fail}, nil
}

// First returns the first item matched by m, or [ErrNoMatchingItems].
func (c *Collection[T]) First(m match.Matcher[T]) (T, error) {
	return SelectFirst(c.items, m)
}

// Distinct returns a new collection without duplicates. See [SelectDistinct].
func (c *Collection[T]) Distinct() *Collection[T] {
	return &Collection[T]{items: SelectDistinct(c.items)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering & slicing
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new collection sorted by cmp. The sort is stable.
func (c *Collection[T]) Sort(cmp func(a, b T) int) *Collection[T] {
	return &Collection[T]{items: SortFunc(c.items, cmp)}
}

// SortBy returns a new collection sorted in ascending order of the number x
// extracts. A *lambda.Numeric can be passed directly.
func (c *Collection[T]) SortBy(x lambda.Func[T, float64]) (*Collection[T], error) {
	out, err := SortBy(c.items, x)
	if err != nil {
		return nil, err
	}
	return &Collection[T]{items: out}, nil
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return &Collection[T]{items: out}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[max(total+n, 0):])
	}
	return From(c.items[:min(n, total)])
}

// Skip returns a new collection skipping the first n items.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n >= len(c.items) {
		return Empty[T]()
	}
	return From(c.items[max(n, 0):])
}

// Chunk splits the collection into consecutive groups of size. The last
// group may contain fewer than size items.
func (c *Collection[T]) Chunk(size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	chunks := make([][]T, 0, (len(c.items)+size-1)/size)
	for i := 0; i < len(c.items); i += size {
		end := min(i+size, len(c.items))
		chunk := make([]T, end-i)
		copy(chunk, c.items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other Enumerable[T]) *Collection[T] {
	return From(append(c.All(), other.All()...))
}

// Join joins the items' default formats. See [Join].
func (c *Collection[T]) Join(sep ...string) string { return Join(c.items, sep...) }
