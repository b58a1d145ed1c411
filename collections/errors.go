package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the source is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNoMatchingItems is returned by SelectFirst / SelectUnique when no
	// item satisfies the matcher.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrNotUnique is returned by SelectUnique when more than one item
	// satisfies the matcher.
	ErrNotUnique = errors.New("collections: more than one item matches the given condition")

	// ErrInvalidExtractor is returned when an argument is neither an
	// extractor nor a property path, or an extracted key cannot be used as a
	// map key.
	ErrInvalidExtractor = errors.New("collections: invalid extractor")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("collections: chunk size must be greater than 0")
)
