package container

// IteratorWithIndex is a stateful forward iterator over containers whose
// elements carry an integer position.
type IteratorWithIndex[T any] interface {
	// Next advances the iterator to the next element and returns true if a next element exists.
	// On the first call, it positions the iterator at the first element if the container is non-empty.
	Next() bool

	// Value returns the current element's value without modifying the iterator's state.
	Value() T

	// Index returns the current element's index without modifying the iterator's state.
	Index() int

	// Begin resets the iterator to its initial state, positioning it before the first element.
	// Call Next() to move to the first element if it exists.
	Begin()

	// First moves the iterator directly to the first element and returns true if one exists.
	First() bool

	// NextTo advances the iterator to the next element that satisfies the given condition,
	// returning true if such an element is found.
	NextTo(fn func(index int, value T) bool) bool
}

// IteratorWithKey is a stateful forward iterator over key-value containers.
type IteratorWithKey[K, V any] interface {
	// Next advances the iterator to the next element and returns true if a next element exists.
	// On the first call, it positions the iterator at the first element if the container is non-empty.
	Next() bool

	// Value returns the current element's value without modifying the iterator's state.
	Value() V

	// Key returns the current element's key without modifying the iterator's state.
	Key() K

	// Begin resets the iterator to its initial state, positioning it before the first element.
	// Call Next() to move to the first element if it exists.
	Begin()

	// First moves the iterator directly to the first element and returns true if one exists.
	First() bool

	// NextTo advances the iterator to the next element that satisfies the given condition,
	// returning true if such an element is found.
	NextTo(fn func(key K, value V) bool) bool
}

// ReverseIteratorWithIndex extends IteratorWithIndex with reverse traversal.
type ReverseIteratorWithIndex[T any] interface {
	// Prev moves the iterator to the previous element and returns true if a previous element exists.
	Prev() bool

	// End positions the iterator past the last element (one-past-the-end).
	// Call Prev() to move to the last element if it exists.
	End()

	// Last moves the iterator directly to the last element and returns true if one exists.
	Last() bool

	// PrevTo moves the iterator to the previous element that satisfies the given condition,
	// returning true if such an element is found.
	PrevTo(fn func(index int, value T) bool) bool

	IteratorWithIndex[T]
}

// ReverseIteratorWithKey extends IteratorWithKey with reverse traversal.
type ReverseIteratorWithKey[K, V any] interface {
	// Prev moves the iterator to the previous element and returns true if a previous element exists.
	Prev() bool

	// End positions the iterator past the last element (one-past-the-end).
	// Call Prev() to move to the last element if it exists.
	End()

	// Last moves the iterator directly to the last element and returns true if one exists.
	Last() bool

	// PrevTo moves the iterator to the previous element that satisfies the given condition,
	// returning true if such an element is found.
	PrevTo(fn func(key K, value V) bool) bool

	IteratorWithKey[K, V]
}
