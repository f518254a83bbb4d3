package bptree

import "github.com/qntx/ranked/container"

// Iterator is a stateful cursor over the tree's key-value pairs in key
// order. It walks the leaf sibling list directly, so a full traversal is
// O(n) with no per-step descent.
//
// The iterator snapshots the tree's mutation counter at construction; any
// navigation or read after a subsequent mutation panics. Iterators hold no
// locks.
type Iterator[K, V any] struct {
	tree     *Tree[K, V]
	leaf     *leafNode[K, V]
	slot     int
	stage    int
	position position
}

// position defines the iterator's current state.
type position byte

const (
	// begin represents the position before the first element.
	begin position = iota
	// between represents the position at a valid element.
	between
	// end represents the position after the last element.
	end
)

// Verify Iterator implements required interface at compile time.
var _ container.ReverseIteratorWithKey[string, int] = (*Iterator[string, int])(nil)

// Iterator returns a new iterator positioned before the first element.
// Call Next() to move to the first element.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, stage: t.stage, position: begin}
}

func (it *Iterator[K, V]) check() {
	if it.stage != it.tree.stage {
		panic("bptree: tree modified during iteration")
	}
}

// Next advances the iterator to the next element.
//
// If there is a next element, returns true and updates the iterator to
// point to it; otherwise moves to the end position and returns false.
// Panics if the tree was mutated after the iterator was created.
func (it *Iterator[K, V]) Next() bool {
	it.check()

	switch it.position {
	case end:
		return false

	case begin:
		l := it.tree.leftmost
		if len(l.keys) == 0 {
			it.End()

			return false
		}

		it.leaf, it.slot, it.position = l, 0, between

		return true
	}

	if it.slot+1 < len(it.leaf.keys) {
		it.slot++

		return true
	}

	if it.leaf.next != nil {
		it.leaf, it.slot = it.leaf.next, 0

		return true
	}

	it.End()

	return false
}

// Prev moves the iterator to the previous element.
//
// If there is a previous element, returns true and updates the iterator to
// point to it; otherwise moves to the begin position and returns false.
// Panics if the tree was mutated after the iterator was created.
func (it *Iterator[K, V]) Prev() bool {
	it.check()

	switch it.position {
	case begin:
		return false

	case end:
		l := it.tree.rightmost
		if l == nil || len(l.keys) == 0 {
			it.Begin()

			return false
		}

		it.leaf, it.slot, it.position = l, len(l.keys)-1, between

		return true
	}

	if it.slot > 0 {
		it.slot--

		return true
	}

	if it.leaf.prev != nil {
		it.leaf = it.leaf.prev
		it.slot = len(it.leaf.keys) - 1

		return true
	}

	it.Begin()

	return false
}

// Key returns the current element's key.
//
// Panics if the iterator is not at a valid position, or if the tree was
// mutated after the iterator was created.
func (it *Iterator[K, V]) Key() K {
	it.check()

	if it.position != between {
		panic("bptree: iterator not at valid position")
	}

	return it.leaf.keys[it.slot]
}

// Value returns the current element's value.
//
// Panics if the iterator is not at a valid position, or if the tree was
// mutated after the iterator was created.
func (it *Iterator[K, V]) Value() V {
	it.check()

	if it.position != between {
		panic("bptree: iterator not at valid position")
	}

	return it.leaf.values[it.slot]
}

// Begin resets the iterator to the position before the first element.
// Call Next() to move to the first element.
func (it *Iterator[K, V]) Begin() {
	it.leaf = nil
	it.slot = 0
	it.position = begin
}

// End moves the iterator to the position after the last element.
// Call Prev() to move to the last element.
func (it *Iterator[K, V]) End() {
	it.leaf = nil
	it.slot = 0
	it.position = end
}

// First moves the iterator to the first element.
// Returns true if the tree is not empty.
func (it *Iterator[K, V]) First() bool {
	it.Begin()

	return it.Next()
}

// Last moves the iterator to the last element.
// Returns true if the tree is not empty.
func (it *Iterator[K, V]) Last() bool {
	it.End()

	return it.Prev()
}

// NextTo advances the iterator to the next element satisfying the given
// predicate. Returns true if such an element is found.
func (it *Iterator[K, V]) NextTo(f func(key K, value V) bool) bool {
	for it.Next() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

// PrevTo moves the iterator to the previous element satisfying the given
// predicate. Returns true if such an element is found.
func (it *Iterator[K, V]) PrevTo(f func(key K, value V) bool) bool {
	for it.Prev() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}
