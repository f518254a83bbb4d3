package bptree

import "iter"

// Iter returns an iterator over key-value pairs in ascending key order.
// The sequence panics if the tree is mutated while it is being consumed.
func (t *Tree[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// RIter returns an iterator over key-value pairs in descending key order.
// The sequence panics if the tree is mutated while it is being consumed.
func (t *Tree[K, V]) RIter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.Iterator()
		it.End()

		for it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Between returns an iterator over the pairs whose keys lie in [lo, hi],
// both bounds inclusive, in ascending order. The scan positions once by
// key and then walks the leaf list.
func (t *Tree[K, V]) Between(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		leaf, slot := t.seek(lo, false).top()

		for leaf != nil {
			if t.stage != stage {
				panic("bptree: tree modified during iteration")
			}

			if slot >= len(leaf.keys) {
				leaf, slot = leaf.next, 0

				continue
			}

			if t.comparator(leaf.keys[slot], hi) > 0 {
				return
			}

			if !yield(leaf.keys[slot], leaf.values[slot]) {
				return
			}

			slot++
		}
	}
}

// From returns an iterator over the pairs whose keys are >= lo, in
// ascending order.
func (t *Tree[K, V]) From(lo K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		leaf, slot := t.seek(lo, false).top()

		for leaf != nil {
			if t.stage != stage {
				panic("bptree: tree modified during iteration")
			}

			if slot >= len(leaf.keys) {
				leaf, slot = leaf.next, 0

				continue
			}

			if !yield(leaf.keys[slot], leaf.values[slot]) {
				return
			}

			slot++
		}
	}
}

// Distinct returns an iterator over the distinct keys in ascending order,
// jumping past each run of equal keys by rank.
// Time complexity: O(d log n) for d distinct keys.
func (t *Tree[K, V]) Distinct() iter.Seq[K] {
	return func(yield func(K) bool) {
		stage := t.stage
		if t.Empty() {
			return
		}

		key := t.leftmost.keys[0]

		for {
			if t.stage != stage {
				panic("bptree: tree modified during iteration")
			}

			if !yield(key) {
				return
			}

			if t.stage != stage {
				panic("bptree: tree modified during iteration")
			}

			leaf, slot := t.seekEdgeRight(key).top()
			if slot >= len(leaf.keys) {
				return
			}

			key = leaf.keys[slot]
		}
	}
}
