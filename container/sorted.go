package container

import "iter"

// SortedSet is the interface shared by the set-like ranked collections
// (unique sets and bags). Elements are maintained in comparator order and
// every element has a stable 0-based rank.
type SortedSet[T any] interface {
	Container[T]

	// Add inserts an element. For unique sets the return value reports
	// whether the element was absent; bags always report true.
	Add(value T) bool

	// Remove deletes one occurrence of the element, reporting whether one
	// was present. Bags remove the lowest occurrence.
	Remove(value T) bool

	// RemoveAt deletes the element at the given rank. Panics if the rank is
	// out of range.
	RemoveAt(index int)

	// Contains reports whether the element is present.
	Contains(value T) bool

	// IndexOf returns the rank of the element, or the bitwise complement of
	// the rank it would be inserted at if absent. Bags report the rank of
	// the lowest equal element.
	IndexOf(value T) int

	// At returns the element at the given rank. Panics if the rank is out
	// of range.
	At(index int) T

	// Min returns the smallest element, or false if the collection is empty.
	Min() (T, bool)

	// Max returns the largest element, or false if the collection is empty.
	Max() (T, bool)

	// Iter returns an iterator over the elements in ascending order.
	Iter() iter.Seq[T]

	// RIter returns an iterator over the elements in descending order.
	RIter() iter.Seq[T]
}

// SortedMap is the interface shared by the map-like ranked collections
// (unique maps and multimaps). Entries are maintained in key order and
// every entry has a stable 0-based rank.
type SortedMap[K comparable, V any] interface {
	Container[V]

	// Get returns the value stored for the key. Multimaps return the value
	// of the lowest equal key.
	Get(key K) (V, bool)

	// Delete removes one entry for the key, reporting whether one was
	// present. Multimaps remove the lowest occurrence.
	Delete(key K) bool

	// DeleteAt removes the entry at the given rank. Panics if the rank is
	// out of range.
	DeleteAt(index int)

	// ContainsKey reports whether at least one entry has the key.
	ContainsKey(key K) bool

	// IndexOf returns the rank of the key, or the bitwise complement of the
	// rank it would be inserted at if absent. Multimaps report the rank of
	// the lowest equal key.
	IndexOf(key K) int

	// At returns the entry at the given rank. Panics if the rank is out of
	// range.
	At(index int) (K, V)

	// Min returns the entry with the smallest key, or false if the map is empty.
	Min() (K, V, bool)

	// Max returns the entry with the largest key, or false if the map is empty.
	Max() (K, V, bool)

	// Keys returns all keys in ascending order.
	Keys() []K

	// Iter returns an iterator over the entries in ascending key order.
	Iter() iter.Seq2[K, V]

	// RIter returns an iterator over the entries in descending key order.
	RIter() iter.Seq2[K, V]
}
