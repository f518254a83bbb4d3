// Package bptreemap provides a sorted map implementation using an
// order-statistics B+ tree. Keys are unique, kept in comparator order, and
// entries are addressable by rank in O(log n).
package bptreemap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/ranked/bptree"
	"github.com/qntx/ranked/cmp"
	"github.com/qntx/ranked/container"
)

// Map is a B+ tree-based sorted map with unique keys.
type Map[K comparable, V any] struct {
	tree *bptree.Tree[K, V]
}

var _ container.SortedMap[string, int] = (*Map[string, int])(nil)

// New creates a new map for ordered key types.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewWith[K, V](bptree.DefaultOrder, cmp.Compare[K])
}

// NewWithOrder creates a new map with the given tree order.
func NewWithOrder[K cmp.Ordered, V any](order int) *Map[K, V] {
	return NewWith[K, V](order, cmp.Compare[K])
}

// NewWith creates a new map with the given tree order and a custom key
// comparator.
func NewWith[K comparable, V any](order int, comparator cmp.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: bptree.NewWith[K, V](order, comparator)}
}

// Put inserts a key-value pair, replacing the value of a present key.
// Returns true if the key was inserted, false if replaced.
func (m *Map[K, V]) Put(key K, value V) bool {
	return m.tree.Put(key, value)
}

// PutNew inserts a key-value pair only if the key is absent, reporting
// whether it was inserted. A present key is left untouched.
func (m *Map[K, V]) PutNew(key K, value V) bool {
	return m.tree.Add(key, value)
}

// Get returns the value stored for the key, or false if absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Delete removes the entry for the key, reporting whether one was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Remove(key)
}

// DeleteAt removes the entry at the given rank. Panics if the rank is out
// of range.
func (m *Map[K, V]) DeleteAt(index int) {
	m.tree.RemoveAt(index)
}

// DeleteWhere removes every entry the predicate matches and returns how
// many were removed.
func (m *Map[K, V]) DeleteWhere(pred func(key K, value V) bool) int {
	return m.tree.RemoveWhere(pred)
}

// ContainsKey reports whether the key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(key)
}

// IndexOf returns the rank of the key, or the bitwise complement of the
// rank it would be inserted at if absent.
func (m *Map[K, V]) IndexOf(key K) int {
	return m.tree.IndexOf(key)
}

// At returns the entry at the given rank. Panics if the rank is out of
// range.
func (m *Map[K, V]) At(index int) (K, V) {
	return m.tree.At(index)
}

// AtOrDefault returns the entry at the given rank, or zero values when the
// rank is past the end. A negative rank still panics.
func (m *Map[K, V]) AtOrDefault(index int) (K, V) {
	return m.tree.AtOrDefault(index)
}

// Min returns the entry with the smallest key, or false if the map is
// empty.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.tree.Min()
}

// Max returns the entry with the largest key, or false if the map is
// empty.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.tree.Max()
}

// Empty reports whether the map contains no entries.
func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Clear removes all entries from the map.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return m.tree.Keys()
}

// Values returns all values in key order.
func (m *Map[K, V]) Values() []V {
	return m.tree.Values()
}

// Entries returns all key-value pairs in key order.
func (m *Map[K, V]) Entries() []bptree.Entry[K, V] {
	return m.tree.Entries()
}

// CopyKeysTo copies all keys in order into dst starting at the given
// offset, returning the number copied. Panics if dst is too small.
func (m *Map[K, V]) CopyKeysTo(dst []K, index int) int {
	if index < 0 || index+m.Len() > len(dst) {
		panic("bptreemap: destination slice too small")
	}

	for k := range m.tree.Iter() {
		dst[index] = k
		index++
	}

	return m.Len()
}

// CopyValuesTo copies all values in key order into dst starting at the
// given offset, returning the number copied. Panics if dst is too small.
func (m *Map[K, V]) CopyValuesTo(dst []V, index int) int {
	if index < 0 || index+m.Len() > len(dst) {
		panic("bptreemap: destination slice too small")
	}

	for _, v := range m.tree.Iter() {
		dst[index] = v
		index++
	}

	return m.Len()
}

// Iter returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return m.tree.Iter()
}

// RIter returns an iterator over the entries in descending key order.
func (m *Map[K, V]) RIter() iter.Seq2[K, V] {
	return m.tree.RIter()
}

// Between returns an iterator over the entries with keys in [lo, hi],
// inclusive, in ascending order.
func (m *Map[K, V]) Between(lo, hi K) iter.Seq2[K, V] {
	return m.tree.Between(lo, hi)
}

// From returns an iterator over the entries with keys >= lo in ascending
// order.
func (m *Map[K, V]) From(lo K) iter.Seq2[K, V] {
	return m.tree.From(lo)
}

// Clone creates an independent copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	var b strings.Builder

	b.WriteString("BPTreeMap\n")

	for k, v := range m.Iter() {
		fmt.Fprintf(&b, "%v:%v ", k, v)
	}

	return b.String()
}
