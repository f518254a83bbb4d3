// Package bptreemultimap provides a sorted multimap implementation using
// an order-statistics B+ tree. Duplicate keys are permitted, each carrying
// its own value; equal keys keep their insertion order, and every entry is
// addressable by rank in O(log n).
package bptreemultimap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/ranked/bptree"
	"github.com/qntx/ranked/cmp"
	"github.com/qntx/ranked/container"
)

// MultiMap is a B+ tree-based sorted map permitting duplicate keys.
type MultiMap[K comparable, V any] struct {
	tree *bptree.Tree[K, V]
}

var _ container.SortedMap[string, int] = (*MultiMap[string, int])(nil)

// New creates a new multimap for ordered key types.
func New[K cmp.Ordered, V any]() *MultiMap[K, V] {
	return NewWith[K, V](bptree.DefaultOrder, cmp.Compare[K])
}

// NewWithOrder creates a new multimap with the given tree order.
func NewWithOrder[K cmp.Ordered, V any](order int) *MultiMap[K, V] {
	return NewWith[K, V](order, cmp.Compare[K])
}

// NewWith creates a new multimap with the given tree order and a custom
// key comparator.
func NewWith[K comparable, V any](order int, comparator cmp.Comparator[K]) *MultiMap[K, V] {
	return &MultiMap[K, V]{tree: bptree.NewMultiWith[K, V](order, comparator)}
}

// Add inserts a key-value pair after any entries with an equal key.
func (m *MultiMap[K, V]) Add(key K, value V) {
	m.tree.Add(key, value)
}

// Get returns the value of the lowest entry with the key, or false if the
// key is absent.
func (m *MultiMap[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// GetAll returns the values of every entry with the key, in insertion
// order.
func (m *MultiMap[K, V]) GetAll(key K) []V {
	var values []V

	for k, v := range m.tree.From(key) {
		if m.tree.Comparator()(k, key) != 0 {
			break
		}

		values = append(values, v)
	}

	return values
}

// Delete removes the lowest entry with the key, reporting whether one was
// present.
func (m *MultiMap[K, V]) Delete(key K) bool {
	return m.tree.Remove(key)
}

// DeleteAll removes every entry with the key and returns how many were
// removed.
func (m *MultiMap[K, V]) DeleteAll(key K) int {
	removed := 0
	for m.tree.Remove(key) {
		removed++
	}

	return removed
}

// DeleteAt removes the entry at the given rank. Panics if the rank is out
// of range.
func (m *MultiMap[K, V]) DeleteAt(index int) {
	m.tree.RemoveAt(index)
}

// DeleteWhere removes every entry the predicate matches and returns how
// many were removed.
func (m *MultiMap[K, V]) DeleteWhere(pred func(key K, value V) bool) int {
	return m.tree.RemoveWhere(pred)
}

// ContainsKey reports whether at least one entry has the key.
func (m *MultiMap[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(key)
}

// Count returns the number of entries with the key.
func (m *MultiMap[K, V]) Count(key K) int {
	return m.tree.Count(key)
}

// DistinctLen returns the number of distinct keys.
func (m *MultiMap[K, V]) DistinctLen() int {
	return m.tree.DistinctLen()
}

// DistinctKeys returns an iterator over the distinct keys in ascending
// order.
func (m *MultiMap[K, V]) DistinctKeys() iter.Seq[K] {
	return m.tree.Distinct()
}

// IndexOf returns the rank of the lowest entry with the key, or the
// bitwise complement of the rank it would be inserted at if absent.
func (m *MultiMap[K, V]) IndexOf(key K) int {
	return m.tree.IndexOf(key)
}

// IndexAfter returns the rank just past the highest entry with the key,
// or the bitwise complement of the insertion rank if absent.
func (m *MultiMap[K, V]) IndexAfter(key K) int {
	return m.tree.IndexAfter(key)
}

// At returns the entry at the given rank. Panics if the rank is out of
// range.
func (m *MultiMap[K, V]) At(index int) (K, V) {
	return m.tree.At(index)
}

// AtOrDefault returns the entry at the given rank, or zero values when the
// rank is past the end. A negative rank still panics.
func (m *MultiMap[K, V]) AtOrDefault(index int) (K, V) {
	return m.tree.AtOrDefault(index)
}

// Min returns the lowest entry, or false if the multimap is empty.
func (m *MultiMap[K, V]) Min() (K, V, bool) {
	return m.tree.Min()
}

// Max returns the highest entry, or false if the multimap is empty.
func (m *MultiMap[K, V]) Max() (K, V, bool) {
	return m.tree.Max()
}

// Empty reports whether the multimap contains no entries.
func (m *MultiMap[K, V]) Empty() bool {
	return m.tree.Empty()
}

// Len returns the number of entries in the multimap.
func (m *MultiMap[K, V]) Len() int {
	return m.tree.Len()
}

// Clear removes all entries from the multimap.
func (m *MultiMap[K, V]) Clear() {
	m.tree.Clear()
}

// Keys returns all keys in ascending order, duplicates included.
func (m *MultiMap[K, V]) Keys() []K {
	return m.tree.Keys()
}

// Values returns all values in key order.
func (m *MultiMap[K, V]) Values() []V {
	return m.tree.Values()
}

// Entries returns all key-value pairs in key order.
func (m *MultiMap[K, V]) Entries() []bptree.Entry[K, V] {
	return m.tree.Entries()
}

// CopyKeysTo copies all keys in order into dst starting at the given
// offset, returning the number copied. Panics if dst is too small.
func (m *MultiMap[K, V]) CopyKeysTo(dst []K, index int) int {
	if index < 0 || index+m.Len() > len(dst) {
		panic("bptreemultimap: destination slice too small")
	}

	for k := range m.tree.Iter() {
		dst[index] = k
		index++
	}

	return m.Len()
}

// CopyValuesTo copies all values in key order into dst starting at the
// given offset, returning the number copied. Panics if dst is too small.
func (m *MultiMap[K, V]) CopyValuesTo(dst []V, index int) int {
	if index < 0 || index+m.Len() > len(dst) {
		panic("bptreemultimap: destination slice too small")
	}

	for _, v := range m.tree.Iter() {
		dst[index] = v
		index++
	}

	return m.Len()
}

// Iter returns an iterator over the entries in ascending key order.
func (m *MultiMap[K, V]) Iter() iter.Seq2[K, V] {
	return m.tree.Iter()
}

// RIter returns an iterator over the entries in descending key order.
func (m *MultiMap[K, V]) RIter() iter.Seq2[K, V] {
	return m.tree.RIter()
}

// Between returns an iterator over the entries with keys in [lo, hi],
// inclusive, in ascending order.
func (m *MultiMap[K, V]) Between(lo, hi K) iter.Seq2[K, V] {
	return m.tree.Between(lo, hi)
}

// From returns an iterator over the entries with keys >= lo in ascending
// order.
func (m *MultiMap[K, V]) From(lo K) iter.Seq2[K, V] {
	return m.tree.From(lo)
}

// Clone creates an independent copy of the multimap, preserving the
// insertion order of equal keys.
func (m *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	return &MultiMap[K, V]{tree: m.tree.Clone()}
}

// String returns a string representation of the multimap.
func (m *MultiMap[K, V]) String() string {
	var b strings.Builder

	b.WriteString("BPTreeMultiMap\n")

	for k, v := range m.Iter() {
		fmt.Fprintf(&b, "%v:%v ", k, v)
	}

	return b.String()
}
