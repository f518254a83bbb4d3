// Package bptreebag provides a sorted bag (multiset) implementation using
// an order-statistics B+ tree. Duplicate elements are permitted and keep
// their insertion order among equals; every occurrence has a rank,
// addressable in O(log n).
package bptreebag

import (
	"fmt"
	"iter"
	"strings"

	"github.com/qntx/ranked/bptree"
	"github.com/qntx/ranked/cmp"
	"github.com/qntx/ranked/container"
)

// present is a marker for bag membership.
var present = struct{}{}

// Bag is a B+ tree-based sorted multiset of comparable elements.
type Bag[T comparable] struct {
	tree *bptree.Tree[T, struct{}]
}

var _ container.SortedSet[int] = (*Bag[int])(nil)

// New creates a new bag for ordered types with optional initial values.
func New[T cmp.Ordered](values ...T) *Bag[T] {
	return NewWith(bptree.DefaultOrder, cmp.Compare[T], values...)
}

// NewWithOrder creates a new bag with the given tree order and optional
// initial values.
func NewWithOrder[T cmp.Ordered](order int, values ...T) *Bag[T] {
	return NewWith(order, cmp.Compare[T], values...)
}

// NewWith creates a new bag with the given tree order, a custom comparator,
// and optional initial values.
func NewWith[T comparable](order int, comparator cmp.Comparator[T], values ...T) *Bag[T] {
	b := &Bag[T]{tree: bptree.NewMultiWith[T, struct{}](order, comparator)}
	for _, v := range values {
		b.tree.Add(v, present)
	}

	return b
}

// Add inserts an occurrence of the element after any equal ones. Always
// reports true.
func (b *Bag[T]) Add(value T) bool {
	return b.tree.Add(value, present)
}

// AddCount inserts count occurrences of the element. Panics if count is
// negative.
func (b *Bag[T]) AddCount(value T, count int) {
	if count < 0 {
		panic("bptreebag: negative count")
	}

	for range count {
		b.tree.Add(value, present)
	}
}

// Append inserts multiple elements and returns the number added.
func (b *Bag[T]) Append(values ...T) int {
	for _, v := range values {
		b.tree.Add(v, present)
	}

	return len(values)
}

// Remove deletes the lowest occurrence of the element, reporting whether
// one was present.
func (b *Bag[T]) Remove(value T) bool {
	return b.tree.Remove(value)
}

// RemoveCount deletes up to count occurrences of the element and returns
// how many were removed. Panics if count is negative.
func (b *Bag[T]) RemoveCount(value T, count int) int {
	if count < 0 {
		panic("bptreebag: negative count")
	}

	removed := 0
	for removed < count && b.tree.Remove(value) {
		removed++
	}

	return removed
}

// RemoveAll deletes every occurrence of the element and returns how many
// were removed.
func (b *Bag[T]) RemoveAll(value T) int {
	return b.RemoveCount(value, b.Count(value))
}

// RemoveAt deletes the occurrence at the given rank. Panics if the rank is
// out of range.
func (b *Bag[T]) RemoveAt(index int) {
	b.tree.RemoveAt(index)
}

// RemoveWhere deletes every occurrence the predicate matches and returns
// how many were removed.
func (b *Bag[T]) RemoveWhere(pred func(value T) bool) int {
	return b.tree.RemoveWhere(func(k T, _ struct{}) bool { return pred(k) })
}

// Contains reports whether at least one occurrence of the element is
// present.
func (b *Bag[T]) Contains(value T) bool {
	return b.tree.Contains(value)
}

// ContainsAll reports whether other is contained in b by multiplicity:
// every distinct element of other occurs in b at least as many times.
func (b *Bag[T]) ContainsAll(other *Bag[T]) bool {
	if other.Len() > b.Len() {
		return false
	}

	for v := range other.Distinct() {
		if b.Count(v) < other.Count(v) {
			return false
		}
	}

	return true
}

// Count returns the number of occurrences of the element.
func (b *Bag[T]) Count(value T) int {
	return b.tree.Count(value)
}

// DistinctLen returns the number of distinct elements.
func (b *Bag[T]) DistinctLen() int {
	return b.tree.DistinctLen()
}

// Distinct returns an iterator over the distinct elements in ascending
// order.
func (b *Bag[T]) Distinct() iter.Seq[T] {
	return b.tree.Distinct()
}

// IndexOf returns the rank of the lowest occurrence of the element, or the
// bitwise complement of the rank it would be inserted at if absent.
func (b *Bag[T]) IndexOf(value T) int {
	return b.tree.IndexOf(value)
}

// IndexAfter returns the rank just past the highest occurrence of the
// element, or the bitwise complement of the insertion rank if absent.
func (b *Bag[T]) IndexAfter(value T) int {
	return b.tree.IndexAfter(value)
}

// At returns the occurrence at the given rank. Panics if the rank is out
// of range.
func (b *Bag[T]) At(index int) T {
	k, _ := b.tree.At(index)

	return k
}

// AtOrDefault returns the occurrence at the given rank, or the zero value
// when the rank is past the end. A negative rank still panics.
func (b *Bag[T]) AtOrDefault(index int) T {
	k, _ := b.tree.AtOrDefault(index)

	return k
}

// Min returns the smallest element, or false if the bag is empty.
func (b *Bag[T]) Min() (T, bool) {
	k, _, ok := b.tree.Min()

	return k, ok
}

// Max returns the largest element, or false if the bag is empty.
func (b *Bag[T]) Max() (T, bool) {
	k, _, ok := b.tree.Max()

	return k, ok
}

// Empty reports whether the bag contains no elements.
func (b *Bag[T]) Empty() bool {
	return b.tree.Empty()
}

// Len returns the number of occurrences in the bag.
func (b *Bag[T]) Len() int {
	return b.tree.Len()
}

// Clear removes all elements from the bag.
func (b *Bag[T]) Clear() {
	b.tree.Clear()
}

// Values returns a slice of all occurrences in ascending order.
func (b *Bag[T]) Values() []T {
	return b.tree.Keys()
}

// CopyTo copies all occurrences into dst starting at the given offset,
// returning the number copied. Panics if dst is too small.
func (b *Bag[T]) CopyTo(dst []T, index int) int {
	if index < 0 || index+b.Len() > len(dst) {
		panic("bptreebag: destination slice too small")
	}

	for v := range b.tree.Iter() {
		dst[index] = v
		index++
	}

	return b.Len()
}

// Iter returns an iterator over all occurrences in ascending order.
func (b *Bag[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range b.tree.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

// RIter returns an iterator over all occurrences in descending order.
func (b *Bag[T]) RIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range b.tree.RIter() {
			if !yield(k) {
				return
			}
		}
	}
}

// Between returns an iterator over the occurrences in [lo, hi], inclusive,
// in ascending order.
func (b *Bag[T]) Between(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range b.tree.Between(lo, hi) {
			if !yield(k) {
				return
			}
		}
	}
}

// From returns an iterator over the occurrences >= lo in ascending order.
func (b *Bag[T]) From(lo T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range b.tree.From(lo) {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone creates an independent copy of the bag.
func (b *Bag[T]) Clone() *Bag[T] {
	return &Bag[T]{tree: b.tree.Clone()}
}

// String returns a string representation of the bag.
func (b *Bag[T]) String() string {
	var sb strings.Builder

	sb.WriteString("BPTreeBag\n")

	for v := range b.Iter() {
		fmt.Fprintf(&sb, "%v", v)
	}

	return sb.String()
}
