// Package bptreeset provides a sorted set implementation using an
// order-statistics B+ tree. Elements are unique, kept in comparator order,
// and addressable by rank in O(log n).
package bptreeset

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/qntx/ranked/bptree"
	"github.com/qntx/ranked/cmp"
	"github.com/qntx/ranked/container"
)

// present is a marker for set membership.
var present = struct{}{}

// Set is a B+ tree-based sorted set of comparable elements.
type Set[T comparable] struct {
	tree *bptree.Tree[T, struct{}]
}

var _ container.SortedSet[int] = (*Set[int])(nil)

// New creates a new set for ordered types with optional initial values.
func New[T cmp.Ordered](values ...T) *Set[T] {
	return NewWith(bptree.DefaultOrder, cmp.Compare[T], values...)
}

// NewWithOrder creates a new set with the given tree order and optional
// initial values.
func NewWithOrder[T cmp.Ordered](order int, values ...T) *Set[T] {
	return NewWith(order, cmp.Compare[T], values...)
}

// NewWith creates a new set with the given tree order, a custom comparator,
// and optional initial values.
func NewWith[T comparable](order int, comparator cmp.Comparator[T], values ...T) *Set[T] {
	s := &Set[T]{tree: bptree.NewWith[T, struct{}](order, comparator)}
	for _, v := range values {
		s.tree.Add(v, present)
	}

	return s
}

// Add inserts an element, reporting whether it was absent.
func (s *Set[T]) Add(value T) bool {
	return s.tree.Add(value, present)
}

// Append inserts multiple elements and returns the number actually added.
func (s *Set[T]) Append(values ...T) int {
	added := 0
	for _, v := range values {
		if s.tree.Add(v, present) {
			added++
		}
	}

	return added
}

// Remove deletes an element, reporting whether it was present.
func (s *Set[T]) Remove(value T) bool {
	return s.tree.Remove(value)
}

// RemoveAt deletes the element at the given rank. Panics if the rank is
// out of range.
func (s *Set[T]) RemoveAt(index int) {
	s.tree.RemoveAt(index)
}

// RemoveWhere deletes every element the predicate matches and returns how
// many were removed.
func (s *Set[T]) RemoveWhere(pred func(value T) bool) int {
	return s.tree.RemoveWhere(func(k T, _ struct{}) bool { return pred(k) })
}

// Contains reports whether the element is present.
func (s *Set[T]) Contains(value T) bool {
	return s.tree.Contains(value)
}

// ContainsAll reports whether every given element is present. Returns true
// for no elements, as a set is a superset of the empty set.
func (s *Set[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !s.tree.Contains(v) {
			return false
		}
	}

	return true
}

// IndexOf returns the rank of the element, or the bitwise complement of
// the rank it would be inserted at if absent.
func (s *Set[T]) IndexOf(value T) int {
	return s.tree.IndexOf(value)
}

// At returns the element at the given rank. Panics if the rank is out of
// range.
func (s *Set[T]) At(index int) T {
	k, _ := s.tree.At(index)

	return k
}

// AtOrDefault returns the element at the given rank, or the zero value
// when the rank is past the end. A negative rank still panics.
func (s *Set[T]) AtOrDefault(index int) T {
	k, _ := s.tree.AtOrDefault(index)

	return k
}

// Min returns the smallest element, or false if the set is empty.
func (s *Set[T]) Min() (T, bool) {
	k, _, ok := s.tree.Min()

	return k, ok
}

// Max returns the largest element, or false if the set is empty.
func (s *Set[T]) Max() (T, bool) {
	k, _, ok := s.tree.Max()

	return k, ok
}

// Empty reports whether the set contains no elements.
func (s *Set[T]) Empty() bool {
	return s.tree.Empty()
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Values returns a slice of all elements in ascending order.
func (s *Set[T]) Values() []T {
	return s.tree.Keys()
}

// CopyTo copies all elements into dst starting at the given offset,
// returning the number copied. Panics if dst is too small.
func (s *Set[T]) CopyTo(dst []T, index int) int {
	if index < 0 || index+s.Len() > len(dst) {
		panic("bptreeset: destination slice too small")
	}

	for v := range s.tree.Iter() {
		dst[index] = v
		index++
	}

	return s.Len()
}

// Iter returns an iterator over all elements in ascending order.
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.tree.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

// RIter returns an iterator over all elements in descending order.
func (s *Set[T]) RIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.tree.RIter() {
			if !yield(k) {
				return
			}
		}
	}
}

// Between returns an iterator over the elements in [lo, hi], inclusive,
// in ascending order.
func (s *Set[T]) Between(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.tree.Between(lo, hi) {
			if !yield(k) {
				return
			}
		}
	}
}

// From returns an iterator over the elements >= lo in ascending order.
func (s *Set[T]) From(lo T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.tree.From(lo) {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone creates an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Clone()}
}

// String returns a string representation of the set.
func (s *Set[T]) String() string {
	var b strings.Builder

	b.WriteString("BPTreeSet\n")

	for v := range s.Iter() {
		fmt.Fprintf(&b, "%v", v)
	}

	return b.String()
}

// Intersection returns a new set containing elements present in both s and
// other. Returns an empty set if comparators differ.
// Ref: https://en.wikipedia.org/wiki/Intersection_(set_theory)
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	res := NewWith(s.tree.Order(), s.tree.Comparator())

	if !sameComparator(s, other) {
		return res
	}

	// Iterate over smaller set for efficiency.
	src, dst := s, other
	if s.Len() > other.Len() {
		src, dst = other, s
	}

	for v := range src.Iter() {
		if dst.Contains(v) {
			res.Add(v)
		}
	}

	return res
}

// Union returns a new set containing all elements from s or other.
// Returns an empty set if comparators differ.
// Ref: https://en.wikipedia.org/wiki/Union_(set_theory)
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := NewWith(s.tree.Order(), s.tree.Comparator())

	if !sameComparator(s, other) {
		return res
	}

	for v := range s.Iter() {
		res.Add(v)
	}

	for v := range other.Iter() {
		res.Add(v)
	}

	return res
}

// Difference returns a new set containing elements in s but not in other.
// Returns an empty set if comparators differ.
// Ref: https://proofwiki.org/wiki/Definition:Set_Difference
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	res := NewWith(s.tree.Order(), s.tree.Comparator())

	if !sameComparator(s, other) {
		return res
	}

	for v := range s.Iter() {
		if !other.Contains(v) {
			res.Add(v)
		}
	}

	return res
}

// SubsetOf reports whether every element of s is in other.
func (s *Set[T]) SubsetOf(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	for v := range s.Iter() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// SupersetOf reports whether every element of other is in s.
func (s *Set[T]) SupersetOf(other *Set[T]) bool {
	return other.SubsetOf(s)
}

// Overlaps reports whether s and other share at least one element.
func (s *Set[T]) Overlaps(other *Set[T]) bool {
	src, dst := s, other
	if s.Len() > other.Len() {
		src, dst = other, s
	}

	for v := range src.Iter() {
		if dst.Contains(v) {
			return true
		}
	}

	return false
}

func sameComparator[T comparable](a, b *Set[T]) bool {
	aCmp := reflect.ValueOf(a.tree.Comparator())
	bCmp := reflect.ValueOf(b.tree.Comparator())

	return aCmp.Pointer() == bCmp.Pointer()
}
