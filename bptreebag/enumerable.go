package bptreebag

import "github.com/qntx/ranked/container"

var _ container.EnumerableWithIndex[int] = (*Bag[int])(nil)

// Each calls the given function once for each occurrence, passing that
// occurrence's rank and value.
func (b *Bag[T]) Each(f func(index int, value T)) {
	index := 0
	for value := range b.Iter() {
		f(index, value)

		index++
	}
}

// Map invokes the given function once for each occurrence and returns a
// bag containing the values returned by the given function.
func (b *Bag[T]) Map(f func(index int, value T) T) *Bag[T] {
	newBag := NewWith(b.tree.Order(), b.tree.Comparator())

	index := 0
	for value := range b.Iter() {
		newBag.Add(f(index, value))

		index++
	}

	return newBag
}

// Select returns a new bag containing all occurrences for which the given
// function returns a true value.
func (b *Bag[T]) Select(f func(index int, value T) bool) *Bag[T] {
	newBag := NewWith(b.tree.Order(), b.tree.Comparator())

	index := 0
	for value := range b.Iter() {
		if f(index, value) {
			newBag.Add(value)
		}

		index++
	}

	return newBag
}

// Any passes each occurrence of the bag to the given function and
// returns true if the function ever returns true for any of them.
func (b *Bag[T]) Any(f func(index int, value T) bool) bool {
	index := 0
	for value := range b.Iter() {
		if f(index, value) {
			return true
		}

		index++
	}

	return false
}

// All passes each occurrence of the bag to the given function and
// returns true if the function returns true for all of them.
func (b *Bag[T]) All(f func(index int, value T) bool) bool {
	index := 0
	for value := range b.Iter() {
		if !f(index, value) {
			return false
		}

		index++
	}

	return true
}

// Find passes each occurrence of the bag to the given function and returns
// the first (index,value) for which the function is true, or (-1, zero)
// if none matches the criteria.
func (b *Bag[T]) Find(f func(index int, value T) bool) (int, T) {
	index := 0
	for value := range b.Iter() {
		if f(index, value) {
			return index, value
		}

		index++
	}

	var t T

	return -1, t
}
