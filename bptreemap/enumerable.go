package bptreemap

import "github.com/qntx/ranked/container"

var _ container.EnumerableWithKey[string, int] = (*Map[string, int])(nil)

// Each calls the given function once for each entry, passing its key and value.
func (m *Map[K, V]) Each(f func(key K, value V)) {
	for k, v := range m.Iter() {
		f(k, v)
	}
}

// Map invokes the given function once for each entry and returns a map
// containing the entries returned by the given function.
func (m *Map[K, V]) Map(f func(key K, value V) (K, V)) *Map[K, V] {
	newMap := NewWith[K, V](m.tree.Order(), m.tree.Comparator())
	for k, v := range m.Iter() {
		newMap.Put(f(k, v))
	}

	return newMap
}

// Select returns a new map containing all entries for which the given
// function returns a true value.
func (m *Map[K, V]) Select(f func(key K, value V) bool) *Map[K, V] {
	newMap := NewWith[K, V](m.tree.Order(), m.tree.Comparator())
	for k, v := range m.Iter() {
		if f(k, v) {
			newMap.Put(k, v)
		}
	}

	return newMap
}

// Any passes each entry of the map to the given function and
// returns true if the function ever returns true for any entry.
func (m *Map[K, V]) Any(f func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if f(k, v) {
			return true
		}
	}

	return false
}

// All passes each entry of the map to the given function and
// returns true if the function returns true for all entries.
func (m *Map[K, V]) All(f func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if !f(k, v) {
			return false
		}
	}

	return true
}

// Find passes each entry of the map to the given function and returns
// the first (key,value) for which the function is true, or zero values
// if no entry matches the criteria.
func (m *Map[K, V]) Find(f func(key K, value V) bool) (K, V) {
	for k, v := range m.Iter() {
		if f(k, v) {
			return k, v
		}
	}

	var zeroK K

	var zeroV V

	return zeroK, zeroV
}
