package bptreemultimap

import "github.com/qntx/ranked/container"

var _ container.EnumerableWithKey[string, int] = (*MultiMap[string, int])(nil)

// Each calls the given function once for each entry, passing its key and value.
func (m *MultiMap[K, V]) Each(f func(key K, value V)) {
	for k, v := range m.Iter() {
		f(k, v)
	}
}

// Select returns a new multimap containing all entries for which the given
// function returns a true value.
func (m *MultiMap[K, V]) Select(f func(key K, value V) bool) *MultiMap[K, V] {
	newMap := NewWith[K, V](m.tree.Order(), m.tree.Comparator())
	for k, v := range m.Iter() {
		if f(k, v) {
			newMap.Add(k, v)
		}
	}

	return newMap
}

// Any passes each entry of the multimap to the given function and
// returns true if the function ever returns true for any entry.
func (m *MultiMap[K, V]) Any(f func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if f(k, v) {
			return true
		}
	}

	return false
}

// All passes each entry of the multimap to the given function and
// returns true if the function returns true for all entries.
func (m *MultiMap[K, V]) All(f func(key K, value V) bool) bool {
	for k, v := range m.Iter() {
		if !f(k, v) {
			return false
		}
	}

	return true
}

// Find passes each entry of the multimap to the given function and returns
// the first (key,value) for which the function is true, or zero values
// if no entry matches the criteria.
func (m *MultiMap[K, V]) Find(f func(key K, value V) bool) (K, V) {
	for k, v := range m.Iter() {
		if f(k, v) {
			return k, v
		}
	}

	var zeroK K

	var zeroV V

	return zeroK, zeroV
}
