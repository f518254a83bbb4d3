package container

// EnumerableWithIndex defines Ruby-inspired enumeration for ordered containers
// whose elements can be addressed by an integer index.
type EnumerableWithIndex[T any] interface {
	// Each invokes the provided function once for each element, passing the element's
	// index and value in container order.
	Each(fn func(index int, value T))

	// Any returns true if the provided function returns true for at least one element.
	// It stops iteration as soon as a match is found.
	Any(fn func(index int, value T) bool) bool

	// All returns true if the provided function returns true for every element in the
	// container. It stops and returns false on the first failure.
	All(fn func(index int, value T) bool) bool

	// Find returns the first index and value for which the provided function returns true.
	// If no element satisfies the condition, it returns -1 and the zero value of T.
	Find(fn func(index int, value T) bool) (int, T)
}

// EnumerableWithKey defines Ruby-inspired enumeration for key-value containers.
type EnumerableWithKey[K, V any] interface {
	// Each invokes the provided function once for each element, passing the element's
	// key and value in container order.
	Each(fn func(key K, value V))

	// Any returns true if the provided function returns true for at least one key-value pair.
	// It stops iteration as soon as a match is found.
	Any(fn func(key K, value V) bool) bool

	// All returns true if the provided function returns true for every key-value pair in the
	// container. It stops and returns false on the first failure.
	All(fn func(key K, value V) bool) bool

	// Find returns the first key and value for which the provided function returns true.
	// If no element satisfies the condition, it returns the zero values of K and V.
	Find(fn func(key K, value V) bool) (K, V)
}
