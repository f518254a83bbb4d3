package bptree

// node is the closed two-variant sum over tree nodes. Dispatch is by type
// switch; only leafNode and branchNode implement it.
type node[K, V any] interface {
	// weight returns the total number of leaf keys stored in the subtree.
	weight() int

	// keyCount returns the number of keys stored directly in the node.
	keyCount() int
}

// leafNode stores sorted keys with parallel values and links to its leaf
// siblings. The links over all leaves form a doubly-linked list in key
// order; only the tree core mutates them.
type leafNode[K, V any] struct {
	keys   []K
	values []V
	prev   *leafNode[K, V]
	next   *leafNode[K, V]
}

func (l *leafNode[K, V]) weight() int { return len(l.keys) }

func (l *leafNode[K, V]) keyCount() int { return len(l.keys) }

// branchNode stores separator keys, one more child than separators, and a
// cached weight equal to the sum of its children's weights.
type branchNode[K, V any] struct {
	keys     []K
	children []node[K, V]
	wt       int
}

func (b *branchNode[K, V]) weight() int { return b.wt }

func (b *branchNode[K, V]) keyCount() int { return len(b.keys) }

// recountWeight recomputes the cached weight from the children. Used after
// splits, where children move wholesale between branches.
func (b *branchNode[K, V]) recountWeight() {
	w := 0
	for _, c := range b.children {
		w += c.weight()
	}

	b.wt = w
}

// lowerBound returns the index of the first key in keys that is >= key,
// or len(keys) if every key is smaller.
func (t *Tree[K, V]) lowerBound(keys []K, key K) int {
	low, high := 0, len(keys)

	for low < high {
		mid := int(uint(low+high) >> 1)
		if t.comparator(keys[mid], key) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}

// upperBound returns the index of the first key in keys that is > key,
// or len(keys) if no key is greater.
func (t *Tree[K, V]) upperBound(keys []K, key K) int {
	low, high := 0, len(keys)

	for low < high {
		mid := int(uint(low+high) >> 1)
		if t.comparator(keys[mid], key) <= 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}

	return low
}
