package testutil

import (
	"math/rand"
	"time"
)

// GenerateRandomInts generates a slice of 'count' random integers,
// with each integer being in the range [0, maxVal).
// It uses a new random source for each call to ensure different sequences
// unless the test needs deterministic sequences (then use the seeded helpers).
func GenerateRandomInts(count int, maxVal int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	nums := make([]int, count)

	for i := range nums {
		nums[i] = rng.Intn(maxVal)
	}

	return nums
}

// GeneratePermutedInts generates a slice of integers from 0 to count-1
// in a random order.
func GeneratePermutedInts(count int) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return rng.Perm(count)
}

// SeededPermutedInts generates a slice of integers from 0 to count-1 in a
// random order that is reproducible for a given seed. Stress tests use it
// so failures replay deterministically.
func SeededPermutedInts(seed int64, count int) []int {
	rng := rand.New(rand.NewSource(seed))

	return rng.Perm(count)
}

// SeededRand returns a deterministic random source for the given seed.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
