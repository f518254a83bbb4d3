package bptreeset

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestSetAddRemove(t *testing.T) {
	t.Parallel()

	s := NewWithOrder[int](4)

	if !s.Add(3) || !s.Add(1) || !s.Add(2) {
		t.Fatal("Add of fresh elements reported false")
	}

	if s.Add(2) {
		t.Error("Add(2) = true for present element")
	}

	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	if !slices.Equal(s.Values(), []int{1, 2, 3}) {
		t.Errorf("Values() = %v", s.Values())
	}

	if !s.Remove(2) {
		t.Error("Remove(2) = false")
	}

	if s.Remove(2) {
		t.Error("Remove(2) = true after removal")
	}

	if s.Contains(2) {
		t.Error("Contains(2) = true after removal")
	}
}

func TestSetSeedValues(t *testing.T) {
	t.Parallel()

	s := New(5, 3, 1, 3, 5)

	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	if !slices.Equal(s.Values(), []int{1, 3, 5}) {
		t.Errorf("Values() = %v", s.Values())
	}
}

// Dense sequential fill, then a positional removal; the ranks around the
// hole must shift by exactly one.
func TestSetRemoveAt(t *testing.T) {
	t.Parallel()

	s := NewWithOrder[int](4)
	for i := range 100 {
		s.Add(i)
	}

	s.RemoveAt(50)

	if got := s.Len(); got != 99 {
		t.Errorf("Len() = %d, want 99", got)
	}

	if got := s.At(50); got != 51 {
		t.Errorf("At(50) = %d, want 51", got)
	}

	if got := s.At(49); got != 49 {
		t.Errorf("At(49) = %d, want 49", got)
	}

	if got := s.IndexOf(50); got != ^50 {
		t.Errorf("IndexOf(50) = %d, want %d", got, ^50)
	}
}

func TestSetMinMax(t *testing.T) {
	t.Parallel()

	s := NewWithOrder[string](4)

	if _, ok := s.Min(); ok {
		t.Error("Min() on empty set reported a value")
	}

	s.Append("pear", "apple", "quince")

	if v, ok := s.Min(); !ok || v != "apple" {
		t.Errorf("Min() = (%q, %v)", v, ok)
	}

	if v, ok := s.Max(); !ok || v != "quince" {
		t.Errorf("Max() = (%q, %v)", v, ok)
	}
}

func TestSetReverseIteration(t *testing.T) {
	t.Parallel()

	s := NewWithOrder[int](128)
	for i := 1; i <= 500; i++ {
		s.Add(i)
	}

	want := 500

	count := 0
	for v := range s.RIter() {
		if v != want {
			t.Fatalf("RIter yielded %d, want %d", v, want)
		}

		want--
		count++
	}

	if count != 500 {
		t.Errorf("RIter yielded %d elements, want 500", count)
	}
}

func TestSetBetweenFrom(t *testing.T) {
	t.Parallel()

	s := NewWithOrder[int](4)
	for i := range 50 {
		s.Add(i * 2)
	}

	var got []int
	for v := range s.Between(5, 13) {
		got = append(got, v)
	}

	if !slices.Equal(got, []int{6, 8, 10, 12}) {
		t.Errorf("Between(5, 13) = %v", got)
	}

	got = got[:0]
	for v := range s.From(90) {
		got = append(got, v)
	}

	if !slices.Equal(got, []int{90, 92, 94, 96, 98}) {
		t.Errorf("From(90) = %v", got)
	}
}

func TestSetCopyTo(t *testing.T) {
	t.Parallel()

	s := New(3, 1, 2)

	dst := make([]int, 5)
	if n := s.CopyTo(dst, 2); n != 3 {
		t.Errorf("CopyTo returned %d, want 3", n)
	}

	if !slices.Equal(dst, []int{0, 0, 1, 2, 3}) {
		t.Errorf("dst = %v", dst)
	}

	defer func() {
		if recover() == nil {
			t.Error("CopyTo into a short slice did not panic")
		}
	}()

	s.CopyTo(make([]int, 2), 0)
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	a := New(1, 2, 3, 4)
	b := New(3, 4, 5)

	t.Run("intersection", func(t *testing.T) {
		t.Parallel()

		if got := a.Intersection(b).Values(); !slices.Equal(got, []int{3, 4}) {
			t.Errorf("Intersection = %v", got)
		}
	})

	t.Run("union", func(t *testing.T) {
		t.Parallel()

		if got := a.Union(b).Values(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
			t.Errorf("Union = %v", got)
		}
	})

	t.Run("difference", func(t *testing.T) {
		t.Parallel()

		if got := a.Difference(b).Values(); !slices.Equal(got, []int{1, 2}) {
			t.Errorf("Difference = %v", got)
		}
	})

	t.Run("subset superset overlaps", func(t *testing.T) {
		t.Parallel()

		sub := New(3, 4)

		if !sub.SubsetOf(a) {
			t.Error("SubsetOf = false for a contained set")
		}

		if sub.SubsetOf(New(3)) {
			t.Error("SubsetOf = true for a non-superset")
		}

		if !a.SupersetOf(sub) {
			t.Error("SupersetOf = false")
		}

		if !a.Overlaps(b) {
			t.Error("Overlaps = false for intersecting sets")
		}

		if a.Overlaps(New(9, 10)) {
			t.Error("Overlaps = true for disjoint sets")
		}
	})
}

func TestSetEnumerable(t *testing.T) {
	t.Parallel()

	s := New(1, 2, 3, 4)

	sum := 0
	s.Each(func(_, v int) { sum += v })

	if sum != 10 {
		t.Errorf("Each summed %d, want 10", sum)
	}

	doubled := s.Map(func(_, v int) int { return v * 2 })
	if !slices.Equal(doubled.Values(), []int{2, 4, 6, 8}) {
		t.Errorf("Map = %v", doubled.Values())
	}

	even := s.Select(func(_, v int) bool { return v%2 == 0 })
	if !slices.Equal(even.Values(), []int{2, 4}) {
		t.Errorf("Select = %v", even.Values())
	}

	if !s.Any(func(_, v int) bool { return v == 3 }) {
		t.Error("Any(v == 3) = false")
	}

	if s.All(func(_, v int) bool { return v < 4 }) {
		t.Error("All(v < 4) = true")
	}

	if i, v := s.Find(func(_, v int) bool { return v > 2 }); i != 2 || v != 3 {
		t.Errorf("Find = (%d, %d), want (2, 3)", i, v)
	}
}

func TestSetJSON(t *testing.T) {
	t.Parallel()

	s := New(3, 1, 2)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if string(data) != "[1,2,3]" {
		t.Errorf("Marshal = %s", data)
	}

	restored := New[int]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !slices.Equal(restored.Values(), s.Values()) {
		t.Errorf("round trip = %v, want %v", restored.Values(), s.Values())
	}
}

func TestSetClone(t *testing.T) {
	t.Parallel()

	s := New(1, 2, 3)
	c := s.Clone()
	c.Add(4)

	if s.Len() != 3 || c.Len() != 4 {
		t.Errorf("Len after clone mutation: original %d, clone %d", s.Len(), c.Len())
	}
}

func TestSetRemoveWhere(t *testing.T) {
	t.Parallel()

	s := NewWithOrder[int](4)
	for i := range 20 {
		s.Add(i)
	}

	if removed := s.RemoveWhere(func(v int) bool { return v%2 == 1 }); removed != 10 {
		t.Errorf("RemoveWhere removed %d, want 10", removed)
	}

	for _, v := range s.Values() {
		if v%2 == 1 {
			t.Errorf("odd element %d survived", v)
		}
	}
}
