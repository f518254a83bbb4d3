package bptreemultimap

import (
	"encoding/json"
	"slices"
	"testing"
)

// Interleaved descending and ascending inserts of duplicate pairs; ranks,
// bounds, and multiplicities must all line up.
func TestMultiMapInterleavedInserts(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[int, int](5)

	for i := 9; i >= 1; i-- {
		m.Add(i, -i)
	}

	for i := 1; i <= 9; i++ {
		m.Add(i, -i)
	}

	if got := m.Len(); got != 18 {
		t.Errorf("Len() = %d, want 18", got)
	}

	if k, v, ok := m.Min(); !ok || k != 1 || v != -1 {
		t.Errorf("Min() = (%d, %d, %v), want (1, -1, true)", k, v, ok)
	}

	if k, v, ok := m.Max(); !ok || k != 9 || v != -9 {
		t.Errorf("Max() = (%d, %d, %v), want (9, -9, true)", k, v, ok)
	}

	if got := m.Count(5); got != 2 {
		t.Errorf("Count(5) = %d, want 2", got)
	}

	if got := m.IndexOf(5); got != 8 {
		t.Errorf("IndexOf(5) = %d, want 8", got)
	}

	if got := m.DistinctLen(); got != 9 {
		t.Errorf("DistinctLen() = %d, want 9", got)
	}
}

// Equal keys keep their insertion order, and their values stay parallel.
func TestMultiMapStableDuplicates(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[string, int](128)
	m.Add("0zero", 0)
	m.Add("1one", -1)
	m.Add("1one", -2)

	keys := m.Keys()
	if !slices.Equal(keys, []string{"0zero", "1one", "1one"}) {
		t.Errorf("Keys() = %v", keys)
	}

	values := m.Values()
	if values[2] != -2 {
		t.Errorf("values[2] = %d, want -2", values[2])
	}

	if values[1] != -1 {
		t.Errorf("values[1] = %d, want -1", values[1])
	}
}

func TestMultiMapGetAll(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[string, int](4)
	m.Add("x", 1)
	m.Add("y", 10)
	m.Add("x", 2)
	m.Add("x", 3)

	if v, ok := m.Get("x"); !ok || v != 1 {
		t.Errorf("Get(x) = (%d, %v), want lowest value 1", v, ok)
	}

	if got := m.GetAll("x"); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("GetAll(x) = %v", got)
	}

	if got := m.GetAll("absent"); got != nil {
		t.Errorf("GetAll(absent) = %v, want nil", got)
	}
}

func TestMultiMapDelete(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[string, int](4)
	m.Add("k", 1)
	m.Add("k", 2)
	m.Add("k", 3)
	m.Add("other", 9)

	if !m.Delete("k") {
		t.Fatal("Delete(k) = false")
	}

	if got := m.GetAll("k"); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("GetAll(k) after Delete = %v", got)
	}

	if got := m.DeleteAll("k"); got != 2 {
		t.Errorf("DeleteAll(k) = %d, want 2", got)
	}

	if m.ContainsKey("k") {
		t.Error("ContainsKey(k) = true after DeleteAll")
	}

	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestMultiMapRankAccess(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[int, string](4)
	m.Add(2, "a")
	m.Add(2, "b")
	m.Add(4, "c")

	if k, v := m.At(1); k != 2 || v != "b" {
		t.Errorf("At(1) = (%d, %q)", k, v)
	}

	if got := m.IndexAfter(2); got != 2 {
		t.Errorf("IndexAfter(2) = %d, want 2", got)
	}

	if got := m.IndexOf(3); got != ^2 {
		t.Errorf("IndexOf(3) = %d, want %d", got, ^2)
	}

	m.DeleteAt(0)

	if k, v := m.At(0); k != 2 || v != "b" {
		t.Errorf("At(0) after DeleteAt = (%d, %q)", k, v)
	}
}

func TestMultiMapDistinctKeys(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[int, int](4)
	for i, k := range []int{3, 3, 3, 7, 7, 11} {
		m.Add(k, i)
	}

	var got []int
	for k := range m.DistinctKeys() {
		got = append(got, k)
	}

	if !slices.Equal(got, []int{3, 7, 11}) {
		t.Errorf("DistinctKeys() = %v", got)
	}
}

func TestMultiMapJSON(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[string, int](4)
	m.Add("a", 1)
	m.Add("a", 2)
	m.Add("b", 3)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `[{"key":"a","value":1},{"key":"a","value":2},{"key":"b","value":3}]`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	restored := New[string, int]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got := restored.GetAll("a"); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("round trip GetAll(a) = %v", got)
	}
}

func TestMultiMapCopyValuesTo(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[int, int](4)
	m.Add(1, 100)
	m.Add(1, 101)
	m.Add(2, 200)

	dst := make([]int, 4)
	if n := m.CopyValuesTo(dst, 1); n != 3 {
		t.Errorf("CopyValuesTo returned %d, want 3", n)
	}

	if !slices.Equal(dst, []int{0, 100, 101, 200}) {
		t.Errorf("dst = %v", dst)
	}
}

func TestMultiMapClone(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[string, int](4)
	m.Add("k", 1)
	m.Add("k", 2)

	c := m.Clone()

	if got := c.GetAll("k"); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("clone GetAll(k) = %v, want stable [1 2]", got)
	}

	c.Add("k", 3)

	if m.Count("k") != 2 || c.Count("k") != 3 {
		t.Error("clone is not independent of the original")
	}
}

func TestMultiMapDeleteWhere(t *testing.T) {
	t.Parallel()

	m := NewWithOrder[int, int](4)
	for i := range 10 {
		m.Add(i%3, i)
	}

	if removed := m.DeleteWhere(func(_, v int) bool { return v >= 6 }); removed != 4 {
		t.Errorf("DeleteWhere removed %d, want 4", removed)
	}

	if got := m.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
}
