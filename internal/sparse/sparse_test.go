package sparse

import "testing"

func TestSparseSetEmpty(t *testing.T) {
	s := NewSparseSet(100)
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0", s.Size())
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}
}

func TestSparseSetInsertAndContains(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after Insert(5)")
	}
	if s.Contains(6) {
		t.Error("set should not contain a value never inserted")
	}
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1", s.Size())
	}
}

func TestSparseSetInsertDuplicateIsNoop(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(5)
	s.Insert(5)
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1 after repeated Insert(5)", s.Size())
	}
}

func TestSparseSetInsertionOrderPreserved(t *testing.T) {
	// simulate.Simulator.Step walks the current set with Iter(), so the
	// states it feeds to epsilon-closure come in the order closure
	// inserted them, regardless of state numbering.
	s := NewSparseSet(100)
	for _, v := range []uint32{5, 2, 8, 1} {
		s.Insert(v)
	}
	want := []uint32{5, 2, 8, 1}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestSparseSetRemove(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after Remove(2)")
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}
	if s.Size() != 2 {
		t.Errorf("Size() = %d, want 2", s.Size())
	}
}

func TestSparseSetRemoveNonMember(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Remove(3) // never inserted
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1 (Remove of a non-member must be a no-op)", s.Size())
	}
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(1)
	s.Insert(2)
	s.Clear()

	if !s.IsEmpty() {
		t.Error("set should be empty after Clear")
	}
	if s.Contains(1) || s.Contains(2) {
		t.Error("cleared set should not report stale members")
	}

	// Re-inserting after Clear must not be confused by the sparse array's
	// leftover indices from before the clear.
	s.Insert(1)
	if !s.Contains(1) || s.Size() != 1 {
		t.Error("set should behave normally after Clear then Insert")
	}
}

func TestSparseSetContainsOutOfRange(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	if s.Contains(10) {
		t.Error("Contains at capacity should be false")
	}
	if s.Contains(1000) {
		t.Error("Contains far beyond capacity should be false, not panic")
	}
}

func TestSparseSetIter(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	var visited []uint32
	s.Iter(func(v uint32) {
		visited = append(visited, v)
	})
	if len(visited) != 3 {
		t.Fatalf("Iter visited %d values, want 3", len(visited))
	}
	want := []uint32{7, 2, 5}
	for i, v := range want {
		if visited[i] != v {
			t.Errorf("Iter order[%d] = %d, want %d", i, visited[i], v)
		}
	}
}
