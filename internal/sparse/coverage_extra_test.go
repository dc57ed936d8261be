package sparse

import "testing"

// TestSparseSetIterEmpty exercises the path simulate.Simulator.CurrentSet
// takes on a Rejected simulation's current set: nothing to visit.
func TestSparseSetIterEmpty(t *testing.T) {
	s := NewSparseSet(10)
	called := false
	s.Iter(func(v uint32) { called = true })
	if called {
		t.Error("Iter must not invoke f on an empty set")
	}
}

// TestSparseSetRemoveLastElement covers the swap-and-pop branch of Remove
// where the removed value is already the dense array's final entry.
func TestSparseSetRemoveLastElement(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	s.Remove(5)
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0", s.Size())
	}
	if s.Contains(5) {
		t.Error("5 should not be in set after removal")
	}
}

// TestSparseSetRemoveMiddleElement covers the swap-and-pop branch where the
// removed value sits before the dense array's final entry, which must move
// into the removed slot and have its sparse index updated.
func TestSparseSetRemoveMiddleElement(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(1)
	if s.Contains(1) {
		t.Error("1 should not be in set after removal")
	}
	if !s.Contains(2) || !s.Contains(3) {
		t.Error("2 and 3 should survive removal of 1")
	}
	if s.Size() != 2 {
		t.Errorf("Size() = %d, want 2", s.Size())
	}

	// The moved-in value (3, formerly last) must still be removable
	// correctly from its new slot.
	s.Remove(3)
	if s.Contains(3) || !s.Contains(2) || s.Size() != 1 {
		t.Error("set state corrupted after removing the element that absorbed the swap")
	}
}

// TestSparseSetValuesReflectsOnlyLiveEntries ensures Values() never exposes
// stale dense-array tail entries left behind by Remove's pop.
func TestSparseSetValuesReflectsOnlyLiveEntries(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(2)

	vals := s.Values()
	if len(vals) != 2 {
		t.Fatalf("Values() = %v, want 2 entries", vals)
	}
	for _, v := range vals {
		if v == 2 {
			t.Error("Values() must not include a removed element")
		}
	}
}

// TestSparseSetCrossCapacityIsolation ensures two independently constructed
// sets (as simulate.Simulator.Step allocates a fresh current set each step)
// never share backing storage.
func TestSparseSetCrossCapacityIsolation(t *testing.T) {
	a := NewSparseSet(10)
	b := NewSparseSet(10)

	a.Insert(3)
	if b.Contains(3) {
		t.Error("inserting into one SparseSet must not affect another")
	}
}
