package automaton

// appendGraph copies every state and transition of src into dst, appending
// them as new dst states. Each copied transition's Dest is shifted by the
// offset so it still points at its (renumbered) target inside dst. It
// returns that offset: dst's size before the append. This is the only
// operation that copies states and transitions across automata, and it is
// linear in the size of src.
func appendGraph(dst, src *Automaton) StateIndex {
	offset := StateIndex(len(dst.states))
	for range src.states {
		dst.AddState(false)
	}
	for i, s := range src.states {
		from := offset + StateIndex(i)
		for _, t := range s.transitions {
			shifted := t.Clone()
			shifted.Dest += offset
			dst.states[from].transitions = append(dst.states[from].transitions, shifted)
		}
	}
	return offset
}

// Concat mutates first in place so that it recognizes L(first)·L(second).
// second is not modified; its states and transitions are cloned into first.
func Concat(first, second *Automaton) {
	off := StateIndex(len(first.states))
	priorAccepting := first.Accepting()

	appendGraph(first, second)

	for _, a := range priorAccepting {
		_ = first.addEpsilon(a, second.start+off)
	}

	first.accepting = make(map[StateIndex]struct{}, len(second.accepting))
	for a := range second.accepting {
		first.accepting[a+off] = struct{}{}
	}
	// first.start is unchanged.
}

// Union mutates first in place so that it recognizes L(first) ∪ L(second).
// second is not modified.
func Union(first, second *Automaton) {
	off := appendGraph(first, second)

	oldStart := first.start
	sNew := first.AddState(false)
	_ = first.addEpsilon(sNew, oldStart)
	_ = first.addEpsilon(sNew, second.start+off)

	for a := range second.accepting {
		first.accepting[a+off] = struct{}{}
	}
	first.start = sNew
}

// Kleene mutates f in place so that it recognizes L(f)*, including the empty
// string.
func Kleene(f *Automaton) {
	priorAccepting := f.Accepting()

	sNew := f.AddState(false)
	_ = f.addEpsilon(sNew, f.start)
	for _, a := range priorAccepting {
		_ = f.addEpsilon(a, sNew)
	}
	f.accepting[sNew] = struct{}{}
	f.start = sNew
}

// emptyAccepting returns a one-state automaton whose single state is both
// the start state and accepting: it recognizes exactly the empty string.
// Used by the regex compiler to implement the '?' modifier as
// Union(x, emptyAccepting()).
func emptyAccepting() *Automaton {
	a := New()
	s0 := a.AddState(true)
	_ = a.SetStart(s0)
	return a
}

// EmptyAccepting exports emptyAccepting for callers outside this package
// (the regexp compiler's '?' modifier) that need a ready-made
// empty-string automaton to union against.
func EmptyAccepting() *Automaton {
	return emptyAccepting()
}
