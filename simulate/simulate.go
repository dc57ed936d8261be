// Package simulate runs nondeterministic simulation over an
// automaton.Automaton: epsilon-closure computation, single-codepoint
// stepping, and the accept/reject/in-progress status query that search and
// lexer build on.
//
// A Simulator holds a non-owning reference to its Automaton — mirroring the
// teacher engine's *PikeVM holding a *NFA — and must not outlive it.
// Distinct Simulators over the same Automaton are independent and may be
// driven from different goroutines.
package simulate

import (
	"github.com/coregx/automa/automaton"
	"github.com/coregx/automa/internal/conv"
	"github.com/coregx/automa/internal/sparse"
)

// Status is the result of querying a Simulator's current position.
type Status int

const (
	// Rejected means the current state set is empty: no continuation of
	// the input read so far can ever be accepted.
	Rejected Status = iota
	// Accepted means the current set meets the accepting set and the
	// cursor is at end-of-input.
	Accepted
	// Accepting means the current set meets the accepting set but input
	// remains; stepping further may still succeed or fail.
	Accepting
	// NotAccepting means input remains and the current set does not meet
	// the accepting set, but the set is nonempty (not yet Rejected).
	NotAccepting
)

func (s Status) String() string {
	switch s {
	case Rejected:
		return "Rejected"
	case Accepted:
		return "Accepted"
	case Accepting:
		return "Accepting"
	default:
		return "NotAccepting"
	}
}

// Terminal reports whether s ends a Run loop (Accepted or Rejected).
func (s Status) Terminal() bool {
	return s == Accepted || s == Rejected
}

// Simulator holds the live nondeterministic simulation of one Automaton
// over one input: the epsilon-closed current state set and a cursor into
// the input codepoints.
type Simulator struct {
	a      *automaton.Automaton
	input  []rune
	cursor int

	current *sparse.SparseSet
	// current is replaced by a fresh set on every Step. sparse.SparseSet
	// keeps states in the order closure inserted them, so iterating it
	// does not depend on Go's unspecified map ordering.
}

// Begin starts a new simulation of a over input, with current_set set to
// the epsilon-closure of {a.Start()} and the cursor at the start of input.
func Begin(a *automaton.Automaton, input []rune) *Simulator {
	s := &Simulator{
		a:       a,
		input:   input,
		current: sparse.NewSparseSet(conv.IntToUint32(a.States())),
	}
	if a.Start() != automaton.InvalidState {
		closure(a, s.current, []automaton.StateIndex{a.Start()})
	}
	return s
}

// CurrentSet returns the simulation's current epsilon-closed state set, in
// the (unspecified but stable-within-a-call) order the underlying sparse
// set iterates it.
func (s *Simulator) CurrentSet() []automaton.StateIndex {
	out := make([]automaton.StateIndex, 0, s.current.Size())
	s.current.Iter(func(v uint32) {
		out = append(out, automaton.StateIndex(v))
	})
	return out
}

// Cursor returns the index of the next unconsumed input codepoint, or
// len(input) at end-of-input.
func (s *Simulator) Cursor() int {
	return s.cursor
}

// Step consumes the next input codepoint: it builds the set of states
// reachable from current_set by a transition matching that codepoint,
// epsilon-closes it, replaces current_set, and advances the cursor by one
// codepoint. Calling Step after Status is terminal is undefined, per spec.
func (s *Simulator) Step() {
	c := s.input[s.cursor]

	var next []automaton.StateIndex
	s.current.Iter(func(v uint32) {
		from := automaton.StateIndex(v)
		for _, t := range s.a.Transitions(from) {
			if !t.IsEpsilon() && t.Matches(c) {
				next = append(next, t.Dest)
			}
		}
	})

	s.current = sparse.NewSparseSet(conv.IntToUint32(s.a.States()))
	closure(s.a, s.current, next)
	s.cursor++
}

// Status reports Rejected, Accepted, Accepting, or NotAccepting for the
// simulation's current position, per §4.6.
func (s *Simulator) Status() Status {
	if s.current.IsEmpty() {
		return Rejected
	}
	if s.meetsAccepting() {
		if s.cursor >= len(s.input) {
			return Accepted
		}
		return Accepting
	}
	return NotAccepting
}

func (s *Simulator) meetsAccepting() bool {
	hit := false
	s.current.Iter(func(v uint32) {
		if s.a.IsAccepting(automaton.StateIndex(v)) {
			hit = true
		}
	})
	return hit
}

// closure performs a breadth-first epsilon expansion from seeds, inserting
// every reachable state into set exactly once. Order of expansion never
// affects the resulting set.
func closure(a *automaton.Automaton, set *sparse.SparseSet, seeds []automaton.StateIndex) {
	queue := make([]automaton.StateIndex, 0, len(seeds))
	for _, s := range seeds {
		if !set.Contains(uint32(s)) {
			set.Insert(uint32(s))
			queue = append(queue, s)
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, t := range a.Transitions(queue[i]) {
			if t.IsEpsilon() && !set.Contains(uint32(t.Dest)) {
				set.Insert(uint32(t.Dest))
				queue = append(queue, t.Dest)
			}
		}
	}
}

// Run begins a fresh simulation of a over input and steps it to a terminal
// status, returning true iff that status is Accepted. Stepping stops at
// end-of-input even if Status is still NotAccepting there (a nonempty,
// non-accepting state set with nothing left to consume can never become
// Accepted), since Step is undefined to call past the last codepoint.
func Run(a *automaton.Automaton, input []rune) bool {
	sim := Begin(a, input)
	for !sim.Status().Terminal() && sim.cursor < len(sim.input) {
		sim.Step()
	}
	return sim.Status() == Accepted
}

// Simulate is the convenience form of Run taking a string input, for
// callers working with text rather than a pre-decoded []rune slice.
func Simulate(a *automaton.Automaton, input string) bool {
	return Run(a, []rune(input))
}
