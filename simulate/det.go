package simulate

import "github.com/coregx/automa/automaton"

// DetResult is the outcome of SimulateDet: whether the input was accepted,
// and whether a nondeterministic choice was observed and silently resolved
// by picking the first matching transition (§7's NondeterministicInDet).
type DetResult struct {
	Accepted bool
	Warning  string
}

// SimulateDet runs the legacy deterministic simulation of §4.5: starting at
// a.Start(), for each input codepoint it follows the unique outgoing
// transition whose predicate holds. It does not follow epsilon transitions,
// deliberately — deterministic tests must not include them. If no
// transition matches, the input is rejected. If more than one matches, the
// first one (in transition-list order) is taken and a non-fatal warning is
// recorded; the call continues rather than aborting, since this path exists
// primarily to test automata that are already known to be deterministic.
func SimulateDet(a *automaton.Automaton, input []rune) DetResult {
	if a.Start() == automaton.InvalidState {
		return DetResult{Accepted: false}
	}

	state := a.Start()
	warning := ""
	for _, c := range input {
		next, matchCount := automaton.InvalidState, 0
		for _, t := range a.Transitions(state) {
			if t.Matches(c) {
				matchCount++
				if matchCount == 1 {
					next = t.Dest
				}
			}
		}
		if matchCount == 0 {
			return DetResult{Accepted: false, Warning: warning}
		}
		if matchCount > 1 && warning == "" {
			warning = "nondeterministic automaton simulated as deterministic"
		}
		state = next
	}
	return DetResult{Accepted: a.IsAccepting(state), Warning: warning}
}
