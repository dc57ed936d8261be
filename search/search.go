// Package search implements regex-style scanning over a string using
// simulate.Simulator, producing ordered match spans.
//
// This mirrors the teacher engine's meta.Match{Start,End} result shape
// (see meta/find.go), adapted from a single DFA-backed search call into the
// greedy/overlap loop of spec.md §4.7, and grounded in
// original_source/src/regex/search.c's hit-emission behavior.
package search

import (
	"github.com/coregx/automa/automaton"
	"github.com/coregx/automa/simulate"
)

// Hit is a match span (Start, Length) over the input, both nonnegative,
// Length >= 1.
type Hit struct {
	Start  int
	Length int
}

// Search scans text for matches of a. With greedy, it returns at most one
// Hit (the first found) and stops immediately. With overlap, the next scan
// position after a hit advances by one codepoint rather than past the whole
// match, so overlapping matches can be reported.
//
// Longest-per-start-position is guaranteed because the longest accepted
// prefix is tracked on every accepting moment during the scan from that
// start, not only at its end.
func Search(a *automaton.Automaton, text string, greedy, overlap bool) []Hit {
	runes := []rune(text)
	var hits []Hit

	start := 0
	for start < len(runes) {
		lastAcceptLen := -1
		substr := runes[start:]

		sim := simulate.Begin(a, substr)
		for length := 1; sim.Status() != simulate.Rejected; length++ {
			sim.Step()
			st := sim.Status()
			if st == simulate.Accepting || st == simulate.Accepted {
				lastAcceptLen = length
			}
			if st == simulate.Accepted || sim.Cursor() >= len(substr) {
				break
			}
		}

		if lastAcceptLen >= 0 {
			hits = append(hits, Hit{Start: start, Length: lastAcceptLen})
			if greedy {
				return hits
			}
			if overlap {
				start++
			} else {
				start += lastAcceptLen
			}
		} else {
			start++
		}
	}
	return hits
}
