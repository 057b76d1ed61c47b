package dfa

import (
	"fmt"
	"slices"
	"strings"
)

// Minimize collapses states of d that are behaviorally indistinguishable —
// same acceptance and, for every scalar in the automaton's alphabet, the
// same equivalence class of successor state — using Moore-style iterative
// partition refinement.
//
// Supplemental: spec.md's subset construction never merges equivalent
// states, so two patterns that happen to denote the same minimal automaton
// can still produce DFAs of different sizes. Grounded in
// CyberCzar01-LABS_4/LAB_2/regexlib's Hopcroft-flavored Minimize, adapted
// here to this package's map-per-state transition representation and to a
// simpler fixed-point iteration (the pack's version maintains an explicit
// Hopcroft work queue; this one recomputes a signature per state each
// round, which is easier to get right for the handful of states a pattern
// this small ever produces, at the cost of the asymptotic edge Hopcroft's
// algorithm has on large automata).
func Minimize(d *DFA) *DFA {
	n := len(d.trans)
	trap := n // the implicit trap state, made explicit for partitioning.
	total := n + 1

	alphabet := collectAlphabet(d)

	target := func(s, idx int) int {
		if s == trap {
			return trap
		}
		to, ok := d.trans[s][alphabet[idx]]
		if !ok {
			return trap
		}
		return int(to)
	}

	class := make([]int, total)
	for s := 0; s < n; s++ {
		if d.accept[s] {
			class[s] = 1
		}
	}
	// class[trap] stays 0 (non-accepting).

	for {
		sig := make([]string, total)
		for s := 0; s < total; s++ {
			var b strings.Builder
			fmt.Fprintf(&b, "%d", class[s])
			for idx := range alphabet {
				fmt.Fprintf(&b, ",%d", class[target(s, idx)])
			}
			sig[s] = b.String()
		}

		seen := map[string]int{}
		next := make([]int, total)
		for s := 0; s < total; s++ {
			id, ok := seen[sig[s]]
			if !ok {
				id = len(seen)
				seen[sig[s]] = id
			}
			next[s] = id
		}

		if slices.Equal(next, class) {
			break
		}
		class = next
	}

	numClasses := 0
	for _, c := range class {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}

	minTrans := make([]map[rune]StateID, numClasses)
	minAccept := make([]bool, numClasses)
	for s := 0; s < n; s++ {
		cid := class[s]
		if d.accept[s] {
			minAccept[cid] = true
		}
		for c, to := range d.trans[s] {
			if minTrans[cid] == nil {
				minTrans[cid] = map[rune]StateID{}
			}
			minTrans[cid][c] = StateID(class[int(to)])
		}
	}

	trapClass := class[trap]
	for cid := range minTrans {
		for c, to := range minTrans[cid] {
			if int(to) == trapClass {
				delete(minTrans[cid], c)
			}
		}
	}

	return &DFA{
		trans:  minTrans,
		accept: minAccept,
		start:  StateID(class[int(d.start)]),
	}
}

func collectAlphabet(d *DFA) []rune {
	seen := map[rune]struct{}{}
	for _, m := range d.trans {
		for c := range m {
			seen[c] = struct{}{}
		}
	}
	alphabet := make([]rune, 0, len(seen))
	for c := range seen {
		alphabet = append(alphabet, c)
	}
	slices.Sort(alphabet)
	return alphabet
}
