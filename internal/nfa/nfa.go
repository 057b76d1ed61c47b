// Package nfa builds a Thompson-construction NFA from a syntax.Node AST and
// provides the epsilon-closure/move primitives the DFA back-end's subset
// construction needs.
//
// States are dense integer ids in [0, n) with transitions kept in a side
// table indexed by id (spec.md §9, "Graph cycles in NFA/DFA"), adapted from
// the teacher's internal/sparse-backed state tracking in nfa/pikevm.go: the
// same StateID-as-array-index idiom, generalized from a fixed 2-way
// branch-per-state layout to the variable-out-degree edge lists the pattern
// algebra's Alt/Star/Plus/Question schemata need.
package nfa

import "github.com/lapla-cogito/rustegex/internal/sparse"

// StateID is a dense NFA state identifier.
type StateID uint32

// Edge is one outgoing transition. Epsilon transitions carry no label.
type Edge struct {
	Label   rune
	Epsilon bool
	To      StateID
}

// NFA is the Thompson-construction automaton for one pattern. Per spec.md
// §3 it has exactly one start state and exactly one accept state; Star/Plus
// loops are cycles in the transition graph, not in the Go value itself, so
// the zero-allocation dense-array representation holds regardless of how
// many repetitions a match takes.
type NFA struct {
	trans  [][]Edge
	Start  StateID
	Accept StateID
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.trans) }

// Transitions returns the outgoing edges of state s.
func (n *NFA) Transitions(s StateID) []Edge { return n.trans[s] }

// EpsilonClosure returns the set of states reachable from any state in
// start using zero or more epsilon transitions. It is computed with an
// explicit worklist rather than recursion, so closures of automata built
// from deeply repeated patterns can't overflow the call stack (spec.md §8,
// "boundaries").
func (n *NFA) EpsilonClosure(start []StateID) *sparse.SparseSet {
	visited := sparse.NewSparseSet(uint32(len(n.trans)))
	worklist := make([]StateID, 0, len(start))

	for _, s := range start {
		if !visited.Contains(uint32(s)) {
			visited.Insert(uint32(s))
			worklist = append(worklist, s)
		}
	}

	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, e := range n.trans[s] {
			if e.Epsilon && !visited.Contains(uint32(e.To)) {
				visited.Insert(uint32(e.To))
				worklist = append(worklist, e.To)
			}
		}
	}

	return visited
}

// Move returns the set of states reachable from any state in the given set
// via exactly one transition labeled c. It never follows epsilon edges.
func (n *NFA) Move(states *sparse.SparseSet, c rune) []StateID {
	var out []StateID
	states.Iter(func(s uint32) {
		for _, e := range n.trans[s] {
			if !e.Epsilon && e.Label == c {
				out = append(out, StateID(e.To))
			}
		}
	})
	return out
}
