// Package dfa builds a deterministic automaton from an NFA by subset
// construction and matches input against it in O(|input|) with no
// allocation after construction (spec.md §4.3).
//
// Grounded in the teacher's dfa/lazy package, which builds DFA states
// on demand from NFA subsets behind a cache; this package builds the whole
// DFA eagerly at construction time instead (spec.md §4.6 requires the
// "dfa" selector to "build NFA, build DFA eagerly"), so there is no cache
// miss path to speak of — every subset discovered during construction gets
// a permanent state.
package dfa

import (
	"sort"

	"github.com/lapla-cogito/rustegex/internal/conv"
	"github.com/lapla-cogito/rustegex/internal/nfa"
	"github.com/lapla-cogito/rustegex/internal/sparse"
)

// StateID is a dense DFA state identifier.
type StateID uint32

// DFA is a deterministic automaton. A missing entry in trans[s] means no
// transition exists for that scalar from state s: per spec.md §4.3 this is
// the implicit trap state, and matching fails immediately rather than
// transitioning into a materialized dead state.
type DFA struct {
	trans  []map[rune]StateID
	accept []bool
	start  StateID
}

// Build runs subset construction over n, producing an equivalent DFA.
func Build(n *nfa.NFA) *DFA {
	startClosure := n.EpsilonClosure([]nfa.StateID{n.Start})
	startKey := subsetKey(startClosure)

	ids := map[string]StateID{startKey: 0}
	type pending struct {
		id     StateID
		states *sparse.SparseSet
	}
	queue := []pending{{id: 0, states: startClosure}}

	d := &DFA{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for int(cur.id) >= len(d.trans) {
			d.trans = append(d.trans, nil)
			d.accept = append(d.accept, false)
		}

		if cur.states.Contains(uint32(n.Accept)) {
			d.accept[cur.id] = true
		}

		byLabel := map[rune][]nfa.StateID{}
		cur.states.Iter(func(s uint32) {
			for _, e := range n.Transitions(nfa.StateID(s)) {
				if !e.Epsilon {
					byLabel[e.Label] = append(byLabel[e.Label], e.To)
				}
			}
		})

		for c, targets := range byLabel {
			closure := n.EpsilonClosure(targets)
			if closure.IsEmpty() {
				continue // no transition: falls into the implicit trap.
			}

			key := subsetKey(closure)
			id, ok := ids[key]
			if !ok {
				id = StateID(conv.IntToUint32(len(ids)))
				ids[key] = id
				queue = append(queue, pending{id: id, states: closure})
			}

			if d.trans[cur.id] == nil {
				d.trans[cur.id] = map[rune]StateID{}
			}
			d.trans[cur.id][c] = id
		}
	}

	d.start = 0
	return d
}

// IsMatch reports whether input lies in the language of the DFA. It runs in
// O(|input|) and allocates nothing once the DFA is built.
func (d *DFA) IsMatch(input string) bool {
	state := d.start
	for _, c := range input {
		next, ok := d.trans[state][c]
		if !ok {
			return false
		}
		state = next
	}
	return d.accept[state]
}

// subsetKey produces a hashable, order-independent representation of an
// NFA state subset by sorting its members and packing them into a string
// (spec.md §9, "Subset → id mapping").
func subsetKey(set *sparse.SparseSet) string {
	vals := append([]uint32(nil), set.Values()...)
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })

	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	return string(buf)
}
