package nfa

import (
	"github.com/lapla-cogito/rustegex/internal/conv"
	"github.com/lapla-cogito/rustegex/internal/syntax"
)

// builder accumulates states while compiling one AST into Thompson
// fragments, following the construction in spec.md §4.2.
type builder struct {
	trans [][]Edge
}

// frag is a Thompson fragment: one start state and a list of states whose
// outgoing epsilon edges have not been wired yet (spec.md's "dangling
// arrows"). Connecting a fragment onward means appending an epsilon edge
// from every state in outs to the next target.
type frag struct {
	start StateID
	outs  []StateID
}

func (b *builder) newState() StateID {
	id := StateID(conv.IntToUint32(len(b.trans)))
	b.trans = append(b.trans, nil)
	return id
}

func (b *builder) addEpsilon(from, to StateID) {
	b.trans[from] = append(b.trans[from], Edge{Epsilon: true, To: to})
}

func (b *builder) addChar(from StateID, c rune, to StateID) {
	b.trans[from] = append(b.trans[from], Edge{Label: c, To: to})
}

func (b *builder) patch(outs []StateID, target StateID) {
	for _, s := range outs {
		b.addEpsilon(s, target)
	}
}

// Compile builds the NFA for ast using Thompson construction.
func Compile(ast *syntax.Node) *NFA {
	b := &builder{}
	f := b.compileNode(ast)
	match := b.newState()
	b.patch(f.outs, match)

	return &NFA{trans: b.trans, Start: f.start, Accept: match}
}

func (b *builder) compileNode(ast *syntax.Node) frag {
	switch ast.Kind {
	case syntax.KindChar:
		start := b.newState()
		accept := b.newState()
		b.addChar(start, ast.Char, accept)
		return frag{start: start, outs: []StateID{accept}}

	case syntax.KindEmpty:
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, accept)
		return frag{start: start, outs: []StateID{accept}}

	case syntax.KindConcat:
		left := b.compileNode(ast.Left)
		right := b.compileNode(ast.Right)
		b.patch(left.outs, right.start)
		return frag{start: left.start, outs: right.outs}

	case syntax.KindAlt:
		left := b.compileNode(ast.Left)
		right := b.compileNode(ast.Right)
		start := b.newState()
		b.addEpsilon(start, left.start)
		b.addEpsilon(start, right.start)
		outs := make([]StateID, 0, len(left.outs)+len(right.outs))
		outs = append(outs, left.outs...)
		outs = append(outs, right.outs...)
		return frag{start: start, outs: outs}

	case syntax.KindStar:
		inner := b.compileNode(ast.Inner)
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, inner.start)
		b.addEpsilon(start, accept)
		b.patch(inner.outs, inner.start)
		b.patch(inner.outs, accept)
		return frag{start: start, outs: []StateID{accept}}

	case syntax.KindPlus:
		inner := b.compileNode(ast.Inner)
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, inner.start) // no forward bypass: at least one pass through inner is required.
		b.patch(inner.outs, inner.start)
		b.patch(inner.outs, accept)
		return frag{start: start, outs: []StateID{accept}}

	case syntax.KindQuestion:
		inner := b.compileNode(ast.Inner)
		start := b.newState()
		accept := b.newState()
		b.addEpsilon(start, inner.start)
		b.addEpsilon(start, accept)
		b.patch(inner.outs, accept)
		return frag{start: start, outs: []StateID{accept}}

	default:
		panic("nfa: unhandled AST kind")
	}
}
