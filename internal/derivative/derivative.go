// Package derivative matches input by folding Brzozowski derivatives over
// a pattern AST, per spec.md §4.5.
//
// The derivative back-end needs one term the shared syntax.Node algebra
// has no use for: ∅, the empty language, which arises only as an
// intermediate derivative result and never from parsing a pattern. Rather
// than add a KindNothing the parser and every other back-end would have
// to account for, this package translates syntax.Node into its own term
// type once at construction and works entirely in terms of that.
package derivative

import "github.com/lapla-cogito/rustegex/internal/syntax"

type termKind uint8

const (
	termNothing termKind = iota // ∅: matches no string, including ε.
	termEmpty                   // matches only ε.
	termChar
	termConcat
	termAlt
	termStar
)

type term struct {
	kind  termKind
	char  rune
	left  *term
	right *term
	inner *term
}

var nothing = &term{kind: termNothing}
var empty = &term{kind: termEmpty}

// fromAST translates a parsed pattern into the derivative algebra. Plus
// and Question desugar: Plus(A) = Concat(A, Star(A)), Question(A) =
// Alt(A, Empty), matching §4.5's ν/∂ equations for them exactly while
// keeping the term kind set minimal.
func fromAST(n *syntax.Node) *term {
	switch n.Kind {
	case syntax.KindEmpty:
		return empty
	case syntax.KindChar:
		return &term{kind: termChar, char: n.Char}
	case syntax.KindConcat:
		return mkConcat(fromAST(n.Left), fromAST(n.Right))
	case syntax.KindAlt:
		return mkAlt(fromAST(n.Left), fromAST(n.Right))
	case syntax.KindStar:
		return mkStar(fromAST(n.Inner))
	case syntax.KindPlus:
		inner := fromAST(n.Inner)
		return mkConcat(inner, mkStar(inner))
	case syntax.KindQuestion:
		return mkAlt(fromAST(n.Inner), empty)
	default:
		panic("derivative: unhandled AST kind")
	}
}

// mkConcat, mkAlt and mkStar are the normalizing smart constructors from
// spec.md §4.5: applied at every construction site, not just at the end,
// so intermediate derivatives never grow an un-normalized ∅ or Empty into
// later terms.
func mkConcat(a, b *term) *term {
	switch {
	case a.kind == termNothing || b.kind == termNothing:
		return nothing
	case a.kind == termEmpty:
		return b
	case b.kind == termEmpty:
		return a
	default:
		return &term{kind: termConcat, left: a, right: b}
	}
}

func mkAlt(a, b *term) *term {
	switch {
	case a.kind == termNothing:
		return b
	case b.kind == termNothing:
		return a
	default:
		return &term{kind: termAlt, left: a, right: b}
	}
}

func mkStar(a *term) *term {
	return &term{kind: termStar, inner: a}
}

// nullable reports ν(R): whether t accepts the empty string.
func nullable(t *term) bool {
	switch t.kind {
	case termEmpty:
		return true
	case termNothing, termChar:
		return false
	case termConcat:
		return nullable(t.left) && nullable(t.right)
	case termAlt:
		return nullable(t.left) || nullable(t.right)
	case termStar:
		return true
	default:
		panic("derivative: unhandled term kind")
	}
}

// derive computes ∂c(R).
func derive(t *term, c rune) *term {
	switch t.kind {
	case termNothing, termEmpty:
		return nothing
	case termChar:
		if t.char == c {
			return empty
		}
		return nothing
	case termConcat:
		if nullable(t.left) {
			return mkAlt(mkConcat(derive(t.left, c), t.right), derive(t.right, c))
		}
		return mkConcat(derive(t.left, c), t.right)
	case termAlt:
		return mkAlt(derive(t.left, c), derive(t.right, c))
	case termStar:
		return mkConcat(derive(t.inner, c), mkStar(t.inner))
	default:
		panic("derivative: unhandled term kind")
	}
}

// Matcher evaluates membership by folding derivatives over input scalars.
// A Matcher is immutable after construction: derive and nullable allocate
// fresh terms rather than mutating shared ones, so a single Matcher's AST
// is safe to read concurrently. The memo table below is per-call scratch.
type Matcher struct {
	root *term
}

// Compile translates ast into the normalized derivative term that Matcher
// folds derivatives over.
func Compile(ast *syntax.Node) *Matcher {
	return &Matcher{root: fromAST(ast)}
}

// IsMatch reports whether input lies in the language of the compiled
// pattern, per spec.md §4.5's fold-and-check-nullability rule.
//
// memo caches derive results keyed by (term pointer, scalar) for this
// call only. Terms are not hash-consed and derive allocates fresh terms,
// so structurally equal terms reached at different steps are distinct
// keys; a cached result is reused only when the same term pointer comes
// up again with the same scalar.
func (m *Matcher) IsMatch(input string) bool {
	type key struct {
		t *term
		c rune
	}
	memo := map[key]*term{}

	t := m.root
	for _, c := range input {
		k := key{t, c}
		next, ok := memo[k]
		if !ok {
			next = derive(t, c)
			memo[k] = next
		}
		t = next
		if t.kind == termNothing {
			return false
		}
	}
	return nullable(t)
}
