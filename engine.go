// Package rustegex compiles a small regular expression grammar into one of
// three interchangeable matching back-ends and answers membership queries
// against it: "does this input lie in the language of the pattern?"
//
// The grammar supports literals, concatenation, alternation (|) and the
// *, + and ? quantifiers, plus backslash-escaping of any scalar. It does
// not support capturing groups, anchors, character classes, counted
// repetitions, backreferences or lookaround.
//
// Three back-ends share the same parser and AST and are guaranteed to
// agree on every pattern:
//
//   - "dfa" builds a deterministic automaton by subset construction ahead
//     of time and matches in O(|input|) with no allocation.
//   - "vm" compiles to linear bytecode and matches with a lockstep
//     thread-set interpreter ("Pike VM") in O(|program|·|input|).
//   - "derivative" evaluates Brzozowski derivatives over a normalized copy
//     of the AST, translated once at construction, in
//     O(|input|·normalization cost).
//
// Basic usage:
//
//	eng, err := rustegex.New(`a+b`, "dfa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if eng.IsMatch("aaab") {
//	    fmt.Println("matched!")
//	}
//
// An Engine is immutable after construction and safe to share by readers
// across goroutines; see the package-level concurrency note on Engine.
package rustegex

import (
	"github.com/lapla-cogito/rustegex/internal/derivative"
	"github.com/lapla-cogito/rustegex/internal/dfa"
	"github.com/lapla-cogito/rustegex/internal/nfa"
	"github.com/lapla-cogito/rustegex/internal/syntax"
	"github.com/lapla-cogito/rustegex/internal/vm"
)

// Engine is a compiled pattern bound to one back-end. Construction does
// all of the work the chosen back-end requires up front (building a DFA,
// compiling bytecode, or normalizing the derivative term); IsMatch never
// mutates the Engine itself, so a single Engine is safe to call IsMatch
// on concurrently from many goroutines. Each back-end's own per-call
// scratch state (VM thread sets, the derivative memo table) is allocated
// fresh inside IsMatch rather than stored on the Engine.
type Engine struct {
	pattern string
	engine  string

	dfa   *dfa.DFA
	vm    *vm.VM
	deriv *derivative.Matcher
}

// New parses pattern and builds the back-end named by engine, which must
// be exactly "dfa", "vm" or "derivative". Any other value returns an
// *UnknownEngineError. A syntax error in pattern returns a
// *syntax.ParseError; its Offset and Kind are stable across all three
// selectors for the same invalid pattern.
func New(pattern, engine string) (*Engine, error) {
	switch engine {
	case "dfa", "vm", "derivative":
	default:
		return nil, &UnknownEngineError{Name: engine}
	}

	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	e := &Engine{pattern: pattern, engine: engine}
	switch engine {
	case "dfa":
		e.dfa = dfa.Build(nfa.Compile(ast))
	case "vm":
		e.vm = vm.New(vm.Compile(ast))
	case "derivative":
		e.deriv = derivative.Compile(ast)
	}
	return e, nil
}

// MustNew is like New but panics if pattern fails to parse or engine is
// unrecognized. Useful for patterns known to be valid at init time.
func MustNew(pattern, engine string) *Engine {
	e, err := New(pattern, engine)
	if err != nil {
		panic("rustegex: New(" + pattern + ", " + engine + "): " + err.Error())
	}
	return e
}

// IsMatch reports whether input lies in the language of the compiled
// pattern. The result is identical across back-ends for the same pattern
// and input; which one you pick is purely a performance and footprint
// trade-off (see the package doc).
func (e *Engine) IsMatch(input string) bool {
	switch e.engine {
	case "dfa":
		return e.dfa.IsMatch(input)
	case "vm":
		return e.vm.IsMatch(input)
	case "derivative":
		return e.deriv.IsMatch(input)
	default:
		panic("rustegex: Engine has no back-end set")
	}
}

// String returns the source pattern the Engine was compiled from.
func (e *Engine) String() string {
	return e.pattern
}

// Selector reports which back-end selector this Engine was built with
// ("dfa", "vm" or "derivative").
func (e *Engine) Selector() string {
	return e.engine
}
