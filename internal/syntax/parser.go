package syntax

// parser is a recursive-descent parser over the grammar documented in
// ast.go. The two outermost levels (alternation and concatenation) are
// built with explicit loops rather than recursive calls, so a pattern with
// many flat alternatives or concatenated atoms (the boundary case in
// spec.md §8, "deeply nested alternations (≥100)") never grows the Go call
// stack with the alternative count — only parenthesized nesting does, and
// that is bounded by how deeply the caller actually wrote the pattern.
type parser struct {
	lex  *lexer
	look token
}

// Parse lexes and parses pattern into an AST, or returns a *ParseError.
func Parse(pattern string) (*Node, error) {
	lex := newLexer(pattern)
	look, err := lex.scan()
	if err != nil {
		return nil, err
	}
	p := &parser{lex: lex, look: look}

	ast, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.look.kind != tokEOF {
		return nil, &ParseError{Offset: p.look.offset, Kind: UnbalancedParen}
	}
	return ast, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.scan()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

func (p *parser) parseAlt() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	for p.look.kind == tokUnion {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = NewAlt(left, right)
	}

	return left, nil
}

func (p *parser) parseConcat() (*Node, error) {
	var result *Node

	for p.look.kind != tokRParen && p.look.kind != tokUnion && p.look.kind != tokEOF {
		next, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = next
		} else {
			result = NewConcat(result, next)
		}
	}

	if result == nil {
		return Empty, nil
	}
	return result, nil
}

func (p *parser) parsePostfix() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	switch p.look.kind {
	case tokStar:
		atom = NewStar(atom)
	case tokPlus:
		atom = NewPlus(atom)
	case tokQuestion:
		atom = NewQuestion(atom)
	default:
		return atom, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	// Two consecutive quantifiers ("a**") are a parse error rather than
	// being accepted or silently collapsed.
	if isQuantifier(p.look.kind) {
		return nil, &ParseError{Offset: p.look.offset, Kind: UnexpectedQuantifier}
	}

	return atom, nil
}

func (p *parser) parseAtom() (*Node, error) {
	switch p.look.kind {
	case tokChar:
		c := p.look.char
		if err := p.advance(); err != nil {
			return nil, err
		}
		return NewChar(c), nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.look.kind != tokRParen {
			return nil, &ParseError{Offset: p.look.offset, Kind: UnbalancedParen}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokStar, tokPlus, tokQuestion:
		return nil, &ParseError{Offset: p.look.offset, Kind: UnexpectedQuantifier}
	default:
		return nil, &ParseError{Offset: p.look.offset, Kind: UnexpectedCharacter}
	}
}

func isQuantifier(k tokenKind) bool {
	return k == tokStar || k == tokPlus || k == tokQuestion
}
