package syntax

import "testing"

func mustParse(t *testing.T, pattern string) *Node {
	t.Helper()
	node, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", pattern, err)
	}
	return node
}

func TestParseLiteralsAndQuantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		want    *Node
	}{
		{"", Empty},
		{"a", NewChar('a')},
		{"a|b", NewAlt(NewChar('a'), NewChar('b'))},
		{"a|b*", NewAlt(NewChar('a'), NewStar(NewChar('b')))},
		{"a|b+", NewAlt(NewChar('a'), NewPlus(NewChar('b')))},
		{"a|b?", NewAlt(NewChar('a'), NewQuestion(NewChar('b')))},
		{"a(b|c)", NewConcat(NewChar('a'), NewAlt(NewChar('b'), NewChar('c')))},
		{"ab(cd|)", NewConcat(
			NewConcat(NewChar('a'), NewChar('b')),
			NewAlt(NewConcat(NewChar('c'), NewChar('d')), Empty),
		)},
		{"a\\|b", NewConcat(NewConcat(NewChar('a'), NewChar('|')), NewChar('b'))},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := mustParse(t, tt.pattern)
			if !equal(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseEmptyAlternativeAdjacentToQuantifier(t *testing.T) {
	// (|)* denotes {epsilon} repeated; open question (a) says accept it.
	got := mustParse(t, "(|)*")
	want := NewStar(NewAlt(Empty, Empty))
	if !equal(got, want) {
		t.Errorf("Parse(\"(|)*\") = %+v, want %+v", got, want)
	}
}

func TestParseIdempotent(t *testing.T) {
	patterns := []string{"a|b*", "ab(cd|)", "a+b", "(p(erl|ython|hp)|ruby)"}
	for _, pattern := range patterns {
		first := mustParse(t, pattern)
		second := mustParse(t, pattern)
		if !equal(first, second) {
			t.Errorf("Parse(%q) not idempotent: %+v != %+v", pattern, first, second)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern  string
		wantKind ErrorKind
	}{
		{"a(b", UnbalancedParen},
		{")c", UnbalancedParen},
		{"*", UnexpectedQuantifier},
		{"+", UnexpectedQuantifier},
		{"a**", UnexpectedQuantifier},
		{"a\\", TrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got none", tt.pattern)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q): error %v is not a *ParseError", tt.pattern, err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("Parse(%q): kind = %v, want %v", tt.pattern, pe.Kind, tt.wantKind)
			}
		})
	}
}

func TestParseDeepAlternationDoesNotOverflow(t *testing.T) {
	pattern := "a"
	for i := 0; i < 500; i++ {
		pattern += "|a"
	}
	if _, err := Parse(pattern); err != nil {
		t.Fatalf("Parse of 500-way alternation failed: %v", err)
	}
}

// equal does a structural comparison since Node contains pointers.
func equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindEmpty:
		return true
	case KindChar:
		return a.Char == b.Char
	case KindConcat, KindAlt:
		return equal(a.Left, b.Left) && equal(a.Right, b.Right)
	case KindStar, KindPlus, KindQuestion:
		return equal(a.Inner, b.Inner)
	default:
		return false
	}
}
