package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/parser"
	"github.com/takoeight0821/shade/token"
)

func lexemes(ts []token.Token) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Lexeme
	}
	return out
}

func TestSeqRestoresOnFailure(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "x y 1"))
	p := parser.Seq(parser.Token(token.IDENT), parser.Token(token.IDENT), parser.Token(token.IDENT))
	if _, ok := p(s); ok {
		t.Fatalf("Seq succeeded on a non-identifier")
	}
	if s.Cursor() != 0 || len(s.Nodes()) != 0 {
		t.Errorf("state not restored: cursor %d, nodes %v", s.Cursor(), s.Nodes())
	}
}

func TestChoiceTriesInOrder(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "x 1"))
	first := parser.Seq(parser.Token(token.IDENT), parser.Token(token.IDENT))
	second := parser.Seq(parser.Token(token.IDENT), parser.Token(token.INTEGER))
	v, ok := parser.Choice(first, second)(s)
	if !ok {
		t.Fatalf("Choice failed")
	}
	if diff := cmp.Diff([]string{"x", "1"}, lexemes(v)); diff != "" {
		t.Errorf("Choice result mismatch (-want +got):\n%s", diff)
	}
	if len(s.Nodes()) != 2 {
		t.Errorf("nodes = %v, expected the second alternative only", s.Nodes())
	}
}

func TestRepetition(t *testing.T) {
	t.Parallel()

	ident := parser.Token(token.IDENT)

	s := parser.NewState(lex(t, "a b c 1"))
	v, ok := parser.ZeroOrMore(ident)(s)
	if !ok || len(v) != 3 {
		t.Errorf("ZeroOrMore = %v, %v", v, ok)
	}

	s = parser.NewState(lex(t, "1"))
	v, ok = parser.ZeroOrMore(ident)(s)
	if !ok || len(v) != 0 {
		t.Errorf("ZeroOrMore on no match = %v, %v", v, ok)
	}
	if _, ok := parser.OneOrMore(ident)(s); ok {
		t.Errorf("OneOrMore succeeded with no match")
	}

	// A rule that consumes nothing must not loop.
	s = parser.NewState(lex(t, "a"))
	v2, ok := parser.ZeroOrMore(parser.Mark(ast.FnApp))(s)
	if !ok || len(v2) != 0 || len(s.Nodes()) != 0 {
		t.Errorf("ZeroOrMore on an empty rule = %v, %v, %v", v2, ok, s.Nodes())
	}
}

func TestLookahead(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "x"))
	if _, ok := parser.Peek(parser.Token(token.IDENT))(s); !ok {
		t.Errorf("Peek failed")
	}
	if s.Cursor() != 0 {
		t.Errorf("Peek consumed input")
	}
	if _, ok := parser.Not(parser.Token(token.IDENT))(s); ok {
		t.Errorf("Not succeeded on a match")
	}
	if _, ok := parser.Not(parser.Token(token.INTEGER))(s); !ok {
		t.Errorf("Not failed on a mismatch")
	}
	if s.Cursor() != 0 || len(s.Nodes()) != 0 {
		t.Errorf("lookahead changed the state")
	}
}

func TestRunRequiresEnd(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "x y"))
	if _, err := parser.Run(s, parser.Token(token.IDENT)); err == nil {
		t.Errorf("Run accepted trailing input")
	}

	s = parser.NewState(lex(t, "x y"))
	v, err := parser.Run(s, parser.OneOrMore(parser.Token(token.IDENT)))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, lexemes(v)); diff != "" {
		t.Errorf("Run result mismatch (-want +got):\n%s", diff)
	}
}

func TestDeferAndPop(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "( x )"))
	p := parser.Seq(
		parser.Discard(parser.Defer(token.LEFTPAREN, ast.AtomBegin)),
		parser.Discard(parser.Emit(token.IDENT, ast.IdentValue)),
		parser.Discard(parser.Defer(token.RIGHTPAREN, ast.AtomEnd)),
		parser.Pop(),
		parser.Pop(),
	)
	if _, err := parser.Run(s, p); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	kinds := make([]ast.NodeKind, 0)
	for _, n := range s.Nodes() {
		kinds = append(kinds, n.Kind)
	}
	if diff := cmp.Diff([]ast.NodeKind{ast.IdentValue, ast.AtomEnd, ast.AtomBegin}, kinds); diff != "" {
		t.Errorf("node kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	p := parser.Optional(parser.Seq(parser.Token(token.IDENT), parser.Token(token.COLON)))

	s := parser.NewState(lex(t, "x 1"))
	v, ok := p(s)
	if !ok || v != nil {
		t.Fatalf("Optional = %v, %v", v, ok)
	}
	if s.Cursor() != 0 || len(s.Nodes()) != 0 {
		t.Errorf("state not restored: cursor %d, nodes %v", s.Cursor(), s.Nodes())
	}

	s = parser.NewState(lex(t, "x :"))
	v, ok = p(s)
	if !ok || len(v) != 2 {
		t.Errorf("Optional = %v, %v", v, ok)
	}
}
