package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/parser"
	"github.com/takoeight0821/shade/token"
)

func TestStateRestore(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "a b c d"))
	s.Push(ast.IdentValue)
	save := s.Save()
	before := s.Nodes()

	s.Stack(ast.LAssign)
	s.Push(ast.IdentValue)
	s.Pop()
	s.Mark(ast.FnApp)
	if s.Cursor() != 3 {
		t.Fatalf("cursor = %d, expected 3", s.Cursor())
	}

	s.Restore(save)
	if s.Cursor() != 1 {
		t.Errorf("cursor after restore = %d, expected 1", s.Cursor())
	}
	if diff := cmp.Diff(before, s.Nodes()); diff != "" {
		t.Errorf("nodes after restore mismatch (-want +got):\n%s", diff)
	}
	if s.StackLen() != 0 {
		t.Errorf("stack length after restore = %d, expected 0", s.StackLen())
	}
}

func TestStateCursorFollowsStack(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "x : y"))
	s.Push(ast.FnArg)
	s.Stack(ast.FnDecl)
	// The stacked `:` is the most recent consumption.
	if s.Cursor() != 2 {
		t.Fatalf("cursor = %d, expected 2", s.Cursor())
	}
	if s.Peek().Lexeme != "y" {
		t.Errorf("current token %v, expected y", s.Peek())
	}
	save := s.Save()
	s.Push(ast.IdentValue)
	s.Restore(save)
	if s.Cursor() != 2 {
		t.Errorf("cursor after restore = %d, expected 2", s.Cursor())
	}
}

func TestStateSkipsComments(t *testing.T) {
	t.Parallel()

	buf := lex(t, "-- leading\nx -{ inner }- y")
	s := parser.NewState(buf)
	var lexemes []string
	for !s.AtEnd() {
		lexemes = append(lexemes, s.Peek().Lexeme)
		s.Push(ast.Token)
	}
	if diff := cmp.Diff([]string{"x", "y"}, lexemes); diff != "" {
		t.Errorf("significant tokens mismatch (-want +got):\n%s", diff)
	}
	// Handles still point into the full buffer.
	for _, n := range s.Nodes() {
		if buf.Kind(n.Token) != token.IDENT {
			t.Errorf("node %v points at %v", n, buf.Kind(n.Token))
		}
	}
}

func TestStateRestorePastPopPanics(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "( x )"))
	s.Stack(ast.AtomBegin)
	save := s.Save()
	s.Pop()

	defer func() {
		if recover() == nil {
			t.Errorf("expected Restore to panic")
		}
	}()
	s.Restore(save)
}

func TestStateErrorsRollBack(t *testing.T) {
	t.Parallel()

	s := parser.NewState(lex(t, "x"))
	save := s.Save()
	s.Error(parser.InvalidLiteralError{Lexeme: "x", Reason: "test"})
	if len(s.Errors()) != 1 {
		t.Fatalf("errors = %v", s.Errors())
	}
	s.Restore(save)
	if len(s.Errors()) != 0 {
		t.Errorf("errors after restore = %v", s.Errors())
	}
}
