package parser

import (
	"sync"

	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/token"
)

// The flat grammar covers assignments, functions, applications and
// parenthesized atoms, and records the parse as a post-order node stream
// instead of building a tree.

type flatRules struct {
	stmt Parser[Unit]
	expr Parser[Unit]
}

var flatGrammar = sync.OnceValue(newFlatRules)

func newFlatRules() *flatRules {
	r := &flatRules{}
	expr := Lazy(func() Parser[Unit] { return r.expr })

	basic := func(kind token.Kind, node ast.NodeKind) Parser[Unit] {
		return Discard(Emit(kind, node))
	}
	deferred := func(kind token.Kind, node ast.NodeKind) Parser[Unit] {
		return Discard(Defer(kind, node))
	}

	// atom(p) = "(" p ")" ;
	atom := func(p Parser[Unit]) Parser[Unit] {
		return Discard(Seq(
			deferred(token.LEFTPAREN, ast.AtomBegin),
			p,
			deferred(token.RIGHTPAREN, ast.AtomEnd),
			Pop(),
			Pop(),
		))
	}

	// function = IDENT ":" expr ;
	function := Discard(Seq(
		basic(token.IDENT, ast.FnArg),
		deferred(token.COLON, ast.FnDecl),
		expr,
		Pop(),
	))

	// fnApp = (atom(function) | IDENT) expr ;
	fnApp := Discard(Seq(
		Choice(atom(function), basic(token.IDENT, ast.IdentValue)),
		expr,
		Mark(ast.FnApp),
	))

	// expr = fnApp | atom(expr) | function | IDENT ;
	r.expr = Choice(fnApp, atom(expr), function, basic(token.IDENT, ast.IdentValue))

	// assign = IDENT "=" expr ;
	assign := Discard(Seq(
		deferred(token.IDENT, ast.LAssign),
		basic(token.EQUAL, ast.AssignNode),
		expr,
		Pop(),
	))

	// stmt = assign | expr ;
	r.stmt = Choice(assign, r.expr)

	return r
}
