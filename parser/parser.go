// Package parser turns a token buffer into syntax.
//
// Rules are built from backtracking combinators over a State. Two grammars
// share the machinery: the expression grammar builds ast nodes, and the
// flat grammar records a post-order stream of ast.NodeKind entries.
package parser

import (
	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/token"
)

// ParseStmt parses a whole buffer as one statement.
func ParseStmt(input *token.Buffer) (ast.Stmt, error) {
	return Run(NewState(input), exprGrammar().stmt)
}

// ParseExpr parses a whole buffer as one expression.
func ParseExpr(input *token.Buffer) (ast.Expr, error) {
	return Run(NewState(input), exprGrammar().expr)
}

// Trace parses a whole buffer with the flat grammar and returns the node
// stream. On failure the stream is empty.
func Trace(input *token.Buffer) ([]Node, error) {
	s := NewState(input)
	if _, err := Run(s, flatGrammar().stmt); err != nil {
		return nil, err
	}

	return s.Nodes(), nil
}
