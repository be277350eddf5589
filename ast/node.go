package ast

import "fmt"

// NodeKind tags an entry of the flat parse-tree stream.
// The stream is post-order: a construct's children precede it.
type NodeKind int

const (
	// Token is a consumed token with no structural meaning of its own.
	Token NodeKind = iota

	// Function declaration `x: body`.
	FnDecl
	FnArg

	// Assignment `name = expr`.
	AssignNode
	LAssign

	// Function application. It is the only node that consumes no token.
	FnApp

	// `(` expr `)`
	AtomBegin
	AtomEnd

	// A use of a variable.
	IdentValue
)

func (k NodeKind) String() string {
	switch k {
	case Token:
		return "Token"
	case FnDecl:
		return "Function Declaration"
	case FnArg:
		return "Function Argument"
	case AssignNode:
		return "Assign statement"
	case LAssign:
		return "Left side of the assignment"
	case FnApp:
		return "Function Application"
	case AtomBegin:
		return "Atom Begin"
	case AtomEnd:
		return "Atom End"
	case IdentValue:
		return "Ident as value"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}
