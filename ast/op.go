package ast

import (
	"fmt"

	"github.com/takoeight0821/shade/token"
)

type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Prec returns the binding power of op as an infix operator.
func (op Op) Prec() int {
	switch op {
	case Mul, Div, Mod:
		return 2
	default:
		return 1
	}
}

func (op Op) IsUnary() bool {
	return op == Add || op == Sub
}

func (op Op) IsBinary() bool {
	return op >= Add && op <= Mod
}

func OpFromToken(kind token.Kind) (Op, bool) {
	//exhaustive:ignore
	switch kind {
	case token.PLUS:
		return Add, true
	case token.DASH:
		return Sub, true
	case token.STAR:
		return Mul, true
	case token.SLASH:
		return Div, true
	case token.PERCENT:
		return Mod, true
	default:
		return 0, false
	}
}
