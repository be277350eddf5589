package eval

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/shade/ast"
)

type UnboundIdentifierError struct {
	Name string
}

func (e UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier %q", e.Name)
}

// TypeMismatchError is an operator applied to operands it does not accept.
type TypeMismatchError struct {
	Op       ast.Op
	Operands []string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: cannot apply %v to %s", e.Op, strings.Join(e.Operands, " and "))
}

type NotCallableError struct {
	Kind string
}

func (e NotCallableError) Error() string {
	return fmt.Sprintf("%s is not callable", e.Kind)
}

type NonUniformListError struct {
	Expected string
	Found    string
}

func (e NonUniformListError) Error() string {
	return fmt.Sprintf("list elements must share a type: expected %s, found %s", e.Expected, e.Found)
}

type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

// CallDepthError is closure calls nested deeper than Limit.
type CallDepthError struct {
	Limit int
}

func (e CallDepthError) Error() string {
	return fmt.Sprintf("call depth exceeds %d", e.Limit)
}
