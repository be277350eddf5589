package ast

import (
	"log"
	"strconv"
	"strings"
)

// Repr is an interpretation of expressions, folded bottom-up by Fold.
type Repr[T any] interface {
	Literal(value any) T
	Ident(name string) T
	Unary(op Op, operand T) T
	Binary(op Op, left T, right T) T
	Function(param string, body T) T
	Apply(fn T, arg T) T
	List(elems []T) T
}

func Fold[T any](e Expr, r Repr[T]) T {
	switch e := e.(type) {
	case *Literal:
		return r.Literal(e.Value)
	case *Ident:
		return r.Ident(e.Name)
	case *Unary:
		return r.Unary(e.Op, Fold(e.Operand, r))
	case *Binary:
		return r.Binary(e.Op, Fold(e.Left, r), Fold(e.Right, r))
	case *Function:
		return r.Function(e.Param, Fold(e.Body, r))
	case *Apply:
		return r.Apply(Fold(e.Func, r), Fold(e.Arg, r))
	case *List:
		elems := make([]T, len(e.Elems))
		for i, elem := range e.Elems {
			elems[i] = Fold(elem, r)
		}
		return r.List(elems)
	default:
		log.Panicf("invalid node %v", e)
	}
	panic("unreachable")
}

// Format renders e back to source form.
func Format(e Expr) string {
	return Fold[source](e, sourceRepr{}).text
}

// Binding levels of source fragments. Higher binds tighter.
const (
	levelFunction = iota
	levelApply
	levelSum
	levelProduct
	levelUnary
	levelAtom
)

type source struct {
	text  string
	level int
}

func (s source) atLeast(level int) string {
	if s.level < level {
		return "(" + s.text + ")"
	}
	return s.text
}

type sourceRepr struct{}

var _ Repr[source] = sourceRepr{}

func (sourceRepr) Literal(value any) source {
	return source{text: literalText(value), level: levelAtom}
}

func (sourceRepr) Ident(name string) source {
	return source{text: name, level: levelAtom}
}

func (sourceRepr) Unary(op Op, operand source) source {
	return source{text: op.String() + operand.atLeast(levelAtom), level: levelUnary}
}

func binaryLevel(op Op) int {
	if op.Prec() == 2 {
		return levelProduct
	}
	return levelSum
}

func (sourceRepr) Binary(op Op, left source, right source) source {
	level := binaryLevel(op)
	// Left-associative: the right operand needs a strictly tighter level.
	text := left.atLeast(level) + " " + op.String() + " " + right.atLeast(level+1)
	return source{text: text, level: level}
}

func (sourceRepr) Function(param string, body source) source {
	return source{text: param + ": " + body.text, level: levelFunction}
}

func (sourceRepr) Apply(fn source, arg source) source {
	callee := fn.text
	if fn.level != levelAtom {
		callee = "(" + callee + ")"
	}
	// A leading sign would read back as subtraction.
	argument := arg.atLeast(levelSum)
	if strings.HasPrefix(argument, "-") || strings.HasPrefix(argument, "+") {
		argument = "(" + argument + ")"
	}
	return source{text: callee + " " + argument, level: levelApply}
}

func (sourceRepr) List(elems []source) source {
	texts := make([]string, len(elems))
	for i, elem := range elems {
		texts[i] = elem.text
	}
	return source{text: "[" + strings.Join(texts, ", ") + "]", level: levelAtom}
}

func literalText(value any) string {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case Unit:
		return "()"
	default:
		log.Panicf("invalid literal %v", value)
	}
	panic("unreachable")
}
