// Package eval is a tree-walking evaluator for parsed statements.
package eval

import (
	"log"

	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/utils"
)

// Evaluator holds the global scope across statements.
type Evaluator struct {
	global *Context
}

func NewEvaluator() *Evaluator {
	return &Evaluator{global: NewContext()}
}

func (ev *Evaluator) Context() *Context {
	return ev.global
}

// Reset drops every binding.
func (ev *Evaluator) Reset() {
	ev.global = NewContext()
}

func (ev *Evaluator) Lookup(name string) (Value, bool) {
	return ev.global.Get(name)
}

func (ev *Evaluator) Exec(stmt ast.Stmt) (Value, error) {
	return Exec(stmt, ev.global)
}

func (ev *Evaluator) Eval(expr ast.Expr) (Value, error) {
	return Eval(expr, ev.global)
}

// MaxCallDepth bounds the number of nested closure calls in one statement.
const MaxCallDepth = 10000

// machine carries the state of one evaluation.
type machine struct {
	depth int
}

// Exec runs a statement in ctx. Bindings return Unit and take effect only
// when their right-hand side evaluates without error.
func Exec(stmt ast.Stmt, ctx *Context) (Value, error) {
	m := &machine{}
	switch stmt := stmt.(type) {
	case *ast.Assign:
		v, err := m.eval(ctx, stmt.Expr)
		if err != nil {
			return nil, err
		}
		ctx.Set(stmt.Name, v)
		return Unit{}, nil
	case *ast.FnDef:
		ctx.Set(stmt.Name, Closure{Param: stmt.Param, Body: stmt.Body, Env: ctx})
		return Unit{}, nil
	case *ast.ExprStmt:
		return m.eval(ctx, stmt.Expr)
	default:
		log.Panicf("invalid statement %v", stmt)
	}
	panic("unreachable")
}

// Eval evaluates expr in ctx.
func Eval(expr ast.Expr, ctx *Context) (Value, error) {
	return (&machine{}).eval(ctx, expr)
}

func (m *machine) eval(ctx *Context, expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return evalLiteral(e)
	case *ast.Ident:
		if v, ok := ctx.Get(e.Name); ok {
			return v, nil
		}
		return nil, utils.ErrorAt(e.Where, UnboundIdentifierError{Name: e.Name})
	case *ast.Unary:
		operand, err := m.eval(ctx, e.Operand)
		if err != nil {
			return nil, err
		}
		return evalUnary(e, operand)
	case *ast.Binary:
		left, err := m.eval(ctx, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := m.eval(ctx, e.Right)
		if err != nil {
			return nil, err
		}
		return evalBinary(e, left, right)
	case *ast.Function:
		return Closure{Param: e.Param, Body: e.Body, Env: ctx}, nil
	case *ast.Apply:
		fn, err := m.eval(ctx, e.Func)
		if err != nil {
			return nil, err
		}
		closure, ok := fn.(Closure)
		if !ok {
			return nil, utils.ErrorAt(e.Func.Span(), NotCallableError{Kind: fn.Kind()})
		}
		arg, err := m.eval(ctx, e.Arg)
		if err != nil {
			return nil, err
		}
		if m.depth >= MaxCallDepth {
			return nil, utils.ErrorAt(e.Where, CallDepthError{Limit: MaxCallDepth})
		}
		m.depth++
		defer func() { m.depth-- }()
		scope := newContext(closure.Env)
		scope.Set(closure.Param, arg)
		return m.eval(scope, closure.Body)
	case *ast.List:
		elems := make(List, len(e.Elems))
		for i, elem := range e.Elems {
			v, err := m.eval(ctx, elem)
			if err != nil {
				return nil, err
			}
			if i > 0 && v.Kind() != elems[0].Kind() {
				return nil, utils.ErrorAt(elem.Span(), NonUniformListError{Expected: elems[0].Kind(), Found: v.Kind()})
			}
			elems[i] = v
		}
		return elems, nil
	default:
		log.Panicf("invalid expression %v", expr)
	}
	panic("unreachable")
}

func evalLiteral(lit *ast.Literal) (Value, error) {
	switch v := lit.Value.(type) {
	case int64:
		return Int(v), nil
	case float64:
		return Float(v), nil
	case ast.Unit:
		return Unit{}, nil
	default:
		log.Panicf("invalid literal %v", lit.Value)
	}
	panic("unreachable")
}

func evalUnary(e *ast.Unary, operand Value) (Value, error) {
	switch e.Op {
	case ast.Sub:
		if v, ok := negate(operand); ok {
			return v, nil
		}
	case ast.Add:
		switch operand.(type) {
		case Int, Float:
			return operand, nil
		}
	}

	return nil, utils.ErrorAt(e.Where, TypeMismatchError{Op: e.Op, Operands: []string{operand.Kind()}})
}

func evalBinary(e *ast.Binary, left, right Value) (Value, error) {
	switch l := left.(type) {
	case Int:
		if r, ok := right.(Int); ok {
			v, err := intOp(e.Op, l, r)
			if err != nil {
				return nil, utils.ErrorAt(e.Where, err)
			}
			return v, nil
		}
	case Float:
		if r, ok := right.(Float); ok {
			if v, ok := floatOp(e.Op, l, r); ok {
				return v, nil
			}
		}
	}

	return nil, utils.ErrorAt(e.Where, TypeMismatchError{Op: e.Op, Operands: []string{left.Kind(), right.Kind()}})
}

// intOp wraps on overflow.
func intOp(op ast.Op, l, r Int) (Value, error) {
	switch op {
	case ast.Add:
		return l + r, nil
	case ast.Sub:
		return l - r, nil
	case ast.Mul:
		return l * r, nil
	case ast.Div:
		if r == 0 {
			return nil, DivisionByZeroError{}
		}
		return l / r, nil
	case ast.Mod:
		if r == 0 {
			return nil, DivisionByZeroError{}
		}
		return l % r, nil
	default:
		log.Panicf("invalid operator %v", op)
	}
	panic("unreachable")
}

// floatOp has no remainder.
func floatOp(op ast.Op, l, r Float) (Value, bool) {
	switch op {
	case ast.Add:
		return l + r, true
	case ast.Sub:
		return l - r, true
	case ast.Mul:
		return l * r, true
	case ast.Div:
		return l / r, true
	default:
		return nil, false
	}
}
