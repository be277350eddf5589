package ast

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/shade/token"
)

// AST

type Node interface {
	fmt.Stringer
	Span() token.Span
}

type Expr interface {
	Node
	isExpr()
}

type Stmt interface {
	Node
	isStmt()
}

// Unit is the value of the `()` literal.
type Unit struct{}

// Literal holds an int64, a float64 or a Unit.
type Literal struct {
	Where token.Span
	Value any
}

func (l Literal) String() string {
	return parenthesize("literal", literalText(l.Value)).String()
}

func (l *Literal) Span() token.Span {
	return l.Where
}

func (*Literal) isExpr() {}

var _ Expr = &Literal{}

type Ident struct {
	Where token.Span
	Name  string
}

func (i Ident) String() string {
	return parenthesize("var", i.Name).String()
}

func (i *Ident) Span() token.Span {
	return i.Where
}

func (*Ident) isExpr() {}

var _ Expr = &Ident{}

type Unary struct {
	Where   token.Span
	Op      Op
	Operand Expr
}

func (u Unary) String() string {
	return parenthesize("unary", u.Op, u.Operand).String()
}

func (u *Unary) Span() token.Span {
	return u.Where
}

func (*Unary) isExpr() {}

var _ Expr = &Unary{}

type Binary struct {
	Where token.Span
	Op    Op
	Left  Expr
	Right Expr
}

func (b Binary) String() string {
	return parenthesize("binary", b.Op, b.Left, b.Right).String()
}

func (b *Binary) Span() token.Span {
	return b.Where
}

func (*Binary) isExpr() {}

var _ Expr = &Binary{}

// Function is `param: body`.
type Function struct {
	Where token.Span
	Param string
	Body  Expr
}

func (f Function) String() string {
	return parenthesize("fn", f.Param, f.Body).String()
}

func (f *Function) Span() token.Span {
	return f.Where
}

func (*Function) isExpr() {}

var _ Expr = &Function{}

// Apply is juxtaposition: `f x`.
type Apply struct {
	Where token.Span
	Func  Expr
	Arg   Expr
}

func (a Apply) String() string {
	return parenthesize("apply", a.Func, a.Arg).String()
}

func (a *Apply) Span() token.Span {
	return a.Where
}

func (*Apply) isExpr() {}

var _ Expr = &Apply{}

type List struct {
	Where token.Span
	Elems []Expr
}

func (l List) String() string {
	return parenthesize("list", concat(l.Elems)).String()
}

func (l *List) Span() token.Span {
	return l.Where
}

func (*List) isExpr() {}

var _ Expr = &List{}

// Assign is `name = expr`.
type Assign struct {
	Where token.Span
	Name  string
	Expr  Expr
}

func (a Assign) String() string {
	return parenthesize("assign", a.Name, a.Expr).String()
}

func (a *Assign) Span() token.Span {
	return a.Where
}

func (*Assign) isStmt() {}

var _ Stmt = &Assign{}

// FnDef is `name = param: body`.
type FnDef struct {
	Where token.Span
	Name  string
	Param string
	Body  Expr
}

func (f FnDef) String() string {
	return parenthesize("def", f.Name, f.Param, f.Body).String()
}

func (f *FnDef) Span() token.Span {
	return f.Where
}

func (*FnDef) isStmt() {}

var _ Stmt = &FnDef{}

type ExprStmt struct {
	Expr Expr
}

func (e ExprStmt) String() string {
	return e.Expr.String()
}

func (e *ExprStmt) Span() token.Span {
	return e.Expr.Span()
}

func (*ExprStmt) isStmt() {}

var _ Stmt = &ExprStmt{}

type concatenated []Expr

func concat(elems []Expr) concatenated {
	return concatenated(elems)
}

func (c concatenated) String() string {
	var b strings.Builder
	for i, e := range c {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}

type parenthesized struct {
	name  string
	elems []any
}

func parenthesize(name string, elems ...any) parenthesized {
	return parenthesized{name: name, elems: elems}
}

func (p parenthesized) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(p.name)
	for _, elem := range p.elems {
		s := fmt.Sprint(elem)
		if s == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(s)
	}
	b.WriteString(")")
	return b.String()
}
