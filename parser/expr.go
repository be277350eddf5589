package parser

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/token"
	"github.com/takoeight0821/shade/utils"
)

type exprRules struct {
	stmt Parser[ast.Stmt]
	expr Parser[ast.Expr]
}

var exprGrammar = sync.OnceValue(newExprRules)

type operation struct {
	op  token.Token
	rhs ast.Expr
}

func newExprRules() *exprRules {
	r := &exprRules{}
	expr := Lazy(func() Parser[ast.Expr] { return r.expr })

	// number = INTEGER | FLOAT ;
	var number Parser[ast.Expr] = func(s *State) (ast.Expr, bool) {
		t := s.Peek()
		switch t.Kind {
		case token.INTEGER:
			s.Push(ast.Token)
			v, err := parseInt(t.Lexeme)
			if err != nil {
				s.Error(utils.ErrorAt(t.Span, err))
			}
			return &ast.Literal{Where: t.Span, Value: v}, true
		case token.FLOAT:
			s.Push(ast.Token)
			v, err := parseFloat(t.Lexeme)
			if err != nil {
				s.Error(utils.ErrorAt(t.Span, err))
			}
			return &ast.Literal{Where: t.Span, Value: v}, true
		default:
			s.Expect(token.INTEGER.String())
			s.Expect(token.FLOAT.String())
			return nil, false
		}
	}

	ident := Map(Token(token.IDENT), func(t token.Token) ast.Expr {
		return &ast.Ident{Where: t.Span, Name: t.Lexeme}
	})

	// unit = "(" ")" ;
	unit := Seq2(Token(token.LEFTPAREN), Token(token.RIGHTPAREN), func(open, closing token.Token) ast.Expr {
		return &ast.Literal{Where: token.Around(open.Span, closing.Span), Value: ast.Unit{}}
	})

	// list = "[" (expr ("," expr)*)? "]" ;
	elems := Choice(
		Seq2(expr, ZeroOrMore(Seq2(Token(token.COMMA), expr, func(_ token.Token, e ast.Expr) ast.Expr { return e })),
			func(first ast.Expr, rest []ast.Expr) []ast.Expr { return append([]ast.Expr{first}, rest...) }),
		Map(Peek(Token(token.RIGHTBRACKET)), func(token.Token) []ast.Expr { return nil }),
	)
	list := Seq3(Token(token.LEFTBRACKET), elems, Token(token.RIGHTBRACKET),
		func(open token.Token, es []ast.Expr, closing token.Token) ast.Expr {
			return &ast.List{Where: token.Around(open.Span, closing.Span), Elems: es}
		})

	// term = number | IDENT | unit | "(" expr ")" | "{" expr "}" | list ;
	term := Choice(
		number,
		ident,
		unit,
		Between(Token(token.LEFTPAREN), expr, Token(token.RIGHTPAREN)),
		Between(Token(token.LEFTBRACE), expr, Token(token.RIGHTBRACE)),
		list,
	)

	sign := Choice(Token(token.PLUS), Token(token.DASH))

	// unary = ("+" | "-") term ;
	unary := Seq2(sign, term, func(op token.Token, operand ast.Expr) ast.Expr {
		return &ast.Unary{Where: token.Around(op.Span, operand.Span()), Op: toOp(op), Operand: operand}
	})

	// function = IDENT ":" expr ;
	function := Seq3(Token(token.IDENT), Token(token.COLON), expr, func(param, _ token.Token, body ast.Expr) ast.Expr {
		return &ast.Function{Where: token.Around(param.Span, body.Span()), Param: param.Lexeme, Body: body}
	})

	// callee = "(" function ")" | IDENT ;
	callee := Choice(Between(Token(token.LEFTPAREN), function, Token(token.RIGHTPAREN)), ident)

	// argument = expr ;
	// An argument may not start with a sign: `f -1` is a subtraction.
	argument := Seq2(Not(sign), expr, func(_ Unit, arg ast.Expr) ast.Expr { return arg })

	// apply = callee argument? ;
	// The callee is parsed once whether or not an argument follows.
	apply := Seq2(callee, Optional(argument), func(fn ast.Expr, arg ast.Expr) ast.Expr {
		if arg == nil {
			return fn
		}
		return &ast.Apply{Where: token.Around(fn.Span(), arg.Span()), Func: fn, Arg: arg}
	})

	// factor = unary | apply | term ;
	factor := Choice(unary, apply, term)

	binary := func(operand Parser[ast.Expr], ops ...token.Kind) Parser[ast.Expr] {
		alts := make([]Parser[token.Token], len(ops))
		for i, kind := range ops {
			alts[i] = Token(kind)
		}
		tail := Seq2(Choice(alts...), operand, func(op token.Token, rhs ast.Expr) operation {
			return operation{op: op, rhs: rhs}
		})
		return Seq2(operand, ZeroOrMore(tail), foldLeft)
	}

	// product = factor (("*" | "/" | "%") factor)* ;
	product := binary(factor, token.STAR, token.SLASH, token.PERCENT)
	// sum = product (("+" | "-") product)* ;
	sum := binary(product, token.PLUS, token.DASH)

	// expr = function | sum ;
	r.expr = Choice(function, sum)

	// assign = IDENT "=" expr ;
	assign := Seq3(Token(token.IDENT), Token(token.EQUAL), expr, func(name, _ token.Token, e ast.Expr) ast.Stmt {
		where := token.Around(name.Span, e.Span())
		if fn, ok := e.(*ast.Function); ok {
			return &ast.FnDef{Where: where, Name: name.Lexeme, Param: fn.Param, Body: fn.Body}
		}
		return &ast.Assign{Where: where, Name: name.Lexeme, Expr: e}
	})

	// stmt = assign | expr ;
	r.stmt = Choice(assign, Map(r.expr, func(e ast.Expr) ast.Stmt { return &ast.ExprStmt{Expr: e} }))

	return r
}

func foldLeft(first ast.Expr, rest []operation) ast.Expr {
	for _, o := range rest {
		first = &ast.Binary{
			Where: token.Around(first.Span(), o.rhs.Span()),
			Op:    toOp(o.op),
			Left:  first,
			Right: o.rhs,
		}
	}

	return first
}

func toOp(t token.Token) ast.Op {
	op, ok := ast.OpFromToken(t.Kind)
	if !ok {
		log.Panicf("invalid operator %v", t)
	}

	return op
}

// parseInt reads the value of an INTEGER lexeme.
// Decimal is tried first, then the 0x and 0b forms.
func parseInt(lexeme string) (int64, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err == nil {
		return v, nil
	}

	switch {
	case errors.Is(err, strconv.ErrRange):
	case strings.HasPrefix(lexeme, "0x"):
		v, err = strconv.ParseInt(lexeme[2:], 16, 64)
	case strings.HasPrefix(lexeme, "0b"):
		v, err = strconv.ParseInt(lexeme[2:], 2, 64)
	default:
		log.Panicf("incorrectly tokenized integer %q", lexeme)
	}
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, InvalidLiteralError{Lexeme: lexeme, Reason: "integer overflows 64 bits"}
		}
		log.Panicf("incorrectly tokenized integer %q", lexeme)
	}

	return v, nil
}

func parseFloat(lexeme string) (float64, error) {
	v, err := strconv.ParseFloat(lexeme, 64)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, InvalidLiteralError{Lexeme: lexeme, Reason: "float out of range"}
	default:
		return 0, InvalidLiteralError{Lexeme: lexeme, Reason: "malformed float"}
	}
}
