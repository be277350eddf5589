package eval

import (
	"strconv"
	"strings"

	"github.com/takoeight0821/shade/ast"
)

type Value interface {
	String() string
	Kind() string
}

type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Int) Kind() string {
	return "Int"
}

var _ Value = Int(0)

// Float prints without a trailing fraction when it is integral: 139.0 is "139".
type Float float64

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (Float) Kind() string {
	return "Float"
}

var _ Value = Float(0)

// Unit is the value of `()` and of statements that only bind.
type Unit struct{}

func (Unit) String() string {
	return ""
}

func (Unit) Kind() string {
	return "Unit"
}

var _ Value = Unit{}

type List []Value

func (l List) String() string {
	var b strings.Builder
	b.WriteString("[")
	for _, elem := range l {
		b.WriteString(" ")
		b.WriteString(elem.String())
	}
	b.WriteString(" ]")
	return b.String()
}

func (List) Kind() string {
	return "List"
}

var _ Value = List{}

// Closure is a function value together with the scope it was created in.
type Closure struct {
	Param string
	Body  ast.Expr
	Env   *Context
}

func (c Closure) String() string {
	return c.Param + " -> " + ast.Format(c.Body)
}

func (Closure) Kind() string {
	return "Function"
}

var _ Value = Closure{}

func negate(v Value) (Value, bool) {
	switch v := v.(type) {
	case Int:
		return -v, true
	case Float:
		return -v, true
	default:
		return nil, false
	}
}
