package parser

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/shade/token"
)

type UnexpectedTokenError struct {
	Found    token.Token
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %v %q: expected %s", e.Found.Kind, e.Found.Lexeme, strings.Join(e.Expected, ", "))
}

type UnexpectedEndOfInputError struct {
	Expected []string
}

func (e UnexpectedEndOfInputError) Error() string {
	return "unexpected end of input: expected " + strings.Join(e.Expected, ", ")
}

// InvalidLiteralError is a numeric literal that the lexer accepted but
// that has no value, such as an overflowing integer.
type InvalidLiteralError struct {
	Lexeme string
	Reason string
}

func (e InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal %q: %s", e.Lexeme, e.Reason)
}
