package lexer

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/shade/token"
)

type UnexpectedCharacterError struct {
	Where token.Location
	Char  rune
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character: %q at %v", e.Char, e.Where)
}

type MalformedLiteralError struct {
	Where  token.Location
	Lexeme string
}

func (e MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed integer literal %q at %v", e.Lexeme, e.Where)
}

type UnterminatedStringError struct {
	Where token.Location
}

func (e UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string starting at %v", e.Where)
}

type UnterminatedCommentError struct {
	Where token.Location
}

func (e UnterminatedCommentError) Error() string {
	return fmt.Sprintf("unterminated comment starting at %v", e.Where)
}

// IsFatal reports whether err stopped lexing before the end of input.
func IsFatal(err error) bool {
	var str UnterminatedStringError
	var comment UnterminatedCommentError

	return errors.As(err, &str) || errors.As(err, &comment)
}
