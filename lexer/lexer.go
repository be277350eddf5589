package lexer

import (
	"errors"
	"strings"
	"unicode"

	"github.com/takoeight0821/shade/token"
)

// Lex tokenizes the whole source.
// The returned buffer is always EOF-terminated, even when err is fatal,
// so the tokens before the failure can be inspected.
func Lex(source string) (*token.Buffer, error) {
	l := New(source)

	var kinds []token.Kind
	var spans []token.Span

	for {
		t := l.Next()
		kinds = append(kinds, t.Kind)
		spans = append(spans, t.Span)
		if t.Kind == token.EOF {
			break
		}
	}

	return token.NewBuffer(source, kinds, spans), l.Err()
}

// Lexer produces tokens one at a time.
type Lexer struct {
	cursor *Cursor
	start  token.Location // start of current lexeme
	done   bool

	err   error // non-fatal diagnostics
	fatal error
}

func New(source string) *Lexer {
	return &Lexer{cursor: NewCursor(source)}
}

// Err returns every diagnostic reported so far.
func (l *Lexer) Err() error {
	return errors.Join(l.err, l.fatal)
}

// Next returns the next token. Once EOF has been returned, or a fatal
// error has occurred, it keeps returning EOF.
func (l *Lexer) Next() token.Token {
	if l.done {
		return l.eof()
	}

	l.cursor.SkipWhile(unicode.IsSpace)
	l.start = l.cursor.Location()

	c, ok := l.cursor.Advance()
	if !ok {
		l.done = true

		return l.eof()
	}

	switch {
	case c == '-':
		return l.dash()
	case c == '"':
		return l.string()
	case isAlpha(c):
		return l.identifier()
	case isDigit(c):
		return l.number(c)
	}

	if k, ok := token.LookupSymbol(c); ok {
		return l.token(k)
	}

	l.report(UnexpectedCharacterError{Where: l.start, Char: c})

	return l.token(token.UNRECOGNIZED)
}

func (l *Lexer) token(kind token.Kind) token.Token {
	span := l.cursor.SpanFrom(l.start)

	return token.Token{
		Kind:   kind,
		Lexeme: l.cursor.source[span.Start.Offset:span.End.Offset],
		Span:   span,
	}
}

func (l *Lexer) eof() token.Token {
	loc := l.cursor.Location()

	return token.Token{Kind: token.EOF, Lexeme: "", Span: token.Span{Start: loc, End: loc}}
}

func (l *Lexer) report(err error) {
	l.err = errors.Join(l.err, err)
}

func (l *Lexer) abort(err error) token.Token {
	l.fatal = err
	l.done = true

	return l.eof()
}

// dash resolves `-`: a line comment, a block comment or the dash symbol.
func (l *Lexer) dash() token.Token {
	next, _ := l.cursor.Peek()
	switch next {
	case '-':
		l.cursor.SkipWhile(func(r rune) bool { return r != '\n' })

		return l.token(token.COMMENT)
	case '{':
		l.cursor.Advance()

		return l.blockComment()
	default:
		return l.token(token.DASH)
	}
}

// blockComment scans `-{ ... }-`. Nested pairs must balance.
func (l *Lexer) blockComment() token.Token {
	depth := 1
	for depth > 0 {
		c, ok := l.cursor.Advance()
		if !ok {
			return l.abort(UnterminatedCommentError{Where: l.start})
		}
		next, _ := l.cursor.Peek()
		switch {
		case c == '-' && next == '{':
			l.cursor.Advance()
			depth++
		case c == '}' && next == '-':
			l.cursor.Advance()
			depth--
		}
	}

	return l.token(token.COMMENT)
}

// string scans up to the closing quote. `/"` escapes a quote.
func (l *Lexer) string() token.Token {
	for {
		c, ok := l.cursor.Advance()
		if !ok {
			return l.abort(UnterminatedStringError{Where: l.start})
		}
		switch c {
		case '"':
			return l.token(token.STRING)
		case '/':
			l.cursor.AdvanceIf(func(r rune) bool { return r == '"' })
		}
	}
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}

func (l *Lexer) identifier() token.Token {
	l.cursor.SkipWhile(isIdentChar)

	t := l.token(token.IDENT)
	if k, ok := token.LookupKeyword(t.Lexeme); ok {
		t.Kind = k
	}

	return t
}

func isBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || strings.ContainsRune("abcdefABCDEF", c)
}

func isNumberChar(c rune) bool {
	return isDigit(c) || strings.ContainsRune(".eE", c)
}

func (l *Lexer) number(first rune) token.Token {
	if first == '0' {
		if _, ok := l.cursor.AdvanceIf(func(r rune) bool { return r == 'b' }); ok {
			return l.radix(isBinaryDigit)
		}
		if _, ok := l.cursor.AdvanceIf(func(r rune) bool { return r == 'x' }); ok {
			return l.radix(isHexDigit)
		}
	}

	kind := token.INTEGER
	for {
		c, ok := l.cursor.AdvanceIf(isNumberChar)
		if !ok {
			break
		}
		switch c {
		case '.':
			kind = token.FLOAT
		case 'e', 'E':
			kind = token.FLOAT
			l.cursor.AdvanceIf(func(r rune) bool { return r == '+' || r == '-' })
		}
	}

	return l.token(kind)
}

// radix scans the digits after a `0b` or `0x` prefix.
func (l *Lexer) radix(digit func(rune) bool) token.Token {
	prefixEnd := l.cursor.Location()
	l.cursor.SkipWhile(digit)
	if l.cursor.Location() == prefixEnd {
		t := l.token(token.UNRECOGNIZED)
		l.report(MalformedLiteralError{Where: l.start, Lexeme: t.Lexeme})

		return t
	}

	return l.token(token.INTEGER)
}
