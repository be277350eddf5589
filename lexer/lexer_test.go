package lexer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/takoeight0821/shade/lexer"
	"github.com/takoeight0821/shade/token"
	"github.com/takoeight0821/shade/utils"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Errorf("failed to find test files: %v", err)
		return
	}

	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		buf, err := lexer.Lex(string(source))
		if err != nil {
			t.Errorf("%s returned error: %v", testfile, err)
			return
		}

		var builder strings.Builder
		for _, token := range buf.Tokens() {
			builder.WriteString(token.String())
			builder.WriteString("\n")
		}

		g := goldie.New(t)
		g.Assert(t, filepath.Base(testfile), []byte(builder.String()))
	}
}

func kinds(buf *token.Buffer) []token.Kind {
	var ks []token.Kind
	for _, t := range buf.Tokens() {
		ks = append(ks, t.Kind)
	}
	return ks
}

func TestLexKinds(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected []token.Kind
	}{
		{"", []token.Kind{token.EOF}},
		{"   \n\t", []token.Kind{token.EOF}},
		{"x = 1", []token.Kind{token.IDENT, token.EQUAL, token.INTEGER, token.EOF}},
		{"f: f", []token.Kind{token.IDENT, token.COLON, token.IDENT, token.EOF}},
		{"1.5 2e3 2E-3 7", []token.Kind{token.FLOAT, token.FLOAT, token.FLOAT, token.INTEGER, token.EOF}},
		{"0x1F 0b101", []token.Kind{token.INTEGER, token.INTEGER, token.EOF}},
		{"1-2", []token.Kind{token.INTEGER, token.DASH, token.INTEGER, token.EOF}},
		{"( ) [ ] { } , .", []token.Kind{
			token.LEFTPAREN, token.RIGHTPAREN, token.LEFTBRACKET, token.RIGHTBRACKET,
			token.LEFTBRACE, token.RIGHTBRACE, token.COMMA, token.DOT, token.EOF,
		}},
		{"+ - * / % < > @ $ |", []token.Kind{
			token.PLUS, token.DASH, token.STAR, token.SLASH, token.PERCENT,
			token.LESS, token.GREATER, token.AT, token.DOLLAR, token.BAR, token.EOF,
		}},
		{"let fn if then else match with type", []token.Kind{
			token.LET, token.FN, token.IF, token.THEN, token.ELSE, token.MATCH, token.WITH, token.TYPE, token.EOF,
		}},
		{"lets _x x1", []token.Kind{token.IDENT, token.IDENT, token.IDENT, token.EOF}},
		{`"hi" "a/"b"`, []token.Kind{token.STRING, token.STRING, token.EOF}},
		{"a -- rest\nb", []token.Kind{token.IDENT, token.COMMENT, token.IDENT, token.EOF}},
		{"a -{ x -{ y }- z }- b", []token.Kind{token.IDENT, token.COMMENT, token.IDENT, token.EOF}},
	}

	for _, tc := range testcases {
		buf, err := lexer.Lex(tc.input)
		if err != nil {
			t.Errorf("Lex(%q) returned error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.expected, kinds(buf)); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestLexRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"sq = x: x * x",
		"  λ = 0xff -- unicode\n[1.5, 2]  ",
		"a -{ nested -{ block }- }- \"s/\"q\"",
	}

	for _, input := range inputs {
		buf, err := lexer.Lex(input)
		if err != nil {
			t.Errorf("Lex(%q) returned error: %v", input, err)
			continue
		}
		// Every byte outside a token is whitespace.
		var b strings.Builder
		prev := 0
		for h := token.Handle(0); buf.Valid(h); h++ {
			span := buf.Span(h)
			if strings.TrimSpace(input[prev:span.Start.Offset]) != "" {
				t.Errorf("Lex(%q) skipped %q", input, input[prev:span.Start.Offset])
			}
			b.WriteString(input[prev:span.Start.Offset])
			b.WriteString(buf.Text(h))
			prev = span.End.Offset
		}
		b.WriteString(input[prev:])
		if b.String() != input {
			t.Errorf("round trip of %q gave %q", input, b.String())
		}
	}
}

func TestLexLocations(t *testing.T) {
	t.Parallel()

	buf, err := lexer.Lex("é = 1\n  xs")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	expected := []token.Location{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 3, Line: 1, Column: 3},
		{Offset: 5, Line: 1, Column: 5},
		{Offset: 9, Line: 2, Column: 3},
		{Offset: 11, Line: 2, Column: 5},
	}
	var actual []token.Location
	for _, t := range buf.Tokens() {
		actual = append(actual, t.Span.Start)
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token starts mismatch (-want +got):\n%s", diff)
	}
}

func TestLexErrors(t *testing.T) {
	t.Parallel()

	t.Run("unexpected character", func(t *testing.T) {
		t.Parallel()
		buf, err := lexer.Lex("a # b")
		var unexpected lexer.UnexpectedCharacterError
		if !errors.As(err, &unexpected) {
			t.Fatalf("expected UnexpectedCharacterError, got %v", err)
		}
		if unexpected.Char != '#' {
			t.Errorf("char %q", unexpected.Char)
		}
		if lexer.IsFatal(err) {
			t.Errorf("unexpected character should not stop lexing")
		}
		expected := []token.Kind{token.IDENT, token.UNRECOGNIZED, token.IDENT, token.EOF}
		if diff := cmp.Diff(expected, kinds(buf)); diff != "" {
			t.Errorf("kinds mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed radix", func(t *testing.T) {
		t.Parallel()
		buf, err := lexer.Lex("0x 1")
		var malformed lexer.MalformedLiteralError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedLiteralError, got %v", err)
		}
		if malformed.Lexeme != "0x" {
			t.Errorf("lexeme %q", malformed.Lexeme)
		}
		expected := []token.Kind{token.UNRECOGNIZED, token.INTEGER, token.EOF}
		if diff := cmp.Diff(expected, kinds(buf)); diff != "" {
			t.Errorf("kinds mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unterminated string", func(t *testing.T) {
		t.Parallel()
		buf, err := lexer.Lex(`x = "abc`)
		var unterminated lexer.UnterminatedStringError
		if !errors.As(err, &unterminated) {
			t.Fatalf("expected UnterminatedStringError, got %v", err)
		}
		if !lexer.IsFatal(err) {
			t.Errorf("unterminated string should be fatal")
		}
		expected := []token.Kind{token.IDENT, token.EQUAL, token.EOF}
		if diff := cmp.Diff(expected, kinds(buf)); diff != "" {
			t.Errorf("kinds mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unterminated nested comment", func(t *testing.T) {
		t.Parallel()
		_, err := lexer.Lex("-{ a -{ b }- ")
		var unterminated lexer.UnterminatedCommentError
		if !errors.As(err, &unterminated) {
			t.Fatalf("expected UnterminatedCommentError, got %v", err)
		}
		if unterminated.Where.Offset != 0 {
			t.Errorf("comment start %v", unterminated.Where)
		}
	})
}

func TestLexerNext(t *testing.T) {
	t.Parallel()

	l := lexer.New("a")
	if tok := l.Next(); tok.Kind != token.IDENT {
		t.Fatalf("first token %v", tok)
	}
	for range 3 {
		if tok := l.Next(); tok.Kind != token.EOF {
			t.Errorf("token after the end %v", tok)
		}
	}
	if l.Err() != nil {
		t.Errorf("Err() = %v", l.Err())
	}
}
