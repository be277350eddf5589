package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	UNRECOGNIZED
	COMMENT

	// Literals and identifiers.
	IDENT
	INTEGER
	FLOAT
	STRING

	// Delimiters.
	COLON
	EQUAL
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACKET
	RIGHTBRACKET
	LEFTBRACE
	RIGHTBRACE
	AT
	DOLLAR
	DOT
	COMMA
	BAR

	// Operators.
	LESS
	GREATER
	PLUS
	DASH
	STAR
	SLASH
	PERCENT

	// Keywords.
	LET
	FN
	IF
	THEN
	ELSE
	MATCH
	WITH
	TYPE
)

var kindNames = [...]string{
	EOF:          "end of input",
	UNRECOGNIZED: "unrecognized",
	COMMENT:      "comment",
	IDENT:        "identifier",
	INTEGER:      "integer",
	FLOAT:        "float",
	STRING:       "string",
	COLON:        "`:`",
	EQUAL:        "`=`",
	LEFTPAREN:    "`(`",
	RIGHTPAREN:   "`)`",
	LEFTBRACKET:  "`[`",
	RIGHTBRACKET: "`]`",
	LEFTBRACE:    "`{`",
	RIGHTBRACE:   "`}`",
	AT:           "`@`",
	DOLLAR:       "`$`",
	DOT:          "`.`",
	COMMA:        "`,`",
	BAR:          "`|`",
	LESS:         "`<`",
	GREATER:      "`>`",
	PLUS:         "`+`",
	DASH:         "`-`",
	STAR:         "`*`",
	SLASH:        "`/`",
	PERCENT:      "`%`",
	LET:          "`let`",
	FN:           "`fn`",
	IF:           "`if`",
	THEN:         "`then`",
	ELSE:         "`else`",
	MATCH:        "`match`",
	WITH:         "`with`",
	TYPE:         "`type`",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsKeyword() bool {
	return k >= LET && k <= TYPE
}

func (k Kind) IsOperator() bool {
	return k >= LESS && k <= PERCENT
}

func (k Kind) IsDelimiter() bool {
	return k >= COLON && k <= BAR
}

func (k Kind) IsLiteral() bool {
	return k == INTEGER || k == FLOAT || k == STRING
}

// keywords is built once and never written afterwards.
var keywords = map[string]Kind{
	"let":   LET,
	"fn":    FN,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"match": MATCH,
	"with":  WITH,
	"type":  TYPE,
}

// LookupKeyword reports the keyword kind for ident, or IDENT.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	return IDENT, false
}

// symbols maps single-character punctuation to its kind.
// `-` is absent: it may open a comment, so the lexer resolves it itself.
var symbols = map[rune]Kind{
	':': COLON,
	'=': EQUAL,
	'(': LEFTPAREN,
	')': RIGHTPAREN,
	'[': LEFTBRACKET,
	']': RIGHTBRACKET,
	'{': LEFTBRACE,
	'}': RIGHTBRACE,
	'@': AT,
	'$': DOLLAR,
	'<': LESS,
	'>': GREATER,
	'.': DOT,
	',': COMMA,
	'+': PLUS,
	'*': STAR,
	'/': SLASH,
	'%': PERCENT,
	'|': BAR,
}

func LookupSymbol(c rune) (Kind, bool) {
	k, ok := symbols[c]
	return k, ok
}

// Handle is a stable index into a Buffer.
type Handle int

type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %v}", t.Kind, t.Lexeme, t.Span)
}
