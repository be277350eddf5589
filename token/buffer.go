package token

// Buffer is the immutable output of the lexer.
// kinds and spans are parallel and always end with an EOF token.
type Buffer struct {
	source string
	kinds  []Kind
	spans  []Span
}

func NewBuffer(source string, kinds []Kind, spans []Span) *Buffer {
	if len(kinds) != len(spans) {
		panic("token: kinds and spans differ in length")
	}
	return &Buffer{source: source, kinds: kinds, spans: spans}
}

func (b *Buffer) Source() string {
	return b.source
}

func (b *Buffer) Len() int {
	return len(b.kinds)
}

func (b *Buffer) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(b.kinds)
}

func (b *Buffer) Kind(h Handle) Kind {
	return b.kinds[h]
}

func (b *Buffer) Span(h Handle) Span {
	return b.spans[h]
}

// Text slices the source text of h.
func (b *Buffer) Text(h Handle) string {
	s := b.spans[h]
	return b.source[s.Start.Offset:s.End.Offset]
}

func (b *Buffer) Token(h Handle) Token {
	return Token{Kind: b.kinds[h], Lexeme: b.Text(h), Span: b.spans[h]}
}

// Tokens materializes every token, EOF included.
func (b *Buffer) Tokens() []Token {
	tokens := make([]Token, len(b.kinds))
	for i := range b.kinds {
		tokens[i] = b.Token(Handle(i))
	}
	return tokens
}

// Last returns the handle of the terminating EOF token.
func (b *Buffer) Last() Handle {
	return Handle(len(b.kinds) - 1)
}
