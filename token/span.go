package token

import "fmt"

// Location is a point in the source text.
// Offset counts bytes, Line and Column start at 1 and Column counts runes.
type Location struct {
	Offset int
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span delimits the source text of a token or node.
type Span struct {
	Start Location
	End   Location
}

func (s Span) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Around returns the smallest span covering both a and b.
func Around(a, b Span) Span {
	start, end := a.Start, a.End
	if b.Start.Offset < start.Offset {
		start = b.Start
	}
	if b.End.Offset > end.Offset {
		end = b.End
	}
	return Span{Start: start, End: end}
}
