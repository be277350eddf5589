package parser

import (
	"errors"
	"sync"

	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/token"
)

// Parser is a rule. On failure it must leave the State as it found it,
// apart from the furthest-failure record.
type Parser[T any] func(*State) (T, bool)

type Unit = struct{}

// Token consumes a token of kind and pushes it as an ast.Token node.
func Token(kind token.Kind) Parser[token.Token] {
	return Emit(kind, ast.Token)
}

// Emit consumes a token of kind and pushes it as node.
func Emit(kind token.Kind, node ast.NodeKind) Parser[token.Token] {
	return func(s *State) (token.Token, bool) {
		if !s.Is(kind) {
			s.Expect(kind.String())
			return token.Token{}, false
		}
		h := s.Push(node)

		return s.Input().Token(h), true
	}
}

// Defer consumes a token of kind and puts it on the shift stack as node.
// A matching Pop must follow in the same rule.
func Defer(kind token.Kind, node ast.NodeKind) Parser[token.Token] {
	return func(s *State) (token.Token, bool) {
		if !s.Is(kind) {
			s.Expect(kind.String())
			return token.Token{}, false
		}
		h := s.Stack(node)

		return s.Input().Token(h), true
	}
}

func Pop() Parser[Unit] {
	return func(s *State) (Unit, bool) {
		s.Pop()
		return Unit{}, true
	}
}

func Mark(node ast.NodeKind) Parser[Unit] {
	return func(s *State) (Unit, bool) {
		s.Mark(node)
		return Unit{}, true
	}
}

func End() Parser[Unit] {
	return func(s *State) (Unit, bool) {
		if !s.AtEnd() {
			s.Expect(token.EOF.String())
			return Unit{}, false
		}
		return Unit{}, true
	}
}

func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(s *State) ([]T, bool) {
		save := s.Save()
		results := make([]T, 0, len(ps))
		for _, p := range ps {
			v, ok := p(s)
			if !ok {
				s.Restore(save)
				return nil, false
			}
			results = append(results, v)
		}

		return results, true
	}
}

func Seq2[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	return func(s *State) (R, bool) {
		var zero R
		save := s.Save()
		va, ok := a(s)
		if !ok {
			s.Restore(save)
			return zero, false
		}
		vb, ok := b(s)
		if !ok {
			s.Restore(save)
			return zero, false
		}

		return f(va, vb), true
	}
}

func Seq3[A, B, C, R any](a Parser[A], b Parser[B], c Parser[C], f func(A, B, C) R) Parser[R] {
	return func(s *State) (R, bool) {
		var zero R
		save := s.Save()
		va, ok := a(s)
		if !ok {
			s.Restore(save)
			return zero, false
		}
		vb, ok := b(s)
		if !ok {
			s.Restore(save)
			return zero, false
		}
		vc, ok := c(s)
		if !ok {
			s.Restore(save)
			return zero, false
		}

		return f(va, vb, vc), true
	}
}

// Choice commits to the first alternative that succeeds.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(s *State) (T, bool) {
		save := s.Save()
		for _, p := range ps {
			if v, ok := p(s); ok {
				return v, true
			}
			s.Restore(save)
		}
		var zero T

		return zero, false
	}
}

// ZeroOrMore applies p until it fails or stops making progress.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(s *State) ([]T, bool) {
		var results []T
		for {
			save := s.Save()
			before := s.Cursor()
			v, ok := p(s)
			if !ok || s.Cursor() == before {
				s.Restore(save)
				return results, true
			}
			results = append(results, v)
		}
	}
}

func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	rest := ZeroOrMore(p)

	return func(s *State) ([]T, bool) {
		save := s.Save()
		first, ok := p(s)
		if !ok {
			s.Restore(save)
			return nil, false
		}
		others, _ := rest(s)

		return append([]T{first}, others...), true
	}
}

func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s *State) (U, bool) {
		v, ok := p(s)
		if !ok {
			var zero U
			return zero, false
		}

		return f(v), true
	}
}

// Not succeeds without consuming input iff p fails.
// Expectations p records while failing are discarded.
func Not[T any](p Parser[T]) Parser[Unit] {
	return func(s *State) (Unit, bool) {
		save := s.Save()
		furthest := s.furthest
		_, ok := p(s)
		s.Restore(save)
		s.furthest = furthest

		return Unit{}, !ok
	}
}

// Optional applies p and succeeds with the zero value when p fails.
func Optional[T any](p Parser[T]) Parser[T] {
	return func(s *State) (T, bool) {
		save := s.Save()
		v, ok := p(s)
		if !ok {
			s.Restore(save)
			var zero T
			return zero, true
		}

		return v, true
	}
}

// Peek runs p and rewinds, keeping only its result.
func Peek[T any](p Parser[T]) Parser[T] {
	return func(s *State) (T, bool) {
		save := s.Save()
		v, ok := p(s)
		s.Restore(save)

		return v, ok
	}
}

func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Seq3(open, p, closing, func(_ O, v T, _ C) T { return v })
}

func Discard[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}

// Lazy defers building p until first use, which allows recursive rules.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	get := sync.OnceValue(f)

	return func(s *State) (T, bool) {
		return get()(s)
	}
}

// Run applies p and requires it to consume the whole input.
func Run[T any](s *State, p Parser[T]) (T, error) {
	var zero T
	v, ok := Seq2(p, End(), func(v T, _ Unit) T { return v })(s)
	if !ok {
		return zero, s.Failure()
	}
	if len(s.errors) > 0 {
		return zero, errors.Join(s.errors...)
	}

	return v, nil
}
