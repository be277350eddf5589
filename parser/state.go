package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/token"
	"github.com/takoeight0821/shade/utils"
)

// Node is an entry of the flat parse-tree stream.
type Node struct {
	Kind  ast.NodeKind
	Token token.Handle
}

func (n Node) String() string {
	return fmt.Sprintf("%v@%d", n.Kind, n.Token)
}

type stacked struct {
	kind   ast.NodeKind
	handle token.Handle
	cursor int
}

// failure is the furthest point any rule failed at.
// It survives Restore so that the final diagnostic points at the
// deepest attempt.
type failure struct {
	pos      int
	expected []string
}

// State is the mutable side of a parse.
//
// The token cursor is not stored. Every output node and shift-stack entry
// records the cursor as it was when the entry was appended, and the current
// cursor is the one recorded by the most recent entry. Truncating the
// output and the stack therefore rewinds the cursor as well.
type State struct {
	input  *token.Buffer
	tokens []token.Handle // significant tokens, EOF last

	kinds   []ast.NodeKind
	handles []token.Handle
	cursors []int

	stack  []stacked
	errors []error

	furthest failure
}

// Save is a snapshot of the lengths of the output, the stack and the errors.
type Save struct {
	nodes  int
	stack  int
	errors int
}

func NewState(input *token.Buffer) *State {
	tokens := make([]token.Handle, 0, input.Len())
	for h := token.Handle(0); input.Valid(h); h++ {
		if input.Kind(h) != token.COMMENT {
			tokens = append(tokens, h)
		}
	}

	return &State{
		input:    input,
		tokens:   tokens,
		kinds:    make([]ast.NodeKind, 0, len(tokens)),
		handles:  make([]token.Handle, 0, len(tokens)),
		cursors:  make([]int, 0, len(tokens)),
		furthest: failure{pos: -1},
	}
}

func (s *State) Input() *token.Buffer {
	return s.input
}

func (s *State) Save() Save {
	return Save{nodes: len(s.kinds), stack: len(s.stack), errors: len(s.errors)}
}

func (s *State) Restore(save Save) {
	if len(s.stack) < save.stack {
		panic("parser: restore past a popped shift-stack entry")
	}
	s.kinds = s.kinds[:save.nodes]
	s.handles = s.handles[:save.nodes]
	s.cursors = s.cursors[:save.nodes]
	s.stack = s.stack[:save.stack]
	s.errors = s.errors[:save.errors]
}

// Cursor is the index of the current significant token.
func (s *State) Cursor() int {
	cursor := 0
	if n := len(s.cursors); n > 0 {
		cursor = s.cursors[n-1]
	}
	if n := len(s.stack); n > 0 && s.stack[n-1].cursor > cursor {
		cursor = s.stack[n-1].cursor
	}

	return cursor
}

func (s *State) Current() token.Handle {
	return s.tokens[min(s.Cursor(), len(s.tokens)-1)]
}

func (s *State) Peek() token.Token {
	return s.input.Token(s.Current())
}

func (s *State) AtEnd() bool {
	return s.input.Kind(s.Current()) == token.EOF
}

func (s *State) Is(kind token.Kind) bool {
	return s.input.Kind(s.Current()) == kind
}

func (s *State) consume() (token.Handle, int) {
	if s.AtEnd() {
		panic("parser: consumed a node past the end of input")
	}

	return s.Current(), s.Cursor() + 1
}

// Push appends the current token to the output as node and advances.
func (s *State) Push(node ast.NodeKind) token.Handle {
	h, next := s.consume()
	s.appendNode(node, h, next)

	return h
}

// Stack defers the current token as node on the shift stack and advances.
func (s *State) Stack(node ast.NodeKind) token.Handle {
	h, next := s.consume()
	s.stack = append(s.stack, stacked{kind: node, handle: h, cursor: next})

	return h
}

// Pop moves the top of the shift stack to the output.
// A rule must only pop entries it stacked itself.
func (s *State) Pop() {
	n := len(s.stack)
	if n == 0 {
		panic("parser: popped the empty shift stack")
	}
	top := s.stack[n-1]
	cursor := s.Cursor()
	s.stack = s.stack[:n-1]
	s.appendNode(top.kind, top.handle, cursor)
}

// Mark appends node without consuming a token.
func (s *State) Mark(node ast.NodeKind) {
	s.appendNode(node, s.Current(), s.Cursor())
}

func (s *State) appendNode(node ast.NodeKind, h token.Handle, cursor int) {
	s.kinds = append(s.kinds, node)
	s.handles = append(s.handles, h)
	s.cursors = append(s.cursors, cursor)
}

func (s *State) Nodes() []Node {
	nodes := make([]Node, len(s.kinds))
	for i, kind := range s.kinds {
		nodes[i] = Node{Kind: kind, Token: s.handles[i]}
	}

	return nodes
}

func (s *State) StackLen() int {
	return len(s.stack)
}

// Error records a diagnostic on the current path. It is dropped if an
// enclosing rule backtracks over it.
func (s *State) Error(err error) {
	s.errors = append(s.errors, err)
}

func (s *State) Errors() []error {
	return slices.Clone(s.errors)
}

// Expect notes that what was expected at the current token.
func (s *State) Expect(what string) {
	pos := s.Cursor()
	switch {
	case pos > s.furthest.pos:
		s.furthest = failure{pos: pos, expected: []string{what}}
	case pos == s.furthest.pos && !slices.Contains(s.furthest.expected, what):
		s.furthest.expected = append(slices.Clip(s.furthest.expected), what)
	}
}

// Failure builds the diagnostic for the furthest failure.
func (s *State) Failure() error {
	if s.furthest.pos < 0 {
		return errors.New("parse failed")
	}
	found := s.input.Token(s.tokens[min(s.furthest.pos, len(s.tokens)-1)])
	if found.Kind == token.EOF {
		return utils.ErrorAt(found.Span, UnexpectedEndOfInputError{Expected: s.furthest.expected})
	}

	return utils.ErrorAt(found.Span, UnexpectedTokenError{Found: found, Expected: s.furthest.expected})
}
