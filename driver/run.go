package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/takoeight0821/shade/ast"
	"github.com/takoeight0821/shade/eval"
	"github.com/takoeight0821/shade/lexer"
	"github.com/takoeight0821/shade/parser"
	"github.com/takoeight0821/shade/token"
)

// Session runs statements against one evaluation context.
type Session struct {
	evaluator *eval.Evaluator
	logger    *slog.Logger
}

// NewSession creates a Session. A nil logger discards debug output.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Session{
		evaluator: eval.NewEvaluator(),
		logger:    logger,
	}
}

func (s *Session) Context() *eval.Context {
	return s.evaluator.Context()
}

func (s *Session) Tokens(source string) (*token.Buffer, error) {
	buf, err := lexer.Lex(source)
	if err != nil {
		return buf, fmt.Errorf("lex: %w", err)
	}
	s.logger.Debug("lexed", "tokens", buf.Len())

	return buf, nil
}

func (s *Session) Parse(source string) (ast.Stmt, error) {
	buf, err := s.Tokens(source)
	if err != nil {
		return nil, err
	}
	stmt, err := parser.ParseStmt(buf)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	s.logger.Debug("parsed", "stmt", stmt.String())

	return stmt, nil
}

// Trace returns the flat node stream of source and the buffer its handles
// point into.
func (s *Session) Trace(source string) ([]parser.Node, *token.Buffer, error) {
	buf, err := s.Tokens(source)
	if err != nil {
		return nil, buf, err
	}
	nodes, err := parser.Trace(buf)
	if err != nil {
		return nil, buf, fmt.Errorf("parse: %w", err)
	}
	s.logger.Debug("traced", "nodes", len(nodes))

	return nodes, buf, nil
}

// RunSource evaluates one statement.
func (s *Session) RunSource(source string) (eval.Value, error) {
	stmt, err := s.Parse(source)
	if err != nil {
		return nil, err
	}
	v, err := s.evaluator.Exec(stmt)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	s.logger.Debug("evaluated", "kind", v.Kind(), "value", v.String())

	return v, nil
}

// RunScript evaluates r one line at a time, calling emit with each value.
// A line that opens a block comment is joined with the following lines until
// the comment closes. Blank and comment-only lines are skipped. It stops at
// the first error.
func (s *Session) RunScript(r io.Reader, emit func(eval.Value)) error {
	scanner := bufio.NewScanner(r)
	lineno, start := 0, 0
	var pending strings.Builder
	for scanner.Scan() {
		lineno++
		if pending.Len() == 0 {
			start = lineno
		} else {
			pending.WriteByte('\n')
		}
		pending.WriteString(scanner.Text())

		source := pending.String()
		if strings.TrimSpace(source) == "" {
			pending.Reset()
			continue
		}
		buf, err := s.Tokens(source)
		if openComment(err) {
			continue
		}
		pending.Reset()
		if err != nil {
			return fmt.Errorf("line %d: %w", start, err)
		}
		if onlyComments(buf) {
			continue
		}
		v, err := s.RunSource(source)
		if err != nil {
			return fmt.Errorf("line %d: %w", start, err)
		}
		emit(v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if pending.Len() > 0 {
		_, err := s.Tokens(pending.String())
		return fmt.Errorf("line %d: %w", start, err)
	}

	return nil
}

func openComment(err error) bool {
	var comment lexer.UnterminatedCommentError
	return errors.As(err, &comment)
}

func onlyComments(buf *token.Buffer) bool {
	for _, t := range buf.Tokens() {
		if t.Kind != token.COMMENT && t.Kind != token.EOF {
			return false
		}
	}

	return true
}
