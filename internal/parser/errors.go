package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"leek/internal/text"
)

type ErrorKind int

const (
	SYNTAX_ERROR ErrorKind = iota
	INVALID_TOKEN
	INTEGER_RANGE
)

// ParseError describes why a document failed to parse. Offset is the byte
// offset of the offending token and Length its width (zero at end of input).
type ParseError struct {
	Kind     ErrorKind
	Filename string
	Offset   int
	Pos      text.Position
	Length   int
	Found    string
	Previous string
	Msg      string
}

var _ participle.Error = (*ParseError)(nil)

func newParseError(source string, kind ErrorKind, offset, length int, found, msg string) *ParseError {
	idx := text.NewLineIndex(source)
	pos, ok := idx.PositionOf(offset)
	if !ok {
		pos = idx.LastPosition()
	}
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Pos:    pos,
		Length: length,
		Found:  found,
		Msg:    msg,
	}
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%s: %s", e.Filename, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *ParseError) Message() string {
	return e.Msg
}

// Position reports the failure in participle's one-based line and column form.
func (e *ParseError) Position() lexer.Position {
	return lexer.Position{
		Filename: e.Filename,
		Offset:   e.Offset,
		Line:     e.Pos.Line + 1,
		Column:   e.Pos.Character + 1,
	}
}

// expectation renders the set of things that would have let parsing continue.
func expectation(expected []string) string {
	switch len(expected) {
	case 0:
		return "unexpected input"
	case 1:
		return "expected " + expected[0]
	default:
		return "expected one of " + strings.Join(expected, ", ")
	}
}
