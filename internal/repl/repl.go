// SPDX-License-Identifier: Apache-2.0

// Package repl reads leek statements interactively and prints their trees.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"leek/internal/ast"
	lerrors "leek/internal/errors"
	"leek/internal/parser"
)

const (
	PROMPT   = ">> "
	CONTINUE = ".. "
)

// Start runs the loop until in is exhausted or the user types :quit. Input
// that stops at end of line is kept and the next line is appended to it, so a
// block can span several lines.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder

	for {
		if pending.Len() == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUE)
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if pending.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit", ":q":
				return nil
			}
		}
		pending.WriteString(line)
		pending.WriteByte('\n')

		source := pending.String()
		if openComment(source) && strings.TrimSpace(line) != "" {
			continue
		}
		program, err := parser.Parse(source)
		if err == nil {
			pending.Reset()
			fmt.Fprintln(out, program.String())
			if err := ast.Fdump(out, program, nil); err != nil {
				return err
			}
			continue
		}

		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			return err
		}
		if incomplete(perr, source) && strings.TrimSpace(line) != "" {
			continue
		}
		pending.Reset()
		fmt.Fprint(out, lerrors.NewErrorReporter("<stdin>", source).FormatError(lerrors.FromParseError(perr)))
	}
}

// openComment reports whether source ends inside a block comment. The lexer
// runs an unterminated "/*" to the end of the input, so the parse succeeds.
func openComment(source string) bool {
	tokens, err := parser.Tokenize(source)
	if err != nil || len(tokens) < 2 {
		return false
	}
	last := tokens[len(tokens)-2]
	return last.Type == parser.COMMENT && strings.HasPrefix(last.Lexeme, "/*") &&
		(len(last.Lexeme) < 4 || !strings.HasSuffix(last.Lexeme, "*/"))
}

// incomplete reports whether parsing only failed because the input ran out.
func incomplete(perr *parser.ParseError, source string) bool {
	return perr.Kind == parser.SYNTAX_ERROR && perr.Length == 0 && perr.Offset >= len(source)
}
