package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(LeekLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(participle.MaxLookahead),
)

// EBNF renders the grammar.
func EBNF() string {
	return parser.String()
}

// Parse checks source against the grammar. Errors implement participle.Error.
func Parse(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}
