package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LeekLexer differs from the tokenizer in internal/parser only in that
// keywords get their own token type, so that @Ident never captures one.
var LeekLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*(\*+/|\**$)`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Keyword", Pattern: `(var|while|if|else|function|return)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(){}\[\],;=!]`},
})
