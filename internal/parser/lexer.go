package parser

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// LeekLexer splits source text into raw tokens. The catch-all Other rule
// means lexing itself never fails on stray characters; the parser reports
// them instead.
var LeekLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	// An unterminated block comment runs to the end of input.
	{Name: "BlockComment", Pattern: `/\*([^*]|\*+[^*/])*(\*+/|\**$)`},
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(){}\[\],;=!]`},
	{Name: "Other", Pattern: `.`},
})

var ruleNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, tt := range LeekLexer.Symbols() {
		names[tt] = name
	}
	return names
}()

// Tokenize returns the significant tokens of source, comments included and
// whitespace dropped, terminated by an EOF token at len(source).
func Tokenize(source string) ([]Token, error) {
	lex, err := LeekLexer.LexString("", source)
	if err != nil {
		return nil, lexError(source, err)
	}

	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, lexError(source, err)
		}
		if tok.EOF() {
			tokens = append(tokens, Token{Type: EOF, Offset: len(source)})
			return tokens, nil
		}

		tt, ok := classify(ruleNames[tok.Type], tok.Value)
		if !ok {
			continue
		}
		tokens = append(tokens, Token{Type: tt, Lexeme: tok.Value, Offset: tok.Pos.Offset})
	}
}

func classify(rule, value string) (TokenType, bool) {
	switch rule {
	case "Whitespace":
		return ILLEGAL, false
	case "BlockComment", "Comment":
		return COMMENT, true
	case "Int":
		return NUMBER, true
	case "Ident":
		if kw, ok := KEYWORDS[value]; ok {
			return kw, true
		}
		return IDENTIFIER, true
	case "Punct":
		if p, ok := PUNCTUATION[value]; ok {
			return p, true
		}
	}
	return ILLEGAL, true
}

// lexError converts a participle lexer failure into a *ParseError.
func lexError(source string, err error) error {
	offset := len(source)
	msg := err.Error()

	var perr participle.Error
	if errors.As(err, &perr) {
		offset = perr.Position().Offset
		msg = perr.Message()
	}
	return newParseError(source, INVALID_TOKEN, offset, 1, "", msg)
}
