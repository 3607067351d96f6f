package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("var x = [1]; // done\nif (!x) { f(x, 2); }")
	require.NoError(t, err)

	expected := []TokenType{
		VAR, IDENTIFIER, EQUAL, LEFT_BRACKET, NUMBER, RIGHT_BRACKET, SEMICOLON, COMMENT,
		IF, LEFT_PAREN, BANG, IDENTIFIER, RIGHT_PAREN,
		LEFT_BRACE, IDENTIFIER, LEFT_PAREN, IDENTIFIER, COMMA, NUMBER, RIGHT_PAREN, SEMICOLON, RIGHT_BRACE,
		EOF,
	}
	assert.Equal(t, expected, tokenTypes(tokens))

	assert.Equal(t, Token{Type: IDENTIFIER, Lexeme: "x", Offset: 4}, tokens[1])
	assert.Equal(t, Token{Type: COMMENT, Lexeme: "// done", Offset: 13}, tokens[7])
	assert.Equal(t, 41, tokens[len(tokens)-1].Offset, "EOF sits at the end of the text")
}

func TestTokenizeKeywordPrefixes(t *testing.T) {
	tokens, err := Tokenize("variable iffy functions returned while_ else")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, ELSE, EOF}, tokenTypes(tokens))
}

func TestTokenizeBlockComments(t *testing.T) {
	tokens, err := Tokenize("/* a ** b */ x /* open **")
	require.NoError(t, err)

	require.Equal(t, []TokenType{COMMENT, IDENTIFIER, COMMENT, EOF}, tokenTypes(tokens))
	assert.Equal(t, "/* a ** b */", tokens[0].Lexeme)
	assert.Equal(t, "/* open **", tokens[2].Lexeme)
}

func TestTokenizeStrayCharacters(t *testing.T) {
	tokens, err := Tokenize("a + é")
	require.NoError(t, err)

	require.Equal(t, []TokenType{IDENTIFIER, ILLEGAL, ILLEGAL, EOF}, tokenTypes(tokens))
	assert.Equal(t, "+", tokens[1].Lexeme)
	assert.Equal(t, "é", tokens[2].Lexeme)
	assert.Equal(t, 6, tokens[2].End())
}

func TestTokenTypeHelpers(t *testing.T) {
	assert.True(t, WHILE.IsKeyword())
	assert.False(t, IDENTIFIER.IsKeyword())
	assert.Equal(t, "RIGHT_PAREN", RIGHT_PAREN.String())
	assert.Equal(t, `")"`, RIGHT_PAREN.describe())
	assert.Equal(t, `"function"`, FUNCTION.describe())
	assert.Equal(t, "end of input", EOF.describe())
}
