package parser

import "strconv"

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	COMMENT

	// Identifiers + literals
	IDENTIFIER
	NUMBER

	// Keywords
	VAR
	WHILE
	IF
	ELSE
	FUNCTION
	RETURN

	// Punctuation
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
	COMMA
	SEMICOLON
	EQUAL
	BANG
)

var tokenTypeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	COMMENT:       "COMMENT",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	VAR:           "VAR",
	WHILE:         "WHILE",
	IF:            "IF",
	ELSE:          "ELSE",
	FUNCTION:      "FUNCTION",
	RETURN:        "RETURN",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	COMMA:         "COMMA",
	SEMICOLON:     "SEMICOLON",
	EQUAL:         "EQUAL",
	BANG:          "BANG",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "ILLEGAL"
	}
	return tokenTypeNames[t]
}

// IsKeyword reports whether t is one of the reserved words.
func (t TokenType) IsKeyword() bool {
	return t >= VAR && t <= RETURN
}

// describe renders t the way it appears in "expected ..." messages.
func (t TokenType) describe() string {
	switch t {
	case EOF:
		return "end of input"
	case IDENTIFIER:
		return "identifier"
	case NUMBER:
		return "integer"
	}
	for word, tt := range KEYWORDS {
		if tt == t {
			return strconv.Quote(word)
		}
	}
	for lexeme, tt := range PUNCTUATION {
		if tt == t {
			return strconv.Quote(lexeme)
		}
	}
	return t.String()
}

type Token struct {
	Type   TokenType
	Lexeme string
	Offset int
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}
