package parser

var KEYWORDS = map[string]TokenType{
	"var":      VAR,
	"while":    WHILE,
	"if":       IF,
	"else":     ELSE,
	"function": FUNCTION,
	"return":   RETURN,
}

var PUNCTUATION = map[string]TokenType{
	"(": LEFT_PAREN,
	")": RIGHT_PAREN,
	"{": LEFT_BRACE,
	"}": RIGHT_BRACE,
	"[": LEFT_BRACKET,
	"]": RIGHT_BRACKET,
	",": COMMA,
	";": SEMICOLON,
	"=": EQUAL,
	"!": BANG,
}
