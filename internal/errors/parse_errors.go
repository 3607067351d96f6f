package errors

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"leek/internal/parser"
)

// ErrorBuilder provides a fluent interface for creating errors with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos lexer.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// CodeFor maps a parse failure kind to its error code.
func CodeFor(kind parser.ErrorKind) string {
	switch kind {
	case parser.INVALID_TOKEN:
		return ErrorInvalidToken
	case parser.INTEGER_RANGE:
		return ErrorIntegerRange
	default:
		return ErrorSyntax
	}
}

// FromParseError turns a parse failure into a reportable error with hints.
func FromParseError(perr *parser.ParseError) CompilerError {
	builder := NewError(CodeFor(perr.Kind), perr.Message(), perr.Position()).
		WithLength(max(1, len([]rune(perr.Found))))

	switch perr.Kind {
	case parser.INVALID_TOKEN:
		builder = builder.WithNote(fmt.Sprintf("'%s' does not start any token", perr.Found)).
			WithHelp("the only punctuation is ( ) { } [ ] , ; = and !")
	case parser.INTEGER_RANGE:
		builder = builder.WithNote("integer literals must fit in a signed 64-bit integer")
	default:
		if perr.Found == "" {
			builder = builder.WithNote("the input ended early")
		}
		if strings.Contains(perr.Message(), `";"`) {
			builder = builder.WithReplacement("terminate the statement with a semicolon", ";")
		}
		// A misspelt keyword reads as an identifier, so the failure usually
		// lands on the token after it.
		for _, word := range []string{perr.Previous, perr.Found} {
			for _, kw := range findSimilarNames(word, keywords()) {
				builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", kw))
			}
		}
	}

	return builder.Build()
}

func keywords() []string {
	words := make([]string, 0, len(parser.KEYWORDS))
	for word := range parser.KEYWORDS {
		words = append(words, word)
	}
	slices.Sort(words)
	return words
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	if len(target) < 3 {
		return nil
	}
	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
