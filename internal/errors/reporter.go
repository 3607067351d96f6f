package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Info    ErrorLevel = "info"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context.
// Position uses one-based line and column numbers.
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // Error code like E0100
	Message     string         // Primary error message
	Position    lexer.Position // Location in source
	Length      int            // Length of the problematic region
	Suggestions []Suggestion   // Suggested fixes
	Notes       []string       // Additional context notes
	HelpText    string         // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// ErrorReporter renders CompilerErrors against the source they point into.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n"),
	}
}

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	blue  = color.New(color.FgBlue).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// FormatError renders the header, the location, up to three lines of context
// with a caret under the offending span, then suggestions, notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	paint := er.getLevelColor(err.Level)
	line := err.Position.Line

	header := paint(string(err.Level))
	if err.Code != "" {
		header += "[" + err.Code + "]"
	}
	fmt.Fprintf(&b, "%s: %s\n", header, err.Message)

	width := er.getLineNumberWidth(line + 1)
	pad := strings.Repeat(" ", width)
	bar := faint("│")
	gutter := func(label string, text string) {
		fmt.Fprintf(&b, "%s %s %s\n", label, bar, text)
	}
	number := func(n int) string { return fmt.Sprintf("%*d", width, n) }

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", pad, faint("-->"), er.filename, line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", pad, bar)

	if text, ok := er.line(line - 1); ok {
		gutter(faint(number(line-1)), text)
	}
	if text, ok := er.line(line); ok {
		gutter(bold(number(line)), text)
		gutter(pad, er.createMarker(err.Position.Column, err.Length, err.Level))
	}
	if text, ok := er.line(line + 1); ok && line > 0 {
		gutter(faint(number(line+1)), text)
	}

	if len(err.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s %s\n", pad, bar)
	}
	for i, s := range err.Suggestions {
		lead := cyan("help") + " " + cyan("try") + ":"
		if i > 0 {
			lead = cyan("    ")
		}
		fmt.Fprintf(&b, "%s %s %s\n", pad, lead, s.Message)
		if s.Replacement != "" {
			fmt.Fprintf(&b, "%s %s %s\n", pad, cyan("│"), cyan(s.Replacement))
		}
	}

	for _, note := range err.Notes {
		gutter(pad, blue("note:")+" "+note)
	}
	if err.HelpText != "" {
		gutter(pad, green("help:")+" "+err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// line returns the one-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	attr := color.FgRed
	switch level {
	case Warning:
		attr = color.FgYellow
	case Info, Note:
		attr = color.FgBlue
	case Help:
		attr = color.FgGreen
	}
	return color.New(attr, color.Bold).SprintFunc()
}

// createMarker underlines length columns starting at the one-based column.
// A zero length still gets a single caret.
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	return strings.Repeat(" ", max(0, column-1)) + er.getLevelColor(level)(strings.Repeat("^", max(1, length)))
}

func (er *ErrorReporter) getLineNumberWidth(line int) int {
	return max(3, len(strconv.Itoa(line)))
}
