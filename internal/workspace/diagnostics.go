package workspace

import (
	"fmt"

	lerrors "leek/internal/errors"
	"leek/internal/parser"
	"leek/internal/text"
)

// Severity uses the LSP numbering.
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

type Diagnostic struct {
	Range    text.Range
	Severity Severity
	Code     string
	Message  string
	Source   string
}

// Diagnostics reports the state of the last parse: one error at the failure
// point, or one informational entry per declaration.
func (w *Workspace) Diagnostics(id string) ([]Diagnostic, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[id]
	if !ok {
		return nil, fmt.Errorf("diagnostics %s: %w", id, ErrUnknownDocument)
	}

	if doc.parseErr != nil {
		return []Diagnostic{w.errorDiagnostic(doc.buffer, doc.parseErr)}, nil
	}

	diagnostics := []Diagnostic{}
	if !w.options.Declarations {
		return diagnostics, nil
	}
	for _, decl := range doc.decls {
		diagnostics = append(diagnostics, Diagnostic{
			Range:    doc.buffer.RangeOf(decl.Range.Start, decl.Range.End),
			Severity: SeverityInformation,
			Code:     lerrors.InfoDeclaration,
			Message:  fmt.Sprintf("found variable '%s'", decl.Name),
			Source:   w.options.Source,
		})
	}
	return diagnostics, nil
}

// errorDiagnostic covers the offending token, or one character when the
// failure is at a zero-width point such as the end of input.
func (w *Workspace) errorDiagnostic(buf *text.Buffer, perr *parser.ParseError) Diagnostic {
	start := buf.PositionAt(perr.Offset)
	end := text.Position{Line: start.Line, Character: start.Character + 1}
	if perr.Length > 0 {
		end = buf.PositionAt(perr.Offset + perr.Length)
	}

	return Diagnostic{
		Range:    text.Range{Start: start, End: end},
		Severity: SeverityError,
		Code:     lerrors.CodeFor(perr.Kind),
		Message:  perr.Message(),
		Source:   w.options.Source,
	}
}
