package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"leek/internal/workspace"
)

// convertDiagnostics maps workspace diagnostics onto the wire type. The result
// is never nil so that an empty set clears the client's list.
func convertDiagnostics(diags []workspace.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		diagnostic := protocol.Diagnostic{
			Range:    toRange(d.Range),
			Severity: ptrSeverity(protocol.DiagnosticSeverity(d.Severity)),
			Message:  d.Message,
		}
		if d.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: d.Code}
		}
		if d.Source != "" {
			diagnostic.Source = ptrString(d.Source)
		}
		out = append(out, diagnostic)
	}
	return out
}
