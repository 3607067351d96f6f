package lsp

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"leek/internal/ast"
	"leek/internal/parser"
	"leek/internal/text"
	"leek/internal/workspace"
)

// TextDocumentCompletion offers the declared variables and functions of the
// last successful parse, followed by the keywords when enabled.
func (h *LeekHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	snap, ok := h.ws.Snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	var items []protocol.CompletionItem
	seen := make(map[string]bool)
	add := func(label string, kind protocol.CompletionItemKind, detail string) {
		if seen[label] {
			return
		}
		seen[label] = true
		k := kind
		items = append(items, protocol.CompletionItem{
			Label:  label,
			Kind:   &k,
			Detail: ptrString(detail),
		})
	}

	for _, decl := range snap.Declarations {
		add(decl.Name, protocol.CompletionItemKindVariable, "var "+decl.Name)
	}
	for _, fn := range ast.Functions(snap.Program) {
		add(fn.Name.Value, protocol.CompletionItemKindFunction, signature(fn))
	}
	if h.cfg.Completion.Keywords {
		for _, kw := range keywords() {
			add(kw, protocol.CompletionItemKindKeyword, "keyword")
		}
	}

	return items, nil
}

// TextDocumentDocumentSymbol lists functions with their parameters and
// local variables as children, and top-level variables beside them.
func (h *LeekHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	snap, ok := h.ws.Snapshot(params.TextDocument.URI)
	if !ok || snap.Program == nil {
		return []protocol.DocumentSymbol{}, nil
	}
	return documentSymbols(snap), nil
}

func documentSymbols(snap workspace.Snapshot) []protocol.DocumentSymbol {
	functions := ast.Functions(snap.Program)
	symbols := []protocol.DocumentSymbol{}

	for _, decl := range snap.Declarations {
		if enclosing(functions, decl.Site) != nil {
			continue
		}
		symbols = append(symbols, variableSymbol(snap.Buffer, decl))
	}

	for _, fn := range functions {
		sym := protocol.DocumentSymbol{
			Name:           fn.Name.Value,
			Detail:         ptrString(signature(fn)),
			Kind:           protocol.SymbolKindFunction,
			Range:          toRange(span(snap.Buffer, fn.Range)),
			SelectionRange: toRange(span(snap.Buffer, fn.Name.Range)),
		}
		for _, param := range fn.Params {
			r := toRange(span(snap.Buffer, param.Range))
			sym.Children = append(sym.Children, protocol.DocumentSymbol{
				Name:           param.Value,
				Detail:         ptrString("parameter"),
				Kind:           protocol.SymbolKindVariable,
				Range:          r,
				SelectionRange: r,
			})
		}
		for _, decl := range snap.Declarations {
			if enclosing(functions, decl.Site) == fn {
				sym.Children = append(sym.Children, variableSymbol(snap.Buffer, decl))
			}
		}
		symbols = append(symbols, sym)
	}

	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].Range.Start.Line < symbols[j].Range.Start.Line ||
			(symbols[i].Range.Start.Line == symbols[j].Range.Start.Line &&
				symbols[i].Range.Start.Character < symbols[j].Range.Start.Character)
	})
	return symbols
}

func variableSymbol(buf *text.Buffer, decl ast.Declaration) protocol.DocumentSymbol {
	return protocol.DocumentSymbol{
		Name:           decl.Name,
		Detail:         ptrString("var"),
		Kind:           protocol.SymbolKindVariable,
		Range:          toRange(span(buf, decl.Site)),
		SelectionRange: toRange(span(buf, decl.Range)),
	}
}

// enclosing returns the innermost function whose range covers r.
func enclosing(functions []*ast.FunctionStmt, r ast.Range) *ast.FunctionStmt {
	var best *ast.FunctionStmt
	for _, fn := range functions {
		if fn.Range.Covers(r) && (best == nil || fn.Range.Len() < best.Range.Len()) {
			best = fn
		}
	}
	return best
}

func signature(fn *ast.FunctionStmt) string {
	names := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		names[i] = p.Value
	}
	return "function " + fn.Name.Value + "(" + strings.Join(names, ", ") + ")"
}

func keywords() []string {
	out := make([]string, 0, len(parser.KEYWORDS))
	for kw := range parser.KEYWORDS {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

func span(buf *text.Buffer, r ast.Range) text.Range {
	return buf.RangeOf(r.Start, r.End)
}
