// Package lsp adapts the workspace to the Language Server Protocol through
// glsp.
package lsp

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"leek/internal/config"
	lerrors "leek/internal/errors"
	"leek/internal/text"
	"leek/internal/workspace"
)

// Name is reported to clients in the initialize result.
const Name = "leek"

var Version = "0.1.0"

var log = commonlog.GetLogger("leek.lsp")

// LeekHandler implements the LSP server handlers for leek documents.
type LeekHandler struct {
	ws  *workspace.Workspace
	cfg config.Config
}

// NewLeekHandler creates a handler with an empty workspace configured from cfg.
func NewLeekHandler(cfg config.Config) *LeekHandler {
	return &LeekHandler{
		ws: workspace.New(workspace.Options{
			Declarations: cfg.Diagnostics.Declarations,
			Source:       cfg.Diagnostics.Source,
		}),
		cfg: cfg,
	}
}

// Workspace exposes the document store, mostly for tests.
func (h *LeekHandler) Workspace() *workspace.Workspace {
	return h.ws
}

// Protocol wires every supported method into a glsp handler table.
func (h *LeekHandler) Protocol() protocol.Handler {
	return protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentHover:              h.TextDocumentHover,
		TextDocumentCompletion:         h.TextDocumentCompletion,
		TextDocumentDefinition:         h.TextDocumentDefinition,
		TextDocumentDocumentSymbol:     h.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// Initialize advertises incremental sync and the supported queries.
func (h *LeekHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindIncremental),
			},
			HoverProvider: true,
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DefinitionProvider:     true,
			DocumentSymbolProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &Version,
		},
	}, nil
}

func (h *LeekHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *LeekHandler) Shutdown(ctx *glsp.Context) error {
	log.Infof("shutdown with %d open documents", len(h.ws.Documents()))
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *LeekHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the new document and publishes its diagnostics.
func (h *LeekHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	h.ws.Open(doc.URI, doc.Text, doc.Version)
	return h.publish(ctx, doc.URI)
}

// TextDocumentDidChange applies the content changes in order. Changes whose
// range falls outside the document are dropped with a warning and do not fail
// the notification.
func (h *LeekHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	changes := make([]text.Change, 0, len(params.ContentChanges))
	for _, raw := range params.ContentChanges {
		change, ok := toChange(raw)
		if !ok {
			log.Warningf("%s: ignoring content change of type %T", uri, raw)
			continue
		}
		changes = append(changes, change)
	}

	if err := h.ws.Change(uri, params.TextDocument.Version, changes...); err != nil {
		if errors.Is(err, workspace.ErrUnknownDocument) {
			return err
		}
		var rangeErr *text.RangeError
		if !errors.As(err, &rangeErr) {
			return fmt.Errorf("did change: %w", err)
		}
		log.Warning(droppedEdits(uri, err))
	}

	return h.publish(ctx, uri)
}

// TextDocumentDidClose forgets the document and clears its diagnostics.
func (h *LeekHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.ws.Close(uri)
	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentHover describes the innermost node under the cursor.
func (h *LeekHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	info, ok := h.ws.NodeAt(params.TextDocument.URI, fromPosition(params.Position))
	if !ok {
		return nil, nil
	}

	r := toRange(info.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: info.Description,
		},
		Range: &r,
	}, nil
}

// TextDocumentDefinition jumps from a variable or call to its declaration.
func (h *LeekHandler) TextDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := params.TextDocument.URI
	r, ok := h.ws.Definition(uri, fromPosition(params.Position))
	if !ok {
		return nil, nil
	}
	return []protocol.Location{{URI: uri, Range: toRange(r)}}, nil
}

// publish sends the current diagnostics of uri. The workspace lock is already
// released when the notification goes out.
func (h *LeekHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri) error {
	diags, err := h.ws.Diagnostics(uri)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, uri, convertDiagnostics(diags))
	return nil
}

func toChange(raw any) (text.Change, bool) {
	switch c := raw.(type) {
	case protocol.TextDocumentContentChangeEvent:
		return rangedChange(c.Range, c.Text), true
	case *protocol.TextDocumentContentChangeEvent:
		return rangedChange(c.Range, c.Text), true
	case protocol.TextDocumentContentChangeEventWhole:
		return text.Change{Text: c.Text}, true
	case *protocol.TextDocumentContentChangeEventWhole:
		return text.Change{Text: c.Text}, true
	}
	return text.Change{}, false
}

func rangedChange(r *protocol.Range, s string) text.Change {
	if r == nil {
		return text.Change{Text: s}
	}
	tr := fromRange(*r)
	return text.Change{Range: &tr, Text: s}
}

func droppedEdits(uri protocol.DocumentUri, err error) string {
	code := lerrors.ErrorEditRange
	return fmt.Sprintf("%s: dropped edits (%s %s): %s", uri, code, lerrors.GetErrorDescription(code), err)
}

func fromPosition(p protocol.Position) text.Position {
	return text.Position{Line: int(p.Line), Character: int(p.Character)}
}

func fromRange(r protocol.Range) text.Range {
	return text.Range{Start: fromPosition(r.Start), End: fromPosition(r.End)}
}

func toPosition(p text.Position) protocol.Position {
	return protocol.Position{Line: protocol.UInteger(p.Line), Character: protocol.UInteger(p.Character)}
}

func toRange(r text.Range) protocol.Range {
	return protocol.Range{Start: toPosition(r.Start), End: toPosition(r.End)}
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
