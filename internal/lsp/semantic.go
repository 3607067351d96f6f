package lsp

import (
	"strings"
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"leek/internal/ast"
	"leek/internal/parser"
	"leek/internal/text"
)

// SemanticTokenTypes is the legend sent in the initialize result. Token type
// indexes in the encoded data refer to this slice.
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"comment",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
}

// SemanticToken is one token before delta encoding.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// TextDocumentSemanticTokensFull classifies every token of the document. Names
// are classified from the tree when the document parses and from the next
// token otherwise, so highlighting survives syntax errors.
func (h *LeekHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	snap, ok := h.ws.Snapshot(params.TextDocument.URI)
	if !ok {
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}

	tokens, err := parser.Tokenize(snap.Text)
	if err != nil {
		log.Debugf("%s: tokenize: %s", snap.URI, err)
	}

	return &protocol.SemanticTokens{Data: encode(collectTokens(snap.Buffer, snap.Program, tokens))}, nil
}

type classification struct {
	tokenType string
	modifiers []string
}

// classifyNames records the role of each name in the tree, keyed by offset.
func classifyNames(prog *ast.Program) map[int]classification {
	names := make(map[int]classification)
	if prog == nil {
		return names
	}

	ast.Inspect(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.DeclareStmt:
			names[n.Name.Range.Start] = classification{"variable", []string{"declaration"}}
		case *ast.AssignStmt:
			names[n.Name.Range.Start] = classification{"variable", nil}
		case *ast.VarExpr:
			names[n.Range.Start] = classification{"variable", nil}
		case *ast.FunctionStmt:
			names[n.Name.Range.Start] = classification{"function", []string{"declaration", "definition"}}
			for _, p := range n.Params {
				names[p.Range.Start] = classification{"parameter", []string{"declaration"}}
			}
		case *ast.CallExpr:
			names[n.Name.Range.Start] = classification{"function", nil}
		case *ast.CallStmt:
			names[n.Name.Range.Start] = classification{"function", nil}
		}
		return true
	})

	// Uses of a parameter inside its function body.
	for _, fn := range ast.Functions(prog) {
		params := make(map[string]bool, len(fn.Params))
		for _, p := range fn.Params {
			params[p.Value] = true
		}
		ast.Inspect(fn, func(n ast.Node) bool {
			if v, ok := n.(*ast.VarExpr); ok && params[v.Name] {
				names[v.Range.Start] = classification{"parameter", nil}
			}
			return true
		})
	}

	return names
}

func collectTokens(buf *text.Buffer, prog *ast.Program, tokens []parser.Token) []SemanticToken {
	names := classifyNames(prog)

	var out []SemanticToken
	for i, tok := range tokens {
		var c classification
		switch {
		case tok.Type == parser.IDENTIFIER:
			if named, ok := names[tok.Offset]; ok {
				c = named
			} else if i+1 < len(tokens) && tokens[i+1].Type == parser.LEFT_PAREN {
				c = classification{tokenType: "function"}
			} else {
				c = classification{tokenType: "variable"}
			}
		case tok.Type.IsKeyword():
			c = classification{tokenType: "keyword"}
		case tok.Type == parser.NUMBER:
			c = classification{tokenType: "number"}
		case tok.Type == parser.COMMENT:
			c = classification{tokenType: "comment"}
		case tok.Type == parser.EQUAL || tok.Type == parser.BANG:
			c = classification{tokenType: "operator"}
		default:
			continue
		}
		out = append(out, makeTokens(buf, tok, c)...)
	}
	return out
}

// makeTokens emits one token per line the lexeme spans; clients without
// multiline token support reject tokens that cross a line break.
func makeTokens(buf *text.Buffer, tok parser.Token, c classification) []SemanticToken {
	tokenType := indexOf(c.tokenType, SemanticTokenTypes)
	modifiers := 0
	for _, m := range c.modifiers {
		modifiers |= 1 << indexOf(m, SemanticTokenModifiers)
	}

	var out []SemanticToken
	start := 0
	for {
		end := strings.IndexByte(tok.Lexeme[start:], '\n')
		lineEnd := len(tok.Lexeme)
		if end >= 0 {
			lineEnd = start + end
		}
		part := strings.TrimSuffix(tok.Lexeme[start:lineEnd], "\r")
		if n := utf8.RuneCountInString(part); n > 0 {
			pos := buf.PositionAt(tok.Offset + start)
			out = append(out, SemanticToken{
				Line:           uint32(pos.Line),
				StartChar:      uint32(pos.Character),
				Length:         uint32(n),
				TokenType:      tokenType,
				TokenModifiers: modifiers,
			})
		}
		if end < 0 {
			return out
		}
		start = lineEnd + 1
	}
}

// encode applies the relative encoding of the LSP: line and start are deltas
// from the previous token.
func encode(tokens []SemanticToken) []protocol.UInteger {
	data := make([]protocol.UInteger, 0, len(tokens)*5)
	var prevLine, prevChar uint32
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevChar
		}
		data = append(data,
			deltaLine,
			deltaStart,
			tok.Length,
			protocol.UInteger(tok.TokenType),
			protocol.UInteger(tok.TokenModifiers),
		)
		prevLine, prevChar = tok.Line, tok.StartChar
	}
	return data
}

// indexOf returns the index of target in list, or 0 if it is missing.
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
