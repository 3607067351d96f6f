package workspace

import (
	"errors"

	"leek/internal/ast"
	"leek/internal/parser"
	"leek/internal/text"
)

// Document is one open text together with the results of its last parse.
// Exactly one of program and parseErr is set after every reparse.
type Document struct {
	uri      string
	version  int32
	buffer   *text.Buffer
	program  *ast.Program
	parseErr *parser.ParseError
	decls    []ast.Declaration
}

func newDocument(uri, content string, version int32) *Document {
	doc := &Document{
		uri:     uri,
		version: version,
		buffer:  text.NewBuffer(content),
	}
	doc.reparse()
	return doc
}

// reparse rebuilds the tree and the declaration cache from the buffer.
func (d *Document) reparse() {
	prog, err := parser.Parse(d.buffer.Text())
	if err != nil {
		d.program = nil
		d.decls = nil
		d.parseErr = asParseError(err)
		log.Debugf("%s: parse failed: %s", d.uri, err)
		return
	}

	d.program = prog
	d.parseErr = nil
	d.decls = ast.Declarations(prog)
}

func asParseError(err error) *parser.ParseError {
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		return perr
	}
	return &parser.ParseError{Kind: parser.SYNTAX_ERROR, Msg: err.Error()}
}

// Snapshot is a consistent, read-only view of a document at one revision.
type Snapshot struct {
	URI          string
	Version      int32
	Text         string
	Buffer       *text.Buffer
	Program      *ast.Program
	ParseError   *parser.ParseError
	Declarations []ast.Declaration
}

func (d *Document) snapshot() Snapshot {
	return Snapshot{
		URI:          d.uri,
		Version:      d.version,
		Text:         d.buffer.Text(),
		Buffer:       text.NewBuffer(d.buffer.Text()),
		Program:      d.program,
		ParseError:   d.parseErr,
		Declarations: append([]ast.Declaration(nil), d.decls...),
	}
}
