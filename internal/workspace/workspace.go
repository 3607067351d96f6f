// Package workspace keeps the set of open documents and answers position
// queries against their latest parse.
package workspace

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tliron/commonlog"

	"leek/internal/ast"
	"leek/internal/text"
)

var log = commonlog.GetLogger("leek.workspace")

var ErrUnknownDocument = errors.New("unknown document")

// Options controls which diagnostics are produced.
type Options struct {
	Declarations bool
	Source       string
}

func DefaultOptions() Options {
	return Options{Declarations: true, Source: "leek"}
}

// Workspace is safe for concurrent use. Edits hold the write lock through the
// text change and the re-parse, so readers always see text, tree and
// declarations from the same revision.
type Workspace struct {
	mu      sync.RWMutex
	docs    map[string]*Document
	options Options
}

func New(options Options) *Workspace {
	return &Workspace{
		docs:    make(map[string]*Document),
		options: options,
	}
}

// Open registers a document, replacing any previous one with the same id.
func (w *Workspace) Open(id, content string, version int32) {
	doc := newDocument(id, content, version)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[id] = doc
	log.Infof("opened %s (version %d, %d bytes)", id, version, len(content))
}

func (w *Workspace) Close(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, id)
	log.Infof("closed %s", id)
}

// Change applies the changes in order and re-parses once. A change whose range
// does not resolve is skipped; the skipped edits are returned as a joined
// error of *text.RangeError values while the rest still take effect.
func (w *Workspace) Change(id string, version int32, changes ...text.Change) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, ok := w.docs[id]
	if !ok {
		return fmt.Errorf("change %s: %w", id, ErrUnknownDocument)
	}

	var errs []error
	for _, change := range changes {
		if err := doc.buffer.Apply(change); err != nil {
			log.Warningf("%s: dropping edit: %s", id, err)
			errs = append(errs, err)
		}
	}
	doc.version = version
	doc.reparse()

	return errors.Join(errs...)
}

// Snapshot captures a document for read-only work outside the lock.
func (w *Workspace) Snapshot(id string) (Snapshot, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[id]
	if !ok {
		return Snapshot{}, false
	}
	return doc.snapshot(), true
}

// Documents lists the ids of all open documents.
func (w *Workspace) Documents() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := make([]string, 0, len(w.docs))
	for id := range w.docs {
		ids = append(ids, id)
	}
	return ids
}

// NodeInfo describes the innermost node under a position.
type NodeInfo struct {
	Node        ast.Node
	Range       text.Range
	Description string
}

// NodeAt finds the innermost node at pos. It reports false when the document
// is unknown, failed to parse, or pos is not inside any node.
func (w *Workspace) NodeAt(id string, pos text.Position) (NodeInfo, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[id]
	if !ok || doc.program == nil {
		return NodeInfo{}, false
	}
	offset, ok := doc.buffer.OffsetOf(pos)
	if !ok {
		return NodeInfo{}, false
	}
	node, ok := ast.NodeAt(doc.program, offset)
	if !ok {
		return NodeInfo{}, false
	}

	r := node.NodeRange()
	return NodeInfo{
		Node:        node,
		Range:       doc.buffer.RangeOf(r.Start, r.End),
		Description: describe(node),
	}, true
}

func describe(node ast.Node) string {
	return fmt.Sprintf("**%s**\n\n```leek\n%s\n```", node.NodeType().Describe(), node.String())
}

// Declarations returns the cached declarations of the last successful parse.
func (w *Workspace) Declarations(id string) ([]ast.Declaration, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[id]
	if !ok {
		return nil, fmt.Errorf("declarations %s: %w", id, ErrUnknownDocument)
	}
	return append([]ast.Declaration(nil), doc.decls...), nil
}

// Definition resolves the name at pos to the range of its definition.
func (w *Workspace) Definition(id string, pos text.Position) (text.Range, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[id]
	if !ok || doc.program == nil {
		return text.Range{}, false
	}
	offset, ok := doc.buffer.OffsetOf(pos)
	if !ok {
		return text.Range{}, false
	}
	def, ok := ast.Resolve(doc.program, offset)
	if !ok {
		return text.Range{}, false
	}
	return doc.buffer.RangeOf(def.Range.Start, def.Range.End), true
}
