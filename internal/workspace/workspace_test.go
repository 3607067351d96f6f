package workspace

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leek/internal/ast"
	lerrors "leek/internal/errors"
	"leek/internal/text"
)

const uri = "file:///tmp/sample.leek"

const sample = "var a = 3;\nvar b = 4;\nif (a) { print(a); }"

func pos(line, char int) text.Position {
	return text.Position{Line: line, Character: char}
}

func rangeChange(sl, sc, el, ec int, s string) text.Change {
	return text.Change{Range: &text.Range{Start: pos(sl, sc), End: pos(el, ec)}, Text: s}
}

func TestOpenParsesDocument(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, sample, 1)

	decls, err := w.Declarations(uri)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "a", decls[0].Name)
	assert.Equal(t, "b", decls[1].Name)

	snap, ok := w.Snapshot(uri)
	require.True(t, ok)
	assert.Equal(t, int32(1), snap.Version)
	assert.Equal(t, sample, snap.Text)
	require.NotNil(t, snap.Program)
	assert.Nil(t, snap.ParseError)
	assert.Len(t, snap.Program.Statements, 3)

	assert.Equal(t, []string{uri}, w.Documents())
}

func TestDeclarationDiagnostics(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, sample, 1)

	diags, err := w.Diagnostics(uri)
	require.NoError(t, err)

	expected := []Diagnostic{
		{
			Range:    text.Range{Start: pos(0, 4), End: pos(0, 5)},
			Severity: SeverityInformation,
			Code:     lerrors.InfoDeclaration,
			Message:  "found variable 'a'",
			Source:   "leek",
		},
		{
			Range:    text.Range{Start: pos(1, 4), End: pos(1, 5)},
			Severity: SeverityInformation,
			Code:     lerrors.InfoDeclaration,
			Message:  "found variable 'b'",
			Source:   "leek",
		},
	}
	if diff := cmp.Diff(expected, diags); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarationDiagnosticsDisabled(t *testing.T) {
	w := New(Options{Declarations: false, Source: "leek"})
	w.Open(uri, sample, 1)

	diags, err := w.Diagnostics(uri)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.NotNil(t, diags, "an empty list clears published diagnostics")
}

func TestParseErrorDiagnostic(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, "var a = 1;\nif (1 print(a); }", 1)

	diags, err := w.Diagnostics(uri)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, lerrors.ErrorSyntax, d.Code)
	assert.Equal(t, `expected ")"`, d.Message)
	assert.Equal(t, text.Range{Start: pos(1, 6), End: pos(1, 11)}, d.Range)

	decls, err := w.Declarations(uri)
	require.NoError(t, err)
	assert.Empty(t, decls, "declarations are reset when parsing fails")

	_, ok := w.NodeAt(uri, pos(0, 8))
	assert.False(t, ok, "no tree to query")
}

func TestParseErrorAtEndCoversOneCharacter(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, "var a = 1", 1)

	diags, err := w.Diagnostics(uri)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, text.Range{Start: pos(0, 9), End: pos(0, 10)}, diags[0].Range)
}

func TestChangeShiftsLaterRanges(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, sample, 1)

	before, _ := w.Snapshot(uri)
	require.NoError(t, w.Change(uri, 2, rangeChange(0, 8, 0, 9, "30")))
	after, _ := w.Snapshot(uri)

	assert.Equal(t, "var a = 30;\nvar b = 4;\nif (a) { print(a); }", after.Text)
	assert.Equal(t, int32(2), after.Version)

	assert.Equal(t, before.Declarations[0], after.Declarations[0], "ranges before the edit are untouched")
	b0, b1 := before.Declarations[1], after.Declarations[1]
	assert.Equal(t, b0.Range.Start+1, b1.Range.Start)
	assert.Equal(t, b0.Site.End+1, b1.Site.End)

	for i := range before.Program.Statements {
		if i == 0 {
			continue
		}
		r0, r1 := before.Program.Statements[i].NodeRange(), after.Program.Statements[i].NodeRange()
		assert.Equal(t, ast.Range{Start: r0.Start + 1, End: r0.End + 1}, r1)
	}
}

func TestChangeSkipsUnresolvableEdits(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, "var a = 1;", 1)

	err := w.Change(uri, 2,
		rangeChange(5, 0, 5, 1, "x"),
		rangeChange(0, 8, 0, 9, "2"),
	)
	require.Error(t, err)

	var rangeErr *text.RangeError
	assert.True(t, errors.As(err, &rangeErr))

	snap, _ := w.Snapshot(uri)
	assert.Equal(t, "var a = 2;", snap.Text, "the valid edit is still applied")
	assert.Equal(t, int32(2), snap.Version)
}

func TestChangeFullAndSequential(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, "", 1)

	require.NoError(t, w.Change(uri, 2,
		text.Change{Text: "var a = 1;"},
		rangeChange(0, 10, 0, 10, "\nvar b = a;"),
	))

	decls, err := w.Declarations(uri)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "b", decls[1].Name)
}

func TestUnknownDocument(t *testing.T) {
	w := New(DefaultOptions())

	err := w.Change("file:///nope", 1, text.Change{Text: "x"})
	assert.True(t, errors.Is(err, ErrUnknownDocument))
	assert.Contains(t, err.Error(), "file:///nope")

	_, err = w.Declarations("file:///nope")
	assert.True(t, errors.Is(err, ErrUnknownDocument))

	_, err = w.Diagnostics("file:///nope")
	assert.True(t, errors.Is(err, ErrUnknownDocument))

	_, ok := w.NodeAt("file:///nope", pos(0, 0))
	assert.False(t, ok)

	_, ok = w.Snapshot("file:///nope")
	assert.False(t, ok)
}

func TestCloseForgetsDocument(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, sample, 1)
	w.Close(uri)

	_, ok := w.Snapshot(uri)
	assert.False(t, ok)
	assert.Empty(t, w.Documents())
}

func TestNodeAt(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, sample, 1)

	info, ok := w.NodeAt(uri, pos(0, 8))
	require.True(t, ok)
	assert.Equal(t, ast.CONST_EXPR, info.Node.NodeType())
	assert.Equal(t, text.Range{Start: pos(0, 8), End: pos(0, 9)}, info.Range)
	assert.Contains(t, info.Description, "constant")
	assert.Contains(t, info.Description, "3")

	info, ok = w.NodeAt(uri, pos(2, 15))
	require.True(t, ok)
	assert.Equal(t, ast.VAR_EXPR, info.Node.NodeType())

	info, ok = w.NodeAt(uri, pos(2, 10))
	require.True(t, ok)
	assert.Equal(t, ast.CALL_STMT, info.Node.NodeType())
	assert.Equal(t, text.Range{Start: pos(2, 9), End: pos(2, 18)}, info.Range)

	_, ok = w.NodeAt(uri, pos(9, 0))
	assert.False(t, ok, "line outside the document")
}

func TestDefinition(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, sample, 1)

	r, ok := w.Definition(uri, pos(2, 15))
	require.True(t, ok)
	assert.Equal(t, text.Range{Start: pos(0, 4), End: pos(0, 5)}, r)

	_, ok = w.Definition(uri, pos(2, 10))
	assert.False(t, ok, "print is not defined in the document")
}

func TestConcurrentEditsAndQueries(t *testing.T) {
	w := New(DefaultOptions())
	w.Open(uri, "", 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				src := fmt.Sprintf("var v%d = %d;", i, j)
				_ = w.Change(uri, int32(i*100+j), text.Change{Text: src})
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				snap, ok := w.Snapshot(uri)
				if !ok {
					continue
				}
				// Text, tree and declarations come from the same revision.
				if snap.Program != nil && len(snap.Declarations) == 1 {
					d := snap.Declarations[0]
					assert.Equal(t, snap.Text[d.Range.Start:d.Range.End], d.Name)
				}
				_, _ = w.Diagnostics(uri)
				_, _ = w.NodeAt(uri, pos(0, 4))
			}
		}()
	}
	wg.Wait()

	snap, ok := w.Snapshot(uri)
	require.True(t, ok)
	require.NotNil(t, snap.Program)
	assert.Len(t, snap.Declarations, 1)
}
