package grammar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leek/grammar"
	"leek/internal/parser"
)

var accepted = []string{
	"",
	"// only a comment",
	"var a = 3;\nvar b = 4;\nif (a) { print(a); }",
	"while (!x) x = f(x);",
	"if (a) f(); else { g(); }",
	"if (a) if (b) f(); else g();",
	"function add(a, b) { return sum(a, b); }",
	"function noop() {}",
	"var l = [];",
	"var l = [1, [2, a], f()];",
	"x = !!y;",
	"/* block */ f(1);",
	"var variable = iffy;",
	"while (a) { }",
}

var rejected = []string{
	"if (1 print(a); }",
	"var a = 1",
	"var var = 1;",
	"f(a, );",
	"x = ;",
	"{ f(); }",
	"else f();",
	"var a = é;",
	"[1];",
	"!a;",
	"function f(a, ) {}",
	"if (a) f(); else",
}

func TestGrammarAgreesWithParser(t *testing.T) {
	for _, src := range accepted {
		t.Run(src, func(t *testing.T) {
			program, err := grammar.Parse("", src)
			require.NoError(t, err)

			prog, err := parser.Parse(src)
			require.NoError(t, err)
			assert.Len(t, program.Statements, len(prog.Statements))
		})
	}

	for _, src := range rejected {
		t.Run(src, func(t *testing.T) {
			_, err := grammar.Parse("", src)
			assert.Error(t, err, "grammar")

			_, err = parser.Parse(src)
			assert.Error(t, err, "parser")
		})
	}
}

func TestGrammarShape(t *testing.T) {
	program, err := grammar.Parse("", "function f(x) { if (x) return [x]; else return g(); }")
	require.NoError(t, err)
	require.Len(t, program.Statements, 1)

	fn := program.Statements[0].Function
	require.NotNil(t, fn)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"x"}, fn.Params)
	require.True(t, fn.Body.Braced)
	require.Len(t, fn.Body.Statements, 1)

	ifStmt := fn.Body.Statements[0].If
	require.NotNil(t, ifStmt)
	assert.Equal(t, "x", *ifStmt.Cond.Var)
	require.NotNil(t, ifStmt.Then.Single)
	assert.NotNil(t, ifStmt.Then.Single.Return.Value.List)
	require.NotNil(t, ifStmt.Else)
	assert.Equal(t, "g", ifStmt.Else.Single.Return.Value.Call.Name)
}

func TestParseErrorPosition(t *testing.T) {
	_, err := grammar.Parse("main.leek", "var a = 1;\nif (1 print(a); }")
	require.Error(t, err)

	var perr participle.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "main.leek", perr.Position().Filename)
	assert.Equal(t, 2, perr.Position().Line)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.leek")
	require.NoError(t, os.WriteFile(path, []byte("var a = 1;"), 0o644))

	program, err := grammar.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a", program.Statements[0].Declare.Name)

	_, err = grammar.ParseFile(filepath.Join(t.TempDir(), "missing.leek"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	assert.Contains(t, ebnf, "Statement")
	assert.Contains(t, ebnf, `"function"`)
}
