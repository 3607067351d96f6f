package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.leek")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckValidFile(t *testing.T) {
	path := writeSource(t, "var a = 3;\nprint(a);")

	stdout, _, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 statements, 1 declarations")
}

func TestCheckReportsParseError(t *testing.T) {
	path := writeSource(t, "var a = 1;\nif (1 print(a); }")

	_, stderr, err := execute(t, "check", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))

	assert.Contains(t, stderr, `error[E0100]: expected ")"`)
	assert.Contains(t, stderr, "2:7")
	assert.Contains(t, stderr, "if (1 print(a); }")
	assert.Contains(t, stderr, "^^^^^")
	assert.Contains(t, stderr, "Check failed")
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "nope.leek"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, errReported), "read errors are printed by main")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAstPrintsLineColumnRanges(t *testing.T) {
	path := writeSource(t, "var a = 3;\nprint(a);")

	stdout, _, err := execute(t, "ast", path)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"PROGRAM [1:1-2:10]",
		"  DECLARE_STMT a [1:1-1:11]",
		"    CONST_EXPR 3 [1:9-1:10]",
		"  CALL_STMT print [2:1-2:10]",
		"    VAR_EXPR a [2:7-2:8]",
		"",
	}, "\n")
	assert.Equal(t, expected, stdout)
}

func TestSymbols(t *testing.T) {
	path := writeSource(t, "var g = 1;\nfunction f(x, y) {\n  var z = x;\n}")

	stdout, _, err := execute(t, "symbols", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"var", "g", "1:5"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"function", "f(x,", "y)", "2:10"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"var", "z", "3:7"}, strings.Fields(lines[2]))
}

func TestInvalidColorMode(t *testing.T) {
	rootCmd.SetArgs([]string{"--color", "sometimes", "check", "x.leek"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --color")
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "leek.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  verbosity: -1\n"), 0o644))
	path := writeSource(t, "var a = 1;")

	_, _, err := execute(t, "--config", cfgPath, "check", path)
	require.Error(t, err)

	// Reset for the tests that follow.
	flagConfig = ""
}

func TestExplain(t *testing.T) {
	stdout, _, err := execute(t, "explain", "e0900")
	require.NoError(t, err)
	assert.Equal(t, "E0900 (Tooling): Edit range lies outside the document\n", stdout)

	_, _, err = execute(t, "explain", "E0150")
	assert.ErrorContains(t, err, `unknown diagnostic code "E0150"`)
}
