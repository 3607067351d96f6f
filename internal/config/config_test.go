package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  verbosity: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Log.Verbosity)
	assert.True(t, cfg.Diagnostics.Declarations, "unset keys keep their defaults")
	assert.Equal(t, "leek", cfg.Diagnostics.Source)
	assert.True(t, cfg.Completion.Keywords)
}

func TestParseFull(t *testing.T) {
	src := `
log:
  verbosity: 2
  file: /tmp/leek.log
diagnostics:
  declarations: false
  source: leek-dev
completion:
  keywords: false
`
	cfg, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Log:         Log{Verbosity: 2, File: "/tmp/leek.log"},
		Diagnostics: Diagnostics{Declarations: false, Source: "leek-dev"},
		Completion:  Completion{Keywords: false},
	}, cfg)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("diagnostics:\n  declaratons: true\n"))
	assert.Error(t, err, "misspelt keys are rejected")

	_, err = Parse([]byte("log: [1, 2"))
	assert.Error(t, err)

	_, err = Parse([]byte("log:\n  verbosity: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestParseEmptySourceFallsBack(t *testing.T) {
	cfg, err := Parse([]byte("diagnostics:\n  source: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "leek", cfg.Diagnostics.Source)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("completion:\n  keywords: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Completion.Keywords)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestLoadDefaultFileIsOptional(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(FileName, []byte("log:\n  verbosity: 4\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Log.Verbosity)
}
