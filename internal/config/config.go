// Package config loads leek.yaml, the settings shared by the language server
// and the command-line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name looked up in the working directory when no explicit
// path is given.
const FileName = "leek.yaml"

type Config struct {
	Log         Log         `yaml:"log"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
	Completion  Completion  `yaml:"completion"`
}

type Log struct {
	// Verbosity follows commonlog: 0 logs notices and worse, 1 adds info
	// and 2 adds debug.
	Verbosity int `yaml:"verbosity"`
	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

type Diagnostics struct {
	// Declarations enables the informational "found variable" diagnostics.
	Declarations bool   `yaml:"declarations"`
	Source       string `yaml:"source"`
}

type Completion struct {
	Keywords bool `yaml:"keywords"`
}

func Default() Config {
	return Config{
		Log: Log{Verbosity: 1},
		Diagnostics: Diagnostics{
			Declarations: true,
			Source:       "leek",
		},
		Completion: Completion{Keywords: true},
	}
}

// Load reads the file at path on top of the defaults. An empty path means
// leek.yaml in the working directory, and a missing default file is not an
// error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if cfg.Diagnostics.Source == "" {
		cfg.Diagnostics.Source = Default().Diagnostics.Source
	}
	if cfg.Log.Verbosity < 0 {
		return Default(), fmt.Errorf("parse config: log.verbosity must not be negative, got %d", cfg.Log.Verbosity)
	}
	return cfg, nil
}
