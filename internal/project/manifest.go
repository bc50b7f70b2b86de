// Package project loads the optional zero.toml manifest a program
// directory may carry: entry file, diagnostic cap, and an allow-list of
// external function names. The CLI uses only the entry file, when no
// path is given on the command line. Its absence is not an error - a
// bare source file compiles and runs with CLI defaults.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded contents of a zero.toml file plus where it was
// found on disk.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the TOML schema for zero.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type RunConfig struct {
	// Main is the entry source file, relative to the manifest's
	// directory, used when the CLI is invoked without an explicit path.
	Main string `toml:"main"`
	// MaxDiagnostics is decoded from the manifest but not applied by
	// the CLI, whose diagnostic cap comes from --max-diagnostics only.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Externals is an allow-list of external function names. It is
	// decoded but not applied: the CLI registers all built-ins
	// regardless of its contents.
	Externals []string `toml:"externals"`
}

// Find searches startDir and its ancestors for a zero.toml, the same way
// Go searches for go.mod: it stops at the first match walking upward.
func Find(startDir string) (path string, found bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "zero.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and decodes the manifest reachable from startDir. ok is
// false (with a nil error) when no manifest exists anywhere above
// startDir.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, found, err := Find(startDir)
	if err != nil || !found {
		return nil, found, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}
