// Package testutil provides shared test utilities for frename tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/alctny/frename/internal/config"
	"github.com/alctny/frename/internal/constants"
)

// SetupTestConfig points FRENAME_CONFIG at a temporary directory, writes
// configContent there when it is not empty, and reloads the config.
// Returns a cleanup function that should be deferred.
func SetupTestConfig(t *testing.T, configContent string) func() {
	t.Helper()

	tmpDir := t.TempDir()
	os.Setenv(constants.EnvConfigDir, tmpDir)

	if configContent != "" {
		configPath := filepath.Join(tmpDir, constants.ConfigFileName)
		if err := os.WriteFile(configPath, []byte(configContent), constants.FileMode); err != nil {
			t.Fatal(err)
		}
	}

	config.Reset()
	config.Init()

	return func() {
		os.Unsetenv(constants.EnvConfigDir)
		config.Reset()
	}
}

// MakeTree creates the given paths under root. A path ending in "/" is
// created as a directory, anything else as an empty file. Parent
// directories are created as needed.
func MakeTree(t testing.TB, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, constants.DirMode); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), constants.DirMode); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, nil, constants.FileMode); err != nil {
			t.Fatal(err)
		}
	}
}

// ListTree returns every path under root, relative to root and
// slash-separated, sorted. Directories carry a trailing "/".
func ListTree(t testing.TB, root string) []string {
	t.Helper()

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(paths)
	return paths
}

// MinimalTestConfig disables the journal and keeps every other default.
const MinimalTestConfig = `
[journal]
enabled = false
`
