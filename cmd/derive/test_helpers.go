// test_helpers.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// minimalManifestYAML returns a manifest covering the sample source below.
func minimalManifestYAML() []byte {
	return []byte(`package: game
source: models.go
out: models_mirror.gen.go
structs:
  - Player
  - Guild
`)
}

// sampleSourceGo returns a source file with the field shapes the parser must
// handle: builtins and their aliases, local named types, pointers, slices,
// maps, selectors, tags, embedding, and an unexported field.
func sampleSourceGo() []byte {
	return []byte(`package game

import "time"

type Badge struct {
	ID int
}

type Guild struct {
	Name string
}

type Player struct {
	Badge
	Name    string            ` + "`json:\"name\" inject:\"\"`" + `
	Level   int
	Guild   *Guild
	Tags    []string
	Scores  map[string]int
	Joined  time.Time
	secrets []byte
	Initial rune
}
`)
}

// writeTempProject lays out a manifest plus source in a temp dir and returns
// the manifest path.
func writeTempProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.go"), sampleSourceGo(), 0o644))

	manifestPath := filepath.Join(dir, "derive.yaml")
	require.NoError(t, os.WriteFile(manifestPath, minimalManifestYAML(), 0o644))
	return manifestPath
}
