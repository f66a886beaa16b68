package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateConfig points the default settings location at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const smallCatalog = `authors:
  herbert: Frank Herbert
  asimov: Isaac Asimov
genres:
  sf: Science Fiction
  robots: Robots
books:
  - id: dune
    title: Dune
    author: herbert
    genres: [sf]
    image: dune.jpg
    description: Spice.
    published: 1965-08-01
  - id: foundation
    title: Foundation
    author: asimov
    genres: [sf]
    image: foundation.jpg
    published: 1951-06-01
  - id: i-robot
    title: I, Robot
    author: asimov
    genres: [sf, robots]
    image: robot.jpg
    published: 1950-12-02
`
