// Copyright © 2026 The chill-lsp authors

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.chl")
	src := "MODULE demo;\nNEWMODE counter = RANGE(0:100);\nDCL count counter := 0;\nEND demo;\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSymbolsCommand(t *testing.T) {
	path := writeTestFile(t)
	out, err := runCommand(t, "symbols", path)
	require.NoError(t, err)

	assert.Contains(t, out, "MODULE")
	assert.Contains(t, out, "counter")
	assert.Contains(t, out, "NEWMODE RANGE")
	assert.Contains(t, out, "count")
}

func TestSymbolsCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "symbols", filepath.Join(t.TempDir(), "missing.chl"))
	assert.Error(t, err)
}

func TestDocCommand(t *testing.T) {
	out, err := runCommand(t, "doc", "MODULE")
	require.NoError(t, err)
	assert.Contains(t, out, "**MODULE**")
	assert.Contains(t, out, "basic unit")
}

func TestDocCommandCaseInsensitive(t *testing.T) {
	out, err := runCommand(t, "doc", "newmode")
	require.NoError(t, err)
	assert.Contains(t, out, "**newmode**")
}

func TestDocCommandMiss(t *testing.T) {
	_, err := runCommand(t, "doc", "not_a_keyword")
	assert.Error(t, err)
}

func TestDocCommandList(t *testing.T) {
	out, err := runCommand(t, "doc", "-l")
	require.NoError(t, err)
	assert.Contains(t, out, "Reserved words:")
	assert.Contains(t, out, "Predefined names:")
	assert.Contains(t, out, "NEWMODE")
	assert.Contains(t, out, "ABS")
}
