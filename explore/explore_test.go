// Copyright © 2026 The chill-lsp authors

package explore

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zaneham/Chill-lsp/analysis"
)

const testSource = `MODULE demo;
NEWMODE counter = RANGE(0:100);
DCL count counter := 0;
END demo;
`

func writeTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.chl")
	require.NoError(t, os.WriteFile(path, []byte(testSource), 0600))
	return path
}

func runExploreWithString(t *testing.T, path, input string) string {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	go func() {
		defer inW.Close() //nolint:errcheck // test cleanup
		_, _ = io.WriteString(inW, input)
	}()

	go func() {
		err := Run(path, WithStdin(inR), WithStdout(outW))
		assert.NoError(t, err)
		inR.Close()  //nolint:errcheck,gosec // test cleanup
		outW.Close() //nolint:errcheck,gosec // test cleanup
	}()

	var output bytes.Buffer
	_, _ = io.Copy(&output, outR)
	outR.Close() //nolint:errcheck,gosec // test cleanup

	return output.String()
}

func TestRunMissingFile(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "missing.chl"))
	assert.Error(t, err)
}

func TestConsoleCommands(t *testing.T) {
	path := writeTestFile(t)
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "symbols",
			input:    "symbols\nquit\n",
			expected: "counter",
		},
		{
			name:     "hover",
			input:    "hover count\nquit\n",
			expected: "DCL USER (counter)",
		},
		{
			name:     "hover miss",
			input:    "hover nothing_here\nquit\n",
			expected: `no documentation for "nothing_here"`,
		},
		{
			name:     "complete",
			input:    "complete cou\nquit\n",
			expected: "NEWMODE",
		},
		{
			name:     "refs",
			input:    "refs counter\nquit\n",
			expected: ":2:9",
		},
		{
			name:     "reload",
			input:    "reload\nquit\n",
			expected: "reloaded",
		},
		{
			name:     "unknown command",
			input:    "frobnicate\nquit\n",
			expected: "unknown command",
		},
		{
			name:     "help",
			input:    "help\nquit\n",
			expected: "complete PREFIX",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := runExploreWithString(t, path, tc.input)
			require.Contains(t, got, tc.expected)
		})
	}
}

func TestSymbolCompleter(t *testing.T) {
	sess := &session{
		content: testSource,
		model:   analysis.Parse(testSource),
	}
	c := &symbolCompleter{sess: sess}

	// "cou" should match count and counter.
	candidates, offset := c.Do([]rune("hover cou"), 9)
	assert.Equal(t, 3, offset)
	require.Len(t, candidates, 2)
	assert.Equal(t, "nt", string(candidates[0]))
	assert.Equal(t, "nter", string(candidates[1]))

	// An unknown prefix has no completions.
	candidates, _ = c.Do([]rune("hover zzz_nothing"), 17)
	assert.Empty(t, candidates)

	// An empty word has no completions.
	candidates, offset = c.Do([]rune("hover "), 6)
	assert.Empty(t, candidates)
	assert.Equal(t, 0, offset)
}

func TestEnsureHistoryFilePermissions_CreatesWithRestrictedMode(t *testing.T) {
	histFile := filepath.Join(t.TempDir(), ".chill_history")

	ensureHistoryFilePermissions(histFile)

	info, err := os.Stat(histFile)
	require.NoError(t, err, "history file should be created")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestEnsureHistoryFilePermissions_RestrictsExistingFile(t *testing.T) {
	histFile := filepath.Join(t.TempDir(), ".chill_history")
	require.NoError(t, os.WriteFile(histFile, []byte("symbols"), 0644))

	ensureHistoryFilePermissions(histFile)

	info, err := os.Stat(histFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(histFile)
	require.NoError(t, err)
	assert.Equal(t, "symbols", string(data))
}

func TestEnsureHistoryFilePermissions_EmptyPathNoOp(t *testing.T) {
	ensureHistoryFilePermissions("")
}
