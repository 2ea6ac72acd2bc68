// Copyright © 2026 The chill-lsp authors

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindReferences_WholeWordOnly(t *testing.T) {
	text := "DCL count INT;\nCount := accounting + 1;\ndiscount := 2;"
	refs := FindReferences(text, "count")
	require.Len(t, refs, 2, "accounting and discount must not match")
	assert.Equal(t, Reference{Line: 0, StartCol: 4, EndCol: 9}, refs[0])
	assert.Equal(t, Reference{Line: 1, StartCol: 0, EndCol: 5}, refs[1])
}

func TestFindReferences_CaseInsensitive(t *testing.T) {
	text := "COUNT count Count"
	refs := FindReferences(text, "CoUnT")
	assert.Len(t, refs, 3)
}

func TestFindReferences_MultiplePerLine(t *testing.T) {
	refs := FindReferences("x := x + x;", "x")
	require.Len(t, refs, 3)
	assert.Equal(t, 0, refs[0].StartCol)
	assert.Equal(t, 5, refs[1].StartCol)
	assert.Equal(t, 9, refs[2].StartCol)
}

func TestFindReferences_UnderscoreBoundary(t *testing.T) {
	refs := FindReferences("max max_size size", "max")
	require.Len(t, refs, 1, "max_size does not contain the word max")
	assert.Equal(t, 0, refs[0].StartCol)
}

func TestFindReferences_None(t *testing.T) {
	assert.Empty(t, FindReferences("DCL count INT;", "missing"))
	assert.Empty(t, FindReferences("", "count"))
	assert.Empty(t, FindReferences("anything", ""))
}
