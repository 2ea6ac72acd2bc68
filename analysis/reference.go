// Copyright © 2026 The chill-lsp authors

package analysis

import "strings"

// Reference is one whole-word occurrence of a searched name. Line and
// columns are 0-based offsets, unlike the 1-based line numbers entities
// carry.
type Reference struct {
	Line     int
	StartCol int
	EndCol   int
}

// FindReferences scans the raw document text for every case-insensitive
// whole-word occurrence of word. It is independent of the symbol table:
// matches inside longer identifiers are excluded by word-boundary checks,
// not by any semantic knowledge.
func FindReferences(text, word string) []Reference {
	if word == "" {
		return nil
	}
	target := strings.ToUpper(word)
	var refs []Reference
	for li, line := range strings.Split(text, "\n") {
		upper := strings.ToUpper(line)
		for start := 0; ; {
			idx := strings.Index(upper[start:], target)
			if idx < 0 {
				break
			}
			pos := start + idx
			end := pos + len(target)
			leftOK := pos == 0 || !isWordChar(upper[pos-1])
			rightOK := end >= len(upper) || !isWordChar(upper[end])
			if leftOK && rightOK {
				refs = append(refs, Reference{Line: li, StartCol: pos, EndCol: end})
			}
			start = pos + 1
		}
	}
	return refs
}
