// Copyright © 2026 The chill-lsp authors

package explore

import (
	"github.com/Zaneham/Chill-lsp/analysis"
)

// symbolCompleter implements readline.AutoCompleter by enumerating
// keywords, predefined names, and symbols from the session's model.
type symbolCompleter struct {
	sess *session
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	items := analysis.Completions(c.sess.model, prefix, len(prefix))
	if len(items) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(items))
	for _, item := range items {
		if len(item.Name) < len(prefix) {
			continue
		}
		result = append(result, []rune(item.Name[len(prefix):]))
	}
	return result, len(prefix)
}
