// Copyright © 2026 The chill-lsp authors

package analysis

import "strings"

// StripComments removes block comments ("/* ... */", any span) and line
// comments ("--" to end of line) from CHILL source. Line breaks are never
// removed, so every line of the result maps back to the same 1-based line
// number in the input.
func StripComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))

	inBlock := false
	for i := 0; i < len(source); {
		if inBlock {
			switch {
			case source[i] == '\n':
				sb.WriteByte('\n')
				i++
			case strings.HasPrefix(source[i:], "*/"):
				inBlock = false
				i += 2
			default:
				i++
			}
			continue
		}
		switch {
		case strings.HasPrefix(source[i:], "/*"):
			inBlock = true
			i += 2
		case strings.HasPrefix(source[i:], "--"):
			// Drop the rest of the line, keep the newline.
			for i < len(source) && source[i] != '\n' {
				i++
			}
		default:
			sb.WriteByte(source[i])
			i++
		}
	}
	return sb.String()
}
