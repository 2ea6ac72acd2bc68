// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Zaneham/Chill-lsp/analysis"
)

// wordAtPosition extracts the CHILL identifier at the given 0-based LSP
// position from the document content. The cursor can be inside or at the
// end of a word; in both cases the full word is returned.
func wordAtPosition(content string, line, col int) string {
	ln, ok := lineAt(content, line)
	if !ok {
		return ""
	}
	if col < 0 {
		return ""
	}
	if col > len(ln) {
		col = len(ln)
	}
	start := col
	for start > 0 && isIdentChar(ln[start-1]) {
		start--
	}
	end := col
	for end < len(ln) && isIdentChar(ln[end]) {
		end++
	}
	return ln[start:end]
}

// lineAt returns the 0-based line of content, if it exists.
func lineAt(content string, line int) (string, bool) {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return "", false
	}
	return lines[line], true
}

// isIdentChar matches CHILL identifier bytes: letters, digits, underscore.
func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// nameSpan locates name on the given 1-based source line and returns its
// 0-based LSP range. When the name cannot be found the range collapses to
// the line start.
func nameSpan(content string, line1 int, name string) protocol.Range {
	startCol, endCol := 0, 0
	if ln, ok := lineAt(content, line1-1); ok {
		if idx := strings.Index(strings.ToUpper(ln), strings.ToUpper(name)); idx >= 0 {
			startCol = idx
			endCol = idx + len(name)
		}
	}
	return protocol.Range{
		Start: protocol.Position{Line: safeUint(line1 - 1), Character: safeUint(startCol)},
		End:   protocol.Position{Line: safeUint(line1 - 1), Character: safeUint(endCol)},
	}
}

// lineSpan returns a range covering whole lines from a 1-based start to a
// 1-based end line inclusive.
func lineSpan(content string, start1, end1 int) protocol.Range {
	endChar := 0
	if ln, ok := lineAt(content, end1-1); ok {
		endChar = len(ln)
	}
	return protocol.Range{
		Start: protocol.Position{Line: safeUint(start1 - 1), Character: 0},
		End:   protocol.Position{Line: safeUint(end1 - 1), Character: safeUint(endChar)},
	}
}

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- line/col are always small positive ints
}

// mapSymbolKind converts an analysis entity kind to an LSP SymbolKind.
func mapSymbolKind(kind analysis.Kind) protocol.SymbolKind {
	switch kind {
	case analysis.KindModule:
		return protocol.SymbolKindModule
	case analysis.KindMode:
		return protocol.SymbolKindClass
	case analysis.KindDeclaration:
		return protocol.SymbolKindVariable
	case analysis.KindSynonym:
		return protocol.SymbolKindConstant
	case analysis.KindProcedure, analysis.KindProcess:
		return protocol.SymbolKindFunction
	case analysis.KindSignal:
		return protocol.SymbolKindEvent
	default:
		return protocol.SymbolKindVariable
	}
}

// mapCompletionItemKind converts an analysis entity kind to an LSP
// CompletionItemKind.
func mapCompletionItemKind(kind analysis.Kind) protocol.CompletionItemKind {
	switch kind {
	case analysis.KindKeyword:
		return protocol.CompletionItemKindKeyword
	case analysis.KindPredefined:
		return protocol.CompletionItemKindFunction
	case analysis.KindDeclaration:
		return protocol.CompletionItemKindVariable
	case analysis.KindMode:
		return protocol.CompletionItemKindClass
	case analysis.KindProcedure:
		return protocol.CompletionItemKindFunction
	case analysis.KindSynonym:
		return protocol.CompletionItemKindConstant
	default:
		return protocol.CompletionItemKindText
	}
}
