// Copyright © 2026 The chill-lsp authors

package analysis

import "strings"

// CompletionItem is one completion candidate: a name, its kind variant,
// and a human-readable detail string. The transport adapter maps Kind to a
// protocol-level category.
type CompletionItem struct {
	Name   string
	Kind   Kind
	Detail string
}

// Completions returns every reserved word, predefined name, declaration,
// mode, procedure, and synonym whose name starts with the word ending at
// the cursor column, matched case-insensitively. Keywords and predefined
// names come in sorted order; model entities in source-declaration order.
// There is no further ranking.
func Completions(m *Model, lineText string, column int) []CompletionItem {
	prefix := strings.ToUpper(prefixAt(lineText, column))

	var items []CompletionItem
	for _, kw := range ReservedWords() {
		if strings.HasPrefix(kw, prefix) {
			items = append(items, CompletionItem{kw, KindKeyword, "CHILL keyword"})
		}
	}
	for _, name := range PredefinedNames() {
		if strings.HasPrefix(name, prefix) {
			items = append(items, CompletionItem{name, KindPredefined, "CHILL predefined name"})
		}
	}
	for _, name := range m.Names(KindDeclaration) {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			d := m.Declaration(name)
			items = append(items, CompletionItem{name, KindDeclaration, "DCL " + d.Mode.String()})
		}
	}
	for _, name := range m.Names(KindMode) {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			items = append(items, CompletionItem{name, KindMode, "NEWMODE"})
		}
	}
	for _, name := range m.Names(KindProcedure) {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			p := m.Procedure(name)
			items = append(items, CompletionItem{name, KindProcedure, "PROC(" + paramSignature(p.Params) + ")"})
		}
	}
	for _, name := range m.Names(KindSynonym) {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			s := m.Synonym(name)
			items = append(items, CompletionItem{name, KindSynonym, "SYN = " + s.Value})
		}
	}
	return items
}

// prefixAt extracts the maximal identifier run ending at the cursor
// column. An out-of-range column is clamped to the line bounds.
func prefixAt(lineText string, column int) string {
	if column > len(lineText) {
		column = len(lineText)
	}
	if column < 0 {
		column = 0
	}
	start := column
	for start > 0 && isWordChar(lineText[start-1]) {
		start--
	}
	return lineText[start:column]
}
