// Copyright © 2026 The chill-lsp authors

// Package analysis builds a symbol table ("semantic model") from CHILL
// (ITU-T Z.200) source text.
//
// The scanner is a single-pass, line-oriented classifier: it strips
// comments, walks the line sequence once, and extracts modules, modes,
// synonyms, declarations, procedures, processes, and signals into a Model
// that IDE-style queries (completion, hover, definition, references,
// document outline) can consult. It is deliberately best-effort: malformed
// lines are skipped and unterminated constructs degrade gracefully, because
// an editor must keep functioning while the user is mid-edit. There is no
// token stream, no parse tree, and no type checking.
package analysis

// Parse builds a symbol table from one document's full text. It always
// returns a complete Model; there is no error path. Parsing the same text
// twice yields identical models.
func Parse(source string) *Model {
	sc := newScanner(source)
	sc.run()
	return sc.model
}
