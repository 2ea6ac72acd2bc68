// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"fmt"

	"github.com/tliron/glsp"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Zaneham/Chill-lsp/analysis"
)

// textDocumentCompletion handles the textDocument/completion request. The
// analysis layer already orders candidates (keywords, predefined names,
// then model entities in declaration order); sortText pins that order in
// clients that re-sort lexicographically.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	lineText, ok := lineAt(doc.Text(), int(params.Position.Line))
	if !ok {
		return nil, nil
	}

	candidates := analysis.Completions(doc.Model(), lineText, int(params.Position.Character))

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for i, c := range candidates {
		kind := mapCompletionItemKind(c.Kind)
		detail := c.Detail
		sortText := fmt.Sprintf("%04d", i)
		items = append(items, protocol.CompletionItem{
			Label:    c.Name,
			Kind:     &kind,
			Detail:   &detail,
			SortText: &sortText,
		})
	}
	return items, nil
}
