// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"github.com/tliron/glsp"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDocumentSymbol handles the textDocument/documentSymbol
// request, flattening the model's outline. The full range covers the
// construct's body lines; the selection range is the name on the header
// line.
func (s *Server) textDocumentDocumentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	content := doc.Text()
	var symbols []protocol.DocumentSymbol
	for _, sym := range doc.Model().AllSymbols() {
		detail := sym.Detail
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           sym.Name,
			Detail:         &detail,
			Kind:           mapSymbolKind(sym.Kind),
			Range:          lineSpan(content, sym.Line, sym.LineEnd),
			SelectionRange: nameSpan(content, sym.Line, sym.Name),
		})
	}
	return symbols, nil
}
