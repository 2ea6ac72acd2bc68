// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"github.com/tliron/glsp"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Zaneham/Chill-lsp/analysis"
)

// textDocumentReferences handles the textDocument/references request with
// a case-insensitive whole-word scan of the document text. Every
// occurrence counts as a reference, including the declaration itself.
func (s *Server) textDocumentReferences(_ *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	content := doc.Text()
	word := wordAtPosition(content, int(params.Position.Line), int(params.Position.Character))
	if word == "" {
		return nil, nil
	}

	refs := analysis.FindReferences(content, word)
	locations := make([]protocol.Location, 0, len(refs))
	for _, ref := range refs {
		locations = append(locations, protocol.Location{
			URI: params.TextDocument.URI,
			Range: protocol.Range{
				Start: protocol.Position{Line: safeUint(ref.Line), Character: safeUint(ref.StartCol)},
				End:   protocol.Position{Line: safeUint(ref.Line), Character: safeUint(ref.EndCol)},
			},
		})
	}
	return locations, nil
}
