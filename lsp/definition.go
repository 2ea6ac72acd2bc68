// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"github.com/tliron/glsp"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDefinition handles the textDocument/definition request. The
// word under the cursor is resolved against the document's own model in
// fixed precedence: declaration, mode, procedure, process, synonym.
// Cross-file resolution is not attempted.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	content := doc.Text()
	word := wordAtPosition(content, int(params.Position.Line), int(params.Position.Character))
	if word == "" {
		return nil, nil
	}

	m := doc.Model()
	line := 0
	switch {
	case m.Declaration(word) != nil:
		d := m.Declaration(word)
		return protocol.Location{
			URI: params.TextDocument.URI,
			Range: protocol.Range{
				Start: protocol.Position{Line: safeUint(d.Line - 1), Character: safeUint(d.ColStart)},
				End:   protocol.Position{Line: safeUint(d.Line - 1), Character: safeUint(d.ColEnd)},
			},
		}, nil
	case m.Mode(word) != nil:
		line = m.Mode(word).Line
	case m.Procedure(word) != nil:
		line = m.Procedure(word).LineStart
	case m.Process(word) != nil:
		line = m.Process(word).LineStart
	case m.Synonym(word) != nil:
		line = m.Synonym(word).Line
	default:
		return nil, nil
	}

	return protocol.Location{
		URI:   params.TextDocument.URI,
		Range: nameSpan(content, line, word),
	}, nil
}
