// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"github.com/tliron/glsp"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Zaneham/Chill-lsp/analysis"
)

// textDocumentFoldingRange handles the textDocument/foldingRange request.
// Modules, procedures, and processes whose bodies span more than one line
// fold from their header to their matching END.
func (s *Server) textDocumentFoldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	var ranges []protocol.FoldingRange
	for _, sym := range doc.Model().AllSymbols() {
		switch sym.Kind {
		case analysis.KindModule, analysis.KindProcedure, analysis.KindProcess:
		default:
			continue
		}
		if sym.LineEnd <= sym.Line {
			continue
		}
		kind := string(protocol.FoldingRangeKindRegion)
		ranges = append(ranges, protocol.FoldingRange{
			StartLine: safeUint(sym.Line - 1),
			EndLine:   safeUint(sym.LineEnd - 1),
			Kind:      &kind,
		})
	}
	return ranges, nil
}
