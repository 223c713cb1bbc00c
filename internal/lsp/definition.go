package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// definition returns the block that defines the swatch or shared style id
// under the cursor, or nil.
func definition(result *AnalysisResult, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	for _, ref := range result.References {
		if !posInRange(pos, ref.Range) {
			continue
		}
		symRange, ok := result.Symbols[ref.Key]
		if !ok {
			return nil
		}
		return &protocol.Location{
			URI:   protocol.DocumentUri(uri),
			Range: symRange,
		}
	}
	return nil
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}
	if loc := definition(result, uri, params.Position); loc != nil {
		return loc, nil
	}
	return nil, nil
}
