package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// hover describes the color under the cursor: its value, and the swatch it
// defines, references, or would migrate to.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var md strings.Builder
		if cl.Swatch != nil {
			switch cl.Kind {
			case ColorDefinition:
				fmt.Fprintf(&md, "**%s**\n\n", cl.Swatch.Name)
			case ColorReference:
				fmt.Fprintf(&md, "**%s** (swatch `%s`)\n\n", cl.Swatch.Name, cl.Swatch.ID)
			}
		}
		fmt.Fprintf(&md, "`%s` · `%s`", cl.Color.Hex(), cl.Color.CSS())
		if cl.Kind == ColorRaw && cl.Swatch != nil {
			fmt.Fprintf(&md, "\n\nMatches swatch **%s**", cl.Swatch.Name)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	result := s.getResult(string(params.TextDocument.URI))
	if result == nil {
		return nil, nil
	}
	return hover(result, params.Position), nil
}
