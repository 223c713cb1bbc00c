package lsp

import (
	"math"

	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color.Color (uint8 RGBA) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: float32(c.A) / 255.0,
	}
}

// colorFromLSP converts a picker color back, rounding each channel.
func colorFromLSP(c protocol.Color) color.Color {
	ch := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	return color.Color{R: ch(c.Red), G: ch(c.Green), B: ch(c.Blue), A: ch(c.Alpha)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers replacements for a picked color. Swatch references
// are not rewritten: their color belongs to the swatch.
func colorPresentation(result *AnalysisResult, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	if result == nil {
		return []protocol.ColorPresentation{}
	}
	var loc *ColorLocation
	for i := range result.Colors {
		if result.Colors[i].Range == params.Range {
			loc = &result.Colors[i]
			break
		}
	}
	if loc == nil || loc.Kind == ColorReference {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	hex := c.Hex()
	return []protocol.ColorPresentation{
		{
			Label:    hex,
			TextEdit: &protocol.TextEdit{Range: params.Range, NewText: `"` + hex + `"`},
		},
		{
			Label:    c.CSS(),
			TextEdit: &protocol.TextEdit{Range: params.Range, NewText: c.CSS()},
		},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.getResult(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	return colorPresentation(s.getResult(string(params.TextDocument.URI)), params), nil
}
