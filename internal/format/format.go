package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/zclconf/go-cty/cty"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules. It uses hclwrite.Format which handles
// indentation, spacing, and newline normalization.
//
// The formatter works even on partial/invalid HCL.
func Format(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// Encode writes doc in the document file format, canonically formatted.
// Top-level blocks come in the order swatches, layer styles, text styles,
// layers, each in document order.
func Encode(doc *document.Document) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	first := true
	next := func() {
		if !first {
			root.AppendNewline()
		}
		first = false
	}

	for _, s := range doc.Swatches() {
		next()
		body := root.AppendNewBlock("swatch", []string{s.ID}).Body()
		body.SetAttributeValue("name", cty.StringVal(s.Name))
		body.SetAttributeValue("color", cty.StringVal(s.Color.Hex()))
	}

	for _, s := range doc.LayerStyles() {
		next()
		encodeStyle(root.AppendNewBlock("layer_style", []string{s.ID}).Body(), s)
	}
	for _, s := range doc.TextStyles() {
		next()
		encodeStyle(root.AppendNewBlock("text_style", []string{s.ID}).Body(), s)
	}

	for _, l := range doc.RootLayers() {
		next()
		encodeLayer(root.AppendNewBlock("layer", []string{l.ID}).Body(), l)
	}

	out, err := Format(string(f.Bytes()))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func encodeStyle(body *hclwrite.Body, s *document.SharedStyle) {
	body.SetAttributeValue("name", cty.StringVal(s.Name))
	encodePaints(body, s.Style)
}

func encodeLayer(body *hclwrite.Body, l *document.Layer) {
	if l.Name != "" {
		body.SetAttributeValue("name", cty.StringVal(l.Name))
	}
	body.SetAttributeValue("kind", cty.StringVal(string(l.Kind)))
	if l.SharedStyleID != "" {
		body.SetAttributeValue("style", cty.StringVal(l.SharedStyleID))
	}
	if l.OutOfSync {
		body.SetAttributeValue("out_of_sync", cty.True)
	}
	encodePaints(body, l.Style)
	for _, child := range l.Layers {
		body.AppendNewline()
		encodeLayer(body.AppendNewBlock("layer", []string{child.ID}).Body(), child)
	}
}

func encodePaints(body *hclwrite.Body, s document.Style) {
	for _, p := range s.Fills {
		encodePaint(body.AppendNewBlock("fill", nil).Body(), p)
	}
	for _, p := range s.Borders {
		encodePaint(body.AppendNewBlock("border", nil).Body(), p)
	}
	if s.TextColor != nil {
		encodePaint(body.AppendNewBlock("text_color", nil).Body(), s.TextColor)
	}
}

func encodePaint(body *hclwrite.Body, p *document.Paint) {
	if p.Type != document.FillColor {
		body.SetAttributeValue("type", cty.StringVal(p.Type.String()))
	}
	switch {
	case p.IsReference():
		body.SetAttributeValue("swatch", cty.StringVal(p.Swatch.ID))
	case p.Type == document.FillColor || p.Color != (color.Color{}):
		body.SetAttributeValue("color", cty.StringVal(p.Color.Hex()))
	}
}
