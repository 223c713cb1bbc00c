package lsp

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/parser"
	"github.com/sketch-hq/color-variables-migrator/internal/swatch"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

const diagSource = "colorvars"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// ColorKind tells where a color sits in a document file.
type ColorKind int

const (
	// ColorDefinition is the color attribute of a swatch block.
	ColorDefinition ColorKind = iota
	// ColorRaw is the color attribute of a paint: an independent value.
	ColorRaw
	// ColorReference is the swatch attribute of a paint.
	ColorReference
)

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	Kind  ColorKind
	// Swatch is the swatch defined or referenced here. For raw colors it is
	// the swatch the color would migrate to, if any.
	Swatch *document.Swatch
}

// Reference is a swatch or shared style id used in a swatch or style
// attribute.
type Reference struct {
	Range protocol.Range
	Key   string // "swatch.<id>" or "style.<id>"
}

// AnalysisResult holds all information produced by analyzing a document file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Document    *document.Document
	Symbols     map[string]protocol.Range // "swatch.<id>", "style.<id>" -> block definition range
	Colors      []ColorLocation
	References  []Reference
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses a document file from memory. Diagnostics come from the
// parser; on top of them every raw paint color that a swatch already carries
// gets a warning, since a migration would replace it.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{Symbols: make(map[string]protocol.Range)}

	doc, diags := parser.ParseSource([]byte(content), filename)
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	result.Document = doc

	// Syntax errors leave nothing to walk.
	file, syntaxDiags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if syntaxDiags.HasErrors() {
		return result
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return result
	}

	w := &walker{result: result, doc: doc, ctx: parser.BuildEvalContext()}
	if doc != nil {
		w.idx = swatch.NewIndex(doc.Swatches())
	}
	w.walkTop(body)
	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}
	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}
	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}
	return diag
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

type walker struct {
	result *AnalysisResult
	doc    *document.Document // nil when the file did not decode
	idx    *swatch.Index
	ctx    *hcl.EvalContext
}

func (w *walker) walkTop(body *hclsyntax.Body) {
	for _, block := range body.Blocks {
		switch block.Type {
		case "swatch":
			w.symbol("swatch", block)
			if attr, ok := block.Body.Attributes["color"]; ok {
				w.swatchColor(block, attr)
			}
		case "layer_style", "text_style":
			w.symbol("style", block)
			w.walkPaints(block.Body)
		case "layer":
			w.walkLayer(block)
		}
	}
}

func (w *walker) symbol(kind string, block *hclsyntax.Block) {
	if len(block.Labels) == 1 {
		w.result.Symbols[kind+"."+block.Labels[0]] = hclRangeToLSP(block.DefRange())
	}
}

func (w *walker) walkLayer(block *hclsyntax.Block) {
	if attr, ok := block.Body.Attributes["style"]; ok {
		if id, ok := w.str(attr.Expr); ok {
			w.reference("style."+id, attr.Expr.Range())
		}
	}
	w.walkPaints(block.Body)
	for _, child := range block.Body.Blocks {
		if child.Type == "layer" {
			w.walkLayer(child)
		}
	}
}

func (w *walker) walkPaints(body *hclsyntax.Body) {
	for _, block := range body.Blocks {
		switch block.Type {
		case "fill", "border", "text_color":
			w.walkPaint(block)
		}
	}
}

func (w *walker) walkPaint(block *hclsyntax.Block) {
	attrs := block.Body.Attributes
	if attr, ok := attrs["type"]; ok {
		if t, ok := w.str(attr.Expr); ok && t != document.FillColor.String() {
			return
		}
	}

	if attr, ok := attrs["color"]; ok {
		c, ok := w.color(attr.Expr)
		if !ok {
			return
		}
		loc := ColorLocation{Range: hclRangeToLSP(attr.Expr.Range()), Color: c, Kind: ColorRaw}
		if w.idx != nil {
			if s := w.idx.Resolve(c, ""); s != nil {
				loc.Swatch = s
				w.result.addWarning(attr.Expr.Range(),
					fmt.Sprintf("%s %s matches swatch %q; migrating will reference it", block.Type, c, s.Name))
			}
		}
		w.result.Colors = append(w.result.Colors, loc)
	}

	if attr, ok := attrs["swatch"]; ok {
		id, ok := w.str(attr.Expr)
		if !ok {
			return
		}
		w.reference("swatch."+id, attr.Expr.Range())
		if w.doc == nil {
			return
		}
		s, err := w.doc.Swatch(id)
		if err != nil {
			return
		}
		w.result.Colors = append(w.result.Colors, ColorLocation{
			Range:  hclRangeToLSP(attr.Expr.Range()),
			Color:  s.Color,
			Kind:   ColorReference,
			Swatch: s,
		})
	}
}

func (w *walker) swatchColor(block *hclsyntax.Block, attr *hclsyntax.Attribute) {
	c, ok := w.color(attr.Expr)
	if !ok {
		return
	}
	loc := ColorLocation{Range: hclRangeToLSP(attr.Expr.Range()), Color: c, Kind: ColorDefinition}
	if w.doc != nil && len(block.Labels) == 1 {
		if s, err := w.doc.Swatch(block.Labels[0]); err == nil {
			loc.Swatch = s
		}
	}
	w.result.Colors = append(w.result.Colors, loc)
}

func (w *walker) reference(key string, rng hcl.Range) {
	w.result.References = append(w.result.References, Reference{Range: hclRangeToLSP(rng), Key: key})
}

// str evaluates expr to a string. Problems were already reported by the
// parser, so they are dropped here.
func (w *walker) str(expr hclsyntax.Expression) (string, bool) {
	val, diags := expr.Value(w.ctx)
	if diags.HasErrors() || val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return "", false
	}
	return val.AsString(), true
}

func (w *walker) color(expr hclsyntax.Expression) (color.Color, bool) {
	s, ok := w.str(expr)
	if !ok {
		return color.Color{}, false
	}
	c, err := color.ParseHex(s)
	if err != nil {
		return color.Color{}, false
	}
	return c, true
}
