package parser

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/zclconf/go-cty/cty"
)

// DocumentFile is the top-level schema of a document file.
type DocumentFile struct {
	Swatches    []SwatchBlock `hcl:"swatch,block"`
	LayerStyles []StyleBlock  `hcl:"layer_style,block"`
	TextStyles  []StyleBlock  `hcl:"text_style,block"`
	Layers      []LayerBlock  `hcl:"layer,block"`
}

// SwatchBlock is a `swatch "<id>" { name = ..., color = ... }` block.
type SwatchBlock struct {
	ID    string         `hcl:"id,label"`
	Name  string         `hcl:"name"`
	Color hcl.Expression `hcl:"color"`
}

// PaintBlock is a fill, border or text_color block. A color paint sets exactly
// one of color (an independent value) or swatch (a swatch id reference).
type PaintBlock struct {
	Type   string         `hcl:"type,optional"`
	Color  hcl.Expression `hcl:"color,optional"`
	Swatch hcl.Expression `hcl:"swatch,optional"`
	Body   hcl.Body       `hcl:",body"`
}

// StyleBlock is a layer_style or text_style block.
type StyleBlock struct {
	ID        string       `hcl:"id,label"`
	Name      string       `hcl:"name"`
	Fills     []PaintBlock `hcl:"fill,block"`
	Borders   []PaintBlock `hcl:"border,block"`
	TextColor *PaintBlock  `hcl:"text_color,block"`
	Body      hcl.Body     `hcl:",body"`
}

// LayerBlock is a layer block; layers nest.
type LayerBlock struct {
	ID        string       `hcl:"id,label"`
	Name      string       `hcl:"name,optional"`
	Kind      string       `hcl:"kind,optional"`
	Style     string       `hcl:"style,optional"`
	OutOfSync bool         `hcl:"out_of_sync,optional"`
	Fills     []PaintBlock `hcl:"fill,block"`
	Borders   []PaintBlock `hcl:"border,block"`
	TextColor *PaintBlock  `hcl:"text_color,block"`
	Layers    []LayerBlock `hcl:"layer,block"`
	Body      hcl.Body     `hcl:",body"`
}

// Parse reads a document file from disk.
func Parse(path string) (*document.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document file: %w", err)
	}
	doc, diags := ParseSource(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing document: %s", diags.Error())
	}
	return doc, nil
}

// ParseSource parses document source. It keeps going after semantic errors so
// that callers such as the language server see every problem at once; the
// returned document is only meaningful when diags has no errors.
func ParseSource(src []byte, filename string) (*document.Document, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	var raw DocumentFile
	if decodeDiags := gohcl.DecodeBody(file.Body, nil, &raw); decodeDiags.HasErrors() {
		return nil, append(diags, decodeDiags...)
	}

	b := &builder{
		doc:      document.New(),
		ctx:      BuildEvalContext(),
		layerIDs: make(map[string]bool),
	}
	b.build(&raw)
	return b.doc, append(diags, b.diags...)
}

type builder struct {
	doc      *document.Document
	ctx      *hcl.EvalContext
	diags    hcl.Diagnostics
	layerIDs map[string]bool
}

func (b *builder) errorf(rng hcl.Range, summary, format string, args ...any) {
	b.diags = append(b.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  rng.Ptr(),
	})
}

func (b *builder) build(raw *DocumentFile) {
	// Swatches first: styles and layers reference them by id.
	for _, sb := range raw.Swatches {
		c, ok := b.color(sb.Color)
		if !ok {
			continue
		}
		if err := b.doc.InsertSwatch(&document.Swatch{ID: sb.ID, Name: sb.Name, Color: c}); err != nil {
			b.errorf(sb.Color.Range(), "Invalid swatch", "%s", err)
		}
	}

	for _, sb := range raw.LayerStyles {
		b.style(sb, document.LayerStyle)
	}
	for _, sb := range raw.TextStyles {
		b.style(sb, document.TextStyle)
	}

	for _, lb := range raw.Layers {
		if l := b.layer(lb); l != nil {
			b.doc.AddLayer(l)
		}
	}
}

func (b *builder) style(sb StyleBlock, kind document.StyleKind) {
	s := &document.SharedStyle{
		ID:    sb.ID,
		Name:  sb.Name,
		Kind:  kind,
		Style: b.paints(sb.Fills, sb.Borders, sb.TextColor),
	}
	if err := b.doc.AddStyle(s); err != nil {
		b.errorf(sb.Body.MissingItemRange(), "Invalid shared style", "%s", err)
	}
}

func (b *builder) layer(lb LayerBlock) *document.Layer {
	rng := lb.Body.MissingItemRange()
	if b.layerIDs[lb.ID] {
		b.errorf(rng, "Duplicate layer id", "layer id %q is used more than once", lb.ID)
	}
	b.layerIDs[lb.ID] = true

	kind := document.LayerKind(lb.Kind)
	switch {
	case lb.Kind == "" && lb.TextColor != nil:
		kind = document.KindText
	case lb.Kind == "":
		kind = document.KindShape
	case !kind.Valid():
		b.errorf(rng, "Invalid layer kind", "layer %q: unknown kind %q (valid: shape, text, group, symbol)", lb.ID, lb.Kind)
	}

	if lb.Style != "" {
		if _, err := b.doc.Style(lb.Style); err != nil {
			b.errorf(rng, "Unknown shared style", "layer %q: %s", lb.ID, err)
		}
	}

	l := &document.Layer{
		ID:            lb.ID,
		Name:          lb.Name,
		Kind:          kind,
		Style:         b.paints(lb.Fills, lb.Borders, lb.TextColor),
		SharedStyleID: lb.Style,
		OutOfSync:     lb.OutOfSync,
	}
	for _, child := range lb.Layers {
		if c := b.layer(child); c != nil {
			l.Layers = append(l.Layers, c)
		}
	}
	return l
}

func (b *builder) paints(fills, borders []PaintBlock, text *PaintBlock) document.Style {
	var s document.Style
	for _, pb := range fills {
		if p := b.paint(pb); p != nil {
			s.Fills = append(s.Fills, p)
		}
	}
	for _, pb := range borders {
		if p := b.paint(pb); p != nil {
			s.Borders = append(s.Borders, p)
		}
	}
	if text != nil {
		s.TextColor = b.paint(*text)
	}
	return s
}

func (b *builder) paint(pb PaintBlock) *document.Paint {
	rng := pb.Body.MissingItemRange()
	ft, err := document.ParseFillType(pb.Type)
	if err != nil {
		b.errorf(rng, "Invalid paint type", "%s", err)
		return nil
	}

	hasColor := !isNull(pb.Color)
	hasSwatch := !isNull(pb.Swatch)
	if ft == document.FillColor && hasColor == hasSwatch {
		b.errorf(rng, "Invalid paint", "a color paint needs exactly one of color or swatch")
		return nil
	}

	p := &document.Paint{Type: ft}
	if hasColor {
		c, ok := b.color(pb.Color)
		if !ok {
			return nil
		}
		p.Color = c
	}
	if hasSwatch {
		id, ok := b.str(pb.Swatch)
		if !ok {
			return nil
		}
		s, err := b.doc.Swatch(id)
		if err != nil {
			b.errorf(pb.Swatch.Range(), "Unknown swatch", "%s", err)
			return nil
		}
		p.Reference(s)
	}
	return p
}

func (b *builder) str(expr hcl.Expression) (string, bool) {
	val, diags := expr.Value(b.ctx)
	if diags.HasErrors() {
		b.diags = append(b.diags, diags...)
		return "", false
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		b.errorf(expr.Range(), "Incorrect attribute value type", "a string is required")
		return "", false
	}
	return val.AsString(), true
}

func (b *builder) color(expr hcl.Expression) (color.Color, bool) {
	s, ok := b.str(expr)
	if !ok {
		return color.Color{}, false
	}
	c, err := color.ParseHex(s)
	if err != nil {
		b.errorf(expr.Range(), "Invalid color", "%s", err)
		return color.Color{}, false
	}
	return c, true
}

// isNull reports whether an optional attribute was left out. gohcl fills
// missing hcl.Expression fields with a static null.
func isNull(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	if len(expr.Variables()) > 0 {
		return false
	}
	val, diags := expr.Value(nil)
	return !diags.HasErrors() && val.IsNull()
}
