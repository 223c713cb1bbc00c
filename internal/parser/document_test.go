package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
)

const sampleHCL = `
swatch "red" {
  name  = "Red"
  color = "#ff0000"
}

swatch "shadow" {
  name  = "Shadow"
  color = rgba(0, 0, 0, 0.2)
}

layer_style "card" {
  name = "Card"
  fill {
    color = "#0000FF"
  }
  border {
    swatch = "red"
  }
}

text_style "body" {
  name = "Body"
  text_color {
    color = rgb(17, 34, 51)
  }
}

layer "page" {
  name = "Page"
  kind = "group"

  layer "rect" {
    name        = "Rect"
    style       = "card"
    out_of_sync = true
    fill {
      color = "#FF0000"
    }
    fill {
      type = "gradient"
    }
  }

  layer "title" {
    name  = "Title"
    style = "body"
    text_color {
      swatch = "red"
    }
  }
}
`

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "document.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func parseSample(t *testing.T) *document.Document {
	t.Helper()
	doc, err := Parse(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestParseSwatches(t *testing.T) {
	doc := parseSample(t)
	swatches := doc.Swatches()
	if len(swatches) != 2 {
		t.Fatalf("len(Swatches()) = %d, want 2", len(swatches))
	}
	if swatches[0].ID != "red" || swatches[0].Name != "Red" || swatches[0].Color != color.RGB(255, 0, 0) {
		t.Errorf("Swatches()[0] = %+v", swatches[0])
	}
	want := color.Color{A: 51}
	if swatches[1].Color != want {
		t.Errorf("Shadow color = %v, want %v", swatches[1].Color, want)
	}
}

func TestParseStyles(t *testing.T) {
	doc := parseSample(t)

	card, err := doc.Style("card")
	if err != nil {
		t.Fatalf("Style(card) error: %v", err)
	}
	if card.Kind != document.LayerStyle || card.Name != "Card" {
		t.Errorf("card = %+v", card)
	}
	if len(card.Style.Fills) != 1 || card.Style.Fills[0].Effective() != color.RGB(0, 0, 255) {
		t.Errorf("card fills = %+v", card.Style.Fills)
	}
	if len(card.Style.Borders) != 1 || !card.Style.Borders[0].IsReference() {
		t.Fatalf("card borders = %+v", card.Style.Borders)
	}
	if card.Style.Borders[0].Swatch.Name != "Red" {
		t.Errorf("border swatch = %q, want Red", card.Style.Borders[0].Swatch.Name)
	}

	body, err := doc.Style("body")
	if err != nil {
		t.Fatalf("Style(body) error: %v", err)
	}
	if body.Kind != document.TextStyle {
		t.Errorf("body.Kind = %v, want text style", body.Kind)
	}
	if got := body.Style.TextColor.Effective().Hex(); got != "#112233" {
		t.Errorf("body text color = %q, want %q", got, "#112233")
	}
}

func TestParseLayers(t *testing.T) {
	doc := parseSample(t)

	layers := doc.Layers()
	if len(layers) != 3 {
		t.Fatalf("len(Layers()) = %d, want 3", len(layers))
	}
	page, rect, title := layers[0], layers[1], layers[2]

	if page.Kind != document.KindGroup {
		t.Errorf("page.Kind = %q, want group", page.Kind)
	}
	if rect.Kind != document.KindShape {
		t.Errorf("rect.Kind = %q, want shape (default)", rect.Kind)
	}
	if title.Kind != document.KindText {
		t.Errorf("title.Kind = %q, want text (inferred)", title.Kind)
	}
	if rect.SharedStyleID != "card" || !rect.OutOfSync {
		t.Errorf("rect binding = %q out_of_sync=%v", rect.SharedStyleID, rect.OutOfSync)
	}
	if len(rect.Style.Fills) != 2 {
		t.Fatalf("len(rect fills) = %d, want 2", len(rect.Style.Fills))
	}
	if rect.Style.Fills[1].Type != document.FillGradient {
		t.Errorf("rect fill[1].Type = %v, want gradient", rect.Style.Fills[1].Type)
	}
	if !title.Style.TextColor.IsReference() {
		t.Error("title text color is not a swatch reference")
	}
}

func TestParseSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `swatch "a" {`,
			wantErr: "Unclosed configuration block",
		},
		{
			name:    "unknown block",
			content: `palette {}`,
			wantErr: "Unsupported block type",
		},
		{
			name:    "invalid hex",
			content: "swatch \"a\" {\n  name = \"A\"\n  color = \"#12\"\n}\n",
			wantErr: "Invalid color",
		},
		{
			name:    "non-hex digit",
			content: "swatch \"a\" {\n  name = \"A\"\n  color = \"#12345G\"\n}\n",
			wantErr: "Invalid color",
		},
		{
			name:    "unknown swatch reference",
			content: "layer \"l\" {\n  fill {\n    swatch = \"nope\"\n  }\n}\n",
			wantErr: "Unknown swatch",
		},
		{
			name:    "unknown style binding",
			content: "layer \"l\" {\n  style = \"nope\"\n}\n",
			wantErr: "Unknown shared style",
		},
		{
			name:    "color and swatch",
			content: "swatch \"a\" {\n  name = \"A\"\n  color = \"#000000\"\n}\nlayer \"l\" {\n  fill {\n    color = \"#000000\"\n    swatch = \"a\"\n  }\n}\n",
			wantErr: "exactly one of color or swatch",
		},
		{
			name:    "empty color paint",
			content: "layer \"l\" {\n  border {}\n}\n",
			wantErr: "exactly one of color or swatch",
		},
		{
			name:    "unknown paint type",
			content: "layer \"l\" {\n  fill {\n    type = \"noise\"\n  }\n}\n",
			wantErr: "unknown fill type",
		},
		{
			name:    "unknown layer kind",
			content: "layer \"l\" {\n  kind = \"blob\"\n}\n",
			wantErr: "Invalid layer kind",
		},
		{
			name:    "duplicate layer id",
			content: "layer \"l\" {}\nlayer \"l\" {}\n",
			wantErr: "Duplicate layer id",
		},
		{
			name:    "duplicate swatch id",
			content: "swatch \"a\" {\n  name = \"A\"\n  color = \"#000000\"\n}\nswatch \"a\" {\n  name = \"B\"\n  color = \"#FFFFFF\"\n}\n",
			wantErr: "duplicate id",
		},
		{
			name:    "channel out of range",
			content: "layer \"l\" {\n  fill {\n    color = rgb(256, 0, 0)\n  }\n}\n",
			wantErr: "between 0 and 255",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := ParseSource([]byte(tt.content), "test.hcl")
			if !diags.HasErrors() {
				t.Fatal("expected errors, got none")
			}
			if !strings.Contains(diags.Error(), tt.wantErr) {
				t.Errorf("diagnostics = %q, want to contain %q", diags.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseSourceCollectsAllErrors(t *testing.T) {
	src := "layer \"a\" {\n  style = \"x\"\n}\nlayer \"b\" {\n  style = \"y\"\n}\n"
	_, diags := ParseSource([]byte(src), "test.hcl")
	if got := len(diags.Errs()); got != 2 {
		t.Errorf("len(errors) = %d, want 2: %s", got, diags.Error())
	}
	for _, d := range diags {
		if d.Subject == nil {
			t.Errorf("diagnostic %q has no source range", d.Summary)
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.hcl"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
