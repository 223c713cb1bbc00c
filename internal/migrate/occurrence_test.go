package migrate

import (
	"testing"

	"github.com/sketch-hq/color-variables-migrator/internal/document"
)

func TestMultimap(t *testing.T) {
	m := newMultimap[string, int]()
	m.Add("b", 1)
	m.Add("a", 2)
	m.Add("b", 3)

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	var keys []string
	var total int
	for k, vs := range m.All() {
		keys = append(keys, k)
		for _, v := range vs {
			total += v
		}
	}
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("keys = %q, want [b a]", keys)
	}
	if total != 6 {
		t.Errorf("sum of values = %d, want 6", total)
	}

	for range m.All() {
		break
	}
}

func TestRepoint(t *testing.T) {
	s := &document.Swatch{ID: "s", Name: "Ink", Color: navy}
	layerPaint := document.Solid(navy)
	stylePaint := document.Solid(navy)
	layer := &document.Layer{Name: "Label", Style: document.Style{TextColor: document.Solid(navy)}}
	style := &document.SharedStyle{Name: "Body", Kind: document.TextStyle, Style: document.Style{TextColor: document.Solid(navy)}}

	tests := []struct {
		occ   Occurrence
		paint *document.Paint
		str   string
	}{
		{LayerPaint{Layer: layer, Slot: SlotBorder, Paint: layerPaint}, layerPaint, `layer "Label" border`},
		{LayerText{Layer: layer}, layer.Style.TextColor, `layer "Label" text color`},
		{StylePaint{Style: style, Slot: SlotFill, Paint: stylePaint}, stylePaint, `text style "Body" fill`},
		{StyleText{Style: style}, style.Style.TextColor, `text style "Body" text color`},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.occ.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			repoint(tt.occ, s)
			references(t, tt.str, tt.paint, s)
		})
	}
}
