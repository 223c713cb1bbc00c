package swatch

import (
	"testing"

	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
)

var (
	red   = color.RGB(255, 0, 0)
	green = color.RGB(0, 255, 0)
	blue  = color.RGB(0, 0, 255)
)

func catalog() []*document.Swatch {
	return []*document.Swatch{
		{ID: "1", Name: "Red", Color: red},
		{ID: "2", Name: "Primary", Color: blue},
		{ID: "3", Name: "Link", Color: blue},
		{ID: "4", Name: "Accent", Color: blue},
	}
}

func TestResolve(t *testing.T) {
	idx := NewIndex(catalog())

	tests := []struct {
		name      string
		color     color.Color
		swatch    string
		wantID    string
		wantMatch bool
	}{
		{"no match", green, "", "", false},
		{"no match with name", green, "Red", "", false},
		{"single match", red, "", "1", true},
		{"single match ignores name", red, "Other", "1", true},
		{"multiple without name takes first", blue, "", "2", true},
		{"multiple with matching name", blue, "Accent", "4", true},
		{"multiple with unknown name falls back to first", blue, "Nope", "2", true},
		{"translucent is a different value", color.Color{R: 255, A: 128}, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Resolve(tt.color, tt.swatch)
			if (got != nil) != tt.wantMatch {
				t.Fatalf("Resolve(%v, %q) = %v, want match %v", tt.color, tt.swatch, got, tt.wantMatch)
			}
			if got != nil && got.ID != tt.wantID {
				t.Errorf("Resolve(%v, %q).ID = %q, want %q", tt.color, tt.swatch, got.ID, tt.wantID)
			}
		})
	}
}

func TestResolveExact(t *testing.T) {
	idx := NewIndex(catalog())

	if got := idx.ResolveExact(blue, "Link"); got == nil || got.ID != "3" {
		t.Errorf("ResolveExact(blue, Link) = %v, want swatch 3", got)
	}
	if got := idx.ResolveExact(red, "Primary"); got != nil {
		t.Errorf("ResolveExact(red, Primary) = %v, want nil", got)
	}
	if got := idx.ResolveExact(blue, "Nope"); got != nil {
		t.Errorf("ResolveExact(blue, Nope) = %v, want nil", got)
	}
}

func TestAddIsVisibleToResolve(t *testing.T) {
	idx := NewIndex(nil)
	if idx.Covers(green) {
		t.Fatal("empty index covers green")
	}

	s := &document.Swatch{ID: "g", Name: "Green", Color: green}
	idx.Add(s)

	if !idx.Covers(green) {
		t.Error("Covers(green) = false after Add")
	}
	if got := idx.Resolve(green, ""); got != s {
		t.Errorf("Resolve(green) = %v, want %v", got, s)
	}
	if got := len(idx.Matches(green)); got != 1 {
		t.Errorf("len(Matches(green)) = %d, want 1", got)
	}
}

// Every color resolves iff some swatch carries it, and the result always carries it.
func TestResolveMatchesByValue(t *testing.T) {
	swatches := catalog()
	idx := NewIndex(swatches)

	for r := 0; r < 256; r += 51 {
		for b := 0; b < 256; b += 51 {
			c := color.RGB(uint8(r), 0, uint8(b))
			want := false
			for _, s := range swatches {
				if s.Color == c {
					want = true
				}
			}
			got := idx.Resolve(c, "")
			if (got != nil) != want {
				t.Errorf("Resolve(%v) = %v, want match %v", c, got, want)
			}
			if got != nil && got.Color != c {
				t.Errorf("Resolve(%v) returned swatch with color %v", c, got.Color)
			}
		}
	}
}
