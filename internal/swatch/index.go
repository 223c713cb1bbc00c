// Package swatch maps color values to the swatches that carry them and picks
// the swatch a raw color should be replaced with.
package swatch

import (
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
)

// Index groups a swatch catalog by exact color value, preserving catalog order
// within each group. An Index is a snapshot: swatches appended to the document
// later are only visible after Add or a rebuild.
type Index struct {
	byColor map[color.Color][]*document.Swatch
}

// NewIndex builds an index over swatches.
func NewIndex(swatches []*document.Swatch) *Index {
	idx := &Index{byColor: make(map[color.Color][]*document.Swatch, len(swatches))}
	for _, s := range swatches {
		idx.Add(s)
	}
	return idx
}

// Add records a swatch appended to the catalog after the index was built.
func (idx *Index) Add(s *document.Swatch) {
	idx.byColor[s.Color] = append(idx.byColor[s.Color], s)
}

// Matches returns the swatches whose color equals c, in catalog order.
func (idx *Index) Matches(c color.Color) []*document.Swatch {
	return idx.byColor[c]
}

// Covers reports whether any swatch has color c.
func (idx *Index) Covers(c color.Color) bool {
	return len(idx.byColor[c]) > 0
}

// Resolve returns the swatch a slot holding c should reference, or nil.
//
// With several matches, a non-empty name picks the first swatch with that
// name; otherwise, or when no match has that name, the first match in catalog
// order wins.
func (idx *Index) Resolve(c color.Color, name string) *document.Swatch {
	matches := idx.byColor[c]
	if len(matches) == 0 {
		return nil
	}
	if name != "" {
		if s := firstNamed(matches, name); s != nil {
			return s
		}
	}
	return matches[0]
}

// ResolveExact returns the first swatch with both color c and the given name.
func (idx *Index) ResolveExact(c color.Color, name string) *document.Swatch {
	return firstNamed(idx.byColor[c], name)
}

func firstNamed(swatches []*document.Swatch, name string) *document.Swatch {
	for _, s := range swatches {
		if s.Name == name {
			return s
		}
	}
	return nil
}
