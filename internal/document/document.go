// Package document is the in-memory design document the migration engine
// reads and mutates: the swatch catalog, shared layer and text styles, and the
// layer tree. All mutation happens in place.
package document

import (
	"errors"
	"fmt"
	"slices"

	"github.com/segmentio/ksuid"
	"github.com/sketch-hq/color-variables-migrator/internal/color"
)

var (
	ErrSwatchNotFound = errors.New("swatch not found")
	ErrStyleNotFound  = errors.New("shared style not found")
	ErrNotInstance    = errors.New("layer is not an instance of the shared style")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrEmptyName      = errors.New("empty name")
)

// Swatch is a named color in the document's catalog.
type Swatch struct {
	ID    string
	Name  string
	Color color.Color
}

// Style is the paint state of a layer or a shared style definition.
type Style struct {
	Fills     []*Paint
	Borders   []*Paint
	TextColor *Paint
}

// Clone returns a copy whose paints can be mutated independently. Referencing
// paints keep pointing at the same swatch.
func (s Style) Clone() Style {
	out := Style{TextColor: s.TextColor.clone()}
	for _, p := range s.Fills {
		out.Fills = append(out.Fills, p.clone())
	}
	for _, p := range s.Borders {
		out.Borders = append(out.Borders, p.clone())
	}
	return out
}

// LayerKind distinguishes shapes, text and containers. The migration engine
// treats all kinds alike.
type LayerKind string

const (
	KindShape  LayerKind = "shape"
	KindText   LayerKind = "text"
	KindGroup  LayerKind = "group"
	KindSymbol LayerKind = "symbol"
)

// Valid reports whether k is a known layer kind.
func (k LayerKind) Valid() bool {
	switch k {
	case KindShape, KindText, KindGroup, KindSymbol:
		return true
	}
	return false
}

// Layer is a visual element. A layer with a non-empty SharedStyleID is an
// instance of that shared style; OutOfSync records local overrides.
type Layer struct {
	ID            string
	Name          string
	Kind          LayerKind
	Style         Style
	SharedStyleID string
	OutOfSync     bool
	Layers        []*Layer
}

// StyleKind tells layer styles and text styles apart.
type StyleKind int

const (
	LayerStyle StyleKind = iota
	TextStyle
)

func (k StyleKind) String() string {
	if k == TextStyle {
		return "text style"
	}
	return "layer style"
}

// SharedStyle is a reusable style definition. Changing Style does not touch
// instances; see Document.SyncInstance.
type SharedStyle struct {
	ID    string
	Name  string
	Kind  StyleKind
	Style Style
}

// Document owns the swatch catalog, the shared style collections and the
// layer tree. It is not safe for concurrent use.
type Document struct {
	swatches    []*Swatch
	layerStyles []*SharedStyle
	textStyles  []*SharedStyle
	layers      []*Layer
	newID       func() string
}

// New returns an empty document.
func New() *Document {
	return &Document{
		newID: func() string { return ksuid.New().String() },
	}
}

// Swatches returns the catalog in order. The slice is a copy; the swatches are not.
func (d *Document) Swatches() []*Swatch {
	return slices.Clone(d.swatches)
}

// Swatch returns the swatch with the given id.
func (d *Document) Swatch(id string) (*Swatch, error) {
	for _, s := range d.swatches {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSwatchNotFound, id)
}

// AddSwatch appends a new swatch with a generated id to the catalog.
func (d *Document) AddSwatch(name string, c color.Color) (*Swatch, error) {
	s := &Swatch{ID: d.newID(), Name: name, Color: c}
	if err := d.InsertSwatch(s); err != nil {
		return nil, err
	}
	return s, nil
}

// InsertSwatch appends an existing swatch value to the catalog.
func (d *Document) InsertSwatch(s *Swatch) error {
	if s.Name == "" {
		return fmt.Errorf("adding swatch %s: %w", s.ID, ErrEmptyName)
	}
	if _, err := d.Swatch(s.ID); err == nil {
		return fmt.Errorf("adding swatch %q: %w: %s", s.Name, ErrDuplicateID, s.ID)
	}
	d.swatches = append(d.swatches, s)
	return nil
}

// AddStyle appends a shared style to the collection matching its kind.
func (d *Document) AddStyle(s *SharedStyle) error {
	if _, err := d.Style(s.ID); err == nil {
		return fmt.Errorf("adding %s %q: %w: %s", s.Kind, s.Name, ErrDuplicateID, s.ID)
	}
	if s.Kind == TextStyle {
		d.textStyles = append(d.textStyles, s)
	} else {
		d.layerStyles = append(d.layerStyles, s)
	}
	return nil
}

// LayerStyles returns the shared layer styles in order.
func (d *Document) LayerStyles() []*SharedStyle {
	return slices.Clone(d.layerStyles)
}

// TextStyles returns the shared text styles in order.
func (d *Document) TextStyles() []*SharedStyle {
	return slices.Clone(d.textStyles)
}

// Style returns the shared layer or text style with the given id.
func (d *Document) Style(id string) (*SharedStyle, error) {
	for _, s := range d.layerStyles {
		if s.ID == id {
			return s, nil
		}
	}
	for _, s := range d.textStyles {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStyleNotFound, id)
}

// AddLayer appends a top-level layer.
func (d *Document) AddLayer(l *Layer) {
	d.layers = append(d.layers, l)
}

// RootLayers returns the top-level layers.
func (d *Document) RootLayers() []*Layer {
	return slices.Clone(d.layers)
}

// Layers returns every layer in the tree, depth-first in document order.
func (d *Document) Layers() []*Layer {
	var out []*Layer
	var walk func([]*Layer)
	walk = func(layers []*Layer) {
		for _, l := range layers {
			out = append(out, l)
			walk(l.Layers)
		}
	}
	walk(d.layers)
	return out
}

// Instances returns every layer bound to style, in document order.
func (d *Document) Instances(style *SharedStyle) []*Layer {
	var out []*Layer
	for _, l := range d.Layers() {
		if l.SharedStyleID == style.ID {
			out = append(out, l)
		}
	}
	return out
}

// SyncInstance makes layer adopt the current definition of style, discarding
// any local overrides.
func (d *Document) SyncInstance(layer *Layer, style *SharedStyle) error {
	if layer.SharedStyleID != style.ID {
		return fmt.Errorf("syncing layer %q with %q: %w", layer.Name, style.Name, ErrNotInstance)
	}
	layer.Style = style.Style.Clone()
	layer.OutOfSync = false
	return nil
}

// RemoveLayerStyles removes the shared layer styles with the given ids in a
// single pass. Former instances are detached and keep their current paints.
func (d *Document) RemoveLayerStyles(ids []string) error {
	for _, id := range ids {
		if !slices.ContainsFunc(d.layerStyles, func(s *SharedStyle) bool { return s.ID == id }) {
			return fmt.Errorf("removing layer style: %w: %s", ErrStyleNotFound, id)
		}
	}
	d.layerStyles = slices.DeleteFunc(d.layerStyles, func(s *SharedStyle) bool {
		return slices.Contains(ids, s.ID)
	})
	for _, l := range d.Layers() {
		if slices.Contains(ids, l.SharedStyleID) {
			l.SharedStyleID = ""
			l.OutOfSync = false
		}
	}
	return nil
}
