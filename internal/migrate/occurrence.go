package migrate

import (
	"fmt"
	"iter"

	"github.com/sketch-hq/color-variables-migrator/internal/document"
)

// Slot tells a fill from a border.
type Slot int

const (
	SlotFill Slot = iota
	SlotBorder
)

func (s Slot) String() string {
	if s == SlotBorder {
		return "border"
	}
	return "fill"
}

// Occurrence is one place in the document holding a color. It is one of
// LayerPaint, LayerText, StylePaint or StyleText.
type Occurrence interface {
	fmt.Stringer
	occurrence()
}

// LayerPaint is a fill or border on a layer.
type LayerPaint struct {
	Layer *document.Layer
	Slot  Slot
	Paint *document.Paint
}

// LayerText is the text color of a text layer.
type LayerText struct {
	Layer *document.Layer
}

// StylePaint is a fill or border in a shared style definition.
type StylePaint struct {
	Style *document.SharedStyle
	Slot  Slot
	Paint *document.Paint
}

// StyleText is the text color in a shared style definition.
type StyleText struct {
	Style *document.SharedStyle
}

func (LayerPaint) occurrence() {}
func (LayerText) occurrence()  {}
func (StylePaint) occurrence() {}
func (StyleText) occurrence()  {}

func (o LayerPaint) String() string { return fmt.Sprintf("layer %q %s", o.Layer.Name, o.Slot) }
func (o LayerText) String() string  { return fmt.Sprintf("layer %q text color", o.Layer.Name) }
func (o StylePaint) String() string {
	return fmt.Sprintf("%s %q %s", o.Style.Kind, o.Style.Name, o.Slot)
}
func (o StyleText) String() string {
	return fmt.Sprintf("%s %q text color", o.Style.Kind, o.Style.Name)
}

// repoint replaces the color held at o with a reference to s.
func repoint(o Occurrence, s *document.Swatch) {
	switch o := o.(type) {
	case LayerPaint:
		o.Paint.Reference(s)
	case LayerText:
		o.Layer.Style.TextColor.Reference(s)
	case StylePaint:
		o.Paint.Reference(s)
	case StyleText:
		o.Style.Style.TextColor.Reference(s)
	default:
		panic(fmt.Sprintf("unknown occurrence %T", o))
	}
}

// multimap groups values under comparable keys, remembering the order in
// which keys were first seen.
type multimap[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

func newMultimap[K comparable, V any]() *multimap[K, V] {
	return &multimap[K, V]{values: make(map[K][]V)}
}

// Add appends v to the list under k.
func (m *multimap[K, V]) Add(k K, v V) {
	vs, seen := m.values[k]
	if !seen {
		m.keys = append(m.keys, k)
	}
	m.values[k] = append(vs, v)
}

// Len returns the number of distinct keys.
func (m *multimap[K, V]) Len() int {
	return len(m.keys)
}

// All yields each key with its values, keys in first-seen order.
func (m *multimap[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
