// Package migrate moves a document's colors onto swatches.
//
// It has four phases, each a complete pass over the document:
//
//   - SimplifyStyles turns single-fill and single-border layer styles into swatches.
//   - MigrateLayers points raw layer colors at matching swatches.
//   - MigrateStyles does the same for shared style definitions and resyncs instances.
//   - CreateMissingSwatches adds one swatch per remaining unmatched color.
//
// Migrator runs the enabled phases in that order.
package migrate

import (
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/swatch"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("colorvars.migrate")

// Swatch name prefixes for swatches created during a run.
const (
	MigratedStylesPrefix = "Migrated Styles/"
	GeneratedPrefix      = "Auto-generated/"
)

// Document is the view of the host document the phases need. Every call takes
// effect immediately and is visible to later calls.
// *document.Document implements it.
type Document interface {
	Swatches() []*document.Swatch
	AddSwatch(name string, c color.Color) (*document.Swatch, error)
	Layers() []*document.Layer
	LayerStyles() []*document.SharedStyle
	TextStyles() []*document.SharedStyle
	Instances(style *document.SharedStyle) []*document.Layer
	SyncInstance(layer *document.Layer, style *document.SharedStyle) error
	RemoveLayerStyles(ids []string) error
}

// Stats counts what a phase changed.
type Stats struct {
	LayerSlots      int // layer fill, border and text color slots repointed
	StyleSlots      int // shared style definition slots repointed
	InstancesSynced int
	StylesRemoved   []*document.SharedStyle
	SwatchesCreated []*document.Swatch
}

func (s *Stats) add(o Stats) {
	s.LayerSlots += o.LayerSlots
	s.StyleSlots += o.StyleSlots
	s.InstancesSynced += o.InstancesSynced
	s.StylesRemoved = append(s.StylesRemoved, o.StylesRemoved...)
	s.SwatchesCreated = append(s.SwatchesCreated, o.SwatchesCreated...)
}

// raw reports whether p is a solid color slot still holding an independent value.
func raw(p *document.Paint) bool {
	return p.IsSolid() && !p.IsReference()
}

// substitute points p at the swatch matching its color, if there is one.
// Slots that already reference a swatch are left alone.
func substitute(p *document.Paint, idx *swatch.Index) bool {
	if !raw(p) {
		return false
	}
	s := idx.Resolve(p.Color, "")
	if s == nil {
		return false
	}
	log.Debugf("%s -> swatch %q", p.Color, s.Name)
	p.Reference(s)
	return true
}
