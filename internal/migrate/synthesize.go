package migrate

import (
	"fmt"
	"slices"

	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/swatch"
)

// CreateMissingSwatches gives every solid color that no swatch carries a swatch
// of its own, named "Auto-generated/<hex>", and points every slot holding that
// color at it. Layers and shared styles are scanned completely before any
// swatch is created, so each distinct color gets exactly one swatch.
func CreateMissingSwatches(doc Document) (Stats, error) {
	var st Stats
	idx := swatch.NewIndex(doc.Swatches())
	missing := collectMissing(doc, idx)

	for c, occs := range missing.All() {
		name := GeneratedPrefix + c.Hex()
		s, err := doc.AddSwatch(name, c)
		if err != nil {
			return st, fmt.Errorf("creating swatch %q: %w", name, err)
		}
		st.SwatchesCreated = append(st.SwatchesCreated, s)

		for _, o := range occs {
			repoint(o, s)
			switch o.(type) {
			case LayerPaint, LayerText:
				st.LayerSlots++
			case StylePaint, StyleText:
				st.StyleSlots++
			}
			log.Debugf("%s -> swatch %q", o, name)
		}
	}

	log.Infof("created %d swatch(es) for unmatched colors", len(st.SwatchesCreated))
	return st, nil
}

// collectMissing groups every raw solid slot whose color idx does not cover
// by that color.
func collectMissing(doc Document, idx *swatch.Index) *multimap[color.Color, Occurrence] {
	missing := newMultimap[color.Color, Occurrence]()
	collect := func(p *document.Paint, o Occurrence) {
		if raw(p) && !idx.Covers(p.Color) {
			missing.Add(p.Color, o)
		}
	}

	for _, l := range doc.Layers() {
		for _, p := range l.Style.Fills {
			collect(p, LayerPaint{Layer: l, Slot: SlotFill, Paint: p})
		}
		for _, p := range l.Style.Borders {
			collect(p, LayerPaint{Layer: l, Slot: SlotBorder, Paint: p})
		}
		collect(l.Style.TextColor, LayerText{Layer: l})
	}

	for _, s := range slices.Concat(doc.LayerStyles(), doc.TextStyles()) {
		for _, p := range s.Style.Fills {
			collect(p, StylePaint{Style: s, Slot: SlotFill, Paint: p})
		}
		for _, p := range s.Style.Borders {
			collect(p, StylePaint{Style: s, Slot: SlotBorder, Paint: p})
		}
		collect(s.Style.TextColor, StyleText{Style: s})
	}

	return missing
}
