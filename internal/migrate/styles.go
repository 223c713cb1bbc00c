package migrate

import (
	"fmt"
	"slices"

	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/swatch"
)

type binding struct {
	layer *document.Layer
	style *document.SharedStyle
}

// MigrateStyles repoints the solid colors of shared style definitions at
// matching swatches: fills and borders of layer styles, text color of text
// styles. Afterwards every instance that was in sync before the run adopts
// the updated definition; instances with local overrides are left alone.
func MigrateStyles(doc Document) (Stats, error) {
	var st Stats

	// Sync eligibility must be read before any definition changes.
	var synced []binding
	for _, s := range slices.Concat(doc.LayerStyles(), doc.TextStyles()) {
		for _, l := range doc.Instances(s) {
			if !l.OutOfSync {
				synced = append(synced, binding{layer: l, style: s})
			}
		}
	}

	idx := swatch.NewIndex(doc.Swatches())
	for _, s := range doc.LayerStyles() {
		for _, p := range slices.Concat(s.Style.Fills, s.Style.Borders) {
			if substitute(p, idx) {
				st.StyleSlots++
			}
		}
	}
	for _, s := range doc.TextStyles() {
		if substitute(s.Style.TextColor, idx) {
			st.StyleSlots++
		}
	}

	for _, b := range synced {
		if err := doc.SyncInstance(b.layer, b.style); err != nil {
			return st, fmt.Errorf("propagating %s %q: %w", b.style.Kind, b.style.Name, err)
		}
		st.InstancesSynced++
	}

	log.Infof("replaced %d style color(s) with swatches, synced %d instance(s)", st.StyleSlots, st.InstancesSynced)
	return st, nil
}
