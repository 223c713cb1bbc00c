package migrate

import (
	"github.com/sketch-hq/color-variables-migrator/internal/swatch"
)

// MigrateLayers replaces every raw solid fill, border and text color on every
// layer with a reference to the matching swatch. Colors without a match are
// left as they are. The swatch catalog is not modified.
func MigrateLayers(doc Document) (Stats, error) {
	var st Stats
	idx := swatch.NewIndex(doc.Swatches())

	for _, l := range doc.Layers() {
		for _, p := range l.Style.Fills {
			if substitute(p, idx) {
				st.LayerSlots++
			}
		}
		for _, p := range l.Style.Borders {
			if substitute(p, idx) {
				st.LayerSlots++
			}
		}
		if substitute(l.Style.TextColor, idx) {
			st.LayerSlots++
		}
	}

	log.Infof("replaced %d layer color(s) with swatches", st.LayerSlots)
	return st, nil
}
