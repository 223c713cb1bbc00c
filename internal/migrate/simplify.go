package migrate

import (
	"fmt"

	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/swatch"
)

// SimplifyStyles replaces shared layer styles that are nothing but a single
// color with swatches.
//
// A style with exactly one solid fill gets a "Migrated Styles/<name>-fill"
// swatch, one with exactly one solid border a "Migrated Styles/<name>-border"
// swatch; both can apply to the same style. The paint is repointed, every
// instance is synced with the style regardless of overrides, and the style is
// removed. Styles with several fills or several borders, or whose single
// paint is not a solid color, are not touched.
func SimplifyStyles(doc Document) (Stats, error) {
	var st Stats
	idx := swatch.NewIndex(doc.Swatches())

	var remove []*document.SharedStyle
	for _, s := range doc.LayerStyles() {
		fills, borders := s.Style.Fills, s.Style.Borders
		if !simplifiable(fills) || !simplifiable(borders) || len(fills)+len(borders) == 0 {
			continue
		}

		if len(fills) == 1 {
			if err := useStyleSwatch(doc, idx, fills[0], s.Name+"-fill", &st); err != nil {
				return st, fmt.Errorf("simplifying layer style %q: %w", s.Name, err)
			}
		}
		if len(borders) == 1 {
			if err := useStyleSwatch(doc, idx, borders[0], s.Name+"-border", &st); err != nil {
				return st, fmt.Errorf("simplifying layer style %q: %w", s.Name, err)
			}
		}

		for _, l := range doc.Instances(s) {
			if err := doc.SyncInstance(l, s); err != nil {
				return st, fmt.Errorf("simplifying layer style %q: %w", s.Name, err)
			}
			st.InstancesSynced++
		}
		log.Debugf("layer style %q simplified", s.Name)
		remove = append(remove, s)
	}

	if len(remove) > 0 {
		ids := make([]string, 0, len(remove))
		for _, s := range remove {
			ids = append(ids, s.ID)
		}
		if err := doc.RemoveLayerStyles(ids); err != nil {
			return st, fmt.Errorf("removing simplified styles: %w", err)
		}
		st.StylesRemoved = remove
	}

	log.Infof("simplified %d layer style(s) into swatches", len(remove))
	return st, nil
}

// simplifiable reports whether a fill or border list can be expressed by a
// swatch: empty, or a single solid paint. The style is treated as a unit, so a
// single fill next to several borders leaves the whole style alone.
func simplifiable(paints []*document.Paint) bool {
	switch len(paints) {
	case 0:
		return true
	case 1:
		return paints[0].IsSolid()
	}
	return false
}

// useStyleSwatch points p at the swatch named MigratedStylesPrefix+suffix with
// p's color, creating it when the catalog has no swatch with that exact color
// and name.
func useStyleSwatch(doc Document, idx *swatch.Index, p *document.Paint, suffix string, st *Stats) error {
	name := MigratedStylesPrefix + suffix
	c := p.Effective()

	s := idx.ResolveExact(c, name)
	if s == nil {
		var err error
		s, err = doc.AddSwatch(name, c)
		if err != nil {
			return fmt.Errorf("creating swatch %q: %w", name, err)
		}
		idx.Add(s)
		st.SwatchesCreated = append(st.SwatchesCreated, s)
		log.Debugf("created swatch %q (%s)", name, c)
	}
	p.Reference(s)
	return nil
}
