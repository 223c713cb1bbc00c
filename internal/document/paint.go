package document

import (
	"fmt"

	"github.com/sketch-hq/color-variables-migrator/internal/color"
)

// FillType is the kind of paint held by a fill, border or text color slot.
type FillType int

const (
	FillColor FillType = iota
	FillGradient
	FillPattern
)

var fillTypeNames = map[FillType]string{
	FillColor:    "color",
	FillGradient: "gradient",
	FillPattern:  "pattern",
}

func (t FillType) String() string {
	if name, ok := fillTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FillType(%d)", int(t))
}

// ParseFillType parses the textual form used in document files.
// An empty string means FillColor.
func ParseFillType(s string) (FillType, error) {
	if s == "" {
		return FillColor, nil
	}
	for t, name := range fillTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown fill type %q (valid: color, gradient, pattern)", s)
}

// Paint is a single fill, border or text color slot.
//
// A color paint either holds an independent Color value, or a referencing-color
// token in Swatch. A referencing paint tracks the swatch: Effective always
// returns the swatch's current color.
type Paint struct {
	Type   FillType
	Color  color.Color
	Swatch *Swatch
}

// Solid returns a color paint holding an independent value.
func Solid(c color.Color) *Paint {
	return &Paint{Type: FillColor, Color: c}
}

// Referencing returns a color paint bound to s.
func Referencing(s *Swatch) *Paint {
	return &Paint{Type: FillColor, Swatch: s}
}

// IsSolid reports whether the paint participates in color migration.
func (p *Paint) IsSolid() bool {
	return p != nil && p.Type == FillColor
}

// IsReference reports whether the paint holds a referencing-color token.
func (p *Paint) IsReference() bool {
	return p != nil && p.Swatch != nil
}

// Effective returns the color the paint currently renders with.
func (p *Paint) Effective() color.Color {
	if p.Swatch != nil {
		return p.Swatch.Color
	}
	return p.Color
}

// Reference replaces the slot's value with a referencing-color token for s.
func (p *Paint) Reference(s *Swatch) {
	p.Color = s.Color
	p.Swatch = s
}

func (p *Paint) clone() *Paint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
