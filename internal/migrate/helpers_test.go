package migrate

import (
	"testing"

	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/format"
)

var (
	red   = color.RGB(0xff, 0, 0)
	green = color.RGB(0, 0xff, 0)
	blue  = color.RGB(0, 0, 0xff)
	navy  = color.RGB(0x11, 0x22, 0x33)
)

func newDoc(t *testing.T, swatches ...*document.Swatch) *document.Document {
	t.Helper()
	doc := document.New()
	for _, s := range swatches {
		if err := doc.InsertSwatch(s); err != nil {
			t.Fatal(err)
		}
	}
	return doc
}

func addStyle(t *testing.T, doc *document.Document, s *document.SharedStyle) *document.SharedStyle {
	t.Helper()
	if err := doc.AddStyle(s); err != nil {
		t.Fatal(err)
	}
	return s
}

func fills(paints ...*document.Paint) document.Style {
	return document.Style{Fills: paints}
}

func swatchNamed(doc Document, name string) *document.Swatch {
	for _, s := range doc.Swatches() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func encode(t *testing.T, doc *document.Document) string {
	t.Helper()
	out, err := format.Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

// references fails the test unless p is bound to want.
func references(t *testing.T, what string, p *document.Paint, want *document.Swatch) {
	t.Helper()
	if want == nil {
		t.Fatalf("%s: expected swatch does not exist", what)
	}
	if p.Swatch != want {
		t.Errorf("%s references %v, want swatch %q", what, p.Swatch, want.Name)
	}
}

// failingDoc injects collaborator failures.
type failingDoc struct {
	*document.Document
	addErr    error
	syncErr   error
	removeErr error
}

func (d *failingDoc) AddSwatch(name string, c color.Color) (*document.Swatch, error) {
	if d.addErr != nil {
		return nil, d.addErr
	}
	return d.Document.AddSwatch(name, c)
}

func (d *failingDoc) SyncInstance(l *document.Layer, s *document.SharedStyle) error {
	if d.syncErr != nil {
		return d.syncErr
	}
	return d.Document.SyncInstance(l, s)
}

func (d *failingDoc) RemoveLayerStyles(ids []string) error {
	if d.removeErr != nil {
		return d.removeErr
	}
	return d.Document.RemoveLayerStyles(ids)
}
