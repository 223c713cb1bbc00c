// Package migrator converts the independent colors of a design document into
// references to its color swatches.
package migrator

import (
	"fmt"
	"os"

	"github.com/sketch-hq/color-variables-migrator/internal/config"
	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/sketch-hq/color-variables-migrator/internal/format"
	"github.com/sketch-hq/color-variables-migrator/internal/migrate"
	"github.com/sketch-hq/color-variables-migrator/internal/parser"
)

// Load parses a document file.
func Load(path string) (*document.Document, error) {
	doc, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	return doc, nil
}

// Save writes doc to path in canonical form.
func Save(doc *document.Document, path string) error {
	out, err := format.Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Migrate runs the phases opts enables over doc.
func Migrate(doc migrate.Document, opts config.Options, notifier migrate.Notifier) (*migrate.Result, error) {
	return migrate.New(opts, notifier).Run(doc)
}

// Job migrates a document file.
type Job struct {
	Input    string
	Output   string // defaults to Input
	Options  config.Options
	DryRun   bool
	Notifier migrate.Notifier
}

// Run loads the input, migrates it and, unless the run was cancelled or
// DryRun is set, writes the result. A failed run writes nothing.
func (j *Job) Run() (*migrate.Result, error) {
	doc, err := Load(j.Input)
	if err != nil {
		return nil, err
	}

	res, err := Migrate(doc, j.Options, j.Notifier)
	if err != nil {
		return res, fmt.Errorf("migrating %s: %w", j.Input, err)
	}
	if j.DryRun || res.State != migrate.Done {
		return res, nil
	}

	out := j.Output
	if out == "" {
		out = j.Input
	}
	if err := Save(doc, out); err != nil {
		return res, err
	}
	return res, nil
}
