package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Options selects which migration phases run. The zero value enables nothing,
// which is the same as cancelling.
type Options struct {
	ReplaceLayerColors      bool `hcl:"replace_layer_colors,optional"`
	ReplaceStyleColors      bool `hcl:"replace_style_colors,optional"`
	SimplifyStyles          bool `hcl:"simplify_styles,optional"`
	GenerateMissingSwatches bool `hcl:"generate_missing_swatches,optional"`
}

// All returns options with every phase enabled.
func All() Options {
	return Options{
		ReplaceLayerColors:      true,
		ReplaceStyleColors:      true,
		SimplifyStyles:          true,
		GenerateMissingSwatches: true,
	}
}

// Any reports whether at least one phase is enabled.
func (o Options) Any() bool {
	return o.ReplaceLayerColors || o.ReplaceStyleColors || o.SimplifyStyles || o.GenerateMissingSwatches
}

// file is the top-level schema of an options file.
type file struct {
	Migrate *Options `hcl:"migrate,block"`
	Remain  hcl.Body `hcl:",remain"`
}

// Load reads options from an HCL file:
//
//	migrate {
//	  replace_layer_colors = true
//	  simplify_styles      = true
//	}
//
// A file without a migrate block yields the zero Options.
func Load(path string) (Options, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes options from HCL source.
func Parse(src []byte, filename string) (Options, error) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Options{}, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return Options{}, fmt.Errorf("decoding options: %s", diags.Error())
	}
	if raw.Migrate == nil {
		return Options{}, nil
	}
	return *raw.Migrate, nil
}
