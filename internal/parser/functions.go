package parser

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/sketch-hq/color-variables-migrator/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// BuildEvalContext returns the evaluation context for document files: no
// variables, and the rgb/rgba color constructors.
func BuildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"rgb":  makeRGBFunc(),
			"rgba": makeRGBAFunc(),
		},
	}
}

func channelParam(name string) function.Parameter {
	return function.Parameter{Name: name, Type: cty.Number}
}

// makeRGBFunc creates an HCL function returning the hex form of an opaque color.
// Usage: rgb(255, 0, 0)
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds an opaque color from red, green and blue channels (0-255)",
		Params: []function.Parameter{
			channelParam("red"),
			channelParam("green"),
			channelParam("blue"),
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]uint8
			for i, arg := range args {
				v, err := channel(arg)
				if err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
				ch[i] = v
			}
			return cty.StringVal(color.RGB(ch[0], ch[1], ch[2]).Hex()), nil
		},
	})
}

// makeRGBAFunc creates an HCL function returning the hex form of a color with
// alpha. Alpha is a CSS-style opacity between 0.0 and 1.0.
// Usage: rgba(0, 0, 0, 0.5)
func makeRGBAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green, blue channels (0-255) and an opacity (0.0-1.0)",
		Params: []function.Parameter{
			channelParam("red"),
			channelParam("green"),
			channelParam("blue"),
			{Name: "alpha", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]uint8
			for i, arg := range args[:3] {
				v, err := channel(arg)
				if err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
				ch[i] = v
			}
			alpha, _ := args[3].AsBigFloat().Float64()
			if alpha < 0 || alpha > 1 {
				return cty.NilVal, function.NewArgErrorf(3, "alpha must be between 0.0 and 1.0, got %g", alpha)
			}
			c := color.Color{R: ch[0], G: ch[1], B: ch[2], A: uint8(math.Round(alpha * 255))}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

func channel(v cty.Value) (uint8, error) {
	f, _ := v.AsBigFloat().Float64()
	if f < 0 || f > 255 || f != math.Trunc(f) {
		return 0, fmt.Errorf("channel must be an integer between 0 and 255, got %g", f)
	}
	return uint8(f), nil
}
