package mathbox

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/mathbox/build"
	"github.com/npillmayer/mathbox/tex"
)

// Settings control a render run: display mode, output format, error
// policy, macros, strictness and trust. The zero value is usable;
// NewSettings returns the recommended defaults.
type Settings = tex.Settings

// NewSettings returns default settings: errors are returned to the
// caller and both output trees are produced.
func NewSettings() Settings {
	return tex.NewSettings()
}

// Parse parses a TeX math expression into its parse-node tree, without
// laying it out. Failures are returned as *tex.ParseError.
func Parse(expr string, s Settings) ([]tex.Node, error) {
	return tex.NewParser(expr, &s).Parse()
}

// RenderTree parses and lays out a TeX math expression, returning the
// output trees selected by the settings. With ThrowOnError unset, parse
// errors render as an error-colored leaf holding the raw input instead
// of failing.
func RenderTree(expr string, s Settings) (*build.Output, error) {
	tree, err := Parse(expr, s)
	if err == nil {
		var out *build.Output
		out, err = build.Build(tree, expr, &s)
		if err == nil {
			return out, nil
		}
	}
	if perr, ok := err.(*tex.ParseError); ok && !s.ThrowOnError {
		tracer().Infof("recovering from parse error: %v", perr)
		return build.BuildParseError(perr, expr, &s), nil
	}
	return nil, err
}

// Render parses, lays out and serializes a TeX math expression to
// markup in one step.
func Render(expr string, s Settings) (string, error) {
	out, err := RenderTree(expr, s)
	if err != nil {
		return "", err
	}
	return out.Markup(), nil
}
