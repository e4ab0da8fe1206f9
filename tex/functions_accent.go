package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// nonStretchyAccents keep the width of a single character; everything
// else stretches over its base.
var nonStretchyAccents = map[string]bool{
	"\\acute": true, "\\grave": true, "\\ddot": true, "\\tilde": true,
	"\\bar": true, "\\breve": true, "\\check": true, "\\hat": true,
	"\\vec": true, "\\dot": true, "\\mathring": true,
}

// shiftyAccents follow the skew of an italic base character.
var shiftyAccents = map[string]bool{
	"\\acute": true, "\\grave": true, "\\ddot": true, "\\tilde": true,
	"\\bar": true, "\\breve": true, "\\check": true, "\\hat": true,
	"\\vec": true, "\\dot": true, "\\mathring": true,
	"\\widehat": true, "\\widetilde": true, "\\widecheck": true,
}

func init() {
	mathAccents := []string{
		"\\acute", "\\grave", "\\ddot", "\\tilde", "\\bar", "\\breve",
		"\\check", "\\hat", "\\vec", "\\dot", "\\mathring",
		"\\widecheck", "\\widehat", "\\widetilde",
		"\\overrightarrow", "\\overleftarrow", "\\Overrightarrow",
		"\\overleftrightarrow", "\\overleftharpoon", "\\overrightharpoon",
	}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, ArgTypes: []string{"primitive"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			base := args[0]
			label := ctx.FuncName
			return &Accent{
				Info:       info(ctx.Parser.mode, ctx.Token),
				Label:      label,
				IsStretchy: !nonStretchyAccents[label],
				IsShifty:   shiftyAccents[label],
				Base:       base,
			}, nil
		},
	}, mathAccents...)

	// Text-mode accents render non-stretchy and shifty.
	textAccents := []string{
		"\\'", "\\`", "\\^", "\\~", "\\=", "\\u", "\\.", "\\\"",
		"\\r", "\\H", "\\v", "\\textcircled",
	}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: false,
		ArgTypes: []string{"primitive"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Accent{
				Info:     info(ctx.Parser.mode, ctx.Token),
				Label:    ctx.FuncName,
				IsShifty: true,
				Base:     args[0],
			}, nil
		},
	}, textAccents...)

	underAccents := []string{
		"\\underleftarrow", "\\underrightarrow", "\\underleftrightarrow",
		"\\utilde",
	}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &AccentUnder{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Label: ctx.FuncName,
				Base:  args[0],
			}, nil
		},
	}, underAccents...)

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &HorizBrace{
				Info:   info(ctx.Parser.mode, ctx.Token),
				Label:  ctx.FuncName,
				IsOver: strings.HasPrefix(ctx.FuncName, "\\over"),
				Base:   args[0],
			}, nil
		},
	}, "\\overbrace", "\\underbrace")

	xArrows := []string{
		"\\xleftarrow", "\\xrightarrow", "\\xLeftarrow", "\\xRightarrow",
		"\\xleftrightarrow", "\\xLeftrightarrow",
		"\\xleftharpoonup", "\\xrightharpoonup",
	}
	defineFunction(FuncSpec{
		NumArgs: 1, NumOptionalArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			var below Node
			if len(optArgs) > 0 {
				below = optArgs[0]
			}
			return &XArrow{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Label: ctx.FuncName,
				Body:  args[0],
				Below: below,
			}, nil
		},
	}, xArrows...)
}
