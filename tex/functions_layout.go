package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/mathbox/sym"
)

func init() {
	defineKernFunctions()
	defineRuleFunctions()
	defineBoxFunctions()
	definePhantomFunctions()
	defineEncloseFunctions()
	defineCrFunction()
}

func defineKernFunctions() {
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"size"}, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			size := args[0].(*SizeLit)
			mathFunction := ctx.FuncName == "\\mkern" || ctx.FuncName == "\\mskip"
			muUnit := size.Value.Unit == "mu"
			if mathFunction && !muUnit {
				ctx.Parser.settings.ReportNonstrict("mathVsTextUnits",
					"LaTeX's "+ctx.FuncName+" supports only mu units, not "+
						size.Value.Unit+" units", spanOfNode(size))
			}
			if !mathFunction && muUnit {
				ctx.Parser.settings.ReportNonstrict("mathVsTextUnits",
					"LaTeX's "+ctx.FuncName+" doesn't support mu units", spanOfNode(size))
			}
			if mathFunction && ctx.Parser.mode != sym.MathMode {
				ctx.Parser.settings.ReportNonstrict("mathVsTextUnits",
					"LaTeX's "+ctx.FuncName+" is invalid in text mode", spanOfNode(size))
			}
			return &Kern{
				Info:      info(ctx.Parser.mode, ctx.Token),
				Dimension: size.Value,
			}, nil
		},
	}, "\\kern", "\\mkern", "\\hskip", "\\mskip")
}

func defineRuleFunctions() {
	defineFunction(FuncSpec{
		NumArgs: 2, NumOptionalArgs: 1, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"size", "size", "size"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			var shift *Measurement
			if len(optArgs) > 0 && optArgs[0] != nil {
				s := optArgs[0].(*SizeLit).Value
				shift = &s
			}
			width := args[0].(*SizeLit).Value
			height := args[1].(*SizeLit).Value
			return &RuleNode{
				Info:   info(ctx.Parser.mode, ctx.Token),
				Shift:  shift,
				Width:  width,
				Height: height,
			}, nil
		},
	}, "\\rule")
}

func defineBoxFunctions() {
	defineFunction(FuncSpec{
		NumArgs: 2, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"size", "hbox"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &RaiseBox{
				Info: info(ctx.Parser.mode, ctx.Token),
				Dy:   args[0].(*SizeLit).Value,
				Body: args[1],
			}, nil
		},
	}, "\\raisebox")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"hbox"}, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			// An \hbox resists vertical style changes and line breaks.
			return &Styling{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Style: "text",
				Body:  OrdArgument(args[0]),
			}, nil
		},
	}, "\\hbox")

	lapNames := []string{"\\mathllap", "\\mathrlap", "\\mathclap", "\\llap", "\\rlap", "\\clap"}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true, AllowedInArgument: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Lap{
				Info:      info(ctx.Parser.mode, ctx.Token),
				Alignment: strings.TrimPrefix(ctx.FuncName[1:], "math"),
				Body:      args[0],
			}, nil
		},
	}, lapNames...)

	defineFunction(FuncSpec{
		NumArgs: 1, NumOptionalArgs: 1, AllowedInMath: true,
		ArgTypes: []string{"raw", "original"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			smashHeight := false
			smashDepth := false
			if len(optArgs) > 0 && optArgs[0] != nil {
				letters := optArgs[0].(*Raw).String
				for _, r := range letters {
					switch r {
					case 't':
						smashHeight = true
					case 'b':
						smashDepth = true
					}
				}
			} else {
				smashHeight = true
				smashDepth = true
			}
			return &Smash{
				Info:        info(ctx.Parser.mode, ctx.Token),
				Body:        args[0],
				SmashHeight: smashHeight,
				SmashDepth:  smashDepth,
			}, nil
		},
	}, "\\smash")
}

func definePhantomFunctions() {
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Phantom{
				Info: info(ctx.Parser.mode, ctx.Token),
				Body: OrdArgument(args[0]),
			}, nil
		},
	}, "\\phantom")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &HPhantom{Info: info(ctx.Parser.mode, ctx.Token), Body: args[0]}, nil
		},
	}, "\\hphantom")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &VPhantom{Info: info(ctx.Parser.mode, ctx.Token), Body: args[0]}, nil
		},
	}, "\\vphantom")
}

func defineEncloseFunctions() {
	defineFunction(FuncSpec{
		NumArgs: 2, AllowedInMath: true, ArgTypes: []string{"color", "original"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Enclose{
				Info:            info(ctx.Parser.mode, ctx.Token),
				Label:           ctx.FuncName,
				BackgroundColor: args[0].(*ColorToken).Color,
				Body:            args[1],
			}, nil
		},
	}, "\\colorbox")

	defineFunction(FuncSpec{
		NumArgs: 3, AllowedInMath: true, ArgTypes: []string{"color", "color", "original"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Enclose{
				Info:            info(ctx.Parser.mode, ctx.Token),
				Label:           ctx.FuncName,
				BorderColor:     args[0].(*ColorToken).Color,
				BackgroundColor: args[1].(*ColorToken).Color,
				Body:            args[2],
			}, nil
		},
	}, "\\fcolorbox")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, ArgTypes: []string{"hbox"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Enclose{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Label: "\\fbox",
				Body:  args[0],
			}, nil
		},
	}, "\\fbox")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Enclose{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Label: ctx.FuncName,
				Body:  args[0],
			}, nil
		},
	}, "\\cancel", "\\bcancel", "\\xcancel", "\\sout", "\\phase", "\\angl")
}

func defineCrFunction() {
	// \\ ends a row in environments and breaks lines at top level.
	defineFunction(FuncSpec{
		NumOptionalArgs: 1, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"size"}, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			var size *Measurement
			if len(optArgs) > 0 && optArgs[0] != nil {
				s := optArgs[0].(*SizeLit).Value
				size = &s
			}
			newLine := !ctx.Parser.settings.DisplayMode ||
				!ctx.Parser.settings.UseStrictBehavior("newLineInDisplayMode",
					"In LaTeX, \\\\ or \\newline does nothing in display mode", nil)
			return &Cr{
				Info:    info(ctx.Parser.mode, ctx.Token),
				NewLine: newLine,
				Size:    size,
			}, nil
		},
	}, "\\\\")

	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Cr{Info: info(ctx.Parser.mode, ctx.Token), NewLine: true}, nil
		},
	}, "\\newline")
}
