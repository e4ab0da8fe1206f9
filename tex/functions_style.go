package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/mathbox/sym"
)

// Style switches: colors, fonts, sizes, layout styles and forced atom
// classes.

func init() {
	defineColorFunctions()
	defineFontFunctions()
	defineSizingFunctions()
	defineStylingFunctions()
	defineMClassFunctions()
}

func defineColorFunctions() {
	defineFunction(FuncSpec{
		NumArgs: 2, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"color", "original"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			color := args[0].(*ColorToken).Color
			return &ColorNode{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Color: color,
				Body:  OrdArgument(args[1]),
			}, nil
		},
	}, "\\textcolor")

	// \color affects the rest of the enclosing group, so its handler
	// parses forward to the group end.
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true,
		ArgTypes: []string{"color"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			color := args[0].(*ColorToken).Color
			// Remember the state for \right delimiter coloring.
			ctx.Parser.gullet.Macros.Set("\\current@color", MacroString(color), false)
			body, err := ctx.Parser.parseExpression(true, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			return &ColorNode{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Color: color,
				Body:  body,
			}, nil
		},
	}, "\\color")
}

// fontAliases maps alternative font command names to the commands they
// stand for.
var fontAliases = map[string]string{
	"\\Bbb":  "\\mathbb",
	"\\bold": "\\mathbf",
	"\\frak": "\\mathfrak",
	"\\bm":   "\\boldsymbol",
}

func defineFontFunctions() {
	fontNames := []string{
		"\\mathrm", "\\mathit", "\\mathbf", "\\mathnormal", "\\mathsf",
		"\\mathtt", "\\mathcal", "\\mathfrak", "\\mathscr", "\\mathbb",
		"\\Bbb", "\\bold", "\\frak",
	}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInArgument: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			font := ctx.FuncName
			if alias, ok := fontAliases[font]; ok {
				font = alias
			}
			return &FontNode{
				Info: info(ctx.Parser.mode, ctx.Token),
				Font: font[1:], // drop the backslash
				Body: args[0],
			}, nil
		},
	}, fontNames...)

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			body := args[0]
			isChar := IsCharacterBox(body)
			return &MClass{
				Info:           info(ctx.Parser.mode, ctx.Token),
				Class:          binrelClass(body),
				Body:           []Node{&FontNode{Info: info(ctx.Parser.mode, ctx.Token), Font: "boldsymbol", Body: body}},
				IsCharacterBox: isChar,
			}, nil
		},
	}, "\\boldsymbol", "\\bm")

	// Old-style font commands restyle the rest of the group.
	oldFonts := map[string]string{
		"\\rm": "mathrm", "\\sf": "mathsf", "\\tt": "mathtt",
		"\\bf": "mathbf", "\\it": "mathit", "\\cal": "mathcal",
	}
	names := make([]string, 0, len(oldFonts))
	for name := range oldFonts {
		names = append(names, name)
	}
	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			p := ctx.Parser
			p.consumeSpaces()
			body, err := p.parseExpression(true, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			return &FontNode{
				Info: info(p.mode, ctx.Token),
				Font: oldFonts[ctx.FuncName],
				Body: &OrdGroup{Info: info(p.mode, ctx.Token), Body: body},
			}, nil
		},
	}, names...)
}

// binrelClass guesses the atom class of a bold-wrapped argument from
// its first node, so \boldsymbol keeps binary/relation spacing.
func binrelClass(arg Node) sym.Group {
	first := arg
	if g, ok := arg.(*OrdGroup); ok && len(g.Body) > 0 {
		first = g.Body[0]
	}
	if atom, ok := first.(*Atom); ok {
		if atom.Family == sym.Bin || atom.Family == sym.Rel {
			return atom.Family
		}
	}
	return sym.MathOrd
}

// sizeFuncs orders the LaTeX size commands; the index is the size
// number the layout engine works with.
var sizeFuncs = []string{
	"\\tiny", "\\sixptsize", "\\scriptsize", "\\footnotesize", "\\small",
	"\\normalsize", "\\large", "\\Large", "\\LARGE", "\\huge", "\\Huge",
}

func defineSizingFunctions() {
	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			p := ctx.Parser
			body, err := p.parseExpression(false, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			size := 6 // \normalsize
			for i, name := range sizeFuncs {
				if name == ctx.FuncName {
					size = i + 1
				}
			}
			return &Sizing{
				Info: info(p.mode, ctx.Token),
				Size: size,
				Body: body,
			}, nil
		},
	}, sizeFuncs...)
}

var styleNames = map[string]string{
	"\\displaystyle":      "display",
	"\\textstyle":         "text",
	"\\scriptstyle":       "script",
	"\\scriptscriptstyle": "scriptscript",
}

func defineStylingFunctions() {
	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			p := ctx.Parser
			// Styling affects the rest of the group.
			body, err := p.parseExpression(true, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			return &Styling{
				Info:  info(p.mode, ctx.Token),
				Style: styleNames[ctx.FuncName],
				Body:  body,
			}, nil
		},
	}, "\\displaystyle", "\\textstyle", "\\scriptstyle", "\\scriptscriptstyle")
}

var mclassNames = map[string]sym.Group{
	"\\mathord":   sym.MathOrd,
	"\\mathbin":   sym.Bin,
	"\\mathrel":   sym.Rel,
	"\\mathopen":  sym.Open,
	"\\mathclose": sym.Close,
	"\\mathpunct": sym.Punct,
	"\\mathinner": sym.Inner,
}

func defineMClassFunctions() {
	names := make([]string, 0, len(mclassNames))
	for name := range mclassNames {
		names = append(names, name)
	}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			body := OrdArgument(args[0])
			return &MClass{
				Info:           info(ctx.Parser.mode, ctx.Token),
				Class:          mclassNames[ctx.FuncName],
				Body:           body,
				IsCharacterBox: IsCharacterBox(args[0]),
			}, nil
		},
	}, names...)

	// \stackrel-style helpers \overset and \underset arrive as macros;
	// \not is special-cased as a rel combination.
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			body := OrdArgument(args[0])
			slash := &MathOrd{Info: info(ctx.Parser.mode, ctx.Token), Text: "̸"}
			return &MClass{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Class: sym.Rel,
				Body:  append([]Node{slash}, body...),
			}, nil
		},
	}, "\\not")
}
