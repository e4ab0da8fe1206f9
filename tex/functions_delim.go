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

// Delimiters: the manually sized \big family, and the automatically
// sized \left ... \middle ... \right groups.

// delimiters lists every symbol allowed after a delimiter command.
var delimiters = map[string]bool{
	"(": true, "\\lparen": true, ")": true, "\\rparen": true,
	"[": true, "\\lbrack": true, "]": true, "\\rbrack": true,
	"\\{": true, "\\lbrace": true, "\\}": true, "\\rbrace": true,
	"\\lfloor": true, "\\rfloor": true, "⌊": true, "⌋": true,
	"\\lceil": true, "\\rceil": true, "⌈": true, "⌉": true,
	"<": true, ">": true, "\\langle": true, "⟨": true,
	"\\rangle": true, "⟩": true, "\\lt": true, "\\gt": true,
	"\\lvert": true, "\\rvert": true, "\\lVert": true, "\\rVert": true,
	"\\lgroup": true, "\\rgroup": true, "⟮": true, "⟯": true,
	"\\lmoustache": true, "\\rmoustache": true, "⎰": true, "⎱": true,
	"/": true, "\\backslash": true,
	"|": true, "\\vert": true, "\\|": true, "\\Vert": true,
	"\\uparrow": true, "\\Uparrow": true,
	"\\downarrow": true, "\\Downarrow": true,
	"\\updownarrow": true, "\\Updownarrow": true,
	".": true,
}

// checkDelimiter validates a delimiter argument.
func checkDelimiter(delim Node, ctx FuncContext) (string, error) {
	text, ok := CheckSymbolNodeType(delim)
	if !ok || !delimiters[text] {
		return "", errorf(ctx.Token, "invalid delimiter after %q", ctx.FuncName)
	}
	return text, nil
}

// delimSizes maps the \big family to size class and atom family.
var delimSizes = map[string]struct {
	mclass sym.Group
	size   int
}{
	"\\bigl": {sym.Open, 1}, "\\Bigl": {sym.Open, 2},
	"\\biggl": {sym.Open, 3}, "\\Biggl": {sym.Open, 4},
	"\\bigr": {sym.Close, 1}, "\\Bigr": {sym.Close, 2},
	"\\biggr": {sym.Close, 3}, "\\Biggr": {sym.Close, 4},
	"\\bigm": {sym.Rel, 1}, "\\Bigm": {sym.Rel, 2},
	"\\biggm": {sym.Rel, 3}, "\\Biggm": {sym.Rel, 4},
	"\\big": {sym.MathOrd, 1}, "\\Big": {sym.MathOrd, 2},
	"\\bigg": {sym.MathOrd, 3}, "\\Bigg": {sym.MathOrd, 4},
}

func init() {
	names := make([]string, 0, len(delimSizes))
	for name := range delimSizes {
		names = append(names, name)
	}
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, ArgTypes: []string{"primitive"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			delim, err := checkDelimiter(args[0], ctx)
			if err != nil {
				return nil, err
			}
			ds := delimSizes[ctx.FuncName]
			return &DelimSizing{
				Info:   info(ctx.Parser.mode, ctx.Token),
				Size:   ds.size,
				MClass: ds.mclass,
				Delim:  delim,
			}, nil
		},
	}, names...)

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, Primitive: true, ArgTypes: []string{"primitive"},
		Handler: leftHandler,
	}, "\\left")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, Primitive: true, ArgTypes: []string{"primitive"},
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			delim, err := checkDelimiter(args[0], ctx)
			if err != nil {
				return nil, err
			}
			// \right closes the group opened by \left; the color is
			// snapshot so the matching \left can tint its delimiter.
			color := ctx.Parser.gullet.Macros.getColor()
			return &LeftRightRight{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Delim: delim,
				Color: color,
			}, nil
		},
	}, "\\right")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, Primitive: true, ArgTypes: []string{"primitive"},
		Handler: middleHandler,
	}, "\\middle")
}

func leftHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	delim, err := checkDelimiter(args[0], ctx)
	if err != nil {
		return nil, err
	}
	p := ctx.Parser
	p.leftrightDepth++
	body, err := p.parseExpression(false, ctx.BreakOnTokenText)
	if err != nil {
		return nil, err
	}
	p.leftrightDepth--
	if err := p.expect("\\right", false); err != nil {
		return nil, err
	}
	right, err := p.parseFunction("", "")
	if err != nil {
		return nil, err
	}
	rr, ok := right.(*LeftRightRight)
	if !ok {
		return nil, errorf(ctx.Token, "failed to parse \\right delimiter")
	}
	return &LeftRight{
		Info:       info(p.mode, ctx.Token),
		Body:       body,
		Left:       delim,
		Right:      rr.Delim,
		RightColor: rr.Color,
	}, nil
}

func middleHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	delim, err := checkDelimiter(args[0], ctx)
	if err != nil {
		return nil, err
	}
	if ctx.Parser.leftrightDepth == 0 {
		return nil, errorf(ctx.Token, "\\middle without preceding \\left")
	}
	return &MiddleBox{
		Info:  info(ctx.Parser.mode, ctx.Token),
		Delim: delim,
	}, nil
}
