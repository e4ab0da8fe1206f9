package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Fractions: the \frac family, \binom, the \genfrac primitive, and the
// TeX infix forms \over, \atop, \choose and \above.

func init() {
	defineFunction(FuncSpec{
		NumArgs: 2, AllowedInMath: true, AllowedInArgument: true,
		Handler: fracHandler,
	}, "\\frac", "\\dfrac", "\\tfrac", "\\binom",
		"\\\\atopfrac", "\\\\bracefrac", "\\\\brackfrac")

	defineFunction(FuncSpec{
		NumArgs: 2, AllowedInMath: true,
		Handler: cfracHandler,
	}, "\\cfrac")

	defineFunction(FuncSpec{
		AllowedInMath: true, Infix: true,
		Handler: infixHandler,
	}, "\\over", "\\atop", "\\choose", "\\brace", "\\brack")

	defineFunction(FuncSpec{
		NumArgs: 6, AllowedInMath: true,
		ArgTypes: []string{"math", "math", "size", "text", "math", "math"},
		Handler:  genfracHandler,
	}, "\\genfrac")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, Infix: true,
		ArgTypes: []string{"size"},
		Handler:  aboveHandler,
	}, "\\above")

	defineFunction(FuncSpec{
		NumArgs: 3, AllowedInMath: true,
		ArgTypes: []string{"math", "size", "math"},
		Handler:  aboveFracHandler,
	}, "\\\\abovefrac")
}

func fracHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	numer, denom := args[0], args[1]
	hasBarLine := false
	leftDelim, rightDelim := "", ""
	size := "auto"
	switch ctx.FuncName {
	case "\\frac", "\\dfrac", "\\tfrac":
		hasBarLine = true
	case "\\binom":
		leftDelim, rightDelim = "(", ")"
	case "\\\\atopfrac":
		// no bar
	case "\\\\bracefrac":
		leftDelim, rightDelim = "\\{", "\\}"
	case "\\\\brackfrac":
		leftDelim, rightDelim = "[", "]"
	}
	switch ctx.FuncName {
	case "\\dfrac":
		size = "display"
	case "\\tfrac":
		size = "text"
	}
	return &GenFrac{
		Info:       info(ctx.Parser.mode, ctx.Token),
		Numer:      numer,
		Denom:      denom,
		HasBarLine: hasBarLine,
		LeftDelim:  leftDelim,
		RightDelim: rightDelim,
		Size:       size,
	}, nil
}

func cfracHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	return &GenFrac{
		Info:          info(ctx.Parser.mode, ctx.Token),
		Numer:         args[0],
		Denom:         args[1],
		HasBarLine:    true,
		Size:          "display",
		ContinuedFrac: true,
	}, nil
}

// infixReplacements maps infix commands to the prefix fraction command
// the expression is rewritten into.
var infixReplacements = map[string]string{
	"\\over":   "\\frac",
	"\\atop":   "\\\\atopfrac",
	"\\choose": "\\binom",
	"\\brace":  "\\\\bracefrac",
	"\\brack":  "\\\\brackfrac",
}

func infixHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	return &Infix{
		Info:        info(ctx.Parser.mode, ctx.Token),
		ReplaceWith: infixReplacements[ctx.FuncName],
		Token:       ctx.Token,
	}, nil
}

// delimFromGenfracArg reads a delimiter out of a \genfrac delimiter
// argument, which may be a symbol atom or an empty group.
func delimFromGenfracArg(n Node) string {
	if text, ok := CheckSymbolNodeType(n); ok {
		return text
	}
	return ""
}

func genfracHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	leftDelim := delimFromGenfracArg(args[0])
	rightDelim := delimFromGenfracArg(args[1])
	barSizeNode, _ := args[2].(*SizeLit)
	hasBarLine := true
	var barSize *Measurement
	if barSizeNode == nil || barSizeNode.IsBlank {
		// empty size argument keeps the default rule
	} else {
		barSize = &barSizeNode.Value
		hasBarLine = barSize.Number > 0
	}
	size := "auto"
	styleBody := OrdArgument(args[3])
	if len(styleBody) > 0 {
		if t, ok := symbolText(styleBody[0]); ok {
			switch t {
			case "0":
				size = "display"
			case "1":
				size = "text"
			case "2":
				size = "script"
			case "3":
				size = "scriptscript"
			}
		}
	}
	return &GenFrac{
		Info:       info(ctx.Parser.mode, ctx.Token),
		Numer:      args[4],
		Denom:      args[5],
		HasBarLine: hasBarLine,
		BarSize:    barSize,
		LeftDelim:  leftDelim,
		RightDelim: rightDelim,
		Size:       size,
	}, nil
}

func aboveHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	sz, ok := args[0].(*SizeLit)
	if !ok {
		return nil, errorf(ctx.Token, "\\above requires a size argument")
	}
	return &Infix{
		Info:        info(ctx.Parser.mode, ctx.Token),
		ReplaceWith: "\\\\abovefrac",
		Size:        &sz.Value,
		Token:       ctx.Token,
	}, nil
}

func aboveFracHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	sz, ok := args[1].(*SizeLit)
	if !ok {
		return nil, errorf(ctx.Token, "invalid \\\\abovefrac size")
	}
	barSize := sz.Value
	return &GenFrac{
		Info:       info(ctx.Parser.mode, ctx.Token),
		Numer:      args[0],
		Denom:      args[2],
		HasBarLine: barSize.Number > 0,
		BarSize:    &barSize,
		Size:       "auto",
	}, nil
}
