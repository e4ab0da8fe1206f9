package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/mathbox/box"
	"github.com/npillmayer/mathbox/mml"
	"github.com/npillmayer/mathbox/sym"
	"github.com/npillmayer/mathbox/tex"
)

// mathmlSupSub picks the script element for a base: msub/msup for
// ordinary bases, munder/mover for limit operators and braces.
func mathmlSupSub(n *tex.SupSub, options Options) (mml.Node, error) {
	isBrace := false
	isOver := false
	if brace, ok := n.Base.(*tex.HorizBrace); ok {
		isSup := n.Sup != nil
		if isSup == brace.IsOver {
			isBrace = true
			isOver = brace.IsOver
		}
	}
	switch base := n.Base.(type) {
	case *tex.Op:
		base.ParentIsSupSub = true
	case *tex.OperatorName:
		base.ParentIsSupSub = true
	}

	var children []mml.Node
	baseNode, err := buildMathMLGroup(n.Base, options)
	if err != nil {
		return nil, err
	}
	children = append(children, baseNode)
	if n.Sub != nil {
		sub, err := buildMathMLGroup(n.Sub, options)
		if err != nil {
			return nil, err
		}
		children = append(children, sub)
	}
	if n.Sup != nil {
		sup, err := buildMathMLGroup(n.Sup, options)
		if err != nil {
			return nil, err
		}
		children = append(children, sup)
	}

	display := options.Style.Size == DisplayStyle.Size
	var tag string
	switch {
	case isBrace:
		tag = "munder"
		if isOver {
			tag = "mover"
		}
	case n.Sub == nil:
		tag = "msup"
		switch base := n.Base.(type) {
		case *tex.Op:
			if base.Limits && (display || base.AlwaysHandleSupSub) {
				tag = "mover"
			}
		case *tex.OperatorName:
			if base.AlwaysHandleSupSub && (base.Limits || display) {
				tag = "mover"
			}
		}
	case n.Sup == nil:
		tag = "msub"
		switch base := n.Base.(type) {
		case *tex.Op:
			if base.Limits && (display || base.AlwaysHandleSupSub) {
				tag = "munder"
			}
		case *tex.OperatorName:
			if base.AlwaysHandleSupSub && (base.Limits || display) {
				tag = "munder"
			}
		}
	default:
		tag = "msubsup"
		switch base := n.Base.(type) {
		case *tex.Op:
			if base.Limits && (display || base.AlwaysHandleSupSub) {
				tag = "munderover"
			}
		case *tex.OperatorName:
			if base.AlwaysHandleSupSub && (base.Limits || display) {
				tag = "munderover"
			}
		}
	}
	return mml.NewElement(tag, children...), nil
}

// mathmlMClass renders a forced atom class. Single characters keep
// their own element; everything else wraps into mo with the spacing of
// the class.
func mathmlMClass(n *tex.MClass, options Options) (mml.Node, error) {
	inner, err := buildMathMLExpr(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	var node *mml.Element
	switch n.Class {
	case sym.Inner:
		node = mml.NewElement("mpadded", inner...)
		node.SetAttribute("lspace", "0.0556em")
		node.SetAttribute("width", "+0.1111em")
		return node, nil
	case sym.MathOrd:
		if n.IsCharacterBox {
			node = inner[0].(*mml.Element)
			node.Tag = "mi"
		} else {
			node = mml.NewElement("mi", inner...)
		}
		return node, nil
	}
	if n.IsCharacterBox {
		node = inner[0].(*mml.Element)
		node.Tag = "mo"
	} else {
		node = mml.NewElement("mo", inner...)
	}
	switch n.Class {
	case sym.Bin:
		node.SetAttribute("lspace", "0.22em")
		node.SetAttribute("rspace", "0.22em")
	case sym.Punct:
		node.SetAttribute("lspace", "0em")
		node.SetAttribute("rspace", "0.17em")
	case sym.Open, sym.Close:
		node.SetAttribute("lspace", "0em")
		node.SetAttribute("rspace", "0em")
	}
	return node, nil
}

// mathmlOperatorName renders \operatorname as an upright identifier
// followed by a function-application operator.
func mathmlOperatorName(n *tex.OperatorName, options Options) (mml.Node, error) {
	expression, err := buildMathMLExpr(n.Body, options.WithFont("mathrm"), false)
	if err != nil {
		return nil, err
	}
	allText := true
	for _, child := range expression {
		elem, ok := child.(*mml.Element)
		if !ok {
			allText = false
			break
		}
		switch elem.Tag {
		case "mi", "mn", "mtext":
		case "mo":
			if len(elem.Children) != 1 {
				allText = false
			}
		default:
			allText = false
		}
		if !allText {
			break
		}
	}
	if allText {
		var word strings.Builder
		for _, child := range expression {
			word.WriteString(child.Text())
		}
		text := strings.ReplaceAll(word.String(), "−", "-")
		text = strings.ReplaceAll(text, "∗", "*")
		expression = []mml.Node{mml.NewText(text)}
	}
	identifier := mml.NewElement("mi", expression...)
	identifier.SetAttribute("mathvariant", "normal")
	applyFunction := mml.NewElement("mo", makeMText("⁡", sym.TextMode, nil))
	return mml.NewElement("mrow", identifier, applyFunction), nil
}

// mathmlOp renders a big operator as mo (symbol or text body) or, for
// named functions, as mi plus the function-application operator.
func mathmlOp(n *tex.Op, options Options) (mml.Node, error) {
	if n.Symbol {
		node := mml.NewElement("mo", makeMText(n.Name, n.Mode, &options))
		if noSuccessor[n.Name] {
			node.SetAttribute("largeop", "false")
		}
		return node, nil
	}
	if n.Body != nil {
		inner, err := buildMathMLExpr(n.Body, options, false)
		if err != nil {
			return nil, err
		}
		return mml.NewElement("mo", inner...), nil
	}
	identifier := mml.NewElement("mi", mml.NewText(strings.TrimPrefix(n.Name, "\\")))
	applyFunction := mml.NewElement("mo", makeMText("⁡", sym.TextMode, nil))
	return mml.NewElement("mrow", identifier, applyFunction), nil
}

// mathmlGenFrac renders a generalized fraction, with explicit style and
// delimiters when the command fixed them.
func mathmlGenFrac(n *tex.GenFrac, options Options) (mml.Node, error) {
	numer, err := buildMathMLGroup(n.Numer, options)
	if err != nil {
		return nil, err
	}
	denom, err := buildMathMLGroup(n.Denom, options)
	if err != nil {
		return nil, err
	}
	node := mml.NewElement("mfrac", numer, denom)
	if !n.HasBarLine {
		node.SetAttribute("linethickness", "0px")
	} else if n.BarSize != nil {
		node.SetAttribute("linethickness", box.Em(CalculateSize(*n.BarSize, options)))
	}

	style := fracStyle(n, options)
	if style.Size != options.Style.Size {
		wrapper := mml.NewElement("mstyle", node)
		isDisplay := "false"
		if style.Size == DisplayStyle.Size {
			isDisplay = "true"
		}
		wrapper.SetAttribute("displaystyle", isDisplay)
		wrapper.SetAttribute("scriptlevel", "0")
		node = wrapper
	}

	if n.LeftDelim != "" || n.RightDelim != "" {
		var withDelims []mml.Node
		if n.LeftDelim != "" {
			left := mml.NewElement("mo", makeMText(n.LeftDelim, n.Mode, &options))
			left.SetAttribute("fence", "true")
			withDelims = append(withDelims, left)
		}
		withDelims = append(withDelims, node)
		if n.RightDelim != "" {
			right := mml.NewElement("mo", makeMText(n.RightDelim, n.Mode, &options))
			right.SetAttribute("fence", "true")
			withDelims = append(withDelims, right)
		}
		return wrapMRow(withDelims), nil
	}
	return node, nil
}

// mathmlXArrow renders a stretchy arrow with its padded labels.
func mathmlXArrow(n *tex.XArrow, options Options) (mml.Node, error) {
	arrow := stretchyMathNode(n.Label)
	minsize := "3.0em"
	if strings.HasPrefix(n.Label, "\\x") {
		minsize = "1.75em"
	}
	arrow.SetAttribute("minsize", minsize)

	if n.Body != nil {
		upper, err := buildMathMLGroup(n.Body, options.HavingStyle(options.Style.Sup()))
		if err != nil {
			return nil, err
		}
		upperNode := paddedMNode(upper)
		if n.Below != nil {
			lower, err := buildMathMLGroup(n.Below, options.HavingStyle(options.Style.Sub()))
			if err != nil {
				return nil, err
			}
			return mml.NewElement("munderover", arrow, paddedMNode(lower), upperNode), nil
		}
		return mml.NewElement("mover", arrow, upperNode), nil
	}
	if n.Below != nil {
		lower, err := buildMathMLGroup(n.Below, options.HavingStyle(options.Style.Sub()))
		if err != nil {
			return nil, err
		}
		return mml.NewElement("munder", arrow, paddedMNode(lower)), nil
	}
	return mml.NewElement("mover", arrow, paddedMNode(nil)), nil
}

// mathmlEnclose renders enclosing notations with menclose, except for
// the color boxes which pad instead.
func mathmlEnclose(n *tex.Enclose, options Options) (mml.Node, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	var node *mml.Element
	if strings.Contains(n.Label, "colorbox") {
		fboxsep := options.FontMetrics().FBoxSep * options.FontMetrics().PtPerEm
		node = mml.NewElement("mpadded", body)
		node.SetAttribute("width", "+"+formatNum(2*fboxsep)+"pt")
		node.SetAttribute("height", "+"+formatNum(2*fboxsep)+"pt")
		node.SetAttribute("lspace", formatNum(fboxsep)+"pt")
		node.SetAttribute("voffset", formatNum(fboxsep)+"pt")
		if n.Label == "\\fcolorbox" {
			thickness := max(options.FontMetrics().FBoxRule, options.MinRuleThickness)
			node.SetAttribute("style",
				"border: "+box.Em(thickness)+" solid "+n.BorderColor)
		}
	} else {
		node = mml.NewElement("menclose", body)
		switch n.Label {
		case "\\cancel":
			node.SetAttribute("notation", "updiagonalstrike")
		case "\\bcancel":
			node.SetAttribute("notation", "downdiagonalstrike")
		case "\\sout":
			node.SetAttribute("notation", "horizontalstrike")
		case "\\fbox", "\\boxed":
			node.SetAttribute("notation", "box")
		case "\\angl":
			node.SetAttribute("notation", "actuarial")
		default:
			node.SetAttribute("notation", "updiagonalstrike downdiagonalstrike")
		}
	}
	if n.BackgroundColor != "" {
		node.SetAttribute("mathbackground", n.BackgroundColor)
	}
	return node, nil
}

// mathmlArray renders an array-like environment as an mtable with row
// spacing and column alignment taken from the parsed layout.
func mathmlArray(n *tex.ArrayNode, options Options) (mml.Node, error) {
	hasTags := false
	for _, tag := range n.Tags {
		if tag != nil {
			hasTags = true
			break
		}
	}

	var rows []mml.Node
	for r, inrow := range n.Body {
		var cells []mml.Node
		if hasTags {
			var label mml.Node = mml.NewElement("mtext")
			if r < len(n.Tags) && n.Tags[r] != nil {
				built, err := buildMathMLGroup(n.Tags[r], options)
				if err != nil {
					return nil, err
				}
				label = built
			}
			cells = append(cells, mml.NewElement("mtd", label))
		}
		for _, cell := range inrow {
			row, err := buildMathMLRow([]tex.Node{cell}, options, false)
			if err != nil {
				return nil, err
			}
			cells = append(cells, mml.NewElement("mtd", row))
		}
		tag := "mtr"
		if hasTags {
			tag = "mlabeledtr"
		}
		rows = append(rows, mml.NewElement(tag, cells...))
	}
	table := mml.NewElement("mtable", rows...)

	gap := 0.16 + n.ArrayStretch - 1
	if n.ArrayStretch == 0.5 {
		gap = 0.1
	} else if n.AddJot {
		gap += 0.09
	}
	table.SetAttribute("rowspacing", box.Em(gap))

	var aligns []string
	for _, col := range n.Cols {
		if col.Separator != "" {
			continue
		}
		align := col.Align
		switch align {
		case "l":
			align = "left"
		case "r":
			align = "right"
		default:
			align = "center"
		}
		aligns = append(aligns, align)
	}
	if len(aligns) > 0 {
		table.SetAttribute("columnalign", strings.Join(aligns, " "))
	}
	if n.ColSeparationType == tex.ColSepAlign ||
		n.ColSeparationType == tex.ColSepAlignAt {
		table.SetAttribute("columnspacing", "0em")
	}
	if n.Leqno != nil && *n.Leqno {
		table.SetAttribute("side", "left")
	}
	return table, nil
}

// buildMathML assembles the semantic output: the expression wrapped in
// semantics with the original input recorded as an annotation.
func buildMathML(tree []tex.Node, texExpression string, options Options,
	displayMode bool) (*mml.Element, error) {
	expression, err := buildMathMLExpr(tree, options, false)
	if err != nil {
		return nil, err
	}

	var wrapper mml.Node
	if len(expression) == 1 {
		if e, ok := expression[0].(*mml.Element); ok &&
			(e.Tag == "mrow" || e.Tag == "mtable") {
			wrapper = e
		}
	}
	if wrapper == nil {
		wrapper = mml.NewElement("mrow", expression...)
	}

	annotation := mml.NewElement("annotation", mml.NewText(texExpression))
	annotation.SetAttribute("encoding", "application/x-tex")
	semantics := mml.NewElement("semantics", wrapper, annotation)
	math := mml.NewElement("math", semantics)
	math.SetAttribute("xmlns", "http://www.w3.org/1998/Math/MathML")
	if displayMode {
		math.SetAttribute("display", "block")
	}
	return math, nil
}
