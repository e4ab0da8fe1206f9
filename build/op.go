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
	"github.com/npillmayer/mathbox/sym"
	"github.com/npillmayer/mathbox/tex"
)

// assembleSupSub stacks limits above and below a big operator or a
// wide brace. slant shifts the limits with the glyph's italic lean,
// baseShift keeps the operator centered on the math axis.
func assembleSupSub(base box.Box, supGroup, subGroup tex.Node, options Options,
	style Style, slant, baseShift float64) (box.Box, error) {

	baseSpan := box.MakeSpan(nil, []box.Box{base})
	subIsSingleCharacter := subGroup != nil && tex.IsCharacterBox(subGroup)
	fm := options.FontMetrics()

	var sup, sub box.Box
	var supKern, subKern float64
	if supGroup != nil {
		elem, err := buildGroup(supGroup, options.HavingStyle(style.Sup()), &options)
		if err != nil {
			return nil, err
		}
		sup = elem
		supKern = max(fm.BigOpSpacing1, fm.BigOpSpacing3-elem.Geometry().Depth)
	}
	if subGroup != nil {
		elem, err := buildGroup(subGroup, options.HavingStyle(style.Sub()), &options)
		if err != nil {
			return nil, err
		}
		sub = elem
		subKern = max(fm.BigOpSpacing2, fm.BigOpSpacing4-elem.Geometry().Height)
	}

	var finalGroup *box.Span
	switch {
	case sup != nil && sub != nil:
		bottom := fm.BigOpSpacing5 + sub.Geometry().Height + sub.Geometry().Depth +
			subKern + baseSpan.Depth + baseShift
		finalGroup = box.MakeVList(box.Bottom, bottom, []box.VListChild{
			box.VKern(fm.BigOpSpacing5),
			{VListElem: box.VListElem{Elem: sub, MarginLeft: box.Em(-slant)}},
			box.VKern(subKern),
			box.VElem(baseSpan),
			box.VKern(supKern),
			{VListElem: box.VListElem{Elem: sup, MarginLeft: box.Em(slant)}},
			box.VKern(fm.BigOpSpacing5),
		})
	case sub != nil:
		top := baseSpan.Height - baseShift
		finalGroup = box.MakeVList(box.Top, top, []box.VListChild{
			box.VKern(fm.BigOpSpacing5),
			{VListElem: box.VListElem{Elem: sub, MarginLeft: box.Em(-slant)}},
			box.VKern(subKern),
			box.VElem(baseSpan),
		})
	case sup != nil:
		bottom := baseSpan.Depth + baseShift
		finalGroup = box.MakeVList(box.Bottom, bottom, []box.VListChild{
			box.VElem(baseSpan),
			box.VKern(supKern),
			{VListElem: box.VListElem{Elem: sup, MarginLeft: box.Em(slant)}},
			box.VKern(fm.BigOpSpacing5),
		})
	default:
		return baseSpan, nil
	}

	parts := []box.Box{finalGroup}
	if sub != nil && slant != 0 && !subIsSingleCharacter {
		// The whole stack moved left with the slant; compensate so the
		// operator keeps its advance width.
		spacer := makeSpan([]string{"mspace"}, nil, options)
		spacer.Style.MarginRight = box.Em(slant)
		parts = append([]box.Box{spacer}, parts...)
	}
	return makeSpan([]string{"mop", "op-limits"}, parts, options), nil
}

// Operators that never grow to the display-size glyph.
var noSuccessor = map[string]bool{
	"\\smallint": true,
}

func htmlOp(n *tex.Op, options Options) (box.Box, error) {
	return opLayout(n, nil, options)
}

func htmlOpSupSub(base *tex.Op, supsub *tex.SupSub, options Options) (box.Box, error) {
	return opLayout(base, supsub, options)
}

func opLayout(group *tex.Op, supsub *tex.SupSub, options Options) (box.Box, error) {
	var supGroup, subGroup tex.Node
	hasLimits := false
	if supsub != nil {
		supGroup = supsub.Sup
		subGroup = supsub.Sub
		hasLimits = true
	}

	style := options.Style
	large := style.Size == DisplayStyle.Size && group.Symbol && !noSuccessor[group.Name]

	var base box.Box
	if group.Symbol {
		fontName := "Size1-Regular"
		sizeClass := "small-op"
		if large {
			fontName = "Size2-Regular"
			sizeClass = "large-op"
		}
		name := group.Name
		// The surface-integral glyphs have no font coverage; fall back
		// to the plain multiple-integral glyphs.
		switch name {
		case "\\oiint":
			name = "\\iint"
		case "\\oiiint":
			name = "\\iiint"
		}
		base = makeSymbol(name, fontName, sym.MathMode, options,
			[]string{"mop", "op-symbol", sizeClass})
	} else if len(group.Body) > 0 {
		inner, err := buildExpression(group.Body, options, groupReal, [2]string{})
		if err != nil {
			return nil, err
		}
		if len(inner) == 1 {
			if s, ok := inner[0].(*box.Symbol); ok {
				base = s
				s.Classes[0] = "mop"
			}
		}
		if base == nil {
			base = makeSpan([]string{"mop"}, inner, options)
		}
	} else {
		// A text operator renders its name, sans backslash, in roman.
		var output []box.Box
		for _, r := range group.Name[1:] {
			output = append(output, mathsym(string(r), group.Mode, options, nil))
		}
		base = makeSpan([]string{"mop"}, output, options)
	}

	var baseShift, slant float64
	if s, ok := base.(*box.Symbol); ok && !group.SuppressBaseShift {
		baseShift = (s.Height-s.Depth)/2 - options.FontMetrics().AxisHeight
		slant = s.Italic
	}

	if hasLimits {
		return assembleSupSub(base, supGroup, subGroup, options, style, slant, baseShift)
	}
	if baseShift != 0 {
		g := base.Geometry()
		g.Style.Position = "relative"
		g.Style.Top = box.Em(baseShift)
	}
	return base, nil
}

func htmlOperatorName(n *tex.OperatorName, options Options) (box.Box, error) {
	return operatorNameLayout(n, nil, options)
}

func htmlOperatorNameSupSub(base *tex.OperatorName, supsub *tex.SupSub, options Options) (box.Box, error) {
	return operatorNameLayout(base, supsub, options)
}

func operatorNameLayout(group *tex.OperatorName, supsub *tex.SupSub, options Options) (box.Box, error) {
	var base *box.Span
	if len(group.Body) > 0 {
		// Math-mode letters become upright text.
		body := make([]tex.Node, len(group.Body))
		for i, child := range group.Body {
			switch c := child.(type) {
			case *tex.MathOrd:
				body[i] = &tex.TextOrd{Info: c.Info, Text: c.Text}
			case *tex.Atom:
				body[i] = &tex.TextOrd{Info: c.Info, Text: c.Text}
			case *tex.OpToken:
				body[i] = &tex.TextOrd{Info: c.Info, Text: c.Text}
			default:
				body[i] = child
			}
		}
		expression, err := buildExpression(body, options.WithFont("mathrm"), groupReal, [2]string{})
		if err != nil {
			return nil, err
		}
		for _, child := range expression {
			if s, ok := child.(*box.Symbol); ok {
				// The minus and asterisk glyphs of the math fonts look
				// wrong in an upright operator name.
				s.Text = strings.Replace(s.Text, "−", "-", 1)
				s.Text = strings.Replace(s.Text, "∗", "*", 1)
			}
		}
		base = makeSpan([]string{"mop"}, expression, options)
	} else {
		base = makeSpan([]string{"mop"}, nil, options)
	}

	if supsub != nil {
		return assembleSupSub(base, supsub.Sup, supsub.Sub, options, options.Style, 0, 0)
	}
	return base, nil
}
