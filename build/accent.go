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
	"github.com/npillmayer/mathbox/tex"
)

// htmlAccent places an accent mark over its base, shifted along the
// base character's skew (TeXbook rule 12).
func htmlAccent(group *tex.Accent, options Options) (box.Box, error) {
	return accentLayout(group, options)
}

// htmlAccentSupSub renders an accented character carrying scripts: the
// scripts attach to the bare base so the accent does not push them up,
// then the accent replaces the base inside the finished scripts span.
func htmlAccentSupSub(accent *tex.Accent, n *tex.SupSub, options Options) (box.Box, error) {
	ssBox, err := scriptsLayout(n, accent.Base, options)
	if err != nil {
		return nil, err
	}
	supSubGroup := ssBox.(*box.Span)
	accentWrap, err := accentLayout(accent, options)
	if err != nil {
		return nil, err
	}
	supSubGroup.Children[0] = accentWrap
	supSubGroup.Height = max(accentWrap.Geometry().Height, supSubGroup.Height)
	supSubGroup.Classes[0] = "mord"
	return supSubGroup, nil
}

func accentLayout(group *tex.Accent, options Options) (box.Box, error) {
	body, err := buildGroup(group.Base, options.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}

	mustShift := group.IsShifty && tex.IsCharacterBox(group.Base)
	var skew float64
	if mustShift {
		baseChar := getBaseElem(group.Base)
		baseGroup, err := buildGroup(baseChar, options.HavingCrampedStyle(), nil)
		if err != nil {
			return nil, err
		}
		if s, ok := baseGroup.(*box.Symbol); ok {
			skew = s.Skew
		}
	}
	accentBelow := group.Label == "\\c"

	clearance := min(body.Geometry().Height, options.FontMetrics().XHeight)
	if accentBelow {
		clearance = body.Geometry().Height + body.Geometry().Depth
	}

	var accentBody box.Box
	if !group.IsStretchy {
		var accent box.Box
		var width float64
		if group.Label == "\\vec" {
			accent = StaticSvg("vec", options)
			width = staticSvgSizes["vec"][0]
		} else {
			sym := makeOrd(group.Label, group.Mode, options, []string{"mord"}, false)
			if s, ok := sym.(*box.Symbol); ok {
				// Accent glyphs report a spurious italic correction.
				s.Italic = 0
				width = s.Width
				if accentBelow {
					clearance += s.Depth
				}
			}
			accent = sym
		}

		accentSpan := box.MakeSpan([]string{"accent-body"}, []box.Box{accent})
		accentFull := group.Label == "\\textcircled"
		if accentFull {
			accentSpan.Classes = append(accentSpan.Classes, "accent-full")
			clearance = body.Geometry().Height
		}
		left := skew
		if !accentFull {
			left -= width / 2
		}
		accentSpan.Style.Left = box.Em(left)
		if accentFull {
			accentSpan.Style.Top = ".2em"
		}

		accentBody = box.MakeVList(box.FirstBaseline, 0, []box.VListChild{
			box.VElem(body),
			box.VKern(-clearance),
			box.VElem(accentSpan),
		})
	} else {
		stretched := stretchySvgSpan(group.Label, group.Base, options)
		child := box.VListChild{VListElem: box.VListElem{
			Elem:           stretched,
			WrapperClasses: []string{"svg-align"},
		}}
		if skew > 0 {
			// Narrow the accent so it centers over the shifted glyph.
			child.WrapperStyle.Width = "calc(100% - " + box.Em(2*skew) + ")"
			child.WrapperStyle.MarginLeft = box.Em(2 * skew)
		}
		accentBody = box.MakeVList(box.FirstBaseline, 0, []box.VListChild{
			box.VElem(body),
			child,
		})
	}

	return makeSpan([]string{"mord", "accent"}, []box.Box{accentBody}, options), nil
}

func htmlAccentUnder(group *tex.AccentUnder, options Options) (box.Box, error) {
	innerGroup, err := buildGroup(group.Base, options, nil)
	if err != nil {
		return nil, err
	}
	accentBody := stretchySvgSpan(group.Label, group.Base, options)
	kern := 0.0
	if group.Label == "\\utilde" {
		kern = 0.12
	}
	vlist := box.MakeVList(box.Top, innerGroup.Geometry().Height, []box.VListChild{
		{VListElem: box.VListElem{Elem: accentBody, WrapperClasses: []string{"svg-align"}}},
		box.VKern(kern),
		box.VElem(innerGroup),
	})
	return makeSpan([]string{"mord", "accentunder"}, []box.Box{vlist}, options), nil
}

// --- Rules over and under --------------------------------------------

func htmlOverline(group *tex.Overline, options Options) (box.Box, error) {
	innerGroup, err := buildGroup(group.Body, options.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	line := makeLineSpan("overline-line", options, 0)
	ruleThickness := options.FontMetrics().DefaultRuleThickness
	vlist := box.MakeVList(box.FirstBaseline, 0, []box.VListChild{
		box.VElem(innerGroup),
		box.VKern(3 * ruleThickness),
		box.VElem(line),
		box.VKern(ruleThickness),
	})
	return makeSpan([]string{"mord", "overline"}, []box.Box{vlist}, options), nil
}

func htmlUnderline(group *tex.Underline, options Options) (box.Box, error) {
	innerGroup, err := buildGroup(group.Body, options, nil)
	if err != nil {
		return nil, err
	}
	line := makeLineSpan("underline-line", options, 0)
	ruleThickness := options.FontMetrics().DefaultRuleThickness
	vlist := box.MakeVList(box.Top, innerGroup.Geometry().Height, []box.VListChild{
		box.VKern(ruleThickness),
		box.VElem(line),
		box.VKern(3 * ruleThickness),
		box.VElem(innerGroup),
	})
	return makeSpan([]string{"mord", "underline"}, []box.Box{vlist}, options), nil
}

// --- Horizontal braces ------------------------------------------------

// htmlHorizBrace stacks a stretchy brace over or under its base; when
// the enclosing scripts node delegated here, the script goes outside
// the brace.
func htmlHorizBrace(group *tex.HorizBrace, options Options, supsub *tex.SupSub) (box.Box, error) {
	style := options.Style
	var supSubGroup box.Box
	if supsub != nil {
		var err error
		if supsub.Sup != nil {
			supSubGroup, err = buildGroup(supsub.Sup, options.HavingStyle(style.Sup()), &options)
		} else {
			supSubGroup, err = buildGroup(supsub.Sub, options.HavingStyle(style.Sub()), &options)
		}
		if err != nil {
			return nil, err
		}
	}

	body, err := buildGroup(group.Base, options.HavingBaseStyle(DisplayStyle), nil)
	if err != nil {
		return nil, err
	}
	braceBody := stretchySvgSpan(group.Label, group.Base, options)

	var vlist *box.Span
	if group.IsOver {
		vlist = box.MakeVList(box.FirstBaseline, 0, []box.VListChild{
			box.VElem(body),
			box.VKern(0.1),
			{VListElem: box.VListElem{Elem: braceBody, WrapperClasses: []string{"svg-align"}}},
		})
	} else {
		vlist = box.MakeVList(box.Bottom,
			body.Geometry().Depth+0.1+braceBody.Height,
			[]box.VListChild{
				{VListElem: box.VListElem{Elem: braceBody, WrapperClasses: []string{"svg-align"}}},
				box.VKern(0.1),
				box.VElem(body),
			})
	}

	overUnder := "munder"
	if group.IsOver {
		overUnder = "mover"
	}
	if supSubGroup != nil {
		vSpan := makeSpan([]string{"mord", overUnder}, []box.Box{vlist}, options)
		if group.IsOver {
			vlist = box.MakeVList(box.FirstBaseline, 0, []box.VListChild{
				box.VElem(vSpan),
				box.VKern(0.2),
				box.VElem(supSubGroup),
			})
		} else {
			vlist = box.MakeVList(box.Bottom,
				vSpan.Depth+0.2+supSubGroup.Geometry().Height+supSubGroup.Geometry().Depth,
				[]box.VListChild{
					box.VElem(supSubGroup),
					box.VKern(0.2),
					box.VElem(vSpan),
				})
		}
	}
	return makeSpan([]string{"mord", overUnder}, []box.Box{vlist}, options), nil
}

// --- Extensible arrows ------------------------------------------------

// htmlXArrow stretches an arrow under its label, both centered on the
// math axis.
func htmlXArrow(group *tex.XArrow, options Options) (box.Box, error) {
	style := options.Style
	newOptions := options.HavingStyle(style.Sup())
	upper, err := buildGroup(group.Body, newOptions, &options)
	if err != nil {
		return nil, err
	}
	upperGroup := wrapFragment(upper, options)
	upperGroup.Geometry().Classes = append(upperGroup.Geometry().Classes, "x-arrow-pad")

	var lowerGroup box.Box
	if group.Below != nil {
		newOptions = options.HavingStyle(style.Sub())
		lower, err := buildGroup(group.Below, newOptions, &options)
		if err != nil {
			return nil, err
		}
		lowerGroup = wrapFragment(lower, options)
		lowerGroup.Geometry().Classes = append(lowerGroup.Geometry().Classes, "x-arrow-pad")
	}

	arrowBody := stretchySvgSpan(group.Label, group.Body, options)

	axisHeight := options.FontMetrics().AxisHeight
	arrowShift := -axisHeight + 0.5*arrowBody.Height
	// The label clears the arrow by two mu.
	upperShift := -axisHeight - 0.5*arrowBody.Height - 0.111
	if upperGroup.Geometry().Depth > 0.25 {
		upperShift -= upperGroup.Geometry().Depth
	}

	children := []box.VListChild{
		box.VShiftedElem(upperGroup, upperShift),
		{VListElem: box.VListElem{Elem: arrowBody, Shift: arrowShift,
			WrapperClasses: []string{"svg-align"}}},
	}
	if lowerGroup != nil {
		lowerShift := -axisHeight + lowerGroup.Geometry().Height + 0.5*arrowBody.Height + 0.111
		children = append(children, box.VShiftedElem(lowerGroup, lowerShift))
	}
	vlist := box.MakeVList(box.IndividualShift, 0, children)
	return makeSpan([]string{"mrel", "x-arrow"}, []box.Box{vlist}, options), nil
}

// --- Enclosing notations ----------------------------------------------

// htmlEnclose draws a notation around its body: strike-outs, cancel
// lines, or a framed and possibly colored box.
func htmlEnclose(group *tex.Enclose, options Options) (box.Box, error) {
	innerBox, err := buildGroup(group.Body, options, nil)
	if err != nil {
		return nil, err
	}
	inner := wrapFragment(innerBox, options)
	label := strings.TrimPrefix(group.Label, "\\")
	scale := options.SizeMultiplier
	var img *box.Span
	imgShift := 0.0
	isSingleChar := tex.IsCharacterBox(group.Body)

	if label == "sout" {
		img = box.MakeSpan([]string{"stretchy", "sout"}, nil)
		img.Height = options.FontMetrics().DefaultRuleThickness / scale
		imgShift = -0.5 * options.FontMetrics().XHeight
	} else {
		ig := inner.Geometry()
		if strings.Contains(label, "cancel") {
			if !isSingleChar {
				ig.Classes = append(ig.Classes, "cancel-pad")
			}
		} else if label == "angl" {
			ig.Classes = append(ig.Classes, "anglpad")
		} else {
			ig.Classes = append(ig.Classes, "boxpad")
		}

		var topPad, bottomPad, ruleThickness float64
		switch {
		case strings.Contains(label, "box"):
			ruleThickness = max(options.FontMetrics().FBoxRule, options.MinRuleThickness)
			topPad = options.FontMetrics().FBoxSep
			if label != "colorbox" {
				topPad += ruleThickness
			}
			bottomPad = topPad
		case label == "angl":
			ruleThickness = max(options.FontMetrics().DefaultRuleThickness, options.MinRuleThickness)
			topPad = 4 * ruleThickness
			bottomPad = max(0, 0.25-ig.Depth)
		default:
			if isSingleChar {
				topPad = 0.2
			}
			bottomPad = topPad
		}

		img = encloseSpan(inner, label, topPad, bottomPad, options)
		switch {
		case label == "fbox" || label == "boxed" || label == "fcolorbox":
			img.Style.BorderStyle = "solid"
			img.Style.BorderWidth = box.Em(ruleThickness)
		case label == "angl" && ruleThickness != 0.049:
			img.Style.BorderTopWidth = box.Em(ruleThickness)
			img.Style.BorderRightWidth = box.Em(ruleThickness)
		}
		imgShift = ig.Depth + bottomPad

		if group.BackgroundColor != "" {
			img.Style.BackgroundColor = group.BackgroundColor
			if group.BorderColor != "" {
				img.Style.BorderColor = group.BorderColor
			}
		}
	}

	var vlist *box.Span
	if group.BackgroundColor != "" {
		// The colored box paints behind the content.
		vlist = box.MakeVList(box.IndividualShift, 0, []box.VListChild{
			box.VShiftedElem(img, imgShift),
			box.VShiftedElem(inner, 0),
		})
	} else {
		var wrapperClasses []string
		if strings.Contains(label, "cancel") {
			wrapperClasses = []string{"svg-align"}
		}
		vlist = box.MakeVList(box.IndividualShift, 0, []box.VListChild{
			box.VShiftedElem(inner, 0),
			{VListElem: box.VListElem{Elem: img, Shift: imgShift,
				WrapperClasses: wrapperClasses}},
		})
	}

	if strings.Contains(label, "cancel") {
		// Cancel lines do not add to the expression's extent.
		vlist.Height = inner.Geometry().Height
		vlist.Depth = inner.Geometry().Depth
		if !isSingleChar {
			return makeSpan([]string{"mord", "cancel-lap"}, []box.Box{vlist}, options), nil
		}
	}
	return makeSpan([]string{"mord"}, []box.Box{vlist}, options), nil
}
