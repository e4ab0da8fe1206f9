package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/mathbox/box"
	"github.com/npillmayer/mathbox/tex"
)

// fracStyle resolves the layout style a generalized fraction uses: the
// explicit \genfrac style if one was given, the surrounding style
// otherwise, with \tfrac in display style dropping to text style.
func fracStyle(group *tex.GenFrac, options Options) Style {
	style := options.Style
	switch group.Size {
	case "display":
		style = DisplayStyle
	case "text":
		if style.Size == DisplayStyle.Size {
			style = TextStyle
		}
	case "script":
		style = ScriptStyle
	case "scriptscript":
		style = ScriptScriptStyle
	}
	return style
}

// htmlGenFrac lays out a fraction following the TeXbook's rules 15a
// through 15e: shift numerator and denominator apart until the required
// clearance holds, center the bar on the math axis, and surround the
// result with delimiters sized for the style.
func htmlGenFrac(group *tex.GenFrac, options Options) (box.Box, error) {
	style := fracStyle(group, options)
	nstyle := style.FracNum()
	dstyle := style.FracDen()
	fm := options.FontMetrics()

	numOptions := options.HavingStyle(nstyle)
	numerm, err := buildGroup(group.Numer, numOptions, &options)
	if err != nil {
		return nil, err
	}
	if group.ContinuedFrac {
		// \cfrac struts every numerator to a uniform extent.
		hStrut := 8.5 / fm.PtPerEm
		dStrut := 3.5 / fm.PtPerEm
		ng := numerm.Geometry()
		if ng.Height < hStrut {
			ng.Height = hStrut
		}
		if ng.Depth < dStrut {
			ng.Depth = dStrut
		}
	}

	denOptions := options.HavingStyle(dstyle)
	denomm, err := buildGroup(group.Denom, denOptions, &options)
	if err != nil {
		return nil, err
	}

	var rule *box.Span
	var ruleWidth, ruleSpacing float64
	if group.HasBarLine {
		if group.BarSize != nil {
			ruleWidth = CalculateSize(*group.BarSize, options)
			rule = makeLineSpan("frac-line", options, ruleWidth)
		} else {
			rule = makeLineSpan("frac-line", options, 0)
		}
		ruleWidth = rule.Height
		ruleSpacing = rule.Height
	} else {
		ruleSpacing = fm.DefaultRuleThickness
	}

	var numShift, clearance, denomShift float64
	if style.Size == DisplayStyle.Size || group.Size == "display" {
		numShift = fm.Num1
		if ruleWidth > 0 {
			clearance = 3 * ruleSpacing
		} else {
			clearance = 7 * ruleSpacing
		}
		denomShift = fm.Denom1
	} else {
		if ruleWidth > 0 {
			numShift = fm.Num2
			clearance = ruleSpacing
		} else {
			numShift = fm.Num3
			clearance = 3 * ruleSpacing
		}
		denomShift = fm.Denom2
	}

	var frac *box.Span
	if rule == nil {
		candidateClearance := (numShift - numerm.Geometry().Depth) -
			(denomm.Geometry().Height - denomShift)
		if candidateClearance < clearance {
			numShift += 0.5 * (clearance - candidateClearance)
			denomShift += 0.5 * (clearance - candidateClearance)
		}
		frac = box.MakeVList(box.IndividualShift, 0, []box.VListChild{
			box.VShiftedElem(denomm, denomShift),
			box.VShiftedElem(numerm, -numShift),
		})
	} else {
		axisHeight := fm.AxisHeight
		if (numShift-numerm.Geometry().Depth)-(axisHeight+0.5*ruleWidth) < clearance {
			numShift += clearance - ((numShift - numerm.Geometry().Depth) -
				(axisHeight + 0.5*ruleWidth))
		}
		if (axisHeight-0.5*ruleWidth)-(denomm.Geometry().Height-denomShift) < clearance {
			denomShift += clearance - ((axisHeight - 0.5*ruleWidth) -
				(denomm.Geometry().Height - denomShift))
		}
		midShift := -(axisHeight - 0.5*ruleWidth)
		frac = box.MakeVList(box.IndividualShift, 0, []box.VListChild{
			box.VShiftedElem(denomm, denomShift),
			box.VShiftedElem(rule, midShift),
			box.VShiftedElem(numerm, -numShift),
		})
	}

	// \dfrac and \tfrac change the style by hand; rescale accordingly.
	newOptions := options.HavingStyle(style)
	frac.Height *= newOptions.SizeMultiplier / options.SizeMultiplier
	frac.Depth *= newOptions.SizeMultiplier / options.SizeMultiplier

	var delimSize float64
	switch {
	case style.Size == DisplayStyle.Size:
		delimSize = fm.Delim1
	case style.Size == ScriptScriptStyle.Size:
		delimSize = options.HavingStyle(ScriptStyle).FontMetrics().Delim2
	default:
		delimSize = fm.Delim2
	}

	var leftDelim, rightDelim box.Box
	if group.LeftDelim == "" {
		leftDelim = makeNullDelimiter(options, []string{"mopen"})
	} else {
		leftDelim = makeCustomSizedDelim(group.LeftDelim, delimSize, true,
			options.HavingStyle(style), group.Mode, []string{"mopen"})
	}
	if group.ContinuedFrac {
		rightDelim = box.MakeSpan(nil, nil)
	} else if group.RightDelim == "" {
		rightDelim = makeNullDelimiter(options, []string{"mclose"})
	} else {
		rightDelim = makeCustomSizedDelim(group.RightDelim, delimSize, true,
			options.HavingStyle(style), group.Mode, []string{"mclose"})
	}

	classes := append([]string{"mord"}, newOptions.SizingClasses(options)...)
	return makeSpan(classes,
		[]box.Box{leftDelim, makeSpan([]string{"mfrac"}, []box.Box{frac}, options), rightDelim},
		options), nil
}
