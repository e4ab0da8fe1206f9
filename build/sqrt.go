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

// htmlSqrt builds a radical: the radicand at cramped style, a surd
// stretched to cover it, and an optional index raised beside the surd.
func htmlSqrt(group *tex.Sqrt, options Options) (box.Box, error) {
	inner, err := buildGroup(group.Body, options.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	if inner.Geometry().Height == 0 {
		// An empty radicand still spans an x-height.
		inner.Geometry().Height = options.FontMetrics().XHeight
	}
	inner = wrapFragment(inner, options)

	fm := options.FontMetrics()
	theta := fm.DefaultRuleThickness
	phi := theta
	if options.Style.ID < TextStyle.ID {
		phi = fm.XHeight
	}

	lineClearance := theta + phi/4
	minDelimiterHeight := inner.Geometry().Height + inner.Geometry().Depth + lineClearance + theta

	img, advanceWidth, ruleWidth := sqrtImage(minDelimiterHeight, options)

	delimDepth := img.Height - ruleWidth
	if delimDepth > inner.Geometry().Height+inner.Geometry().Depth+lineClearance {
		lineClearance = (lineClearance + delimDepth - inner.Geometry().Height -
			inner.Geometry().Depth) / 2
	}

	imgShift := img.Height - inner.Geometry().Height - lineClearance - ruleWidth
	inner.Geometry().Style.PaddingLeft = box.Em(advanceWidth)

	body := box.MakeVList(box.FirstBaseline, 0, []box.VListChild{
		{VListElem: box.VListElem{Elem: inner, WrapperClasses: []string{"svg-align"}}},
		box.VKern(-(inner.Geometry().Height + imgShift)),
		box.VElem(img),
		box.VKern(ruleWidth),
	})

	if group.Index == nil {
		return makeSpan([]string{"mord", "sqrt"}, []box.Box{body}, options), nil
	}

	newOptions := options.HavingStyle(ScriptScriptStyle)
	rootm, err := buildGroup(group.Index, newOptions, &options)
	if err != nil {
		return nil, err
	}
	toShift := 0.6 * (body.Height - body.Depth)
	rootVList := box.MakeVList(box.Shift, -toShift, []box.VListChild{box.VElem(rootm)})
	rootVListWrap := box.MakeSpan([]string{"root"}, []box.Box{rootVList})
	return makeSpan([]string{"mord", "sqrt"}, []box.Box{rootVListWrap, body}, options), nil
}
