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

// htmlSupSub attaches scripts to a base. Bases that place their own
// scripts (operators with limits, accents on character boxes, braces)
// get the whole node delegated to their builder.
func htmlSupSub(n *tex.SupSub, options Options) (box.Box, error) {
	switch base := n.Base.(type) {
	case *tex.OpToken:
		op := &tex.Op{Info: base.Info, Limits: true, Symbol: true, Name: base.Text}
		if options.Style.Size == DisplayStyle.Size {
			return htmlOpSupSub(op, n, options)
		}
		return scriptsLayout(n, op, options)
	case *tex.Op:
		if base.Limits && (options.Style.Size == DisplayStyle.Size || base.AlwaysHandleSupSub) {
			return htmlOpSupSub(base, n, options)
		}
	case *tex.OperatorName:
		if base.AlwaysHandleSupSub && (options.Style.Size == DisplayStyle.Size || base.Limits) {
			return htmlOperatorNameSupSub(base, n, options)
		}
	case *tex.Accent:
		if tex.IsCharacterBox(base.Base) {
			return htmlAccentSupSub(base, n, options)
		}
	case *tex.HorizBrace:
		if (n.Sub == nil) == base.IsOver {
			return htmlHorizBrace(base, options, n)
		}
	}
	return scriptsLayout(n, n.Base, options)
}

// scriptsLayout places superscript and subscript beside the base,
// following the TeXbook's attachment rules.
func scriptsLayout(n *tex.SupSub, baseNode tex.Node, options Options) (box.Box, error) {
	base, err := buildGroup(baseNode, options, nil)
	if err != nil {
		return nil, err
	}
	fm := options.FontMetrics()
	var supm, subm box.Box
	var supShift, subShift float64
	characterBase := baseNode != nil && tex.IsCharacterBox(baseNode)

	if n.Sup != nil {
		newOptions := options.HavingStyle(options.Style.Sup())
		supm, err = buildGroup(n.Sup, newOptions, &options)
		if err != nil {
			return nil, err
		}
		if !characterBase {
			supShift = base.Geometry().Height -
				newOptions.FontMetrics().SupDrop*newOptions.SizeMultiplier/options.SizeMultiplier
		}
	}
	if n.Sub != nil {
		newOptions := options.HavingStyle(options.Style.Sub())
		subm, err = buildGroup(n.Sub, newOptions, &options)
		if err != nil {
			return nil, err
		}
		if !characterBase {
			subShift = base.Geometry().Depth +
				newOptions.FontMetrics().SubDrop*newOptions.SizeMultiplier/options.SizeMultiplier
		}
	}

	var minSupShift float64
	switch {
	case options.Style.ID == DisplayStyle.ID:
		minSupShift = fm.Sup1
	case options.Style.Cramped:
		minSupShift = fm.Sup3
	default:
		minSupShift = fm.Sup2
	}

	// Scripts stand off the base by half a point in all sizes.
	marginRight := box.Em(0.5 / fm.PtPerEm / options.SizeMultiplier)
	marginLeft := ""
	if subm != nil {
		if s, ok := base.(*box.Symbol); ok {
			// The subscript tucks under the italic overhang.
			marginLeft = box.Em(-s.Italic)
		}
	}

	var supsub *box.Span
	switch {
	case supm != nil && subm != nil:
		supShift = max(supShift, max(minSupShift, supm.Geometry().Depth+0.25*fm.XHeight))
		subShift = max(subShift, fm.Sub2)
		ruleWidth := fm.DefaultRuleThickness
		maxWidth := 4 * ruleWidth
		if (supShift-supm.Geometry().Depth)-(subm.Geometry().Height-subShift) < maxWidth {
			subShift = maxWidth - (supShift - supm.Geometry().Depth) + subm.Geometry().Height
			psi := 0.8*fm.XHeight - (supShift - supm.Geometry().Depth)
			if psi > 0 {
				supShift += psi
				subShift -= psi
			}
		}
		children := []box.VListChild{
			{VListElem: box.VListElem{Elem: subm, Shift: subShift,
				MarginRight: marginRight, MarginLeft: marginLeft}},
			{VListElem: box.VListElem{Elem: supm, Shift: -supShift, MarginRight: marginRight}},
		}
		supsub = box.MakeVList(box.IndividualShift, 0, children)
	case subm != nil:
		subShift = max(subShift, max(fm.Sub1, subm.Geometry().Height-0.8*fm.XHeight))
		children := []box.VListChild{
			{VListElem: box.VListElem{Elem: subm, MarginRight: marginRight, MarginLeft: marginLeft}},
		}
		supsub = box.MakeVList(box.Shift, subShift, children)
	case supm != nil:
		supShift = max(supShift, max(minSupShift, supm.Geometry().Depth+0.25*fm.XHeight))
		children := []box.VListChild{
			{VListElem: box.VListElem{Elem: supm, MarginRight: marginRight}},
		}
		supsub = box.MakeVList(box.Shift, -supShift, children)
	default:
		return nil, tex.NewParseError("scripts node without scripts", n.Span)
	}

	mclass := getTypeOfDomTree(base, "right")
	if mclass == "" {
		mclass = "mord"
	}
	scripts := box.MakeSpan([]string{"msupsub"}, []box.Box{supsub})
	return makeSpan([]string{mclass}, []box.Box{base, scripts}, options), nil
}
