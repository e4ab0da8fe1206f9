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

// arrayRow is one laid-out row: its cells and the vertical extent the
// row occupies, measured with the array strut applied.
type arrayRow struct {
	cells  []box.Box
	height float64
	depth  float64
	pos    float64 // baseline position from the top of the table
}

// hlinePos is a horizontal rule between rows, positioned from the top
// of the table.
type hlinePos struct {
	pos      float64
	isDashed bool
}

// htmlArray lays out an array-like environment: rows strutted to the
// array stretch, columns as shifted vertical lists, separators and
// rules between them.
func htmlArray(group *tex.ArrayNode, options Options) (box.Box, error) {
	fm := options.FontMetrics()
	pt := 1 / fm.PtPerEm

	// Default gap between columns, \arraycolsep. A small matrix uses a
	// thick space measured at script size instead.
	arraycolsep := 5 * pt
	if group.ColSeparationType == tex.ColSepSmall {
		localMultiplier := options.HavingStyle(ScriptStyle).SizeMultiplier
		arraycolsep = 0.2778 * (localMultiplier / options.SizeMultiplier)
	}

	baselineskip := 12 * pt
	jot := 3 * pt
	arrayskip := group.ArrayStretch * baselineskip
	arstrutHeight := 0.7 * arrayskip
	arstrutDepth := 0.3 * arrayskip

	var totalHeight float64
	var hlines []hlinePos
	setHLinePos := func(gap []bool) {
		for i, dashed := range gap {
			if i > 0 {
				totalHeight += 0.25
			}
			hlines = append(hlines, hlinePos{pos: totalHeight, isDashed: dashed})
		}
	}

	if len(group.HLinesBeforeRow) > 0 {
		setHLinePos(group.HLinesBeforeRow[0])
	}

	nc := 0
	body := make([]arrayRow, len(group.Body))
	for r, inrow := range group.Body {
		height := arstrutHeight
		depth := arstrutDepth
		if len(inrow) > nc {
			nc = len(inrow)
		}
		cells := make([]box.Box, len(inrow))
		for c, cell := range inrow {
			boxes, err := buildExpression([]tex.Node{cell}, options, groupReal, [2]string{})
			if err != nil {
				return nil, err
			}
			elem := makeSpan([]string{"mord"}, boxes, options)
			if elem.Depth > depth {
				depth = elem.Depth
			}
			if elem.Height > height {
				height = elem.Height
			}
			cells[c] = elem
		}
		var gap float64
		if r < len(group.RowGaps) && group.RowGaps[r] != nil {
			gap = CalculateSize(*group.RowGaps[r], options)
			if gap > 0 {
				gap += arstrutDepth
				if depth < gap {
					depth = gap
				}
				gap = 0
			}
		}
		if group.AddJot {
			depth += jot
		}
		row := arrayRow{cells: cells, height: height, depth: depth}
		totalHeight += height
		row.pos = totalHeight
		totalHeight += depth + gap
		body[r] = row
		if r+1 < len(group.HLinesBeforeRow) {
			setHLinePos(group.HLinesBeforeRow[r+1])
		}
	}

	offset := totalHeight/2 + fm.AxisHeight
	ruleThickness := max(fm.ArrayRuleWidth, options.MinRuleThickness)

	// Tag column for numbered environments.
	var tagSpans []box.VListChild
	hasTags := false
	for _, tag := range group.Tags {
		if tag != nil {
			hasTags = true
			break
		}
	}
	if hasTags {
		for r, tag := range group.Tags {
			var tagSpan *box.Span
			if tag == nil {
				tagSpan = makeSpan(nil, nil, options)
			} else {
				tagNodes := []tex.Node{tag}
				if og, ok := tag.(*tex.OrdGroup); ok {
					tagNodes = og.Body
				}
				boxes, err := buildExpression(tagNodes, options, groupReal, [2]string{})
				if err != nil {
					return nil, err
				}
				tagSpan = makeSpan(nil, boxes, options)
			}
			tagSpan.Height = body[r].height
			tagSpan.Depth = body[r].depth
			tagSpans = append(tagSpans, box.VShiftedElem(tagSpan, body[r].pos-offset))
		}
	}

	var cols []box.Box
	colDescrNum := 0
	for c := 0; c < nc || colDescrNum < len(group.Cols); c, colDescrNum = c+1, colDescrNum+1 {
		var colDescr tex.AlignSpec
		colDescr.Pregap = -1
		colDescr.Postgap = -1
		if colDescrNum < len(group.Cols) {
			colDescr = group.Cols[colDescrNum]
		}
		firstSeparator := true
		for colDescr.Separator != "" {
			if !firstSeparator {
				// Consecutive rules keep \doublerulesep between them.
				colSep := box.MakeSpan([]string{"arraycolsep"}, nil)
				colSep.Style.Width = box.Em(fm.DoubleRuleSep)
				cols = append(cols, colSep)
			}
			lineType := "solid"
			if colDescr.Separator == ":" {
				lineType = "dashed"
			} else if colDescr.Separator != "|" {
				return nil, tex.NewParseError(
					"invalid separator type: "+colDescr.Separator, group.Span)
			}
			separator := makeSpan([]string{"vertical-separator"}, nil, options)
			separator.Style.Height = box.Em(totalHeight)
			separator.Style.BorderRightWidth = box.Em(ruleThickness)
			separator.Style.BorderRightStyle = lineType
			separator.Style.MarginLeft = box.Em(-ruleThickness / 2)
			separator.Style.MarginRight = box.Em(-ruleThickness / 2)
			if shift := totalHeight - offset; shift != 0 {
				separator.Style.VerticalAlign = box.Em(-shift)
			}
			cols = append(cols, separator)

			colDescrNum++
			colDescr = tex.AlignSpec{Pregap: -1, Postgap: -1}
			if colDescrNum < len(group.Cols) {
				colDescr = group.Cols[colDescrNum]
			}
			firstSeparator = false
		}
		if c >= nc {
			continue
		}

		if c > 0 || group.HSkipBeforeAndAfter {
			sepwidth := colDescr.Pregap
			if sepwidth < 0 {
				sepwidth = arraycolsep
			}
			if sepwidth != 0 {
				colSep := box.MakeSpan([]string{"arraycolsep"}, nil)
				colSep.Style.Width = box.Em(sepwidth)
				cols = append(cols, colSep)
			}
		}

		var colChildren []box.VListChild
		for r := range body {
			row := &body[r]
			if c >= len(row.cells) {
				continue
			}
			elem := row.cells[c]
			elem.Geometry().Height = row.height
			elem.Geometry().Depth = row.depth
			colChildren = append(colChildren, box.VShiftedElem(elem, row.pos-offset))
		}
		colList := box.MakeVList(box.IndividualShift, 0, colChildren)
		align := colDescr.Align
		if align == "" {
			align = "c"
		}
		cols = append(cols, box.MakeSpan([]string{"col-align-" + align}, []box.Box{colList}))

		if c < nc-1 || group.HSkipBeforeAndAfter {
			sepwidth := colDescr.Postgap
			if sepwidth < 0 {
				sepwidth = arraycolsep
			}
			if sepwidth != 0 {
				colSep := box.MakeSpan([]string{"arraycolsep"}, nil)
				colSep.Style.Width = box.Em(sepwidth)
				cols = append(cols, colSep)
			}
		}
	}

	var table box.Box = box.MakeSpan([]string{"mtable"}, cols)

	if len(hlines) > 0 {
		line := makeLineSpan("hline", options, ruleThickness)
		dashes := makeLineSpan("hdashline", options, ruleThickness)
		elems := []box.VListChild{box.VShiftedElem(table, 0)}
		for i := len(hlines) - 1; i >= 0; i-- {
			hline := hlines[i]
			if hline.isDashed {
				elems = append(elems, box.VShiftedElem(dashes, hline.pos-offset))
			} else {
				elems = append(elems, box.VShiftedElem(line, hline.pos-offset))
			}
		}
		table = box.MakeVList(box.IndividualShift, 0, elems)
	}

	if !hasTags {
		return makeSpan([]string{"mord"}, []box.Box{table}, options), nil
	}
	eqnNumCol := box.MakeVList(box.IndividualShift, 0, tagSpans)
	tagCol := makeSpan([]string{"tag"}, []box.Box{eqnNumCol}, options)
	return box.MakeFragment([]box.Box{
		makeSpan([]string{"mord"}, []box.Box{table}, options),
		tagCol,
	}), nil
}
