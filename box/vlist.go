package box

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// VListPosition selects how the children of a vertical list are
// anchored against the baseline.
type VListPosition int

const (
	// IndividualShift positions every element by its own Shift.
	IndividualShift VListPosition = iota
	// Top aligns so the list's top sits at PositionData above baseline.
	Top
	// Bottom aligns so the list's bottom sits PositionData below.
	Bottom
	// Shift moves the first element down by PositionData; the rest
	// stack above it.
	Shift
	// FirstBaseline keeps the first element on the baseline.
	FirstBaseline
)

// VListElem is one stacked element with its layout adjustments.
type VListElem struct {
	Elem           Box
	Shift          float64 // only with IndividualShift
	MarginLeft     string
	MarginRight    string
	WrapperClasses []string
	WrapperStyle   CSS
}

// VListChild is either an element or, when Elem is nil, a kern of Size.
type VListChild struct {
	VListElem
	Size float64
}

// VKern builds a kern child.
func VKern(size float64) VListChild {
	return VListChild{Size: size}
}

// VElem builds an element child.
func VElem(elem Box) VListChild {
	return VListChild{VListElem: VListElem{Elem: elem}}
}

// VShiftedElem builds an element child with an individual shift.
func VShiftedElem(elem Box, shift float64) VListChild {
	return VListChild{VListElem: VListElem{Elem: elem, Shift: shift}}
}

// vlistDepth computes the depth of the finished list and, for
// IndividualShift, rewrites the children with kerns realizing the
// shifts.
func vlistDepth(pos VListPosition, positionData float64, children []VListChild) (float64, []VListChild) {
	if pos == IndividualShift {
		oldChildren := children
		children = []VListChild{oldChildren[0]}
		depth := -oldChildren[0].Shift - oldChildren[0].Elem.Geometry().Depth
		currPos := depth
		for i := 1; i < len(oldChildren); i++ {
			prev := oldChildren[i-1].Elem.Geometry()
			cur := oldChildren[i]
			diff := -cur.Shift - currPos - cur.Elem.Geometry().Depth
			size := diff - (prev.Height + prev.Depth)
			currPos = currPos + diff
			children = append(children, VKern(size), cur)
		}
		return depth, children
	}
	switch pos {
	case Top:
		bottom := positionData
		for _, child := range children {
			if child.Elem == nil {
				bottom -= child.Size
			} else {
				g := child.Elem.Geometry()
				bottom -= g.Height + g.Depth
			}
		}
		return bottom, children
	case Bottom:
		return -positionData, children
	case Shift:
		return -children[0].Elem.Geometry().Depth - positionData, children
	case FirstBaseline:
		return -children[0].Elem.Geometry().Depth, children
	}
	return 0, children
}

// MakeVList stacks children vertically. Each element is wrapped with an
// invisible "pstrut" that pins its baseline, and the whole list is
// assembled into the vlist-t table structure the stylesheet lays out.
func MakeVList(pos VListPosition, positionData float64, children []VListChild) *Span {
	depth, children := vlistDepth(pos, positionData, children)

	// The strut must be tall enough for any child; 2em of slack keeps
	// oversized glyphs from poking out.
	pstrutSize := 0.0
	for _, child := range children {
		if child.Elem == nil {
			continue
		}
		g := child.Elem.Geometry()
		if g.MaxFontSize > pstrutSize {
			pstrutSize = g.MaxFontSize
		}
		if g.Height > pstrutSize {
			pstrutSize = g.Height
		}
	}
	pstrutSize += 2

	var realChildren []Box
	minPos, maxPos, currPos := depth, depth, depth
	for _, child := range children {
		if child.Elem == nil {
			currPos += child.Size
		} else {
			g := child.Elem.Geometry()
			pstrut := MakeSpan([]string{"pstrut"}, nil)
			pstrut.Style.Height = Em(pstrutSize)
			wrap := MakeSpan(child.WrapperClasses, []Box{pstrut, child.Elem})
			wrap.Style = child.WrapperStyle
			wrap.Style.Top = Em(-pstrutSize - currPos - g.Depth)
			if child.MarginLeft != "" {
				wrap.Style.MarginLeft = child.MarginLeft
			}
			if child.MarginRight != "" {
				wrap.Style.MarginRight = child.MarginRight
			}
			realChildren = append(realChildren, wrap)
			currPos += g.Height + g.Depth
		}
		if currPos < minPos {
			minPos = currPos
		}
		if currPos > maxPos {
			maxPos = currPos
		}
	}

	vlist := MakeSpan([]string{"vlist"}, realChildren)
	vlist.Style.Height = Em(maxPos)

	var rows []Box
	if minPos < 0 {
		// A depth table row keeps the part below the baseline from
		// collapsing; the zero-width space gives the top row a
		// baseline to size against.
		empty := MakeSpan(nil, nil)
		depthStrut := MakeSpan([]string{"vlist"}, []Box{empty})
		depthStrut.Style.Height = Em(-minPos)
		topStrut := MakeSpan([]string{"vlist-s"}, []Box{
			&Symbol{Text: "​"},
		})
		rows = []Box{
			MakeSpan([]string{"vlist-r"}, []Box{vlist, topStrut}),
			MakeSpan([]string{"vlist-r"}, []Box{depthStrut}),
		}
	} else {
		rows = []Box{MakeSpan([]string{"vlist-r"}, []Box{vlist})}
	}

	classes := []string{"vlist-t"}
	if len(rows) == 2 {
		classes = append(classes, "vlist-t2")
	}
	vtable := MakeSpan(classes, rows)
	vtable.Height = maxPos
	vtable.Depth = -minPos
	return vtable
}
