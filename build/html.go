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

// realGroup states how an expression participates in spacing: partial
// expressions get no spacing at all, real groups get inter-atom glue,
// and the root additionally restarts spacing after line breaks.
type realGroup int

const (
	groupPartial realGroup = iota
	groupReal
	groupRoot
)

// styleByName maps the style keywords of \displaystyle & friends.
var styleByName = map[string]Style{
	"display":      DisplayStyle,
	"text":         TextStyle,
	"script":       ScriptStyle,
	"scriptscript": ScriptScriptStyle,
}

// getOutermostNode descends into fragments and anchors to the box a
// neighbor actually sees on the given side ("left" or "right").
func getOutermostNode(node box.Box, side string) box.Box {
	var children []box.Box
	switch n := node.(type) {
	case *box.Fragment:
		children = n.Children
	case *box.Anchor:
		children = n.Children
	default:
		return node
	}
	if len(children) == 0 {
		return node
	}
	if side == "right" {
		return getOutermostNode(children[len(children)-1], side)
	}
	return getOutermostNode(children[0], side)
}

// getTypeOfDomTree reads the atom type of a box for spacing purposes;
// empty if the box takes no part in atom spacing.
func getTypeOfDomTree(node box.Box, side string) string {
	node = getOutermostNode(node, side)
	g := node.Geometry()
	if len(g.Classes) > 0 && atomTypes[g.Classes[0]] {
		return g.Classes[0]
	}
	return ""
}

// partialGroupChildren returns the child list of boxes that are
// transparent for spacing traversal, nil for opaque boxes.
func partialGroupChildren(node box.Box) *[]box.Box {
	switch n := node.(type) {
	case *box.Fragment:
		return &n.Children
	case *box.Anchor:
		return &n.Children
	case *box.Span:
		if n.HasClass("enclosing") {
			return &n.Children
		}
	}
	return nil
}

type traversePrev struct {
	node        box.Box
	insertAfter func(box.Box)
}

// traverseNonSpaceNodes walks the box list left to right, descending
// into transparent groups, and calls cb with each non-space box and its
// non-space predecessor. A box returned by cb is spliced in after the
// predecessor. next, when non-nil, is a sentinel appended for the
// duration of the walk.
func traverseNonSpaceNodes(nodes *[]box.Box, cb func(node, prev box.Box) box.Box, prev *traversePrev, next box.Box, isRoot bool) {
	if next != nil {
		*nodes = append(*nodes, next)
	}
	for i := 0; i < len(*nodes); i++ {
		node := (*nodes)[i]
		if kids := partialGroupChildren(node); kids != nil {
			traverseNonSpaceNodes(kids, cb, prev, nil, isRoot)
			continue
		}
		nonspace := !node.HasClass("mspace")
		if nonspace {
			if result := cb(node, prev.node); result != nil {
				if prev.insertAfter != nil {
					prev.insertAfter(result)
				} else {
					// No predecessor yet: prepend.
					*nodes = append([]box.Box{result}, *nodes...)
					i++
				}
			}
			prev.node = node
		} else if isRoot && node.HasClass("newline") {
			// Spacing restarts after a line break.
			prev.node = box.MakeSpan([]string{"leftmost"}, nil)
		}
		index := i
		target := nodes
		prev.insertAfter = func(n box.Box) {
			rest := append([]box.Box{n}, (*target)[index+1:]...)
			*target = append((*target)[:index+1], rest...)
			i++
		}
	}
	if next != nil {
		*nodes = (*nodes)[:len(*nodes)-1]
	}
}

// The classes that cancel a binary atom to an ordinary one on their
// left resp. right side (TeXbook p. 170: a bin becomes ord unless
// flanked by proper operands).
var binLeftCanceller = map[string]bool{
	"leftmost": true, "mbin": true, "mopen": true, "mrel": true,
	"mop": true, "mpunct": true,
}

var binRightCanceller = map[string]bool{
	"rightmost": true, "mrel": true, "mclose": true, "mpunct": true,
}

func firstClass(node box.Box) string {
	g := node.Geometry()
	if len(g.Classes) > 0 {
		return g.Classes[0]
	}
	return ""
}

// buildExpression builds a node list into a box list, cancelling
// misplaced binary atoms and inserting inter-atom glue when the
// expression is a real group.
func buildExpression(expression []tex.Node, options Options, real realGroup, surrounding [2]string) ([]box.Box, error) {
	groups := []box.Box{}
	for _, expr := range expression {
		output, err := buildGroup(expr, options, nil)
		if err != nil {
			return nil, err
		}
		if frag, ok := output.(*box.Fragment); ok {
			groups = append(groups, frag.Children...)
		} else {
			groups = append(groups, output)
		}
	}
	groups = TryCombineChars(groups)
	if real == groupPartial {
		return groups, nil
	}
	// Spacing inside a lone sizing or styling group is measured in the
	// size that group establishes.
	glueOptions := options
	if len(expression) == 1 {
		switch n := expression[0].(type) {
		case *tex.Sizing:
			glueOptions = options.HavingSize(n.Size)
		case *tex.Styling:
			glueOptions = options.HavingStyle(styleByName[n.Style])
		}
	}
	left := surrounding[0]
	if left == "" {
		left = "leftmost"
	}
	right := surrounding[1]
	if right == "" {
		right = "rightmost"
	}
	dummyPrev := box.MakeSpan([]string{left}, nil)
	dummyNext := box.MakeSpan([]string{right}, nil)
	isRoot := real == groupRoot

	traverseNonSpaceNodes(&groups, func(node, prev box.Box) box.Box {
		prevType := firstClass(prev)
		thisType := firstClass(node)
		if prevType == "mbin" && binRightCanceller[thisType] {
			prev.Geometry().Classes[0] = "mord"
		} else if thisType == "mbin" && binLeftCanceller[prevType] {
			node.Geometry().Classes[0] = "mord"
		}
		return nil
	}, &traversePrev{node: dummyPrev}, dummyNext, isRoot)

	traverseNonSpaceNodes(&groups, func(node, prev box.Box) box.Box {
		prevType := getTypeOfDomTree(prev, "right")
		thisType := getTypeOfDomTree(node, "left")
		if prevType == "" || thisType == "" {
			return nil
		}
		table := spacings
		if node.HasClass("mtight") {
			table = tightSpacings
		}
		if space, ok := table[prevType][thisType]; ok {
			return makeGlue(space, glueOptions)
		}
		return nil
	}, &traversePrev{node: dummyPrev}, dummyNext, isRoot)

	return groups, nil
}

// buildGroup builds one parse node. When baseOptions is given and the
// size differs, the result is wrapped in a resizing span and its
// metrics rescaled, so the parent measures it in its own em.
func buildGroup(group tex.Node, options Options, baseOptions *Options) (box.Box, error) {
	if group == nil {
		return box.MakeSpan(nil, nil), nil
	}
	node, err := buildHTMLGroup(group, options)
	if err != nil {
		return nil, err
	}
	if baseOptions != nil && options.Size != baseOptions.Size {
		span := makeSpan(options.SizingClasses(*baseOptions), []box.Box{node}, options)
		multiplier := options.SizeMultiplier / baseOptions.SizeMultiplier
		span.Height = node.Geometry().Height * multiplier
		span.Depth = node.Geometry().Depth * multiplier
		return span, nil
	}
	return node, nil
}

// buildHTMLGroup dispatches on the closed set of parse-node kinds.
func buildHTMLGroup(group tex.Node, options Options) (box.Box, error) {
	switch n := group.(type) {
	case *tex.Atom:
		return htmlAtom(n, options), nil
	case *tex.MathOrd:
		return makeOrd(n.Text, n.Mode, options, []string{"mord"}, true), nil
	case *tex.TextOrd:
		return makeOrd(n.Text, n.Mode, options, []string{"mord"}, false), nil
	case *tex.OpToken:
		op := &tex.Op{Info: n.Info, Limits: true, Symbol: true, Name: n.Text}
		return htmlOp(op, options)
	case *tex.SpacingSym:
		return htmlSpacing(n, options)
	case *tex.Verb:
		return htmlVerb(n, options), nil
	case *tex.OrdGroup:
		return htmlOrdGroup(n, options)
	case *tex.SupSub:
		return htmlSupSub(n, options)
	case *tex.Styling:
		return htmlStyling(n, options)
	case *tex.Sizing:
		return htmlSizing(n, options)
	case *tex.ColorNode:
		return htmlColor(n, options)
	case *tex.FontNode:
		return htmlFont(n, options)
	case *tex.MClass:
		return htmlMClass(n, options)
	case *tex.OperatorName:
		return htmlOperatorName(n, options)
	case *tex.Op:
		return htmlOp(n, options)
	case *tex.TextNode:
		return htmlText(n, options)
	case *tex.GenFrac:
		return htmlGenFrac(n, options)
	case *tex.Infix:
		// Infix nodes left over mean the rewrite pass never saw them.
		return nil, tex.NewParseError("unexpected infix operator", n.Span)
	case *tex.Sqrt:
		return htmlSqrt(n, options)
	case *tex.Overline:
		return htmlOverline(n, options)
	case *tex.Underline:
		return htmlUnderline(n, options)
	case *tex.Accent:
		return htmlAccent(n, options)
	case *tex.AccentUnder:
		return htmlAccentUnder(n, options)
	case *tex.HorizBrace:
		return htmlHorizBrace(n, options, nil)
	case *tex.XArrow:
		return htmlXArrow(n, options)
	case *tex.Enclose:
		return htmlEnclose(n, options)
	case *tex.DelimSizing:
		return htmlDelimSizing(n, options)
	case *tex.LeftRight:
		return htmlLeftRight(n, options)
	case *tex.LeftRightRight:
		return nil, tex.NewParseError("unmatched \\right", n.Span)
	case *tex.MiddleBox:
		return htmlMiddle(n, options)
	case *tex.ArrayNode:
		return htmlArray(n, options)
	case *tex.Cr:
		return htmlCr(n, options)
	case *tex.Kern:
		return makeGlue(n.Dimension, options), nil
	case *tex.RuleNode:
		return htmlRule(n, options), nil
	case *tex.RaiseBox:
		return htmlRaiseBox(n, options)
	case *tex.Lap:
		return htmlLap(n, options)
	case *tex.Smash:
		return htmlSmash(n, options)
	case *tex.Phantom:
		return htmlPhantom(n, options)
	case *tex.HPhantom:
		return htmlHPhantom(n, options)
	case *tex.VPhantom:
		return htmlVPhantom(n, options)
	case *tex.MathChoice:
		return htmlMathChoice(n, options)
	case *tex.Href:
		return htmlHref(n, options)
	case *tex.HTMLMathML:
		boxes, err := buildExpression(n.HTML, options, groupPartial, [2]string{})
		if err != nil {
			return nil, err
		}
		return box.MakeFragment(boxes), nil
	case *tex.IncludeGraphics:
		return htmlIncludeGraphics(n, options)
	case *tex.Internal:
		// \relax and friends occupy no space.
		return box.MakeFragment(nil), nil
	case *tex.Tag:
		return nil, tex.NewParseError("\\tag works only in display equations", n.Span)
	default:
		return nil, tex.NewParseError("unknown parse node type", group.Meta().Span)
	}
}

// htmlAtom renders one of the six atom families with its spacing
// class.
func htmlAtom(n *tex.Atom, options Options) box.Box {
	return mathsym(n.Text, n.Mode, options, []string{"m" + n.Family.String()})
}

// buildHTMLUnbreakable wraps a chunk in a base span with a strut, so
// the chunk keeps its height inside inline text.
func buildHTMLUnbreakable(children []box.Box, options Options) *box.Span {
	body := makeSpan([]string{"base"}, children, options)
	strut := box.MakeSpan([]string{"strut"}, nil)
	strut.Style.Height = box.Em(body.Height + body.Depth)
	if body.Depth > 0 {
		strut.Style.VerticalAlign = box.Em(-body.Depth)
	}
	body.Children = append([]box.Box{strut}, body.Children...)
	return body
}

// buildHTML assembles the top-level box tree: chunks the expression
// into unbreakable base spans with breaks allowed after binary and
// relational atoms, and attaches the equation tag.
func buildHTML(tree []tex.Node, options Options) (*box.Span, error) {
	// Strip off an outer tag wrapper.
	var tagNodes []tex.Node
	if len(tree) == 1 {
		if t, ok := tree[0].(*tex.Tag); ok {
			tagNodes = t.TagBody
			tree = t.Body
		}
	}
	expression, err := buildExpression(tree, options, groupRoot, [2]string{})
	if err != nil {
		return nil, err
	}

	var eqnNum box.Box
	if len(expression) == 2 && expression[1].HasClass("tag") {
		// An environment with automatic numbering produced the tag.
		eqnNum = expression[1]
		expression = expression[:1]
	}

	var children []box.Box
	var parts []box.Box
	for i := 0; i < len(expression); i++ {
		parts = append(parts, expression[i])
		if expression[i].HasClass("mbin") || expression[i].HasClass("mrel") ||
			expression[i].HasClass("allowbreak") {
			// Put any post-operator glue on the same line, then break,
			// unless a \nobreak intervenes.
			nobreak := false
			for i < len(expression)-1 && expression[i+1].HasClass("mspace") &&
				!expression[i+1].HasClass("newline") {
				i++
				parts = append(parts, expression[i])
				if expression[i].HasClass("nobreak") {
					nobreak = true
				}
			}
			if !nobreak {
				children = append(children, buildHTMLUnbreakable(parts, options))
				parts = nil
			}
		} else if expression[i].HasClass("newline") {
			parts = parts[:len(parts)-1]
			if len(parts) > 0 {
				children = append(children, buildHTMLUnbreakable(parts, options))
				parts = nil
			}
			children = append(children, expression[i])
		}
	}
	if len(parts) > 0 {
		children = append(children, buildHTMLUnbreakable(parts, options))
	}

	var tagChild *box.Span
	if tagNodes != nil {
		tagBoxes, err := buildExpression(tagNodes, options, groupReal, [2]string{})
		if err != nil {
			return nil, err
		}
		tagChild = buildHTMLUnbreakable(tagBoxes, options)
		tagChild.Classes = []string{"tag"}
		children = append(children, tagChild)
	} else if eqnNum != nil {
		children = append(children, eqnNum)
	}

	htmlNode := box.MakeSpan([]string{"katex-html"}, children)
	htmlNode.SetAttribute("aria-hidden", "true")

	if tagChild != nil {
		// The tag's strut spans the whole line so the tag centers on it.
		strut := tagChild.Children[0].(*box.Span)
		strut.Style.Height = box.Em(htmlNode.Height + htmlNode.Depth)
		if htmlNode.Depth > 0 {
			strut.Style.VerticalAlign = box.Em(-htmlNode.Depth)
		}
	}
	return htmlNode, nil
}
