package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mathbox/box"
	"github.com/npillmayer/mathbox/sym"
	"github.com/npillmayer/mathbox/tex"
)

// wrapFragment boxes a fragment into a span so it can carry classes and
// metrics of its own; everything else passes through.
func wrapFragment(group box.Box, options Options) box.Box {
	if frag, ok := group.(*box.Fragment); ok {
		return makeSpan(nil, []box.Box{frag}, options)
	}
	return group
}

// getBaseElem looks through single-element groups, colors and font
// switches to the node that determines a base's character.
func getBaseElem(group tex.Node) tex.Node {
	switch n := group.(type) {
	case *tex.OrdGroup:
		if len(n.Body) == 1 {
			return getBaseElem(n.Body[0])
		}
	case *tex.ColorNode:
		if len(n.Body) == 1 {
			return getBaseElem(n.Body[0])
		}
	case *tex.FontNode:
		return getBaseElem(n.Body)
	}
	return group
}

// --- Spaces ----------------------------------------------------------

// regularSpaceClass lists the spacing commands that render as a real
// glyph, with the line-breaking class they carry.
var regularSpaceClass = map[string]string{
	" ":              "",
	"\\ ":            "",
	"~":              "nobreak",
	"\\space":        "",
	"\\nobreakspace": "nobreak",
}

// cssSpaceClass lists the zero-width commands that only mark break
// opportunities.
var cssSpaceClass = map[string]string{
	"\\nobreak":    "nobreak",
	"\\allowbreak": "allowbreak",
}

func htmlSpacing(n *tex.SpacingSym, options Options) (box.Box, error) {
	if class, ok := regularSpaceClass[n.Text]; ok {
		if n.Mode == sym.TextMode {
			ord := makeOrd(n.Text, n.Mode, options, []string{"mord"}, false)
			if class != "" {
				g := ord.Geometry()
				g.Classes = append(g.Classes, class)
			}
			return ord, nil
		}
		classes := []string{"mspace"}
		if class != "" {
			classes = append(classes, class)
		}
		return makeSpan(classes, []box.Box{mathsym(n.Text, n.Mode, options, nil)}, options), nil
	}
	if class, ok := cssSpaceClass[n.Text]; ok {
		return makeSpan([]string{"mspace", class}, nil, options), nil
	}
	return nil, tex.NewParseError("unknown type of space "+strconv.Quote(n.Text), n.Span)
}

// --- Verbatim --------------------------------------------------------

// htmlVerb renders verbatim text in the typewriter face at text style.
// Starred \verb* shows spaces as open boxes; unstarred ones become
// non-breaking spaces so the host engine keeps them.
func htmlVerb(n *tex.Verb, options Options) box.Box {
	spaceChar := " "
	if n.Star {
		spaceChar = "␣"
	}
	text := strings.ReplaceAll(n.Body, " ", spaceChar)
	newOptions := options.HavingStyle(options.Style.Text())
	body := make([]box.Box, 0, len(text))
	for _, r := range text {
		c := string(r)
		if c == "~" {
			c = "\\textasciitilde"
		}
		body = append(body, makeSymbol(c, "Typewriter-Regular", n.Mode, newOptions,
			[]string{"mord", "texttt"}))
	}
	classes := append([]string{"mord", "text"}, newOptions.SizingClasses(options)...)
	return makeSpan(classes, TryCombineChars(body), newOptions)
}

// --- Groups ----------------------------------------------------------

func htmlOrdGroup(n *tex.OrdGroup, options Options) (box.Box, error) {
	if n.SemiSimple {
		boxes, err := buildExpression(n.Body, options, groupPartial, [2]string{})
		if err != nil {
			return nil, err
		}
		return box.MakeFragment(boxes), nil
	}
	boxes, err := buildExpression(n.Body, options, groupReal, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeSpan([]string{"mord"}, boxes, options), nil
}

// sizingGroup builds a body at a new size and rescales the children so
// the surrounding expression measures them correctly. Nested size
// resets are rewritten to reset to the base size instead.
func sizingGroup(body []tex.Node, options, baseOptions Options) (box.Box, error) {
	inner, err := buildExpression(body, options, groupPartial, [2]string{})
	if err != nil {
		return nil, err
	}
	multiplier := options.SizeMultiplier / baseOptions.SizeMultiplier
	for _, child := range inner {
		g := child.Geometry()
		pos := -1
		for i, c := range g.Classes {
			if c == "sizing" {
				pos = i
				break
			}
		}
		if pos < 0 {
			g.Classes = append(g.Classes, options.SizingClasses(baseOptions)...)
		} else if pos+1 < len(g.Classes) &&
			g.Classes[pos+1] == "reset-size"+strconv.Itoa(options.Size) {
			g.Classes[pos+1] = "reset-size" + strconv.Itoa(baseOptions.Size)
		}
		g.Height *= multiplier
		g.Depth *= multiplier
	}
	return box.MakeFragment(inner), nil
}

func htmlSizing(n *tex.Sizing, options Options) (box.Box, error) {
	return sizingGroup(n.Body, options.HavingSize(n.Size), options)
}

func htmlStyling(n *tex.Styling, options Options) (box.Box, error) {
	newOptions := options.HavingStyle(styleByName[n.Style]).WithFont("")
	return sizingGroup(n.Body, newOptions, options)
}

// htmlColor builds the body with the new color; the fragment keeps the
// children transparent for atom spacing.
func htmlColor(n *tex.ColorNode, options Options) (box.Box, error) {
	elements, err := buildExpression(n.Body, options.WithColor(n.Color), groupPartial, [2]string{})
	if err != nil {
		return nil, err
	}
	return box.MakeFragment(elements), nil
}

func htmlFont(n *tex.FontNode, options Options) (box.Box, error) {
	return buildGroup(n.Body, options.WithFont(n.Font), nil)
}

func htmlMClass(n *tex.MClass, options Options) (box.Box, error) {
	elements, err := buildExpression(n.Body, options, groupReal, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeSpan([]string{"m" + n.Class.String()}, elements, options), nil
}

// --- Text mode -------------------------------------------------------

var textFontFamilies = map[string]string{
	"\\text":       "",
	"\\textrm":     "textrm",
	"\\textsf":     "textsf",
	"\\texttt":     "texttt",
	"\\textnormal": "textrm",
}

var textFontWeights = map[string]string{
	"\\textbf": "textbf",
	"\\textmd": "textmd",
}

var textFontShapes = map[string]string{
	"\\textit": "textit",
	"\\textup": "textup",
}

// optionsWithFont applies a \text... command's font to the options.
// \emph toggles between italic and upright.
func optionsWithFont(n *tex.TextNode, options Options) Options {
	font := n.Font
	if font == "" {
		return options
	}
	if family := textFontFamilies[font]; family != "" {
		return options.WithTextFontFamily(family)
	}
	if weight := textFontWeights[font]; weight != "" {
		return options.WithTextFontWeight(weight)
	}
	if font == "\\emph" {
		if options.FontShape == "textit" {
			return options.WithTextFontShape("textup")
		}
		return options.WithTextFontShape("textit")
	}
	return options.WithTextFontShape(textFontShapes[font])
}

func htmlText(n *tex.TextNode, options Options) (box.Box, error) {
	newOptions := optionsWithFont(n, options)
	inner, err := buildExpression(n.Body, newOptions, groupReal, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeSpan([]string{"mord", "text"}, inner, newOptions), nil
}

// --- Line breaks, rules, boxes ---------------------------------------

func htmlCr(n *tex.Cr, options Options) (box.Box, error) {
	span := makeSpan([]string{"mspace"}, nil, options)
	if n.NewLine {
		span.Classes = append(span.Classes, "newline")
		if n.Size != nil {
			span.Style.MarginTop = box.Em(CalculateSize(*n.Size, options))
		}
	}
	return span, nil
}

// htmlRule draws a filled rectangle via borders, optionally shifted off
// the baseline.
func htmlRule(n *tex.RuleNode, options Options) box.Box {
	rule := makeSpan([]string{"mord", "rule"}, nil, options)
	width := CalculateSize(n.Width, options)
	height := CalculateSize(n.Height, options)
	shift := 0.0
	if n.Shift != nil {
		shift = CalculateSize(*n.Shift, options)
	}
	rule.Style.BorderRightWidth = box.Em(width)
	rule.Style.BorderTopWidth = box.Em(height)
	rule.Style.Bottom = box.Em(shift)
	w := width
	rule.Width = &w
	rule.Height = height + shift
	rule.Depth = -shift
	// Font size of the rule's line box, so the browser reserves room.
	rule.MaxFontSize = height * 1.125 * options.SizeMultiplier
	return rule
}

func htmlRaiseBox(n *tex.RaiseBox, options Options) (box.Box, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	dy := CalculateSize(n.Dy, options)
	return box.MakeVList(box.Shift, -dy, []box.VListChild{box.VElem(body)}), nil
}

// htmlLap lays out content with zero advance width, hanging to the
// left, right or centered on the current position.
func htmlLap(n *tex.Lap, options Options) (box.Box, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	var inner *box.Span
	if n.Alignment == "clap" {
		// Centering happens through a nested wrapper.
		inner = box.MakeSpan(nil, []box.Box{body})
		inner = makeSpan([]string{"inner"}, []box.Box{inner}, options)
	} else {
		inner = box.MakeSpan([]string{"inner"}, []box.Box{body})
	}
	fix := box.MakeSpan([]string{"fix"}, nil)
	node := makeSpan([]string{n.Alignment}, []box.Box{inner, fix}, options)
	strut := box.MakeSpan([]string{"strut"}, nil)
	strut.Style.Height = box.Em(node.Height + node.Depth)
	if node.Depth > 0 {
		strut.Style.VerticalAlign = box.Em(-node.Depth)
	}
	node.Children = append([]box.Box{strut}, node.Children...)
	thinbox := makeSpan([]string{"thinbox"}, []box.Box{node}, options)
	return makeSpan([]string{"mord", "vbox"}, []box.Box{thinbox}, options), nil
}

func htmlSmash(n *tex.Smash, options Options) (box.Box, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	node := box.MakeSpan(nil, []box.Box{body})
	if !n.SmashHeight && !n.SmashDepth {
		return node, nil
	}
	if n.SmashHeight {
		node.Height = 0
		for _, child := range node.Children {
			child.Geometry().Height = 0
		}
	}
	if n.SmashDepth {
		node.Depth = 0
		for _, child := range node.Children {
			child.Geometry().Depth = 0
		}
	}
	// The vlist hides the smashed extent from the line box.
	smashed := box.MakeVList(box.FirstBaseline, 0, []box.VListChild{box.VElem(node)})
	return makeSpan([]string{"mord"}, []box.Box{smashed}, options), nil
}

// --- Phantoms --------------------------------------------------------

func htmlPhantom(n *tex.Phantom, options Options) (box.Box, error) {
	elements, err := buildExpression(n.Body, options.WithPhantom(), groupPartial, [2]string{})
	if err != nil {
		return nil, err
	}
	return box.MakeFragment(elements), nil
}

func htmlHPhantom(n *tex.HPhantom, options Options) (box.Box, error) {
	body, err := buildGroup(n.Body, options.WithPhantom(), nil)
	if err != nil {
		return nil, err
	}
	node := box.MakeSpan(nil, []box.Box{body})
	node.Height = 0
	node.Depth = 0
	for _, child := range node.Children {
		child.Geometry().Height = 0
		child.Geometry().Depth = 0
	}
	vlist := box.MakeVList(box.FirstBaseline, 0, []box.VListChild{box.VElem(node)})
	return makeSpan([]string{"mord"}, []box.Box{vlist}, options), nil
}

func htmlVPhantom(n *tex.VPhantom, options Options) (box.Box, error) {
	body, err := buildGroup(n.Body, options.WithPhantom(), nil)
	if err != nil {
		return nil, err
	}
	inner := box.MakeSpan([]string{"inner"}, []box.Box{body})
	fix := box.MakeSpan([]string{"fix"}, nil)
	return makeSpan([]string{"mord", "rlap"}, []box.Box{inner, fix}, options), nil
}

// --- Choice, links, images -------------------------------------------

func chooseMathStyleBody(n *tex.MathChoice, options Options) []tex.Node {
	switch options.Style.Size {
	case DisplayStyle.Size:
		return n.Display
	case TextStyle.Size:
		return n.Text
	case ScriptStyle.Size:
		return n.Script
	case ScriptScriptStyle.Size:
		return n.ScriptScript
	}
	return n.Text
}

func htmlMathChoice(n *tex.MathChoice, options Options) (box.Box, error) {
	elements, err := buildExpression(chooseMathStyleBody(n, options), options, groupPartial, [2]string{})
	if err != nil {
		return nil, err
	}
	return box.MakeFragment(elements), nil
}

func htmlHref(n *tex.Href, options Options) (box.Box, error) {
	elements, err := buildExpression(n.Body, options, groupPartial, [2]string{})
	if err != nil {
		return nil, err
	}
	anchor := box.MakeAnchor(n.Href, nil, elements)
	if color := options.PaintColor(); color != "" {
		anchor.Style.Color = color
	}
	return anchor, nil
}

func htmlIncludeGraphics(n *tex.IncludeGraphics, options Options) (box.Box, error) {
	height := CalculateSize(n.Height, options)
	depth := 0.0
	if n.TotalHeight.Number > 0 {
		depth = CalculateSize(n.TotalHeight, options) - height
	}
	width := 0.0
	if n.Width.Number > 0 {
		width = CalculateSize(n.Width, options)
	}
	img := &box.Img{Src: n.Src, Alt: n.Alt}
	img.Style.Height = box.Em(height + depth)
	if width > 0 {
		img.Style.Width = box.Em(width)
	}
	if depth > 0 {
		img.Style.VerticalAlign = box.Em(-depth)
	}
	img.Height = height
	img.Depth = depth
	return img, nil
}
