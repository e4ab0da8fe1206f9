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

// ttLigatures are the input sequences a typewriter face must keep
// verbatim instead of replacing with their typographic forms.
var ttLigatures = map[string]bool{
	"--": true, "---": true, "``": true, "''": true,
}

// makeMText builds a text leaf, applying the symbol table's character
// replacement. Typewriter faces keep ligature input sequences as is.
func makeMText(text string, mode sym.Mode, options *Options) *mml.TextNode {
	if s, ok := sym.Get(mode, text); ok && s.Replace != 0 {
		suppress := false
		if ttLigatures[text] && options != nil {
			if strings.HasPrefix(options.FontFamily, "text") &&
				strings.HasSuffix(options.FontFamily, "tt") {
				suppress = true
			}
			if strings.HasPrefix(options.Font, "math") &&
				strings.HasSuffix(options.Font, "tt") {
				suppress = true
			}
		}
		if !suppress {
			text = string(s.Replace)
		}
	}
	return mml.NewText(text)
}

// mathVariant resolves the mathvariant attribute for a symbol leaf;
// empty means the element's default applies.
func mathVariant(text string, isTextOrd bool, options Options) string {
	if options.FontFamily == "texttt" {
		return "monospace"
	}
	if options.FontFamily == "textsf" {
		switch {
		case options.FontShape == "textit" && options.FontWeight == "textbf":
			return "sans-serif-bold-italic"
		case options.FontShape == "textit":
			return "sans-serif-italic"
		case options.FontWeight == "textbf":
			return "bold-sans-serif"
		}
		return "sans-serif"
	}
	if options.FontShape == "textit" && options.FontWeight == "textbf" {
		return "bold-italic"
	}
	if options.FontShape == "textit" {
		return "italic"
	}
	if options.FontWeight == "textbf" {
		return "bold"
	}
	font := options.Font
	if font == "" || font == "mathnormal" {
		return ""
	}
	if text == "\\imath" || text == "\\jmath" {
		return ""
	}
	switch font {
	case "mathit", "textit", "oldstylenums":
		return "italic"
	case "boldsymbol":
		if isTextOrd {
			return "bold"
		}
		return "bold-italic"
	case "mathbf", "textbf", "bold":
		return "bold"
	case "mathbb":
		return "double-struck"
	case "mathfrak":
		return "fraktur"
	case "mathscr", "mathcal":
		return "script"
	case "mathsf", "textsf":
		return "sans-serif"
	case "mathtt", "texttt":
		return "monospace"
	case "mathrm", "textrm":
		return "normal"
	}
	return ""
}

// mathDefaultVariant is the rendering default per element kind; the
// attribute is only emitted when it differs.
var mathDefaultVariant = map[string]string{
	"mi": "italic", "mn": "normal", "mtext": "normal",
}

func setVariant(elem *mml.Element, variant string) {
	if variant != "" && variant != mathDefaultVariant[elem.Tag] {
		elem.SetAttribute("mathvariant", variant)
	}
}

// buildMathMLExpr builds a node list, concatenating adjacent number and
// text leaves so "12" comes out as one mn.
func buildMathMLExpr(expression []tex.Node, options Options, isOrdGroup bool) ([]mml.Node, error) {
	if len(expression) == 1 {
		group, err := buildMathMLGroup(expression[0], options)
		if err != nil {
			return nil, err
		}
		if isOrdGroup {
			if e, ok := group.(*mml.Element); ok && e.Tag == "mo" {
				// A lone operator in a group loses its default spacing.
				e.SetAttribute("lspace", "0em")
				e.SetAttribute("rspace", "0em")
			}
		}
		return []mml.Node{group}, nil
	}
	var groups []mml.Node
	for _, node := range expression {
		group, err := buildMathMLGroup(node, options)
		if err != nil {
			return nil, err
		}
		if elem, ok := group.(*mml.Element); ok && len(groups) > 0 {
			if last, ok := groups[len(groups)-1].(*mml.Element); ok {
				switch {
				case elem.Tag == "mtext" && last.Tag == "mtext" &&
					elem.Attribute("mathvariant") == last.Attribute("mathvariant"):
					last.Children = append(last.Children, elem.Children...)
					continue
				case elem.Tag == "mn" && last.Tag == "mn":
					last.Children = append(last.Children, elem.Children...)
					continue
				case elem.Tag == "mi" && last.Tag == "mn" && elem.Text() == ".":
					last.Children = append(last.Children, elem.Children...)
					continue
				}
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// buildMathMLRow builds an expression wrapped into an mrow.
func buildMathMLRow(expression []tex.Node, options Options, isOrdGroup bool) (*mml.Element, error) {
	nodes, err := buildMathMLExpr(expression, options, isOrdGroup)
	if err != nil {
		return nil, err
	}
	return mml.NewElement("mrow", nodes...), nil
}

// wrapMRow puts nodes into an mrow unless there is exactly one.
func wrapMRow(nodes []mml.Node) mml.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return mml.NewElement("mrow", nodes...)
}

// stretchyCodePoints maps stretchable notations to the character their
// semantic rendering stretches.
var stretchyCodePoints = map[string]string{
	"widehat":             "^",
	"widecheck":           "ˇ",
	"widetilde":           "~",
	"utilde":              "~",
	"overleftarrow":       "←",
	"underleftarrow":      "←",
	"xleftarrow":          "←",
	"overrightarrow":      "→",
	"underrightarrow":     "→",
	"xrightarrow":         "→",
	"overleftrightarrow":  "↔",
	"underleftrightarrow": "↔",
	"xleftrightarrow":     "↔",
	"Overrightarrow":      "⇒",
	"xRightarrow":         "⇒",
	"xLeftarrow":          "⇐",
	"xLeftrightarrow":     "⇔",
	"overleftharpoon":     "↼",
	"xleftharpoonup":      "↼",
	"overrightharpoon":    "⇀",
	"xrightharpoonup":     "⇀",
	"overbrace":           "⏞",
	"underbrace":          "⏟",
	"vec":                 "⃗",
}

// stretchyMathNode builds the stretched operator of a wide notation.
func stretchyMathNode(label string) *mml.Element {
	c := stretchyCodePoints[strings.TrimPrefix(label, "\\")]
	node := mml.NewElement("mo", mml.NewText(c))
	node.SetAttribute("stretchy", "true")
	return node
}

// paddedMNode widens its argument slightly so stretched arrows keep
// clear of their text.
func paddedMNode(child mml.Node) *mml.Element {
	node := mml.NewElement("mpadded")
	if child != nil {
		node.Children = []mml.Node{child}
	}
	node.SetAttribute("width", "+0.6em")
	node.SetAttribute("lspace", "0.3em")
	return node
}

// buildMathMLGroup builds the semantic node of one parse node.
func buildMathMLGroup(group tex.Node, options Options) (mml.Node, error) {
	switch n := group.(type) {
	case *tex.MathOrd:
		node := mml.NewElement("mi", makeMText(n.Text, n.Mode, &options))
		variant := mathVariant(n.Text, false, options)
		if variant == "" {
			variant = "italic"
		}
		setVariant(node, variant)
		return node, nil

	case *tex.TextOrd:
		text := makeMText(n.Text, n.Mode, &options)
		variant := mathVariant(n.Text, true, options)
		if variant == "" {
			variant = "normal"
		}
		var node *mml.Element
		switch {
		case n.Mode == sym.TextMode:
			node = mml.NewElement("mtext", text)
		case strings.ContainsAny(n.Text, "0123456789"):
			node = mml.NewElement("mn", text)
		case n.Text == "\\prime":
			node = mml.NewElement("mo", text)
		default:
			node = mml.NewElement("mi", text)
		}
		setVariant(node, variant)
		return node, nil

	case *tex.Atom:
		node := mml.NewElement("mo", makeMText(n.Text, n.Mode, &options))
		switch n.Family {
		case sym.Bin:
			if v := mathVariant(n.Text, false, options); v == "bold-italic" {
				node.SetAttribute("mathvariant", v)
			}
		case sym.Punct:
			node.SetAttribute("separator", "true")
		case sym.Open, sym.Close:
			node.SetAttribute("stretchy", "false")
		}
		return node, nil

	case *tex.OpToken:
		op := &tex.Op{Info: n.Info, Limits: true, Symbol: true, Name: n.Text}
		return buildMathMLGroup(op, options)

	case *tex.SpacingSym:
		if _, ok := regularSpaceClass[n.Text]; ok {
			return mml.NewElement("mtext", mml.NewText(" ")), nil
		}
		if _, ok := cssSpaceClass[n.Text]; ok {
			return mml.NewElement("mspace"), nil
		}
		return nil, tex.NewParseError("unknown type of space "+n.Text, n.Span)

	case *tex.Verb:
		spaceChar := " "
		if n.Star {
			spaceChar = "␣"
		}
		text := strings.ReplaceAll(n.Body, " ", spaceChar)
		node := mml.NewElement("mtext", mml.NewText(text))
		node.SetAttribute("mathvariant", "monospace")
		return node, nil

	case *tex.OrdGroup:
		return buildMathMLRow(n.Body, options, true)

	case *tex.SupSub:
		return mathmlSupSub(n, options)

	case *tex.Styling:
		style := styleByName[n.Style]
		newOptions := options.HavingStyle(style)
		inner, err := buildMathMLExpr(n.Body, newOptions, false)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("mstyle", inner...)
		scriptlevel := "0"
		displaystyle := "false"
		switch n.Style {
		case "display":
			displaystyle = "true"
		case "script":
			scriptlevel = "1"
		case "scriptscript":
			scriptlevel = "2"
		}
		node.SetAttribute("scriptlevel", scriptlevel)
		node.SetAttribute("displaystyle", displaystyle)
		return node, nil

	case *tex.Sizing:
		newOptions := options.HavingSize(n.Size)
		inner, err := buildMathMLExpr(n.Body, newOptions, false)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("mstyle", inner...)
		node.SetAttribute("mathsize", box.Em(newOptions.SizeMultiplier/options.SizeMultiplier))
		return node, nil

	case *tex.ColorNode:
		inner, err := buildMathMLExpr(n.Body, options.WithColor(n.Color), false)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("mstyle", inner...)
		node.SetAttribute("mathcolor", n.Color)
		return node, nil

	case *tex.FontNode:
		return buildMathMLGroup(n.Body, options.WithFont(n.Font))

	case *tex.MClass:
		return mathmlMClass(n, options)

	case *tex.OperatorName:
		return mathmlOperatorName(n, options)

	case *tex.Op:
		return mathmlOp(n, options)

	case *tex.TextNode:
		newOptions := optionsWithFont(n, options)
		inner, err := buildMathMLExpr(n.Body, newOptions, false)
		if err != nil {
			return nil, err
		}
		return mml.NewElement("mtext", inner...), nil

	case *tex.GenFrac:
		return mathmlGenFrac(n, options)

	case *tex.Infix:
		return nil, tex.NewParseError("unexpected infix operator", n.Span)

	case *tex.Sqrt:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		if n.Index == nil {
			return mml.NewElement("msqrt", body), nil
		}
		index, err := buildMathMLGroup(n.Index, options)
		if err != nil {
			return nil, err
		}
		return mml.NewElement("mroot", body, index), nil

	case *tex.Overline:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		operator := mml.NewElement("mo", mml.NewText("‾"))
		operator.SetAttribute("stretchy", "true")
		node := mml.NewElement("mover", body, operator)
		node.SetAttribute("accent", "true")
		return node, nil

	case *tex.Underline:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		operator := mml.NewElement("mo", mml.NewText("‾"))
		operator.SetAttribute("stretchy", "true")
		node := mml.NewElement("munder", body, operator)
		node.SetAttribute("accentunder", "true")
		return node, nil

	case *tex.Accent:
		base, err := buildMathMLGroup(n.Base, options)
		if err != nil {
			return nil, err
		}
		var operator *mml.Element
		if n.IsStretchy {
			operator = stretchyMathNode(n.Label)
		} else {
			operator = mml.NewElement("mo", makeMText(n.Label, n.Mode, &options))
		}
		node := mml.NewElement("mover", base, operator)
		node.SetAttribute("accent", "true")
		return node, nil

	case *tex.AccentUnder:
		base, err := buildMathMLGroup(n.Base, options)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("munder", base, stretchyMathNode(n.Label))
		node.SetAttribute("accentunder", "true")
		return node, nil

	case *tex.HorizBrace:
		base, err := buildMathMLGroup(n.Base, options)
		if err != nil {
			return nil, err
		}
		tag := "munder"
		if n.IsOver {
			tag = "mover"
		}
		return mml.NewElement(tag, base, stretchyMathNode(n.Label)), nil

	case *tex.XArrow:
		return mathmlXArrow(n, options)

	case *tex.Enclose:
		return mathmlEnclose(n, options)

	case *tex.DelimSizing:
		var children []mml.Node
		if n.Delim != "." {
			children = append(children, makeMText(n.Delim, n.Mode, &options))
		}
		node := mml.NewElement("mo", children...)
		if n.MClass == sym.Open || n.MClass == sym.Close {
			node.SetAttribute("fence", "true")
		} else {
			node.SetAttribute("fence", "false")
		}
		node.SetAttribute("stretchy", "true")
		size := box.Em(sizeToMaxHeight[n.Size])
		node.SetAttribute("minsize", size)
		node.SetAttribute("maxsize", size)
		return node, nil

	case *tex.LeftRight:
		inner, err := buildMathMLExpr(n.Body, options, false)
		if err != nil {
			return nil, err
		}
		if n.Left != "." {
			left := mml.NewElement("mo", makeMText(n.Left, n.Mode, &options))
			left.SetAttribute("fence", "true")
			inner = append([]mml.Node{left}, inner...)
		}
		if n.Right != "." {
			right := mml.NewElement("mo", makeMText(n.Right, n.Mode, &options))
			right.SetAttribute("fence", "true")
			if n.RightColor != "" {
				right.SetAttribute("mathcolor", n.RightColor)
			}
			inner = append(inner, right)
		}
		return wrapMRow(inner), nil

	case *tex.LeftRightRight:
		return nil, tex.NewParseError("unmatched \\right", n.Span)

	case *tex.MiddleBox:
		node := mml.NewElement("mo", makeMText(n.Delim, n.Mode, &options))
		node.SetAttribute("fence", "true")
		node.SetAttribute("lspace", "0.05em")
		node.SetAttribute("rspace", "0.05em")
		return node, nil

	case *tex.ArrayNode:
		return mathmlArray(n, options)

	case *tex.Cr:
		node := mml.NewElement("mspace")
		if n.NewLine {
			node.SetAttribute("linebreak", "newline")
			if n.Size != nil {
				node.SetAttribute("height", box.Em(CalculateSize(*n.Size, options)))
			}
		}
		return node, nil

	case *tex.Kern:
		return mml.NewSpace(CalculateSize(n.Dimension, options)), nil

	case *tex.RuleNode:
		width := CalculateSize(n.Width, options)
		height := CalculateSize(n.Height, options)
		var shift float64
		if n.Shift != nil {
			shift = CalculateSize(*n.Shift, options)
		}
		color := options.Color
		if color == "" {
			color = "black"
		}
		rule := mml.NewElement("mspace")
		rule.SetAttribute("mathbackground", color)
		rule.SetAttribute("width", box.Em(width))
		rule.SetAttribute("height", box.Em(height))
		wrapper := mml.NewElement("mpadded", rule)
		if shift >= 0 {
			wrapper.SetAttribute("height", "+"+box.Em(shift))
		} else {
			wrapper.SetAttribute("height", box.Em(shift))
			wrapper.SetAttribute("depth", "+"+box.Em(-shift))
		}
		wrapper.SetAttribute("voffset", box.Em(shift))
		return wrapper, nil

	case *tex.RaiseBox:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("mpadded", body)
		node.SetAttribute("voffset", formatNum(n.Dy.Number)+n.Dy.Unit)
		return node, nil

	case *tex.Lap:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("mpadded", body)
		if n.Alignment != "rlap" {
			offset := "-0.5"
			if n.Alignment == "llap" {
				offset = "-1"
			}
			node.SetAttribute("lspace", offset+"width")
		}
		node.SetAttribute("width", "0px")
		return node, nil

	case *tex.Smash:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		node := mml.NewElement("mpadded", body)
		if n.SmashHeight {
			node.SetAttribute("height", "0px")
		}
		if n.SmashDepth {
			node.SetAttribute("depth", "0px")
		}
		return node, nil

	case *tex.Phantom:
		inner, err := buildMathMLExpr(n.Body, options, false)
		if err != nil {
			return nil, err
		}
		return mml.NewElement("mphantom", inner...), nil

	case *tex.HPhantom:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		phantom := mml.NewElement("mphantom", body)
		node := mml.NewElement("mpadded", phantom)
		node.SetAttribute("height", "0px")
		node.SetAttribute("depth", "0px")
		return node, nil

	case *tex.VPhantom:
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		phantom := mml.NewElement("mphantom", body)
		node := mml.NewElement("mpadded", phantom)
		node.SetAttribute("width", "0px")
		return node, nil

	case *tex.MathChoice:
		return wrapBody(chooseMathStyleBody(n, options), options)

	case *tex.Href:
		row, err := buildMathMLRow(n.Body, options, false)
		if err != nil {
			return nil, err
		}
		row.SetAttribute("href", n.Href)
		return row, nil

	case *tex.HTMLMathML:
		return buildMathMLRow(n.MathML, options, false)

	case *tex.IncludeGraphics:
		node := mml.NewElement("mglyph")
		node.SetAttribute("alt", n.Alt)
		node.SetAttribute("src", n.Src)
		node.SetAttribute("width", box.Em(CalculateSize(n.Width, options)))
		node.SetAttribute("height", box.Em(CalculateSize(n.Height, options)))
		if n.TotalHeight.Number > 0 {
			node.SetAttribute("valign",
				box.Em(CalculateSize(n.Height, options)-CalculateSize(n.TotalHeight, options)))
		}
		return node, nil

	case *tex.Internal:
		return mml.NewElement("mrow"), nil

	case *tex.Tag:
		tag, err := buildMathMLRow(n.TagBody, options, false)
		if err != nil {
			return nil, err
		}
		body, err := buildMathMLRow(n.Body, options, false)
		if err != nil {
			return nil, err
		}
		row := mml.NewElement("mlabeledtr",
			mml.NewElement("mtd", tag),
			mml.NewElement("mtd", body))
		table := mml.NewElement("mtable", row)
		table.SetAttribute("side", "right")
		return table, nil

	default:
		return nil, tex.NewParseError("unknown parse node type", group.Meta().Span)
	}
}

// wrapBody builds a node list and wraps it into an mrow when needed.
func wrapBody(body []tex.Node, options Options) (mml.Node, error) {
	nodes, err := buildMathMLExpr(body, options, false)
	if err != nil {
		return nil, err
	}
	return wrapMRow(nodes), nil
}
