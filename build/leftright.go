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

// makeNullDelimiter builds the empty space a missing delimiter leaves.
// Its width is fixed at base size, independent of surrounding sizing.
func makeNullDelimiter(options Options, classes []string) *box.Span {
	classes = append(append([]string{}, classes...), "nulldelimiter")
	classes = append(classes, options.BaseSizingClasses()...)
	return box.MakeSpan(classes, nil)
}

// middleDelimClass marks the placeholder a \middle delimiter leaves in
// an expression until the enclosing \left...\right pair resizes it.
const middleDelimClass = "middle-delim"

// htmlDelimSizing builds a \big..\Bigg delimiter of a fixed size class.
func htmlDelimSizing(group *tex.DelimSizing, options Options) (box.Box, error) {
	if group.Delim == "." {
		return makeSpan([]string{"m" + group.MClass.String()}, nil, options), nil
	}
	return makeSizedDelim(group.Delim, group.Size, options, group.Mode,
		[]string{"m" + group.MClass.String()}, group.Span)
}

// htmlMiddle builds the placeholder for a \middle delimiter. The
// enclosing \left...\right pair replaces it with a delimiter sized for
// the whole group.
func htmlMiddle(group *tex.MiddleBox, options Options) (box.Box, error) {
	if group.Delim == "." {
		return makeNullDelimiter(options, nil), nil
	}
	span, err := makeSizedDelim(group.Delim, 1, options, group.Mode,
		[]string{middleDelimClass}, group.Span)
	if err != nil {
		return nil, err
	}
	return span, nil
}

// htmlLeftRight lays out a \left...\right group: the body at the
// current style, delimiters sized to cover it, and any \middle
// placeholders resized to match.
func htmlLeftRight(group *tex.LeftRight, options Options) (box.Box, error) {
	inner, err := buildExpression(group.Body, options, groupReal,
		[2]string{"mopen", "mclose"})
	if err != nil {
		return nil, err
	}

	var innerHeight, innerDepth float64
	hadMiddle := false
	for _, elem := range inner {
		if elem.HasClass(middleDelimClass) {
			hadMiddle = true
			continue
		}
		innerHeight = max(elem.Geometry().Height, innerHeight)
		innerDepth = max(elem.Geometry().Depth, innerDepth)
	}
	// Delimiter glyphs keep their size across styles, so the body extent
	// is scaled down before sizing the pair.
	innerHeight *= options.SizeMultiplier
	innerDepth *= options.SizeMultiplier

	var leftDelim box.Box
	if group.Left == "." {
		leftDelim = makeNullDelimiter(options, []string{"mopen"})
	} else {
		leftDelim = makeLeftRightDelim(group.Left, innerHeight, innerDepth,
			options, group.Mode, []string{"mopen"})
	}
	children := append([]box.Box{leftDelim}, inner...)

	if hadMiddle {
		// The k-th placeholder corresponds to the k-th \middle of the body.
		var delims []string
		for _, node := range group.Body {
			if mid, ok := node.(*tex.MiddleBox); ok && mid.Delim != "." {
				delims = append(delims, mid.Delim)
			}
		}
		k := 0
		for i, elem := range children {
			if !elem.HasClass(middleDelimClass) {
				continue
			}
			children[i] = makeLeftRightDelim(delims[k], innerHeight, innerDepth,
				options, group.Mode, nil)
			k++
		}
	}

	var rightDelim box.Box
	if group.Right == "." {
		rightDelim = makeNullDelimiter(options, []string{"mclose"})
	} else {
		rightOptions := options
		if group.RightColor != "" {
			rightOptions = options.WithColor(group.RightColor)
		}
		rightDelim = makeLeftRightDelim(group.Right, innerHeight, innerDepth,
			rightOptions, group.Mode, []string{"mclose"})
	}
	children = append(children, rightDelim)

	return makeSpan([]string{"minner"}, children, options), nil
}
