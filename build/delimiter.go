package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"

	"github.com/npillmayer/mathbox/box"
	"github.com/npillmayer/mathbox/metrics"
	"github.com/npillmayer/mathbox/sym"
	"github.com/npillmayer/mathbox/tex"
)

// Delimiters come in three growing flavors: a glyph from one of the
// regular fonts shrunk by a style, a glyph from one of the Size fonts,
// or a stack of font pieces assembled to the exact height.

// delimMetrics measures a delimiter glyph in the given font, honoring
// the symbol table's replacement character.
func delimMetrics(delim, fontName string, mode sym.Mode) (metrics.CharMetrics, bool) {
	_, m, ok := lookupSymbol(delim, fontName, mode)
	return m, ok
}

// styleWrap resizes a delimiter built in toStyle back into the current
// options, so the surrounding layout measures it correctly.
func styleWrap(delim box.Box, toStyle Style, options Options, classes []string) *box.Span {
	newOptions := options.HavingBaseStyle(toStyle)
	span := makeSpan(appendClasses(classes, newOptions.SizingClasses(options)), []box.Box{delim}, options)
	multiplier := newOptions.SizeMultiplier / options.SizeMultiplier
	span.Height *= multiplier
	span.Depth *= multiplier
	span.MaxFontSize = newOptions.SizeMultiplier
	return span
}

// centerSpan moves a delimiter onto the math axis.
func centerSpan(span *box.Span, options Options, style Style) {
	newOptions := options.HavingBaseStyle(style)
	shift := (1 - options.SizeMultiplier/newOptions.SizeMultiplier) *
		options.FontMetrics().AxisHeight
	span.Classes = append(span.Classes, "delimcenter")
	span.Style.Top = box.Em(shift)
	span.Height -= shift
	span.Depth += shift
}

// makeSmallDelim renders a delimiter out of the normal font, possibly
// shrunk to a script style.
func makeSmallDelim(delim string, style Style, center bool, options Options,
	mode sym.Mode, classes []string) *box.Span {
	text := makeSymbol(delim, "Main-Regular", mode, options, classes)
	span := styleWrap(text, style, options, classes)
	if center {
		centerSpan(span, options, style)
	}
	return span
}

// makeLargeDelim renders a delimiter out of one of the four Size fonts.
func makeLargeDelim(delim string, size int, center bool, options Options,
	mode sym.Mode, classes []string) *box.Span {
	inner := makeSymbol(delim, sizeFontName(size), mode, options, nil)
	wrapped := makeSpan([]string{"delimsizing", "size" + itoa(size)}, []box.Box{inner}, options)
	span := styleWrap(wrapped, TextStyle, options, classes)
	if center {
		centerSpan(span, options, TextStyle)
	}
	return span
}

func sizeFontName(size int) string {
	return "Size" + itoa(size) + "-Regular"
}

func itoa(n int) string {
	// sizes run 1..4 and 1..11; avoid pulling strconv into every call site
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// glyphSpan wraps one stacked-delimiter piece in the inner span the
// stylesheet clips to its line height.
func glyphSpan(symbol, fontName string, mode sym.Mode, options Options) box.VListChild {
	sizeClass := "delim-size4"
	if fontName == "Size1-Regular" {
		sizeClass = "delim-size1"
	}
	inner := makeSymbol(symbol, fontName, mode, options, nil)
	corner := box.MakeSpan([]string{"delimsizinginner", sizeClass},
		[]box.Box{box.MakeSpan(nil, []box.Box{inner})})
	return box.VElem(corner)
}

// Stacked-delimiter piece tables. Each delimiter decomposes into a top,
// an optional middle, a repeatable segment and a bottom glyph, all
// taken from the same font.
type stackedPieces struct {
	top, middle, repeat, bottom string
	font                        string
}

func stackedDelimPieces(delim string) stackedPieces {
	p := stackedPieces{top: delim, repeat: delim, bottom: delim, font: "Size1-Regular"}
	switch delim {
	case "\\uparrow":
		p.repeat, p.bottom = "⏐", "⏐"
	case "\\Uparrow":
		p.repeat, p.bottom = "‖", "‖"
	case "\\downarrow":
		p.top, p.repeat = "⏐", "⏐"
	case "\\Downarrow":
		p.top, p.repeat = "‖", "‖"
	case "\\updownarrow":
		p.top, p.repeat, p.bottom = "\\uparrow", "⏐", "\\downarrow"
	case "\\Updownarrow":
		p.top, p.repeat, p.bottom = "\\Uparrow", "‖", "\\Downarrow"
	case "|", "\\vert", "\\lvert", "\\rvert":
		p.top, p.repeat, p.bottom = "∣", "∣", "∣"
	case "\\|", "\\Vert", "\\lVert", "\\rVert":
		p.top, p.repeat, p.bottom = "∥", "∥", "∥"
	case "[", "\\lbrack":
		p.top, p.repeat, p.bottom, p.font = "⎡", "⎢", "⎣", "Size4-Regular"
	case "]", "\\rbrack":
		p.top, p.repeat, p.bottom, p.font = "⎤", "⎥", "⎦", "Size4-Regular"
	case "\\lfloor", "⌊":
		p.top, p.repeat, p.bottom, p.font = "⎢", "⎢", "⎣", "Size4-Regular"
	case "\\lceil", "⌈":
		p.top, p.repeat, p.bottom, p.font = "⎡", "⎢", "⎢", "Size4-Regular"
	case "\\rfloor", "⌋":
		p.top, p.repeat, p.bottom, p.font = "⎥", "⎥", "⎦", "Size4-Regular"
	case "\\rceil", "⌉":
		p.top, p.repeat, p.bottom, p.font = "⎤", "⎥", "⎥", "Size4-Regular"
	case "(", "\\lparen":
		p.top, p.repeat, p.bottom, p.font = "⎛", "⎜", "⎝", "Size4-Regular"
	case ")", "\\rparen":
		p.top, p.repeat, p.bottom, p.font = "⎞", "⎟", "⎠", "Size4-Regular"
	case "\\{", "\\lbrace":
		p.top, p.middle, p.repeat, p.bottom, p.font = "⎧", "⎨", "⎪", "⎩", "Size4-Regular"
	case "\\}", "\\rbrace":
		p.top, p.middle, p.repeat, p.bottom, p.font = "⎫", "⎬", "⎪", "⎭", "Size4-Regular"
	case "\\lgroup", "⟮":
		p.top, p.repeat, p.bottom, p.font = "⎧", "⎪", "⎩", "Size4-Regular"
	case "\\rgroup", "⟯":
		p.top, p.repeat, p.bottom, p.font = "⎫", "⎪", "⎭", "Size4-Regular"
	case "\\lmoustache", "⎰":
		p.top, p.repeat, p.bottom, p.font = "⎧", "⎪", "⎭", "Size4-Regular"
	case "\\rmoustache", "⎱":
		p.top, p.repeat, p.bottom, p.font = "⎫", "⎪", "⎩", "Size4-Regular"
	}
	return p
}

// makeStackedDelim assembles a delimiter of at least heightTotal em out
// of font pieces, centered on the axis when center is set.
func makeStackedDelim(delim string, heightTotal float64, center bool, options Options,
	mode sym.Mode, classes []string) *box.Span {
	p := stackedDelimPieces(delim)

	topMetrics, _ := delimMetrics(p.top, p.font, mode)
	topHeight := topMetrics.Height + topMetrics.Depth
	repeatMetrics, _ := delimMetrics(p.repeat, p.font, mode)
	repeatHeight := repeatMetrics.Height + repeatMetrics.Depth
	bottomMetrics, _ := delimMetrics(p.bottom, p.font, mode)
	bottomHeight := bottomMetrics.Height + bottomMetrics.Depth

	middleHeight := 0.0
	middleFactor := 1.0
	if p.middle != "" {
		middleMetrics, _ := delimMetrics(p.middle, p.font, mode)
		middleHeight = middleMetrics.Height + middleMetrics.Depth
		middleFactor = 2
	}

	minHeight := topHeight + bottomHeight + middleHeight
	repeatCount := 0
	if repeatHeight > 0 {
		repeatCount = int(math.Max(0,
			math.Ceil((heightTotal-minHeight)/(middleFactor*repeatHeight))))
	}
	realHeight := minHeight + float64(repeatCount)*middleFactor*repeatHeight

	axisHeight := options.FontMetrics().AxisHeight
	if center {
		axisHeight *= options.SizeMultiplier
	}
	depth := realHeight/2 - axisHeight

	var stack []box.VListChild
	stack = append(stack, glyphSpan(p.bottom, p.font, mode, options))
	if p.middle == "" {
		for i := 0; i < repeatCount; i++ {
			stack = append(stack, glyphSpan(p.repeat, p.font, mode, options))
		}
	} else {
		for i := 0; i < repeatCount; i++ {
			stack = append(stack, glyphSpan(p.repeat, p.font, mode, options))
		}
		stack = append(stack, glyphSpan(p.middle, p.font, mode, options))
		for i := 0; i < repeatCount; i++ {
			stack = append(stack, glyphSpan(p.repeat, p.font, mode, options))
		}
	}
	stack = append(stack, glyphSpan(p.top, p.font, mode, options))

	newOptions := options.HavingBaseStyle(TextStyle)
	inner := box.MakeVList(box.Bottom, depth, stack)
	return styleWrap(makeSpan([]string{"delimsizing", "mult"}, []box.Box{inner}, newOptions),
		TextStyle, options, classes)
}

// Delimiters fall into three growth families: those that only ever come
// from fonts, those that only stack, and those that do both.
var stackLargeDelimiters = map[string]bool{
	"(": true, "\\lparen": true, ")": true, "\\rparen": true,
	"[": true, "\\lbrack": true, "]": true, "\\rbrack": true,
	"\\{": true, "\\lbrace": true, "\\}": true, "\\rbrace": true,
	"\\lfloor": true, "\\rfloor": true, "⌊": true, "⌋": true,
	"\\lceil": true, "\\rceil": true, "⌈": true, "⌉": true,
	"\\surd": true,
}

var stackAlwaysDelimiters = map[string]bool{
	"\\uparrow": true, "\\downarrow": true, "\\updownarrow": true,
	"\\Uparrow": true, "\\Downarrow": true, "\\Updownarrow": true,
	"|": true, "\\|": true, "\\vert": true, "\\Vert": true,
	"\\lvert": true, "\\rvert": true, "\\lVert": true, "\\rVert": true,
	"\\lgroup": true, "\\rgroup": true, "⟮": true, "⟯": true,
	"\\lmoustache": true, "\\rmoustache": true, "⎰": true, "⎱": true,
}

var stackNeverDelimiters = map[string]bool{
	"<": true, ">": true, "\\langle": true, "\\rangle": true,
	"/": true, "\\backslash": true, "\\lt": true, "\\gt": true,
}

// sizeToMaxHeight gives the delimiter height each Size font covers.
var sizeToMaxHeight = [5]float64{0, 1.2, 1.8, 2.4, 3.0}

// normalizeDelim maps angle-bracket spellings onto the glyphs the math
// fonts carry.
func normalizeDelim(delim string) string {
	switch delim {
	case "<", "\\lt", "⟨":
		return "\\langle"
	case ">", "\\gt", "⟩":
		return "\\rangle"
	}
	return delim
}

// delimStep is one entry of a growth sequence.
type delimStep struct {
	kind  string // "small", "large", "stack"
	style Style
	size  int
}

var stackNeverDelimiterSequence = []delimStep{
	{kind: "small", style: ScriptScriptStyle},
	{kind: "small", style: ScriptStyle},
	{kind: "small", style: TextStyle},
	{kind: "large", size: 1}, {kind: "large", size: 2},
	{kind: "large", size: 3}, {kind: "large", size: 4},
}

var stackAlwaysDelimiterSequence = []delimStep{
	{kind: "small", style: ScriptScriptStyle},
	{kind: "small", style: ScriptStyle},
	{kind: "small", style: TextStyle},
	{kind: "stack"},
}

var stackLargeDelimiterSequence = []delimStep{
	{kind: "small", style: ScriptScriptStyle},
	{kind: "small", style: ScriptStyle},
	{kind: "small", style: TextStyle},
	{kind: "large", size: 1}, {kind: "large", size: 2},
	{kind: "large", size: 3}, {kind: "large", size: 4},
	{kind: "stack"},
}

func delimStepFont(step delimStep) string {
	switch step.kind {
	case "small":
		return "Main-Regular"
	case "large":
		return sizeFontName(step.size)
	}
	return "Size4-Regular"
}

// traverseSequence walks a growth sequence until it finds a variant at
// least as tall as height. Small styles below the current style are
// skipped, since growing into them would shrink the delimiter.
func traverseSequence(delim string, height float64, sequence []delimStep, options Options) delimStep {
	start := 3 - options.Style.Size
	if start > 2 {
		start = 2
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < len(sequence); i++ {
		if sequence[i].kind == "stack" {
			break
		}
		m, ok := delimMetrics(delim, delimStepFont(sequence[i]), sym.MathMode)
		if !ok {
			continue
		}
		heightDepth := m.Height + m.Depth
		if sequence[i].kind == "small" {
			newOptions := options.HavingBaseStyle(sequence[i].style)
			heightDepth *= newOptions.SizeMultiplier
		}
		if heightDepth > height {
			return sequence[i]
		}
	}
	return sequence[len(sequence)-1]
}

// makeCustomSizedDelim builds a delimiter of at least the given height.
func makeCustomSizedDelim(delim string, height float64, center bool, options Options,
	mode sym.Mode, classes []string) *box.Span {
	delim = normalizeDelim(delim)
	var sequence []delimStep
	switch {
	case stackNeverDelimiters[delim]:
		sequence = stackNeverDelimiterSequence
	case stackLargeDelimiters[delim]:
		sequence = stackLargeDelimiterSequence
	default:
		sequence = stackAlwaysDelimiterSequence
	}
	step := traverseSequence(delim, height, sequence, options)
	switch step.kind {
	case "small":
		return makeSmallDelim(delim, step.style, center, options, mode, classes)
	case "large":
		return makeLargeDelim(delim, step.size, center, options, mode, classes)
	}
	return makeStackedDelim(delim, height, center, options, mode, classes)
}

// TeX's rule 19 parameters: a \left\right delimiter must cover at
// least 901/1000 of the content past the axis, and may fall short of
// full coverage by at most 5pt.
const delimiterFactor = 901

// makeLeftRightDelim sizes a delimiter for content of the given height
// and depth around the axis.
func makeLeftRightDelim(delim string, height, depth float64, options Options,
	mode sym.Mode, classes []string) *box.Span {
	axisHeight := options.FontMetrics().AxisHeight * options.SizeMultiplier
	delimiterExtend := 5.0 / options.FontMetrics().PtPerEm
	maxDistFromAxis := math.Max(height-axisHeight, depth+axisHeight)
	totalHeight := math.Max(maxDistFromAxis/500*delimiterFactor,
		2*maxDistFromAxis-delimiterExtend)
	return makeCustomSizedDelim(delim, totalHeight, true, options, mode, classes)
}

// makeSizedDelim builds a \big..\Bigg delimiter of the given size
// class.
func makeSizedDelim(delim string, size int, options Options, mode sym.Mode,
	classes []string, span *tex.SourceSpan) (*box.Span, error) {
	delim = normalizeDelim(delim)
	switch {
	case stackLargeDelimiters[delim], stackNeverDelimiters[delim]:
		return makeLargeDelim(delim, size, false, options, mode, classes), nil
	case stackAlwaysDelimiters[delim]:
		return makeStackedDelim(delim, sizeToMaxHeight[size], false, options, mode, classes), nil
	}
	return nil, tex.NewParseError("illegal delimiter: '"+delim+"'", span)
}

// sqrtImage builds the stretched surd for a radical of at least the
// given height, returning the advance the radicand must clear and the
// thickness of the vinculum.
func sqrtImage(height float64, options Options) (span *box.Span, advanceWidth, ruleWidth float64) {
	newOptions := options.HavingBaseSizing()
	step := traverseSequence("\\surd", height*newOptions.SizeMultiplier,
		stackLargeDelimiterSequence, newOptions)
	sizeMultiplier := newOptions.SizeMultiplier
	extraVinculum := math.Max(0,
		options.MinRuleThickness-options.FontMetrics().SqrtRuleThickness)

	const vbPad = 80.0  // padding in glyph units above the surd
	const emPad = 0.08  // padding in em

	var spanHeight, texHeight, viewBoxHeight float64
	switch step.kind {
	case "small":
		viewBoxHeight = 1000 + 1000*extraVinculum + vbPad
		if height < 1.0 {
			sizeMultiplier = 1.0
		} else if height < 1.4 {
			sizeMultiplier = 0.7
		}
		spanHeight = (1.0 + extraVinculum + emPad) / sizeMultiplier
		texHeight = (1.0 + extraVinculum) / sizeMultiplier
		span = sqrtSvg("sqrtMain", spanHeight, viewBoxHeight, extraVinculum, options)
		span.Style.MinWidth = "0.853em"
		advanceWidth = 0.833 / sizeMultiplier
	case "large":
		viewBoxHeight = (1000 + vbPad) * sizeToMaxHeight[step.size]
		texHeight = (sizeToMaxHeight[step.size] + extraVinculum) / sizeMultiplier
		spanHeight = (sizeToMaxHeight[step.size] + extraVinculum + emPad) / sizeMultiplier
		span = sqrtSvg("sqrtSize"+itoa(step.size), spanHeight, viewBoxHeight, extraVinculum, options)
		span.Style.MinWidth = "1.02em"
		advanceWidth = 1.0 / sizeMultiplier
	default:
		spanHeight = height + extraVinculum + emPad
		texHeight = height + extraVinculum
		viewBoxHeight = math.Floor(1000*height+extraVinculum) + vbPad
		span = sqrtSvg("sqrtTall", spanHeight, viewBoxHeight, extraVinculum, options)
		span.Style.MinWidth = "0.742em"
		advanceWidth = 1.056
	}
	span.Height = texHeight
	span.Style.Height = box.Em(spanHeight)
	ruleWidth = (options.FontMetrics().SqrtRuleThickness + extraVinculum) * sizeMultiplier
	return span, advanceWidth, ruleWidth
}

// sqrtSvg renders one of the surd shapes stretched over the full
// width, clipped by the hide-tail class.
func sqrtSvg(sqrtName string, height, viewBoxHeight, extraVinculum float64, options Options) *box.Span {
	path := &box.Path{PathName: sqrtName,
		Alternate: box.SqrtPath(sqrtName, extraVinculum, viewBoxHeight)}
	svg := &box.Svg{
		Children: []box.Box{path},
		Attributes: map[string]string{
			"width":               "400em",
			"height":              box.Em(height),
			"viewBox":             "0 0 400000 " + formatNum(viewBoxHeight),
			"preserveAspectRatio": "xMinYMin slice",
		},
	}
	return svgSpan([]string{"hide-tail"}, []box.Box{svg}, options)
}
