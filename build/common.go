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
	"github.com/npillmayer/mathbox/metrics"
	"github.com/npillmayer/mathbox/sym"
	"github.com/npillmayer/mathbox/tex"
)

// fontInfo pairs a CSS font class with its metric table and the MathML
// mathvariant it corresponds to.
type fontInfo struct {
	variant  string
	fontName string
}

var fontMap = map[string]fontInfo{
	"mathbf":     {"bold", "Main-Bold"},
	"mathrm":     {"normal", "Main-Regular"},
	"textit":     {"italic", "Main-Italic"},
	"textbf":     {"bold", "Main-Bold"},
	"textrm":     {"normal", "Main-Regular"},
	"mathit":     {"italic", "Main-Italic"},
	"mathnormal": {"italic", "Math-Italic"},
	"mathbb":     {"double-struck", "AMS-Regular"},
	"mathcal":    {"script", "Caligraphic-Regular"},
	"mathfrak":   {"fraktur", "Fraktur-Regular"},
	"mathscr":    {"script", "Script-Regular"},
	"mathsf":     {"sans-serif", "SansSerif-Regular"},
	"mathtt":     {"monospace", "Typewriter-Regular"},
}

// lookupSymbol resolves the glyph a symbol name renders as, plus its
// metrics in the given font. Names with a replacement character in the
// symbol table render as that character.
func lookupSymbol(value, fontName string, mode sym.Mode) (string, metrics.CharMetrics, bool) {
	if s, ok := sym.Get(mode, value); ok && s.Replace != 0 {
		value = string(s.Replace)
	}
	var m metrics.CharMetrics
	var ok bool
	for _, r := range value {
		m, ok = metrics.Lookup(fontName, r)
		break
	}
	return value, m, ok
}

// makeSymbol builds a symbol box with metrics from the named font.
// Symbols without metrics still render, with zero extent.
func makeSymbol(value, fontName string, mode sym.Mode, options Options, classes []string) *box.Symbol {
	value, m, ok := lookupSymbol(value, fontName, mode)
	symbol := &box.Symbol{Text: value}
	symbol.Classes = classes
	if ok {
		italic := m.Italic
		if mode == sym.TextMode || options.Font == "mathit" {
			italic = 0
		}
		symbol.Height = m.Height
		symbol.Depth = m.Depth
		symbol.Italic = italic
		symbol.Skew = m.Skew
		symbol.Width = m.Width
	} else {
		tracer().Infof("no character metrics for %q in font %q (%s mode)", value, fontName, mode)
	}
	symbol.MaxFontSize = options.SizeMultiplier
	if options.Style.IsTight() {
		symbol.Classes = append(symbol.Classes, "mtight")
	}
	if color := options.PaintColor(); color != "" {
		symbol.Style.Color = color
	}
	return symbol
}

// mathsym builds a symbol in the roman face, for operators and
// delimiters that never italicize.
func mathsym(value string, mode sym.Mode, options Options, classes []string) *box.Symbol {
	if options.Font == "boldsymbol" {
		if _, _, ok := lookupSymbol(value, "Main-Bold", mode); ok {
			return makeSymbol(value, "Main-Bold", mode, options, appendClasses(classes, []string{"mathbf"}))
		}
	}
	s, _ := sym.Get(mode, value)
	if value == "\\" || s.Font == sym.Main {
		return makeSymbol(value, "Main-Regular", mode, options, classes)
	}
	return makeSymbol(value, "AMS-Regular", mode, options, appendClasses(classes, []string{"amsrm"}))
}

// boldsymbolFont picks the face \boldsymbol renders a character in:
// bold italic when the math italic face covers it, plain bold
// otherwise.
func boldsymbolFont(value string, mode sym.Mode) fontInfo {
	if _, _, ok := lookupSymbol(value, "Math-BoldItalic", mode); ok {
		return fontInfo{variant: "bold-italic", fontName: "Math-BoldItalic"}
	}
	return fontInfo{variant: "bold", fontName: "Main-Bold"}
}

// textFontName composes a metric table name from a text font family,
// weight and shape.
func textFontName(fontFamily, fontWeight, fontShape string) string {
	var base string
	switch fontFamily {
	case "amsrm":
		base = "AMS"
	case "textrm":
		base = "Main"
	case "textsf":
		base = "SansSerif"
	case "texttt":
		base = "Typewriter"
	default:
		base = strings.TrimPrefix(fontFamily, "text")
	}
	var styles string
	switch {
	case fontWeight == "textbf" && fontShape == "textit":
		styles = "BoldItalic"
	case fontWeight == "textbf":
		styles = "Bold"
	case fontShape == "textit":
		styles = "Italic"
	default:
		styles = "Regular"
	}
	return base + "-" + styles
}

// makeOrd builds an ordinary symbol, selecting the face from the
// current font options, with the math italic (for mathords) or the
// roman face (for textords) as the default.
func makeOrd(text string, mode sym.Mode, options Options, classes []string, mathord bool) box.Box {
	isFont := mode == sym.MathMode || (mode == sym.TextMode && options.Font != "")
	fontOrFamily := options.FontFamily
	if isFont {
		fontOrFamily = options.Font
	}
	if fontOrFamily != "" {
		var fontName string
		var fontClasses []string
		if fontOrFamily == "boldsymbol" {
			fi := boldsymbolFont(text, mode)
			fontName = fi.fontName
			if fi.variant == "bold-italic" {
				fontClasses = []string{"boldsymbol"}
			} else {
				fontClasses = []string{"mathbf"}
			}
		} else if isFont {
			fontName = fontMap[fontOrFamily].fontName
			fontClasses = []string{fontOrFamily}
		} else {
			fontName = textFontName(fontOrFamily, options.FontWeight, options.FontShape)
			fontClasses = []string{fontOrFamily, options.FontWeight, options.FontShape}
		}
		if _, _, ok := lookupSymbol(text, fontName, mode); ok {
			return makeSymbol(text, fontName, mode, options, appendClasses(classes, fontClasses))
		}
		if sym.LigatureRunes(firstRune(text)) && strings.HasPrefix(fontName, "Typewriter") {
			// Typewriter face has no f-ligatures; split the run so the
			// host engine cannot form them either.
			parts := make([]box.Box, 0, len(text))
			for _, r := range text {
				parts = append(parts, makeSymbol(string(r), fontName, mode, options, appendClasses(classes, fontClasses)))
			}
			return box.MakeFragment(parts)
		}
	}
	if mathord {
		return makeSymbol(text, "Math-Italic", mode, options, appendClasses(classes, []string{"mathnormal"}))
	}
	s, known := sym.Get(mode, text)
	if known && s.Font == sym.AMS {
		fontName := textFontName("amsrm", options.FontWeight, options.FontShape)
		return makeSymbol(text, fontName, mode, options,
			appendClasses(classes, []string{"amsrm", options.FontWeight, options.FontShape}))
	}
	fontName := textFontName("textrm", options.FontWeight, options.FontShape)
	return makeSymbol(text, fontName, mode, options,
		appendClasses(classes, []string{options.FontWeight, options.FontShape}))
}

func appendClasses(classes, more []string) []string {
	out := make([]string, 0, len(classes)+len(more))
	out = append(out, classes...)
	for _, c := range more {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// canCombine reports whether two symbol boxes may be merged into one.
func canCombine(prev, next *box.Symbol) bool {
	if strings.Join(prev.Classes, " ") != strings.Join(next.Classes, " ") ||
		prev.Skew != next.Skew || prev.MaxFontSize != next.MaxFontSize {
		return false
	}
	// Bare mbin and mord symbols stay separate so their spacing is kept.
	if len(prev.Classes) == 1 {
		c := prev.Classes[0]
		if c == "mbin" || c == "mord" {
			return false
		}
	}
	return prev.Style == next.Style
}

// TryCombineChars merges adjacent compatible symbols into single boxes,
// shrinking the output markup.
func TryCombineChars(children []box.Box) []box.Box {
	out := children[:0]
	for _, child := range children {
		if len(out) > 0 {
			prev, okPrev := out[len(out)-1].(*box.Symbol)
			next, okNext := child.(*box.Symbol)
			if okPrev && okNext && canCombine(prev, next) {
				prev.Text += next.Text
				prev.Height = max(prev.Height, next.Height)
				prev.Depth = max(prev.Depth, next.Depth)
				// Use the last character's italic correction; the
				// preceding ones are now mid-word.
				prev.Italic = next.Italic
				continue
			}
		}
		out = append(out, child)
	}
	return out
}

// makeSpan builds a span over children, applying the current color.
func makeSpan(classes []string, children []box.Box, options Options) *box.Span {
	span := box.MakeSpan(classes, children)
	if color := options.PaintColor(); color != "" {
		span.Style.Color = color
	}
	return span
}

// makeLineSpan builds the horizontal rule spans used by fractions and
// radicals. Line thickness never drops under the configured minimum.
func makeLineSpan(className string, options Options, thickness float64) *box.Span {
	if thickness == 0 {
		thickness = options.FontMetrics().DefaultRuleThickness
	}
	if thickness < options.MinRuleThickness {
		thickness = options.MinRuleThickness
	}
	line := makeSpan([]string{className}, nil, options)
	line.Height = thickness
	line.Style.BorderBottomWidth = box.Em(line.Height)
	line.MaxFontSize = 1.0
	return line
}

// makeGlue builds fixed horizontal space as an empty span with a
// margin.
func makeGlue(m tex.Measurement, options Options) *box.Span {
	rule := makeSpan([]string{"mspace"}, nil, options)
	size := CalculateSize(m, options)
	rule.Style.MarginRight = box.Em(size)
	return rule
}

// svgSpan wraps svg children in a span that carries their size.
func svgSpan(classes []string, children []box.Box, options Options) *box.Span {
	span := &box.Span{}
	span.Classes = classes
	span.Children = children
	if options.Style.IsTight() {
		span.Classes = append(span.Classes, "mtight")
	}
	return span
}

// staticSvgSizes gives the design size of the fixed svg images.
var staticSvgSizes = map[string][2]float64{
	"vec":   {0.471, 0.714},
	"phase": {0.6, 1.2},
}

// StaticSvg builds one of the fixed-size svg images.
func StaticSvg(value string, options Options) *box.Span {
	size := staticSvgSizes[value]
	width, height := size[0], size[1]
	path := &box.Path{PathName: value}
	svg := &box.Svg{
		Children: []box.Box{path},
		Attributes: map[string]string{
			"width":               box.Em(width),
			"height":              box.Em(height),
			"style":               "width:" + box.Em(width),
			"viewBox":             "0 0 " + formatNum(width*1000) + " " + formatNum(height*1000),
			"preserveAspectRatio": "xMinYMin",
		},
	}
	span := svgSpan([]string{"overlay"}, []box.Box{svg}, options)
	span.Height = height
	span.Style.Height = box.Em(height)
	span.Style.Width = box.Em(width)
	return span
}

func formatNum(n float64) string {
	s := strconv.FormatFloat(n, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
