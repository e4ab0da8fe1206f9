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
	"github.com/npillmayer/mathbox/tex"
)

// stretchyImage describes how a stretchable notation is assembled from
// the path dictionary: one path stretched over the whole width, two
// half arrows, or a three-part brace.
type stretchyImage struct {
	paths         []string
	minWidth      float64
	viewBoxHeight float64
	align         string // one-path images only
}

var stretchyImages = map[string]stretchyImage{
	"overrightarrow":      {[]string{"rightarrow"}, 0.888, 522, "xMaxYMin"},
	"overleftarrow":       {[]string{"leftarrow"}, 0.888, 522, "xMinYMin"},
	"underrightarrow":     {[]string{"rightarrow"}, 0.888, 522, "xMaxYMin"},
	"underleftarrow":      {[]string{"leftarrow"}, 0.888, 522, "xMinYMin"},
	"xrightarrow":         {[]string{"rightarrow"}, 1.469, 522, "xMaxYMin"},
	"xleftarrow":          {[]string{"leftarrow"}, 1.469, 522, "xMinYMin"},
	"Overrightarrow":      {[]string{"doublerightarrow"}, 0.888, 560, "xMaxYMin"},
	"xRightarrow":         {[]string{"doublerightarrow"}, 1.526, 560, "xMaxYMin"},
	"xLeftarrow":          {[]string{"doubleleftarrow"}, 1.526, 560, "xMinYMin"},
	"overleftharpoon":     {[]string{"leftharpoon"}, 0.888, 522, "xMinYMin"},
	"xleftharpoonup":      {[]string{"leftharpoon"}, 0.888, 522, "xMinYMin"},
	"overrightharpoon":    {[]string{"rightharpoon"}, 0.888, 522, "xMaxYMin"},
	"xrightharpoonup":     {[]string{"rightharpoon"}, 0.888, 522, "xMaxYMin"},
	"overleftrightarrow":  {[]string{"leftarrow", "rightarrow"}, 0.888, 522, ""},
	"underleftrightarrow": {[]string{"leftarrow", "rightarrow"}, 0.888, 522, ""},
	"xleftrightarrow":     {[]string{"leftarrow", "rightarrow"}, 1.75, 522, ""},
	"xLeftrightarrow":     {[]string{"doubleleftarrow", "doublerightarrow"}, 1.75, 560, ""},
	"overbrace":           {[]string{"leftbrace", "midbrace", "rightbrace"}, 1.6, 548, ""},
	"underbrace":          {[]string{"leftbraceunder", "midbraceunder", "rightbraceunder"}, 1.6, 548, ""},
}

// groupLength counts the characters a wide accent must cover.
func groupLength(arg tex.Node) int {
	if g, ok := arg.(*tex.OrdGroup); ok {
		return len(g.Body)
	}
	return 1
}

// wideAccentData picks the path variant of a wide hat, check or tilde
// for the number of covered characters.
func wideAccentData(label string, numChars int) (pathName string, width, vbWidth, vbHeight float64) {
	if numChars > 5 {
		if label == "widehat" || label == "widecheck" {
			return label + "4", 0.42, 2364, 420
		}
		return "tilde4", 0.34, 2340, 312
	}
	imgIndex := [6]int{1, 1, 2, 2, 3, 3}[numChars]
	if label == "widehat" || label == "widecheck" {
		vbWidth = [4]float64{0, 1062, 2364, 2364}[imgIndex]
		vbHeight = [4]float64{0, 239, 300, 360}[imgIndex]
		width = [4]float64{0, 0.24, 0.3, 0.3}[imgIndex]
		return label + itoa(imgIndex), width, vbWidth, vbHeight
	}
	vbWidth = [4]float64{0, 600, 1033, 2339}[imgIndex]
	vbHeight = [4]float64{0, 260, 286, 306}[imgIndex]
	width = [4]float64{0, 0.26, 0.286, 0.3}[imgIndex]
	return "tilde" + itoa(imgIndex), width, vbWidth, vbHeight
}

// stretchySvgSpan builds the stretched SVG for an accent, brace or
// arrow notation. base is consulted for the width class of wide
// accents only.
func stretchySvgSpan(label string, base tex.Node, options Options) *box.Span {
	label = strings.TrimPrefix(label, "\\")
	var span *box.Span
	var minWidth, height float64

	switch label {
	case "widehat", "widecheck", "widetilde", "utilde":
		numChars := groupLength(base)
		pathName, h, vbWidth, vbHeight := wideAccentData(label, numChars)
		height = h
		path := &box.Path{PathName: pathName}
		svg := &box.Svg{
			Children: []box.Box{path},
			Attributes: map[string]string{
				"width":               "100%",
				"height":              box.Em(height),
				"viewBox":             "0 0 " + formatNum(vbWidth) + " " + formatNum(vbHeight),
				"preserveAspectRatio": "none",
			},
		}
		span = svgSpan(nil, []box.Box{svg}, options)
	default:
		data, ok := stretchyImages[label]
		if !ok {
			tracer().Errorf("no stretchy image for %q", label)
			return svgSpan([]string{"stretchy"}, nil, options)
		}
		minWidth = data.minWidth
		height = data.viewBoxHeight / 1000
		var widthClasses, aligns []string
		switch len(data.paths) {
		case 1:
			widthClasses = []string{"hide-tail"}
			aligns = []string{data.align}
		case 2:
			widthClasses = []string{"halfarrow-left", "halfarrow-right"}
			aligns = []string{"xMinYMin", "xMaxYMin"}
		default:
			widthClasses = []string{"brace-left", "brace-center", "brace-right"}
			aligns = []string{"xMinYMin", "xMidYMin", "xMaxYMin"}
		}
		var spans []box.Box
		for i, pathName := range data.paths {
			path := &box.Path{PathName: pathName}
			svg := &box.Svg{
				Children: []box.Box{path},
				Attributes: map[string]string{
					"width":               "400em",
					"height":              box.Em(height),
					"viewBox":             "0 0 400000 " + formatNum(data.viewBoxHeight),
					"preserveAspectRatio": aligns[i] + " slice",
				},
			}
			part := svgSpan([]string{widthClasses[i]}, []box.Box{svg}, options)
			if len(data.paths) == 1 {
				span = part
				break
			}
			part.Style.Height = box.Em(height)
			spans = append(spans, part)
		}
		if span == nil {
			span = svgSpan([]string{"stretchy"}, spans, options)
		}
	}

	span.Height = height
	span.Style.Height = box.Em(height)
	if minWidth > 0 {
		span.Style.MinWidth = box.Em(minWidth)
	}
	return span
}

// encloseSpan builds the overlay of an enclosing notation: a styled
// box for the framed variants, crossing-out lines for the cancels.
func encloseSpan(inner box.Box, label string, topPad, bottomPad float64, options Options) *box.Span {
	var img *box.Span
	ig := inner.Geometry()
	totalHeight := ig.Height + ig.Depth + topPad + bottomPad

	if strings.Contains(label, "fbox") || strings.Contains(label, "color") || label == "angl" {
		img = makeSpan([]string{"stretchy", label}, nil, options)
		if label == "fbox" && options.Color != "" {
			img.Style.BorderColor = options.Color
		}
	} else {
		// The lines carry no viewBox, so their stroke width stays fixed
		// under stretching.
		var lines []box.Box
		if label == "bcancel" || label == "xcancel" {
			falling := &box.Line{Attributes: map[string]string{
				"x1": "0", "y1": "0", "x2": "100%", "y2": "100%",
				"stroke-width": "0.046em",
			}}
			lines = append(lines, falling)
		}
		if label == "cancel" || label == "xcancel" {
			rising := &box.Line{Attributes: map[string]string{
				"x1": "0", "y1": "100%", "x2": "100%", "y2": "0",
				"stroke-width": "0.046em",
			}}
			lines = append(lines, rising)
		}
		svg := &box.Svg{
			Children: lines,
			Attributes: map[string]string{
				"width":               "100%",
				"height":              box.Em(totalHeight),
				"preserveAspectRatio": "none",
			},
		}
		img = makeSpan(nil, []box.Box{svg}, options)
	}

	img.Height = totalHeight
	img.Style.Height = box.Em(totalHeight)
	return img
}
