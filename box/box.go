package box

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// CSS is the closed set of inline style properties a visual node may
// carry. Only non-empty fields are serialized.
type CSS struct {
	BackgroundColor   string
	BorderBottomWidth string
	BorderColor       string
	BorderRightStyle  string
	BorderRightWidth  string
	BorderStyle       string
	BorderTopWidth    string
	BorderWidth       string
	Bottom            string
	Color             string
	Height            string
	Left              string
	MarginLeft        string
	MarginRight       string
	MarginTop         string
	MinWidth          string
	PaddingLeft       string
	Position          string
	Top               string
	Width             string
	VerticalAlign     string
}

// cssProps returns the non-empty properties in a fixed order, keeping
// serialization deterministic.
func (c *CSS) cssProps() [][2]string {
	all := [][2]string{
		{"background-color", c.BackgroundColor},
		{"border-bottom-width", c.BorderBottomWidth},
		{"border-color", c.BorderColor},
		{"border-right-style", c.BorderRightStyle},
		{"border-right-width", c.BorderRightWidth},
		{"border-style", c.BorderStyle},
		{"border-top-width", c.BorderTopWidth},
		{"border-width", c.BorderWidth},
		{"bottom", c.Bottom},
		{"color", c.Color},
		{"height", c.Height},
		{"left", c.Left},
		{"margin-left", c.MarginLeft},
		{"margin-right", c.MarginRight},
		{"margin-top", c.MarginTop},
		{"min-width", c.MinWidth},
		{"padding-left", c.PaddingLeft},
		{"position", c.Position},
		{"top", c.Top},
		{"width", c.Width},
		{"vertical-align", c.VerticalAlign},
	}
	props := all[:0]
	for _, p := range all {
		if p[1] != "" {
			props = append(props, p)
		}
	}
	return props
}

// Em formats a length in em for CSS output, trimming to 4 decimals the
// way browsers round anyway.
func Em(n float64) string {
	s := strconv.FormatFloat(n, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s + "em"
}

// Geom is the common observable record of every visual node: geometry
// in em, semantic classes, and inline style.
type Geom struct {
	Classes     []string
	Height      float64
	Depth       float64
	MaxFontSize float64
	Style       CSS
}

// Geometry exposes the record for mutation by layout code.
func (g *Geom) Geometry() *Geom { return g }

// HasClass reports whether the node carries the class.
func (g *Geom) HasClass(class string) bool {
	for _, c := range g.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Box is a node of the visual output tree. The set of implementations
// is closed; consumers dispatch with a type switch.
type Box interface {
	Geometry() *Geom
	HasClass(class string) bool
	// HTML serializes the subtree to markup.
	HTML() string
}

// --- Variants ---------------------------------------------------------

// Span is the generic container node.
type Span struct {
	Geom
	Children   []Box
	Attributes map[string]string
	// Width overrides the CSS width when set (used by stretchy SVG
	// wrappers that must report an exact advance).
	Width *float64
}

// Anchor renders as a hyperlink. It is transparent to atom-class
// cancellation, like Fragment.
type Anchor struct {
	Geom
	Href       string
	Children   []Box
	Attributes map[string]string
}

// Fragment is an ordered sequence without a container of its own. Its
// children are spliced into the surrounding expression.
type Fragment struct {
	Geom
	Children []Box
}

// Symbol is a single text run with glyph metrics.
type Symbol struct {
	Geom
	Text   string
	Italic float64
	Skew   float64
	Width  float64
}

// Img is a raster image leaf.
type Img struct {
	Geom
	Src string
	Alt string
}

// Svg is an inline SVG subtree; its children are Path and Line nodes.
type Svg struct {
	Geom
	Attributes map[string]string
	Children   []Box
}

// Path references an entry of the path dictionary, or carries literal
// path data when Alternate is set.
type Path struct {
	Geom
	PathName  string
	Alternate string
}

// Line is an SVG line segment.
type Line struct {
	Geom
	Attributes map[string]string
}

// --- Construction -----------------------------------------------------

// sizeFromChildren grows the geometry to cover the children.
func (g *Geom) sizeFromChildren(children []Box) {
	for _, child := range children {
		cg := child.Geometry()
		if cg.Height > g.Height {
			g.Height = cg.Height
		}
		if cg.Depth > g.Depth {
			g.Depth = cg.Depth
		}
		if cg.MaxFontSize > g.MaxFontSize {
			g.MaxFontSize = cg.MaxFontSize
		}
	}
}

// MakeSpan builds a span over children, sized to cover them.
func MakeSpan(classes []string, children []Box) *Span {
	s := &Span{Geom: Geom{Classes: classes}, Children: children}
	s.sizeFromChildren(children)
	return s
}

// MakeAnchor builds an anchor node sized to cover its children.
func MakeAnchor(href string, classes []string, children []Box) *Anchor {
	a := &Anchor{Geom: Geom{Classes: classes}, Href: href, Children: children}
	a.sizeFromChildren(children)
	return a
}

// MakeFragment wraps children without a visual container.
func MakeFragment(children []Box) *Fragment {
	f := &Fragment{Children: children}
	f.sizeFromChildren(children)
	return f
}

// SetAttribute records an HTML attribute on the span.
func (s *Span) SetAttribute(name, value string) {
	if s.Attributes == nil {
		s.Attributes = make(map[string]string)
	}
	s.Attributes[name] = value
}

// SetAttribute records an HTML attribute on the anchor.
func (a *Anchor) SetAttribute(name, value string) {
	if a.Attributes == nil {
		a.Attributes = make(map[string]string)
	}
	a.Attributes[name] = value
}
