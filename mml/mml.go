package mml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strconv"
	"strings"
)

// Node is one node of the semantic tree: an element, a text leaf, or a
// space.
type Node interface {
	// XML serializes the subtree.
	XML() string
	// Text flattens the subtree to its character content.
	Text() string
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape makes text safe for element content and attribute values.
func Escape(text string) string {
	return xmlEscaper.Replace(text)
}

// Element is a MathML element with ordered children.
type Element struct {
	Tag        string
	Children   []Node
	Classes    []string
	attributes map[string]string
}

// NewElement builds an element over children.
func NewElement(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// SetAttribute records an attribute.
func (e *Element) SetAttribute(name, value string) {
	if e.attributes == nil {
		e.attributes = make(map[string]string)
	}
	e.attributes[name] = value
}

// Attribute reads an attribute; empty if unset.
func (e *Element) Attribute(name string) string {
	return e.attributes[name]
}

// XML serializes the element; attributes are emitted sorted so output
// is stable.
func (e *Element) XML() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.Tag)
	if len(e.Classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(Escape(strings.Join(e.Classes, " ")))
		sb.WriteString(`"`)
	}
	names := make([]string, 0, len(e.attributes))
	for name := range e.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(Escape(e.attributes[name]))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	for _, child := range e.Children {
		sb.WriteString(child.XML())
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteString(">")
	return sb.String()
}

// Text flattens the element's character content.
func (e *Element) Text() string {
	var sb strings.Builder
	for _, child := range e.Children {
		sb.WriteString(child.Text())
	}
	return sb.String()
}

// TextNode is a character-content leaf.
type TextNode struct {
	Content string
}

// NewText builds a text leaf.
func NewText(text string) *TextNode { return &TextNode{Content: text} }

// XML serializes the escaped text.
func (t *TextNode) XML() string { return Escape(t.Content) }

// Text returns the raw content.
func (t *TextNode) Text() string { return t.Content }

// Space is horizontal room of a given width in em. Common TeX glue
// widths map onto space characters; everything else becomes an
// explicit mspace element.
type Space struct {
	Width float64
}

// NewSpace builds a space node.
func NewSpace(width float64) *Space { return &Space{Width: width} }

// spaceCharacter picks a character for common widths; empty means no
// character fits.
func (s *Space) spaceCharacter() string {
	switch {
	case s.Width >= 0.05555 && s.Width <= 0.05556:
		return " " // 1mu
	case s.Width >= 0.1666 && s.Width <= 0.1667:
		return " " // \,
	case s.Width >= 0.2222 && s.Width <= 0.2223:
		return " " // \:
	case s.Width >= 0.2777 && s.Width <= 0.2778:
		return "  " // \;
	case s.Width >= -0.05556 && s.Width <= -0.05555:
		return " ⁣"
	case s.Width >= -0.1667 && s.Width <= -0.1666:
		return " ⁣"
	case s.Width >= -0.2223 && s.Width <= -0.2222:
		return " ⁣"
	case s.Width >= -0.2778 && s.Width <= -0.2777:
		return " ⁣"
	}
	return ""
}

// XML serializes the space as a character or an mspace element.
func (s *Space) XML() string {
	if c := s.spaceCharacter(); c != "" {
		return "<mtext>" + Escape(c) + "</mtext>"
	}
	return `<mspace width="` + em(s.Width) + `"></mspace>`
}

// Text returns the space character chosen for the width, or a plain
// space when none fits.
func (s *Space) Text() string {
	if c := s.spaceCharacter(); c != "" {
		return c
	}
	return " "
}

func em(n float64) string {
	str := strconv.FormatFloat(n, 'f', 4, 64)
	str = strings.TrimRight(str, "0")
	str = strings.TrimRight(str, ".")
	if str == "" || str == "-" {
		str = "0"
	}
	return str + "em"
}
