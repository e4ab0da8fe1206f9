package box

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
)

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape makes text safe for element content and attribute values.
func Escape(text string) string {
	return markupEscaper.Replace(text)
}

func writeClasses(sb *strings.Builder, classes []string) {
	var nonEmpty []string
	for _, c := range classes {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	if len(nonEmpty) == 0 {
		return
	}
	sb.WriteString(` class="`)
	sb.WriteString(Escape(strings.Join(nonEmpty, " ")))
	sb.WriteString(`"`)
}

func writeStyle(sb *strings.Builder, css *CSS, extra string) {
	props := css.cssProps()
	if len(props) == 0 && extra == "" {
		return
	}
	sb.WriteString(` style="`)
	sb.WriteString(Escape(extra))
	for _, p := range props {
		sb.WriteString(Escape(p[0] + ":" + p[1] + ";"))
	}
	sb.WriteString(`"`)
}

// writeAttributes emits attributes sorted by name, so markup is stable
// across runs.
func writeAttributes(sb *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(Escape(attrs[name]))
		sb.WriteString(`"`)
	}
}

// HTML serializes the span and its children.
func (s *Span) HTML() string {
	var sb strings.Builder
	sb.WriteString("<span")
	writeClasses(&sb, s.Classes)
	style := s.Style
	if s.Width != nil {
		style.Width = Em(*s.Width)
	}
	writeStyle(&sb, &style, "")
	writeAttributes(&sb, s.Attributes)
	sb.WriteString(">")
	for _, child := range s.Children {
		sb.WriteString(child.HTML())
	}
	sb.WriteString("</span>")
	return sb.String()
}

// HTML serializes the anchor and its children.
func (a *Anchor) HTML() string {
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(Escape(a.Href))
	sb.WriteString(`"`)
	writeClasses(&sb, a.Classes)
	writeStyle(&sb, &a.Style, "")
	writeAttributes(&sb, a.Attributes)
	sb.WriteString(">")
	for _, child := range a.Children {
		sb.WriteString(child.HTML())
	}
	sb.WriteString("</a>")
	return sb.String()
}

// HTML serializes the fragment's children with no wrapper of its own.
func (f *Fragment) HTML() string {
	var sb strings.Builder
	for _, child := range f.Children {
		sb.WriteString(child.HTML())
	}
	return sb.String()
}

// HTML serializes the symbol. A bare text run needs no element; classes
// or styling force a span wrapper.
func (s *Symbol) HTML() string {
	italic := ""
	if s.Italic > 0 {
		italic = "margin-right:" + Em(s.Italic) + ";"
	}
	var probe strings.Builder
	writeClasses(&probe, s.Classes)
	writeStyle(&probe, &s.Style, italic)
	attrs := probe.String()
	if attrs == "" {
		return Escape(s.Text)
	}
	return "<span" + attrs + ">" + Escape(s.Text) + "</span>"
}

// HTML serializes the image with properly quoted attributes.
func (i *Img) HTML() string {
	var sb strings.Builder
	sb.WriteString(`<img src="`)
	sb.WriteString(Escape(i.Src))
	sb.WriteString(`" alt="`)
	sb.WriteString(Escape(i.Alt))
	sb.WriteString(`"`)
	writeClasses(&sb, i.Classes)
	writeStyle(&sb, &i.Style, "")
	sb.WriteString("/>")
	return sb.String()
}

// HTML serializes the SVG subtree.
func (s *Svg) HTML() string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	writeAttributes(&sb, s.Attributes)
	sb.WriteString(">")
	for _, child := range s.Children {
		sb.WriteString(child.HTML())
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// HTML serializes the path, resolving the dictionary unless literal
// data is given.
func (p *Path) HTML() string {
	data := p.Alternate
	if data == "" {
		data = PathData[p.PathName]
	}
	return `<path d="` + Escape(data) + `"/>`
}

// HTML serializes the line segment.
func (l *Line) HTML() string {
	var sb strings.Builder
	sb.WriteString("<line")
	writeAttributes(&sb, l.Attributes)
	sb.WriteString("/>")
	return sb.String()
}
