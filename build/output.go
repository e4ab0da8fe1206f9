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
	"github.com/npillmayer/mathbox/tex"
)

// Output is the result of a render run: the visual box tree, the
// semantic MathML tree, or both, depending on the requested output
// format. Clients may walk the trees directly or serialize them with
// Markup.
type Output struct {
	HTML   *box.Span
	MathML *mml.Element

	displayMode bool
	leqno       bool
	fleqn       bool
}

// Build lays out a parsed expression. The initial style is display or
// text per the settings, and the output trees are produced according to
// the settings' output format.
func Build(tree []tex.Node, expr string, settings *tex.Settings) (*Output, error) {
	style := TextStyle
	if settings.DisplayMode {
		style = DisplayStyle
	}
	options := NewOptions(style, settings.EffectiveMaxSize(),
		settings.MinRuleThickness, "")

	out := &Output{
		displayMode: settings.DisplayMode,
		leqno:       settings.Leqno,
		fleqn:       settings.Fleqn,
	}
	format := settings.EffectiveOutput()
	if format != tex.OutputMathML {
		html, err := buildHTML(tree, options)
		if err != nil {
			return nil, err
		}
		out.HTML = html
	}
	if format != tex.OutputHTML {
		mathml, err := buildMathML(tree, expr, options, settings.DisplayMode)
		if err != nil {
			return nil, err
		}
		out.MathML = mathml
	}
	return out, nil
}

// BuildParseError renders the raw input as an error-colored leaf. Used
// in place of Build when the settings allow recovering from a parse
// error instead of returning it.
func BuildParseError(perr *tex.ParseError, expr string, settings *tex.Settings) *Output {
	out := &Output{
		displayMode: settings.DisplayMode,
		leqno:       settings.Leqno,
		fleqn:       settings.Fleqn,
	}
	format := settings.EffectiveOutput()
	if format != tex.OutputMathML {
		span := box.MakeSpan([]string{"katex-error"},
			[]box.Box{&box.Symbol{Text: expr}})
		span.SetAttribute("title", perr.Error())
		span.Style.Color = settings.EffectiveErrorColor()
		out.HTML = span
	}
	if format != tex.OutputHTML {
		merror := mml.NewElement("merror", mml.NewText(expr))
		merror.SetAttribute("title", perr.Error())
		math := mml.NewElement("math", merror)
		math.SetAttribute("xmlns", "http://www.w3.org/1998/Math/MathML")
		out.MathML = math
	}
	return out
}

// Markup serializes the output. With both trees present the MathML sits
// first, visually hidden, so screen readers pick up the semantic tree
// while sighted users see the box rendering.
func (o *Output) Markup() string {
	var b strings.Builder
	if o.displayMode {
		classes := []string{"katex-display"}
		if o.leqno {
			classes = append(classes, "leqno")
		}
		if o.fleqn {
			classes = append(classes, "fleqn")
		}
		b.WriteString(`<span class="` + strings.Join(classes, " ") + `">`)
	}
	b.WriteString(`<span class="katex">`)
	switch {
	case o.HTML != nil && o.MathML != nil:
		b.WriteString(`<span class="katex-mathml">`)
		b.WriteString(o.MathML.XML())
		b.WriteString(`</span>`)
		b.WriteString(o.HTML.HTML())
	case o.MathML != nil:
		b.WriteString(o.MathML.XML())
	case o.HTML != nil:
		b.WriteString(o.HTML.HTML())
	}
	b.WriteString(`</span>`)
	if o.displayMode {
		b.WriteString(`</span>`)
	}
	return b.String()
}
