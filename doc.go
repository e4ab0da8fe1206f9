/*
Package mathbox typesets TeX math expressions. Input is parsed into a
typed node tree, laid out into a tree of styled spans mirroring TeX's
box-and-glue model, and serialized as HTML markup, as MathML, or both.

The pipeline runs in stages, each living in its own package:

	source → tex (lex, expand, parse) → build (layout) → markup

Package sym holds the symbol tables, package metrics the font metric
data the layout works from, package box the visual output tree and
package mml the semantic MathML tree.

The entry points here cover the common cases:

	html, err := mathbox.Render(`\frac{a}{b}`, mathbox.NewSettings())

RenderTree exposes the output trees for callers that post-process the
result, and Parse stops after the parsing stage.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathbox

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox")
}
