/*
Package box holds the visual output tree of the mathbox pipeline: a
closed set of node variants (Span, Anchor, Symbol, Img, Svg, Path, Line,
Fragment) sharing a common geometry record, plus the constructions the
layout engine is made of: spans sized from their children, vertical
lists with five positioning disciplines, struts, and the SVG path
dictionary for stretchy glyphs.

Geometry is measured in em relative to the node's own font size. A
node's Height and Depth together give its vertical extent around the
baseline; serialization turns the geometry into inline CSS on the
emitted markup.

The package knows nothing about parse trees or layout rules; it is the
vocabulary the build package writes its results in.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package box

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox.box'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox.box")
}
