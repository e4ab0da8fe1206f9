/*
Package metrics carries the font-metric tables the layout engine
measures glyphs against: per-character boxes (height, depth, italic
correction, skew, width, all in em) for each font face, and the
classic TeX font-dimension parameters (σ and ξ values) for the three
metric size classes.

All tables are populated at init time from static data and are
read-only afterwards. The numbers are derived from the Computer Modern
font files; they are configuration data, not code, and the engine never
computes them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox.metrics'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox.metrics")
}
