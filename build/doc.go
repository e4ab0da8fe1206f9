/*
Package build turns a parse-node list into rendered output: an HTML box
tree (package box) and a parallel MathML tree (package mml). It carries
the styling state (Style, Options), the font metric lookups, the
inter-atom spacing rules, and one builder per node concern.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package build

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox.build'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox.build")
}
