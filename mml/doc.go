/*
Package mml holds the semantic output tree of the mathbox pipeline: a
minimal MathML element model (mi, mn, mo, mrow, mfrac, msqrt, mover,
munder, munderover, mtable, mstyle, mtext, …) with text leaves and
width-bearing space nodes, plus XML serialization.

The model is deliberately output-only. Nothing in this package computes
layout; the build package decides tags and attributes, this package
just represents and serializes them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox.mml'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox.mml")
}
