package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tyse/core/dimen"

	"github.com/npillmayer/mathbox/tex"
)

// du converts a non-integral scaled-point value to dimen.DU at runtime,
// avoiding Go's constant-conversion-truncation restriction.
func du(f float64) dimen.DU {
	return dimen.DU(f)
}

// spPerUnit gives each absolute TeX unit in scaled points. The ratios
// are the classic TeX ones (tex.web §458).
var spPerUnit = map[string]dimen.DU{
	"sp": 1,
	"pt": dimen.PT,
	"bp": du(float64(dimen.PT) * 803.0 / 800.0),
	"px": du(float64(dimen.PT) * 803.0 / 800.0),
	"mm": du(float64(dimen.PT) * 7227.0 / 2540.0),
	"cm": du(float64(dimen.PT) * 7227.0 / 254.0),
	"in": du(float64(dimen.PT) * 72.27),
	"pc": dimen.PT * 12,
	"dd": du(float64(dimen.PT) * 1238.0 / 1157.0),
	"cc": du(float64(dimen.PT) * 14856.0 / 1157.0),
	"nd": du(float64(dimen.PT) * 685.0 / 642.0),
	"nc": du(float64(dimen.PT) * 1370.0 / 107.0),
}

// CalculateSize converts a measurement into CSS em, relative to the
// current size and style. Absolute units go through their scaled-point
// sizes; em, ex and mu resolve against the font parameters, with ex and
// em measured at text size when the current style is tight. The result
// is capped at the configured maximum size.
func CalculateSize(m tex.Measurement, options Options) float64 {
	var scale float64
	if sp, ok := spPerUnit[m.Unit]; ok {
		pt := float64(sp) / float64(dimen.PT)
		scale = pt / options.FontMetrics().PtPerEm / options.SizeMultiplier
	} else if m.Unit == "mu" {
		scale = options.FontMetrics().CssEmPerMu
	} else {
		unitOptions := options
		if options.Style.IsTight() {
			unitOptions = options.HavingStyle(options.Style.Text())
		}
		if m.Unit == "ex" {
			scale = unitOptions.FontMetrics().XHeight
		} else {
			scale = unitOptions.FontMetrics().Quad
		}
		if unitOptions.Size != options.Size {
			scale *= unitOptions.SizeMultiplier / options.SizeMultiplier
		}
	}
	size := m.Number * scale
	if size > options.MaxSize {
		size = options.MaxSize
	}
	return size
}
