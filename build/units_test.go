package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"testing"

	"github.com/npillmayer/mathbox/tex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassicUnitRatios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	options := NewOptions(TextStyle, math.Inf(1), 0, "")
	inch := CalculateSize(tex.Measurement{Number: 1, Unit: "in"}, options)
	pts := CalculateSize(tex.Measurement{Number: 72.27, Unit: "pt"}, options)
	if math.Abs(inch-pts) > 1e-6 {
		t.Errorf("expected 1in = 72.27pt, got %v vs %v", inch, pts)
	}
	pica := CalculateSize(tex.Measurement{Number: 1, Unit: "pc"}, options)
	twelve := CalculateSize(tex.Measurement{Number: 12, Unit: "pt"}, options)
	if math.Abs(pica-twelve) > 1e-6 {
		t.Errorf("expected 1pc = 12pt, got %v vs %v", pica, twelve)
	}
}

func TestEmResolvesAgainstQuad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	options := NewOptions(TextStyle, math.Inf(1), 0, "")
	em := CalculateSize(tex.Measurement{Number: 1, Unit: "em"}, options)
	if math.Abs(em-options.FontMetrics().Quad) > 1e-9 {
		t.Errorf("expected 1em = quad width, got %v", em)
	}
}

func TestMuResolvesAtScriptProportion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	options := NewOptions(TextStyle, math.Inf(1), 0, "")
	mu := CalculateSize(tex.Measurement{Number: 18, Unit: "mu"}, options)
	if math.Abs(mu-18*options.FontMetrics().CssEmPerMu) > 1e-9 {
		t.Errorf("expected mu measured in 1/18 em, got %v", mu)
	}
}

func TestTightStyleMeasuresEmAtTextSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	text := NewOptions(TextStyle, math.Inf(1), 0, "")
	script := text.HavingStyle(ScriptStyle)
	m := tex.Measurement{Number: 1, Unit: "em"}
	got := CalculateSize(m, script) * script.SizeMultiplier
	want := CalculateSize(m, text) * text.SizeMultiplier
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected em sizes anchored at text size, got %v vs %v", got, want)
	}
}
