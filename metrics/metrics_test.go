package metrics

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLookupKnownGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.metrics")
	defer teardown()
	//
	m, ok := Lookup("Main-Regular", 'x')
	if !ok {
		t.Fatal("expected metrics for 'x' in the main face")
	}
	if m.Width <= 0 || m.Height <= 0 {
		t.Errorf("expected positive extent, got %+v", m)
	}
}

func TestLookupFallsBackInsideSupportedScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.metrics")
	defer teardown()
	//
	// Cyrillic is rendered by the host from a fallback font; the metrics
	// of M stand in.
	m, ok := Lookup("Main-Regular", 'Я')
	if !ok {
		t.Fatal("expected substituted metrics for a supported script")
	}
	em, _ := Lookup("Main-Regular", 'M')
	if m != em {
		t.Errorf("expected the stand-in metrics of M, got %+v", m)
	}
}

func TestUnsupportedCodepoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.metrics")
	defer teardown()
	//
	if SupportedCodepoint('\U0001F600') {
		t.Error("expected emoji outside the supported scripts")
	}
	if _, ok := Lookup("Main-Regular", '\U0001F600'); ok {
		t.Error("expected no metrics outside the supported scripts")
	}
}

func TestFontParamsScaleWithSizeIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.metrics")
	defer teardown()
	//
	text := ParamsForSize(0)
	script := ParamsForSize(1)
	scriptscript := ParamsForSize(2)
	if text.XHeight <= 0 || text.Quad <= 0 {
		t.Errorf("expected positive base parameters, got %+v", text)
	}
	// Smaller optical sizes carry proportionally wider glyph boxes.
	if !(scriptscript.Quad > script.Quad && script.Quad > text.Quad) {
		t.Errorf("expected quad widths to grow toward smaller sizes: %v %v %v",
			text.Quad, script.Quad, scriptscript.Quad)
	}
}

func TestMuIsEighteenthOfQuad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.metrics")
	defer teardown()
	//
	p := ParamsForSize(0)
	if diff := p.CssEmPerMu - p.Quad/18; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected 18mu to the quad, got %v vs %v", p.CssEmPerMu, p.Quad/18)
	}
}
