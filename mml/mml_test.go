package mml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestElementXML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.mml")
	defer teardown()
	//
	mi := NewElement("mi", NewText("x"))
	mi.SetAttribute("mathvariant", "normal")
	got := mi.XML()
	if got != `<mi mathvariant="normal">x</mi>` {
		t.Errorf("unexpected serialization: %s", got)
	}
}

func TestElementNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.mml")
	defer teardown()
	//
	row := NewElement("mrow",
		NewElement("mi", NewText("x")),
		NewElement("mo", NewText("+")),
		NewElement("mn", NewText("2")),
	)
	got := row.XML()
	if got != "<mrow><mi>x</mi><mo>+</mo><mn>2</mn></mrow>" {
		t.Errorf("unexpected serialization: %s", got)
	}
}

func TestTextEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.mml")
	defer teardown()
	//
	mo := NewElement("mo", NewText("<"))
	if got := mo.XML(); got != "<mo>&lt;</mo>" {
		t.Errorf("expected escaped content, got %s", got)
	}
	mo.SetAttribute("title", `a"b`)
	if !strings.Contains(mo.XML(), "&quot;") {
		t.Errorf("expected escaped attribute, got %s", mo.XML())
	}
}

func TestElementText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.mml")
	defer teardown()
	//
	row := NewElement("mrow",
		NewElement("mi", NewText("s")),
		NewElement("mi", NewText("in")),
	)
	if got := row.Text(); got != "sin" {
		t.Errorf("expected flattened text 'sin', got %q", got)
	}
}

func TestAttributeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.mml")
	defer teardown()
	//
	e := NewElement("mo")
	if e.Attribute("stretchy") != "" {
		t.Error("expected no attribute before setting")
	}
	e.SetAttribute("stretchy", "true")
	if e.Attribute("stretchy") != "true" {
		t.Error("expected the recorded attribute back")
	}
}

func TestSpaceUsesCharactersForCommonWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.mml")
	defer teardown()
	//
	thin := NewSpace(3.0 / 18)
	if got := thin.XML(); !strings.HasPrefix(got, "<mtext>") {
		t.Errorf("expected a character for thin glue, got %s", got)
	}
	odd := NewSpace(0.375)
	if got := odd.XML(); !strings.Contains(got, "<mspace") ||
		!strings.Contains(got, "width=") {
		t.Errorf("expected an explicit mspace, got %s", got)
	}
}
