package sym

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

func TestLookupByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.sym")
	defer teardown()
	//
	s, ok := Get(MathMode, "\\alpha")
	if !ok {
		t.Fatal("expected \\alpha in the math table")
	}
	if s.Group != MathOrd {
		t.Errorf("expected \\alpha as an ordinary symbol, got %v", s.Group)
	}
	if s.Replace != 'α' {
		t.Errorf("expected the greek glyph as replacement, got %q", s.Replace)
	}
}

func TestLookupByGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.sym")
	defer teardown()
	//
	// The replacement glyph is an alternative spelling of the name.
	byName, _ := Get(MathMode, "\\leq")
	byGlyph, ok := Get(MathMode, "≤")
	if !ok {
		t.Fatal("expected unicode input accepted")
	}
	if byName != byGlyph {
		t.Errorf("expected identical entries, got %v and %v", byName, byGlyph)
	}
}

func TestAtomFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.sym")
	defer teardown()
	//
	cases := map[string]Group{
		"+":      Bin,
		"=":      Rel,
		"(":      Open,
		")":      Close,
		",":      Punct,
		"\\sum":  Op,
		"\\frown": Rel,
	}
	for name, want := range cases {
		s, ok := Get(MathMode, name)
		if !ok {
			t.Errorf("expected %q in the math table", name)
			continue
		}
		if s.Group != want {
			t.Errorf("%q: expected group %v, got %v", name, want, s.Group)
		}
	}
}

func TestModesAreSeparate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.sym")
	defer teardown()
	//
	if _, ok := Get(TextMode, "\\alpha"); ok {
		t.Error("expected \\alpha absent from text mode")
	}
	if !Contains(TextMode, "\\textasciitilde") {
		t.Error("expected text-mode names present")
	}
}

func TestGroupNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.sym")
	defer teardown()
	//
	if MathOrd.String() != "mathord" || Bin.String() != "bin" {
		t.Error("unexpected group name mapping")
	}
	if !Bin.IsAtomFamily() || Spacing.IsAtomFamily() {
		t.Error("unexpected atom family classification")
	}
}
