package box

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func fixedBox(height, depth float64) *Span {
	s := MakeSpan(nil, nil)
	s.Height = height
	s.Depth = depth
	s.MaxFontSize = 1
	return s
}

func TestSpanMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	span := MakeSpan([]string{"mord", "mathnormal"}, []Box{
		&Symbol{Text: "x"},
	})
	span.Style.MarginRight = Em(0.2)
	span.SetAttribute("aria-hidden", "true")
	html := span.HTML()
	for _, want := range []string{
		`class="mord mathnormal"`,
		`style="margin-right:0.2em;"`,
		`aria-hidden="true"`,
		">x</span>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %s in %s", want, html)
		}
	}
}

func TestSymbolEscapesMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	sym := &Symbol{Text: `<&">`}
	if got := sym.HTML(); got != "&lt;&amp;&quot;&gt;" {
		t.Errorf("expected escaped entities, got %s", got)
	}
}

func TestBareSymbolNeedsNoWrapper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	sym := &Symbol{Text: "x"}
	if got := sym.HTML(); got != "x" {
		t.Errorf("expected a bare text run, got %s", got)
	}
	sym.Italic = 0.05
	if got := sym.HTML(); !strings.Contains(got, "margin-right:0.05em;") {
		t.Errorf("expected an italic correction span, got %s", got)
	}
}

func TestEmFormatting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	cases := map[float64]string{
		0:       "0em",
		0.5:     "0.5em",
		-0.25:   "-0.25em",
		0.12345: "0.1235em",
		1:       "1em",
	}
	for in, want := range cases {
		if got := Em(in); got != want {
			t.Errorf("Em(%v): expected %s, got %s", in, want, got)
		}
	}
}

func TestVListFirstBaseline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	first := fixedBox(0.7, 0.2)
	second := fixedBox(0.7, 0.2)
	vlist := MakeVList(FirstBaseline, 0, []VListChild{
		VElem(first), VKern(0.1), VElem(second),
	})
	// The first child's baseline is the list's baseline.
	if math.Abs(vlist.Depth-0.2) > 1e-9 {
		t.Errorf("expected depth 0.2, got %v", vlist.Depth)
	}
	if vlist.Height <= first.Height {
		t.Errorf("expected the stack to extend above the first element, got %v",
			vlist.Height)
	}
}

func TestVListIndividualShift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	a := fixedBox(0.5, 0.1)
	b := fixedBox(0.5, 0.1)
	vlist := MakeVList(IndividualShift, 0, []VListChild{
		VShiftedElem(a, -0.8),
		VShiftedElem(b, 0.4),
	})
	// Shifts measure downward; the top element raised by 0.8 sets the
	// height, the bottom one lowered by 0.4 sets the depth.
	if math.Abs(vlist.Height-(0.5+0.8)) > 1e-9 {
		t.Errorf("expected height 1.3, got %v", vlist.Height)
	}
	if math.Abs(vlist.Depth-(0.1+0.4)) > 1e-9 {
		t.Errorf("expected depth 0.5, got %v", vlist.Depth)
	}
}

func TestVListMarkupCarriesStruts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	vlist := MakeVList(Shift, 0, []VListChild{VElem(fixedBox(0.7, 0.2))})
	html := vlist.HTML()
	if !strings.Contains(html, "pstrut") {
		t.Error("expected baseline struts in the markup")
	}
	if !strings.Contains(html, "vlist-r") {
		t.Error("expected the row structure in the markup")
	}
}

func TestFragmentFlattens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	frag := MakeFragment([]Box{fixedBox(0.4, 0.1), fixedBox(0.9, 0.3)})
	if frag.Height != 0.9 || frag.Depth != 0.3 {
		t.Errorf("expected the fragment extent to cover its children, got h=%v d=%v",
			frag.Height, frag.Depth)
	}
	if !strings.Contains(frag.HTML(), "<span") {
		t.Error("expected the children serialized in place")
	}
}

func TestSvgMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.box")
	defer teardown()
	//
	svg := &Svg{
		Attributes: map[string]string{"width": "0.471em"},
		Children:   []Box{&Path{PathName: "vec"}},
	}
	html := svg.HTML()
	if !strings.Contains(html, `xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("expected the svg namespace, got %s", html)
	}
	if !strings.Contains(html, "<path") {
		t.Errorf("expected path data, got %s", html)
	}
}
