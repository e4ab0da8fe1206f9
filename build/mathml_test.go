package build

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

	"github.com/npillmayer/mathbox/mml"
	"github.com/npillmayer/mathbox/tex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func semantic(t *testing.T, input string, display bool) *mml.Element {
	t.Helper()
	s := tex.NewSettings()
	s.DisplayMode = display
	tree, err := tex.NewParser(input, &s).Parse()
	require.NoError(t, err, "parse of %q", input)
	style := TextStyle
	if display {
		style = DisplayStyle
	}
	options := NewOptions(style, math.Inf(1), 0, "")
	m, err := buildMathML(tree, input, options, display)
	require.NoError(t, err, "mathml of %q", input)
	return m
}

func TestMathMLEnvelope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, "a+b", false).XML()
	for _, want := range []string{
		`xmlns="http://www.w3.org/1998/Math/MathML"`,
		"<semantics>",
		`encoding="application/x-tex"`,
		"a+b</annotation>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("expected %s in %s", want, xml)
		}
	}
	if strings.Contains(xml, `display="block"`) {
		t.Error("inline math must not set display=block")
	}
	displayed := semantic(t, "a+b", true).XML()
	if !strings.Contains(displayed, `display="block"`) {
		t.Error("display math must set display=block")
	}
}

func TestMathMLLeafTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, "x+2", false).XML()
	if !strings.Contains(xml, "<mi>x</mi>") {
		t.Errorf("expected identifier leaf, got %s", xml)
	}
	if !strings.Contains(xml, "<mo>+</mo>") {
		t.Errorf("expected operator leaf, got %s", xml)
	}
	if !strings.Contains(xml, "<mn>2</mn>") {
		t.Errorf("expected number leaf, got %s", xml)
	}
}

func TestMathMLConcatenatesNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, "123", false).XML()
	if !strings.Contains(xml, "<mn>123</mn>") {
		t.Errorf("expected digits merged into one number leaf, got %s", xml)
	}
}

func TestMathMLFraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, `\frac{a}{b}`, false).XML()
	if !strings.Contains(xml, "<mfrac>") {
		t.Errorf("expected mfrac, got %s", xml)
	}
	barless := semantic(t, `\binom{n}{k}`, false).XML()
	if !strings.Contains(barless, `linethickness="0px"`) {
		t.Errorf("expected barless fraction for binom, got %s", barless)
	}
}

func TestMathMLScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	if xml := semantic(t, "x^2", false).XML(); !strings.Contains(xml, "<msup>") {
		t.Errorf("expected msup, got %s", xml)
	}
	if xml := semantic(t, "x_i", false).XML(); !strings.Contains(xml, "<msub>") {
		t.Errorf("expected msub, got %s", xml)
	}
	if xml := semantic(t, "x_i^2", false).XML(); !strings.Contains(xml, "<msubsup>") {
		t.Errorf("expected msubsup, got %s", xml)
	}
}

func TestMathMLOperatorLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	// \sum takes limits in display style only.
	display := semantic(t, `\sum_{i}^{n}`, true).XML()
	if !strings.Contains(display, "<munderover>") {
		t.Errorf("expected munderover in display style, got %s", display)
	}
	inline := semantic(t, `\sum_{i}^{n}`, false).XML()
	if !strings.Contains(inline, "<msubsup>") {
		t.Errorf("expected msubsup in text style, got %s", inline)
	}
}

func TestMathMLSqrt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	if xml := semantic(t, `\sqrt{x}`, false).XML(); !strings.Contains(xml, "<msqrt>") {
		t.Errorf("expected msqrt, got %s", xml)
	}
	if xml := semantic(t, `\sqrt[3]{x}`, false).XML(); !strings.Contains(xml, "<mroot>") {
		t.Errorf("expected mroot for an indexed root, got %s", xml)
	}
}

func TestMathMLAccent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, `\hat{x}`, false).XML()
	if !strings.Contains(xml, "<mover") || !strings.Contains(xml, `accent="true"`) {
		t.Errorf("expected an accented mover, got %s", xml)
	}
}

func TestMathMLText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, `\text{if }x`, false).XML()
	if !strings.Contains(xml, "<mtext>") {
		t.Errorf("expected mtext, got %s", xml)
	}
}

func TestMathMLTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, `\begin{matrix}a&b\\c&d\end{matrix}`, false).XML()
	if strings.Count(xml, "<mtr>") != 2 {
		t.Errorf("expected two rows, got %s", xml)
	}
	if strings.Count(xml, "<mtd>") != 4 {
		t.Errorf("expected four cells, got %s", xml)
	}
}

func TestMathMLEscapesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	xml := semantic(t, "a<b", false).XML()
	if strings.Contains(xml, "<b</") {
		t.Errorf("expected escaped relation, got %s", xml)
	}
	if !strings.Contains(xml, "&lt;") {
		t.Errorf("expected &lt; entity, got %s", xml)
	}
}
