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

	"github.com/npillmayer/mathbox/box"
	"github.com/npillmayer/mathbox/tex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func layout(t *testing.T, input string, display bool) *box.Span {
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
	span, err := buildHTML(tree, options)
	require.NoError(t, err, "layout of %q", input)
	return span
}

// countClass counts boxes in the subtree carrying the class.
func countClass(b box.Box, class string) int {
	n := 0
	if b.HasClass(class) {
		n++
	}
	if span, ok := b.(*box.Span); ok {
		for _, child := range span.Children {
			n += countClass(child, class)
		}
	}
	if frag, ok := b.(*box.Fragment); ok {
		for _, child := range frag.Children {
			n += countClass(child, class)
		}
	}
	return n
}

func TestRootSpanIsHidden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, "x", false)
	if !span.HasClass("katex-html") {
		t.Errorf("expected root class katex-html, got %v", span.Classes)
	}
	html := span.HTML()
	if !strings.Contains(html, `aria-hidden="true"`) {
		t.Error("expected the visual tree hidden from the accessibility tree")
	}
}

func TestBinarySpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, "a+b", false)
	if n := countClass(span, "mbin"); n != 1 {
		t.Errorf("expected one binary atom, found %d", n)
	}
	// Ord and bin atoms are separated by medium glue on both sides.
	if n := countClass(span, "mspace"); n < 2 {
		t.Errorf("expected glue on both sides of '+', found %d spaces", n)
	}
}

func TestBinCancellation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	// A '+' with nothing on its left renders as an ordinary atom.
	span := layout(t, "{+b}", false)
	if n := countClass(span, "mbin"); n != 0 {
		t.Errorf("expected leading '+' demoted to mord, found %d mbin", n)
	}
	if n := countClass(span, "mord"); n == 0 {
		t.Error("expected mord atoms")
	}
}

func TestBinCancellationAfterRelation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, "a=-b", false)
	if n := countClass(span, "mbin"); n != 0 {
		t.Errorf("expected '-' after '=' demoted to mord, found %d mbin", n)
	}
}

func TestFractionStacksNumeratorAndDenominator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, `\frac{a}{b}`, false)
	html := span.HTML()
	if !strings.Contains(html, "frac-line") {
		t.Error("expected a fraction rule")
	}
	if !strings.Contains(html, "vlist") {
		t.Error("expected a vertical list carrying the parts")
	}
	if span.Height <= 0 || span.Depth <= 0 {
		t.Errorf("expected extent above and below the baseline, got h=%v d=%v",
			span.Height, span.Depth)
	}
}

func TestLeftRightDelimitersCoverBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, `\left(\frac{a}{b}\right)`, false)
	if n := countClass(span, "minner"); n != 1 {
		t.Errorf("expected one inner group, found %d", n)
	}
	if countClass(span, "mopen") == 0 || countClass(span, "mclose") == 0 {
		t.Error("expected opening and closing delimiters")
	}
}

func TestNullDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, `\left.x\right)`, false)
	if countClass(span, "nulldelimiter") == 0 {
		t.Error("expected the missing delimiter to leave its space")
	}
}

func TestColorAppliesToLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, `\textcolor{red}{x}`, false)
	if !strings.Contains(span.HTML(), "color:red") {
		t.Error("expected the colored leaf to carry an inline color")
	}
}

func TestColorGroupIsTransparentForSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	// The '+' inside the color group still spaces as a binary atom.
	span := layout(t, `a\textcolor{red}{+}b`, false)
	if n := countClass(span, "mbin"); n != 1 {
		t.Errorf("expected color wrapper transparent to atom spacing, found %d mbin", n)
	}
}

func TestSqrtDrawsSurd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, `\sqrt{x}`, false)
	if countClass(span, "sqrt") == 0 {
		t.Error("expected a sqrt wrapper")
	}
	if !strings.Contains(span.HTML(), "<svg") {
		t.Error("expected the surd drawn as svg")
	}
}

func TestLargeOperatorInDisplayStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	display := layout(t, `\sum_{i}^{n}`, true)
	if countClass(display, "large-op") == 0 {
		t.Error("expected the display-style sum drawn with the large glyph")
	}
	inline := layout(t, `\sum_{i}^{n}`, false)
	if countClass(inline, "small-op") == 0 {
		t.Error("expected the inline sum drawn with the small glyph")
	}
}

func TestSupSubShiftsAboveAndBelow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, "x^2_i", false)
	if countClass(span, "msupsub") == 0 {
		t.Error("expected a script column")
	}
	plain := layout(t, "x", false)
	if span.Height <= plain.Height {
		t.Error("expected the superscript to raise the extent")
	}
	if span.Depth <= plain.Depth {
		t.Error("expected the subscript to deepen the extent")
	}
}

func TestMatrixRowsAndColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, `\begin{pmatrix}a&b\\c&d\end{pmatrix}`, false)
	if countClass(span, "mtable") == 0 {
		t.Error("expected a table wrapper")
	}
	if n := countClass(span, "col-align-c"); n != 2 {
		t.Errorf("expected two centered columns, found %d", n)
	}
}

func TestLineBreakChunksAfterRelation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	span := layout(t, "a=b", false)
	// The relation ends a chunk, the rest starts another.
	if n := countClass(span, "base"); n < 2 {
		t.Errorf("expected a break opportunity after '=', found %d base spans", n)
	}
}

func TestPhantomKeepsExtentOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	phantom := layout(t, `\phantom{\frac{a}{b}}`, false)
	real := layout(t, `\frac{a}{b}`, false)
	if math.Abs(phantom.Height-real.Height) > 1e-9 {
		t.Errorf("expected phantom height %v, got %v", real.Height, phantom.Height)
	}
}

func TestMaxSizeCapsExplicitSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.build")
	defer teardown()
	//
	options := NewOptions(TextStyle, 2, 0, "")
	size := CalculateSize(tex.Measurement{Number: 100, Unit: "em"}, options)
	if size != 2 {
		t.Errorf("expected the size capped at 2em, got %v", size)
	}
}
