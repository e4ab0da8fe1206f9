package mathbox

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"testing"

	"github.com/npillmayer/mathbox/tex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderProducesBothTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	markup, err := Render(`\frac{a}{b}`, NewSettings())
	require.NoError(t, err)
	for _, want := range []string{
		`<span class="katex">`,
		`class="katex-mathml"`,
		`class="katex-html" aria-hidden="true"`,
		"<mfrac>",
		"frac-line",
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("expected %s in the markup", want)
		}
	}
}

func TestRenderHTMLOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	s := NewSettings()
	s.Output = tex.OutputHTML
	markup, err := Render("x", s)
	require.NoError(t, err)
	if strings.Contains(markup, "<math") {
		t.Error("expected no MathML in html output")
	}
	s.Output = tex.OutputMathML
	markup, err = Render("x", s)
	require.NoError(t, err)
	if strings.Contains(markup, "katex-html") {
		t.Error("expected no visual tree in mathml output")
	}
	if !strings.Contains(markup, "<math") {
		t.Error("expected the MathML tree in mathml output")
	}
}

func TestRenderDisplayMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	s := NewSettings()
	s.DisplayMode = true
	markup, err := Render("x", s)
	require.NoError(t, err)
	if !strings.Contains(markup, `class="katex-display"`) {
		t.Error("expected the display wrapper")
	}
	s.Fleqn = true
	markup, err = Render("x", s)
	require.NoError(t, err)
	if !strings.Contains(markup, "fleqn") {
		t.Error("expected the fleqn marker on the display wrapper")
	}
}

func TestRenderReturnsParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	_, err := Render(`\nosuchcommand`, NewSettings())
	require.Error(t, err)
	if _, ok := err.(*tex.ParseError); !ok {
		t.Errorf("expected *tex.ParseError, got %T", err)
	}
}

func TestRenderRecoversWhenAsked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	s := NewSettings()
	s.ThrowOnError = false
	s.ErrorColor = "#ff0000"
	markup, err := Render(`\nosuchcommand`, s)
	require.NoError(t, err)
	if !strings.Contains(markup, "katex-error") {
		t.Error("expected the error leaf class")
	}
	if !strings.Contains(markup, "color:#ff0000") {
		t.Error("expected the configured error color")
	}
	if !strings.Contains(markup, `\nosuchcommand`) {
		t.Error("expected the raw input preserved")
	}
}

func TestParseStopsBeforeLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	nodes, err := Parse("a+b", NewSettings())
	require.NoError(t, err)
	require.Len(t, nodes, 3)
}

// collectElements walks a parsed HTML tree and tallies element names.
func collectElements(n *html.Node, tally map[string]int) {
	if n.Type == html.ElementNode {
		tally[n.Data]++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectElements(c, tally)
	}
}

func TestMarkupIsWellFormed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox")
	defer teardown()
	//
	inputs := []string{
		"a+b",
		`\frac{a}{b}`,
		`\sqrt[3]{x+1}`,
		`\left(\sum_{i=0}^{n} x_i\right)`,
		`\begin{pmatrix}a&b\\c&d\end{pmatrix}`,
		`\textcolor{red}{\hat{x}} \ne \overbrace{y}^{n}`,
	}
	for _, input := range inputs {
		markup, err := Render(input, NewSettings())
		require.NoError(t, err, "render of %q", input)
		doc, err := html.Parse(strings.NewReader(markup))
		require.NoError(t, err, "re-parse of %q markup", input)
		tally := make(map[string]int)
		collectElements(doc, tally)
		if tally["span"] == 0 {
			t.Errorf("%q: expected span elements in the markup", input)
		}
		if tally["math"] != 1 {
			t.Errorf("%q: expected exactly one math element, got %d",
				input, tally["math"])
		}
		// Serializing the re-parsed tree must not lose content; a tag
		// soup would get rebalanced here.
		var sb strings.Builder
		require.NoError(t, html.Render(&sb, doc))
		reparsed, err := html.Parse(strings.NewReader(sb.String()))
		require.NoError(t, err)
		tally2 := make(map[string]int)
		collectElements(reparsed, tally2)
		if tally["span"] != tally2["span"] {
			t.Errorf("%q: markup not stable under re-parsing (%d vs %d spans)",
				input, tally["span"], tally2["span"])
		}
	}
}
