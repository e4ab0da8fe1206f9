package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"testing"

	"github.com/npillmayer/mathbox/sym"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func parseInput(t *testing.T, input string) []Node {
	t.Helper()
	s := NewSettings()
	nodes, err := NewParser(input, &s).Parse()
	if err != nil {
		t.Fatalf("parse of %q failed: %v", input, err)
	}
	return nodes
}

func TestParseOrdsAndBin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, "a+b")
	require.Len(t, nodes, 3)
	if _, ok := nodes[0].(*MathOrd); !ok {
		t.Errorf("expected mathord, got %T", nodes[0])
	}
	atom, ok := nodes[1].(*Atom)
	if !ok {
		t.Fatalf("expected atom, got %T", nodes[1])
	}
	if atom.Family != sym.Bin || atom.Text != "+" {
		t.Errorf("expected bin atom '+', got %v %q", atom.Family, atom.Text)
	}
}

func TestParseGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, "{+b}")
	require.Len(t, nodes, 1)
	group, ok := nodes[0].(*OrdGroup)
	if !ok {
		t.Fatalf("expected ordgroup, got %T", nodes[0])
	}
	require.Len(t, group.Body, 2)
}

func TestParseSupSub(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, "x^2_i")
	require.Len(t, nodes, 1)
	ss, ok := nodes[0].(*SupSub)
	if !ok {
		t.Fatalf("expected supsub, got %T", nodes[0])
	}
	if ss.Sup == nil || ss.Sub == nil {
		t.Errorf("expected both scripts present, got sup=%v sub=%v", ss.Sup, ss.Sub)
	}
	if _, ok := ss.Base.(*MathOrd); !ok {
		t.Errorf("expected mathord base, got %T", ss.Base)
	}
}

func TestParseDoubleScriptFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	_, err := NewParser("x^2^3", &s).Parse()
	if err == nil {
		t.Error("expected double superscript to fail")
	}
}

func TestParseFrac(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\frac{a}{b}`)
	require.Len(t, nodes, 1)
	frac, ok := nodes[0].(*GenFrac)
	if !ok {
		t.Fatalf("expected genfrac, got %T", nodes[0])
	}
	if !frac.HasBarLine {
		t.Error("expected \\frac to carry a bar line")
	}
	if frac.Numer == nil || frac.Denom == nil {
		t.Error("expected numerator and denominator")
	}
}

func TestParseInfixFrac(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `a \over b`)
	require.Len(t, nodes, 1)
	frac, ok := nodes[0].(*GenFrac)
	if !ok {
		t.Fatalf("expected genfrac from \\over, got %T", nodes[0])
	}
	if !frac.HasBarLine {
		t.Error("expected \\over to carry a bar line")
	}
}

func TestParseLeftRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\left(x\right)`)
	require.Len(t, nodes, 1)
	lr, ok := nodes[0].(*LeftRight)
	if !ok {
		t.Fatalf("expected leftright, got %T", nodes[0])
	}
	if lr.Left != "(" || lr.Right != ")" {
		t.Errorf("expected ( and ), got %q and %q", lr.Left, lr.Right)
	}
	require.Len(t, lr.Body, 1)
}

func TestParseUnmatchedRightFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	_, err := NewParser(`x\right)`, &s).Parse()
	if err == nil {
		t.Error("expected unmatched \\right to fail")
	}
}

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\textcolor{red}{x}`)
	require.Len(t, nodes, 1)
	color, ok := nodes[0].(*ColorNode)
	if !ok {
		t.Fatalf("expected color node, got %T", nodes[0])
	}
	if color.Color != "red" {
		t.Errorf("expected color 'red', got %q", color.Color)
	}
}

func TestNewCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\newcommand{\foo}{a+b}\foo`)
	require.Len(t, nodes, 3)
}

func TestNewCommandWithArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\newcommand{\pair}[2]{(#1,#2)}\pair{a}{b}`)
	// ( a , b )
	require.Len(t, nodes, 5)
}

func TestRenewCommandRequiresExisting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	_, err := NewParser(`\renewcommand{\nosuchthing}{x}`, &s).Parse()
	if err == nil {
		t.Error("expected \\renewcommand of an undefined command to fail")
	}
}

func TestDefWithParameter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\def\twice#1{#1#1}\twice{z}`)
	require.Len(t, nodes, 2)
}

func TestMacroRecursionBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	s.MaxExpand = 10
	_, err := NewParser(`\def\x{\x}\x`, &s).Parse()
	if err == nil {
		t.Error("expected a bounded expansion error for a macro loop")
	}
}

func TestSettingsMacros(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	s.Macros = map[string]MacroDef{
		"\\greet": MacroString("a+b"),
	}
	nodes, err := NewParser(`\greet`, &s).Parse()
	require.NoError(t, err)
	require.Len(t, nodes, 3)
}

func TestStrictUnicodeTextInMathMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	s.Strict = StrictError
	if _, err := NewParser("é", &s).Parse(); err == nil {
		t.Error("expected strict mode to reject unicode text in math mode")
	}
	s.Strict = StrictIgnore
	if _, err := NewParser("é", &s).Parse(); err != nil {
		t.Errorf("expected ignore mode to accept unicode text, got %v", err)
	}
}

func TestTagOnlyInDisplayMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	if _, err := NewParser(`x\tag{1}`, &s).Parse(); err == nil {
		t.Error("expected \\tag to fail outside display mode")
	}
	s.DisplayMode = true
	nodes, err := NewParser(`x\tag{1}`, &s).Parse()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	tag, ok := nodes[0].(*Tag)
	if !ok {
		t.Fatalf("expected tag wrapper, got %T", nodes[0])
	}
	require.Len(t, tag.Body, 1)
	if len(tag.TagBody) == 0 {
		t.Error("expected a parsed tag rendition")
	}
}

func TestParseMatrixEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\begin{pmatrix}a&b\\c&d\end{pmatrix}`)
	require.Len(t, nodes, 1)
	lr, ok := nodes[0].(*LeftRight)
	if !ok {
		t.Fatalf("expected delimited matrix, got %T", nodes[0])
	}
	if lr.Left != "(" || lr.Right != ")" {
		t.Errorf("expected parens around pmatrix, got %q %q", lr.Left, lr.Right)
	}
	require.Len(t, lr.Body, 1)
	array, ok := lr.Body[0].(*ArrayNode)
	if !ok {
		t.Fatalf("expected array body, got %T", lr.Body[0])
	}
	require.Len(t, array.Body, 2)
	require.Len(t, array.Body[0], 2)
	require.Len(t, array.Body[1], 2)
}

func TestParseCasesEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\begin{cases}a&b\\c&d\end{cases}`)
	require.Len(t, nodes, 1)
	lr, ok := nodes[0].(*LeftRight)
	if !ok {
		t.Fatalf("expected delimited cases, got %T", nodes[0])
	}
	if lr.Left != "\\{" || lr.Right != "." {
		t.Errorf("expected brace and null delimiter, got %q %q", lr.Left, lr.Right)
	}
}

func TestMismatchedEnvironmentFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	_, err := NewParser(`\begin{matrix}a\end{pmatrix}`, &s).Parse()
	if err == nil {
		t.Error("expected mismatched environment names to fail")
	}
}

func TestParseErrorCarriesContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	_, err := NewParser(`a\nosuchcommand b`, &s).Parse()
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.RawInput == "" {
		t.Error("expected the raw input attached to the error")
	}
}

func TestParseTextMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\text{hi there}`)
	require.Len(t, nodes, 1)
	text, ok := nodes[0].(*TextNode)
	if !ok {
		t.Fatalf("expected text node, got %T", nodes[0])
	}
	if len(text.Body) == 0 {
		t.Error("expected text body content")
	}
}
