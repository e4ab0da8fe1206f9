package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestLetCopiesMeaning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	// \let captures the current meaning; redefining the source
	// afterwards must not affect the copy.
	nodes := parseInput(t, `\def\a{x}\let\b\a\def\a{y}\b\a`)
	require.Len(t, nodes, 2)
	first, ok := nodes[0].(*MathOrd)
	require.True(t, ok)
	if first.Text != "x" {
		t.Errorf("expected the copied meaning 'x', got %q", first.Text)
	}
	second, ok := nodes[1].(*MathOrd)
	require.True(t, ok)
	if second.Text != "y" {
		t.Errorf("expected the redefined meaning 'y', got %q", second.Text)
	}
}

func TestEdefExpandsAtDefinitionTime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\def\a{x}\edef\b{\a}\def\a{y}\b`)
	require.Len(t, nodes, 1)
	ord, ok := nodes[0].(*MathOrd)
	require.True(t, ok)
	if ord.Text != "x" {
		t.Errorf("expected \\edef to freeze the expansion at 'x', got %q", ord.Text)
	}
}

func TestDefIsScopedGdefIsNot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	s := NewSettings()
	if _, err := NewParser(`{\def\a{x}}\a`, &s).Parse(); err == nil {
		t.Error("expected a grouped \\def to go out of scope")
	}
	nodes := parseInput(t, `{\gdef\a{x}}\a`)
	require.Len(t, nodes, 1)
}

func TestDelimitedParameterText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	// #1 runs up to the delimiter '.' in the parameter text.
	nodes := parseInput(t, `\def\upto#1.{(#1)}\upto ab.`)
	// ( a b )
	require.Len(t, nodes, 4)
}

func TestTagStarTakesLiteralBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	// \tag* suppresses the parentheses of \tag.
	s := NewSettings()
	s.DisplayMode = true
	nodes, err := NewParser(`x\tag*{7}`, &s).Parse()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	tag, ok := nodes[0].(*Tag)
	require.True(t, ok)
	require.Len(t, tag.TagBody, 1)
	if _, ok := tag.TagBody[0].(*TextNode); !ok {
		t.Errorf("expected the literal tag body, got %T", tag.TagBody[0])
	}
}

func TestBuiltinSymbolMacros(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `a \ne b`)
	require.Len(t, nodes, 3)
	atom, ok := nodes[1].(*Atom)
	require.True(t, ok, "expected \\ne resolved through the alias chain, got %T", nodes[1])
	if atom.Text != "\\neq" {
		t.Errorf("expected the \\neq relation, got %q", atom.Text)
	}
}

func TestTextModeLigatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathbox.tex")
	defer teardown()
	//
	nodes := parseInput(t, `\text{a--b}`)
	text := nodes[0].(*TextNode)
	found := false
	for _, n := range text.Body {
		if ord, ok := n.(*TextOrd); ok && ord.Text == "--" {
			found = true
		}
	}
	if !found {
		t.Error("expected the en-dash ligature kept as one leaf")
	}
}
