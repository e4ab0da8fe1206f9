package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/mathbox/sym"
)

// Node is the interface all parse nodes satisfy. The parser produces a
// tree of Nodes; the HTML and MathML builders consume it with type
// switches. Every node carries an Info with the mode it was parsed in
// and its source span.
type Node interface {
	Meta() *Info
}

// Info is the common part of every parse node.
type Info struct {
	Mode sym.Mode
	Span *SourceSpan
}

// Meta returns n's common node information. With Info embedded in every
// concrete node type, this one method implements the Node interface for
// all of them.
func (n *Info) Meta() *Info { return n }

// info is a helper for constructing the embedded Info from a token.
func info(mode sym.Mode, tok *Token) Info {
	return Info{Mode: mode, Span: tok.spanOf()}
}

// Measurement is a TeX dimension: a number with a unit, e.g. "2mu" or
// "0.5em".
type Measurement struct {
	Number float64
	Unit   string
}

var validUnits = map[string]bool{
	"pt": true, "mm": true, "cm": true, "in": true, "bp": true,
	"pc": true, "dd": true, "cc": true, "nd": true, "nc": true,
	"sp": true, "px": true, "ex": true, "em": true, "mu": true,
}

// ValidUnit reports whether m carries a unit the engine can convert.
func (m Measurement) ValidUnit() bool {
	return validUnits[m.Unit]
}

// --- Leaf nodes ------------------------------------------------------

// Atom is a single symbol with an atom family taken from the symbol
// table: bin, rel, open, close, punct or inner.
type Atom struct {
	Info
	Family sym.Group
	Text   string
}

// MathOrd is an ordinary symbol in math mode.
type MathOrd struct {
	Info
	Text string
}

// TextOrd is an ordinary symbol in text mode.
type TextOrd struct {
	Info
	Text string
}

// OpToken is a big-operator symbol token, before it has been wrapped
// into an Op node by the parser.
type OpToken struct {
	Info
	Text string
}

// AccentTok is an accent-mark symbol token.
type AccentTok struct {
	Info
	Text string
}

// SpacingSym is a fixed-width spacing symbol such as \  or ~.
type SpacingSym struct {
	Info
	Text string
}

// Verb carries verbatim text rendered in typewriter face.
type Verb struct {
	Info
	Body string
	Star bool
}

// ColorToken is an internal node holding a parsed color specification.
type ColorToken struct {
	Info
	Color string
}

// SizeLit is an internal node holding a parsed size specification.
type SizeLit struct {
	Info
	Value    Measurement
	IsBlank  bool
}

// URLNode is an internal node holding a parsed URL argument.
type URLNode struct {
	Info
	URL string
}

// Raw is an internal node holding an uninterpreted string argument.
type Raw struct {
	Info
	String string
}

// --- Group and structure nodes ---------------------------------------

// OrdGroup is a brace group: its body is laid out and then treated as a
// single ord atom.
type OrdGroup struct {
	Info
	Body []Node
	// SemiSimple groups (\begingroup...\endgroup) do not reset spacing
	// at their boundaries.
	SemiSimple bool
}

// SupSub attaches a superscript and/or subscript to a base. Base may be
// nil for a lone script (an empty base is substituted at build time).
type SupSub struct {
	Info
	Base Node
	Sup  Node
	Sub  Node
}

// Styling switches the layout style (display, text, script,
// scriptscript) for the remainder of the group.
type Styling struct {
	Info
	Style string // "display", "text", "script", "scriptscript"
	Body  []Node
}

// Sizing switches the font size for the remainder of the group.
type Sizing struct {
	Info
	Size int // 1..11, \tiny .. \Huge
	Body []Node
}

// ColorNode renders its body in the given color. Color is inherited by
// descendants but does not affect spacing: the body's atoms interact
// with their neighbors as if the color wrapper were not there.
type ColorNode struct {
	Info
	Color string
	Body  []Node
}

// FontNode switches the font face for its body, e.g. \mathbf, \mathrm.
type FontNode struct {
	Info
	Font string
	Body Node
}

// MClass forces an atom class onto its body, e.g. \mathbin, \mathrel.
type MClass struct {
	Info
	Class sym.Group
	Body  []Node
	// IsCharacterBox is true when the body is a single character, which
	// lets \operatorname and friends pick simpler output.
	IsCharacterBox bool
}

// OperatorName is \operatorname{...}: an upright multi-letter operator.
type OperatorName struct {
	Info
	Body        []Node
	AlwaysHandleSupSub bool
	Limits      bool
	ParentIsSupSub bool
}

// Op is a big operator (\sum, \lim, \int, ...), possibly with limits.
type Op struct {
	Info
	Limits        bool
	AlwaysHandleSupSub bool
	SuppressBaseShift bool
	Symbol        bool   // true if rendered from a single glyph
	Name          string // symbol name when Symbol is true
	Body          []Node // text body for \operatorname-style ops
	ParentIsSupSub bool
}

// TextNode is \text{...} and friends: a run laid out in text mode.
type TextNode struct {
	Info
	Body []Node
	Font string
}

// --- Fractions and radicals ------------------------------------------

// GenFrac is the generalized fraction: \frac, \dfrac, \tfrac, \binom,
// \cfrac, \over, \atop and the \genfrac primitive.
type GenFrac struct {
	Info
	Numer          Node
	Denom          Node
	HasBarLine     bool
	BarSize        *Measurement // nil means default rule thickness
	LeftDelim      string
	RightDelim     string
	Size           string // "auto", "display", "text", "script", "scriptscript"
	ContinuedFrac  bool
}

// Infix is a not-yet-resolved infix fraction command (\over, \atop,
// \choose, \above). The parser rewrites the surrounding expression into
// a GenFrac when it sees one.
type Infix struct {
	Info
	ReplaceWith string
	Size        *Measurement
	Token       *Token
}

// Sqrt is \sqrt with an optional index.
type Sqrt struct {
	Info
	Body  Node
	Index Node
}

// Overline and Underline draw a rule above or below their body.
type Overline struct {
	Info
	Body Node
}

type Underline struct {
	Info
	Body Node
}

// --- Accents, braces, arrows -----------------------------------------

// Accent places an accent mark over its base.
type Accent struct {
	Info
	Label        string
	IsStretchy   bool
	IsShifty     bool
	Base         Node
}

// AccentUnder places a stretchy mark under its base.
type AccentUnder struct {
	Info
	Label string
	Base  Node
}

// HorizBrace is \overbrace or \underbrace.
type HorizBrace struct {
	Info
	Label   string
	IsOver  bool
	Base    Node
}

// XArrow is a stretchy arrow with optional text above and below
// (\xrightarrow, \xleftarrow, ...).
type XArrow struct {
	Info
	Label string
	Body  Node
	Below Node
}

// Enclose draws a notation around its body: \cancel, \bcancel,
// \xcancel, \sout, \boxed, \fbox, \fcolorbox, \colorbox, \angl.
type Enclose struct {
	Info
	Label           string
	Body            Node
	BackgroundColor string
	BorderColor     string
}

// --- Delimiters -------------------------------------------------------

// DelimSizing is a manually sized delimiter: \big, \Big, \bigg, \Bigg
// and their l/r/m variants.
type DelimSizing struct {
	Info
	Size  int // 1..4
	MClass sym.Group
	Delim string
}

// LeftRight is a balanced \left...\right pair with its enclosed body.
type LeftRight struct {
	Info
	Body  []Node
	Left  string
	Right string
	RightColor string
}

// LeftRightRight is the transient \right node the parser produces
// before it folds the group into a LeftRight.
type LeftRightRight struct {
	Info
	Delim string
	Color string
}

// MiddleBox is a \middle delimiter inside a \left...\right group. It
// sizes with the surrounding pair and acts as a rel atom.
type MiddleBox struct {
	Info
	Delim string
}

// --- Arrays and environments -----------------------------------------

// ColSeparationType describes how an array's columns are separated.
type ColSeparationType string

const (
	ColSepAlign   ColSeparationType = "align"
	ColSepAlignAt ColSeparationType = "alignat"
	ColSepGather  ColSeparationType = "gather"
	ColSepSmall   ColSeparationType = "small"
)

// AlignSpec describes one column of an array: a separator gap or an
// aligned column with optional pre/post gaps. A negative gap means the
// environment's default column separation applies.
type AlignSpec struct {
	Separator string  // "|" or ":" for rule columns; "" for aligned columns
	Align     string  // "l", "c", "r"
	Pregap    float64 // em; negative for the environment default
	Postgap   float64 // em; negative for the environment default
}

// ArrayNode is the parsed form of every array-like environment.
type ArrayNode struct {
	Info
	ColSeparationType ColSeparationType
	HSkipBeforeAndAfter bool
	AddJot            bool
	Cols              []AlignSpec
	ArrayStretch      float64
	Body              [][]Node // rows of cells; each cell an ord group body
	RowGaps           []*Measurement
	HLinesBeforeRow   [][]bool // outer: before row i; inner: [isDashed...]
	Leqno             *bool
	Tags              []Node // per-row tag bodies for numbered environments
}

// Cr is the row terminator \\ (or \cr) with an optional size argument.
type Cr struct {
	Info
	NewLine bool
	Size    *Measurement
}

// --- Kerns, rules, boxes ---------------------------------------------

// Kern is a fixed horizontal space.
type Kern struct {
	Info
	Dimension Measurement
}

// RuleNode is \rule: a filled rectangle with optional shift.
type RuleNode struct {
	Info
	Shift  *Measurement
	Width  Measurement
	Height Measurement
}

// RaiseBox shifts its body vertically by a fixed amount.
type RaiseBox struct {
	Info
	Dy   Measurement
	Body Node
}

// Lap is \llap, \rlap or \clap: content laid out with zero width.
type Lap struct {
	Info
	Alignment string // "llap", "rlap", "clap"
	Body      Node
}

// Smash is \smash: content whose height and/or depth is taken as zero.
type Smash struct {
	Info
	Body        Node
	SmashHeight bool
	SmashDepth  bool
}

// Phantom takes up the space of its body without rendering it.
type Phantom struct {
	Info
	Body []Node
}

// HPhantom keeps only the width of its body.
type HPhantom struct {
	Info
	Body Node
}

// VPhantom keeps only the height and depth of its body.
type VPhantom struct {
	Info
	Body Node
}

// --- Choice, tags, links ---------------------------------------------

// MathChoice is \mathchoice: four bodies, one picked per style.
type MathChoice struct {
	Info
	Display      []Node
	Text         []Node
	Script       []Node
	ScriptScript []Node
}

// Tag attaches an equation tag to a display-mode expression.
type Tag struct {
	Info
	Body []Node
	TagBody  []Node
}

// Href wraps its body in a hyperlink.
type Href struct {
	Info
	Href string
	Body []Node
}

// HTMLMathML renders one body in markup output and the other in MathML
// output (\html@mathml).
type HTMLMathML struct {
	Info
	HTML   []Node
	MathML []Node
}

// IncludeGraphics embeds an external image with explicit dimensions.
type IncludeGraphics struct {
	Info
	Alt        string
	Width      Measurement
	Height     Measurement
	TotalHeight Measurement
	Src        string
}

// Internal marks a spot that produces no output but breaks up ligatures
// and spacing (e.g. \relax).
type Internal struct {
	Info
}

// --- Helpers over node lists -----------------------------------------

// OrdArgument returns the body of an ord group, or the node itself as a
// one-element list. Arguments to functions arrive this way: braced
// groups unwrap, single tokens stand alone.
func OrdArgument(n Node) []Node {
	if n == nil {
		return nil
	}
	if g, ok := n.(*OrdGroup); ok && !g.SemiSimple {
		return g.Body
	}
	return []Node{n}
}

// IsCharacterBox reports whether n is a single character leaf, looking
// through ord groups of length one.
func IsCharacterBox(n Node) bool {
	base := n
	for {
		if g, ok := base.(*OrdGroup); ok && len(g.Body) == 1 {
			base = g.Body[0]
			continue
		}
		break
	}
	switch base.(type) {
	case *MathOrd, *TextOrd, *Atom:
		return true
	}
	return false
}

// CheckSymbolNodeType returns the symbol text of n if it is a plain
// symbol leaf (possibly wrapped in a single-element ord group), or ""
// otherwise.
func CheckSymbolNodeType(n Node) (string, bool) {
	base := n
	for {
		if g, ok := base.(*OrdGroup); ok && len(g.Body) == 1 {
			base = g.Body[0]
			continue
		}
		break
	}
	switch s := base.(type) {
	case *MathOrd:
		return s.Text, true
	case *TextOrd:
		return s.Text, true
	case *Atom:
		return s.Text, true
	case *OpToken:
		return s.Text, true
	case *AccentTok:
		return s.Text, true
	}
	return "", false
}
