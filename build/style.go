package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Style is one of the eight TeX math styles: display, text, script and
// scriptscript, each in a cramped and an uncramped variant. Styles are
// values; transitions return one of the eight entries of the styles
// table.
type Style struct {
	ID      int
	Size    int
	Cramped bool
}

// The eight styles, indexed by ID. Even IDs are uncramped.
var styles = [8]Style{
	{ID: 0, Size: 0, Cramped: false},
	{ID: 1, Size: 0, Cramped: true},
	{ID: 2, Size: 1, Cramped: false},
	{ID: 3, Size: 1, Cramped: true},
	{ID: 4, Size: 2, Cramped: false},
	{ID: 5, Size: 2, Cramped: true},
	{ID: 6, Size: 3, Cramped: false},
	{ID: 7, Size: 3, Cramped: true},
}

// The four uncramped base styles.
var (
	DisplayStyle      = styles[0]
	TextStyle         = styles[2]
	ScriptStyle       = styles[4]
	ScriptScriptStyle = styles[6]
)

// Style transition tables, indexed by style ID.
var (
	supTransition     = [8]int{4, 5, 4, 5, 6, 7, 6, 7}
	subTransition     = [8]int{5, 5, 5, 5, 7, 7, 7, 7}
	fracNumTransition = [8]int{2, 3, 4, 5, 6, 7, 6, 7}
	fracDenTransition = [8]int{3, 3, 5, 5, 7, 7, 7, 7}
	crampTransition   = [8]int{1, 1, 3, 3, 5, 5, 7, 7}
	textTransition    = [8]int{0, 1, 2, 3, 2, 3, 2, 3}
)

// Sup is the style of a superscript in this style.
func (s Style) Sup() Style { return styles[supTransition[s.ID]] }

// Sub is the style of a subscript in this style.
func (s Style) Sub() Style { return styles[subTransition[s.ID]] }

// FracNum is the style of a fraction numerator in this style.
func (s Style) FracNum() Style { return styles[fracNumTransition[s.ID]] }

// FracDen is the style of a fraction denominator in this style.
func (s Style) FracDen() Style { return styles[fracDenTransition[s.ID]] }

// CrampedStyle is the cramped variant of this style.
func (s Style) CrampedStyle() Style { return styles[crampTransition[s.ID]] }

// Text is the style after \textstyle, keeping crampedness.
func (s Style) Text() Style { return styles[textTransition[s.ID]] }

// IsTight reports whether the style uses tight spacing (script and
// scriptscript sizes).
func (s Style) IsTight() bool { return s.Size >= 2 }
