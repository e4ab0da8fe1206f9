package sym

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Mode distinguishes math mode from text mode. A symbol may resolve
// differently, or not at all, depending on the mode it occurs in.
type Mode uint8

// The two input modes.
const (
	MathMode Mode = iota
	TextMode
)

func (m Mode) String() string {
	if m == TextMode {
		return "text"
	}
	return "math"
}

// Group classifies a symbol for spacing and parse dispatch. The six
// atom groups (Bin…Rel) map directly to TeX's atom classes; the
// remaining groups select specialized parse-node kinds.
type Group uint8

// Symbol groups.
const (
	MathOrd Group = iota
	TextOrd
	Bin
	Close
	Inner
	Open
	Punct
	Rel
	Op
	Spacing
	AccentToken
)

var groupNames = []string{"mathord", "textord", "bin", "close", "inner",
	"open", "punct", "rel", "op", "spacing", "accent-token"}

func (g Group) String() string { return groupNames[g] }

// IsAtomFamily reports whether g is one of the six atom classes.
func (g Group) IsAtomFamily() bool {
	switch g {
	case Bin, Close, Inner, Open, Punct, Rel:
		return true
	}
	return false
}

// Font names the metric family a symbol is measured against.
type Font uint8

// The two symbol font families.
const (
	Main Font = iota
	AMS
)

func (f Font) String() string {
	if f == AMS {
		return "ams"
	}
	return "main"
}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Font    Font
	Group   Group
	Replace rune // 0 if the name itself is the glyph
}

var mathTable = map[string]Symbol{}
var textTable = map[string]Symbol{}

// Get looks up a canonical name in the given mode. The second return
// value reports whether the name is known.
func Get(mode Mode, name string) (Symbol, bool) {
	var s Symbol
	var ok bool
	if mode == TextMode {
		s, ok = textTable[name]
	} else {
		s, ok = mathTable[name]
	}
	return s, ok
}

// Contains reports whether name resolves in the given mode.
func Contains(mode Mode, name string) bool {
	_, ok := Get(mode, name)
	return ok
}

// LigatureRunes reports whether the main font carries the f-ligatures
// for this rune; used by text mode to keep "ff", "fi" etc. together.
func LigatureRunes(r rune) bool {
	return r == 'f'
}

func define(mode Mode, font Font, group Group, replace rune, name string) {
	s := Symbol{Font: font, Group: group, Replace: replace}
	if mode == TextMode {
		textTable[name] = s
	} else {
		mathTable[name] = s
	}
	// Accept the replacement character itself as an alternative
	// spelling, so Unicode input like "≤" works directly.
	if replace != 0 && string(replace) != name {
		nm := string(replace)
		if mode == TextMode {
			if _, exists := textTable[nm]; !exists {
				textTable[nm] = s
			}
		} else {
			if _, exists := mathTable[nm]; !exists {
				mathTable[nm] = s
			}
		}
	}
}

func defineBoth(font Font, group Group, replace rune, name string) {
	define(MathMode, font, group, replace, name)
	define(TextMode, font, group, replace, name)
}
