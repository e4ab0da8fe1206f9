package metrics

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// CharMetrics is the measured box of one glyph, in em.
type CharMetrics struct {
	Depth  float64
	Height float64
	Italic float64
	Skew   float64
	Width  float64
}

// Lookup returns the metrics of character r in the named font face.
// For characters outside the fonts' coverage but inside a supported
// script, the metrics of the capital letter M are substituted, since
// the host text engine will render such glyphs from a fallback font of
// roughly that size.
func Lookup(fontName string, r rune) (CharMetrics, bool) {
	table, ok := charTables[fontName]
	if !ok {
		tracer().Errorf("font metrics for unknown font %q requested", fontName)
		return CharMetrics{}, false
	}
	if m, ok := table[r]; ok {
		return toCharMetrics(m), true
	}
	if r >= 0x80 && SupportedCodepoint(r) {
		if m, ok := table['M']; ok {
			return toCharMetrics(m), true
		}
	}
	return CharMetrics{}, false
}

func toCharMetrics(m [5]float64) CharMetrics {
	return CharMetrics{Depth: m[0], Height: m[1], Italic: m[2], Skew: m[3], Width: m[4]}
}

// scriptRange is one codepoint block belonging to a script the engine
// knows how to fall back for.
type scriptRange struct {
	name     string
	lo, hi   rune
}

var scriptData = []scriptRange{
	{"latin", 0x0100, 0x024f}, // extended Latin
	{"latin", 0x0300, 0x036f}, // combining diacritics
	{"cyrillic", 0x0400, 0x04ff},
	{"armenian", 0x0530, 0x058f},
	{"brahmic", 0x0900, 0x109f},
	{"georgian", 0x10a0, 0x10ff},
	{"cjk", 0x3000, 0x30ff},
	{"cjk", 0x4e00, 0x9faf},
	{"cjk", 0xff00, 0xff60},
	{"hangul", 0xac00, 0xd7a3},
}

// ScriptFromCodepoint names the script a codepoint belongs to, or ""
// for unknown scripts.
func ScriptFromCodepoint(r rune) string {
	for _, s := range scriptData {
		if r >= s.lo && r <= s.hi {
			return s.name
		}
	}
	return ""
}

// SupportedCodepoint reports whether the host can be expected to render
// the codepoint from a fallback font.
func SupportedCodepoint(r rune) bool {
	return ScriptFromCodepoint(r) != ""
}
