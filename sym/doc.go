/*
Package sym holds the symbol table of the math typesetter: the mapping
from (mode, canonical name) to a replacement codepoint, an atom group
and a font family. The table is populated once at init time and is
read-only afterwards, so concurrent parses may share it freely.

Canonical names are either control-sequence spellings ("\\pm") or the
character itself ("+"). The atom group decides spacing behavior during
layout; the font family picks the metric table the glyph is measured
against.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sym

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox.sym'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox.sym")
}
