/*
Package tex implements the input side of the mathbox pipeline: a lexer
for TeX math source, a macro expander, and a recursive-descent parser
producing a typed parse-node tree.

Data flows strictly forward:

	source string → Lexer → MacroExpander → Parser → []Node

The lexer produces tokens carrying source spans. The macro expander
maintains a namespace of macros (builtin plus user-supplied) and a stack
of token sources, so that firing a macro pushes its expansion to be
consumed before the underlying stream resumes. The parser consumes
tokens through the expander and dispatches control sequences against the
function registry and plain characters against the symbol table.

All failure conditions surface as *ParseError carrying the offending
source span. The parser owns its macro namespace; nothing in this
package keeps state across invocations except the immutable registries
populated at init time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'mathbox.tex'.
func tracer() tracing.Trace {
	return tracing.Select("mathbox.tex")
}
