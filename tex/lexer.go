package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"unicode/utf8"
)

// EOF is the text of the token returned once the input is exhausted.
const EOF = "EOF"

// Lexer splits a TeX source string into tokens: control words, control
// symbols, single characters (keeping combining marks attached to their
// base), collapsed whitespace runs, and \verb bodies. Comments run to
// the end of the line and vanish.
type Lexer struct {
	Input    string
	settings *Settings
	pos      int
	// catcodes overridden by the parser; only '~' and '%' are ever
	// touched by the supported input surface.
	catcodes map[rune]int
}

// NewLexer creates a lexer over input.
func NewLexer(input string, settings *Settings) *Lexer {
	return &Lexer{
		Input:    input,
		settings: settings,
		catcodes: map[rune]int{'%': 14, '~': 13},
	}
}

func (lx *Lexer) span(start int) *SourceSpan {
	return &SourceSpan{Start: start, End: lx.pos}
}

func isLexLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '@'
}

func isLexSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}

// Lex returns the next token. After the input is exhausted it returns
// an EOF token located at the end of input.
func (lx *Lexer) Lex() (Token, error) {
	if lx.pos >= len(lx.Input) {
		return NewToken(EOF, &SourceSpan{Start: lx.pos, End: lx.pos}), nil
	}
	start := lx.pos
	r, size := utf8.DecodeRuneInString(lx.Input[lx.pos:])
	switch {
	case r == utf8.RuneError && size == 1:
		return Token{}, NewParseError("invalid UTF-8 encoding in input",
			&SourceSpan{Start: lx.pos, End: lx.pos + 1})
	case lx.catcode(r) == 14: // comment character
		lx.skipComment()
		return lx.Lex()
	case isLexSpace(r):
		lx.skipWhitespace()
		return NewToken(" ", lx.span(start)), nil
	case r == '\\':
		return lx.lexControlSequence(start)
	case r < 0x20 || r == 0x7f:
		return Token{}, NewParseError("unexpected control character in input", lx.span(start))
	default:
		lx.pos += size
		lx.takeCombiningMarks()
		text := lx.Input[start:lx.pos]
		return NewToken(text, lx.span(start)), nil
	}
}

func (lx *Lexer) catcode(r rune) int {
	if c, ok := lx.catcodes[r]; ok {
		return c
	}
	return 12
}

// SetCatcode gives a character a new category code. Only URL argument
// parsing uses it, for '%' and '~'.
func (lx *Lexer) SetCatcode(r rune, cat int) {
	lx.catcodes[r] = cat
}

func (lx *Lexer) skipComment() {
	nl := strings.IndexByte(lx.Input[lx.pos:], '\n')
	if nl < 0 {
		lx.pos = len(lx.Input)
		if lx.settings != nil {
			lx.settings.UseStrictBehavior("commentAtEnd",
				"% comment has no terminating newline; LaTeX would "+
					"fail because of commenting the end of math mode", nil)
		}
		return
	}
	lx.pos += nl + 1
}

func (lx *Lexer) skipWhitespace() {
	for lx.pos < len(lx.Input) {
		r, size := utf8.DecodeRuneInString(lx.Input[lx.pos:])
		if !isLexSpace(r) {
			break
		}
		lx.pos += size
	}
}

func (lx *Lexer) takeCombiningMarks() {
	for lx.pos < len(lx.Input) {
		r, size := utf8.DecodeRuneInString(lx.Input[lx.pos:])
		if !isCombiningMark(r) {
			break
		}
		lx.pos += size
	}
}

// lexControlSequence reads a token starting at a backslash: a control
// word (\letters, swallowing trailing whitespace), a control symbol
// (\ plus one non-letter), or a whole \verb construct.
func (lx *Lexer) lexControlSequence(start int) (Token, error) {
	lx.pos++ // consume the backslash
	if lx.pos >= len(lx.Input) {
		return NewToken("\\", lx.span(start)), nil
	}
	if tok, ok, err := lx.lexVerb(start); ok || err != nil {
		return tok, err
	}
	r, size := utf8.DecodeRuneInString(lx.Input[lx.pos:])
	if !isLexLetter(r) {
		lx.pos += size
		return NewToken(lx.Input[start:lx.pos], lx.span(start)), nil
	}
	for lx.pos < len(lx.Input) {
		r, size = utf8.DecodeRuneInString(lx.Input[lx.pos:])
		if !isLexLetter(r) {
			break
		}
		lx.pos += size
	}
	text := lx.Input[start:lx.pos]
	lx.skipWhitespace() // TeX ignores whitespace after a control word
	tok := NewToken(text, lx.span(start))
	tok.Span.End = start + len(text)
	return tok, nil
}

// lexVerb recognizes \verb and \verb* directly in the lexer, because
// their bodies suspend all normal tokenization rules. The whole
// construct becomes a single token.
func (lx *Lexer) lexVerb(start int) (Token, bool, error) {
	rest := lx.Input[lx.pos:]
	if !strings.HasPrefix(rest, "verb") {
		return Token{}, false, nil
	}
	after := rest[len("verb"):]
	if after == "" {
		return Token{}, false, nil
	}
	r, size := utf8.DecodeRuneInString(after)
	if isLexLetter(r) {
		return Token{}, false, nil // some longer control word, e.g. \verbatim
	}
	offset := len("verb")
	if r == '*' {
		offset += size
		if offset >= len(rest) {
			return Token{}, true, NewParseError("\\verb ended by end of line instead of matching delimiter",
				&SourceSpan{Start: start, End: len(lx.Input)})
		}
		r, size = utf8.DecodeRuneInString(rest[offset:])
	}
	delim := r
	if delim == '*' || isLexSpace(delim) {
		return Token{}, true, NewParseError("\\verb assertion failed -- invalid delimiter",
			&SourceSpan{Start: start, End: start + 1 + offset})
	}
	body := offset + size
	end := strings.IndexRune(rest[body:], delim)
	nl := strings.IndexByte(rest[body:], '\n')
	if end < 0 || (nl >= 0 && nl < end) {
		return Token{}, true, NewParseError("\\verb ended by end of line instead of matching delimiter",
			&SourceSpan{Start: start, End: len(lx.Input)})
	}
	lx.pos += body + end + utf8.RuneLen(delim)
	return NewToken(lx.Input[start:lx.pos], lx.span(start)), true, nil
}
