package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// ParseError is the one error kind reported by the whole pipeline. It
// carries the position within the original input, if known, so a host
// can underline the offending range.
type ParseError struct {
	Msg      string
	Span     *SourceSpan
	RawInput string // the full source string, for context rendering
}

// NewParseError creates a ParseError pointing at the given span, which
// may be nil if no position is known.
func NewParseError(msg string, span *SourceSpan) *ParseError {
	return &ParseError{Msg: msg, Span: span}
}

// errorf creates a ParseError with a formatted message, located at the
// span of tok (may be nil).
func errorf(tok *Token, format string, args ...interface{}) *ParseError {
	var span *SourceSpan
	if tok != nil {
		span = tok.Span
	}
	return NewParseError(fmt.Sprintf(format, args...), span)
}

// Error renders the message together with an excerpt of the input. The
// offending range is marked by following each of its characters with a
// combining low line, the same trick TeX-aware tools use to underline
// errors in plain-text logs.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("ParseError: ")
	b.WriteString(e.Msg)
	if e.Span == nil || e.RawInput == "" {
		return b.String()
	}
	start, end := e.Span.Start, e.Span.End
	if start < 0 || start > len(e.RawInput) || end < start || end > len(e.RawInput) {
		return b.String()
	}
	if start == len(e.RawInput) {
		b.WriteString(" at end of input: ")
		b.WriteString(underline(e.RawInput))
		return b.String()
	}
	fmt.Fprintf(&b, " at position %d: ", start+1)
	prefix := e.RawInput[:start]
	if start > 15 {
		prefix = "…" + e.RawInput[start-15:start]
	}
	b.WriteString(prefix)
	b.WriteString(underline(e.RawInput[start:end]))
	b.WriteString(e.RawInput[end:])
	return b.String()
}

// underline appends U+0332 COMBINING LOW LINE after every rune of s.
func underline(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune('̲')
	}
	return b.String()
}
