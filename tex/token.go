package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// SourceSpan locates a stretch of the original input as a half-open
// byte range [Start,End).
type SourceSpan struct {
	Start int
	End   int
}

// MergeSpans joins the range of the first and the last span. Either
// argument may be nil, in which case the other one is returned.
func MergeSpans(first, last *SourceSpan) *SourceSpan {
	if first == nil {
		return last
	}
	if last == nil {
		return first
	}
	return &SourceSpan{Start: first.Start, End: last.End}
}

// Token is an immutable unit of TeX input: a control sequence, a single
// character (possibly with trailing combining marks), or a collapsed
// whitespace run.
type Token struct {
	Text string
	Span *SourceSpan

	// NoExpand marks a token that must not be expanded even if it names
	// an expandable macro (the effect of \noexpand).
	NoExpand bool
	// TreatAsRelax makes the parser see \relax in place of this token.
	TreatAsRelax bool
}

// NewToken creates a token with a span.
func NewToken(text string, span *SourceSpan) Token {
	return Token{Text: text, Span: span}
}

func (t Token) String() string {
	return t.Text
}

// spanOf is a nil-safe accessor used when joining node ranges.
func (t *Token) spanOf() *SourceSpan {
	if t == nil {
		return nil
	}
	return t.Span
}
