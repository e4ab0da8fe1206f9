package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "math"

// StrictMode selects how non-strict (non-TeX-compatible) input is
// treated: raise an error, trace a warning, or stay silent.
type StrictMode string

// The three fixed strictness policies.
const (
	StrictError  StrictMode = "error"
	StrictWarn   StrictMode = "warn"
	StrictIgnore StrictMode = "ignore"
)

// StrictFunc lets a host decide strictness per error code and site.
// Returning the empty string means "ignore".
type StrictFunc func(errorCode, msg string, span *SourceSpan) StrictMode

// TrustContext describes a command that wants to do something
// potentially unsafe, e.g. emit a hyperlink or embed an image.
type TrustContext struct {
	Command  string // e.g. "\\href"
	URL      string
	Protocol string // scheme, or "_relative"
}

// OutputFormat selects which of the two output trees are assembled.
type OutputFormat string

// Recognized output formats.
const (
	OutputHTML          OutputFormat = "html"
	OutputMathML        OutputFormat = "mathml"
	OutputHTMLAndMathML OutputFormat = "htmlAndMathml"
)

// Settings is the host-facing configuration record. The zero value is
// usable: text style, HTML+MathML output, errors not thrown (NewSettings
// turns ThrowOnError on), TeX-strictness warnings traced.
type Settings struct {
	DisplayMode      bool
	Output           OutputFormat
	Leqno            bool
	Fleqn            bool
	ThrowOnError     bool
	ErrorColor       string
	Macros           map[string]MacroDef
	MinRuleThickness float64 // em
	ColorIsTextColor bool
	Strict           StrictMode
	StrictFunc       StrictFunc // consulted before Strict if non-nil
	Trust            bool
	TrustFunc        func(TrustContext) bool // consulted before Trust if non-nil
	MaxSize          float64                 // pt; 0 means unlimited
	MaxExpand        int                     // 0 means the default of 1000
	// GlobalGroup lets macro definitions made during a parse persist in
	// the settings' macro map across calls.
	GlobalGroup bool
}

// NewSettings returns settings with the conventional defaults
// (ThrowOnError on, both output trees).
func NewSettings() Settings {
	return Settings{
		ThrowOnError: true,
		ErrorColor:   "#cc0000",
		Output:       OutputHTMLAndMathML,
	}
}

// EffectiveErrorColor returns ErrorColor or the default error red.
func (s *Settings) EffectiveErrorColor() string {
	if s.ErrorColor == "" {
		return "#cc0000"
	}
	return s.ErrorColor
}

// EffectiveMaxSize returns MaxSize, mapping the zero value to
// "unlimited".
func (s *Settings) EffectiveMaxSize() float64 {
	if s.MaxSize <= 0 {
		return math.Inf(1)
	}
	return s.MaxSize
}

// EffectiveMaxExpand returns MaxExpand, mapping the zero value to the
// default bound of 1000 macro expansions.
func (s *Settings) EffectiveMaxExpand() int {
	if s.MaxExpand <= 0 {
		return 1000
	}
	return s.MaxExpand
}

// EffectiveOutput maps the zero value to htmlAndMathml.
func (s *Settings) EffectiveOutput() OutputFormat {
	if s.Output == "" {
		return OutputHTMLAndMathML
	}
	return s.Output
}

// ReportNonstrict handles a non-strict condition: returns a ParseError
// under policy "error", traces under "warn", stays silent under
// "ignore". The span may be nil.
func (s *Settings) ReportNonstrict(errorCode, msg string, span *SourceSpan) error {
	mode := s.Strict
	if s.StrictFunc != nil {
		mode = s.StrictFunc(errorCode, msg, span)
	}
	if mode == "" {
		mode = StrictWarn
	}
	switch mode {
	case StrictIgnore:
		return nil
	case StrictError:
		return NewParseError("LaTeX-incompatible input and strict mode is set to 'error': "+
			msg+" ["+errorCode+"]", span)
	default:
		tracer().Infof("LaTeX-incompatible input: %s [%s]", msg, errorCode)
		return nil
	}
}

// UseStrictBehavior decides a feature switch: true means behave
// strictly. A "warn" policy traces and behaves non-strictly.
func (s *Settings) UseStrictBehavior(errorCode, msg string, span *SourceSpan) bool {
	mode := s.Strict
	if s.StrictFunc != nil {
		mode = s.StrictFunc(errorCode, msg, span)
	}
	if mode == StrictError {
		return true
	}
	if mode == StrictWarn || mode == "" {
		tracer().Infof("LaTeX-incompatible input: %s [%s]", msg, errorCode)
	}
	return false
}

// IsTrusted decides whether a trust context may proceed. URLs with
// malformed schemes are never trusted.
func (s *Settings) IsTrusted(ctx TrustContext) bool {
	if ctx.URL != "" && ctx.Protocol == "" {
		ctx.Protocol = protocolFromURL(ctx.URL)
		if ctx.Protocol == "" {
			return false
		}
	}
	if s.TrustFunc != nil {
		return s.TrustFunc(ctx)
	}
	return s.Trust
}

// protocolFromURL extracts a lowercased URL scheme, "_relative" for
// scheme-less URLs, or "" for malformed ones.
func protocolFromURL(url string) string {
	i := 0
	for i < len(url) {
		c := url[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++ // leading control/space characters are stripped by browsers
			continue
		}
		break
	}
	url = url[i:]
	for j := 0; j < len(url); j++ {
		c := url[j]
		switch {
		case c == ':':
			if j == 0 {
				return ""
			}
			return toLowerASCII(url[:j])
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			continue
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
			continue
		default:
			return "_relative"
		}
	}
	return "_relative"
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
