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

	"github.com/npillmayer/mathbox/sym"
)

// builtinMacros is the global macro table. User macros from the
// settings shadow it; grouped \def definitions shadow both.
var builtinMacros = map[string]MacroDef{}

func defineMacro(name string, def MacroDef) {
	builtinMacros[name] = def
}

func defineMacroString(name, body string) {
	builtinMacros[name] = MacroString(body)
}

func init() {
	defineExpansionMacros()
	defineDefinitionMacros()
	defineAliasMacros()
	defineSymbolMacros()
	defineEnvironmentShorthands()
	defineTextModeMacros()
	defineLogoMacros()
}

// --- Expansion-control primitives ------------------------------------

func defineExpansionMacros() {
	// \noexpand suppresses the expansion of the following token.
	defineMacro("\\noexpand", MacroFunc(func(e *MacroExpander) MacroExpansion {
		t := e.PopToken()
		if e.IsExpandable(t.Text) {
			t.NoExpand = true
			t.TreatAsRelax = true
		}
		return MacroExpansion{Tokens: []Token{*t}, NumArgs: 0}
	}))

	// \expandafter expands the second-next token once before the next.
	defineMacro("\\expandafter", MacroFunc(func(e *MacroExpander) MacroExpansion {
		t := e.PopToken()
		_, _ = e.ExpandOnce(true)
		return MacroExpansion{Tokens: []Token{*t}, NumArgs: 0}
	}))

	// \relax does nothing but stops argument scanning.
	defineMacro("\\relax", MacroExpansion{UnexpandableTokenName: "\\relax"})

	// \@firstoftwo and \@secondoftwo pick one of two arguments; the
	// conditionals below expand into them.
	defineMacro("\\@firstoftwo", MacroFunc(func(e *MacroExpander) MacroExpansion {
		args, err := e.consumeArgs(2, nil)
		if err != nil {
			return MacroExpansion{Err: err}
		}
		return MacroExpansion{Tokens: reversed(args[0]), NumArgs: 0}
	}))
	defineMacro("\\@secondoftwo", MacroFunc(func(e *MacroExpander) MacroExpansion {
		args, err := e.consumeArgs(2, nil)
		if err != nil {
			return MacroExpansion{Err: err}
		}
		return MacroExpansion{Tokens: reversed(args[1]), NumArgs: 0}
	}))

	// \@ifnextchar peeks at the next nonspace token.
	defineMacro("\\@ifnextchar", MacroFunc(func(e *MacroExpander) MacroExpansion {
		args, err := e.consumeArgs(3, nil)
		if err != nil {
			return MacroExpansion{}
		}
		e.ConsumeSpaces()
		next := e.Future()
		if len(args[0]) == 1 && args[0][0].Text == next.Text {
			return MacroExpansion{Tokens: reversed(args[1]), NumArgs: 0}
		}
		return MacroExpansion{Tokens: reversed(args[2]), NumArgs: 0}
	}))

	defineMacroString("\\@ifstar", "\\@ifnextchar *{\\@firstoftwo{#1}}")

	defineMacro("\\TextOrMath", MacroFunc(func(e *MacroExpander) MacroExpansion {
		args, err := e.consumeArgs(2, nil)
		if err != nil {
			return MacroExpansion{}
		}
		if e.Mode == sym.TextMode {
			return MacroExpansion{Tokens: reversed(args[0]), NumArgs: 0}
		}
		return MacroExpansion{Tokens: reversed(args[1]), NumArgs: 0}
	}))

	// \char produces a symbol by codepoint: \char"5A, \char'132, \char90.
	defineMacro("\\char", MacroFunc(func(e *MacroExpander) MacroExpansion {
		tok := e.PopToken()
		base := 10
		switch tok.Text {
		case "'":
			base = 8
			tok = e.PopToken()
		case "\"":
			base = 16
			tok = e.PopToken()
		case "`":
			tok = e.PopToken()
			text := tok.Text
			if strings.HasPrefix(text, "\\") {
				text = text[1:]
			}
			r := []rune(text)
			if len(r) != 1 {
				return MacroExpansion{}
			}
			return charSymbolExpansion(r[0])
		}
		number := 0
		digits := 0
		for {
			d := digitValue(tok.Text, base)
			if d < 0 {
				e.PushToken(tok)
				break
			}
			number = number*base + d
			digits++
			tok = e.PopToken()
		}
		if digits == 0 {
			return MacroExpansion{}
		}
		return charSymbolExpansion(rune(number))
	}))
}

func digitValue(text string, base int) int {
	if len(text) != 1 {
		return -1
	}
	c := text[0]
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}

func charSymbolExpansion(r rune) MacroExpansion {
	body := fmt.Sprintf("\\@char{%d}", r)
	return MacroString(body).ExpandFor(nil)
}

func reversed(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[len(toks)-1-i] = t
	}
	return out
}

// --- Definition primitives -------------------------------------------

func defineDefinitionMacros() {
	defineMacro("\\def", MacroFunc(macroDef(false, false)))
	defineMacro("\\gdef", MacroFunc(macroDef(true, false)))
	defineMacro("\\edef", MacroFunc(macroDef(false, true)))
	defineMacro("\\xdef", MacroFunc(macroDef(true, true)))
	// \global turns a following \def or \edef into \gdef or \xdef.
	defineMacro("\\global", MacroFunc(func(e *MacroExpander) MacroExpansion {
		e.ConsumeSpaces()
		next := e.PopToken()
		switch next.Text {
		case "\\def":
			next.Text = "\\gdef"
		case "\\edef":
			next.Text = "\\xdef"
		}
		return MacroExpansion{Tokens: []Token{*next}, NumArgs: 0}
	}))
	defineMacroString("\\long", "") // no effect in math input

	defineMacro("\\let", MacroFunc(func(e *MacroExpander) MacroExpansion {
		name := e.PopToken()
		e.ConsumeSpaces()
		next := e.Future()
		if next.Text == "=" {
			e.PopToken()
			e.ConsumeSpaces()
		}
		target := e.PopToken()
		if def := e.Macros.Get(target.Text); def != nil {
			e.Macros.Set(name.Text, def, false)
		} else {
			// \let to a non-macro token: alias the token itself.
			e.Macros.Set(name.Text, MacroExpansion{Tokens: []Token{*target}, NumArgs: 0}, false)
		}
		return MacroExpansion{NumArgs: 0}
	}))

	defineMacro("\\futurelet", MacroFunc(func(e *MacroExpander) MacroExpansion {
		name := e.PopToken()
		middle := e.PopToken()
		next := e.PopToken()
		if def := e.Macros.Get(next.Text); def != nil {
			e.Macros.Set(name.Text, def, false)
		} else {
			e.Macros.Set(name.Text, MacroExpansion{Tokens: []Token{*next}, NumArgs: 0}, false)
		}
		return MacroExpansion{Tokens: []Token{*next, *middle}, NumArgs: 0}
	}))

	defineMacro("\\newcommand", MacroFunc(newCommand(true, false)))
	defineMacro("\\renewcommand", MacroFunc(newCommand(false, true)))
	defineMacro("\\providecommand", MacroFunc(newCommand(true, true)))
}

// newCommand implements the LaTeX definition commands. numArgs comes
// from an optional [n] argument; the body supports #1..#9 markers.
// allowNew permits defining fresh names, allowExisting permits
// overwriting; \providecommand allows both but keeps an existing
// definition.
func newCommand(allowNew, allowExisting bool) func(*MacroExpander) MacroExpansion {
	return func(e *MacroExpander) MacroExpansion {
		e.ConsumeSpaces()
		nameTok := e.PopToken()
		name := nameTok.Text
		if name == "{" {
			// \newcommand{\foo}... form
			inner := e.PopToken()
			name = inner.Text
			if err := e.ConsumeSpec("}"); err != nil {
				return MacroExpansion{Err: err}
			}
		}
		exists := e.IsDefined(name)
		if exists && !allowExisting {
			return MacroExpansion{Err: NewParseError(
				"\\newcommand: attempting to redefine "+name+
					"; use \\renewcommand", nameTok.Span)}
		}
		if !exists && !allowNew {
			return MacroExpansion{Err: NewParseError(
				"\\renewcommand: "+name+" is not yet defined; use \\newcommand",
				nameTok.Span)}
		}
		numArgs := 0
		e.ConsumeSpaces()
		if e.Future().Text == "[" {
			e.PopToken()
			digits := ""
			for {
				tok := e.PopToken()
				if tok.Text == "]" {
					break
				}
				if tok.Text == EOF {
					return MacroExpansion{Err: NewParseError(
						"unterminated argument count", tok.Span)}
				}
				digits += tok.Text
			}
			digits = strings.TrimSpace(digits)
			for _, c := range digits {
				if c < '0' || c > '9' {
					return MacroExpansion{Err: NewParseError(
						"invalid argument count \""+digits+"\"", nameTok.Span)}
				}
				numArgs = numArgs*10 + int(c-'0')
			}
		}
		body, err := e.consumeArg()
		if err != nil {
			return MacroExpansion{Err: err}
		}
		if exists && allowNew && allowExisting {
			// \providecommand keeps the existing definition
			return MacroExpansion{NumArgs: 0}
		}
		e.Macros.Set(name, MacroExpansion{Tokens: reversed(body), NumArgs: numArgs}, true)
		return MacroExpansion{NumArgs: 0}
	}
}

// macroDef implements \def and its variants. It reads a control
// sequence, a parameter text with #1..#9 markers (possibly with
// delimiter tokens between them), and a balanced body.
func macroDef(global, expand bool) func(*MacroExpander) MacroExpansion {
	return func(e *MacroExpander) MacroExpansion {
		nameTok := e.PopToken()
		name := nameTok.Text
		if len(name) < 2 || name[0] != '\\' {
			return MacroExpansion{}
		}
		var delimiters [][2]string
		numArgs := 0
		pending := ""
		for {
			tok := e.PopToken()
			if tok.Text == "{" {
				e.PushToken(tok)
				break
			}
			if tok.Text == EOF {
				return MacroExpansion{}
			}
			if tok.Text == "#" {
				digit := e.PopToken()
				if len(digit.Text) != 1 || digit.Text[0] != byte('1'+numArgs) {
					return MacroExpansion{}
				}
				delimiters = append(delimiters, [2]string{pending, ""})
				pending = ""
				numArgs++
				continue
			}
			if numArgs > 0 {
				delimiters[numArgs-1][1] += tok.Text
			} else {
				pending += tok.Text
			}
		}
		body, err := e.consumeArg()
		if err != nil {
			return MacroExpansion{}
		}
		if expand {
			body = expandTokens(e, body)
		}
		hasDelims := pending != ""
		for _, d := range delimiters {
			if d[0] != "" || d[1] != "" {
				hasDelims = true
			}
		}
		exp := MacroExpansion{Tokens: reversed(body), NumArgs: numArgs}
		if hasDelims {
			// pad to numArgs entries so consumeArgs can index blindly
			for len(delimiters) < numArgs {
				delimiters = append(delimiters, [2]string{})
			}
			exp.Delimiters = delimiters
		}
		e.Macros.Set(name, exp, global)
		return MacroExpansion{NumArgs: 0}
	}
}

// expandTokens fully expands a token list, for \edef bodies.
func expandTokens(e *MacroExpander, toks []Token) []Token {
	eof := NewToken(EOF, nil)
	e.PushToken(&eof)
	e.PushTokens(reversed(toks))
	var out []Token
	for {
		tok, err := e.ExpandNextToken()
		if err != nil || tok.Text == EOF {
			break
		}
		out = append(out, *tok)
	}
	return out
}

// --- Aliases and rewrites --------------------------------------------

func defineAliasMacros() {
	defineMacroString("\\bgroup", "{")
	defineMacroString("\\egroup", "}")
	defineMacroString("\\lq", "`")
	defineMacroString("\\rq", "'")
	defineMacroString("\\aa", "\\r a")
	defineMacroString("\\AA", "\\r A")
	defineMacroString("\\Bbbk", "\\Bbb{k}")

	// Discretionary and spacing rewrites
	defineMacroString("\\ne", "\\neq")
	defineMacroString("\\notin", "\\not\\in")
	defineMacroString("\\ratio", "\\vcentcolon")
	defineMacroString("\\coloncolon", "\\dblcolon")
	defineMacroString("\\colonequals", "\\coloneqq")
	defineMacroString("\\coloncolonequals", "\\Coloneqq")
	defineMacroString("\\equalscolon", "\\eqqcolon")
	defineMacroString("\\equalscoloncolon", "\\Eqqcolon")
	defineMacroString("\\limsup", "\\DOTSB\\operatorname*{lim\\,sup}")
	defineMacroString("\\liminf", "\\DOTSB\\operatorname*{lim\\,inf}")
	defineMacroString("\\injlim", "\\DOTSB\\operatorname*{inj\\,lim}")
	defineMacroString("\\projlim", "\\DOTSB\\operatorname*{proj\\,lim}")
	defineMacroString("\\varlimsup", "\\DOTSB\\operatorname*{\\overline{lim}}")
	defineMacroString("\\varliminf", "\\DOTSB\\operatorname*{\\underline{lim}}")
	defineMacroString("\\varinjlim", "\\DOTSB\\operatorname*{\\underrightarrow{lim}}")
	defineMacroString("\\varprojlim", "\\DOTSB\\operatorname*{\\underleftarrow{lim}}")
	defineMacroString("\\DOTSB", "")

	defineMacroString("\\thinspace", "\\,")
	defineMacroString("\\medspace", "\\:")
	defineMacroString("\\thickspace", "\\;")
	defineMacroString("\\negthinspace", "\\!")
	defineMacroString("\\negmedspace", "\\mkern-4mu")
	defineMacroString("\\negthickspace", "\\mkern-5mu")
	defineMacroString("\\enspace", "\\kern.5em ")
	defineMacroString("\\enskip", "\\hskip.5em\\relax")
	defineMacroString("\\quad", "\\hskip1em\\relax")
	defineMacroString("\\qquad", "\\hskip2em\\relax")
	defineMacroString("\\hfil", "\\kern0em") // fills collapse in math layout
	defineMacroString("\\space", "\\ ")
	defineMacroString("\\nobreakspace", "~")

	defineMacroString("\\dots", "\\TextOrMath{\\textellipsis}{\\mathellipsis}")
	defineMacroString("\\cdots", "\\@cdots")
	defineMacroString("\\dotsb", "\\cdots")
	defineMacroString("\\dotsc", "\\ldots")
	defineMacroString("\\dotsi", "\\!\\cdots")
	defineMacroString("\\dotsm", "\\cdots")
	defineMacroString("\\dotso", "\\ldots")
	defineMacroString("\\ldotp", "\\mathpunct{.}")
	defineMacroString("\\idotsint", "\\int\\cdots\\int")

	defineMacroString("\\iff", "\\;\\Longleftrightarrow\\;")
	defineMacroString("\\implies", "\\;\\Longrightarrow\\;")
	defineMacroString("\\impliedby", "\\;\\Longleftarrow\\;")

	defineMacroString("\\bmod", "\\mathchoice{\\mskip1mu}{\\mskip1mu}{\\mskip5mu}{\\mskip5mu}"+
		"\\mathbin{\\rm mod}"+
		"\\mathchoice{\\mskip1mu}{\\mskip1mu}{\\mskip5mu}{\\mskip5mu}")
	defineMacroString("\\pod", "\\allowbreak\\mathchoice{\\mkern18mu}{\\mkern8mu}{\\mkern8mu}{\\mkern8mu}(#1)")
	defineMacroString("\\pmod", "\\pod{{\\rm mod}\\mkern6mu#1}")
	defineMacroString("\\mod", "\\allowbreak\\mathchoice{\\mkern18mu}{\\mkern12mu}{\\mkern12mu}{\\mkern12mu}{\\rm mod}\\,\\,#1")

	defineMacroString("\\shoveleft", "\\mathllap{#1}")
	defineMacroString("\\shoveright", "\\mathrlap{#1}")

	defineMacroString("\\overset", "\\mathop{#2}\\limits^{#1}")
	defineMacroString("\\underset", "\\mathop{#2}\\limits_{#1}")
	defineMacroString("\\stackrel", "\\mathrel{\\mathop{#2}\\limits^{#1}}")

	defineMacroString("\\tbinom", "\\mathchoice{\\binom{#1}{#2}}{\\binom{#1}{#2}}{\\binom{#1}{#2}}{\\binom{#1}{#2}}")
	defineMacroString("\\dbinom", "{\\displaystyle\\binom{#1}{#2}}")
	defineMacroString("\\boxed", "\\fbox{$\\displaystyle#1$}")

	defineMacroString("\\bra", "\\mathinner{\\langle{#1}|}")
	defineMacroString("\\ket", "\\mathinner{|{#1}\\rangle}")
	defineMacroString("\\braket", "\\mathinner{\\langle{#1}\\rangle}")
	defineMacroString("\\Bra", "\\left\\langle#1\\right|")
	defineMacroString("\\Ket", "\\left|#1\\right\\rangle")

	defineMacroString("\\textdollar", "\\$")

	defineMacroString("\\Box", "\\square")
	defineMacroString("\\Diamond", "\\lozenge")

	defineMacroString("\\arraystretch", "1")

	defineMacroString("\\mathstrut", "\\vphantom{(}")
	defineMacroString("\\strut", "\\rule[-0.3em]{0pt}{1em}")

	defineMacroString("\\hspace", "\\@ifstar\\@hspacer\\@hspace")
	defineMacroString("\\@hspace", "\\hskip #1\\relax")
	defineMacroString("\\@hspacer", "\\rule{0pt}{0pt}\\hskip #1\\relax")

	// Equation tags. \tag stores its rendition in \df@tag, picked up
	// when the top-level parse result is assembled.
	defineMacroString("\\tag", "\\@ifstar\\tag@literal\\tag@paren")
	defineMacroString("\\tag@paren", "\\tag@literal{({#1})}")
	defineMacro("\\tag@literal", MacroFunc(func(e *MacroExpander) MacroExpansion {
		if e.Macros.Has("\\df@tag") {
			return MacroExpansion{Err: NewParseError("multiple \\tag", nil)}
		}
		return MacroString("\\gdef\\df@tag{\\text{#1}}").ExpandFor(e)
	}))
	defineMacroString("\\notag", "\\nonumber")
	defineMacroString("\\nonumber", "\\gdef\\@eqnsw{0}")
}

// --- Symbol shorthands -----------------------------------------------

func defineSymbolMacros() {
	defineMacroString("\\restriction", "\\upharpoonright")
	defineMacroString("\\varGamma", "\\mathit{\\Gamma}")
	defineMacroString("\\varDelta", "\\mathit{\\Delta}")
	defineMacroString("\\varTheta", "\\mathit{\\Theta}")
	defineMacroString("\\varLambda", "\\mathit{\\Lambda}")
	defineMacroString("\\varXi", "\\mathit{\\Xi}")
	defineMacroString("\\varPi", "\\mathit{\\Pi}")
	defineMacroString("\\varSigma", "\\mathit{\\Sigma}")
	defineMacroString("\\varUpsilon", "\\mathit{\\Upsilon}")
	defineMacroString("\\varPhi", "\\mathit{\\Phi}")
	defineMacroString("\\varPsi", "\\mathit{\\Psi}")
	defineMacroString("\\varOmega", "\\mathit{\\Omega}")
}

// --- Environment shorthands ------------------------------------------

func defineEnvironmentShorthands() {
	defineMacroString("\\matrix", "\\begin{matrix}#1\\end{matrix}")
	defineMacroString("\\pmatrix", "\\begin{pmatrix}#1\\end{pmatrix}")
	defineMacroString("\\cases", "\\begin{cases}#1\\end{cases}")
	defineMacroString("\\substack", "\\begin{subarray}{c}#1\\end{subarray}")
	defineMacroString("\\endgraf", "\\\\")
}

// --- Text-mode helpers -----------------------------------------------

func defineTextModeMacros() {
	defineMacroString("\\textunderscore", "\\_")
	defineMacroString("\\degree", "\\textdegree")
	defineMacroString("\\originalcolor", "\\color{black}")
}

// --- Logos ------------------------------------------------------------

func defineLogoMacros() {
	defineMacroString("\\TeX", "\\textrm{T\\kern-.1667em\\raisebox{-.5ex}{E}\\kern-.125emX}")
	defineMacroString("\\LaTeX",
		"\\textrm{L\\kern-.36em\\raisebox{.205em}{\\scriptstyle A}\\kern-.15em\\TeX}")
	defineMacroString("\\KaTeX",
		"\\textrm{K\\kern-.17em\\raisebox{.205em}{\\scriptstyle A}\\kern-.15em\\TeX}")
}
