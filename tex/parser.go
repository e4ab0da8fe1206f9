package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mathbox/metrics"
	"github.com/npillmayer/mathbox/sym"
)

// Parser turns a TeX math string into a parse tree. It pulls expanded
// tokens from the gullet (the macro expander) and assembles nodes
// bottom-up: symbols and functions into atoms, atoms with scripts into
// SupSub nodes, expressions into node lists.
type Parser struct {
	mode      sym.Mode
	gullet    *MacroExpander
	settings  *Settings
	input     string
	nextToken *Token
	leftrightDepth int
}

// NewParser readies a parser over the input string.
func NewParser(input string, settings *Settings) *Parser {
	if settings == nil {
		s := NewSettings()
		settings = &s
	}
	return &Parser{
		mode:     sym.MathMode,
		gullet:   NewMacroExpander(input, settings, sym.MathMode),
		settings: settings,
		input:    input,
	}
}

// Parse runs the parser over the whole input and returns the root node
// list.
func (p *Parser) Parse() ([]Node, error) {
	if p.settings.EffectiveMaxExpand() < 0 {
		return nil, NewParseError("maxExpand must be a positive number", nil)
	}
	// A group protects macro definitions made during this parse from
	// leaking into a reused namespace.
	if !p.settings.GlobalGroup {
		p.gullet.BeginGroup()
	}
	if p.settings.ColorIsTextColor {
		p.gullet.Macros.Set("\\color", MacroString("\\textcolor"), true)
	}
	parse, err := p.parseExpression(false, "")
	if err != nil {
		p.annotate(err)
		return nil, err
	}
	if err := p.expect(EOF, true); err != nil {
		p.annotate(err)
		return nil, err
	}
	if !p.settings.GlobalGroup {
		p.gullet.EndGroups()
	}
	// \tag leaves its rendition in \df@tag; wrap the whole expression.
	if p.gullet.Macros.Get("\\df@tag") != nil {
		if !p.settings.DisplayMode {
			return nil, NewParseError("\\tag works only in display equations", nil)
		}
		dfTag := NewToken("\\df@tag", nil)
		tagBody, err := p.subparse([]Token{dfTag})
		if err != nil {
			p.annotate(err)
			return nil, err
		}
		parse = []Node{&Tag{
			Info:    Info{Mode: sym.TextMode},
			Body:    parse,
			TagBody: tagBody,
		}}
	}
	return parse, nil
}

// annotate attaches the raw input to parse errors, so Error() can
// render the offending range in context.
func (p *Parser) annotate(err error) {
	if pe, ok := err.(*ParseError); ok && pe.RawInput == "" {
		pe.RawInput = p.input
	}
}

// fetch returns the upcoming token without consuming it.
func (p *Parser) fetch() (*Token, error) {
	if p.nextToken == nil {
		tok, err := p.gullet.ExpandNextToken()
		if err != nil {
			return nil, err
		}
		p.nextToken = tok
	}
	return p.nextToken, nil
}

// consume discards the upcoming token.
func (p *Parser) consume() {
	p.nextToken = nil
}

// expect checks that the upcoming token has the given text, optionally
// consuming it.
func (p *Parser) expect(text string, consume bool) error {
	tok, err := p.fetch()
	if err != nil {
		return err
	}
	if tok.Text != text {
		return errorf(tok, "expected %q, got %q", text, tok.Text)
	}
	if consume {
		p.consume()
	}
	return nil
}

// switchMode flips between math and text mode, in lockstep with the
// gullet.
func (p *Parser) switchMode(mode sym.Mode) {
	p.mode = mode
	p.gullet.SwitchMode(mode)
}

// endOfExpression lists the tokens that end an expression without being
// part of it.
var endOfExpression = map[string]bool{
	"}": true, "\\endgroup": true, "\\end": true, "\\right": true, "&": true,
}

// parseExpression parses a list of atoms until a closing token. With
// breakOnInfix set, it stops in front of infix fraction commands so the
// caller can treat them; breakOnTokenText names one extra stop token.
func (p *Parser) parseExpression(breakOnInfix bool, breakOnTokenText string) ([]Node, error) {
	var body []Node
	for {
		if p.mode == sym.MathMode {
			p.consumeSpaces()
		}
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if endOfExpression[tok.Text] {
			break
		}
		if breakOnTokenText != "" && tok.Text == breakOnTokenText {
			break
		}
		if breakOnInfix {
			if f, ok := functions[tok.Text]; ok && f.Infix {
				break
			}
		}
		atom, err := p.parseAtom(breakOnTokenText)
		if err != nil {
			return nil, err
		}
		if atom == nil {
			break
		}
		if _, internal := atom.(*Internal); internal {
			continue
		}
		body = append(body, atom)
	}
	if p.mode == sym.TextMode {
		body = p.formLigatures(body)
	}
	return p.handleInfixNodes(body)
}

// handleInfixNodes rewrites an expression containing an infix fraction
// command (\over, \choose, ...) into the corresponding generalized
// fraction.
func (p *Parser) handleInfixNodes(body []Node) ([]Node, error) {
	overIndex := -1
	var funcName string
	var infix *Infix
	for i, node := range body {
		if inf, ok := node.(*Infix); ok {
			if overIndex != -1 {
				return nil, errorf(inf.Token, "only one infix operator per group")
			}
			overIndex = i
			funcName = inf.ReplaceWith
			infix = inf
		}
	}
	if overIndex == -1 {
		return body, nil
	}
	numerBody := body[:overIndex]
	denomBody := body[overIndex+1:]
	var numer, denom Node
	if len(numerBody) == 1 {
		if g, ok := numerBody[0].(*OrdGroup); ok && !g.SemiSimple {
			numer = g
		}
	}
	if numer == nil {
		numer = &OrdGroup{Info: Info{Mode: p.mode}, Body: numerBody}
	}
	if len(denomBody) == 1 {
		if g, ok := denomBody[0].(*OrdGroup); ok && !g.SemiSimple {
			denom = g
		}
	}
	if denom == nil {
		denom = &OrdGroup{Info: Info{Mode: p.mode}, Body: denomBody}
	}
	var node Node
	var err error
	if funcName == "\\\\abovefrac" {
		sz := &SizeLit{Info: Info{Mode: p.mode}, Value: *infix.Size}
		node, err = p.callFunction(funcName, []Node{numer, sz, denom}, nil, "")
	} else {
		node, err = p.callFunction(funcName, []Node{numer, denom}, nil, "")
	}
	if err != nil {
		return nil, err
	}
	return []Node{node}, nil
}

// parseAtom parses one atom together with any trailing superscripts,
// subscripts, primes and limit controls.
func (p *Parser) parseAtom(breakOnTokenText string) (Node, error) {
	base, err := p.parseGroup("atom", breakOnTokenText)
	if err != nil {
		return nil, err
	}
	if p.mode == sym.TextMode {
		// Text mode has no scripts.
		return base, nil
	}
	var superscript, subscript Node
	var primes []Node
	for {
		p.consumeSpaces()
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		switch tok.Text {
		case "\\limits", "\\nolimits":
			limits := tok.Text == "\\limits"
			switch b := base.(type) {
			case *Op:
				b.Limits = limits
				b.AlwaysHandleSupSub = true
			case *OperatorName:
				if b.AlwaysHandleSupSub {
					b.Limits = limits
				} else {
					return nil, errorf(tok, "limit controls must follow a math operator")
				}
			default:
				return nil, errorf(tok, "limit controls must follow a math operator")
			}
			p.consume()
		case "^":
			if superscript != nil || primes != nil {
				return nil, errorf(tok, "double superscript")
			}
			superscript, err = p.handleSupSubscript("superscript")
			if err != nil {
				return nil, err
			}
		case "_":
			if subscript != nil {
				return nil, errorf(tok, "double subscript")
			}
			subscript, err = p.handleSupSubscript("subscript")
			if err != nil {
				return nil, err
			}
		case "'":
			if superscript != nil {
				return nil, errorf(tok, "double superscript")
			}
			p.consume()
			primes = append(primes, &MathOrd{Info: info(p.mode, tok), Text: "\\prime"})
			for {
				next, err := p.fetch()
				if err != nil {
					return nil, err
				}
				if next.Text != "'" {
					break
				}
				p.consume()
				primes = append(primes, &MathOrd{Info: info(p.mode, next), Text: "\\prime"})
			}
		default:
			goto done
		}
	}
done:
	if primes != nil {
		// A ^ after primes joins the prime group.
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if tok.Text == "^" {
			sup, err := p.handleSupSubscript("superscript")
			if err != nil {
				return nil, err
			}
			primes = append(primes, sup)
		}
		superscript = &OrdGroup{Info: Info{Mode: p.mode}, Body: primes}
	}
	if superscript == nil && subscript == nil {
		return base, nil
	}
	return &SupSub{
		Info: Info{Mode: p.mode, Span: spanOfNode(base)},
		Base: base,
		Sup:  superscript,
		Sub:  subscript,
	}, nil
}

func spanOfNode(n Node) *SourceSpan {
	if n == nil {
		return nil
	}
	return n.Meta().Span
}

// handleSupSubscript parses the group following a ^ or _.
func (p *Parser) handleSupSubscript(name string) (Node, error) {
	symTok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	text := symTok.Text
	p.consume()
	p.consumeSpaces() // ignore spaces before the argument
	group, err := p.parseGroup(name, "")
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, errorf(symTok, "expected group after %q", text)
	}
	return group, nil
}

// formLigatures replaces -- and --- and quote pairs in text mode.
func (p *Parser) formLigatures(body []Node) []Node {
	out := make([]Node, 0, len(body))
	n := len(body)
	for i := 0; i < n; i++ {
		text, ok := symbolText(body[i])
		if ok && text == "-" && i+1 < n {
			if t2, ok2 := symbolText(body[i+1]); ok2 && t2 == "-" {
				if i+2 < n {
					if t3, ok3 := symbolText(body[i+2]); ok3 && t3 == "-" {
						out = append(out, &TextOrd{Info: Info{Mode: p.mode}, Text: "---"})
						i += 2
						continue
					}
				}
				out = append(out, &TextOrd{Info: Info{Mode: p.mode}, Text: "--"})
				i++
				continue
			}
		}
		if ok && (text == "`" || text == "'") && i+1 < n {
			if t2, ok2 := symbolText(body[i+1]); ok2 && t2 == text {
				lig := "''"
				if text == "`" {
					lig = "``"
				}
				out = append(out, &TextOrd{Info: Info{Mode: p.mode}, Text: lig})
				i++
				continue
			}
		}
		out = append(out, body[i])
	}
	return out
}

func symbolText(n Node) (string, bool) {
	switch s := n.(type) {
	case *TextOrd:
		return s.Text, true
	case *MathOrd:
		return s.Text, true
	case *Atom:
		return s.Text, true
	}
	return "", false
}

// parseGroup parses a brace group, a semi-simple group, a function with
// its arguments, or a single symbol.
func (p *Parser) parseGroup(name string, breakOnTokenText string) (Node, error) {
	firstToken, err := p.fetch()
	if err != nil {
		return nil, err
	}
	text := firstToken.Text
	if text == "{" || text == "\\begingroup" {
		p.consume()
		groupEnd := "}"
		if text == "\\begingroup" {
			groupEnd = "\\endgroup"
		}
		p.gullet.BeginGroup()
		expression, err := p.parseExpression(false, groupEnd)
		if err != nil {
			return nil, err
		}
		lastToken, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if err := p.expect(groupEnd, true); err != nil {
			return nil, err
		}
		if err := p.gullet.EndGroup(); err != nil {
			return nil, err
		}
		return &OrdGroup{
			Info:       Info{Mode: p.mode, Span: MergeSpans(firstToken.Span, lastToken.Span)},
			Body:       expression,
			SemiSimple: text == "\\begingroup",
		}, nil
	}
	result, err := p.parseFunction(breakOnTokenText, name)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}
	result, err = p.parseSymbol()
	if err != nil {
		return nil, err
	}
	if result == nil && strings.HasPrefix(text, "\\") &&
		!implicitCommands[text] {
		if p.settings.ThrowOnError {
			return nil, errorf(firstToken, "undefined control sequence: %s", text)
		}
		p.consume()
		return p.formatUnsupportedCmd(text, firstToken), nil
	}
	return result, nil
}

// formatUnsupportedCmd turns an unknown command into literal error-
// colored text, for lenient rendering.
func (p *Parser) formatUnsupportedCmd(text string, tok *Token) Node {
	var body []Node
	for _, r := range text {
		body = append(body, &TextOrd{Info: info(p.mode, tok), Text: string(r)})
	}
	inner := &TextNode{Info: info(p.mode, tok), Body: body}
	return &ColorNode{
		Info:  info(p.mode, tok),
		Color: p.settings.EffectiveErrorColor(),
		Body:  []Node{inner},
	}
}

// parseFunction parses a function call with its arguments, or returns
// nil if the upcoming token is not a function.
func (p *Parser) parseFunction(breakOnTokenText, name string) (Node, error) {
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	funcName := tok.Text
	spec, ok := functions[funcName]
	if !ok {
		return nil, nil
	}
	p.consume()
	if name != "" && name != "atom" && !spec.AllowedInArgument {
		return nil, errorf(tok,
			"got function %q with no arguments as %s", funcName, name)
	}
	if p.mode == sym.TextMode && !spec.AllowedInText {
		return nil, errorf(tok, "can't use function %q in text mode", funcName)
	}
	if p.mode == sym.MathMode && !spec.AllowedInMath {
		return nil, errorf(tok, "can't use function %q in math mode", funcName)
	}
	args, optArgs, err := p.parseArguments(funcName, spec)
	if err != nil {
		return nil, err
	}
	return p.callFunctionWithToken(funcName, tok, args, optArgs, breakOnTokenText)
}

func (p *Parser) callFunction(name string, args, optArgs []Node, breakOnTokenText string) (Node, error) {
	return p.callFunctionWithToken(name, nil, args, optArgs, breakOnTokenText)
}

func (p *Parser) callFunctionWithToken(name string, tok *Token, args, optArgs []Node, breakOnTokenText string) (Node, error) {
	spec, ok := functions[name]
	if !ok || spec.Handler == nil {
		return nil, errorf(tok, "no function handler for %s", name)
	}
	ctx := FuncContext{
		FuncName:         name,
		Parser:           p,
		Token:            tok,
		BreakOnTokenText: breakOnTokenText,
	}
	return spec.Handler(ctx, args, optArgs)
}

// parseArguments reads the expected arguments of a function.
func (p *Parser) parseArguments(funcName string, spec *FuncSpec) (args []Node, optArgs []Node, err error) {
	total := spec.NumArgs + spec.NumOptionalArgs
	if total == 0 {
		return nil, nil, nil
	}
	for i := 0; i < total; i++ {
		argType := "original"
		if i < len(spec.ArgTypes) && spec.ArgTypes[i] != "" {
			argType = spec.ArgTypes[i]
		}
		isOptional := i < spec.NumOptionalArgs
		consumeSpaces := (i > 0 && !isOptional) ||
			(i == 0 && !isOptional && p.mode == sym.MathMode)
		if consumeSpaces {
			p.consumeSpaces()
		}
		arg, err := p.parseGroupOfType(funcName, argType, isOptional)
		if err != nil {
			return nil, nil, err
		}
		if isOptional {
			optArgs = append(optArgs, arg)
			continue
		}
		if arg == nil {
			return nil, nil, NewParseError("null argument, please report this as a bug", nil)
		}
		args = append(args, arg)
	}
	return args, optArgs, nil
}

// parseGroupOfType parses one argument of the named type.
func (p *Parser) parseGroupOfType(funcName, argType string, optional bool) (Node, error) {
	switch argType {
	case "color":
		return p.parseColorGroup(optional)
	case "size":
		return p.parseSizeGroup(optional)
	case "url":
		return p.parseUrlGroup(optional)
	case "raw":
		str, tok, err := p.parseStringGroup("raw", optional)
		if err != nil {
			return nil, err
		}
		if str == "" && optional {
			return nil, nil
		}
		return &Raw{Info: info(sym.TextMode, tok), String: str}, nil
	case "original", "":
		return p.parseArgumentGroup(optional, "")
	case "hbox":
		// \hbox arguments switch into text mode with \textstyle layout.
		arg, err := p.parseArgumentGroup(optional, "text")
		if err != nil || arg == nil {
			return arg, err
		}
		g, _ := arg.(*OrdGroup)
		styled := &Styling{Info: g.Info, Style: "text", Body: g.Body}
		return &OrdGroup{Info: g.Info, Body: []Node{styled}}, nil
	case "primitive":
		if optional {
			return nil, NewParseError("a primitive argument cannot be optional", nil)
		}
		group, err := p.parseGroup(funcName, "")
		if err != nil {
			return nil, err
		}
		if group == nil {
			tok, _ := p.fetch()
			return nil, errorf(tok, "expected group as argument to %q", funcName)
		}
		return group, nil
	case "math", "text":
		return p.parseArgumentGroup(optional, argType)
	default:
		return nil, NewParseError("unknown group type "+argType, nil)
	}
}

// parseArgumentGroup parses a braced group (or a single item for
// required arguments), optionally switching mode for its duration.
func (p *Parser) parseArgumentGroup(optional bool, mode string) (Node, error) {
	firstToken, err := p.fetch()
	if err != nil {
		return nil, err
	}
	open := "{"
	close := "}"
	if optional {
		open = "["
		close = "]"
	}
	if firstToken.Text != open {
		if optional {
			return nil, nil
		}
		// A required argument may be a single token group.
		outer := p.mode
		if mode != "" {
			p.switchMode(modeFromString(mode))
		}
		group, err := p.parseGroup("argument", "")
		if mode != "" {
			p.switchMode(outer)
		}
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, errorf(firstToken, "expected group after function")
		}
		return group, nil
	}
	outer := p.mode
	if mode != "" {
		p.switchMode(modeFromString(mode))
	}
	p.consume()
	p.gullet.BeginGroup()
	expression, err := p.parseExpression(false, close)
	if err != nil {
		return nil, err
	}
	lastToken, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if err := p.expect(close, true); err != nil {
		return nil, err
	}
	if err := p.gullet.EndGroup(); err != nil {
		return nil, err
	}
	if mode != "" {
		p.switchMode(outer)
	}
	return &OrdGroup{
		Info: Info{Mode: p.mode, Span: MergeSpans(firstToken.Span, lastToken.Span)},
		Body: expression,
	}, nil
}

func modeFromString(s string) sym.Mode {
	if s == "text" {
		return sym.TextMode
	}
	return sym.MathMode
}

// parseStringGroup reads a braced group as a raw string, without
// expanding its tokens.
func (p *Parser) parseStringGroup(modeName string, optional bool) (string, *Token, error) {
	if p.nextToken != nil {
		// The argument scan starts at the parser's lookahead token.
		p.gullet.PushToken(p.nextToken)
		p.nextToken = nil
	}
	argToken, err := p.gullet.scanArgument(optional)
	if err != nil {
		return "", nil, err
	}
	if argToken == nil {
		return "", nil, nil
	}
	var sb strings.Builder
	for {
		tok := p.gullet.PopToken()
		if tok.Text == EOF {
			break
		}
		sb.WriteString(tok.Text)
	}
	return sb.String(), argToken, nil
}

// parseRegexGroup reads tokens matching a regex, for \verb-free string
// arguments appearing without braces.
func (p *Parser) parseRegexGroup(re *regexp.Regexp, modeName string) (string, *Token, error) {
	firstToken, err := p.fetch()
	if err != nil {
		return "", nil, err
	}
	lastToken := firstToken
	var sb strings.Builder
	for {
		tok, err := p.fetch()
		if err != nil {
			return "", nil, err
		}
		if tok.Text == EOF || !re.MatchString(sb.String()+tok.Text) {
			break
		}
		lastToken = tok
		sb.WriteString(tok.Text)
		p.consume()
	}
	if sb.Len() == 0 {
		return "", nil, errorf(firstToken, "invalid %s: %q", modeName, firstToken.Text)
	}
	_ = lastToken
	return sb.String(), firstToken, nil
}

var colorRe = regexp.MustCompile(`^(#[a-fA-F0-9]{3}|#?[a-fA-F0-9]{6}|[a-zA-Z]+)$`)

// parseColorGroup parses a color argument: a named color or a hex spec.
func (p *Parser) parseColorGroup(optional bool) (Node, error) {
	str, tok, err := p.parseStringGroup("color", optional)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	match := colorRe.FindString(strings.TrimSpace(str))
	if match == "" {
		return nil, errorf(tok, "invalid color: %q", str)
	}
	color := match
	if hexOnly.MatchString(color) && !strings.HasPrefix(color, "#") {
		// Standard LaTeX requires a predefined color name, but bare hex
		// is accepted with a # prepended.
		color = "#" + color
	}
	return &ColorToken{Info: info(sym.MathMode, tok), Color: color}, nil
}

var hexOnly = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

var sizeRe = regexp.MustCompile(`^\s*([-+]?)\s*(\d+(?:\.\d*)?|\.\d+)\s*([a-z]{2})\s*$`)

// parseSizeGroup parses a size argument such as 1.2em or -3mu.
func (p *Parser) parseSizeGroup(optional bool) (Node, error) {
	var str string
	var tok *Token
	var err error
	fetched, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if !optional && fetched.Text != "{" {
		str, tok, err = p.parseRegexGroup(
			regexp.MustCompile(`^[-+]? *(?:$|\d+|\d+\.\d*|\.\d*) *[a-z]{0,2} *$`), "size")
	} else {
		str, tok, err = p.parseStringGroup("size", optional)
	}
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if !optional && str == "" {
		// An empty size defaults at build time.
		return &SizeLit{Info: info(sym.MathMode, tok), IsBlank: true}, nil
	}
	m := sizeRe.FindStringSubmatch(str)
	if m == nil {
		return nil, errorf(tok, "invalid size: %q", str)
	}
	number, err := strconv.ParseFloat(m[1]+m[2], 64)
	if err != nil {
		return nil, errorf(tok, "invalid size: %q", str)
	}
	data := Measurement{Number: number, Unit: m[3]}
	if !data.ValidUnit() {
		return nil, errorf(tok, "invalid unit: %q", m[3])
	}
	return &SizeLit{Info: info(sym.MathMode, tok), Value: data}, nil
}

// parseUrlGroup parses a URL argument, with % allowed as a literal.
func (p *Parser) parseUrlGroup(optional bool) (Node, error) {
	p.gullet.lexer.SetCatcode('%', 13)
	p.gullet.lexer.SetCatcode('~', 12)
	str, tok, err := p.parseStringGroup("url", optional)
	p.gullet.lexer.SetCatcode('%', 14)
	p.gullet.lexer.SetCatcode('~', 13)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	// hyperref unescapes \ before special characters
	url := regexp.MustCompile(`\\([#$%&~_^{}])`).ReplaceAllString(str, "$1")
	return &URLNode{Info: info(sym.TextMode, tok), URL: url}, nil
}

// parseSymbol parses a single symbol from the symbol table, a \verb
// construct, or a plain unicode character.
func (p *Parser) parseSymbol() (Node, error) {
	nucleus, err := p.fetch()
	if err != nil {
		return nil, err
	}
	text := nucleus.Text
	if strings.HasPrefix(text, "\\verb") {
		p.consume()
		return p.makeVerb(nucleus)
	}
	// Strip trailing combining marks for the table lookup.
	base, marks := splitCombiningMarks(text)
	if s, ok := sym.Get(p.mode, base); ok {
		if p.mode == sym.MathMode && strings.ContainsRune(extraLatin, firstRune(base)) {
			if err := p.settings.ReportNonstrict("unicodeTextInMathMode",
				"accented unicode text character \""+base+"\" used in math mode", nucleus.Span); err != nil {
				return nil, err
			}
		}
		p.consume()
		node := p.symbolNode(s.Group, base+marks, nucleus)
		if marks != "" {
			// Wrap each combining mark as an accent over the base.
			return p.wrapCombining(node, marks, nucleus)
		}
		return node, nil
	}
	r := firstRune(text)
	if r >= 0x80 {
		p.consume()
		known := charKnown(r)
		if !known {
			if err := p.settings.ReportNonstrict("unknownSymbol",
				"unrecognized unicode character \""+string(r)+"\"", nucleus.Span); err != nil {
				return nil, err
			}
		} else if p.mode == sym.MathMode {
			if err := p.settings.ReportNonstrict("unicodeTextInMathMode",
				"unicode text character \""+string(r)+"\" used in math mode", nucleus.Span); err != nil {
				return nil, err
			}
		}
		if p.mode == sym.MathMode {
			return &MathOrd{Info: info(p.mode, nucleus), Text: text}, nil
		}
		return &TextOrd{Info: info(p.mode, nucleus), Text: text}, nil
	}
	return nil, nil
}

const extraLatin = "åäöÅÄÖ"

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func splitCombiningMarks(s string) (base, marks string) {
	for i, r := range s {
		if isCombiningMark(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// charKnown reports whether the glyph is inside the coverage of the
// supported scripts.
func charKnown(r rune) bool {
	return metrics.SupportedCodepoint(r)
}

// symbolNode builds the right leaf node for a symbol-table group.
func (p *Parser) symbolNode(group sym.Group, text string, tok *Token) Node {
	in := info(p.mode, tok)
	switch group {
	case sym.Bin, sym.Rel, sym.Open, sym.Close, sym.Inner, sym.Punct:
		return &Atom{Info: in, Family: group, Text: text}
	case sym.Op:
		return &OpToken{Info: in, Text: text}
	case sym.AccentToken:
		return &AccentTok{Info: in, Text: text}
	case sym.Spacing:
		return &SpacingSym{Info: in, Text: text}
	case sym.TextOrd:
		return &TextOrd{Info: in, Text: text}
	default:
		if p.mode == sym.TextMode {
			return &TextOrd{Info: in, Text: text}
		}
		return &MathOrd{Info: in, Text: text}
	}
}

// wrapCombining wraps a base symbol in accent nodes, innermost first.
func (p *Parser) wrapCombining(base Node, marks string, tok *Token) (Node, error) {
	node := base
	for _, mark := range marks {
		name, ok := combiningAccents[mark]
		if !ok {
			return nil, errorf(tok, "unknown accent %q", string(mark))
		}
		node = &Accent{
			Info:     info(p.mode, tok),
			Label:    name,
			IsShifty: true,
			Base:     node,
		}
	}
	return node, nil
}

// combiningAccents maps combining codepoints to accent commands.
var combiningAccents = map[rune]string{
	0x0300: "\\grave",
	0x0301: "\\acute",
	0x0302: "\\hat",
	0x0303: "\\tilde",
	0x0304: "\\bar",
	0x0306: "\\breve",
	0x0307: "\\dot",
	0x0308: "\\ddot",
	0x030a: "\\mathring",
	0x030c: "\\check",
	0x0332: "\\underline",
}

// makeVerb unpacks a \verb token produced by the lexer.
func (p *Parser) makeVerb(tok *Token) (Node, error) {
	text := tok.Text
	star := false
	body := text[len("\\verb"):]
	if strings.HasPrefix(body, "*") {
		star = true
		body = body[1:]
	}
	if len(body) < 2 {
		return nil, errorf(tok, "\\verb assertion failed")
	}
	_, size := utf8.DecodeRuneInString(body)
	body = body[size : len(body)-size]
	return &Verb{Info: info(sym.TextMode, tok), Body: body, Star: star}, nil
}

// consumeSpaces discards space tokens in front of the parser.
func (p *Parser) consumeSpaces() {
	for {
		tok, err := p.fetch()
		if err != nil {
			return
		}
		if tok.Text != " " {
			return
		}
		p.consume()
	}
}

// subparse parses a token list in a fresh expression context, used for
// token lists stored away during the parse (the \df@tag rendition of a
// \tag).
func (p *Parser) subparse(tokens []Token) ([]Node, error) {
	oldNext := p.nextToken
	p.nextToken = nil
	eof := NewToken(EOF, nil)
	p.gullet.PushToken(&eof)
	p.gullet.PushTokens(reversed(tokens))
	parse, err := p.parseExpression(false, "")
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF, true); err != nil {
		return nil, err
	}
	p.nextToken = oldNext
	return parse, nil
}
