package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/mathbox/sym"
)

// MacroDef is anything a control sequence can expand to. The three
// implementations cover a replacement string (parsed lazily), a
// pre-tokenized expansion, and a callback computing the expansion from
// the expander state.
type MacroDef interface {
	ExpandFor(e *MacroExpander) MacroExpansion
}

// MacroString is a macro defined by its replacement text. Parameter
// markers #1..#9 select delivered arguments.
type MacroString string

// MacroExpansion is the tokenized form of a macro body. Tokens are
// stored in reverse order, ready to be pushed onto the expander stack.
type MacroExpansion struct {
	Tokens    []Token
	NumArgs   int
	Delimiters [][2]string // per-argument [before, after] delimiter texts
	// UnexpandableTokenName is set when the expansion is a single token
	// that must not be expanded again (the \noexpand mechanism).
	UnexpandableTokenName string
	// Err reports a failure inside a MacroFunc callback.
	Err error
}

// MacroFunc computes an expansion from the current expander state. The
// function may consume arguments from the token stream.
type MacroFunc func(e *MacroExpander) MacroExpansion

func (s MacroString) ExpandFor(e *MacroExpander) MacroExpansion {
	numArgs := 0
	body := string(s)
	if strings.Contains(body, "#") {
		stripped := strings.ReplaceAll(body, "##", "")
		for numArgs < 9 && strings.Contains(stripped, "#"+string(rune('1'+numArgs))) {
			numArgs++
		}
	}
	var settings *Settings
	if e != nil {
		settings = e.settings
	}
	lex := NewLexer(body, settings)
	var toks []Token
	for {
		tok, err := lex.Lex()
		if err != nil || tok.Text == EOF {
			break
		}
		toks = append(toks, tok)
	}
	reverse(toks)
	return MacroExpansion{Tokens: toks, NumArgs: numArgs}
}

func (x MacroExpansion) ExpandFor(*MacroExpander) MacroExpansion { return x }

func (f MacroFunc) ExpandFor(e *MacroExpander) MacroExpansion { return f(e) }

func reverse(toks []Token) {
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
}

// Namespace is a two-level macro table: global builtins overlaid by
// grouped user definitions. \begingroup pushes an undo frame,
// \endgroup pops it.
type Namespace struct {
	current map[string]MacroDef
	builtin map[string]MacroDef
	undefStack []map[string]*macroSlot
}

type macroSlot struct {
	def MacroDef
	had bool
}

// NewNamespace builds a namespace over the builtin macro table, with
// the per-call macros from the settings layered on top.
func NewNamespace(builtin map[string]MacroDef, user map[string]MacroDef) *Namespace {
	ns := &Namespace{
		current: make(map[string]MacroDef),
		builtin: builtin,
	}
	for name, def := range user {
		ns.current[name] = def
	}
	return ns
}

// Has reports whether name is defined, user or builtin.
func (ns *Namespace) Has(name string) bool {
	if _, ok := ns.current[name]; ok {
		return true
	}
	_, ok := ns.builtin[name]
	return ok
}

// Get returns the definition of name, or nil.
func (ns *Namespace) Get(name string) MacroDef {
	if def, ok := ns.current[name]; ok {
		return def
	}
	return ns.builtin[name]
}

// Set defines name. With global set, the definition erases any grouped
// shadowing and survives \endgroup.
func (ns *Namespace) Set(name string, def MacroDef, global bool) {
	if global {
		for _, frame := range ns.undefStack {
			delete(frame, name)
		}
		if len(ns.undefStack) > 0 {
			last := ns.undefStack[len(ns.undefStack)-1]
			last[name] = &macroSlot{def: def, had: def != nil}
		}
	} else if len(ns.undefStack) > 0 {
		last := ns.undefStack[len(ns.undefStack)-1]
		if _, recorded := last[name]; !recorded {
			old, had := ns.current[name]
			last[name] = &macroSlot{def: old, had: had}
		}
	}
	if def == nil {
		delete(ns.current, name)
	} else {
		ns.current[name] = def
	}
}

// getColor reads the current color state, kept in the \current@color
// macro by the color commands.
func (ns *Namespace) getColor() string {
	if def, ok := ns.current["\\current@color"]; ok {
		if s, ok := def.(MacroString); ok {
			return string(s)
		}
	}
	return ""
}

// BeginGroup opens an undo frame.
func (ns *Namespace) BeginGroup() {
	ns.undefStack = append(ns.undefStack, make(map[string]*macroSlot))
}

// EndGroup closes the innermost undo frame, restoring shadowed
// definitions.
func (ns *Namespace) EndGroup() error {
	if len(ns.undefStack) == 0 {
		return NewParseError("\\endgroup without \\begingroup", nil)
	}
	frame := ns.undefStack[len(ns.undefStack)-1]
	ns.undefStack = ns.undefStack[:len(ns.undefStack)-1]
	for name, slot := range frame {
		if slot.had {
			ns.current[name] = slot.def
		} else {
			delete(ns.current, name)
		}
	}
	return nil
}

// EndGroups closes all open frames, as at the end of the input.
func (ns *Namespace) EndGroups() {
	for len(ns.undefStack) > 0 {
		_ = ns.EndGroup()
	}
}

// MacroExpander delivers a stream of fully expanded tokens. It drains a
// stack of token sources: the bottom is the lexer over the input,
// pushed layers are pending macro expansions.
type MacroExpander struct {
	settings *Settings
	Macros   *Namespace
	Mode     sym.Mode
	lexer    *Lexer
	stack    []Token // pending tokens, last = next
	expansionCount int
	// lexErr stashes the first lexer error, scanner style. After an
	// error the token stream ends with EOF; callers pick the error up
	// through Err or from ExpandOnce.
	lexErr error
}

// NewMacroExpander readies an expander over the input string.
func NewMacroExpander(input string, settings *Settings, mode sym.Mode) *MacroExpander {
	e := &MacroExpander{
		settings: settings,
		Macros:   NewNamespace(builtinMacros, settings.Macros),
		Mode:     mode,
	}
	e.Feed(input)
	return e
}

// Feed restarts the expander over a new input string, keeping the macro
// namespace.
func (e *MacroExpander) Feed(input string) {
	e.lexer = NewLexer(input, e.settings)
	e.stack = e.stack[:0]
	e.lexErr = nil
}

// SwitchMode toggles between math and text mode. Some macros expand
// differently per mode.
func (e *MacroExpander) SwitchMode(mode sym.Mode) {
	e.Mode = mode
}

// BeginGroup and EndGroup delegate to the macro namespace so that
// grouped \def definitions unwind correctly.
func (e *MacroExpander) BeginGroup()      { e.Macros.BeginGroup() }
func (e *MacroExpander) EndGroup() error  { return e.Macros.EndGroup() }
func (e *MacroExpander) EndGroups()       { e.Macros.EndGroups() }

// PushToken returns tok to the front of the stream.
func (e *MacroExpander) PushToken(tok *Token) {
	e.stack = append(e.stack, *tok)
}

// PushTokens returns a whole expansion to the stream. toks must already
// be in reverse order.
func (e *MacroExpander) PushTokens(toks []Token) {
	e.stack = append(e.stack, toks...)
}

// PopToken yields the next raw token, unexpanded.
func (e *MacroExpander) PopToken() *Token {
	if n := len(e.stack); n > 0 {
		tok := e.stack[n-1]
		e.stack = e.stack[:n-1]
		return &tok
	}
	tok, err := e.lexer.Lex()
	if err != nil {
		if e.lexErr == nil {
			e.lexErr = err
		}
		eof := NewToken(EOF, nil)
		return &eof
	}
	return &tok
}

// Err returns the first lexer error encountered, if any.
func (e *MacroExpander) Err() error {
	return e.lexErr
}

// Future peeks at the next raw token without consuming it.
func (e *MacroExpander) Future() *Token {
	tok := e.PopToken()
	e.PushToken(tok)
	return tok
}

// ConsumeSpaces discards whitespace tokens at the front of the stream.
func (e *MacroExpander) ConsumeSpaces() {
	for {
		tok := e.Future()
		if tok.Text != " " {
			break
		}
		e.PopToken()
	}
}

// ConsumeSpec consumes the exact token text given, or fails.
func (e *MacroExpander) ConsumeSpec(text string) error {
	tok := e.PopToken()
	if tok.Text != text {
		return errorf(tok, "expected %q, got %q", text, tok.Text)
	}
	return nil
}

// countExpansion enforces the MaxExpand limit.
func (e *MacroExpander) countExpansion(n int) error {
	max := e.settings.EffectiveMaxExpand()
	e.expansionCount += n
	if e.expansionCount > max {
		return NewParseError("got too many expansions: infinite loop or "+
			"need to increase maxExpand setting", nil)
	}
	return nil
}

// ExpandOnce expands the next token one level. With expandableOnly set,
// tokens that are defined but not expandable (builtin functions) are
// left alone. It returns the number of tokens the expansion pushed, or
// -1 if no expansion took place.
func (e *MacroExpander) ExpandOnce(expandableOnly bool) (int, error) {
	topToken := e.PopToken()
	if e.lexErr != nil {
		return 0, e.lexErr
	}
	name := topToken.Text
	def := e.macroDefFor(name)
	expansion := MacroExpansion{NumArgs: -1}
	if def != nil && !topToken.NoExpand {
		expansion = def.ExpandFor(e)
		if expansion.Err != nil {
			return 0, expansion.Err
		}
	}
	if def == nil || topToken.NoExpand || (expandableOnly && expansion.UnexpandableTokenName != "") {
		if !expandableOnly && expansion.UnexpandableTokenName == "" && def == nil &&
			len(name) > 1 && name[0] == '\\' && !e.IsDefined(name) {
			return 0, errorf(topToken, "undefined control sequence: %s", name)
		}
		e.PushToken(topToken)
		return -1, nil
	}
	if expansion.UnexpandableTokenName != "" {
		if expandableOnly {
			e.PushToken(topToken)
			return -1, nil
		}
		// \relax-style: the token stands for itself.
		tok := NewToken(expansion.UnexpandableTokenName, topToken.Span)
		tok.NoExpand = true
		tok.TreatAsRelax = true
		e.PushToken(&tok)
		return 1, nil
	}
	if err := e.countExpansion(1); err != nil {
		return 0, err
	}
	tokens := expansion.Tokens
	if expansion.NumArgs > 0 {
		args, err := e.consumeArgs(expansion.NumArgs, expansion.Delimiters)
		if err != nil {
			return 0, err
		}
		tokens = substituteArgs(tokens, args)
	}
	if err := e.countExpansion(len(tokens)); err != nil {
		return 0, err
	}
	e.PushTokens(tokens)
	return len(tokens), nil
}

// substituteArgs copies the (reversed) body tokens, splicing argument
// tokens in place of #n markers and collapsing ## to #.
func substituteArgs(tokens []Token, args [][]Token) []Token {
	// Markers read left to right, so scan the body in natural order.
	body := reversed(tokens)
	out := make([]Token, 0, len(body))
	for i := 0; i < len(body); i++ {
		tok := body[i]
		if tok.Text == "#" && i+1 < len(body) {
			next := body[i+1]
			if next.Text == "#" {
				out = append(out, tok) // ## -> #
				i++
				continue
			}
			if len(next.Text) == 1 && next.Text[0] >= '1' && next.Text[0] <= '9' {
				// args are in natural order, like the scanned body.
				out = append(out, args[next.Text[0]-'1']...)
				i++
				continue
			}
		}
		out = append(out, tok)
	}
	return reversed(out)
}

// consumeArgs reads numArgs macro arguments from the stream. Each is a
// balanced brace group or a single token; delimited arguments honor the
// delimiter texts.
func (e *MacroExpander) consumeArgs(numArgs int, delimiters [][2]string) ([][]Token, error) {
	args := make([][]Token, numArgs)
	for i := 0; i < numArgs; i++ {
		if delimiters != nil {
			if before := delimiters[i][0]; before != "" {
				if err := e.matchDelimiter(before); err != nil {
					return nil, err
				}
			}
			if after := delimiters[i][1]; after != "" {
				arg, err := e.consumeDelimitedArg(after)
				if err != nil {
					return nil, err
				}
				args[i] = arg
				continue
			}
		}
		arg, err := e.consumeArg()
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

func (e *MacroExpander) matchDelimiter(text string) error {
	tok := e.PopToken()
	if tok.Text == " " && text != " " {
		tok = e.PopToken()
	}
	if tok.Text != text {
		return errorf(tok, "use of macro doesn't match its definition")
	}
	return nil
}

// consumeArg reads one undelimited argument: a balanced group (braces
// stripped) or a single non-space token.
func (e *MacroExpander) consumeArg() ([]Token, error) {
	startOfArg := e.PopToken()
	for startOfArg.Text == " " {
		startOfArg = e.PopToken()
	}
	if startOfArg.Text == EOF {
		return nil, NewParseError("end of input expecting macro argument", nil)
	}
	if startOfArg.Text != "{" {
		return []Token{*startOfArg}, nil
	}
	var arg []Token
	depth := 1
	for depth > 0 {
		tok := e.PopToken()
		switch tok.Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return arg, nil
			}
		case EOF:
			return nil, errorf(startOfArg, "end of input in macro argument")
		}
		arg = append(arg, *tok)
	}
	return arg, nil
}

// consumeDelimitedArg reads tokens until the delimiter text appears at
// brace depth zero. An argument that is exactly one brace group has the
// braces stripped.
func (e *MacroExpander) consumeDelimitedArg(delim string) ([]Token, error) {
	var arg []Token
	depth := 0
	for {
		tok := e.PopToken()
		if tok.Text == EOF {
			return nil, NewParseError("end of input expecting macro argument delimiter", nil)
		}
		if depth == 0 && tok.Text == delim {
			break
		}
		switch tok.Text {
		case "{":
			depth++
		case "}":
			depth--
		}
		arg = append(arg, *tok)
	}
	if len(arg) >= 2 && arg[0].Text == "{" && arg[len(arg)-1].Text == "}" {
		balanced := true
		d := 0
		for i, t := range arg {
			switch t.Text {
			case "{":
				d++
			case "}":
				d--
				if d == 0 && i != len(arg)-1 {
					balanced = false
				}
			}
		}
		if balanced {
			arg = arg[1 : len(arg)-1]
		}
	}
	return arg, nil
}

// scanArgument reads one argument group and pushes its contents back,
// terminated by an EOF marker, so the caller can drain it with PopToken.
// For an optional argument the group is bracket-delimited and nil is
// returned when no bracket follows. The returned token is the start of
// the argument.
func (e *MacroExpander) scanArgument(optional bool) (*Token, error) {
	var arg []Token
	var start *Token
	if optional {
		e.ConsumeSpaces()
		if e.Future().Text != "[" {
			return nil, nil
		}
		start = e.PopToken() // "["
		var err error
		arg, err = e.consumeDelimitedArg("]")
		if err != nil {
			return nil, err
		}
	} else {
		start = e.Future()
		var err error
		arg, err = e.consumeArg()
		if err != nil {
			return nil, err
		}
	}
	eof := NewToken(EOF, nil)
	e.PushToken(&eof)
	e.PushTokens(reversed(arg))
	return start, nil
}

// ExpandNextToken returns the next fully expanded token.
func (e *MacroExpander) ExpandNextToken() (*Token, error) {
	for {
		expanded, err := e.ExpandOnce(false)
		if err != nil {
			return nil, err
		}
		if expanded == -1 {
			tok := e.PopToken()
			if tok.TreatAsRelax {
				relax := NewToken("\\relax", tok.Span)
				tok = &relax
			}
			return tok, nil
		}
	}
}

// ExpandMacro fully expands the named macro and returns the resulting
// tokens in natural order, or nil if name is not a macro.
func (e *MacroExpander) ExpandMacro(name string) []Token {
	if !e.Macros.Has(name) {
		return nil
	}
	bogus := NewToken(EOF, nil)
	e.PushToken(&bogus)
	nameTok := NewToken(name, nil)
	e.PushToken(&nameTok)
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

// ExpandMacroAsText expands name and concatenates the token texts.
func (e *MacroExpander) ExpandMacroAsText(name string) (string, bool) {
	toks := e.ExpandMacro(name)
	if toks == nil {
		return "", false
	}
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String(), true
}

// macroDefFor resolves name against the namespace (current definitions
// first, then builtins).
func (e *MacroExpander) macroDefFor(name string) MacroDef {
	return e.Macros.Get(name)
}

// IsDefined reports whether name means something: a macro, a builtin
// function, a symbol in the current mode, or an implicit command.
func (e *MacroExpander) IsDefined(name string) bool {
	if e.Macros.Has(name) {
		return true
	}
	if _, ok := functions[name]; ok {
		return true
	}
	if sym.Contains(sym.MathMode, name) || sym.Contains(sym.TextMode, name) {
		return true
	}
	return implicitCommands[name]
}

// IsExpandable reports whether name would expand (macro, or expandable
// builtin).
func (e *MacroExpander) IsExpandable(name string) bool {
	if e.Macros.Has(name) {
		return true
	}
	if f, ok := functions[name]; ok {
		return !f.Primitive
	}
	return false
}

// implicitCommands are control sequences handled directly by the parser
// rather than by a function handler.
var implicitCommands = map[string]bool{
	"^": true, "_": true, "\\limits": true, "\\nolimits": true,
}
