package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/mathbox/sym"
)

// FuncContext is handed to function handlers: which command fired, the
// parser (for handlers that re-enter it), the command token, and the
// token text the surrounding expression breaks on.
type FuncContext struct {
	FuncName         string
	Parser           *Parser
	Token            *Token
	BreakOnTokenText string
}

// HandlerFunc builds a parse node from a function's arguments.
type HandlerFunc func(ctx FuncContext, args []Node, optArgs []Node) (Node, error)

// FuncSpec describes one control sequence handled by the parser.
type FuncSpec struct {
	NumArgs           int
	ArgTypes          []string // per argument: "color", "size", "url", "raw", "original", "hbox", "primitive", "math", "text"
	NumOptionalArgs   int
	AllowedInText     bool
	AllowedInMath     bool
	AllowedInArgument bool
	Infix             bool
	Primitive         bool
	Handler           HandlerFunc
}

// functions is the global registry of control sequences, keyed by name
// (including the backslash).
var functions = map[string]*FuncSpec{}

// defineFunction registers names for spec. The parser accepts a function
// in math mode only where spec.AllowedInMath is set.
func defineFunction(spec FuncSpec, names ...string) {
	for _, name := range names {
		s := spec
		functions[name] = &s
	}
}

func init() {
	defineInternalFunctions()
	defineSpacingFunctions()
	defineSymbolOpFunctions()
}

func defineInternalFunctions() {
	// \relax survives expansion; the parser drops it.
	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Internal{Info: info(ctx.Parser.mode, ctx.Token)}, nil
		},
	}, "\\relax")

	// \label is accepted and dropped; cross-referencing is a host
	// concern.
	defineFunction(FuncSpec{
		NumArgs: 1, ArgTypes: []string{"raw"},
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Internal{Info: info(ctx.Parser.mode, ctx.Token)}, nil
		},
	}, "\\label")

	// \@char produces a symbol from a decimal codepoint, the target of
	// the \char primitive.
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInText: true, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			group := OrdArgument(args[0])
			number := ""
			for _, n := range group {
				t, ok := symbolText(n)
				if !ok {
					return nil, errorf(ctx.Token, "invalid \\@char argument")
				}
				number += t
			}
			code, err := strconv.Atoi(number)
			if err != nil || code < 0 || code > 0x10ffff {
				return nil, errorf(ctx.Token, "invalid \\@char codepoint %q", number)
			}
			mode := ctx.Parser.mode
			if mode == sym.TextMode {
				return &TextOrd{Info: info(mode, ctx.Token), Text: string(rune(code))}, nil
			}
			return &MathOrd{Info: info(mode, ctx.Token), Text: string(rune(code))}, nil
		},
	}, "\\@char")
}

// muSpacing maps the thin/med/thick space commands to mu glue.
var muSpacing = map[string]Measurement{
	"\\,": {Number: 3, Unit: "mu"},
	"\\thinspace": {Number: 3, Unit: "mu"},
	"\\:": {Number: 4, Unit: "mu"},
	"\\>": {Number: 4, Unit: "mu"},
	"\\;": {Number: 5, Unit: "mu"},
	"\\!": {Number: -3, Unit: "mu"},
}

func defineSpacingFunctions() {
	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			dim := muSpacing[ctx.FuncName]
			return &Kern{Info: info(ctx.Parser.mode, ctx.Token), Dimension: dim}, nil
		},
	}, "\\,", "\\thinspace", "\\:", "\\>", "\\;", "\\!")
}

// symbolOps lists the big operators, with their default limit
// behavior in display style.
var symbolOps = []struct {
	name   string
	limits bool
}{
	{"\\sum", true}, {"\\prod", true}, {"\\coprod", true},
	{"\\bigwedge", true}, {"\\bigvee", true},
	{"\\bigcap", true}, {"\\bigcup", true},
	{"\\bigoplus", true}, {"\\bigotimes", true}, {"\\bigodot", true},
	{"\\biguplus", true}, {"\\bigsqcup", true},
	{"\\int", false}, {"\\iint", false}, {"\\iiint", false},
	{"\\oint", false}, {"\\oiint", false}, {"\\oiiint", false},
	{"\\intop", true}, {"\\smallint", true},
}

// namedOps are the function-style operators typeset in roman. The
// second group takes limits above and below in display style.
var namedOpsNoLimits = []string{
	"\\arcsin", "\\arccos", "\\arctan", "\\arctg", "\\arcctg",
	"\\arg", "\\ch", "\\cos", "\\cosec", "\\cosh", "\\cot", "\\cotg",
	"\\coth", "\\csc", "\\ctg", "\\cth", "\\deg", "\\dim", "\\exp",
	"\\hom", "\\ker", "\\lg", "\\ln", "\\log", "\\sec", "\\sin",
	"\\sinh", "\\sh", "\\tan", "\\tanh", "\\tg", "\\th",
}

var namedOpsWithLimits = []string{
	"\\det", "\\gcd", "\\inf", "\\lim", "\\max", "\\min", "\\Pr", "\\sup",
}

func defineSymbolOpFunctions() {
	for _, op := range symbolOps {
		name := op.name
		limits := op.limits
		defineFunction(FuncSpec{
			AllowedInMath: true, Primitive: true,
			Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
				fName := ctx.FuncName
				if alias, ok := singleCharBigOps[fName]; ok {
					fName = alias
				}
				return &Op{
					Info:   info(ctx.Parser.mode, ctx.Token),
					Limits: limits,
					Symbol: true,
					Name:   fName,
					ParentIsSupSub: false,
				}, nil
			},
		}, name)
	}
	for ch := range singleCharBigOps {
		defineFunction(FuncSpec{
			AllowedInMath: true, Primitive: true,
			Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
				return &Op{
					Info:   info(ctx.Parser.mode, ctx.Token),
					Limits: true,
					Symbol: true,
					Name:   singleCharBigOps[ctx.FuncName],
				}, nil
			},
		}, ch)
	}
	for _, name := range namedOpsNoLimits {
		defineFunction(FuncSpec{
			AllowedInMath: true, Primitive: true,
			Handler: namedOpHandler(false),
		}, name)
	}
	for _, name := range namedOpsWithLimits {
		defineFunction(FuncSpec{
			AllowedInMath: true, Primitive: true,
			Handler: namedOpHandler(true),
		}, name)
	}
}

// singleCharBigOps maps unicode operator characters to command names.
var singleCharBigOps = map[string]string{
	"∏": "\\prod", "∐": "\\coprod", "∑": "\\sum",
	"⋀": "\\bigwedge", "⋁": "\\bigvee", "⋂": "\\bigcap", "⋃": "\\bigcup",
	"⨀": "\\bigodot", "⨁": "\\bigoplus", "⨂": "\\bigotimes",
	"⨄": "\\biguplus", "⨆": "\\bigsqcup",
}

func namedOpHandler(limits bool) HandlerFunc {
	return func(ctx FuncContext, args, optArgs []Node) (Node, error) {
		var body []Node
		for _, r := range ctx.FuncName[1:] {
			body = append(body, &TextOrd{Info: info(ctx.Parser.mode, ctx.Token), Text: string(r)})
		}
		return &Op{
			Info:   info(ctx.Parser.mode, ctx.Token),
			Limits: limits,
			AlwaysHandleSupSub: limits,
			Body:   body,
		}, nil
	}
}
