package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mathbox/sym"
)

// textFontMap maps text commands to the font they select; "" keeps the
// ambient font.
var textFontMap = map[string]string{
	"\\text":       "",
	"\\textrm":     "textrm",
	"\\textsf":     "textsf",
	"\\texttt":     "texttt",
	"\\textnormal": "textrm",
	"\\textbf":     "textbf",
	"\\textmd":     "textmd",
	"\\textit":     "textit",
	"\\textup":     "textup",
}

func init() {
	textNames := make([]string, 0, len(textFontMap))
	for name := range textFontMap {
		textNames = append(textNames, name)
	}
	defineFunction(FuncSpec{
		NumArgs: 1, ArgTypes: []string{"text"},
		AllowedInText: true, AllowedInMath: true, AllowedInArgument: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &TextNode{
				Info: info(ctx.Parser.mode, ctx.Token),
				Body: OrdArgument(args[0]),
				Font: textFontMap[ctx.FuncName],
			}, nil
		},
	}, textNames...)

	defineFunction(FuncSpec{
		NumArgs: 2, ArgTypes: []string{"url", "original"},
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			url := args[0].(*URLNode).URL
			if !ctx.Parser.settings.IsTrusted(TrustContext{Command: "\\href", URL: url}) {
				return ctx.Parser.formatUnsupportedCmd(ctx.FuncName, ctx.Token), nil
			}
			return &Href{
				Info: info(ctx.Parser.mode, ctx.Token),
				Href: url,
				Body: OrdArgument(args[1]),
			}, nil
		},
	}, "\\href")

	defineFunction(FuncSpec{
		NumArgs: 1, ArgTypes: []string{"url"},
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			url := args[0].(*URLNode).URL
			if !ctx.Parser.settings.IsTrusted(TrustContext{Command: "\\url", URL: url}) {
				return ctx.Parser.formatUnsupportedCmd(ctx.FuncName, ctx.Token), nil
			}
			var body []Node
			for _, r := range url {
				c := string(r)
				if c == "~" {
					c = "\\textasciitilde"
				}
				body = append(body, &TextOrd{Info: info(sym.TextMode, ctx.Token), Text: c})
			}
			text := &TextNode{
				Info: info(ctx.Parser.mode, ctx.Token),
				Body: body,
				Font: "texttt",
			}
			return &Href{
				Info: info(ctx.Parser.mode, ctx.Token),
				Href: url,
				Body: []Node{text},
			}, nil
		},
	}, "\\url")

	// \html@mathml carries two renditions: one for markup output, one
	// for MathML output.
	defineFunction(FuncSpec{
		NumArgs: 2, AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &HTMLMathML{
				Info:   info(ctx.Parser.mode, ctx.Token),
				HTML:   OrdArgument(args[0]),
				MathML: OrdArgument(args[1]),
			}, nil
		},
	}, "\\html@mathml")

	defineFunction(FuncSpec{
		NumArgs: 1, NumOptionalArgs: 1, ArgTypes: []string{"raw", "url"},
		AllowedInMath: true,
		Handler:       includegraphicsHandler,
	}, "\\includegraphics")

	defineFunction(FuncSpec{
		NumArgs: 4, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &MathChoice{
				Info:         info(ctx.Parser.mode, ctx.Token),
				Display:      OrdArgument(args[0]),
				Text:         OrdArgument(args[1]),
				Script:       OrdArgument(args[2]),
				ScriptScript: OrdArgument(args[3]),
			}, nil
		},
	}, "\\mathchoice")
}

// includegraphicsHandler parses the key=value option list of
// \includegraphics and validates trust.
func includegraphicsHandler(ctx FuncContext, args, optArgs []Node) (Node, error) {
	var width, height, totalHeight Measurement
	alt := ""
	if len(optArgs) > 0 && optArgs[0] != nil {
		raw := optArgs[0].(*Raw).String
		for _, attr := range strings.Split(raw, ",") {
			kv := strings.SplitN(attr, "=", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			val := strings.TrimSpace(kv[1])
			switch key {
			case "alt":
				alt = val
			case "width":
				m, err := parseSizeString(val)
				if err != nil {
					return nil, errorf(ctx.Token, "invalid width %q in \\includegraphics", val)
				}
				width = m
			case "height":
				m, err := parseSizeString(val)
				if err != nil {
					return nil, errorf(ctx.Token, "invalid height %q in \\includegraphics", val)
				}
				height = m
			case "totalheight":
				m, err := parseSizeString(val)
				if err != nil {
					return nil, errorf(ctx.Token, "invalid totalheight %q in \\includegraphics", val)
				}
				totalHeight = m
			default:
				return nil, errorf(ctx.Token, "invalid key %q in \\includegraphics", key)
			}
		}
	}
	src := args[0].(*Raw).String
	if alt == "" {
		// Default alt text: the file name without path and extension.
		alt = src
		if i := strings.LastIndexByte(alt, '/'); i >= 0 {
			alt = alt[i+1:]
		}
		if i := strings.LastIndexByte(alt, '.'); i >= 0 {
			alt = alt[:i]
		}
	}
	if !ctx.Parser.settings.IsTrusted(TrustContext{Command: "\\includegraphics", URL: src}) {
		return ctx.Parser.formatUnsupportedCmd(ctx.FuncName, ctx.Token), nil
	}
	return &IncludeGraphics{
		Info:        info(ctx.Parser.mode, ctx.Token),
		Alt:         alt,
		Width:       width,
		Height:      height,
		TotalHeight: totalHeight,
		Src:         src,
	}, nil
}

// parseSizeString parses "1.2em"-style strings outside the token
// stream, for option lists.
func parseSizeString(s string) (Measurement, error) {
	m := sizeRe.FindStringSubmatch(s)
	if m == nil {
		return Measurement{}, NewParseError("invalid size: "+s, nil)
	}
	number, err := strconv.ParseFloat(m[1]+m[2], 64)
	if err != nil {
		return Measurement{}, NewParseError("invalid size: "+s, nil)
	}
	data := Measurement{Number: number, Unit: m[3]}
	if !data.ValidUnit() {
		return Measurement{}, NewParseError("invalid unit: "+m[3], nil)
	}
	return data, nil
}
