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
)

// EnvContext carries call information into an environment handler.
type EnvContext struct {
	EnvName string
	Parser  *Parser
}

// EnvHandler produces the node for an environment body, including its
// arguments and everything up to the matching \end.
type EnvHandler func(ctx EnvContext, args, optArgs []Node) (Node, error)

// EnvSpec describes an environment: its arguments and its handler.
type EnvSpec struct {
	NumArgs         int
	ArgTypes        []string
	NumOptionalArgs int
	Handler         EnvHandler
}

var environments = map[string]*EnvSpec{}

func defineEnvironment(spec EnvSpec, names ...string) {
	for _, name := range names {
		s := spec
		environments[name] = &s
	}
}

// EndEnv marks a parsed \end{...}. It is consumed by the matching
// \begin handler and never survives into a finished parse tree.
type EndEnv struct {
	Info
	Name string
}

// environmentName flattens the name argument of \begin or \end into a
// plain string.
func environmentName(arg Node) (string, error) {
	if s, ok := CheckSymbolNodeType(arg); ok {
		return s, nil
	}
	g, ok := arg.(*OrdGroup)
	if !ok {
		return "", NewParseError("invalid environment name", spanOfNode(arg))
	}
	var b strings.Builder
	for _, n := range g.Body {
		s, ok := CheckSymbolNodeType(n)
		if !ok {
			return "", NewParseError("invalid environment name", spanOfNode(arg))
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func init() {
	defineFunction(FuncSpec{
		NumArgs: 1, ArgTypes: []string{"text"}, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			envName, err := environmentName(args[0])
			if err != nil {
				return nil, err
			}
			p := ctx.Parser
			if ctx.FuncName == "\\end" {
				return &EndEnv{Info: info(p.mode, ctx.Token), Name: envName}, nil
			}
			env, ok := environments[envName]
			if !ok {
				return nil, errorf(ctx.Token, "no such environment: %s", envName)
			}
			envArgs, envOptArgs, err := p.parseArguments("\\begin{"+envName+"}", &FuncSpec{
				NumArgs:         env.NumArgs,
				ArgTypes:        env.ArgTypes,
				NumOptionalArgs: env.NumOptionalArgs,
			})
			if err != nil {
				return nil, err
			}
			result, err := env.Handler(EnvContext{EnvName: envName, Parser: p}, envArgs, envOptArgs)
			if err != nil {
				return nil, err
			}
			if err := p.expect("\\end", false); err != nil {
				return nil, err
			}
			endTok := p.nextToken
			end, err := p.parseFunction("", "")
			if err != nil {
				return nil, err
			}
			endEnv, ok := end.(*EndEnv)
			if !ok {
				return nil, errorf(endTok, "expected \\end, got %q", endTok.Text)
			}
			if endEnv.Name != envName {
				return nil, errorf(endTok,
					"mismatch: \\begin{%s} matched by \\end{%s}", envName, endEnv.Name)
			}
			return result, nil
		},
	}, "\\begin", "\\end")

	// Row rules are consumed by the array parser directly; reaching the
	// handler means they appeared outside an array.
	defineFunction(FuncSpec{
		AllowedInText: true, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return nil, errorf(ctx.Token, "%s valid only within array environment", ctx.FuncName)
		},
	}, "\\hline", "\\hdashline")
}

// --- Array parsing ----------------------------------------------------

// arrayOptions parameterizes parseArray for the environment flavors.
type arrayOptions struct {
	hskipBeforeAndAfter bool
	addJot              bool
	cols                []AlignSpec
	arrayStretch        float64
	colSeparationType   ColSeparationType
	// autoTag enables per-row tag collection; nil disables it.
	autoTag        *bool
	singleRow      bool
	emptySingleRow bool
	maxNumCols     int
	leqno          *bool
}

// getHLines consumes any \hline or \hdashline tokens before the next
// row and reports their dashedness.
func getHLines(p *Parser) ([]bool, error) {
	var hlines []bool
	p.consumeSpaces()
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if tok.Text == "\\relax" {
		p.consume()
		p.consumeSpaces()
		if tok, err = p.fetch(); err != nil {
			return nil, err
		}
	}
	for tok.Text == "\\hline" || tok.Text == "\\hdashline" {
		p.consume()
		hlines = append(hlines, tok.Text == "\\hdashline")
		p.consumeSpaces()
		if tok, err = p.fetch(); err != nil {
			return nil, err
		}
	}
	return hlines, nil
}

// parseArray reads rows and cells up to \end, separated by & and \\.
// Style, if nonempty, wraps every cell.
func parseArray(p *Parser, opt arrayOptions, style string) (*ArrayNode, error) {
	p.gullet.BeginGroup()
	if !opt.singleRow {
		// \cr is a synonym for \\ inside arrays.
		p.gullet.Macros.Set("\\cr", MacroString("\\\\\\relax"), false)
	}
	stretch := opt.arrayStretch
	if stretch == 0 {
		text, ok := p.gullet.ExpandMacroAsText("\\arraystretch")
		if !ok {
			stretch = 1
		} else {
			var err error
			stretch, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil || stretch < 0 {
				return nil, NewParseError("invalid \\arraystretch: "+text, nil)
			}
		}
	}
	p.gullet.BeginGroup()

	var body [][]Node
	var row []Node
	var rowGaps []*Measurement
	var hLinesBeforeRow [][]bool
	var tags []Node

	beginRow := func() {
		if opt.autoTag != nil {
			p.gullet.Macros.Set("\\@eqnsw", MacroString("1"), true)
		}
	}
	endRow := func() error {
		if opt.autoTag == nil {
			return nil
		}
		if p.gullet.Macros.Get("\\df@tag") != nil {
			dfTag := NewToken("\\df@tag", nil)
			tagBody, err := p.subparse([]Token{dfTag})
			if err != nil {
				return err
			}
			p.gullet.Macros.Set("\\df@tag", nil, true)
			tags = append(tags, &OrdGroup{Info: Info{Mode: p.mode}, Body: tagBody})
		} else {
			tags = append(tags, nil)
		}
		return nil
	}

	beginRow()
	hlines, err := getHLines(p)
	if err != nil {
		return nil, err
	}
	hLinesBeforeRow = append(hLinesBeforeRow, hlines)

	for {
		end := "\\\\"
		if opt.singleRow {
			end = "\\end"
		}
		expr, err := p.parseExpression(false, end)
		if err != nil {
			return nil, err
		}
		if err := p.gullet.EndGroup(); err != nil {
			return nil, err
		}
		p.gullet.BeginGroup()
		var cell Node = &OrdGroup{Info: Info{Mode: p.mode}, Body: expr}
		if style != "" {
			cell = &Styling{Info: Info{Mode: p.mode}, Style: style, Body: []Node{cell}}
		}
		row = append(row, cell)
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		switch tok.Text {
		case "&":
			if opt.maxNumCols > 0 && len(row) == opt.maxNumCols {
				if opt.singleRow || opt.colSeparationType != "" {
					return nil, errorf(tok, "too many tab characters: &")
				}
				if err := p.settings.ReportNonstrict("textEnv",
					"too few columns specified in the {array} column argument", tok.Span); err != nil {
					return nil, err
				}
			}
			p.consume()
		case "\\end":
			if err := endRow(); err != nil {
				return nil, err
			}
			// A trailing \\ leaves one empty cell; drop that row.
			body = append(body, row)
			if len(row) == 1 && emptyCell(cell) &&
				(len(body) > 1 || !opt.emptySingleRow) {
				body = body[:len(body)-1]
			}
			if len(hLinesBeforeRow) < len(body)+1 {
				hLinesBeforeRow = append(hLinesBeforeRow, nil)
			}
			goto done
		case "\\\\":
			p.consume()
			var gap *Measurement
			// \\[size] sets an extra gap below the row, but a lone
			// space never starts an optional argument.
			if p.gullet.Future().Text != " " {
				sizeNode, err := p.parseSizeGroup(true)
				if err != nil {
					return nil, err
				}
				if sizeNode != nil {
					gap = &sizeNode.(*SizeLit).Value
				}
			}
			rowGaps = append(rowGaps, gap)
			if err := endRow(); err != nil {
				return nil, err
			}
			hlines, err := getHLines(p)
			if err != nil {
				return nil, err
			}
			hLinesBeforeRow = append(hLinesBeforeRow, hlines)
			body = append(body, row)
			row = nil
			beginRow()
		default:
			return nil, errorf(tok, "expected & or \\\\ or \\cr or \\end")
		}
	}
done:
	if err := p.gullet.EndGroup(); err != nil {
		return nil, err
	}
	if err := p.gullet.EndGroup(); err != nil {
		return nil, err
	}
	return &ArrayNode{
		Info:                Info{Mode: p.mode},
		AddJot:              opt.addJot,
		ArrayStretch:        stretch,
		Body:                body,
		Cols:                opt.cols,
		RowGaps:             rowGaps,
		HSkipBeforeAndAfter: opt.hskipBeforeAndAfter,
		HLinesBeforeRow:     hLinesBeforeRow,
		ColSeparationType:   opt.colSeparationType,
		Tags:                tags,
		Leqno:               opt.leqno,
	}, nil
}

func emptyCell(cell Node) bool {
	if s, ok := cell.(*Styling); ok && len(s.Body) == 1 {
		cell = s.Body[0]
	}
	g, ok := cell.(*OrdGroup)
	return ok && len(g.Body) == 0
}

// dCellStyle maps an environment name to the layout style of its
// cells; the d-prefixed variants lay out in display style.
func dCellStyle(envName string) string {
	if strings.HasPrefix(envName, "d") {
		return "display"
	}
	return "text"
}

// --- Environment definitions ------------------------------------------

func init() {
	defineArrayEnvironments()
	defineMatrixEnvironments()
	defineCasesEnvironments()
	defineAlignedEnvironments()
}

func defineArrayEnvironments() {
	defineEnvironment(EnvSpec{
		NumArgs: 1,
		Handler: func(ctx EnvContext, args, optArgs []Node) (Node, error) {
			colalign := []Node{args[0]}
			if g, ok := args[0].(*OrdGroup); ok {
				colalign = g.Body
			}
			var cols []AlignSpec
			for _, n := range colalign {
				ca, ok := CheckSymbolNodeType(n)
				if !ok {
					return nil, NewParseError("unknown column alignment", spanOfNode(n))
				}
				switch ca {
				case "l", "c", "r":
					cols = append(cols, AlignSpec{Align: ca, Pregap: -1, Postgap: -1})
				case "|", ":":
					cols = append(cols, AlignSpec{Separator: ca})
				default:
					return nil, NewParseError("unknown column alignment: "+ca, spanOfNode(n))
				}
			}
			return parseArray(ctx.Parser, arrayOptions{
				cols:                cols,
				hskipBeforeAndAfter: true,
				maxNumCols:          len(cols),
			}, dCellStyle(ctx.EnvName))
		},
	}, "array", "darray")

	defineEnvironment(EnvSpec{
		NumArgs: 1,
		Handler: func(ctx EnvContext, args, optArgs []Node) (Node, error) {
			align, ok := CheckSymbolNodeType(args[0])
			if !ok {
				if g, isGroup := args[0].(*OrdGroup); isGroup && len(g.Body) == 1 {
					align, ok = CheckSymbolNodeType(g.Body[0])
				}
			}
			if !ok || (align != "l" && align != "c") {
				return nil, NewParseError("{subarray} columns must be l or c", spanOfNode(args[0]))
			}
			res, err := parseArray(ctx.Parser, arrayOptions{
				cols:         []AlignSpec{{Align: align, Pregap: -1, Postgap: -1}},
				arrayStretch: 0.5,
			}, "script")
			if err != nil {
				return nil, err
			}
			if len(res.Body) > 0 && len(res.Body[0]) > 1 {
				return nil, NewParseError("{subarray} can contain only one column", nil)
			}
			return res, nil
		},
	}, "subarray")
}

// matrixDelims maps a matrix environment to its surrounding delimiter
// pair; the plain matrix has none.
var matrixDelims = map[string][2]string{
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"Bmatrix": {"\\{", "\\}"},
	"vmatrix": {"|", "|"},
	"Vmatrix": {"\\Vert", "\\Vert"},
}

func defineMatrixEnvironments() {
	matrixNames := []string{
		"matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix",
		"matrix*", "pmatrix*", "bmatrix*", "Bmatrix*", "vmatrix*", "Vmatrix*",
	}
	defineEnvironment(EnvSpec{
		Handler: func(ctx EnvContext, args, optArgs []Node) (Node, error) {
			p := ctx.Parser
			name := strings.TrimSuffix(ctx.EnvName, "*")
			colAlign := "c"
			if strings.HasSuffix(ctx.EnvName, "*") {
				// Starred variants take an optional [l|c|r] alignment.
				p.consumeSpaces()
				tok, err := p.fetch()
				if err != nil {
					return nil, err
				}
				if tok.Text == "[" {
					p.consume()
					p.consumeSpaces()
					if tok, err = p.fetch(); err != nil {
						return nil, err
					}
					if tok.Text != "l" && tok.Text != "c" && tok.Text != "r" {
						return nil, errorf(tok, "expected l or c or r")
					}
					colAlign = tok.Text
					p.consume()
					p.consumeSpaces()
					if err := p.expect("]", true); err != nil {
						return nil, err
					}
				}
			}
			res, err := parseArray(p, arrayOptions{}, dCellStyle(ctx.EnvName))
			if err != nil {
				return nil, err
			}
			numCols := 0
			for _, r := range res.Body {
				if len(r) > numCols {
					numCols = len(r)
				}
			}
			res.Cols = make([]AlignSpec, numCols)
			for i := range res.Cols {
				res.Cols[i] = AlignSpec{Align: colAlign, Pregap: -1, Postgap: -1}
			}
			delims, ok := matrixDelims[name]
			if !ok {
				return res, nil
			}
			return &LeftRight{
				Info:  res.Info,
				Body:  []Node{res},
				Left:  delims[0],
				Right: delims[1],
			}, nil
		},
	}, matrixNames...)

	defineEnvironment(EnvSpec{
		Handler: func(ctx EnvContext, args, optArgs []Node) (Node, error) {
			res, err := parseArray(ctx.Parser, arrayOptions{arrayStretch: 0.5}, "script")
			if err != nil {
				return nil, err
			}
			res.ColSeparationType = ColSepSmall
			numCols := 0
			for _, r := range res.Body {
				if len(r) > numCols {
					numCols = len(r)
				}
			}
			res.Cols = make([]AlignSpec, numCols)
			for i := range res.Cols {
				res.Cols[i] = AlignSpec{Align: "c", Pregap: -1, Postgap: -1}
			}
			return res, nil
		},
	}, "smallmatrix")
}

func defineCasesEnvironments() {
	defineEnvironment(EnvSpec{
		Handler: func(ctx EnvContext, args, optArgs []Node) (Node, error) {
			res, err := parseArray(ctx.Parser, arrayOptions{
				arrayStretch: 1.2,
				cols: []AlignSpec{
					{Align: "l", Postgap: 1.0},
					{Align: "l"},
				},
			}, dCellStyle(ctx.EnvName))
			if err != nil {
				return nil, err
			}
			left, right := "\\{", "."
			if strings.Contains(ctx.EnvName, "r") {
				left, right = ".", "\\}"
			}
			return &LeftRight{
				Info:  res.Info,
				Body:  []Node{res},
				Left:  left,
				Right: right,
			}, nil
		},
	}, "cases", "dcases", "rcases", "drcases")
}

func defineAlignedEnvironments() {
	defineEnvironment(EnvSpec{
		Handler: alignedHandler,
	}, "aligned")
	defineEnvironment(EnvSpec{
		NumArgs: 1,
		Handler: alignedHandler,
	}, "alignedat")

	defineEnvironment(EnvSpec{
		Handler: func(ctx EnvContext, args, optArgs []Node) (Node, error) {
			res, err := parseArray(ctx.Parser, arrayOptions{
				cols:              []AlignSpec{{Align: "c", Pregap: -1, Postgap: -1}},
				addJot:            true,
				colSeparationType: ColSepGather,
				emptySingleRow:    true,
			}, "display")
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}, "gathered")
}

// alignedHandler parses {aligned} and {alignedat}: rows of alternating
// right- and left-aligned column pairs.
func alignedHandler(ctx EnvContext, args, optArgs []Node) (Node, error) {
	sep := ColSepAlign
	if strings.Contains(ctx.EnvName, "at") {
		sep = ColSepAlignAt
	}
	res, err := parseArray(ctx.Parser, arrayOptions{
		addJot:            true,
		colSeparationType: sep,
		emptySingleRow:    true,
	}, "display")
	if err != nil {
		return nil, err
	}

	// alignedat takes the number of alignment pairs as an argument.
	numCols := 0
	if len(args) > 0 {
		var digits strings.Builder
		nodes := []Node{args[0]}
		if g, ok := args[0].(*OrdGroup); ok {
			nodes = g.Body
		}
		for _, n := range nodes {
			s, ok := CheckSymbolNodeType(n)
			if !ok {
				return nil, NewParseError("invalid {alignedat} argument", spanOfNode(args[0]))
			}
			digits.WriteString(s)
		}
		numMaths, err := strconv.Atoi(digits.String())
		if err != nil {
			return nil, NewParseError("invalid {alignedat} argument", spanOfNode(args[0]))
		}
		numCols = numMaths * 2
	}
	isAligned := numCols == 0

	// Every second cell starts a fresh subexpression; an empty ord is put
	// at its head so that a leading operator keeps binary spacing.
	for _, row := range res.Body {
		for i := 1; i < len(row); i += 2 {
			styling, ok := row[i].(*Styling)
			if !ok || len(styling.Body) == 0 {
				continue
			}
			if ord, ok := styling.Body[0].(*OrdGroup); ok {
				ord.Body = append([]Node{&OrdGroup{Info: Info{Mode: ord.Mode}}}, ord.Body...)
			}
		}
		if isAligned {
			if len(row) > numCols {
				numCols = len(row)
			}
		} else if len(row) > numCols {
			return nil, NewParseError(
				"too many math in a row: expected "+strconv.Itoa(numCols/2)+
					", but got "+strconv.Itoa((len(row)+1)/2), nil)
		}
	}

	cols := make([]AlignSpec, numCols)
	for i := range cols {
		align := "r"
		pregap := 0.0
		if i%2 == 1 {
			align = "l"
		} else if i > 0 && isAligned {
			pregap = 1
		}
		cols[i] = AlignSpec{Align: align, Pregap: pregap}
	}
	res.Cols = cols
	return res, nil
}
