package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

func init() {
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true, Primitive: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			body := OrdArgument(args[0])
			if len(body) == 1 {
				if tok, ok := body[0].(*OpToken); ok {
					return &Op{
						Info:   tok.Info,
						Limits: true,
						Symbol: true,
						Name:   tok.Text,
					}, nil
				}
			}
			return &Op{
				Info: info(ctx.Parser.mode, ctx.Token),
				Body: body,
			}, nil
		},
	}, "\\mathop")

	// \operatorname typesets a multi-letter operator in roman; the
	// starred form takes limits like \lim.
	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			star := ctx.FuncName != "\\operatorname"
			return &OperatorName{
				Info:               info(ctx.Parser.mode, ctx.Token),
				Body:               OrdArgument(args[0]),
				AlwaysHandleSupSub: star,
				Limits:             star,
			}, nil
		},
	}, "\\operatorname", "\\operatorname*", "\\operatornamewithlimits")
}
