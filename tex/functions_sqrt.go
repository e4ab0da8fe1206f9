package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

func init() {
	defineFunction(FuncSpec{
		NumArgs: 1, NumOptionalArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			var index Node
			if len(optArgs) > 0 {
				index = optArgs[0]
			}
			return &Sqrt{
				Info:  info(ctx.Parser.mode, ctx.Token),
				Body:  args[0],
				Index: index,
			}, nil
		},
	}, "\\sqrt")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Overline{Info: info(ctx.Parser.mode, ctx.Token), Body: args[0]}, nil
		},
	}, "\\overline")

	defineFunction(FuncSpec{
		NumArgs: 1, AllowedInMath: true,
		Handler: func(ctx FuncContext, args, optArgs []Node) (Node, error) {
			return &Underline{Info: info(ctx.Parser.mode, ctx.Token), Body: args[0]}, nil
		},
	}, "\\underline")
}
