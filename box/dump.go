package box

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the box tree as an indented outline, for test failures
// and debugging.
func Dump(b Box) string {
	tree := treeprint.New()
	dumpInto(tree, b)
	return tree.String()
}

func dumpInto(tree treeprint.Tree, b Box) {
	g := b.Geometry()
	geom := fmt.Sprintf("h=%.3f d=%.3f", g.Height, g.Depth)
	classes := strings.Join(g.Classes, ".")
	switch n := b.(type) {
	case *Span:
		branch := tree.AddBranch(fmt.Sprintf("span[%s] %s", classes, geom))
		for _, child := range n.Children {
			dumpInto(branch, child)
		}
	case *Anchor:
		branch := tree.AddBranch(fmt.Sprintf("a[%s] href=%q %s", classes, n.Href, geom))
		for _, child := range n.Children {
			dumpInto(branch, child)
		}
	case *Fragment:
		branch := tree.AddBranch(fmt.Sprintf("fragment %s", geom))
		for _, child := range n.Children {
			dumpInto(branch, child)
		}
	case *Symbol:
		tree.AddNode(fmt.Sprintf("symbol[%s] %q %s", classes, n.Text, geom))
	case *Img:
		tree.AddNode(fmt.Sprintf("img src=%q alt=%q", n.Src, n.Alt))
	case *Svg:
		branch := tree.AddBranch("svg")
		for _, child := range n.Children {
			dumpInto(branch, child)
		}
	case *Path:
		tree.AddNode(fmt.Sprintf("path %s", n.PathName))
	case *Line:
		tree.AddNode("line")
	default:
		tree.AddNode(fmt.Sprintf("%T", b))
	}
}
