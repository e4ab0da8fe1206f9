package tex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"reflect"

	"github.com/xlab/treeprint"
)

// DumpTree renders a parse-node list as an indented outline, for test
// failures and debugging.
func DumpTree(nodes []Node) string {
	tree := treeprint.New()
	for _, n := range nodes {
		dumpNode(tree, n)
	}
	return tree.String()
}

func dumpNode(tree treeprint.Tree, n Node) {
	if n == nil {
		tree.AddNode("<nil>")
		return
	}
	label := reflect.TypeOf(n).Elem().Name()
	switch node := n.(type) {
	case *Atom:
		tree.AddNode(fmt.Sprintf("Atom(%v) %q", node.Family, node.Text))
	case *MathOrd:
		tree.AddNode(fmt.Sprintf("MathOrd %q", node.Text))
	case *TextOrd:
		tree.AddNode(fmt.Sprintf("TextOrd %q", node.Text))
	case *OrdGroup:
		branch := tree.AddBranch(label)
		for _, c := range node.Body {
			dumpNode(branch, c)
		}
	case *SupSub:
		branch := tree.AddBranch(label)
		dumpNode(branch.AddBranch("base"), node.Base)
		if node.Sup != nil {
			dumpNode(branch.AddBranch("sup"), node.Sup)
		}
		if node.Sub != nil {
			dumpNode(branch.AddBranch("sub"), node.Sub)
		}
	case *GenFrac:
		branch := tree.AddBranch(fmt.Sprintf("GenFrac bar=%v size=%q", node.HasBarLine, node.Size))
		dumpNode(branch.AddBranch("numer"), node.Numer)
		dumpNode(branch.AddBranch("denom"), node.Denom)
	case *LeftRight:
		branch := tree.AddBranch(fmt.Sprintf("LeftRight %q %q", node.Left, node.Right))
		for _, c := range node.Body {
			dumpNode(branch, c)
		}
	case *ArrayNode:
		branch := tree.AddBranch(fmt.Sprintf("Array %dx%d", len(node.Body), len(node.Cols)))
		for _, row := range node.Body {
			rowBranch := branch.AddBranch("row")
			for _, cell := range row {
				dumpNode(rowBranch, cell)
			}
		}
	default:
		v := reflect.ValueOf(n).Elem()
		branch := tree
		added := false
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			switch body := f.Interface().(type) {
			case Node:
				if !added {
					branch = tree.AddBranch(label)
					added = true
				}
				dumpNode(branch, body)
			case []Node:
				if !added {
					branch = tree.AddBranch(label)
					added = true
				}
				for _, c := range body {
					dumpNode(branch, c)
				}
			}
		}
		if !added {
			tree.AddNode(label)
		}
	}
}
