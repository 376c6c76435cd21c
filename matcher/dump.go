package matcher

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the matcher tree, e.g. for 'xs @ [x, *]':
//
//	.
//	└── pattern "xs @ [x, *]"
//	    └── Aliased xs
//	        └── ArrayHeadTail
//	            ├── Identifier x
//	            └── Splat
func (c *Compiled) Dump() string {
	printer := tp.New()
	root := printer.AddBranch(fmt.Sprintf("pattern %q", c.Text))
	dump(root, c.Root)
	return printer.String()
}

func dump(branch tp.Tree, m Matcher) {
	switch m := m.(type) {
	case *Literal:
		branch.AddNode("Literal " + describe(m.Value))
	case *Wildcard:
		branch.AddNode("Wildcard")
	case *Identifier:
		branch.AddNode("Identifier " + m.Name)
	case *TypeCheck:
		branch.AddNode("TypeCheck " + m.Type)
	case *ArrayExact:
		if len(m.Elements) == 0 {
			branch.AddNode("ArrayExact []")
			return
		}
		b := branch.AddBranch(fmt.Sprintf("ArrayExact (%d)", len(m.Elements)))
		for _, elem := range m.Elements {
			dump(b, elem)
		}
	case *ArrayHeadTail:
		b := branch.AddBranch("ArrayHeadTail")
		dump(b, m.Head)
		dump(b, m.Tail)
	case *Splat:
		branch.AddNode("Splat")
	case *NamedSplat:
		branch.AddNode("NamedSplat " + m.Name)
	case *ExtractorCall:
		b := branch.AddBranch("ExtractorCall " + m.Name)
		dump(b, m.Args)
	case *Aliased:
		b := branch.AddBranch("Aliased " + m.Name)
		dump(b, m.Inner)
	case *And:
		b := branch.AddBranch("And")
		dump(b, m.Left)
		dump(b, m.Right)
	}
}
