package print

import (
	"fmt"
	"io"
	"os"

	"github.com/vk/cligram/internal/syntax"
)

// Diag is the stream the structural dump writes to. It defaults to stderr
// so dumps stay visible even when normal output is redirected; tests may
// swap it out.
var Diag io.Writer = os.Stderr

// DumpTree writes a structural dump of pt and everything below it to Diag:
// one line per tree and node with its identity, kind marker and child
// count, nil child slots printed as NULL.
func DumpTree(pt *syntax.Tree) {
	dumpTree(pt, 0)
}

// DumpNode writes a structural dump of n and its subtree to Diag.
func DumpNode(n *syntax.Node) {
	dumpNode(n, 0)
}

func dumpTree(pt *syntax.Tree, indent int) {
	fmt.Fprintf(Diag, "%*s %p pt %s [%d]\n",
		indent*indentStep, "", pt, pt.Name(), pt.Len())
	for i := 0; i < pt.Len(); i++ {
		n := pt.Node(i)
		if n == nil {
			fmt.Fprintf(Diag, "%*s NULL\n", (indent+1)*indentStep, "")
			continue
		}
		dumpNode(n, indent+1)
	}
}

func dumpNode(n *syntax.Node, indent int) {
	switch n.Kind {
	case syntax.Command:
		fmt.Fprintf(Diag, "%*s %p co %s", indent*indentStep, "", n, n.Command)
		if n.Sets {
			fmt.Fprintf(Diag, " SETS")
		}
		fmt.Fprintf(Diag, "\n")
	case syntax.Reference:
		fmt.Fprintf(Diag, "%*s %p co @%s\n", indent*indentStep, "", n, n.Command)
	case syntax.Variable:
		fmt.Fprintf(Diag, "%*s %p co <%s>\n", indent*indentStep, "", n, n.Command)
	case syntax.Empty:
		fmt.Fprintf(Diag, "%*s %p empty;\n", indent*indentStep, "", n)
	}
	if n.Children != nil {
		dumpTree(n.Children, indent)
	}
}
