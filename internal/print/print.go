package print

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vk/cligram/internal/cvar"
	"github.com/vk/cligram/internal/registry"
	"github.com/vk/cligram/internal/syntax"
)

const (
	variablePre  = '<'
	variablePost = '>'

	// indentStep is the number of columns added per nesting level when a
	// multi-child block is opened.
	indentStep = 3
)

// variableToBuf renders the syntax specification of a Variable node.
//
// Brief output is just the bracketed display name. Full output is the
// parsable form: name, type, range/length constraints, show override,
// expand function, regexps and translate function.
func variableToBuf(b *bytes.Buffer, n *syntax.Node, brief bool) {
	if brief {
		show := n.Show
		if show == "" {
			show = n.Command
		}
		fmt.Fprintf(b, "%c%s%c", variablePre, show, variablePost)
		return
	}
	fmt.Fprintf(b, "%c%s:%s", variablePre, n.Command, n.VType)
	for i := 0; i < n.RangeLen(); i++ {
		if n.VType.IsInt() {
			b.WriteString(" range[")
		} else {
			b.WriteString(" length[")
		}
		low := n.RangeLow.I(i)
		high := n.RangeHigh.I(i)
		if low != nil && low.Type() != cvar.Empty {
			b.WriteString(low.ValueString())
			b.WriteString(":")
		}
		if high != nil {
			b.WriteString(high.ValueString())
		}
		b.WriteString("]")
	}
	if n.Show != "" {
		fmt.Fprintf(b, " show:%q", n.Show)
	}
	if n.ExpandFn != "" {
		fmt.Fprintf(b, " %s(\"", n.ExpandFn)
		if n.ExpandArgs != nil {
			n.ExpandArgs.WriteBuf(b)
		}
		b.WriteString("\")")
	}
	for cv := n.Regex.Each(nil); cv != nil; cv = n.Regex.Each(cv) {
		fmt.Fprintf(b, " regexp:%q", cv.StringVal())
	}
	if n.TranslateFn != "" {
		fmt.Fprintf(b, " translate:%s()", n.TranslateFn)
	}
	b.WriteByte(variablePost)
}

// nodeToBuf renders one node and, recursively, its child tree. margin is
// the running indentation column of the node's own line.
func nodeToBuf(b *bytes.Buffer, n *syntax.Node, margin int, brief bool) {
	if n.Choice != "" {
		// Legacy shortcut: alternative-set text is emitted verbatim and
		// overrides the normal rendering; output need not round-trip to
		// the original source form.
		if strings.ContainsRune(n.Choice, '|') {
			fmt.Fprintf(b, "(%s)", n.Choice)
		} else {
			b.WriteString(n.Choice)
		}
	} else {
		switch n.Kind {
		case syntax.Command:
			b.WriteString(n.Command)
		case syntax.Reference:
			fmt.Fprintf(b, "@%s", n.Command)
		case syntax.Variable:
			variableToBuf(b, n, brief)
		case syntax.Empty:
			b.WriteString(";")
		}
	}
	if !brief {
		if n.Help.Len() > 0 {
			b.WriteString("(\"")
			i := 0
			for cv := n.Help.Each(nil); cv != nil; cv = n.Help.Each(cv) {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(cv.StringVal())
				i++
			}
			b.WriteString("\")")
		}
		hide := n.Flags.Has(syntax.FlagHide)
		hideDB := n.Flags.Has(syntax.FlagHideDatabase)
		if hide {
			b.WriteString(", hide")
		}
		if !hide && hideDB {
			b.WriteString(", hide-database")
		}
		if hide && hideDB {
			b.WriteString(", hide-database-auto-completion")
		}
		for _, cc := range n.Callbacks {
			if cc.Fn == "" {
				continue
			}
			fmt.Fprintf(b, ", %s(", cc.Fn)
			i := 0
			for cv := cc.Args.Each(nil); cv != nil; cv = cc.Args.Each(cv) {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(cv.ValueString())
				i++
			}
			b.WriteString(")")
		}
	}
	if n.Terminal {
		b.WriteString(";")
	}
	pt := n.Children
	if pt.Len() > 1 {
		if n.Sets {
			b.WriteString("@")
		}
		b.WriteString("{\n")
	} else if pt.Len() == 1 && pt.Node(0) != nil && pt.Node(0).Kind != syntax.Empty {
		b.WriteString(" ")
	} else {
		b.WriteString("\n")
	}
	treeToBuf(b, pt, margin+indentStep, brief)
	if pt.Len() > 1 {
		fmt.Fprintf(b, "%*s}\n", margin, "")
	}
}

// treeToBuf renders one sibling level. Empty markers and nil slots are
// skipped; each sibling gets its own indented line when the level holds
// more than one.
func treeToBuf(b *bytes.Buffer, pt *syntax.Tree, margin int, brief bool) {
	for i := 0; i < pt.Len(); i++ {
		n := pt.Node(i)
		if n == nil || n.Kind == syntax.Empty {
			continue
		}
		if pt.Len() > 1 {
			fmt.Fprintf(b, "%*s", margin, "")
		}
		nodeToBuf(b, n, margin, brief)
	}
}

// Node renders a single grammar node, recursively including its children,
// to w. Brief mode omits help text, flag annotations, callbacks and
// variable detail.
func Node(w io.Writer, n *syntax.Node, brief bool) error {
	if n == nil {
		return nil
	}
	var b bytes.Buffer
	nodeToBuf(&b, n, 0, brief)
	_, err := w.Write(b.Bytes())
	return err
}

// Tree renders a full sibling list to w.
//
// The output may not be identical to the grammar's input syntax; for
// example [dd|ee] renders as two separate alternative lines.
func Tree(w io.Writer, pt *syntax.Tree, brief bool) error {
	var b bytes.Buffer
	treeToBuf(&b, pt, 0, brief)
	_, err := w.Write(b.Bytes())
	return err
}

// Trees renders every parse-tree registered in r: each tree's name on its
// own line, followed by its full rendering unless brief mode suppresses
// tree bodies entirely.
func Trees(w io.Writer, r *registry.Registry, brief bool) error {
	for e := r.Each(nil); e != nil; e = r.Each(e) {
		if _, err := fmt.Fprintf(w, "%s\n", e.Name()); err != nil {
			return err
		}
		if brief {
			continue
		}
		if err := Tree(w, e.Tree(), brief); err != nil {
			return err
		}
	}
	return nil
}
