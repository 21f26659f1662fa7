package gnode

import (
	"fmt"
	"io"
)

// WriteDOT writes the graph in Graphviz DOT form, one record per node and one
// edge per link, in creation order.
func (g *Graph) WriteDOT(w io.Writer, name string) error {
	if name == "" {
		name = "exprgraph"
	}
	if _, err := fmt.Fprintf(w, "digraph %q {\n\trankdir=LR;\n\tnode [shape=box];\n", name); err != nil {
		return err
	}
	for _, n := range g.nodes {
		var label string
		switch n.Kind {
		case KindValue:
			label = fmt.Sprintf("%g", n.Value)
		case KindMath:
			label = n.Op.String()
		default:
			label = n.Kind.String()
			if n.Label != "" {
				label += "\\n" + n.Label
			}
		}
		if _, err := fmt.Fprintf(w, "\tn%d [label=\"%s\"];\n", n.ID(), label); err != nil {
			return err
		}
	}
	for _, n := range g.nodes {
		for _, in := range n.in {
			if in.src == nil {
				continue
			}
			attr := ""
			if in.Name != "" {
				attr = fmt.Sprintf(" [label=%q]", in.Name)
			}
			if _, err := fmt.Fprintf(w, "\tn%d -> n%d%s;\n", in.src.Node().ID(), n.ID(), attr); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
