package writer

import (
	"fmt"
	"io"
	"unicode"

	"github.com/fine-structures/wln/graph"
)

// DumpDot writes g as a Graphviz digraph, one edge line per unit of bond
// order so a double bond shows as two parallel arrows (SPEC_FULL.md §12,
// grounded on original_source's WLNDumpToDot). This is the optional -w
// graph-dump mode of cmd/writewln.
func DumpDot(w io.Writer, g *graph.Graph) error {
	if _, err := fmt.Fprintln(w, "digraph WLNgraph {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir = LR;"); err != nil {
		return err
	}

	for i := 1; i <= g.NumSymbols(); i++ {
		s := g.Symbol(graph.SymbolID(i))
		if err := dumpNode(w, s); err != nil {
			return err
		}
		for _, e := range g.Children(s.ID) {
			n := e.Order
			if n < 1 {
				n = 1
			}
			for k := 0; k < n; k++ {
				if _, err := fmt.Fprintf(w, "  %d -> %d\n", s.ID, e.Child); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func dumpNode(w io.Writer, s *graph.Symbol) error {
	switch {
	case s.Tag == '*':
		_, err := fmt.Fprintf(w, "  %d[shape=circle,label=%q];\n", s.ID, s.Special)
		return err
	case s.Kind == graph.KindRing:
		_, err := fmt.Fprintf(w, "  %d[shape=circle,label=%q,color=green];\n", s.ID, string(s.Tag))
		return err
	case unicode.IsDigit(rune(s.Tag)) && s.Special != "":
		_, err := fmt.Fprintf(w, "  %d[shape=circle,label=%q];\n", s.ID, s.Special)
		return err
	default:
		_, err := fmt.Fprintf(w, "  %d[shape=circle,label=%q];\n", s.ID, string(s.Tag))
		return err
	}
}
