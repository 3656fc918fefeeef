package writer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fine-structures/wln/graph"
	"github.com/fine-structures/wln/wlnerr"
)

// stackItem is one pending (symbol, incoming-bond-order) pair, mirroring
// the original's std::stack<std::pair<WLNSymbol*,unsigned int>>.
type stackItem struct {
	id    graph.SymbolID
	order int
}

// TranscribeFromNode walks t's symbol tree depth-first and emits its WLN
// acyclic notation, reproducing original_source's WriteWLNFromNode: a
// branch stack tracks open multi-valent symbols so that returning from a
// branch emits the right number of '&' closures, and a
// followingTerminator flag suppresses the closure '&' that would
// otherwise be emitted right after a terminal symbol like Q or a
// singly-bonded halogen hands control back to whatever branch is still
// open above it.
func TranscribeFromNode(t *Tree) (string, error) {
	g := t.Graph
	var buf strings.Builder

	branches := newBranchStack()
	visited := map[graph.SymbolID]bool{}

	var prev graph.SymbolID
	followingTerminator := false

	stack := []stackItem{{id: t.Root, order: 0}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top := g.Symbol(item.id)
		order := item.order

		if top.Parent != 0 && prev != 0 && top.Parent != prev && !branches.empty() {
			prev = top.Parent

			if !followingTerminator {
				buf.WriteByte('&')
			}

			for {
				bstop, ok := branches.peek()
				if !ok || prev == bstop {
					break
				}
				bt := g.Symbol(bstop)
				if bt.NumChildren != bt.OnChild || bt.NumEdges < bt.AllowedEdges {
					buf.WriteByte('&')
				}
				branches.pop()
			}

			g.Symbol(prev).OnChild++
		} else if prev != 0 {
			g.Symbol(prev).OnChild++
		}

		followingTerminator = false
		visited[item.id] = true
		prev = item.id

		if order == 2 {
			buf.WriteByte('U')
		} else if order == 3 {
			buf.WriteString("UU")
		}

		switch top.Tag {
		case 'O':
			buf.WriteByte('O')

		case 'Q':
			buf.WriteByte('Q')
			if top.NumEdges == 0 {
				buf.WriteByte('H')
			}
			if top, ok := branches.peek(); ok {
				prev = top
				followingTerminator = true
			}

		case '1':
			newTop := writeCarbonChain(g, top, &buf)
			top = newTop
			prev = top.ID

		case 'Y', 'X':
			if checkDIOXO(g, t, top, visited) {
				buf.WriteByte(top.Tag)
				buf.WriteByte('W')
			} else if checkCarbonyl(g, t, top, visited) {
				buf.WriteByte('V')
			} else {
				buf.WriteByte(top.Tag)
				branches.push(top.ID)
			}

		case 'N':
			switch {
			case top.NumEdges < 2:
				buf.WriteByte('Z')
				if top.NumEdges == 0 {
					buf.WriteByte('H')
				}
				if top, ok := branches.peek(); ok {
					prev = top
					followingTerminator = true
				}
			case top.NumChildren < 2 && top.NumEdges < 3:
				buf.WriteByte('M')
			case top.NumChildren < 3 && top.NumEdges < 4:
				buf.WriteByte('N')
				if checkDIOXO(g, t, top, visited) {
					buf.WriteByte('W')
				}
				branches.push(top.ID)
			default:
				if checkDIOXO(g, t, top, visited) {
					buf.WriteByte('N')
					buf.WriteByte('W')
				} else {
					buf.WriteByte('K')
					branches.push(top.ID)
				}
			}

		case 'E', 'F', 'G', 'I':
			if top.NumEdges > 1 {
				buf.WriteByte('-')
				buf.WriteByte(top.Tag)
				buf.WriteByte('-')
				if checkDIOXO(g, t, top, visited) {
					buf.WriteByte('W')
				}
				branches.push(top.ID)
			} else {
				buf.WriteByte(top.Tag)
				a := t.AtomOf(top.ID)
				if top.NumEdges == 0 && a != nil && a.FormalCharge() == 0 {
					buf.WriteByte('H')
				}
				if top, ok := branches.peek(); ok {
					prev = top
					followingTerminator = true
				}
			}

		case 'B', 'S', 'P':
			buf.WriteByte(top.Tag)
			if checkDIOXO(g, t, top, visited) {
				buf.WriteByte('W')
			}
			if top.NumChildren > 0 {
				branches.push(top.ID)
			}

		case '*':
			buf.WriteByte('-')
			buf.WriteString(top.Special)
			buf.WriteByte('-')
			a := t.AtomOf(top.ID)
			if top.NumEdges == 0 && a != nil && a.FormalCharge() == 0 {
				buf.WriteByte('H')
			} else if top.NumChildren > 0 {
				branches.push(top.ID)
			}

		default:
			return "", errors.Wrapf(wlnerr.ErrMalformedInput, "unhandled WLN tag %q", top.Tag)
		}

		for _, e := range g.Children(top.ID) {
			if !visited[e.Child] {
				stack = append(stack, stackItem{id: e.Child, order: e.Order})
			}
		}
	}

	return buf.String(), nil
}

// checkCarbonyl looks for a doubly-bonded (or formally anionic) oxygen
// child of sym, marking it visited so the main DFS never re-emits it, and
// reports whether one was found (spec §4.6, original's CheckCarbonyl).
func checkCarbonyl(g *graph.Graph, t *Tree, sym *graph.Symbol, visited map[graph.SymbolID]bool) bool {
	for _, e := range g.Children(sym.ID) {
		child := g.Symbol(e.Child)
		if child.Tag != 'O' {
			continue
		}
		a := t.AtomOf(e.Child)
		if e.Order == 2 || (a != nil && a.FormalCharge() == -1) {
			visited[e.Child] = true
			return true
		}
	}
	return false
}

// checkDIOXO looks for two oxygen children of sym -- preferring a pair of
// double-bonded =O over a double-bond plus an anionic -O- -- marking both
// visited and reporting whether two were found (spec §4.6, original's
// CheckDIOXO).
func checkDIOXO(g *graph.Graph, t *Tree, sym *graph.Symbol, visited map[graph.SymbolID]bool) bool {
	var doubled, singled []graph.SymbolID
	for _, e := range g.Children(sym.ID) {
		child := g.Symbol(e.Child)
		if child.Tag != 'O' {
			continue
		}
		if e.Order == 2 {
			doubled = append(doubled, e.Child)
			continue
		}
		a := t.AtomOf(e.Child)
		if a != nil && a.FormalCharge() == -1 {
			singled = append(singled, e.Child)
		}
	}
	oxygens := append(doubled, singled...)
	if len(oxygens) < 2 || len(doubled) == 0 {
		return false
	}
	visited[oxygens[0]] = true
	visited[oxygens[1]] = true
	return true
}

// writeCarbonChain absorbs a run of singly-bonded '1' carbons into one
// digit count, returning the symbol where the run ends (spec §4.6,
// original's WriteCarbonChain).
func writeCarbonChain(g *graph.Graph, sym *graph.Symbol, buf *strings.Builder) *graph.Symbol {
	carbons := 1
	cur := sym
	for {
		children := g.Children(cur.ID)
		if len(children) == 0 || children[0].Order != 1 {
			break
		}
		child := g.Symbol(children[0].Child)
		if child.Tag != '1' {
			break
		}
		carbons++
		cur = child
	}
	buf.WriteString(strconv.Itoa(carbons))
	return cur
}
