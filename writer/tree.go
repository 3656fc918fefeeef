// Package writer implements the acyclic WLN transcriber (spec §4.6) and
// the full writer pipeline that ties ring analysis, locant-path
// canonicalization, and external-branch transcription together into one
// output string (spec §4.8).
package writer

import (
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/graph"
	"github.com/fine-structures/wln/internal/atom"
	"github.com/fine-structures/wln/wlnerr"
)

// Tree is one DFS-built WLN symbol tree rooted at a single non-ring atom,
// together with the bookkeeping BuildTree needs to recover which
// chem.Atom backs each graph.Symbol (spec §4.6's symbol_atom_map).
type Tree struct {
	Graph *graph.Graph
	Root  graph.SymbolID

	bySymbol map[graph.SymbolID]chem.Atom
	byAtom   map[int]graph.SymbolID
}

// AtomOf returns the chem.Atom backing a symbol, or nil if id is unknown.
func (t *Tree) AtomOf(id graph.SymbolID) chem.Atom { return t.bySymbol[id] }

// BuildTree runs the non-cyclic graph build of spec §4.6 (original_source's
// BuildWLNTree): a DFS from seed over every bond that does not touch a
// ring atom, allocating one graph.Symbol per chem.Atom and one graph.Edge
// per bond, unsaturating edges whose bond order is greater than one.
//
// A formally -1 oxygen gets no symbol or edges of its own when it is
// popped, matching the original's early continue for anionic oxygen: its
// unvisited non-ring neighbours are still pushed, so the walk continues
// past it, and its symbol, if any, is the one a neighbour created on
// discovering it.
func BuildTree(seed chem.Atom) (*Tree, error) {
	g := graph.New()
	t := &Tree{
		Graph:    g,
		bySymbol: make(map[graph.SymbolID]chem.Atom),
		byAtom:   make(map[int]graph.SymbolID),
	}

	visited := map[int]bool{}
	stack := []chem.Atom{seed}

	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[a.Index()] = true

		if a.FormalCharge() == -1 && a.AtomicNum() == 8 {
			for _, b := range a.Bonds() {
				nb := chem.Cross(b, a)
				if !visited[nb.Index()] && !nb.InRing() {
					stack = append(stack, nb)
				}
			}
			continue
		}

		sid, ok := t.byAtom[a.Index()]
		if !ok {
			var err error
			sid, err = newSymbolFor(g, a)
			if err != nil {
				return nil, err
			}
			t.byAtom[a.Index()] = sid
			t.bySymbol[sid] = a
			if t.Root == 0 {
				t.Root = sid
			}
		}

		for _, b := range a.Bonds() {
			nb := chem.Cross(b, a)
			if _, made := t.byAtom[nb.Index()]; !made && !nb.InRing() {
				csid, err := newSymbolFor(g, nb)
				if err != nil {
					return nil, err
				}
				t.byAtom[nb.Index()] = csid
				t.bySymbol[csid] = nb

				order := b.Order()
				eid, err := g.AddEdge(sid, csid, 1, b.Aromatic())
				if err != nil {
					return nil, err
				}
				if order > 1 {
					if err := g.Unsaturate(eid, order-1); err != nil {
						return nil, err
					}
				}
			}
			if !visited[nb.Index()] && !nb.InRing() {
				stack = append(stack, nb)
			}
		}
	}

	if t.Root == 0 {
		return nil, errors.Wrap(wlnerr.ErrMalformedInput, "BuildTree: seed produced no root symbol")
	}
	return t, nil
}

func newSymbolFor(g *graph.Graph, a chem.Atom) (graph.SymbolID, error) {
	cl, err := atom.Classify(a)
	if err != nil {
		return 0, err
	}
	return g.NewSymbol(cl.Tag, cl.Special, cl.Kind, cl.AllowedEdges)
}
