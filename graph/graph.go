// Package graph implements the in-memory WLN symbol/edge arena (spec §3,
// §4.2, §9). Symbols and edges live in growable slices and are referenced
// by integer index rather than pointer, the way lib2x3/graph/api.graph.go
// indexes vertices by a one-based VtxID into a fixed array -- we keep the
// indexed-arena idiom but make the backing slice growable, per spec §9's
// "manual memory pools" note, and cap growth with a configurable,
// diagnostic-only limit instead of a hard REASONABLE=1024 array.
package graph

import (
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/wlnerr"
)

// Kind classifies a Symbol the way spec §3 describes: most symbols are
// STANDARD, KindRing is the kind for ring-member symbols, and two-letter
// elements are SPECIAL. The ring package works on chem atoms directly and
// creates no symbols, so the writer never assigns KindRing itself.
type Kind int

const (
	KindStandard Kind = iota
	KindRing
	KindSpecial
)

// SymbolID is a one-based index into a Graph's symbol arena; zero is the
// nil symbol.
type SymbolID int32

// EdgeID is a one-based index into a Graph's edge arena; zero is the nil
// edge.
type EdgeID int32

// DefaultCap is the diagnostic soft cap on symbols/edges per graph,
// carried over from the source's REASONABLE=1024 (spec §4.2, §9).
const DefaultCap = 1024

// Symbol is one node of the WLN notation graph (spec §3).
type Symbol struct {
	ID      SymbolID
	Tag     byte   // single-character WLN tag, e.g. 'X', 'N', 'Q'
	Special string // two-letter element code or ring descriptor payload

	Kind Kind

	AllowedEdges int // valence cap
	NumEdges     int // current degree (sum of incident bond orders)

	NumChildren int // outgoing fan-out in DFS direction
	OnChild     int // transcription cursor: how many children already visited

	Parent SymbolID // zero if this is a root
	bonds  EdgeID   // head of this symbol's outgoing adjacency list
}

// Edge is a directed parent->child relation (spec §3).
type Edge struct {
	ID       EdgeID
	Parent   SymbolID
	Child    SymbolID
	Order    int // 1, 2, or 3
	Aromatic bool
	next     EdgeID // next edge in Parent's adjacency list
}

// Graph owns every Symbol and Edge for one molecule or one ring system's
// worth of transcription. A Graph is released in one shot -- there is no
// partial free (spec §3, lifecycles; spec §5, resource ownership).
type Graph struct {
	symbols []Symbol // symbols[0] is the unused sentinel; real IDs start at 1
	edges   []Edge   // edges[0] is the unused sentinel

	cap int // diagnostic soft cap shared by both arenas

	// edgeSeen guards against duplicate ordered (parent, child) edges
	// without a linear adjacency-list scan per insert.
	edgeSeen map[[2]SymbolID]EdgeID
}

// Option configures a new Graph.
type Option func(*Graph)

// WithCap overrides DefaultCap.
func WithCap(n int) Option {
	return func(g *Graph) { g.cap = n }
}

// New returns an empty Graph ready for symbol/edge allocation.
func New(opts ...Option) *Graph {
	g := &Graph{
		symbols:  make([]Symbol, 1, 64),
		edges:    make([]Edge, 1, 64),
		cap:      DefaultCap,
		edgeSeen: make(map[[2]SymbolID]EdgeID, 64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NumSymbols returns the count of live symbols (excludes the sentinel).
func (g *Graph) NumSymbols() int { return len(g.symbols) - 1 }

// NumEdges returns the count of live edges (excludes the sentinel).
func (g *Graph) NumEdges() int { return len(g.edges) - 1 }

// Symbol resolves a SymbolID to its Symbol. Returns nil for the zero ID
// or an out-of-range ID.
func (g *Graph) Symbol(id SymbolID) *Symbol {
	if id <= 0 || int(id) >= len(g.symbols) {
		return nil
	}
	return &g.symbols[id]
}

// Edge resolves an EdgeID to its Edge.
func (g *Graph) Edge(id EdgeID) *Edge {
	if id <= 0 || int(id) >= len(g.edges) {
		return nil
	}
	return &g.edges[id]
}

// NewSymbol allocates a new Symbol with the given tag/kind/valence cap and
// returns its ID.
func (g *Graph) NewSymbol(tag byte, special string, kind Kind, allowedEdges int) (SymbolID, error) {
	if len(g.symbols) > g.cap {
		return 0, errors.Wrapf(wlnerr.ErrGraphTooLarge, "symbol %d exceeds cap %d", len(g.symbols), g.cap)
	}
	id := SymbolID(len(g.symbols))
	g.symbols = append(g.symbols, Symbol{
		ID:           id,
		Tag:          tag,
		Special:      special,
		Kind:         kind,
		AllowedEdges: allowedEdges,
	})
	return id, nil
}

// AddEdge allocates a directed parent->child edge with the given bond
// order. It validates both endpoints' valence caps and rejects a
// duplicate ordered pair (spec §4.2).
func (g *Graph) AddEdge(parent, child SymbolID, order int, aromatic bool) (EdgeID, error) {
	if len(g.edges) > g.cap {
		return 0, errors.Wrapf(wlnerr.ErrGraphTooLarge, "edge %d exceeds cap %d", len(g.edges), g.cap)
	}
	key := [2]SymbolID{parent, child}
	if _, dup := g.edgeSeen[key]; dup {
		return 0, errors.Wrapf(wlnerr.ErrDuplicateEdge, "parent=%d child=%d", parent, child)
	}

	p, c := g.Symbol(parent), g.Symbol(child)
	if p.NumEdges+order > p.AllowedEdges {
		return 0, errors.Wrapf(wlnerr.ErrValenceExceeded, "symbol %c: %d/%d", p.Tag, p.NumEdges+order, p.AllowedEdges)
	}
	if c.NumEdges+order > c.AllowedEdges {
		return 0, errors.Wrapf(wlnerr.ErrValenceExceeded, "symbol %c: %d/%d", c.Tag, c.NumEdges+order, c.AllowedEdges)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, Parent: parent, Child: child, Order: order, Aromatic: aromatic})
	g.edgeSeen[key] = id

	p.NumEdges += order
	c.NumEdges += order
	p.NumChildren++
	c.Parent = parent

	// thread the new edge onto the parent's adjacency list
	if p.bonds == 0 {
		p.bonds = id
	} else {
		last := p.bonds
		for g.edges[last].next != 0 {
			last = g.edges[last].next
		}
		g.edges[last].next = id
	}

	return id, nil
}

// Unsaturate raises an edge's bond order by n, revalidating both
// endpoints' valence caps (spec §4.2, "increasing bond order revalidates
// the cap").
func (g *Graph) Unsaturate(id EdgeID, n int) error {
	e := g.Edge(id)
	p, c := g.Symbol(e.Parent), g.Symbol(e.Child)
	if p.NumEdges+n > p.AllowedEdges {
		return errors.Wrapf(wlnerr.ErrValenceExceeded, "symbol %c: %d/%d", p.Tag, p.NumEdges+n, p.AllowedEdges)
	}
	if c.NumEdges+n > c.AllowedEdges {
		return errors.Wrapf(wlnerr.ErrValenceExceeded, "symbol %c: %d/%d", c.Tag, c.NumEdges+n, c.AllowedEdges)
	}
	e.Order += n
	p.NumEdges += n
	c.NumEdges += n
	return nil
}

// RemoveEdge unlinks an edge from its parent's adjacency list and
// decrements both endpoints' degree by the edge's order.
func (g *Graph) RemoveEdge(id EdgeID) error {
	e := g.Edge(id)
	if e == nil || e.ID == 0 {
		return errors.Wrap(wlnerr.ErrGraphTooLarge, "remove: nil edge")
	}
	p, c := g.Symbol(e.Parent), g.Symbol(e.Child)
	p.NumEdges -= e.Order
	c.NumEdges -= e.Order

	if p.bonds == id {
		p.bonds = e.next
	} else {
		cur := p.bonds
		for cur != 0 && g.edges[cur].next != id {
			cur = g.edges[cur].next
		}
		if cur != 0 {
			g.edges[cur].next = e.next
		}
	}
	delete(g.edgeSeen, [2]SymbolID{e.Parent, e.Child})
	return nil
}

// Children returns the symbol's outgoing edges in adjacency order.
func (g *Graph) Children(id SymbolID) []*Edge {
	s := g.Symbol(id)
	if s == nil {
		return nil
	}
	var out []*Edge
	for eid := s.bonds; eid != 0; {
		e := g.Edge(eid)
		out = append(out, e)
		eid = e.next
	}
	return out
}
