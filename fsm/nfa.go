// Package fsm builds, determinizes, and minimizes the byte-level automaton
// that recognizes the WLN line grammar (spec §4.9): a hand-specified NFA is
// constructed over byte ranges, converted to a DFA by subset construction,
// and reduced by partition refinement. The result carries a dense 256-entry
// jump table per state so every downstream consumer (grep, codec) can step
// the automaton with a single array index.
package fsm

// nfaState is one arena slot: a set of epsilon successors plus, for each
// input byte it accepts, the set of byte-successors. Thompson construction
// never needs more than this to represent concatenation, union, and the
// Kleene closures.
type nfaState struct {
	eps    []int
	byTarg map[byte][]int
	accept bool
}

// NFA is a growable arena of nfaState, built up by the fragment combinators
// below and finished by builder.finish.
type NFA struct {
	states []*nfaState
	start  int
}

func newNFA() *NFA {
	return &NFA{}
}

func (n *NFA) newState() int {
	n.states = append(n.states, &nfaState{byTarg: map[byte][]int{}})
	return len(n.states) - 1
}

func (n *NFA) addEps(from, to int) {
	n.states[from].eps = append(n.states[from].eps, to)
}

func (n *NFA) addByte(from int, b byte, to int) {
	n.states[from].byTarg[b] = append(n.states[from].byTarg[b], to)
}

func (n *NFA) addRange(from int, lo, hi byte, to int) {
	for b := int(lo); b <= int(hi); b++ {
		n.addByte(from, byte(b), to)
	}
}

// fragment is a partially built sub-automaton: a single entry state and a
// single dangling exit state, patched together by the combinators.
type fragment struct {
	start, out int
}

// builder accumulates fragments against one NFA arena, mirroring the
// teacher's habit of a small stateful helper (graphBuilder in
// lib2x3/graph-grammar.go) driving arena construction from a parsed or
// hand-written expression tree.
type builder struct {
	n *NFA
}

func newBuilder() *builder {
	return &builder{n: newNFA()}
}

// byteLit matches exactly one occurrence of b.
func (bd *builder) byteLit(b byte) fragment {
	s, o := bd.n.newState(), bd.n.newState()
	bd.n.addByte(s, b, o)
	return fragment{s, o}
}

// byteRange matches exactly one byte in [lo, hi].
func (bd *builder) byteRange(lo, hi byte) fragment {
	s, o := bd.n.newState(), bd.n.newState()
	bd.n.addRange(s, lo, hi, o)
	return fragment{s, o}
}

// anyOf matches exactly one byte from the literal set chars.
func (bd *builder) anyOf(chars string) fragment {
	s, o := bd.n.newState(), bd.n.newState()
	for i := 0; i < len(chars); i++ {
		bd.n.addByte(s, chars[i], o)
	}
	return fragment{s, o}
}

// concat matches each fragment in sequence.
func (bd *builder) concat(frags ...fragment) fragment {
	if len(frags) == 0 {
		s := bd.n.newState()
		return fragment{s, s}
	}
	cur := frags[0]
	for _, next := range frags[1:] {
		bd.n.addEps(cur.out, next.start)
		cur = fragment{cur.start, next.out}
	}
	return cur
}

// union matches any one of frags.
func (bd *builder) union(frags ...fragment) fragment {
	s, o := bd.n.newState(), bd.n.newState()
	for _, f := range frags {
		bd.n.addEps(s, f.start)
		bd.n.addEps(f.out, o)
	}
	return fragment{s, o}
}

// star matches f zero or more times.
func (bd *builder) star(f fragment) fragment {
	s, o := bd.n.newState(), bd.n.newState()
	bd.n.addEps(s, f.start)
	bd.n.addEps(s, o)
	bd.n.addEps(f.out, f.start)
	bd.n.addEps(f.out, o)
	return fragment{s, o}
}

// plus matches f one or more times.
func (bd *builder) plus(f fragment) fragment {
	o := bd.n.newState()
	bd.n.addEps(f.out, f.start)
	bd.n.addEps(f.out, o)
	return fragment{f.start, o}
}

// opt matches f zero or one times.
func (bd *builder) opt(f fragment) fragment {
	s, o := bd.n.newState(), bd.n.newState()
	bd.n.addEps(s, f.start)
	bd.n.addEps(s, o)
	bd.n.addEps(f.out, o)
	return fragment{s, o}
}

// finish marks f's exit state accepting and records f's entry as the NFA's
// start state.
func (bd *builder) finish(f fragment) *NFA {
	bd.n.states[f.out].accept = true
	bd.n.start = f.start
	return bd.n
}

// epsilonClosure returns every state reachable from any state in seed via
// zero or more epsilon transitions, seed included.
func epsilonClosure(n *NFA, seed []int) map[int]bool {
	closure := map[int]bool{}
	stack := append([]int{}, seed...)
	for _, s := range seed {
		closure[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.states[s].eps {
			if !closure[e] {
				closure[e] = true
				stack = append(stack, e)
			}
		}
	}
	return closure
}
