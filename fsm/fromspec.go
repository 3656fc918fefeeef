package fsm

// ByteRange and SpecEdge mirror dotgrammar's parsed types without this
// package depending on it (dotgrammar depends on fsm, not the reverse).
type ByteRange struct {
	Lo, Hi byte
}

type SpecEdge struct {
	From, To int
	Ranges   []ByteRange
}

// FromSpec builds an NFA directly from an explicit state/edge listing, as
// parsed by fsm/dotgrammar from a persisted grammar source. Every state ID
// in [0, numStates) is created whether or not it has any edges, so that a
// persisted automaton's numbering is preserved exactly.
func FromSpec(numStates, start int, accept map[int]bool, edges []SpecEdge) *NFA {
	n := newNFA()
	for i := 0; i < numStates; i++ {
		n.newState()
	}
	n.start = start
	for s, isAccept := range accept {
		if isAccept && s < len(n.states) {
			n.states[s].accept = true
		}
	}
	for _, e := range edges {
		for _, r := range e.Ranges {
			n.addRange(e.From, r.Lo, r.Hi, e.To)
		}
	}
	return n
}
