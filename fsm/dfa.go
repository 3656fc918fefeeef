package fsm

import "sort"

// DFA is a subset-construction or post-minimization automaton with a dense
// 256-entry jump table per state (spec §4.9's "augmented with a dense
// 256-entry jump table per state indexed by input byte"). -1 means no
// transition is defined for that byte.
type DFA struct {
	trans   [][256]int
	accept  []bool
	startID int
}

// Start returns the DFA's start state.
func (d *DFA) Start() int { return d.startID }

// NumStates returns the number of states in d.
func (d *DFA) NumStates() int { return len(d.accept) }

// IsAccept reports whether state is an accepting state.
func (d *DFA) IsAccept(state int) bool { return d.accept[state] }

// Step returns the state δ(state, b) transitions to, or ok=false if that
// transition is undefined (spec §4.9, §4.11's "δ(q, b) undefined").
func (d *DFA) Step(state int, b byte) (int, bool) {
	next := d.trans[state][b]
	if next < 0 {
		return 0, false
	}
	return next, true
}

// Transitions enumerates every defined (byte, target) pair out of state, in
// byte order -- used by the PPM codec (§4.10) to build its per-state
// frequency vector and by the .dot dumper.
func (d *DFA) Transitions(state int) []struct {
	Byte byte
	To   int
} {
	var out []struct {
		Byte byte
		To   int
	}
	for b := 0; b < 256; b++ {
		if to := d.trans[state][b]; to >= 0 {
			out = append(out, struct {
				Byte byte
				To   int
			}{byte(b), to})
		}
	}
	return out
}

// Determinize runs classical subset construction over n, producing a DFA
// whose states are epsilon-closed sets of NFA states (spec §4.9,
// "Determinization: classical subset construction").
func Determinize(n *NFA) *DFA {
	startSet := epsilonClosure(n, []int{n.start})
	key := func(set map[int]bool) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, s)
		}
		sort.Ints(ids)
		buf := make([]byte, 0, len(ids)*4)
		for _, id := range ids {
			buf = append(buf, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
		}
		return string(buf)
	}

	seen := map[string]int{}
	var sets []map[int]bool
	d := &DFA{}

	newDFAState := func(set map[int]bool) int {
		id := len(sets)
		sets = append(sets, set)
		d.trans = append(d.trans, [256]int{})
		for b := range d.trans[id] {
			d.trans[id][b] = -1
		}
		accept := false
		for s := range set {
			if n.states[s].accept {
				accept = true
				break
			}
		}
		d.accept = append(d.accept, accept)
		seen[key(set)] = id
		return id
	}

	startID := newDFAState(startSet)
	d.startID = startID

	queue := []int{startID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		set := sets[cur]

		for b := 0; b < 256; b++ {
			var targets []int
			for s := range set {
				targets = append(targets, n.states[s].byTarg[byte(b)]...)
			}
			if len(targets) == 0 {
				continue
			}
			closure := epsilonClosure(n, targets)
			k := key(closure)
			id, ok := seen[k]
			if !ok {
				id = newDFAState(closure)
				queue = append(queue, id)
			}
			d.trans[cur][b] = id
		}
	}

	return d
}
