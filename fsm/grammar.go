package fsm

// BuildWLNGrammar hand-specifies the WLN line grammar as an NFA fragment
// tree, following spec §4.9's construction sketch (root, first-allowed,
// digits, branch-&, dash-element-start/mid/end, locant-space/ch, open-ring,
// ring-digits, hetero-space/locant/atom, close-ring, ...). The grammar
// recognizes one WLN line, newline excluded -- the codec package (§4.10)
// augments the compiled DFA with its own synthetic newline transition, so
// the base language here stays the single-line grammar spec.md actually
// describes.
//
// Element tags (spec §6): B,C,E,F,G,H,I,K,M,N,O,P,Q,R,S,V,X,Y,Z. T is added
// to this set for atom/hetero-tag position even though spec.md's alphabet
// table omits it from the element list, because T also appears as a
// hetero-atom tag in the literal end-to-end scenarios (e.g. "L6TJ", spec §8
// scenario 7); T's other role, opening a ring, is a distinct token in a
// distinct grammar position and doesn't conflict.
const elementTags = "BCEFGHIKMNOPQRSTVXYZ"

// Every sub-expression below is rebuilt fresh at each occurrence rather
// than shared as a single fragment value: the star/plus/opt combinators
// splice new epsilon edges directly into a fragment's boundary states, so
// reusing the same fragment in two syntactic positions would wire the
// second position's continuations into the first position's states too.
func BuildWLNGrammar() *NFA {
	bd := newBuilder()

	digits := func() fragment { return bd.plus(bd.byteRange('0', '9')) }
	letter := func() fragment { return bd.byteRange('A', 'Z') }
	elementTag := func() fragment { return bd.anyOf(elementTags) }

	// dash-element-start/mid/end: a bracketed two-or-more letter element
	// name, e.g. "-PB-".
	dashSpecial := func() fragment {
		return bd.concat(
			bd.byteLit('-'),
			bd.plus(bd.byteRange('A', 'Z')),
			bd.byteLit('-'),
		)
	}

	atomRun := func() fragment { return bd.union(digits(), elementTag(), dashSpecial()) }

	// double-bond-only / bond prefix: one or two 'U's ahead of an atom.
	bondPrefix := func() fragment { return bd.opt(bd.concat(bd.byteLit('U'), bd.opt(bd.byteLit('U')))) }

	bondedAtom := func() fragment { return bd.concat(bondPrefix(), atomRun()) }

	chain := func() fragment { return bd.plus(bondedAtom()) }

	// ion-space/&: disconnected components joined by " &".
	ionSep := func() fragment { return bd.concat(bd.byteLit(' '), bd.byteLit('&')) }

	acyclicLine := bd.concat(chain(), bd.star(bd.concat(ionSep(), chain())))

	// open-ring: 'L' (carbocycle) or 'T' (heterocycle).
	ringOpen := func() fragment { return bd.anyOf("LT") }

	// hetero-space/locant/atom: each hetero atom in the ring is either
	// adjacent to the previous one (no locant needed) or introduced by a
	// space and a locant letter.
	heteroAtom := func() fragment {
		locant := bd.opt(bd.concat(bd.byteLit(' '), letter()))
		return bd.concat(locant, bd.union(elementTag(), dashSpecial()))
	}
	heteroSeq := func() fragment { return bd.star(heteroAtom()) }

	// ring-digits / big-ring-dash-open/digits/close / multi-digit ring
	// sizes are all just concatenated decimal runs (e.g. "66" for a fused
	// bicyclic), so ring-digits is exactly the shared digits fragment.
	ringBody := bd.concat(ringOpen(), digits(), heteroSeq(), bd.byteLit('J'))

	// inline-ring/space/locant: substituents hanging off a ring locant,
	// e.g. " AN" -- a space, a locant letter, an optional bond prefix, and
	// a chain.
	ringBranch := func() fragment {
		return bd.concat(bd.byteLit(' '), letter(), bondPrefix(), chain())
	}

	cyclicLine := bd.concat(ringBody, bd.star(ringBranch()))

	line := bd.union(cyclicLine, acyclicLine)

	return bd.finish(line)
}

// Compile builds, determinizes, and (unless skipMinimize) minimizes the WLN
// grammar automaton, matching wlngrep's -m flag (spec §6: "skip
// minimization").
func Compile(skipMinimize bool) *DFA {
	d := Determinize(BuildWLNGrammar())
	if skipMinimize {
		return d
	}
	return Minimize(d)
}
