// Package ring implements the ring analyzer, locant-path builder, ring
// notation writer, and canonicalizer (spec §4.3, §4.4, §4.5, §4.7) -- the
// central canonicalization engine of the writer pipeline.
package ring

import (
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/wlnerr"
)

// Analysis is the report produced by Analyze for one local ring system
// reached from a seed atom (spec §4.3).
type Analysis struct {
	RingAtoms  []chem.Atom
	RingShares map[int]int // atom index -> count of SSSR rings containing it
	SSSR       []chem.Ring // the spanned SSSR rings, in discovery order
	Tau        int         // fusion class used to pick seed candidates: 2 (simple) or 3 (multicyclic)
}

// Analyze breadth-first traverses every ring-membership-connected atom
// reachable from seed, tallying how many SSSR rings each belongs to, and
// classifies the system's fusion topology.
func Analyze(seed chem.Atom, mol chem.Molecule) (*Analysis, error) {
	visited := map[int]bool{seed.Index(): true}
	queue := []chem.Atom{seed}

	var ringAtoms []chem.Atom
	ringShares := map[int]int{}

	seenRing := map[chem.Ring]bool{}
	var sssr []chem.Ring

	var multicyclic, branching int

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		ringAtoms = append(ringAtoms, a)

		inRings := 0
		for _, r := range mol.SSSR() {
			if r.Contains(a) {
				inRings++
				if !seenRing[r] {
					seenRing[r] = true
					sssr = append(sssr, r)
				}
			}
		}
		ringShares[a.Index()] = inRings

		for _, b := range a.Bonds() {
			nb := chem.Cross(b, a)
			if nb.InRing() && !visited[nb.Index()] {
				visited[nb.Index()] = true
				queue = append(queue, nb)
			}
		}

		switch {
		case inRings > 3:
			branching++
		case inRings == 3:
			multicyclic++
		}
	}

	if branching > 0 {
		return nil, errors.Wrapf(wlnerr.ErrUnsupportedRingSystem, "%d atom(s) belong to 4+ SSSR rings", branching)
	}

	tau := 2
	if multicyclic > 0 {
		tau = 3
	}

	return &Analysis{RingAtoms: ringAtoms, RingShares: ringShares, SSSR: sssr, Tau: tau}, nil
}

// Seeds returns every ring atom whose share equals the system's fusion
// class -- the candidate locant-path starting points (spec §4.4). A plain
// isolated monocyclic ring never has a fusion atom (every atom's share is
// 1, below the tau=2 threshold), so it would otherwise yield no seeds at
// all; in that case every ring atom is an equally valid start and is
// returned instead (a deliberate departure from the literal source, which
// has no such fallback, documented per spec §9's open questions).
func (an *Analysis) Seeds() []chem.Atom {
	var out []chem.Atom
	for _, a := range an.RingAtoms {
		if an.RingShares[a.Index()] == an.Tau {
			out = append(out, a)
		}
	}
	if len(out) > 0 {
		return out
	}

	// Isolated monocyclic ring: no atom ever reaches the fused/multicyclic
	// threshold. Prefer heteroatoms as seeds (they give the lowest-locant
	// notation directly, without asking the canonicalizer to discriminate
	// between otherwise-identical rotations); fall back to every ring atom
	// for a pure-carbon ring, where rotation doesn't change the output.
	for _, a := range an.RingAtoms {
		if a.AtomicNum() != 6 {
			out = append(out, a)
		}
	}
	if len(out) > 0 {
		return out
	}
	return an.RingAtoms
}
