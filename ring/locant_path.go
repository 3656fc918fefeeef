package ring

import (
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/wlnerr"
)

// NonTrivialPair records a ring closure not implied by adjacent locant
// positions (spec §3). First/Second are atom identities, not positions,
// because later insertions into the path can move a position without
// moving the atom -- a lookup re-resolves the current position when
// needed (mirrors the original's storing of atom pointers, not indices).
type NonTrivialPair struct {
	First, Second chem.Atom
	Size          int
}

// LocantPath is one candidate total order over a ring system's atoms
// (spec §3).
type LocantPath struct {
	Atoms []chem.Atom
	Pairs []NonTrivialPair
}

// BuildLocantPath runs the per-seed construction of spec §4.4 starting
// from seed, using the SSSR rings and ring-shares already collected by
// Analyze.
func BuildLocantPath(seed chem.Atom, an *Analysis) (*LocantPath, error) {
	pathSize := len(an.RingAtoms)
	path := make([]chem.Atom, pathSize)

	var r0 chem.Ring
	for _, r := range an.SSSR {
		if r.Contains(seed) {
			r0 = r
			break
		}
	}
	if r0 == nil {
		return nil, errors.Wrap(wlnerr.ErrUnresolvedRing, "seed atom not found in local SSSR")
	}

	atomsSeen := map[int]bool{}
	pos := 0
	for _, a := range r0.Atoms() {
		path[pos] = a
		atomsSeen[a.Index()] = true
		pos++
	}
	rotateTo(path[:pos], seed)

	pairs := []NonTrivialPair{{First: path[0], Second: path[pos-1], Size: r0.Size()}}

	ringsSeen := map[chem.Ring]bool{r0: true}

	for handled := 0; handled < len(an.SSSR)-1; handled++ {
		hpPos := -1
		var nextRing chem.Ring
		for i := 0; i < pos; i++ {
			a := path[i]
			if an.RingShares[a.Index()] <= 1 {
				continue
			}
			found := false
			for _, r := range an.SSSR {
				if !ringsSeen[r] && r.Contains(a) {
					hpPos = i
					nextRing = r
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if hpPos < 0 {
			return nil, errors.Wrap(wlnerr.ErrUnresolvedRing, "no ring_shares>1 hinge found -- malformed ring system")
		}
		ringsSeen[nextRing] = true

		newPos, newPair, err := shiftAndAddLocantPath(path, pos, pathSize, hpPos, nextRing, atomsSeen)
		if err != nil {
			return nil, err
		}
		pos = newPos
		pairs = append(pairs, newPair)
	}

	return &LocantPath{Atoms: path, Pairs: pairs}, nil
}

// shiftAndAddLocantPath splices one more ring's atoms into path,
// reproducing the construction (and its rotate-then-reverse edge case)
// exactly as described in spec §4.4 step 2 / original_source's
// ShiftandAddLocantPath. Returns the new path length and the single
// non-trivial pair this splice records.
func shiftAndAddLocantPath(path []chem.Atom, pos, pathSize, hpPos int, obring chem.Ring, atomsSeen map[int]bool) (int, NonTrivialPair, error) {
	insertStart := path[hpPos]
	insertEnd := path[hpPos+1]

	ring := append([]chem.Atom{}, obring.Atoms()...)

	seen := false
	for _, a := range ring {
		if a.Index() == insertEnd.Index() {
			seen = true
			break
		}
	}

	if !seen {
		insertStart = path[pos-1]
		insertEnd = path[0]
	}

	rotateTo(ring, insertStart)

	if seen {
		// Dead by construction (rotateTo already forces ring[0] ==
		// insertStart, so ring[1] can never equal insertStart on a simple
		// cycle) but kept to match the documented open question: the
		// original source checks this unconditionally.
		if len(ring) > 1 && ring[1].Index() == insertStart.Index() {
			ring = rotateLeftOneThenReverse(ring)
		}

		pair := NonTrivialPair{First: insertStart, Second: insertEnd, Size: obring.Size()}

		j := 0
		for _, ratom := range ring {
			if atomsSeen[ratom.Index()] {
				continue
			}
			for k := pathSize - 1; k > hpPos+j; k-- {
				path[k] = path[k-1]
			}
			path[hpPos+1+j] = ratom
			atomsSeen[ratom.Index()] = true
			j++
			pos++
		}
		return pos, pair, nil
	}

	if len(ring) > 1 && ring[1].Index() == insertEnd.Index() {
		ring = rotateLeftOneThenReverse(ring)
	}

	for _, ratom := range ring {
		if atomsSeen[ratom.Index()] {
			continue
		}
		path[pos] = ratom
		atomsSeen[ratom.Index()] = true
		pos++
	}

	pair := NonTrivialPair{First: path[0], Second: path[pos-1], Size: obring.Size()}
	return pos, pair, nil
}

// rotateTo rotates atoms in place so that atoms[0] has the same index as
// target. No-op if target isn't present.
func rotateTo(atoms []chem.Atom, target chem.Atom) {
	idx := -1
	for i, a := range atoms {
		if a.Index() == target.Index() {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	rotated := make([]chem.Atom, len(atoms))
	copy(rotated, atoms[idx:])
	copy(rotated[len(atoms)-idx:], atoms[:idx])
	copy(atoms, rotated)
}

// rotateLeftOneThenReverse pops the front element to the back, then
// reverses the whole sequence -- the literal shift+reverse the original
// performs when the clockwise direction needs flipping.
func rotateLeftOneThenReverse(atoms []chem.Atom) []chem.Atom {
	n := len(atoms)
	out := make([]chem.Atom, n)
	copy(out, atoms[1:])
	out[n-1] = atoms[0]
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
