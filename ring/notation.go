package ring

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/internal/atom"
	"github.com/fine-structures/wln/graph"
	"github.com/fine-structures/wln/wlnerr"
)

// locantLetter renders a zero-based locant position as a WLN locant
// letter (A=0, B=1, ...).
func locantLetter(pos int) byte { return byte('A' + pos) }

func isHeteroRing(atoms []chem.Atom) bool {
	for _, a := range atoms {
		if a.AtomicNum() != 6 {
			return true
		}
	}
	return false
}

func reducePath(atoms []chem.Atom, shares map[int]int) []chem.Atom {
	reduced := make([]chem.Atom, len(atoms))
	for i, a := range atoms {
		if shares[a.Index()] > 1 {
			reduced[i] = a
		}
	}
	return reduced
}

func positionOf(atoms []chem.Atom, target chem.Atom) int {
	for i, a := range atoms {
		if a.Index() == target.Index() {
			return i
		}
	}
	return -1
}

// WriteRingNotation emits the ring descriptor of spec §4.5 for one
// candidate locant path: the L/T prefix, every SSSR ring's size token (in
// an order dictated by the non-trivial pairs), the heteroatom locants and
// tags, and the closing J.
func WriteRingNotation(path *LocantPath, ringShares map[int]int, expectedRings int) (string, error) {
	atoms := path.Atoms
	var sb strings.Builder

	if isHeteroRing(atoms) {
		sb.WriteByte('T')
	} else {
		sb.WriteByte('L')
	}

	shares := make(map[int]int, len(ringShares))
	for k, v := range ringShares {
		shares[k] = v
	}

	pairs := append([]NonTrivialPair{}, path.Pairs...)
	reduced := reducePath(atoms, shares)

	safety := 0
	for len(pairs) > 1 && safety < expectedRings {
		popped := false
		for i := 0; i < len(pairs); i++ {
			first, second := pairs[i].First, pairs[i].Second
			pos := positionOf(atoms, first)
			if pos < 0 {
				continue
			}

			for j := pos + 1; j < len(atoms); j++ {
				if reduced[j] != nil && reduced[j].Index() != second.Index() {
					break
				}
				if reduced[j] != nil && reduced[j].Index() == second.Index() {
					if pos > 0 {
						sb.WriteByte(' ')
						sb.WriteByte(locantLetter(pos))
					}
					sb.WriteString(strconv.Itoa(pairs[i].Size))

					pairs = append(pairs[:i], pairs[i+1:]...)
					shares[first.Index()]--
					shares[second.Index()]--
					reduced = reducePath(atoms, shares)
					popped = true
					break
				}
			}
			if popped {
				break
			}
		}
		safety++
		if !popped {
			return "", errors.Wrap(wlnerr.ErrUnresolvedRing, "no emissible ring pair found")
		}
	}

	if len(pairs) != 1 {
		return "", errors.Wrap(wlnerr.ErrUnresolvedRing, "ring closure did not converge to the implicit ring-wrap pair")
	}
	last := pairs[0]
	if last.First.Index() != atoms[0].Index() || last.Second.Index() != atoms[len(atoms)-1].Index() {
		return "", errors.Wrap(wlnerr.ErrUnresolvedRing, "final pair is not the path-spanning ring-wrap closure")
	}
	sb.WriteString(strconv.Itoa(last.Size))

	if err := writeHeteroAtoms(&sb, atoms); err != nil {
		return "", err
	}

	sb.WriteByte('J')
	return sb.String(), nil
}

// writeHeteroAtoms implements spec §4.5 step 5: walk the locant path,
// emitting a locant letter before any heteroatom that doesn't immediately
// follow the previous one, then the atom's WLN tag.
func writeHeteroAtoms(sb *strings.Builder, atoms []chem.Atom) error {
	lastHetero := -1
	for i, a := range atoms {
		if a.AtomicNum() == 6 {
			continue
		}
		if i > 0 && lastHetero != i-1 {
			sb.WriteByte(' ')
			sb.WriteByte(locantLetter(i))
		}
		cl, err := atom.Classify(a)
		if err != nil {
			return err
		}
		if cl.Kind == graph.KindSpecial {
			sb.WriteByte('-')
			sb.WriteString(cl.Special)
			sb.WriteByte('-')
		} else {
			sb.WriteByte(cl.Tag)
		}
		lastHetero = i
	}
	return nil
}
