package writer

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/ring"
	"github.com/fine-structures/wln/wlnerr"
)

// locantLetter renders a zero-based ring position as a WLN locant letter.
func locantLetter(pos int) byte { return byte('A' + pos) }

// Write runs the full writer pipeline of spec §4.8: if the molecule has no
// rings, each connected acyclic component is transcribed independently and
// joined with " &" for ionic species (original_source's WriteWLN, no-ring
// branch); otherwise one ring system is resolved to its canonical
// locant path and notation, and every ring atom's external substituents
// are transcribed as non-cyclic branches off their locant (the ring
// branch, original_source's ParseAllCyclic).
func Write(mol chem.Molecule) (string, error) {
	if mol.Empty() {
		return "", errors.Wrap(wlnerr.ErrMalformedInput, "Write: empty molecule")
	}
	if len(mol.SSSR()) == 0 {
		return writeAcyclic(mol)
	}
	return writeCyclic(mol)
}

// writeAcyclic transcribes every connected component of a ring-free
// molecule, joining components with " &" (ionic species separator).
func writeAcyclic(mol chem.Molecule) (string, error) {
	handled := map[int]bool{}
	var buf strings.Builder
	started := false

	for _, a := range mol.Atoms() {
		if handled[a.Index()] {
			continue
		}
		if started {
			buf.WriteString(" &")
		}
		t, err := BuildTree(a)
		if err != nil {
			return "", err
		}
		for idx := range t.byAtom {
			handled[idx] = true
		}
		s, err := TranscribeFromNode(t)
		if err != nil {
			return "", err
		}
		buf.WriteString(s)
		started = true
	}
	return buf.String(), nil
}

// writeCyclic resolves the molecule's ring system and appends every ring
// atom's external substituents, reproducing original_source's
// ParseAllCyclic. Only the ring system reached from the first SSSR ring's
// first atom is written, together with the acyclic substituents attached
// to it. Further ring systems, and components not connected to that ring
// system, are not written.
func writeCyclic(mol chem.Molecule) (string, error) {
	rings := mol.SSSR()
	if len(rings) == 0 || len(rings[0].Atoms()) == 0 {
		return "", errors.Wrap(wlnerr.ErrMalformedInput, "writeCyclic: empty SSSR")
	}
	root := rings[0].Atoms()[0]

	an, err := ring.Analyze(root, mol)
	if err != nil {
		return "", err
	}
	candidates, err := ring.BuildCandidates(an)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", errors.Wrap(wlnerr.ErrUnresolvedRing, "writeCyclic: no candidate locant paths")
	}

	best := ring.RankCandidates(candidates)
	if best == nil {
		return "", errors.Wrap(wlnerr.ErrUnresolvedRing, "writeCyclic: ranking produced no candidate")
	}

	var buf strings.Builder
	buf.WriteString(best.String)

	pathAtoms := best.Path.Atoms
	ringIndex := map[int]bool{}
	for _, a := range pathAtoms {
		ringIndex[a.Index()] = true
	}

	for i, a := range pathAtoms {
		for _, b := range a.Bonds() {
			ext := chem.Cross(b, a)
			if ringIndex[ext.Index()] {
				continue
			}

			buf.WriteByte(' ')
			buf.WriteByte(locantLetter(i))
			if b.Order() > 1 {
				buf.WriteByte('U')
			}
			if b.Order() > 2 {
				buf.WriteByte('U')
			}

			t, err := BuildTree(ext)
			if err != nil {
				return "", err
			}
			s, err := TranscribeFromNode(t)
			if err != nil {
				return "", err
			}
			buf.WriteString(s)
		}
	}

	return buf.String(), nil
}
