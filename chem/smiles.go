package chem

import (
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/wlnerr"
)

var smilesElements = map[string]int{
	"C": 6, "N": 7, "O": 8, "F": 9, "P": 15, "S": 16,
	"Cl": 17, "Br": 35, "I": 53, "B": 5, "H": 1,
}

var smilesAromatic = map[byte]int{
	'c': 6, 'n': 7, 'o': 8, 's': 16, 'p': 15,
}

// ParseSMILES reads a common-organic-subset SMILES string into a
// SimpleMolecule: single/double/triple bonds, branches, ring-closure
// digits, and lowercase aromatic atoms. It does not implement stereo
// descriptors, isotopes, or extended bracket-atom syntax beyond a bare
// element symbol and an optional formal charge -- writewln's -ismi input
// only needs to reproduce the molecules this toolkit itself can write, not
// round-trip arbitrary SMILES (spec.md §7: a real chemistry toolkit
// binding would replace this for production input; this is the one this
// module supplies itself, same as SimpleMolecule is for Molecule).
func ParseSMILES(s string) (*SimpleMolecule, error) {
	mol := NewSimpleMolecule()

	prevAtom := -1
	pendingOrder := 1
	pendingAromatic := false
	var branchStack []int
	ringOpen := map[byte]ringClosure{}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '(':
			branchStack = append(branchStack, prevAtom)
			i++

		case c == ')':
			if len(branchStack) == 0 {
				return nil, errors.Wrap(wlnerr.ErrMalformedInput, "SMILES: unmatched ')'")
			}
			prevAtom = branchStack[len(branchStack)-1]
			branchStack = branchStack[:len(branchStack)-1]
			i++

		case c == '=':
			pendingOrder = 2
			i++

		case c == '#':
			pendingOrder = 3
			i++

		case c == '-' || c == '/' || c == '\\':
			// explicit single bond / stereo bond marker, treated as a
			// plain single bond (stereo isn't modeled).
			i++

		case c >= '0' && c <= '9':
			if prevAtom < 0 {
				return nil, errors.Wrap(wlnerr.ErrMalformedInput, "SMILES: ring closure digit before any atom")
			}
			if open, ok := ringOpen[c]; ok {
				order := open.order
				if pendingOrder > order {
					order = pendingOrder
				}
				mol.AddBond(open.atom, prevAtom, order, open.aromatic && mol.atoms[prevAtom].aromaticSMILES)
				delete(ringOpen, c)
			} else {
				ringOpen[c] = ringClosure{atom: prevAtom, order: pendingOrder, aromatic: mol.atoms[prevAtom].aromaticSMILES}
			}
			pendingOrder = 1
			i++

		case c == '[':
			end := i + 1
			for end < len(s) && s[end] != ']' {
				end++
			}
			if end >= len(s) {
				return nil, errors.Wrap(wlnerr.ErrMalformedInput, "SMILES: unterminated '['")
			}
			atomIdx, err := parseBracketAtom(mol, s[i+1:end])
			if err != nil {
				return nil, err
			}
			if prevAtom >= 0 {
				mol.AddBond(prevAtom, atomIdx, pendingOrder, pendingAromatic)
			}
			prevAtom = atomIdx
			pendingOrder = 1
			pendingAromatic = false
			i = end + 1

		case c >= 'A' && c <= 'Z':
			sym, width := readElementSymbol(s, i)
			num, ok := smilesElements[sym]
			if !ok {
				return nil, errors.Wrapf(wlnerr.ErrUnknownElement, "SMILES: unknown element %q", sym)
			}
			atomIdx := mol.AddAtom(num, 0)
			if prevAtom >= 0 {
				mol.AddBond(prevAtom, atomIdx, pendingOrder, pendingAromatic)
			}
			prevAtom = atomIdx
			pendingOrder = 1
			pendingAromatic = false
			i += width

		case smilesAromatic[c] != 0:
			num := smilesAromatic[c]
			atomIdx := mol.AddAtom(num, 0)
			mol.atoms[atomIdx].aromaticSMILES = true
			if prevAtom >= 0 {
				mol.AddBond(prevAtom, atomIdx, 1, true)
			}
			prevAtom = atomIdx
			pendingOrder = 1
			pendingAromatic = false
			i++

		default:
			return nil, errors.Wrapf(wlnerr.ErrMalformedInput, "SMILES: unexpected character %q", c)
		}
	}

	if mol.Empty() {
		return nil, errors.Wrap(wlnerr.ErrMalformedInput, "SMILES: empty molecule")
	}

	mol.PerceiveRings()
	return mol, nil
}

type ringClosure struct {
	atom     int
	order    int
	aromatic bool
}

func readElementSymbol(s string, i int) (string, int) {
	if i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
		two := s[i : i+2]
		if _, ok := smilesElements[two]; ok {
			return two, 2
		}
	}
	return s[i : i+1], 1
}

func parseBracketAtom(mol *SimpleMolecule, inner string) (int, error) {
	i := 0
	for i < len(inner) && inner[i] >= '0' && inner[i] <= '9' {
		i++ // skip isotope mass number
	}
	start := i
	if i < len(inner) && inner[i] >= 'A' && inner[i] <= 'Z' {
		i++
	}
	for i < len(inner) && inner[i] >= 'a' && inner[i] <= 'z' {
		i++
	}
	sym := inner[start:i]
	num, ok := smilesElements[sym]
	if !ok {
		return 0, errors.Wrapf(wlnerr.ErrUnknownElement, "SMILES: unknown bracket element %q", sym)
	}

	charge := 0
	for i < len(inner) {
		switch inner[i] {
		case '+':
			charge++
			i++
		case '-':
			charge--
			i++
		case 'H':
			j := i + 1
			for j < len(inner) && inner[j] >= '0' && inner[j] <= '9' {
				j++
			}
			i = j
		default:
			i++
		}
	}

	return mol.AddAtom(num, charge), nil
}

