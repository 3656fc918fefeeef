// Package atom implements the WLN atom classifier (spec §4.1): a pure
// function of element number, explicit valence, formal charge, and local
// degree/bond-order neighborhood, realized as a tagged-sum decision tree
// rather than subclassing (spec §9, "dynamic dispatch over atom kinds").
package atom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/graph"
	"github.com/fine-structures/wln/wlnerr"
)

// Classification is the newly-minted symbol shape the classifier decides
// on for one atom, before graph.Graph.NewSymbol allocates it.
type Classification struct {
	Tag          byte
	Special      string
	Kind         graph.Kind
	AllowedEdges int
}

// elementTable maps atomic number to a fixed WLN tag + valence cap for
// elements whose rule does not depend on local neighborhood.
var elementTable = map[int]Classification{
	1:  {Tag: 'H', Kind: graph.KindStandard, AllowedEdges: 1},
	5:  {Tag: 'B', Kind: graph.KindStandard, AllowedEdges: 3},
	15: {Tag: 'P', Kind: graph.KindStandard, AllowedEdges: 6},
	16: {Tag: 'S', Kind: graph.KindStandard, AllowedEdges: 6},
}

// halogenTable holds the WLN tag for each halogen; edges = explicit
// valence (spec §4.1).
var halogenTable = map[int]byte{
	9:  'F', // fluorine
	17: 'G', // chlorine
	35: 'E', // bromine
	53: 'I', // iodine
}

// twoLetterTable maps atomic number to the uppercase element code used by
// the '*' special symbol (spec §4.1, "any other element"). K, V, Y, W and U
// are stored as their one-letter symbols. Elements 57-71, 87, 88, 101-103
// and above 109 have no entry, so Classify reports them as unknown.
var twoLetterTable = map[int]string{
	2: "HE", 3: "LI", 4: "BE", 10: "NE", 11: "NA", 12: "MG", 13: "AL", 14: "SI",
	18: "AR", 19: "K", 20: "CA", 21: "SC", 22: "TI", 23: "V", 24: "CR", 25: "MN",
	26: "FE", 27: "CO", 28: "NI", 29: "CU", 30: "ZN", 31: "GA", 32: "GE", 33: "AS",
	34: "SE", 36: "KR", 37: "RB", 38: "SR", 39: "Y", 40: "ZR", 41: "NB", 42: "MO",
	43: "TC", 44: "RU", 45: "RH", 46: "PD", 47: "AG", 48: "CD", 49: "IN", 50: "SN",
	51: "SB", 52: "TE", 54: "XE", 55: "CS", 56: "BA", 72: "HF", 73: "TA", 74: "W",
	75: "RE", 76: "OS", 77: "IR", 78: "PT", 79: "AU", 80: "HG", 81: "TL", 82: "PB",
	83: "BI", 84: "PO", 85: "AT", 86: "RN", 89: "AC", 90: "TH", 91: "PA", 92: "U",
	93: "NP", 94: "PU", 95: "AM", 96: "CM", 97: "BK", 98: "CF", 99: "ES", 100: "FM",
	104: "RF", 105: "DB", 106: "SG", 107: "BH", 108: "HS", 109: "MT",
}

// defaultSpecialEdges is the allowed-edges budget for an unrecognized
// element falling through to the '*' special symbol (spec §4.1).
const defaultSpecialEdges = 8

// Classify applies the rule tree of spec §4.1 to one external atom.
func Classify(a chem.Atom) (Classification, error) {
	num := a.AtomicNum()

	if fixed, ok := elementTable[num]; ok {
		return fixed, nil
	}

	if tag, ok := halogenTable[num]; ok {
		return Classification{Tag: tag, Kind: graph.KindStandard, AllowedEdges: a.ExplicitValence()}, nil
	}

	switch num {
	case 6: // carbon
		return classifyCarbon(a), nil
	case 7: // nitrogen
		return Classification{Tag: 'N', Kind: graph.KindStandard, AllowedEdges: a.ExplicitValence()}, nil
	case 8: // oxygen
		return classifyOxygen(a), nil
	}

	if code, ok := twoLetterTable[num]; ok {
		return Classification{Tag: '*', Special: code, Kind: graph.KindSpecial, AllowedEdges: defaultSpecialEdges}, nil
	}

	return Classification{}, errors.Wrapf(wlnerr.ErrUnknownElement, "atomic number %d", num)
}

func classifyCarbon(a chem.Atom) Classification {
	degree := len(a.Bonds())
	sum := 0
	for _, b := range a.Bonds() {
		sum += b.Order()
	}

	switch {
	case degree <= 2:
		return Classification{Tag: '1', Kind: graph.KindStandard, AllowedEdges: 4}
	case sum == 3:
		return Classification{Tag: 'Y', Kind: graph.KindStandard, AllowedEdges: 3}
	default:
		return Classification{Tag: 'X', Kind: graph.KindStandard, AllowedEdges: 4}
	}
}

func classifyOxygen(a chem.Atom) Classification {
	if a.ExplicitValence() < 2 && a.FormalCharge() != -1 {
		return Classification{Tag: 'Q', Kind: graph.KindStandard, AllowedEdges: 1}
	}
	return Classification{Tag: 'O', Kind: graph.KindStandard, AllowedEdges: 2}
}

// String renders a Classification for debug logging.
func (c Classification) String() string {
	if c.Special != "" {
		return fmt.Sprintf("-%s- (%d edges)", c.Special, c.AllowedEdges)
	}
	return fmt.Sprintf("%c (%d edges)", c.Tag, c.AllowedEdges)
}
