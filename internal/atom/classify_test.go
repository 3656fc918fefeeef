package atom

import (
	"testing"

	"github.com/fine-structures/wln/chem"
	"github.com/fine-structures/wln/graph"
)

func TestClassifyMethane(t *testing.T) {
	m := chem.NewSimpleMolecule()
	c := m.AddAtom(6, 0)
	for i := 0; i < 4; i++ {
		h := m.AddAtom(1, 0)
		m.AddBond(c, h, 1, false)
	}
	got, err := Classify(m.Atoms()[0])
	if err != nil {
		t.Fatal(err)
	}
	// The four explicit hydrogens give degree 4 and bond-order sum 4, so the
	// carbon rule yields X rather than the chain placeholder 1.
	if got.Tag != 'X' || got.AllowedEdges != 4 {
		t.Fatalf("methane carbon with explicit hydrogens should classify X/4, got %+v", got)
	}
}

func TestClassifyAcetoneCentralCarbon(t *testing.T) {
	m := chem.NewSimpleMolecule()
	c1 := m.AddAtom(6, 0)
	c2 := m.AddAtom(6, 0) // central
	o := m.AddAtom(8, 0)
	c3 := m.AddAtom(6, 0)
	m.AddBond(c1, c2, 1, false)
	m.AddBond(c2, o, 2, false)
	m.AddBond(c2, c3, 1, false)

	got, err := Classify(m.Atoms()[c2])
	if err != nil {
		t.Fatal(err)
	}
	if got.Tag != 'X' {
		t.Fatalf("central carbonyl carbon (degree 3, bond-order sum 4) should classify X, got %+v", got)
	}
}

func TestClassifyHydroxylOxygen(t *testing.T) {
	m := chem.NewSimpleMolecule()
	c := m.AddAtom(6, 0)
	o := m.AddAtom(8, 0)
	m.AddBond(c, o, 1, false)

	got, err := Classify(m.Atoms()[o])
	if err != nil {
		t.Fatal(err)
	}
	if got.Tag != 'Q' || got.AllowedEdges != 1 {
		t.Fatalf("hydroxyl oxygen should classify Q/1, got %+v", got)
	}
}

func TestClassifyUnknownElement(t *testing.T) {
	m := chem.NewSimpleMolecule()
	m.AddAtom(999, 0)
	if _, err := Classify(m.Atoms()[0]); err == nil {
		t.Fatal("expected unknown element error")
	}
}

func TestClassifyTwoLetterSpecial(t *testing.T) {
	m := chem.NewSimpleMolecule()
	m.AddAtom(26, 0) // iron
	got, err := Classify(m.Atoms()[0])
	if err != nil {
		t.Fatal(err)
	}
	if got.Tag != '*' || got.Special != "FE" || got.Kind != graph.KindSpecial {
		t.Fatalf("iron should classify as special FE, got %+v", got)
	}
}
