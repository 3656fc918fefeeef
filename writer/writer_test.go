package writer

import (
	"strings"
	"testing"

	"github.com/fine-structures/wln/chem"
)

func TestWriteMethane(t *testing.T) {
	m := chem.NewSimpleMolecule()
	m.AddAtom(6, 0)

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1" {
		t.Errorf("Write(methane) = %q, want %q", got, "1")
	}
}

func TestWriteEthanol(t *testing.T) {
	m := chem.NewSimpleMolecule()
	o := m.AddAtom(8, 0)
	c1 := m.AddAtom(6, 0)
	c2 := m.AddAtom(6, 0)
	m.AddBond(o, c1, 1, false)
	m.AddBond(c1, c2, 1, false)

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Q2" {
		t.Errorf("Write(ethanol) = %q, want %q", got, "Q2")
	}
}

func TestWriteAcetone(t *testing.T) {
	m := chem.NewSimpleMolecule()
	c1 := m.AddAtom(6, 0)
	c2 := m.AddAtom(6, 0)
	o := m.AddAtom(8, 0)
	c3 := m.AddAtom(6, 0)
	m.AddBond(c1, c2, 1, false)
	m.AddBond(c2, o, 2, false)
	m.AddBond(c2, c3, 1, false)

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1V1" {
		t.Errorf("Write(acetone) = %q, want %q", got, "1V1")
	}
}

func TestWriteBenzene(t *testing.T) {
	m := chem.NewSimpleMolecule()
	idx := make([]int, 6)
	for i := range idx {
		idx[i] = m.AddAtom(6, 0)
	}
	for i := 0; i < 6; i++ {
		m.AddBond(idx[i], idx[(i+1)%6], 1, true)
	}
	m.AddRing(idx...)

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != "L6J" {
		t.Errorf("Write(benzene) = %q, want %q", got, "L6J")
	}
}

func TestWritePyridine(t *testing.T) {
	m := chem.NewSimpleMolecule()
	n := m.AddAtom(7, 0)
	var c [5]int
	for i := range c {
		c[i] = m.AddAtom(6, 0)
	}
	ring := []int{n, c[0], c[1], c[2], c[3], c[4]}
	for i := 0; i < len(ring); i++ {
		m.AddBond(ring[i], ring[(i+1)%len(ring)], 1, true)
	}
	m.AddRing(ring...)

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != "T6NJ" {
		t.Errorf("Write(pyridine) = %q, want %q", got, "T6NJ")
	}
}

func TestWriteNaphthalene(t *testing.T) {
	m := chem.NewSimpleMolecule()
	idx := make([]int, 10)
	for i := range idx {
		idx[i] = m.AddAtom(6, 0)
	}
	ring1 := []int{idx[0], idx[1], idx[2], idx[3], idx[4], idx[5]}
	ring2 := []int{idx[0], idx[5], idx[6], idx[7], idx[8], idx[9]}
	for i := 0; i < len(ring1); i++ {
		m.AddBond(ring1[i], ring1[(i+1)%len(ring1)], 1, true)
	}
	// ring1's wrap edge (idx[5]-idx[0]) is the shared fusion bond; only the
	// remaining ring2 edges are new.
	for i := 2; i < len(ring2); i++ {
		m.AddBond(ring2[i-1], ring2[i], 1, true)
	}
	m.AddBond(idx[9], idx[0], 1, true)
	m.AddRing(ring1...)
	m.AddRing(ring2...)

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != "L66J" {
		t.Errorf("Write(naphthalene) = %q, want %q", got, "L66J")
	}
}

func TestWriteEmptyMolecule(t *testing.T) {
	m := chem.NewSimpleMolecule()
	if _, err := Write(m); err == nil {
		t.Error("Write(empty) = nil error, want ErrMalformedInput")
	}
}

func TestWriteIonicPair(t *testing.T) {
	m := chem.NewSimpleMolecule()
	c1 := m.AddAtom(6, 0)
	c2 := m.AddAtom(6, 0)
	c3 := m.AddAtom(6, 0)
	m.AddBond(c1, c2, 1, false)
	_ = c3

	got, err := Write(m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, " &") {
		t.Errorf("Write(two components) = %q, want two components joined by %q", got, " &")
	}
}

func TestDumpDotRunsOnMethaneTree(t *testing.T) {
	m := chem.NewSimpleMolecule()
	m.AddAtom(6, 0)

	tree, err := BuildTree(m.Atoms()[0])
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := DumpDot(&sb, tree.Graph); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "digraph WLNgraph") {
		t.Errorf("DumpDot output missing digraph header: %q", out)
	}
}
