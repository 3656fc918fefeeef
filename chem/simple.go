package chem

// SimpleMolecule is an in-memory Molecule used by this module's own tests
// and by the CLIs when no real chemistry toolkit is linked in. It is the
// one fake external collaborator this module provides: a real binding
// (OpenBabel, RDKit, an InChI parser) implements Atom/Bond/Molecule/Ring
// against live structures instead.
type SimpleMolecule struct {
	atoms []*simpleAtom
	rings []Ring
}

type simpleAtom struct {
	idx            int
	atomicNum      int
	charge         int
	inRing         bool
	bonds          []Bond
	aromaticSMILES bool
}

type simpleBond struct {
	order    int
	aromatic bool
	begin    Atom
	end      Atom
}

type simpleRing struct {
	atoms []Atom
}

func (a *simpleAtom) Index() int            { return a.idx }
func (a *simpleAtom) AtomicNum() int        { return a.atomicNum }
func (a *simpleAtom) FormalCharge() int     { return a.charge }
func (a *simpleAtom) InRing() bool          { return a.inRing }
func (a *simpleAtom) Bonds() []Bond         { return a.bonds }
func (a *simpleAtom) ExplicitValence() int {
	sum := 0
	for _, b := range a.bonds {
		sum += b.Order()
	}
	return sum
}

func (b *simpleBond) Order() int    { return b.order }
func (b *simpleBond) Aromatic() bool { return b.aromatic }
func (b *simpleBond) Begin() Atom   { return b.begin }
func (b *simpleBond) End() Atom     { return b.end }

func (r *simpleRing) Size() int      { return len(r.atoms) }
func (r *simpleRing) Atoms() []Atom  { return r.atoms }
func (r *simpleRing) Contains(a Atom) bool {
	for _, ra := range r.atoms {
		if ra.Index() == a.Index() {
			return true
		}
	}
	return false
}

// NewSimpleMolecule returns an empty molecule builder. Atoms are
// allocated in call order via AddAtom with 0-based indices; Index()
// reflects that order.
func NewSimpleMolecule() *SimpleMolecule {
	return &SimpleMolecule{}
}

// AddAtom appends a new atom with the given element number and formal
// charge, returning its 0-based index for use with AddBond/MarkRing.
func (m *SimpleMolecule) AddAtom(atomicNum, charge int) int {
	idx := len(m.atoms)
	m.atoms = append(m.atoms, &simpleAtom{idx: idx, atomicNum: atomicNum, charge: charge})
	return idx
}

// AddBond connects two previously added atoms by index with the given
// bond order, optionally marking it aromatic.
func (m *SimpleMolecule) AddBond(i, j, order int, aromatic bool) {
	ai, aj := m.atoms[i], m.atoms[j]
	b := &simpleBond{order: order, aromatic: aromatic, begin: ai, end: aj}
	ai.bonds = append(ai.bonds, b)
	aj.bonds = append(aj.bonds, b)
}

// AddRing records one SSSR ring over the given atom indices, in cyclic
// order, and marks each as ring-resident.
func (m *SimpleMolecule) AddRing(atomIdx ...int) {
	ring := &simpleRing{}
	for _, i := range atomIdx {
		a := m.atoms[i]
		a.inRing = true
		ring.atoms = append(ring.atoms, a)
	}
	m.rings = append(m.rings, ring)
}

func (m *SimpleMolecule) Atoms() []Atom {
	out := make([]Atom, len(m.atoms))
	for i, a := range m.atoms {
		out[i] = a
	}
	return out
}

func (m *SimpleMolecule) SSSR() []Ring { return m.rings }

func (m *SimpleMolecule) Empty() bool { return len(m.atoms) == 0 }

// PerceiveRings computes a fundamental cycle basis over the bond graph by
// depth-first spanning-tree construction: every bond not used by the tree
// closes a cycle with the tree path between its two endpoints. For the
// small, molecule-at-a-time inputs this toolkit writes (isolated or singly
// fused ring systems), the fundamental basis coincides with the true SSSR;
// it is not a general minimum-cycle-basis solver and can overcount rings
// for bridged or spiro systems, which spec.md's non-goals already exclude
// from this toolkit's scope (no full graph-isomorphism canonicalization).
func (m *SimpleMolecule) PerceiveRings() {
	n := len(m.atoms)
	parent := make([]int, n)
	parentBond := make([]Bond, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}

	var treeEdges = map[[2]int]bool{}
	var stack []int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack = append(stack, start)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, b := range m.atoms[cur].bonds {
				other := Cross(b, m.atoms[cur])
				oi := other.Index()
				if !visited[oi] {
					visited[oi] = true
					parent[oi] = cur
					parentBond[oi] = b
					treeEdges[[2]int{cur, oi}] = true
					treeEdges[[2]int{oi, cur}] = true
					stack = append(stack, oi)
				}
			}
		}
	}

	seenBond := map[Bond]bool{}
	for i := 0; i < n; i++ {
		for _, b := range m.atoms[i].bonds {
			if seenBond[b] {
				continue
			}
			seenBond[b] = true
			other := Cross(b, m.atoms[i])
			j := other.Index()
			if treeEdges[[2]int{i, j}] {
				continue
			}
			cycle := fundamentalCycle(parent, i, j)
			if len(cycle) >= 3 {
				m.AddRing(cycle...)
			}
		}
	}
}

// fundamentalCycle returns the atom indices, in cyclic order, of the cycle
// formed by the tree path between i and j plus the closing (i, j) edge.
func fundamentalCycle(parent []int, i, j int) []int {
	pathI := ancestorPath(parent, i)
	pathJ := ancestorPath(parent, j)

	inJ := map[int]int{}
	for idx, a := range pathJ {
		inJ[a] = idx
	}

	lcaIdxI := -1
	lcaIdxJ := -1
	for idx, a := range pathI {
		if jIdx, ok := inJ[a]; ok {
			lcaIdxI = idx
			lcaIdxJ = jIdx
			break
		}
	}
	if lcaIdxI < 0 {
		return nil
	}

	cycle := append([]int{}, pathI[:lcaIdxI+1]...)
	for k := lcaIdxJ - 1; k >= 0; k-- {
		cycle = append(cycle, pathJ[k])
	}
	return cycle
}

func ancestorPath(parent []int, start int) []int {
	path := []int{start}
	for cur := start; parent[cur] >= 0; {
		cur = parent[cur]
		path = append(path, cur)
	}
	return path
}
