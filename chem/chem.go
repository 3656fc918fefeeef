// Package chem defines the boundary this module expects of an external
// chemistry toolkit (spec §1, §6): the component that supplies an
// atom/bond graph, perceives aromaticity, enumerates SSSR rings, and
// computes formal charges and valences. This module does not implement
// that toolkit -- it only depends on the shapes below, the way
// rmera-gochem's Bond{Index, At1, At2, Dist, Order} or an InChI
// reader's atom/bond tables do in a real binding.
package chem

// Atom is one node of the external molecule graph. Immutable during
// transcription (spec §3).
type Atom interface {
	// Index is the toolkit's own 1-based or 0-based atom index. It must be
	// unique within a molecule: Cross, Ring.Contains and the ring and writer
	// packages compare atoms by Index.
	Index() int

	// AtomicNum is the element's atomic number (1 = H, 6 = C, ...).
	AtomicNum() int

	// ExplicitValence is the sum of bond orders on this atom's explicit
	// bonds (no implicit hydrogens folded in).
	ExplicitValence() int

	// FormalCharge is the atom's formal charge.
	FormalCharge() int

	// InRing reports whether the toolkit's ring perception placed this
	// atom in at least one ring.
	InRing() bool

	// Bonds lists this atom's bonds in toolkit-assigned order. The
	// writer's output order is only as deterministic as this order.
	Bonds() []Bond
}

// Bond connects two atoms with an integer order and an aromaticity flag.
type Bond interface {
	// Order is the formal bond order: 1, 2, or 3. Aromatic ring bonds are
	// still reported with an integer order (ParseSMILES gives bonds to a
	// lowercase aromatic atom order 1); Aromatic() carries the perception bit
	// separately (spec §3, WLNEdge).
	Order() int

	// Aromatic reports whether the toolkit perceived this bond as part of
	// an aromatic system.
	Aromatic() bool

	// Begin and End are the bond's two endpoints. Order is not
	// significant -- callers use Cross to walk away from a known atom.
	Begin() Atom
	End() Atom
}

// Cross returns the bond's atom on the far side of origin.
func Cross(b Bond, origin Atom) Atom {
	if b.Begin().Index() == origin.Index() {
		return b.End()
	}
	return b.Begin()
}

// Ring is one SSSR ring: an ordered, cyclic sequence of atoms.
type Ring interface {
	Size() int
	Atoms() []Atom
	Contains(a Atom) bool
}

// Molecule is the external toolkit's handle on one parsed structure.
type Molecule interface {
	// Atoms lists every atom in toolkit-assigned order. The first atom
	// (index 0) is used as the default DFS/BFS root when no other seed is
	// specified.
	Atoms() []Atom

	// SSSR returns the toolkit's smallest set of smallest rings.
	SSSR() []Ring

	// Empty reports whether this molecule has zero atoms -- callers must
	// fail with wlnerr.ErrMalformedInput rather than emit partial output
	// (spec §8, boundary behaviors).
	Empty() bool
}
