// Package wlnerr defines the sentinel error kinds shared by every package
// in this module. Every error here is fatal to the operation that raised
// it and is never retried (spec §7): callers wrap one of these with
// github.com/pkg/errors to attach the offending character or atom index,
// and test with errors.Is against the sentinel.
package wlnerr

import "errors"

var (
	// ErrUnknownElement is raised by the atom classifier for an element
	// number it has no WLN symbol rule for.
	ErrUnknownElement = errors.New("wln: unknown element")

	// ErrValenceExceeded is raised when adding or upgrading an edge would
	// push a symbol's degree past its allowed_edges cap.
	ErrValenceExceeded = errors.New("wln: valence exceeded")

	// ErrDuplicateEdge is raised when the same ordered (parent, child)
	// pair is added to the graph a second time.
	ErrDuplicateEdge = errors.New("wln: duplicate edge")

	// ErrGraphTooLarge is raised when a symbol or edge arena would exceed
	// its configured cap.
	ErrGraphTooLarge = errors.New("wln: graph too large")

	// ErrUnsupportedRingSystem is raised when a ring atom belongs to 4 or
	// more SSSR rings (branched fusion, beyond what locant-path
	// construction supports).
	ErrUnsupportedRingSystem = errors.New("wln: unsupported ring system")

	// ErrUnresolvedRing is raised when the ring notation writer cannot
	// emit a non-trivial pair because no pair's path segment is free of
	// interruption -- indicates a locant-path invariant was violated.
	ErrUnresolvedRing = errors.New("wln: unresolved ring")

	// ErrNotInLanguage is raised by the codec when the grammar DFA has no
	// transition for a byte at the current state while compressing, or
	// when a decoded value falls outside every transition. The greedy
	// matcher never raises it: a missing transition just ends a match.
	ErrNotInLanguage = errors.New("wln: input not in language")

	// ErrMalformedInput is surfaced verbatim from the external chemistry
	// toolkit (unparseable SMILES/InChI) or raised locally for an empty
	// molecule.
	ErrMalformedInput = errors.New("wln: malformed input")
)
