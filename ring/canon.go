package ring

import "github.com/emirpasic/gods/trees/redblacktree"

// Candidate pairs one seed's locant path with its emitted ring notation
// string, so the winning path can be handed to the external-branch
// transcriber once the string is selected (spec §4.7). SeedIndex is the
// candidate's position in seed order, used only to break an exact tie
// between two otherwise-identical-ranked candidates in favour of the
// earlier seed.
type Candidate struct {
	Path      *LocantPath
	String    string
	SeedIndex int
}

// candidateComparator orders Candidates the way MinimalWLNRingNotation's
// two-key comparison does: the longer unbroken digit run sorts first;
// ties break on the smaller leading locant letter; a true tie (identical
// string) falls back to seed order, so the earliest seed wins -- the same
// outcome SelectCanonical's strict less-than produces, expressed as a
// total order so a redblacktree can hold every candidate ranked without
// re-sorting a slice each time one is produced (spec §10, gods wiring).
func candidateComparator(x, y interface{}) int {
	a, b := x.(Candidate), y.(Candidate)
	chainA, chainB := highestUnbrokenDigitRun(a.String), highestUnbrokenDigitRun(b.String)
	if chainA != chainB {
		return chainB - chainA
	}
	locA, locB := firstLocantSeen(a.String), firstLocantSeen(b.String)
	if locA != locB {
		return int(locA) - int(locB)
	}
	return a.SeedIndex - b.SeedIndex
}

// RankCandidates inserts every candidate into a redblacktree keyed by
// candidateComparator and returns the minimal (most canonical) one --
// the tree's leftmost entry.
func RankCandidates(candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	tree := redblacktree.NewWith(candidateComparator)
	for _, c := range candidates {
		tree.Put(c, nil)
	}
	node := tree.Left()
	if node == nil {
		return nil
	}
	best := node.Key.(Candidate)
	return &best
}

// highestUnbrokenDigitRun returns the length of the longest unbroken run
// of decimal digit characters in s.
func highestUnbrokenDigitRun(s string) int {
	highest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			current++
		} else {
			if current > highest {
				highest = current
			}
			current = 0
		}
	}
	if current > highest {
		highest = current
	}
	return highest
}

// firstLocantSeen returns the ring string's leading locant letter -- the
// first character after the leading L/T prefix that follows a space -- or
// 0 if none appears, so a string without a locant ranks lowest.
func firstLocantSeen(s string) byte {
	for i := 1; i+1 < len(s); i++ {
		if s[i] == ' ' {
			return s[i+1]
		}
	}
	return 0
}

// SelectCanonical picks the minimal ring notation string among
// candidates by the two-key order of spec §4.7: longest unbroken digit
// run wins; ties broken by the smallest leading locant letter (missing
// treated as lowest). The comparison is a strict less-than with no
// tertiary key, so an exact tie keeps the earlier (lower-index) seed --
// preserved deliberately for determinism (spec §9, open questions).
func SelectCanonical(strs []string) int {
	var highest int
	var lowestLoc byte
	retIdx := 0

	for i, s := range strs {
		chain := highestUnbrokenDigitRun(s)
		loc := firstLocantSeen(s)

		if chain > highest {
			highest = chain
			lowestLoc = loc
			retIdx = i
		} else if chain == highest && lowestLoc > loc {
			lowestLoc = loc
			retIdx = i
		}
	}

	return retIdx
}
