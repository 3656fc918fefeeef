package ring

// BuildCandidates runs the per-seed locant-path construction and ring
// notation emission (spec §4.4, §4.5) for every candidate seed atom of
// an, returning one Candidate per seed in seed order.
func BuildCandidates(an *Analysis) ([]Candidate, error) {
	seeds := an.Seeds()
	expectedRings := len(an.SSSR)

	candidates := make([]Candidate, 0, len(seeds))
	for i, seed := range seeds {
		path, err := BuildLocantPath(seed, an)
		if err != nil {
			return nil, err
		}
		str, err := WriteRingNotation(path, an.RingShares, expectedRings)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Path: path, String: str, SeedIndex: i})
	}
	return candidates, nil
}
