// Package match drives the compiled WLN grammar DFA over raw input bytes to
// find every maximal, non-overlapping valid-WLN substring (spec §4.11). It
// needs no separate pattern: the grammar DFA itself is the pattern, and a
// '\n' in the input -- never a valid WLN transition -- naturally bounds a
// match at a line break without match needing to know about lines at all.
package match

import "github.com/fine-structures/wln/fsm"

// Match is a maximal accepted substring's half-open byte range [Start, End)
// within the scanned input.
type Match struct {
	Start, End int
}

// FindAll scans data for every maximal, non-overlapping run accepted by
// dfa, using greedy longest-match semantics: from each candidate start, it
// advances the DFA as far as possible and keeps the position of the last
// accept state seen; on reaching that limit (an undefined transition or
// end of input) it records [start, lastAccept) if lastAccept advanced past
// start, then resumes scanning from there (or one byte further, if no
// match started at this position at all) -- spec §4.11.
func FindAll(dfa *fsm.DFA, data []byte) []Match {
	var matches []Match
	n := len(data)

	for start := 0; start < n; {
		state := dfa.Start()
		lastAccept := -1
		if dfa.IsAccept(state) {
			lastAccept = start
		}

		cursor := start
		for cursor < n {
			next, ok := dfa.Step(state, data[cursor])
			if !ok {
				break
			}
			state = next
			cursor++
			if dfa.IsAccept(state) {
				lastAccept = cursor
			}
		}

		if lastAccept > start {
			matches = append(matches, Match{Start: start, End: lastAccept})
			start = lastAccept
		} else {
			start++
		}
	}

	return matches
}

// Count is wlngrep's -c mode: the number of matches.
func Count(dfa *fsm.DFA, data []byte) int {
	return len(FindAll(dfa, data))
}

// Substrings is wlngrep's -o mode: every matched substring, in order.
func Substrings(dfa *fsm.DFA, data []byte) [][]byte {
	matches := FindAll(dfa, data)
	out := make([][]byte, len(matches))
	for i, m := range matches {
		out[i] = data[m.Start:m.End]
	}
	return out
}

// AnyMatch is the default mode: whether any match exists at all.
func AnyMatch(dfa *fsm.DFA, data []byte) bool {
	return len(FindAll(dfa, data)) > 0
}

// WholeMatch is wlngrep's -x mode: true only if data, as a whole, is a
// single match ending in an accept state -- not merely containing one.
func WholeMatch(dfa *fsm.DFA, data []byte) bool {
	matches := FindAll(dfa, data)
	return len(matches) == 1 && matches[0].Start == 0 && matches[0].End == len(data)
}
