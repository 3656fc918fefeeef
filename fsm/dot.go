package fsm

import (
	"fmt"
	"io"
)

// DumpDot emits d in the persisted grammar-source format fsm/dotgrammar
// parses back (spec.md §6 "Persisted state": "the grammar automaton
// (loaded from a .dot file for smizip)"), collapsing runs of consecutive
// bytes sharing a target into a single comma-separated range label instead
// of one edge per byte. Used by wlngrep's -d flag (spec.md §6) and as the
// source for smizip's grammar.dot argument.
func DumpDot(w io.Writer, d *DFA) error {
	if _, err := fmt.Fprintln(w, "digraph wln {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  start %d;\n", d.startID); err != nil {
		return err
	}
	for s := 0; s < d.NumStates(); s++ {
		if d.accept[s] {
			if _, err := fmt.Fprintf(w, "  state %d accept;\n", s); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "  state %d;\n", s); err != nil {
				return err
			}
		}
	}

	for s := 0; s < d.NumStates(); s++ {
		for _, to := range targetsInOrder(d.trans[s]) {
			label := runsLabel(d.trans[s], to)
			if _, err := fmt.Fprintf(w, "  edge %d %d %q;\n", s, to, label); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

// targetsInOrder returns the distinct targets in trans, in order of first
// appearance, so DumpDot emits one edge statement per target rather than
// one per byte.
func targetsInOrder(trans [256]int) []int {
	var order []int
	seen := map[int]bool{}
	for b := 0; b < 256; b++ {
		to := trans[b]
		if to < 0 || seen[to] {
			continue
		}
		seen[to] = true
		order = append(order, to)
	}
	return order
}

// runsLabel renders every byte run in trans that targets `to` as a
// comma-separated list of single characters or lo-hi ranges.
func runsLabel(trans [256]int, to int) string {
	var parts []string
	b := 0
	for b < 256 {
		if trans[b] != to {
			b++
			continue
		}
		lo := b
		for b < 256 && trans[b] == to {
			b++
		}
		hi := b - 1
		if lo == hi {
			parts = append(parts, string([]byte{byte(lo)}))
		} else {
			parts = append(parts, fmt.Sprintf("%c-%c", byte(lo), byte(hi)))
		}
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}
