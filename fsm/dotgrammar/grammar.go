// Package dotgrammar parses the persisted grammar-source format fsm.DumpDot
// emits (spec.md §6's "grammar automaton (loaded from a .dot file for
// smizip)") back into an in-memory spec the fsm package can build into an
// NFA. The struct-tag grammar and participle.MustBuild driver follow the
// teacher's lib2x3/graph-grammar.go, which parses its own custom line
// notation the same way.
package dotgrammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/fsm"
	"github.com/fine-structures/wln/wlnerr"
)

// DotFile is the root of the persisted grammar source: a named digraph
// holding a flat list of state and edge statements.
type DotFile struct {
	Name  string  `"digraph" @Ident "{"`
	Stmts []*Stmt `@@* "}"`
}

// Stmt is one start, state, or edge declaration.
type Stmt struct {
	Start *StartStmt `( @@`
	State *StateStmt `  | @@`
	Edge  *EdgeStmt  `  | @@ )`
}

// StartStmt names the automaton's start state.
type StartStmt struct {
	ID int `"start" @Int ";"`
}

// StateStmt declares a state and, if the accept keyword is present, marks
// it accepting.
type StateStmt struct {
	ID     int  `"state" @Int`
	Accept bool `@"accept"? ";"`
}

// EdgeStmt declares a transition from From to To labelled by a
// comma-separated run list (see parseLabel).
type EdgeStmt struct {
	From  int    `"edge" @Int`
	To    int    `@Int`
	Label string `@String ";"`
}

var parser = participle.MustBuild[DotFile]()

// Spec is the parsed, semantically resolved form of a DotFile: states by
// ID, each edge's byte ranges expanded, and the set of accepting states.
type Spec struct {
	NumStates int
	Start     int
	Accept    map[int]bool
	Edges     []SpecEdge
}

// SpecEdge is one transition: from state From to state To on every byte in
// any of Ranges.
type SpecEdge struct {
	From, To int
	Ranges   []ByteRange
}

// ByteRange is an inclusive byte range; Lo == Hi for a single byte.
type ByteRange struct {
	Lo, Hi byte
}

// Parse reads a grammar source string into a Spec.
func Parse(src string) (*Spec, error) {
	file, err := parser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(wlnerr.ErrMalformedInput, err.Error())
	}

	spec := &Spec{Accept: map[int]bool{}}
	for _, stmt := range file.Stmts {
		switch {
		case stmt.Start != nil:
			spec.Start = stmt.Start.ID
		case stmt.State != nil:
			if stmt.State.ID+1 > spec.NumStates {
				spec.NumStates = stmt.State.ID + 1
			}
			if stmt.State.Accept {
				spec.Accept[stmt.State.ID] = true
			}
		case stmt.Edge != nil:
			ranges, err := parseLabel(stmt.Edge.Label)
			if err != nil {
				return nil, err
			}
			spec.Edges = append(spec.Edges, SpecEdge{
				From:   stmt.Edge.From,
				To:     stmt.Edge.To,
				Ranges: ranges,
			})
		}
	}
	return spec, nil
}

// parseLabel splits a comma-separated run list ("0-9,A-Z,&") into byte
// ranges. A run is either a single character (a lone "-" included) or a
// lo-hi pair joined by a bare '-'. A run that is or contains ',' can't be
// expressed, since splitRuns always splits the label on it.
func parseLabel(label string) ([]ByteRange, error) {
	var ranges []ByteRange
	for _, run := range splitRuns(label) {
		switch len(run) {
		case 1:
			ranges = append(ranges, ByteRange{Lo: run[0], Hi: run[0]})
		case 3:
			if run[1] != '-' {
				return nil, errors.Wrapf(wlnerr.ErrMalformedInput, "dotgrammar: malformed range %q", run)
			}
			ranges = append(ranges, ByteRange{Lo: run[0], Hi: run[2]})
		default:
			return nil, errors.Wrapf(wlnerr.ErrMalformedInput, "dotgrammar: malformed run %q", run)
		}
	}
	return ranges, nil
}

func splitRuns(label string) []string {
	var out []string
	start := 0
	for i := 0; i < len(label); i++ {
		if label[i] == ',' {
			out = append(out, label[start:i])
			start = i + 1
		}
	}
	out = append(out, label[start:])
	return out
}

// Build converts a Spec into an fsm.NFA with the same state numbering: no
// determinization is implied, since a persisted grammar may already be a
// DFA (every state has at most one outgoing transition per byte) -- callers
// that need a DFA run fsm.Determinize then fsm.Minimize over the result,
// same as for the hand-built grammar.
func (s *Spec) Build() *fsm.NFA {
	return fsm.FromSpec(s.NumStates, s.Start, s.Accept, edgesToFSM(s.Edges))
}

func edgesToFSM(edges []SpecEdge) []fsm.SpecEdge {
	out := make([]fsm.SpecEdge, 0, len(edges))
	for _, e := range edges {
		ranges := make([]fsm.ByteRange, 0, len(e.Ranges))
		for _, r := range e.Ranges {
			ranges = append(ranges, fsm.ByteRange{Lo: r.Lo, Hi: r.Hi})
		}
		out = append(out, fsm.SpecEdge{From: e.From, To: e.To, Ranges: ranges})
	}
	return out
}
