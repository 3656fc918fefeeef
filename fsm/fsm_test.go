package fsm

import "testing"

func runDFA(d *DFA, s string) (accepted bool, consumedAll bool) {
	state := d.Start()
	for i := 0; i < len(s); i++ {
		next, ok := d.Step(state, s[i])
		if !ok {
			return d.IsAccept(state), false
		}
		state = next
	}
	return d.IsAccept(state), true
}

func acceptsWhole(d *DFA, s string) bool {
	accept, all := runDFA(d, s)
	return accept && all
}

func TestGrammarAcceptsLiteralScenarios(t *testing.T) {
	d := Compile(false)

	accepted := []string{
		"1",        // methane
		"Q2",       // ethanol
		"1V1",      // acetone
		"L6J",      // benzene
		"T6NJ",     // pyridine
		"L66J",     // naphthalene
		"L6TJ",     // grep scenario line 1
		"1X28P2X1", // grep scenario line 2
	}
	for _, s := range accepted {
		if !acceptsWhole(d, s) {
			t.Errorf("expected %q to be accepted by the minimized DFA", s)
		}
	}
}

func TestGrammarRejectsGarbage(t *testing.T) {
	d := Compile(false)

	rejected := []string{
		"",
		"!!!",
		"L",   // unterminated ring, no digits, no J
		"J6L", // close before open
	}
	for _, s := range rejected {
		if acceptsWhole(d, s) {
			t.Errorf("expected %q to be rejected by the minimized DFA", s)
		}
	}
}

func TestMinimizeShrinksOrEqualsDeterminized(t *testing.T) {
	det := Determinize(BuildWLNGrammar())
	min := Minimize(det)
	if min.NumStates() > det.NumStates() {
		t.Fatalf("minimized DFA has more states (%d) than determinized (%d)", min.NumStates(), det.NumStates())
	}
	for _, s := range []string{"1", "Q2", "T6NJ", "L66J"} {
		if !acceptsWhole(min, s) {
			t.Errorf("minimized DFA rejected %q", s)
		}
	}
}

func TestSkipMinimizeStillAccepts(t *testing.T) {
	d := Compile(true)
	if !acceptsWhole(d, "L6J") {
		t.Fatal("unminimized DFA should still accept L6J")
	}
}
