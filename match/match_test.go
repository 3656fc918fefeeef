package match

import (
	"testing"

	"github.com/fine-structures/wln/fsm"
)

func TestFindAllLiteralGrepScenario(t *testing.T) {
	dfa := fsm.Compile(false)
	data := []byte("L6TJ\n1X28P2X1\nT6NJ\n")

	matches := FindAll(dfa, data)
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3 (%v)", len(matches), matches)
	}

	want := []string{"L6TJ", "1X28P2X1", "T6NJ"}
	for i, m := range matches {
		got := string(data[m.Start:m.End])
		if got != want[i] {
			t.Errorf("match %d = %q, want %q", i, got, want[i])
		}
	}

	if Count(dfa, data) != 3 {
		t.Fatalf("Count = %d, want 3", Count(dfa, data))
	}
}

func TestWholeMatch(t *testing.T) {
	dfa := fsm.Compile(false)

	if !WholeMatch(dfa, []byte("T6NJ")) {
		t.Error("expected WholeMatch(\"T6NJ\") to be true")
	}
	if WholeMatch(dfa, []byte("T6NJ\n")) {
		t.Error("expected WholeMatch to be false when the whole input isn't one match (trailing newline is outside the grammar)")
	}
	if WholeMatch(dfa, []byte("xyz")) {
		t.Error("expected WholeMatch(\"xyz\") to be false")
	}
}

func TestSubstringsAndAnyMatch(t *testing.T) {
	dfa := fsm.Compile(false)
	data := []byte("noise L6J more")

	if !AnyMatch(dfa, data) {
		t.Fatal("expected a match inside the noisy line")
	}
	subs := Substrings(dfa, data)
	if len(subs) == 0 {
		t.Fatal("expected at least one matched substring")
	}
}
