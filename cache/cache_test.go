package cache

import (
	"testing"

	"github.com/fine-structures/wln/codec"
	"github.com/fine-structures/wln/fsm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCanonicalStringCachesComputeResult(t *testing.T) {
	s := openTestStore(t)
	hash := StructuralHash([]byte("benzene-ring-fingerprint"))

	calls := 0
	compute := func() (string, error) {
		calls++
		return "L6J", nil
	}

	first, err := s.CanonicalString(hash, compute)
	if err != nil || first != "L6J" {
		t.Fatalf("first CanonicalString: %q, %v", first, err)
	}
	second, err := s.CanonicalString(hash, compute)
	if err != nil || second != "L6J" {
		t.Fatalf("second CanonicalString: %q, %v", second, err)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1 (second call should hit the cache)", calls)
	}
}

func TestCompiledDFARoundTrips(t *testing.T) {
	s := openTestStore(t)
	hash := StructuralHash([]byte("wln-grammar-v1"))

	want := fsm.Compile(false)
	calls := 0
	compute := func() (*fsm.DFA, error) {
		calls++
		return want, nil
	}

	d1, err := s.CompiledDFA(hash, compute)
	if err != nil {
		t.Fatalf("first CompiledDFA: %v", err)
	}
	d2, err := s.CompiledDFA(hash, compute)
	if err != nil {
		t.Fatalf("second CompiledDFA: %v", err)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}

	for _, sample := range []string{"L6J", "T6NJ", "1V1"} {
		state1, state2 := d1.Start(), d2.Start()
		ok1, ok2 := true, true
		for i := 0; i < len(sample) && (ok1 || ok2); i++ {
			state1, ok1 = d1.Step(state1, sample[i])
			state2, ok2 = d2.Step(state2, sample[i])
		}
		if ok1 != ok2 || (ok1 && d1.IsAccept(state1) != d2.IsAccept(state2)) {
			t.Errorf("decoded DFA diverged from original on %q", sample)
		}
	}
}

func TestPPMSessionRoundTrips(t *testing.T) {
	s := openTestStore(t)
	dfa := fsm.Compile(false)

	model := codec.NewModel(dfa)
	enc := codec.NewEncoder(model)
	if err := enc.EncodeLine([]byte("L6TJ\n")); err != nil {
		t.Fatalf("EncodeLine: %v", err)
	}

	key := []byte("session-1")
	if err := s.SavePPMSession(key, model); err != nil {
		t.Fatalf("SavePPMSession: %v", err)
	}

	resumed := codec.NewModel(dfa)
	if err := s.LoadPPMSession(key, resumed); err != nil {
		t.Fatalf("LoadPPMSession: %v", err)
	}

	before := model.ExportFreqs()
	after := resumed.ExportFreqs()
	if len(before) != len(after) {
		t.Fatalf("resumed model has %d drifted states, want %d", len(after), len(before))
	}
}
