package codec

import (
	"bytes"
	"testing"

	"github.com/fine-structures/wln/fsm"
)

func TestRoundTripLiteralScenario(t *testing.T) {
	dfa := fsm.Compile(false)

	model := NewModel(dfa)
	enc := NewEncoder(model)
	if err := enc.EncodeLine([]byte("L6TJ\n")); err != nil {
		t.Fatalf("EncodeLine: %v", err)
	}
	bits := enc.Finish()

	decModel := NewModel(dfa)
	dec := NewDecoder(decModel, bits)
	out, err := dec.DecodeLine()
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}
	if !bytes.Equal(out, []byte("L6TJ\n")) {
		t.Fatalf("round trip mismatch: got %q, want %q", out, "L6TJ\n")
	}
}

func TestRoundTripMultipleLines(t *testing.T) {
	dfa := fsm.Compile(false)
	lines := [][]byte{[]byte("1\n"), []byte("Q2\n"), []byte("T6NJ\n")}

	model := NewModel(dfa)
	enc := NewEncoder(model)
	for _, line := range lines {
		if err := enc.EncodeLine(line); err != nil {
			t.Fatalf("EncodeLine(%q): %v", line, err)
		}
	}
	bits := enc.Finish()

	decModel := NewModel(dfa)
	dec := NewDecoder(decModel, bits)
	for _, want := range lines {
		got, err := dec.DecodeLine()
		if err != nil {
			t.Fatalf("DecodeLine: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("line mismatch: got %q, want %q", got, want)
		}
	}
}

func TestEncodeDeterministicFromResetState(t *testing.T) {
	dfa := fsm.Compile(false)

	encode := func() []byte {
		enc := NewEncoder(NewModel(dfa))
		_ = enc.EncodeLine([]byte("L6TJ\n"))
		return enc.Finish()
	}

	first := encode()
	second := encode()
	if !bytes.Equal(first, second) {
		t.Fatalf("two encodes from reset state diverged: %x vs %x", first, second)
	}
}

func TestEncodeRejectsByteOutsideLanguage(t *testing.T) {
	dfa := fsm.Compile(false)
	enc := NewEncoder(NewModel(dfa))
	if err := enc.EncodeLine([]byte("\x01\n")); err == nil {
		t.Fatal("expected ErrNotInLanguage for a byte with no DFA transition")
	}
}
