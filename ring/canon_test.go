package ring

import "testing"

func TestHighestUnbrokenDigitRun(t *testing.T) {
	cases := map[string]int{
		"L66J":      2,
		"T6 B5 NJ":  1,
		"L6 C10J":   2,
		"":          0,
		"LJ":        0,
	}
	for s, want := range cases {
		if got := highestUnbrokenDigitRun(s); got != want {
			t.Errorf("highestUnbrokenDigitRun(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestFirstLocantSeen(t *testing.T) {
	if got := firstLocantSeen("L66J"); got != 0 {
		t.Errorf("got %q, want 0 (no locant)", got)
	}
	if got := firstLocantSeen("T6 B5 NJ"); got != 'B' {
		t.Errorf("got %c, want B", got)
	}
	if got := firstLocantSeen("LJ"); got != 0 {
		t.Errorf("got %q, want 0 (no locant)", got)
	}
}

func TestSelectCanonicalPrefersLongerDigitRun(t *testing.T) {
	strs := []string{"T6 B5 NJ", "L66J"}
	if got := SelectCanonical(strs); got != 1 {
		t.Errorf("got %d, want 1 (longer digit run)", got)
	}
}

func TestSelectCanonicalTieKeepsFirst(t *testing.T) {
	strs := []string{"L66J", "L66J"}
	if got := SelectCanonical(strs); got != 0 {
		t.Errorf("got %d, want 0 (stable tie-break keeps earlier seed)", got)
	}
}
