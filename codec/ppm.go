package codec

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/fine-structures/wln/fsm"
	"github.com/fine-structures/wln/wlnerr"
)

// transition is one outgoing edge of a DFA state, as seen by the PPM
// model: a byte and the state it leads to.
type transition struct {
	b  byte
	to int
}

// stateModel holds the adaptive frequency vector for one DFA state's
// transition set (spec §4.10: "maintain a mutable frequency vector over
// q's outgoing transitions... Initialization: uniform frequencies").
type stateModel struct {
	trans []transition
	freq  []uint32
	total uint32
}

func (sm *stateModel) indexOf(b byte) int {
	for i, t := range sm.trans {
		if t.b == b {
			return i
		}
	}
	return -1
}

func (sm *stateModel) cumFreqBefore(idx int) uint32 {
	var cum uint32
	for i := 0; i < idx; i++ {
		cum += sm.freq[i]
	}
	return cum
}

func (sm *stateModel) bump(idx int) {
	sm.freq[idx]++
	sm.total++
}

// Model wraps an immutable grammar DFA with, for every state, the newline
// transition the codec adds from accept states back to the root (spec
// §4.10's "Termination: a synthetic newline transition is added from every
// accept state back to the root, providing record separators"). The DFA
// itself is read-only and may be shared by many Models; each Model owns
// its own per-state frequency tables, since those mutate per coding
// session (spec §5: "must each own their own PPM frequency tables").
type Model struct {
	dfa    *fsm.DFA
	states []*stateModel
}

// NewModel builds a fresh, uniformly-initialized PPM model over dfa.
func NewModel(dfa *fsm.DFA) *Model {
	m := &Model{dfa: dfa, states: make([]*stateModel, dfa.NumStates())}
	for s := 0; s < dfa.NumStates(); s++ {
		var trans []transition
		for _, t := range dfa.Transitions(s) {
			trans = append(trans, transition{b: t.Byte, to: t.To})
		}
		if dfa.IsAccept(s) {
			trans = append(trans, transition{b: '\n', to: dfa.Start()})
		}
		sort.Slice(trans, func(i, j int) bool { return trans[i].b < trans[j].b })

		freq := make([]uint32, len(trans))
		var total uint32
		for i := range freq {
			freq[i] = 1
			total++
		}
		m.states[s] = &stateModel{trans: trans, freq: freq, total: total}
	}
	return m
}

// FreqState is one state's adaptive frequency vector, in transition order
// (the same order NewModel built it in), for persisting a coding session
// to the cache and resuming it later.
type FreqState struct {
	State int
	Freqs []uint32
}

// ExportFreqs snapshots every state whose frequencies have drifted from
// their uniform initial value.
func (m *Model) ExportFreqs() []FreqState {
	var out []FreqState
	for s, sm := range m.states {
		uniform := true
		for _, f := range sm.freq {
			if f != 1 {
				uniform = false
				break
			}
		}
		if uniform {
			continue
		}
		out = append(out, FreqState{State: s, Freqs: append([]uint32{}, sm.freq...)})
	}
	return out
}

// ImportFreqs restores frequency vectors previously captured by
// ExportFreqs. A record whose length doesn't match the live state's
// transition count (the grammar changed) is skipped.
func (m *Model) ImportFreqs(states []FreqState) {
	for _, rec := range states {
		if rec.State < 0 || rec.State >= len(m.states) {
			continue
		}
		sm := m.states[rec.State]
		if len(rec.Freqs) != len(sm.freq) {
			continue
		}
		var total uint32
		for i, f := range rec.Freqs {
			sm.freq[i] = f
			total += f
		}
		sm.total = total
	}
}

// Encoder drives rangeEncoder over a Model, coding one or more
// newline-terminated lines into a single continuous bitstream.
type Encoder struct {
	model *Model
	enc   *rangeEncoder
	state int
}

func NewEncoder(model *Model) *Encoder {
	return &Encoder{model: model, enc: newRangeEncoder(), state: model.dfa.Start()}
}

// EncodeLine codes line, appending a trailing '\n' if line doesn't already
// end with one, so the decoder's record-separator convention always holds.
func (e *Encoder) EncodeLine(line []byte) error {
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(append([]byte{}, line...), '\n')
	}
	for _, b := range line {
		sm := e.model.states[e.state]
		idx := sm.indexOf(b)
		if idx < 0 {
			return errors.Wrapf(wlnerr.ErrNotInLanguage, "codec: no transition for byte %q at state %d", b, e.state)
		}
		e.enc.encode(sm.cumFreqBefore(idx), sm.freq[idx], sm.total)
		sm.bump(idx)
		e.state = sm.trans[idx].to
	}
	return nil
}

// Finish flushes the range coder and returns the complete bitstream.
func (e *Encoder) Finish() []byte {
	return e.enc.finish()
}

// Decoder mirrors Encoder, consuming a bitstream produced by it.
type Decoder struct {
	model *Model
	dec   *rangeDecoder
	state int
}

func NewDecoder(model *Model, encoded []byte) *Decoder {
	return &Decoder{model: model, dec: newRangeDecoder(encoded), state: model.dfa.Start()}
}

// DecodeLine decodes one newline-terminated record, returning it with the
// trailing '\n' included.
func (d *Decoder) DecodeLine() ([]byte, error) {
	var out []byte
	for {
		sm := d.model.states[d.state]
		v := d.dec.getFreq(sm.total)

		var idx int
		var cum uint32
		for idx = 0; idx < len(sm.trans); idx++ {
			if v < cum+sm.freq[idx] {
				break
			}
			cum += sm.freq[idx]
		}
		if idx == len(sm.trans) {
			return out, errors.Wrap(wlnerr.ErrNotInLanguage, "codec: decoded frequency fell outside every transition")
		}

		d.dec.decode(cum, sm.freq[idx], sm.total)
		sm.bump(idx)

		b := sm.trans[idx].b
		d.state = sm.trans[idx].to
		out = append(out, b)
		if b == '\n' {
			return out, nil
		}
	}
}

// Done reports whether the decoder has consumed every byte of its input
// bitstream, the exhaustion condition spec §4.10 uses to detect EOF at an
// accept-plus-newline point.
func (d *Decoder) Done() bool {
	return d.dec.pos >= len(d.dec.in)
}
