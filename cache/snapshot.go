// Package cache memoizes the two expensive, input-keyed computations of
// this toolkit -- canonical WLN strings and compiled grammar DFAs -- in a
// badger key-value store, the way the teacher's lib2x3/catalog/catalog.go
// memoizes canonical graph encodings (spec.md §9 "Manual memory pools";
// SPEC_FULL.md §10 wires badger/v3 here for the same reason the teacher
// wired it into its catalog).
package cache

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/codec"
	"github.com/fine-structures/wln/fsm"
)

// encodeDFA writes d as a compact varint stream: state count, start state,
// then per state an accept flag and its defined transitions -- using
// gogo/protobuf's proto.Buffer varint helpers in place of a bespoke varint
// writer (SPEC_FULL.md §10).
func encodeDFA(d *fsm.DFA) []byte {
	buf := proto.NewBuffer(nil)
	buf.EncodeVarint(uint64(d.NumStates()))
	buf.EncodeVarint(uint64(d.Start()))

	for s := 0; s < d.NumStates(); s++ {
		accept := uint64(0)
		if d.IsAccept(s) {
			accept = 1
		}
		buf.EncodeVarint(accept)

		trans := d.Transitions(s)
		buf.EncodeVarint(uint64(len(trans)))
		for _, t := range trans {
			buf.EncodeVarint(uint64(t.Byte))
			buf.EncodeVarint(uint64(t.To))
		}
	}
	return buf.Bytes()
}

// decodeDFA is encodeDFA's inverse.
func decodeDFA(data []byte) (*fsm.DFA, error) {
	buf := proto.NewBuffer(data)

	numStates, err := buf.DecodeVarint()
	if err != nil {
		return nil, errors.Wrap(err, "cache: decode DFA state count")
	}
	start, err := buf.DecodeVarint()
	if err != nil {
		return nil, errors.Wrap(err, "cache: decode DFA start state")
	}

	d := fsm.NewDFA(int(numStates), int(start))
	for s := 0; s < int(numStates); s++ {
		accept, err := buf.DecodeVarint()
		if err != nil {
			return nil, errors.Wrap(err, "cache: decode DFA accept flag")
		}
		d.SetAccept(s, accept != 0)

		numTrans, err := buf.DecodeVarint()
		if err != nil {
			return nil, errors.Wrap(err, "cache: decode DFA transition count")
		}
		for i := uint64(0); i < numTrans; i++ {
			b, err := buf.DecodeVarint()
			if err != nil {
				return nil, errors.Wrap(err, "cache: decode DFA transition byte")
			}
			to, err := buf.DecodeVarint()
			if err != nil {
				return nil, errors.Wrap(err, "cache: decode DFA transition target")
			}
			d.SetTransition(s, byte(b), int(to))
		}
	}
	return d, nil
}

// encodePPMFreqs writes a PPM model's drifted frequency state the same
// varint-stream way encodeDFA does.
func encodePPMFreqs(states []codec.FreqState) []byte {
	buf := proto.NewBuffer(nil)
	buf.EncodeVarint(uint64(len(states)))
	for _, rec := range states {
		buf.EncodeVarint(uint64(rec.State))
		buf.EncodeVarint(uint64(len(rec.Freqs)))
		for _, f := range rec.Freqs {
			buf.EncodeVarint(uint64(f))
		}
	}
	return buf.Bytes()
}

func decodePPMFreqs(data []byte) ([]codec.FreqState, error) {
	buf := proto.NewBuffer(data)

	numRecords, err := buf.DecodeVarint()
	if err != nil {
		return nil, errors.Wrap(err, "cache: decode PPM record count")
	}

	out := make([]codec.FreqState, 0, numRecords)
	for i := uint64(0); i < numRecords; i++ {
		state, err := buf.DecodeVarint()
		if err != nil {
			return nil, errors.Wrap(err, "cache: decode PPM state id")
		}
		numFreqs, err := buf.DecodeVarint()
		if err != nil {
			return nil, errors.Wrap(err, "cache: decode PPM freq count")
		}
		freqs := make([]uint32, numFreqs)
		for j := range freqs {
			f, err := buf.DecodeVarint()
			if err != nil {
				return nil, errors.Wrap(err, "cache: decode PPM freq value")
			}
			freqs[j] = uint32(f)
		}
		out = append(out, codec.FreqState{State: int(state), Freqs: freqs})
	}
	return out, nil
}

