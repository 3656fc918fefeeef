// Package codec implements the PPM arithmetic codec of spec §4.10: a
// standard integer range coder whose symbol alphabet at each step is the
// current DFA state's outgoing transition set, not the raw byte alphabet,
// with per-state frequencies that adapt as symbols are coded.
package codec

// top and bot are the classic Subbotin carryless range coder renormalization
// thresholds: whenever low and low+range share their leading byte, or the
// live range drops below bot (the range is then clamped so they do), a
// byte is shifted out (encoder) or in (decoder) and the range is rescaled
// by 256.
const (
	top = uint32(1) << 24
	bot = uint32(1) << 16
)

// rangeEncoder is the low-level carryless range coder. encode consumes
// consecutive (cumFreq, freq, totFreq) triples exactly as a PPM model
// produces them and appends bytes to out.
type rangeEncoder struct {
	low, rng uint32
	out      []byte
}

func newRangeEncoder() *rangeEncoder {
	return &rangeEncoder{rng: 0xFFFFFFFF}
}

func (e *rangeEncoder) encode(cumFreq, freq, totFreq uint32) {
	r := e.rng / totFreq
	e.low += r * cumFreq
	e.rng = r * freq
	e.normalize()
}

func (e *rangeEncoder) normalize() {
	for {
		if (e.low^(e.low+e.rng))&0xFF000000 == 0 {
			// top byte settled: emit it.
		} else if e.rng < bot {
			// range too narrow to resolve the top byte; force it by
			// clamping range to the distance to the next low boundary.
			e.rng = -e.low & (bot - 1)
		} else {
			break
		}
		e.out = append(e.out, byte(e.low>>24))
		e.low <<= 8
		e.rng <<= 8
	}
}

// finish flushes the remaining state, emitting enough bytes for a decoder
// to disambiguate the final symbols.
func (e *rangeEncoder) finish() []byte {
	for i := 0; i < 4; i++ {
		e.out = append(e.out, byte(e.low>>24))
		e.low <<= 8
	}
	return e.out
}

// rangeDecoder mirrors rangeEncoder, consuming bytes from in on demand.
type rangeDecoder struct {
	low, rng, code uint32
	in             []byte
	pos            int
}

func newRangeDecoder(in []byte) *rangeDecoder {
	d := &rangeDecoder{rng: 0xFFFFFFFF, in: in}
	for i := 0; i < 4; i++ {
		d.code = d.code<<8 | uint32(d.nextByte())
	}
	return d
}

func (d *rangeDecoder) nextByte() byte {
	if d.pos >= len(d.in) {
		return 0
	}
	b := d.in[d.pos]
	d.pos++
	return b
}

// getFreq returns the scaled cumulative-frequency value the current code
// point falls at, for a model whose total frequency is totFreq.
func (d *rangeDecoder) getFreq(totFreq uint32) uint32 {
	r := d.rng / totFreq
	v := (d.code - d.low) / r
	if v >= totFreq {
		v = totFreq - 1
	}
	return v
}

// decode advances the decoder past the symbol occupying [cumFreq,
// cumFreq+freq) of totFreq, mirroring rangeEncoder.encode.
func (d *rangeDecoder) decode(cumFreq, freq, totFreq uint32) {
	r := d.rng / totFreq
	d.low += r * cumFreq
	d.rng = r * freq
	d.normalize()
}

func (d *rangeDecoder) normalize() {
	for {
		if (d.low^(d.low+d.rng))&0xFF000000 == 0 {
		} else if d.rng < bot {
			d.rng = -d.low & (bot - 1)
		} else {
			break
		}
		d.code = d.code<<8 | uint32(d.nextByte())
		d.low <<= 8
		d.rng <<= 8
	}
}
