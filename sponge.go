// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

const (
	KeySize  = 128 / 8 // bytes
	TagSize  = 128 / 8 // bytes
	SeedSize = KeySize // bytes

	// The absorption rate of the keyed sponge, in bytes.
	BlockSize = 256 / 8

	// The squeezing rate of the keyed sponge, in bytes.
	OutputBlockSize = 128 / 8

	// Largest message and tag accepted by Ascon-PRFshort, in bytes.
	ShortSize = 128 / 8
)

// Parameter words.
//
//	IV = k || ro || (0x80 ^ a) || persona || t
//
// with k = 128 the key size, ro = 128 the output rate, a = 12 rounds,
// and t the maximum output size in bits (0 for unbounded). The persona
// byte is 0 for the paper's constructions; the PRNG sets it to 1 so its
// states never coincide with Ascon-PRF's.
const (
	ivMAC  uint64 = 0x80808c0000000080
	ivPRF  uint64 = 0x80808c0000000000
	ivPRNG uint64 = 0x80808c0100000000

	// Ascon-PRFshort: k || m || ro' || (0x40 ^ a) || t || 0,
	// with the message and tag byte lengths xored in by prfShortIV.
	ivPRFShort uint64 = 0x80004c0000000000
)

// padding byte appended to the last (possibly empty) block
const padMarker = 0x80

// newState builds [IV, K0, K1, 0, 0] and applies p^a.
func newState(iv uint64, key *[KeySize]byte) state {
	s := state{iv, be64dec(key[0:]), be64dec(key[8:]), 0, 0}
	s.permute()
	return s
}

// compress absorbs one BlockSize block. last is xored into the capacity
// word: 0 for interior blocks, 1 for the final padded block.
func (s *state) compress(block []byte, last uint64) {
	_ = block[BlockSize-1]
	s[0] ^= be64dec(block[0:])
	s[1] ^= be64dec(block[8:])
	s[2] ^= be64dec(block[16:])
	s[3] ^= be64dec(block[24:])
	s[4] ^= last
	s.permute()
}

// absorb absorbs all of p followed by padding.
// It is equivalent to sponge.write(p) followed by sponge.pad.
func (s *state) absorb(p []byte) {
	for len(p) >= BlockSize {
		s.compress(p, 0)
		p = p[BlockSize:]
	}
	var block [BlockSize]byte
	n := copy(block[:], p)
	block[n] = padMarker
	s.compress(block[:], 1)
}

// extract writes the first two state words to out without changing the state.
func (s *state) extract(out []byte) {
	_ = out[OutputBlockSize-1]
	be64enc(out[0:], s[0])
	be64enc(out[8:], s[1])
}

// squeeze extracts one output block and then advances the state.
func (s *state) squeeze(out []byte) {
	s.extract(out)
	s.permute()
}

// sponge is the absorbing half of a keyed context.
type sponge struct {
	s   state
	buf [BlockSize]byte
	len uint8 // number of bytes in buf
}

func (d *sponge) write(b []byte) {
	const bs = BlockSize
	// try to empty the buffer, if it isn't empty already
	if d.len > 0 && int(d.len)+len(b) >= bs {
		n := copy(d.buf[d.len:bs], b)
		b = b[n:]
		d.s.compress(d.buf[:], 0)
		d.len = 0
	}
	// absorb bytes directly, skipping the buffer
	for len(b) >= bs {
		d.s.compress(b, 0)
		b = b[bs:]
	}
	// store any remaining bytes in the buffer
	if len(b) > 0 {
		n := copy(d.buf[d.len:bs], b)
		d.len += uint8(n)
	}
}

// pad flushes the buffer as the final block.
// A final block is produced even when the buffer is empty.
func (d *sponge) pad() {
	if int(d.len) >= len(d.buf) {
		panic("ascon: internal error")
	}
	for i := d.len; i < BlockSize; i++ {
		d.buf[i] = 0
	}
	d.buf[d.len] = padMarker
	d.s.compress(d.buf[:], 1)
	d.buf = [BlockSize]byte{}
	d.len = 0
}

// squeezer turns a padded state into a byte stream.
//
// invariants:
//
//	off == OutputBlockSize: nothing is buffered; the next block comes from s
//	off < OutputBlockSize: buf[off:] holds unread bytes of the previous block,
//	    and s has already been permuted past it
type squeezer struct {
	s   state
	buf [OutputBlockSize]byte
	off uint8

	initialized bool
}

func newSqueezer(s state) squeezer {
	return squeezer{s: s, off: OutputBlockSize, initialized: true}
}

func (r *squeezer) read(p []byte) {
	const bs = OutputBlockSize

	// Copy out any leftover bytes from the previous block
	if r.off < bs {
		n := copy(p, r.buf[r.off:])
		r.off += uint8(n)
		p = p[n:]
	}

	// Copy whole blocks if we can
	for len(p) >= bs {
		r.s.squeeze(p)
		p = p[bs:]
	}

	// Partial block
	if len(p) > 0 {
		r.s.squeeze(r.buf[:])
		r.off = uint8(copy(p, r.buf[:]))
	}
}

// discard drops any buffered output bytes.
func (r *squeezer) discard() {
	r.buf = [OutputBlockSize]byte{}
	r.off = OutputBlockSize
}
