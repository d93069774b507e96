// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

import "io"

// PRF provides an implementation of Ascon-PRF,
// a keyed function with arbitrarily long output.
//
// Write the message, then call Finalize to obtain a Reader for the output.
// The zero value is not usable; create one with NewPRF.
type PRF struct {
	sponge
	initial state
	done    bool

	initialized bool
}

// NewPRF returns a new Ascon-PRF keyed with key.
// The key is not retained.
func NewPRF(key [KeySize]byte) *PRF {
	p := &PRF{initial: newState(ivPRF, &key), initialized: true}
	p.Reset()
	return p
}

// Size returns 0: the output length is chosen by the reader.
func (p *PRF) Size() int { return 0 }

// The data rate of the sponge, in bytes.
func (p *PRF) BlockSize() int { return BlockSize }

// Reset rewinds p to its freshly keyed state.
func (p *PRF) Reset() {
	if !p.initialized {
		panic("ascon: reset of uninitialized PRF")
	}
	p.sponge = sponge{s: p.initial}
	p.done = false
}

// Clone returns a new copy of p.
func (p *PRF) Clone() *PRF {
	new := *p
	return &new
}

// Write absorbs more of the message. It never returns an error.
// Write panics if p has been finalized.
func (p *PRF) Write(b []byte) (int, error) {
	if !p.initialized {
		panic("ascon: write to uninitialized PRF")
	}
	if p.done {
		panic("ascon: Write called after Finalize")
	}
	p.sponge.write(b)
	return len(b), nil
}

// Finalize pads the message and returns a reader for the PRF output.
// Afterwards p must not be written to or finalized again until Reset.
func (p *PRF) Finalize() *Reader {
	if !p.initialized {
		panic("ascon: finalize of uninitialized PRF")
	}
	if p.done {
		panic("ascon: Finalize called twice")
	}
	p.done = true
	p.sponge.pad()
	return &Reader{sq: newSqueezer(p.sponge.s)}
}

// Reader reads the output stream of a finalized PRF.
// The stream is the same however it is split into reads: the unread tail
// of a partially consumed 16-byte block is kept for the next Read rather
// than discarded. Readers are obtained from PRF.Finalize.
type Reader struct {
	sq squeezer
}

var _ io.Reader = (*Reader)(nil)

// Read fills b with the next len(b) bytes of output.
// It always returns len(b), nil.
func (r *Reader) Read(b []byte) (int, error) {
	if !r.sq.initialized {
		panic("ascon: read from uninitialized Reader")
	}
	r.sq.read(b)
	return len(b), nil
}

// Clone returns a new copy of r. Both copies produce the same remaining stream.
func (r *Reader) Clone() *Reader {
	new := *r
	return &new
}

// SumPRF fills out with the Ascon-PRF output for msg under key.
func SumPRF(key [KeySize]byte, msg, out []byte) {
	s := newState(ivPRF, &key)
	s.absorb(msg)
	sq := newSqueezer(s)
	sq.read(out)
}
