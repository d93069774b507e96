// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// PRNG is a reseedable cryptographically secure generator built on the
// keyed Ascon sponge, following "Sponge-based pseudo-random number
// generators" (Bertoni, Daemen, Peeters, Van Assche).
//
// Each output block is followed by a permutation call, so a captured
// state does not reveal earlier output.
//
// It implements io.Reader and math/rand/v2.Source.
// A PRNG is not safe for concurrent use; Clone it for independent streams.
// The zero value is not usable; create one with NewPRNG or NewPRNGFromReader.
type PRNG struct {
	sq squeezer
}

func (g *PRNG) mustBeSeeded(op string) {
	if !g.sq.initialized {
		panic("ascon: " + op + " uninitialized PRNG")
	}
}

var (
	_ io.Reader   = (*PRNG)(nil)
	_ rand.Source = (*PRNG)(nil)
)

// NewPRNG returns a generator seeded with seed.
func NewPRNG(seed [SeedSize]byte) *PRNG {
	return newPRNG(ivPRNG, &seed)
}

func newPRNG(iv uint64, seed *[SeedSize]byte) *PRNG {
	return &PRNG{sq: newSqueezer(newState(iv, seed))}
}

// NewPRNGFromReader seeds a generator with SeedSize bytes read from r,
// typically crypto/rand.Reader.
func NewPRNGFromReader(r io.Reader) (*PRNG, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("ascon: reading seed: %w", err)
	}
	return NewPRNG(seed), nil
}

// Feed reseeds g by absorbing entropy (padded) into the live state.
// Output bytes buffered by Read or Uint64 are discarded, so everything
// produced after Feed depends on entropy.
func (g *PRNG) Feed(entropy []byte) {
	g.mustBeSeeded("feed to")
	g.sq.s.absorb(entropy)
	g.sq.discard()
}

// Generate returns the next output block as two words and advances the
// state. Output bytes buffered by Read or Uint64 are discarded first, so
// the stream never goes back to an earlier block.
func (g *PRNG) Generate() [2]uint64 {
	g.mustBeSeeded("generate from")
	g.sq.discard()
	out := [2]uint64{g.sq.s[0], g.sq.s[1]}
	g.sq.s.permute()
	return out
}

// Read fills p with output. The bytes are the big-endian encoding of the
// Generate words; a partial block is kept for the next call.
// It always returns len(p), nil.
func (g *PRNG) Read(p []byte) (int, error) {
	g.mustBeSeeded("read from")
	g.sq.read(p)
	return len(p), nil
}

// Uint64 returns the next 8 bytes of the Read stream as a big-endian word.
func (g *PRNG) Uint64() uint64 {
	g.mustBeSeeded("read from")
	var b [8]byte
	g.sq.read(b[:])
	return be64dec(b[:])
}

// Clone returns a new copy of g. Both copies produce the same stream
// until they are fed different entropy.
func (g *PRNG) Clone() *PRNG {
	new := *g
	return &new
}
