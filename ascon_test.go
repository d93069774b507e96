// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

import (
	"bytes"
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3"
)

// testBytes returns n deterministic pseudorandom bytes derived from label.
func testBytes(label string, n int) []byte {
	h := sha3.NewShake128()
	h.Write([]byte("ascon-prf test input: " + label))
	b := make([]byte, n)
	h.Read(b)
	return b
}

func testKey(label string) [KeySize]byte {
	return [KeySize]byte(testBytes(label, KeySize))
}

func TestPermuteZero(t *testing.T) {
	want := "78ea7ae5cfebb1089b9bfb8513b560f76937f83e03d11a503fe53f36f2c1178c045d648e4def12c9"
	var s state
	s.permute()
	var b []byte
	for _, x := range s {
		b = be64append(b, x)
	}
	if got := fmt.Sprintf("%x", b); got != want {
		t.Errorf("p12(0) = %s, want %s", got, want)
	}
}

func TestInitialStatesDiffer(t *testing.T) {
	key := testKey("domain separation")
	ivs := map[string]uint64{"mac": ivMAC, "prf": ivPRF, "prng": ivPRNG}
	seen := make(map[state]string)
	for name, iv := range ivs {
		s := newState(iv, &key)
		if other, ok := seen[s]; ok {
			t.Errorf("%s and %s share an initial state", name, other)
		}
		seen[s] = name
	}
}

func TestShortIVsDiffer(t *testing.T) {
	seen := make(map[uint64][2]int)
	for m := 0; m <= ShortSize; m++ {
		for tl := 0; tl <= ShortSize; tl++ {
			iv := prfShortIV(m, tl)
			if prev, ok := seen[iv]; ok {
				t.Fatalf("m=%d t=%d collides with m=%d t=%d", m, tl, prev[0], prev[1])
			}
			seen[iv] = [2]int{m, tl}
			if iv == ivMAC || iv == ivPRF || iv == ivPRNG {
				t.Fatalf("m=%d t=%d collides with a sponge persona", m, tl)
			}
		}
	}
}

func TestAbsorbMatchesWrite(t *testing.T) {
	key := testKey("absorb")
	msg := testBytes("absorb", 3*BlockSize+7)
	init := newState(ivPRF, &key)
	for n := 0; n <= len(msg); n++ {
		want := init
		want.absorb(msg[:n])

		d := sponge{s: init}
		// odd-sized writes exercise every buffer offset
		for p := msg[:n]; len(p) > 0; {
			k := min(len(p), 5)
			d.write(p[:k])
			p = p[k:]
		}
		d.pad()
		if d.s != want {
			t.Fatalf("len %d: buffered absorb differs from one-shot absorb", n)
		}
	}
}

// An aligned message must still be followed by a padding block,
// otherwise m and m||pad(m)-looking input would collide.
func TestPaddingAlignedInput(t *testing.T) {
	key := testKey("aligned")
	init := newState(ivMAC, &key)

	a := init
	a.absorb(make([]byte, BlockSize))

	var padded [BlockSize]byte
	padded[0] = padMarker
	b := init
	b.compress(make([]byte, BlockSize), 0)
	b.compress(padded[:], 1)

	if a != b {
		t.Errorf("block-aligned input did not get a separate padding block")
	}

	c := init
	c.absorb(nil)
	if c == a {
		t.Errorf("empty message and one zero block absorb to the same state")
	}
}

func TestExtractDoesNotMutate(t *testing.T) {
	key := testKey("extract")
	s := newState(ivPRF, &key)
	before := s
	var a, b [OutputBlockSize]byte
	s.extract(a[:])
	s.extract(b[:])
	if s != before || a != b {
		t.Errorf("extract changed the state")
	}
	s.squeeze(b[:])
	if s == before {
		t.Errorf("squeeze did not advance the state")
	}
	if a != b {
		t.Errorf("squeeze output %x differs from extract output %x", b, a)
	}
}

func TestSqueezerSplits(t *testing.T) {
	key := testKey("squeezer")
	s := newState(ivPRF, &key)
	s.absorb(nil)

	want := make([]byte, 5*OutputBlockSize+3)
	sq := newSqueezer(s)
	sq.read(want)

	for chunk := 1; chunk <= 2*OutputBlockSize+1; chunk++ {
		sq := newSqueezer(s)
		got := make([]byte, len(want))
		for off := 0; off < len(got); off += chunk {
			sq.read(got[off:min(off+chunk, len(got))])
		}
		if !bytes.Equal(got, want) {
			t.Errorf("chunk %d: got %x, want %x", chunk, got, want)
		}
	}
}

func BenchmarkPermute(b *testing.B) {
	var s state
	b.SetBytes(320 / 8)
	for i := 0; i < b.N; i++ {
		s.permute()
	}
}
