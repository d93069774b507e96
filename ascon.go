// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

import "math/bits"

// https://ascon.iaik.tugraz.at/files/asconv12-nist.pdf

// state is the 320-bit sponge state, five big-endian words.
// It is a plain value: assigning a state copies it.
type state [5]uint64

// permute applies the full 12-round permutation p^a.
// Every persona in this package uses a = b = 12.
func (s *state) permute() { roundGeneric(s, roundc[:]) }

func roundGeneric(s *state, rc []uint8) {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	for _, c := range rc {
		// Section 2.6.1, addition of constants
		x2 ^= uint64(c)

		// Section 2.6.2, substitution layer (bitsliced 5-bit S-box)
		x0 ^= x4
		x4 ^= x3
		x2 ^= x1

		t0 := ^x0
		t1 := ^x1
		t2 := ^x2
		t3 := ^x3
		t4 := ^x4

		t0 &= x1
		t1 &= x2
		t2 &= x3
		t3 &= x4
		t4 &= x0

		x0 ^= t1
		x1 ^= t2
		x2 ^= t3
		x3 ^= t4
		x4 ^= t0

		x1 ^= x0
		x0 ^= x4
		x3 ^= x2
		x2 = ^x2

		// Section 2.6.3, linear diffusion layer
		x0 = x0 ^ bits.RotateLeft64(x0, -19) ^ bits.RotateLeft64(x0, -28)
		x1 = x1 ^ bits.RotateLeft64(x1, -61) ^ bits.RotateLeft64(x1, -39)
		x2 = x2 ^ bits.RotateLeft64(x2, -1) ^ bits.RotateLeft64(x2, -6)
		x3 = x3 ^ bits.RotateLeft64(x3, -10) ^ bits.RotateLeft64(x3, -17)
		x4 = x4 ^ bits.RotateLeft64(x4, -7) ^ bits.RotateLeft64(x4, -41)
	}

	s[0], s[1], s[2], s[3], s[4] = x0, x1, x2, x3, x4
}
