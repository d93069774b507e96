// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

// Ascon-PRFshort processes at most 16 bytes of message with a single
// call to the permutation. The message is loaded directly into the
// state instead of being absorbed, and the message and tag lengths are
// bound through the parameter word.

func prfShortIV(msgLen, tagLen int) uint64 {
	return ivPRFShort ^ uint64(msgLen)<<51 ^ uint64(tagLen)<<35
}

func prfShort(key *[KeySize]byte, msg *[ShortSize]byte, msgLen, tagLen int) [ShortSize]byte {
	k0 := be64dec(key[0:])
	k1 := be64dec(key[8:])
	s := state{prfShortIV(msgLen, tagLen), k0, k1, be64dec(msg[0:]), be64dec(msg[8:])}
	s.permute()

	var t [ShortSize]byte
	be64enc(t[0:], s[3]^k0)
	be64enc(t[8:], s[4]^k1)
	return t
}

// PRFShort fills out with the Ascon-PRFshort output for msg under key.
// It panics if msg or out is longer than ShortSize bytes.
func PRFShort(key [KeySize]byte, msg, out []byte) {
	if len(msg) > ShortSize {
		panic("ascon: PRFShort message longer than 16 bytes")
	}
	if len(out) > ShortSize {
		panic("ascon: PRFShort output longer than 16 bytes")
	}
	var m [ShortSize]byte
	copy(m[:], msg)
	t := prfShort(&key, &m, len(msg), len(out))
	copy(out, t[:])
}

// PRFShort128 returns the 16-byte Ascon-PRFshort output for a 16-byte message.
func PRFShort128(key [KeySize]byte, msg *[ShortSize]byte) [ShortSize]byte {
	return prfShort(&key, msg, ShortSize, ShortSize)
}

// VerifyPRFShort checks, in constant time, that tag is the Ascon-PRFshort
// output for msg under key, using len(tag) as the output length.
// It returns ErrAuthFailed if it isn't or if the tag is empty or longer
// than ShortSize. It panics if msg is longer than ShortSize.
func VerifyPRFShort(key [KeySize]byte, msg, tag []byte) error {
	if len(tag) == 0 || len(tag) > ShortSize {
		return ErrAuthFailed
	}
	want := make([]byte, len(tag))
	PRFShort(key, msg, want)
	return verifyTag(want, tag)
}
