// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

import (
	"crypto/subtle"
	"errors"
	"hash"
)

// Ascon-PRF and Ascon-MAC are specified in "Ascon PRF, MAC, and Short-Input MAC"
// by Christoph Dobraunig and Maria Eichlseder and Florian Mendel and Martin Schläffer.
// https://eprint.iacr.org/2021/1574

// ErrAuthFailed is returned when a tag does not match the message.
var ErrAuthFailed = errors.New("ascon: authentication failed")

// MAC provides an implementation of Ascon-MAC.
// It implements the hash.Hash interface.
// The zero value is not usable; create one with NewMAC.
type MAC struct {
	sponge
	initial state // state after keying, for Reset
	done    bool

	initialized bool
}

var _ hash.Hash = (*MAC)(nil)

// NewMAC returns a new Ascon-MAC keyed with key.
// The key is not retained.
func NewMAC(key [KeySize]byte) *MAC {
	m := &MAC{initial: newState(ivMAC, &key), initialized: true}
	m.Reset()
	return m
}

// The size of the tag, in bytes.
func (m *MAC) Size() int { return TagSize }

// The data rate of the sponge, in bytes.
// Writes which are a multiple of BlockSize will be more performant.
func (m *MAC) BlockSize() int { return BlockSize }

// Reset rewinds m to its freshly keyed state.
func (m *MAC) Reset() {
	if !m.initialized {
		panic("ascon: reset of uninitialized MAC")
	}
	m.sponge = sponge{s: m.initial}
	m.done = false
}

// Clone returns a new copy of m.
func (m *MAC) Clone() *MAC {
	new := *m
	return &new
}

// Write absorbs more of the message. It never returns an error.
// Write panics if m has been finalized.
func (m *MAC) Write(p []byte) (int, error) {
	if !m.initialized {
		panic("ascon: write to uninitialized MAC")
	}
	if m.done {
		panic("ascon: Write called after Finalize")
	}
	m.sponge.write(p)
	return len(p), nil
}

// Sum appends the tag of the message written so far to b and returns the
// new slice. It does not change the state of m, and like Write it panics
// once m has been finalized.
func (m *MAC) Sum(b []byte) []byte {
	tag := m.Clone().Finalize()
	return append(b, tag[:]...)
}

// Finalize pads the message and returns its tag.
// Afterwards m must not be written to or finalized again until Reset.
func (m *MAC) Finalize() [TagSize]byte {
	if !m.initialized {
		panic("ascon: finalize of uninitialized MAC")
	}
	if m.done {
		panic("ascon: Finalize called twice")
	}
	m.done = true
	m.sponge.pad()

	var tag [TagSize]byte
	m.sponge.s.extract(tag[:])
	return tag
}

// Verify finalizes m and checks tag against it in constant time.
// It returns ErrAuthFailed if they differ.
func (m *MAC) Verify(tag []byte) error {
	want := m.Finalize()
	return verifyTag(want[:], tag)
}

// SumMAC returns the Ascon-MAC tag of msg under key.
func SumMAC(key [KeySize]byte, msg []byte) [TagSize]byte {
	s := newState(ivMAC, &key)
	s.absorb(msg)

	var tag [TagSize]byte
	s.extract(tag[:])
	return tag
}

// VerifyMAC checks that tag is the Ascon-MAC tag of msg under key.
// It returns ErrAuthFailed if it isn't.
func VerifyMAC(key [KeySize]byte, msg, tag []byte) error {
	want := SumMAC(key, msg)
	return verifyTag(want[:], tag)
}

func verifyTag(want, got []byte) error {
	// ConstantTimeCompare returns 0 when the lengths differ
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return ErrAuthFailed
	}
	return nil
}
