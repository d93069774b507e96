// Package ascon implements the keyed members of the Ascon family:
// Ascon-PRF (extendable output), Ascon-MAC, Ascon-PRFshort, and a
// reseedable pseudorandom generator built on the same sponge.
//
// The constructions follow "Ascon PRF, MAC, and Short-Input MAC" by
// Dobraunig, Eichlseder, Mendel and Schläffer, and the sponge PRNG
// of "Sponge-based pseudo-random number generators" by Bertoni,
// Daemen, Peeters and Van Assche.
//
// https://eprint.iacr.org/2021/1574
// https://keccak.team/files/SpongePRNG.pdf
//
// Words are big-endian, the padding byte is 0x80, and every persona
// uses the 12-round permutation. None of the types in this package are
// safe for concurrent use; use Clone to fork an independent copy.
//
// This package has not been audited.
package ascon
