// Package kem implements hybrid symmetric-key encapsulation over the
// encryption exponent: a random preimage R is drawn, the 32-byte symmetric
// key is digest(R), and only C = R^5 mod N travels. Decapsulation recovers R
// with the private exponent D5 and re-derives the same key.
//
// The preimage is drawn from [0, 2^bits - 1] where bits is the modulus bit
// length, so R can exceed N. Such a draw still encapsulates, but the peer
// recovers R mod N and derives a different key. Callers who need a guaranteed
// round trip confirm the derived key out of band and re-encapsulate on
// mismatch; the examples show the loop.
package kem
