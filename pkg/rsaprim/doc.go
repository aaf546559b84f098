// Package rsaprim implements textbook RSA primitives with fixed small public
// exponents: filtered prime generation, dual-exponent key pairs (3 for
// signature verification, 5 for encryption), hybrid symmetric-key
// encapsulation, and a deterministic hash-seeded signature scheme. The
// primitive operations live in the subpackages prime, keygen, kem, and sig;
// this package holds the shared key types, error taxonomy, and collaborator
// seams they build on.
//
// The constructions are deliberately unpadded (no OAEP, no PSS) and leak
// through timing. They exist for protocol experimentation and teaching, not
// for protecting production traffic.
package rsaprim
