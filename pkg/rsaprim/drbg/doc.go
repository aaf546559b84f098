// Package drbg supplies the two randomness shapes the primitives consume:
// deterministic byte streams expanded from fixed seeds (for hash-derived
// residues) and uniform integer draws over inclusive ranges (for
// entropy-backed sampling of primes and encapsulation preimages).
//
// The two never mix. Streams are pure functions of their seed and hold no
// reference to any entropy source; uniform draws read exclusively from the
// io.Reader the caller passes in.
package drbg
