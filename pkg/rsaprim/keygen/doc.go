// Package keygen assembles dual-exponent RSA key pairs from filtered primes.
// Each key carries private inverses for both fixed public exponents, so one
// generated pair serves signing (exponent 3) and decapsulation (exponent 5)
// without re-deriving anything.
package keygen
