// Package sig implements the deterministic hash-seeded signature scheme.
// Messages are not signed directly: digest(M) seeds a deterministic stream,
// byte_length(N) bytes are drawn and reduced modulo N, and that pseudo-random
// residue is what gets raised to the private exponent. The residue map breaks
// the multiplicative structure that makes textbook RSA forgeable from
// signature products, while staying reproducible for verification.
//
// Signing never touches an entropy source. The residue stream is a fresh
// local reader seeded only by the message digest, so two signatures over the
// same message are identical and concurrent signers share nothing.
package sig
