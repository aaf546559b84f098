package kem

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/drbg"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Scheme binds the encapsulation operations to a digest and a uniform
// sampler. The zero value is not usable; construct with New.
type Scheme struct {
	digest  rsaprim.DigestFunc
	uniform func(random io.Reader, lo, hi *big.Int) (*big.Int, error)
}

// Option adjusts a Scheme during construction.
type Option func(*Scheme)

// WithDigest substitutes the key-derivation digest (default sha256.Sum256).
func WithDigest(digest rsaprim.DigestFunc) Option {
	return func(s *Scheme) { s.digest = digest }
}

// WithUniform substitutes the preimage sampler (default drbg.Uniform). Tests
// use this to pin the preimage; production code has no reason to.
func WithUniform(uniform func(random io.Reader, lo, hi *big.Int) (*big.Int, error)) Option {
	return func(s *Scheme) { s.uniform = uniform }
}

// New returns a Scheme with the library defaults applied, then the options.
func New(opts ...Option) *Scheme {
	s := &Scheme{
		digest:  sha256.Sum256,
		uniform: drbg.Uniform,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Encapsulate draws a fresh preimage R from [0, 2^bits - 1], derives the
// 32-byte symmetric key as digest(R), and returns the key alongside the
// transmissible ciphertext R^5 mod N. The public key must carry the
// encryption exponent; encapsulating under the signing exponent is a misuse
// the self-describing key type surfaces here.
func (s *Scheme) Encapsulate(random io.Reader, pub rsaprim.PublicKey) (key [32]byte, ct *big.Int, err error) {
	const op = "kem.Encapsulate"
	if err := pub.Validate(); err != nil {
		return key, nil, rsaprim.Errorf(op, "public key: %w", err)
	}
	if pub.E != rsaprim.EncryptExponent {
		return key, nil, rsaprim.Errorf(op, "%w: key role %v cannot encapsulate", rsaprim.ErrInvalidParameter, pub.E)
	}

	hi := new(big.Int).Lsh(one, uint(pub.N.BitLen()))
	hi.Sub(hi, one)
	preimage, err := s.uniform(random, zero, hi)
	if err != nil {
		return key, nil, rsaprim.Errorf(op, "preimage draw: %w", err)
	}

	key = s.digest(preimage.Bytes())
	ct = new(big.Int).Exp(preimage, pub.E.BigInt(), pub.N)
	rsaprim.ZeroizeBigInt(preimage)
	return key, ct, nil
}

// Decapsulate recovers the preimage with the private exponent D5 and
// re-derives the symmetric key. Ciphertexts outside [0, N) fail with
// ErrCiphertextOutOfRange and are never retried or clamped.
func (s *Scheme) Decapsulate(priv *rsaprim.PrivateKey, ct *big.Int) (key [32]byte, err error) {
	const op = "kem.Decapsulate"
	if priv == nil || priv.N == nil || priv.D5 == nil {
		return key, rsaprim.Errorf(op, "%w: incomplete private key", rsaprim.ErrInvalidParameter)
	}
	if ct == nil {
		return key, rsaprim.Errorf(op, "%w: nil ciphertext", rsaprim.ErrInvalidParameter)
	}
	if ct.Sign() < 0 || ct.Cmp(priv.N) >= 0 {
		return key, rsaprim.Errorf(op, "%w", rsaprim.ErrCiphertextOutOfRange)
	}

	preimage := new(big.Int).Exp(ct, priv.D5, priv.N)
	key = s.digest(preimage.Bytes())
	rsaprim.ZeroizeBigInt(preimage)
	return key, nil
}
