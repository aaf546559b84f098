package keygen

import (
	"io"
	"math/big"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/prime"
)

const (
	// MinBits and MaxBits bound the supported modulus widths.
	MinBits = 2048
	MaxBits = 8192
)

var one = big.NewInt(1)

// generatePrime is swapped out by tests to force degenerate prime pairs.
var generatePrime = prime.Generate

// GenerateKeyPair draws two independent primes of bits/2 each and assembles
// the private key around T = lcm(P-1, Q-1). Identical primes fail with
// ErrDegenerateKeyPair; the pair is discarded whole and the caller retries.
//
// The congruence filters in prime.Generate guarantee that 3 and 5 are
// invertible modulo T, so ErrExponentNotInvertible is reachable only through
// substituted prime sources.
func GenerateKeyPair(random io.Reader, bits int) (*rsaprim.PrivateKey, error) {
	const op = "keygen.GenerateKeyPair"
	if bits < MinBits || bits > MaxBits {
		return nil, rsaprim.Errorf(op, "%w: %d bits outside [%d, %d]", rsaprim.ErrInvalidBitWidth, bits, MinBits, MaxBits)
	}

	p, err := generatePrime(random, bits/2)
	if err != nil {
		return nil, err
	}
	q, err := generatePrime(random, bits/2)
	if err != nil {
		return nil, err
	}
	if p.Cmp(q) == 0 {
		return nil, rsaprim.Errorf(op, "%w: both %d-bit draws produced the same prime", rsaprim.ErrDegenerateKeyPair, bits/2)
	}

	t := rsaprim.Lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	d3 := new(big.Int).ModInverse(rsaprim.SignExponent.BigInt(), t)
	if d3 == nil {
		return nil, rsaprim.Errorf(op, "%w: exponent 3 modulo lcm(P-1, Q-1)", rsaprim.ErrExponentNotInvertible)
	}
	d5 := new(big.Int).ModInverse(rsaprim.EncryptExponent.BigInt(), t)
	if d5 == nil {
		return nil, rsaprim.Errorf(op, "%w: exponent 5 modulo lcm(P-1, Q-1)", rsaprim.ErrExponentNotInvertible)
	}

	return &rsaprim.PrivateKey{
		P:  p,
		Q:  q,
		N:  new(big.Int).Mul(p, q),
		D3: d3,
		D5: d5,
	}, nil
}
