package rsaprim

import "math/big"

// PublicKey is a single-exponent RSA public key.
type PublicKey struct {
	N *big.Int // modulus
	E Exponent // exponent role this key plays
}

// Validate checks that the key has a usable modulus and a supported exponent.
func (k PublicKey) Validate() error {
	const op = "PublicKey.Validate"
	if k.N == nil || k.N.Cmp(one) <= 0 {
		return Errorf(op, "%w: modulus must exceed 1", ErrInvalidParameter)
	}
	if !k.E.Valid() {
		return Errorf(op, "%w: unsupported exponent %d", ErrInvalidParameter, int(k.E))
	}
	return nil
}

// PrivateKey carries the prime factorization and the private inverses of both
// fixed public exponents, taken modulo T = lcm(P-1, Q-1).
type PrivateKey struct {
	P  *big.Int
	Q  *big.Int
	N  *big.Int // N = P*Q
	D3 *big.Int // 3^-1 mod T, used to sign
	D5 *big.Int // 5^-1 mod T, used to decapsulate
}

// EncryptionKey returns the public half used for key encapsulation.
func (k *PrivateKey) EncryptionKey() PublicKey {
	return PublicKey{N: k.N, E: EncryptExponent}
}

// VerificationKey returns the public half used to verify signatures.
func (k *PrivateKey) VerificationKey() PublicKey {
	return PublicKey{N: k.N, E: SignExponent}
}

// D returns the private exponent matching the public exponent e.
func (k *PrivateKey) D(e Exponent) (*big.Int, error) {
	switch e {
	case SignExponent:
		return k.D3, nil
	case EncryptExponent:
		return k.D5, nil
	default:
		return nil, Errorf("PrivateKey.D", "%w: unsupported exponent %d", ErrInvalidParameter, int(e))
	}
}

// Validate recomputes the structural invariants: all components present,
// P != Q, N = P*Q, and each private exponent inverting its public exponent
// modulo lcm(P-1, Q-1).
func (k *PrivateKey) Validate() error {
	const op = "PrivateKey.Validate"
	if k == nil || k.P == nil || k.Q == nil || k.N == nil || k.D3 == nil || k.D5 == nil {
		return Errorf(op, "%w: missing key component", ErrInvalidParameter)
	}
	if k.P.Cmp(k.Q) == 0 {
		return Errorf(op, "%w", ErrDegenerateKeyPair)
	}
	if n := new(big.Int).Mul(k.P, k.Q); n.Cmp(k.N) != 0 {
		return Errorf(op, "%w: modulus is not P*Q", ErrInvalidParameter)
	}
	t := Lcm(new(big.Int).Sub(k.P, one), new(big.Int).Sub(k.Q, one))
	check := new(big.Int)
	check.Mul(k.D3, SignExponent.BigInt())
	check.Mod(check, t)
	if check.Cmp(one) != 0 {
		return Errorf(op, "%w: D3 does not invert 3 modulo lcm(P-1, Q-1)", ErrInvalidParameter)
	}
	check.Mul(k.D5, EncryptExponent.BigInt())
	check.Mod(check, t)
	if check.Cmp(one) != 0 {
		return Errorf(op, "%w: D5 does not invert 5 modulo lcm(P-1, Q-1)", ErrInvalidParameter)
	}
	return nil
}

// Zeroize overwrites every key component in place. The caveats on
// ZeroizeBigInt apply.
func (k *PrivateKey) Zeroize() {
	if k == nil {
		return
	}
	ZeroizeBigInt(k.P)
	ZeroizeBigInt(k.Q)
	ZeroizeBigInt(k.N)
	ZeroizeBigInt(k.D3)
	ZeroizeBigInt(k.D5)
}
