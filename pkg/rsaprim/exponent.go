package rsaprim

import "math/big"

// Exponent identifies the fixed public exponents supported by the library.
// Key pairs carry private inverses for both; public keys carry exactly one so
// ciphertexts and signatures stay self-describing about which role applies.
type Exponent int

const (
	// SignExponent is the public exponent used to verify signatures.
	SignExponent Exponent = 3

	// EncryptExponent is the public exponent used for key encapsulation.
	EncryptExponent Exponent = 5
)

// Valid reports whether e is one of the supported exponents.
func (e Exponent) Valid() bool {
	return e == SignExponent || e == EncryptExponent
}

// String returns the exponent role name
func (e Exponent) String() string {
	switch e {
	case SignExponent:
		return "sign-3"
	case EncryptExponent:
		return "encrypt-5"
	default:
		return "unknown"
	}
}

// BigInt returns the exponent as a freshly allocated big.Int.
func (e Exponent) BigInt() *big.Int {
	return big.NewInt(int64(e))
}
