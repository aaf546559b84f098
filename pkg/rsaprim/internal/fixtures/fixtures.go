// Package fixtures provides fixed primes and prebuilt keys so tests avoid
// repeated multi-second key generation. Nothing here is secret and none of it
// may be used outside tests.
package fixtures

import (
	"math/big"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
)

// Fixed 512-bit primes satisfying the generator's congruence filters
// (both are 2 mod 3 and 2 mod 5).
const (
	p512Hex = "91e404eea47839eedac4e054287f7937d2d29fff81564036b43bac4cf507caf3" +
		"9572473cee81766745d4c27089a19c2fa4030c351d2ccfe62a97f09c4eaed849"
	q512Hex = "dac2482ba5a090d69481abef2124e2cb9aaa6080395da80b179755b0f28cff1f" +
		"7eeaa041635eda8d66e9ca14353cd68b10f4c8a87ed8fa2f3bedd7c2b18f4f15"
)

var one = big.NewInt(1)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("fixtures: bad hex constant: " + s)
	}
	return n
}

// PrivateKey returns a fresh private key over the fixed 512-bit primes. The
// exponent inverses are recomputed on every call, so callers may mutate or
// zeroize the result freely.
func PrivateKey() *rsaprim.PrivateKey {
	p := mustHex(p512Hex)
	q := mustHex(q512Hex)
	t := rsaprim.Lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	d3 := new(big.Int).ModInverse(rsaprim.SignExponent.BigInt(), t)
	d5 := new(big.Int).ModInverse(rsaprim.EncryptExponent.BigInt(), t)
	if d3 == nil || d5 == nil {
		panic("fixtures: fixture primes do not admit exponent inverses")
	}
	return &rsaprim.PrivateKey{
		P:  p,
		Q:  q,
		N:  new(big.Int).Mul(p, q),
		D3: d3,
		D5: d5,
	}
}

// ToyKey returns the 13-bit hand-checkable key P=71, Q=89, N=6319 with
// T = lcm(70, 88) = 3080 and D3 = 1027. The production generator would
// reject P (71 is 1 mod 5), which also means gcd(5, T) = 5: the toy key has
// no D5 and cannot decapsulate. It exists to pin small signing values that
// can be verified by hand.
func ToyKey() *rsaprim.PrivateKey {
	return &rsaprim.PrivateKey{
		P:  big.NewInt(71),
		Q:  big.NewInt(89),
		N:  big.NewInt(6319),
		D3: big.NewInt(1027),
	}
}
