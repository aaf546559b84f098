package rsaprim

import "math/big"

var one = big.NewInt(1)

// Lcm returns the least common multiple of a and b. Both arguments must be
// non-negative; lcm(a, 0) = lcm(0, b) = 0.
func Lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	gcd := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, gcd)
	return l.Mul(l, b)
}
