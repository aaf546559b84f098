package drbg

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
)

var one = big.NewInt(1)

// Uniform draws a uniformly distributed integer in the inclusive range
// [lo, hi], consuming entropy only from random. Callers generally pass
// crypto/rand.Reader; tests pass deterministic readers.
func Uniform(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	const op = "drbg.Uniform"
	if random == nil || lo == nil || hi == nil {
		return nil, rsaprim.Errorf(op, "%w: nil argument", rsaprim.ErrInvalidParameter)
	}
	if lo.Cmp(hi) > 0 {
		return nil, rsaprim.Errorf(op, "%w: empty range [%v, %v]", rsaprim.ErrInvalidParameter, lo, hi)
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)
	n, err := rand.Int(random, width)
	if err != nil {
		return nil, rsaprim.Errorf(op, "draw failed: %w", err)
	}
	return n.Add(n, lo), nil
}
