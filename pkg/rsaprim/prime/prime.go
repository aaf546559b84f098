package prime

import (
	"io"
	"math/big"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/drbg"
)

const (
	// MinBits and MaxBits bound the supported prime widths.
	MinBits = 1024
	MaxBits = 4096

	// maxAttemptsPerBit scales the rejection-sampling budget: a Generate
	// call draws at most maxAttemptsPerBit*bits candidates before giving up.
	maxAttemptsPerBit = 100

	// millerRabinRounds matches the error bound crypto/rand.Prime accepts.
	millerRabinRounds = 20
)

var (
	three = big.NewInt(3)
	five  = big.NewInt(5)
)

// uniform is swapped out by tests to drive the sampler deterministically.
var uniform = drbg.Uniform

// Generate draws candidates uniformly from [2^(bits-1), 2^bits - 1] until one
// passes the congruence filters and the primality test. Every draw is fresh
// and independent; rejected candidates are discarded without adjustment. When
// the attempt budget runs out the call fails with ErrPrimeGenerationExhausted
// and the caller decides whether to retry.
func Generate(random io.Reader, bits int) (*big.Int, error) {
	const op = "prime.Generate"
	if bits < MinBits || bits > MaxBits {
		return nil, rsaprim.Errorf(op, "%w: %d bits outside [%d, %d]", rsaprim.ErrInvalidBitWidth, bits, MinBits, MaxBits)
	}

	lo := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	hi := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	hi.Sub(hi, big.NewInt(1))

	budget := maxAttemptsPerBit * bits
	var residue big.Int
	for attempt := 0; attempt < budget; attempt++ {
		candidate, err := uniform(random, lo, hi)
		if err != nil {
			return nil, rsaprim.Errorf(op, "candidate draw: %w", err)
		}
		// A candidate with P mod 3 = 1 or P mod 5 = 1 would leave the public
		// exponent sharing a factor with P-1, so it is rejected before the
		// expensive primality test.
		if residue.Mod(candidate, three).Int64() == 1 {
			continue
		}
		if residue.Mod(candidate, five).Int64() == 1 {
			continue
		}
		if candidate.ProbablyPrime(millerRabinRounds) {
			return candidate, nil
		}
	}
	return nil, rsaprim.Errorf(op, "%w: no acceptable prime in %d attempts", rsaprim.ErrPrimeGenerationExhausted, budget)
}
