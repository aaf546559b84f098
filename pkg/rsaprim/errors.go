package rsaprim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a nil or malformed argument
	ErrInvalidParameter = errors.New("rsaprim: invalid parameter")

	// ErrInvalidBitWidth indicates a requested width outside the supported range
	ErrInvalidBitWidth = errors.New("rsaprim: invalid bit width")

	// ErrPrimeGenerationExhausted indicates the prime rejection-sampling budget ran out
	ErrPrimeGenerationExhausted = errors.New("rsaprim: prime generation retry budget exhausted")

	// ErrDegenerateKeyPair indicates both primes of a candidate key pair coincide
	ErrDegenerateKeyPair = errors.New("rsaprim: degenerate key pair")

	// ErrExponentNotInvertible indicates a public exponent has no inverse modulo lcm(P-1, Q-1)
	ErrExponentNotInvertible = errors.New("rsaprim: exponent not invertible")

	// ErrCiphertextOutOfRange indicates a ciphertext outside [0, N)
	ErrCiphertextOutOfRange = errors.New("rsaprim: ciphertext out of range")

	// ErrInvalidSignature indicates signature verification failed
	ErrInvalidSignature = errors.New("rsaprim: invalid signature")
)

// Error wraps an underlying error with the operation that produced it
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsaprim.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error. Use %w in format to keep sentinel errors
// reachable through errors.Is.
func Errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
