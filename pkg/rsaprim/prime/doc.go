// Package prime generates probable primes by rejection sampling, with
// congruence filters that keep the fixed public exponents 3 and 5 invertible
// for any key pair assembled from its output: a prime P with P mod 3 != 1
// and P mod 5 != 1 guarantees gcd(3, P-1) = gcd(5, P-1) = 1.
package prime
